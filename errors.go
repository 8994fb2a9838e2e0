package collectionsx

import "errors"

// Sentinel errors returned by every container in this module. Callers match
// them with errors.Is; the wrapped message carries the offending key, index,
// or owner identity.
var (
	// ErrConstantViolation signals an attempt to overwrite an existing
	// write-once entry.
	ErrConstantViolation = errors.New("cannot overwrite existing key")

	// ErrInvalidOperation signals a state transition attempted from an
	// invalid state: double-lock, release without acquire, delete on a
	// write-once map.
	ErrInvalidOperation = errors.New("operation not permitted")

	// ErrSequenceLocked signals a gated operation on a locked sequence.
	ErrSequenceLocked = errors.New("sequence is locked")

	// ErrNotLocked signals an unlock of a sequence that is not locked.
	ErrNotLocked = errors.New("sequence is not locked")

	// ErrAccessDenied signals an owner-identity mismatch on an acquired
	// sequence.
	ErrAccessDenied = errors.New("access denied")

	// ErrKeyNotFound signals a lookup miss by key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOrKeyNotFound signals a lookup miss by positional index or
	// key on a named tuple or list.
	ErrIndexOrKeyNotFound = errors.New("item or index not in tuple")

	// ErrParse signals a malformed textual encoding during decoding.
	ErrParse = errors.New("malformed encoding")
)
