package collectionsx_test

import (
	"errors"
	"sync"
	"testing"

	. "github.com/comalice/collectionsx"
)

func TestOwnedListExclusiveClaim(t *testing.T) {
	l := NewOwnedList(1, 2, 3)
	if err := l.Acquire("A"); err != nil {
		t.Fatal(err)
	}

	// A second claim fails fast and names the holder.
	err := l.Acquire("B")
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("second acquire: expected ErrInvalidOperation, got %v", err)
	}

	// Non-owner operations are denied; owner operations proceed.
	if _, err := l.At("B", 0); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("non-owner read: expected ErrAccessDenied, got %v", err)
	}
	if _, err := l.At("A", 0); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if err := l.Append("B", 4); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("non-owner append: expected ErrAccessDenied, got %v", err)
	}

	// Only the owner can release.
	if err := l.Release("B"); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("non-owner release: expected ErrAccessDenied, got %v", err)
	}
	if err := l.Release("A"); err != nil {
		t.Fatalf("owner release failed: %v", err)
	}
	if owner, held := l.Owner(); held || owner != "" {
		t.Errorf("expected unlocked with owner cleared, got held=%v owner=%q", held, owner)
	}
}

func TestOwnedListReleaseWithoutAcquire(t *testing.T) {
	l := NewOwnedList[int]()
	if err := l.Release("A"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestOwnedListEmptyOwnerRejected(t *testing.T) {
	l := NewOwnedList[int]()
	if err := l.Acquire(""); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation, got %v", err)
	}
}

func TestOwnedListUnlockedAllowsAnyIdentity(t *testing.T) {
	l := NewOwnedList(1)
	if err := l.Append("anyone", 2); err != nil {
		t.Fatal(err)
	}
	if err := l.Append("someone-else", 3); err != nil {
		t.Fatal(err)
	}
	vs, err := l.Values("whoever")
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 3 {
		t.Errorf("expected 3 elements, got %v", vs)
	}
}

func TestOwnedListIntrospectionAlwaysPermitted(t *testing.T) {
	l := NewOwnedList(1, 2, 3)
	if err := l.Acquire("A"); err != nil {
		t.Fatal(err)
	}
	if got := l.Len(); got != 3 {
		t.Errorf("Len while acquired: expected 3, got %d", got)
	}
	if !l.Contains(2) {
		t.Error("Contains while acquired should answer")
	}
	if owner, held := l.Owner(); !held || owner != "A" {
		t.Errorf("Owner: expected (A,true), got (%q,%v)", owner, held)
	}
	if !l.Status() {
		t.Error("Status should report acquired")
	}
}

// One goroutine works through an acquire/append/release cycle; the final
// contents are visible to every caller afterwards.
func TestOwnedListAcquireAppendRelease(t *testing.T) {
	l := NewOwnedList(1, 2, 3)
	done := make(chan error, 1)
	go func() {
		if err := l.Acquire("T1"); err != nil {
			done <- err
			return
		}
		if err := l.Append("T1", 4); err != nil {
			done <- err
			return
		}
		done <- l.Release("T1")
	}()
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	vs, err := l.Values("T2")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3, 4}
	if len(vs) != len(want) {
		t.Fatalf("expected %v, got %v", want, vs)
	}
	for i := range want {
		if vs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, vs)
		}
	}
}

// Many goroutines race to acquire an unlocked list: exactly one wins, the
// rest fail immediately with ErrInvalidOperation.
func TestOwnedListAcquireRace(t *testing.T) {
	l := NewOwnedList[int]()
	const n = 64
	var wg sync.WaitGroup
	errs := make([]error, n)
	ids := make([]string, n)
	for i := range n {
		ids[i] = string(rune('a' + i%26))
	}
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = l.Acquire(ids[i])
		}()
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else if !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("expected exactly one winning acquire, got %d", wins)
	}
	owner, held := l.Owner()
	if !held || owner == "" {
		t.Errorf("expected a held list with an owner, got held=%v owner=%q", held, owner)
	}
}

// Contended appends during an acquire/release window never interleave into
// the owner's run: non-owners fail, owner's elements all land.
func TestOwnedListContendedAppends(t *testing.T) {
	l := NewOwnedList[int]()
	if err := l.Acquire("owner"); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	denied := make([]error, 16)
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			denied[i] = l.Append("intruder", 999)
		}()
	}
	for i := range 8 {
		if err := l.Append("owner", i); err != nil {
			t.Errorf("owner append: %v", err)
		}
	}
	wg.Wait()

	for _, err := range denied {
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("intruder append: expected ErrAccessDenied, got %v", err)
		}
	}
	if got := l.Len(); got != 8 {
		t.Errorf("expected 8 elements, got %d", got)
	}
	if l.Contains(999) {
		t.Error("intruder element leaked into the list")
	}
}

func TestOwnedListRepeatIsFreshAndUnowned(t *testing.T) {
	l := NewOwnedList(1, 2)
	if err := l.Acquire("A"); err != nil {
		t.Fatal(err)
	}
	doubled := l.Repeat(2)
	if _, held := doubled.Owner(); held {
		t.Error("Repeat result must be unowned")
	}
	vs, err := doubled.Values("B")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 1, 2}
	if len(vs) != len(want) {
		t.Fatalf("expected %v, got %v", want, vs)
	}
	for i := range want {
		if vs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, vs)
		}
	}
	if empty := l.Repeat(0); empty.Len() != 0 {
		t.Errorf("Repeat(0) should be empty, got %d elements", empty.Len())
	}
	// The source list is untouched and still owned.
	if owner, held := l.Owner(); !held || owner != "A" {
		t.Errorf("source ownership changed: (%q,%v)", owner, held)
	}
}

func TestOwnedListReversedIsFreshAndUnowned(t *testing.T) {
	l := NewOwnedList(1, 2, 3)
	if err := l.Acquire("A"); err != nil {
		t.Fatal(err)
	}
	rev := l.Reversed()
	if _, held := rev.Owner(); held {
		t.Error("Reversed result must be unowned")
	}
	got, err := rev.At("B", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}
