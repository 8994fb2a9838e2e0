// Package literal parses and writes the structural literal forms embedded
// in a named tuple's textual encoding: sequences as [a, b], mappings as
// {k: v}, sets as {a, b} (set() when empty), and the scalar forms bare
// integers, bare floats, and single-quoted text.
//
// This package uses ONLY the Go standard library. The parser is a
// recursive-descent scanner over a byte offset; recursion depth is bounded
// by MaxDepth so hostile input cannot exhaust the stack.
package literal
