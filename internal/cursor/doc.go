// Package cursor implements a generic bidirectional scanning cursor.
//
// A Cursor owns a live element sequence, a position (index) inside it and a
// history of consumed elements. Peeking never moves the index, Advance/Rewind
// move it without consuming, Eat moves elements from the live sequence into
// the history and Restore moves them back, which is how callers undo a
// tentative scan.
//
// Invariants:
//   - 0 <= Index() <= Len() at all times; movement saturates at both ends.
//   - Batch operations are all-or-nothing: a request that does not fit
//     returns ok=false and leaves the cursor untouched.
//   - n successful Eat calls followed by n Restore calls leave the live
//     sequence and the index exactly as they were before the eats.
//
// The cursor has no knowledge of tokens; the lexer drives it over runes.
package cursor
