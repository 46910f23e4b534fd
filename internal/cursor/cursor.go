// Package cursor implements the read-only, index-carrying view over an
// input buffer that the request parser driver scans with.
//
// It blends two patterns seen in comparable parsers: a pos-only cursor
// that re-slices the underlying buffer on every skip, and an off-based
// scanner that owns the buffer it scans. This Cursor instead holds a
// fixed buffer plus two indices — an anchor a and a position p, with
// a <= p <= len(buf) — so that slicing never mutates or re-validates a
// slice header; it is just arithmetic on two ints.
package cursor

import "errors"

// ErrSkipTooLarge is returned by SliceSkip when skip exceeds the number
// of bytes pending since the last slice (p - a).
var ErrSkipTooLarge = errors.New("cursor: skip exceeds pending slice")

// Cursor is an index-carrying view over buf. The zero value is not
// usable; construct with New.
type Cursor struct {
	buf []byte
	p   int // position: next byte to read
	a   int // anchor: start of the pending slice
}

// New returns a Cursor positioned at the start of buf.
func New(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Pos returns the current position index p.
func (c *Cursor) Pos() int { return c.p }

// Anchor returns the current anchor index a.
func (c *Cursor) Anchor() int { return c.a }

// Peek returns the byte at the current position without advancing, and
// ok=false if the cursor is at the end of the buffer.
func (c *Cursor) Peek() (b byte, ok bool) {
	if c.p >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.p], true
}

// Next returns the byte at the current position and advances p by one,
// or ok=false at end of buffer without advancing.
func (c *Cursor) Next() (b byte, ok bool) {
	b, ok = c.Peek()
	if ok {
		c.p++
	}
	return b, ok
}

// Advance moves p forward by k bytes, clamped to len(buf).
func (c *Cursor) Advance(k int) {
	c.p += k
	if c.p > len(c.buf) {
		c.p = len(c.buf)
	}
}

// Slice returns the pending slice buf[a:p] and resets the anchor to p.
func (c *Cursor) Slice() []byte {
	s := c.buf[c.a:c.p]
	c.a = c.p
	return s
}

// SliceSkip returns buf[a:p-k], excluding the last k consumed bytes,
// and resets the anchor to p. It fails if k exceeds the pending
// slice length (p - a); callers must treat that as a parse error, not a
// panic.
func (c *Cursor) SliceSkip(k int) ([]byte, error) {
	if k > c.p-c.a {
		return nil, ErrSkipTooLarge
	}
	s := c.buf[c.a : c.p-k]
	c.a = c.p
	return s, nil
}

// TakeUntil advances p while pred(buf[p]) is false, stopping at the
// first matching byte or at end-of-buffer, then returns the accumulated
// slice buf[a:p] with ok=true if it is non-empty, or a nil slice with
// ok=false if it is empty. A non-empty slice is returned the same way
// whether pred matched or end-of-buffer was reached; callers
// distinguish the two via AtEnd.
func (c *Cursor) TakeUntil(pred func(byte) bool) (s []byte, ok bool) {
	for c.p < len(c.buf) && !pred(c.buf[c.p]) {
		c.p++
	}
	s = c.Slice()
	if len(s) == 0 {
		return nil, false
	}
	return s, true
}

// AtEnd reports whether the cursor has reached the end of the buffer.
func (c *Cursor) AtEnd() bool { return c.p >= len(c.buf) }

// Remaining returns the read-only, unconsumed suffix buf[p:len(buf)],
// used by the batched validators to load fixed-size windows.
func (c *Cursor) Remaining() []byte { return c.buf[c.p:] }

// HasRemaining reports whether at least n bytes remain from p.
func (c *Cursor) HasRemaining(n int) bool { return len(c.buf)-c.p >= n }
