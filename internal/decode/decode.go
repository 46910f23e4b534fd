// Package decode implements the fixed-width "wide-word" method and
// HTTP-version decoders: both alphabets are tiny and have a fixed
// maximum length, so a single 8-byte load beats a per-byte walk.
//
// This generalizes the common pattern of comparing a fixed-length
// prefix against a handful of known literals (b2s(b[:n]) != "HTTP/1.1"
// and the like) into genuine masked word loads: one load, one compare
// per candidate, no substring comparison.
package decode

import "encoding/binary"

// Status is the outcome of a wide-word decode attempt.
type Status uint8

const (
	// Matched means a recognized literal was found; N holds its length.
	Matched Status = iota
	// NeedMore means fewer than 8 bytes were available to decode from —
	// the caller should report Partial rather than an error.
	NeedMore
	// NoMatch means 8 or more bytes were available but none of the
	// recognized literals matched.
	NoMatch
)

// wordLow loads up to 8 bytes of b as a native-endian word, zero-padding
// past len(b). Callers only rely on this for n <= len(b).
func wordLow(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.NativeEndian.Uint64(buf[:])
}

// packLiteral returns the native-endian word for the first len(s)
// bytes of s, zero-padded past len(s); it is used to precompute the
// match constants. Masking a loaded word down to a candidate's length
// is done with maskFor.
func packLiteral(s string) uint64 {
	var buf [8]byte
	copy(buf[:], s)
	return binary.NativeEndian.Uint64(buf[:])
}

// maskFor returns a mask with the low n bytes set (n <= 8).
func maskFor(n int) uint64 {
	if n >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (8 * uint(n))) - 1
}
