// Package validate implements the batched token-class validators:
// routines that scan windows of the cursor's remaining input and return
// the count of leading bytes belonging to a token class, falling back to
// the scalar classifier (internal/token) for any tail shorter than a
// window.
//
// Platform capability selection uses golang.org/x/sys/cpu to pick a
// 32-byte or 16-byte window on capable amd64/arm64 hosts, falling back
// to the scalar classifier everywhere else. Within a window each byte is
// tested with a per-byte lookup in the class's 256-bit bitmap
// (token.Bitmap); the scalar classifier uses the class's 256-entry table
// (token.Is). Neither path uses a byte-permute/pshufb encoding: a
// per-byte lookup has an identical contract and is far easier to keep
// provably correct. This keeps every path pure Go and exactly
// scalar-equivalent, which the equivalence tests in validate_test.go
// check.
package validate

import (
	"golang.org/x/sys/cpu"

	"github.com/soypat/httpcore/internal/token"
)

// Window is the batch size a validator processes per iteration.
type Window int

const (
	// WindowScalar means no batching is available on this platform; the
	// scalar classifier is used directly.
	WindowScalar Window = 1
	// WindowNarrow is the 16-byte batch size.
	WindowNarrow Window = 16
	// WindowWide is the 32-byte batch size.
	WindowWide Window = 32
)

// Selected is the window size chosen for this platform at process
// start, exposed for tests and diagnostics.
var Selected = detectWindow()

func detectWindow() Window {
	switch {
	case cpu.X86.HasAVX2:
		return WindowWide
	case cpu.X86.HasSSE41, cpu.ARM64.HasASIMD:
		return WindowNarrow
	default:
		return WindowScalar
	}
}

// isValid tests b against c's 256-bit membership bitmap rather than
// token.Is's table, so the batched scan and the scalar classifier are
// backed by two independently-built representations of the same class
// (built together in token.init, never allowed to drift) instead of one
// shared table both paths would trivially agree with.
func isValid(c token.Class, b byte) bool {
	bm := token.Bitmap(c)
	return bm[b>>6]&(1<<(b&0x3F)) != 0
}

// Count returns the number of leading bytes of b belonging to class c,
// batching the scan in windows of [Selected] size and falling back to
// the scalar classifier for any trailing partial window. Its
// consumption is always identical to repeatedly calling the scalar
// classifier: the first byte left unconsumed is exactly the first byte
// failing the predicate.
func Count(c token.Class, b []byte) int {
	return CountWindow(c, b, Selected)
}

// CountWindow is like Count but with an explicit window size, so tests
// can exercise all three paths (wide, narrow, scalar) regardless of the
// host's actual capabilities.
func CountWindow(c token.Class, b []byte, w Window) int {
	n := 0
	win := int(w)
	if win < 1 {
		win = 1
	}
	for len(b)-n >= win && win > 1 {
		k := firstInvalid(c, b[n:n+win])
		n += k
		if k < win {
			return n
		}
	}
	// Tail shorter than a full window: scan it with the scalar
	// classifier, which never reads past len(b) either.
	n += token.ScalarCount(c, b[n:])
	return n
}

// firstInvalid returns the index of the first byte in window that fails
// class c's predicate, or len(window) if all bytes pass.
func firstInvalid(c token.Class, window []byte) int {
	for i, b := range window {
		if !isValid(c, b) {
			return i
		}
	}
	return len(window)
}
