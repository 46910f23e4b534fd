// Package httpcore implements a zero-copy HTTP/1.1 request-line and
// header parser optimized for high-throughput servers.
//
// The parser is purely single-threaded, non-blocking and allocation-free
// on the hot path. It never mutates or retains the caller's input buffer;
// every parsed field is a half-open byte range ([Span]) into that buffer.
// A single call to [Parse] is safe to repeat on a longer prefix of the
// same logical request, which lets a connection reader accumulate bytes
// across many reads and re-parse from byte 0 each time until it sees a
// complete result or an [Error].
//
// Request body decoding, HTTP/2 and HTTP/3 parsing, URI normalization,
// percent-decoding and header semantics are out of scope: this package
// only locates the boundaries of the request-line and header block.
package httpcore
