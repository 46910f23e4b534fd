package httpcore

import "github.com/soypat/httpcore/internal/reqparser"

// Options controls non-default Parse behavior.
type Options struct {
	// AcceptALPNVersions allows the version field to carry HTTP/2's or
	// HTTP/3's version literal without producing an [ErrVersion] Error.
	// Parse never parses either protocol's actual framing; this only
	// lets a caller that dispatches connections by ALPN-negotiated
	// protocol observe the version field on a misdirected request
	// instead of receiving a bare rejection.
	AcceptALPNVersions bool
}

// Parse scans a single HTTP/1.1 request-line and header block from the
// start of input, with default Options. It is equivalent to
// ParseOptions(input, headers, Options{}).
func Parse(input []byte, headers []Header) (req Request, complete bool, err error) {
	return ParseOptions(input, headers, Options{})
}

// ParseOptions is Parse with explicit Options. headers is caller-owned
// storage for parsed header pairs; at most len(headers) headers are
// accepted, and a request presenting more reports a Capacity error.
// A successful ParseOptions performs no allocation: every span in the
// Request is a byte range into input, and headers is written in place.
// A failed call allocates the returned *Error.
//
// ParseOptions is restartable: called again with a longer prefix of the
// same byte stream, the same headers capacity and the same options, it
// either returns the same error, or advances toward (and eventually
// reaches) Complete — it never regresses from Partial to Error on a
// strict byte-for-byte extension of a request that is itself
// well-formed.
//
// complete reports whether a full request-line and header block (up to
// and including the terminating empty line) was found in input. When
// complete is false and err is nil, input is a valid but incomplete
// prefix and the caller should supply more bytes and call ParseOptions
// again; every field of req is undefined in that case. When err is
// non-nil, input contains a malformed request and parsing must not be
// retried with more data at this position.
func ParseOptions(input []byte, headers []Header, opts Options) (req Request, complete bool, err error) {
	r, complete, perr := reqparser.ParseOptions(input, headers, reqparser.Options{
		AcceptALPNVersions: opts.AcceptALPNVersions,
	})
	if perr != nil {
		return Request{}, false, perr
	}
	return r, complete, nil
}
