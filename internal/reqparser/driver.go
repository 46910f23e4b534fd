// Package reqparser implements the stateful, restartable request-line
// and header parse driver: it composes the token classifier, cursor,
// wide-word decoders and batched validators into a single pass over the
// input that returns Complete, Partial or a structured Error.
//
// The state sequence (method, target, version, discard newline,
// headers) and the header loop's colon/OWS/CRLF handling follow the
// shape of comparable hand-rolled HTTP/1.1 line parsers, generalized
// here to produce offset ranges into the caller's buffer rather than
// owning or copying it.
package reqparser

import (
	"github.com/soypat/httpcore/internal/cursor"
	"github.com/soypat/httpcore/internal/decode"
	"github.com/soypat/httpcore/internal/token"
	"github.com/soypat/httpcore/internal/validate"
	"github.com/soypat/httpcore/internal/wire"
)

// Options controls non-default parsing behavior.
type Options struct {
	// AcceptALPNVersions allows the version field to carry HTTP/2 or
	// HTTP/3's version literal without producing an Error. This driver
	// only ever parses an HTTP/1.1-shaped request-line and header
	// block; the toggle exists for callers that dispatch by
	// ALPN-negotiated protocol and want the version field surfaced
	// rather than rejected outright, rather than for parsing either
	// protocol's actual framing.
	AcceptALPNVersions bool
}

// Parse runs the request-line/header state machine over input with
// default Options, writing up to len(headers) header pairs into the
// caller-supplied headers slice.
func Parse(input []byte, headers []wire.Header) (req wire.Request, complete bool, err *wire.Error) {
	return ParseOptions(input, headers, Options{})
}

// ParseOptions is Parse with explicit Options. It is a pure function of
// (input, len(headers), opts): parsing the same bytes with the same
// capacity and options twice yields identical results.
//
// On success (complete=true, err=nil) req is fully populated and
// req.Headers aliases headers[:req.HeaderCount]. On a Partial result
// (complete=false, err=nil) the input is a valid but incomplete prefix;
// every field of req is undefined and must not be read — Parse commits
// to req only when it reaches the Done state. On err != nil the request
// is terminal and must be discarded.
func ParseOptions(input []byte, headers []wire.Header, opts Options) (req wire.Request, complete bool, err *wire.Error) {
	c := cursor.New(input)

	method, ok, perr := parseMethod(&c)
	if perr != nil || !ok {
		return wire.Request{}, false, perr
	}

	target, ok, perr := parseTarget(&c)
	if perr != nil || !ok {
		return wire.Request{}, false, perr
	}

	version, ok, perr := parseVersion(&c, opts)
	if perr != nil || !ok {
		return wire.Request{}, false, perr
	}

	headerCount, ok, perr := parseHeaders(&c, headers)
	if perr != nil || !ok {
		return wire.Request{}, false, perr
	}

	return wire.Request{
		Method:      method,
		Target:      target,
		Version:     version,
		Headers:     headers[:headerCount],
		HeaderCount: headerCount,
		Consumed:    c.Pos(),
	}, true, nil
}

// parseMethod consumes "METHOD SP" from the start of the cursor.
func parseMethod(c *cursor.Cursor) (m wire.Method, ok bool, err *wire.Error) {
	start := c.Pos()
	remaining := c.Remaining()
	m, n, status := decode.Method(remaining)
	switch status {
	case decode.NeedMore:
		return 0, false, nil // Partial
	case decode.NoMatch:
		return 0, false, &wire.Error{Kind: wire.ErrMethod, Position: start}
	}
	if remaining[n] != ' ' {
		return 0, false, &wire.Error{Kind: wire.ErrMethod, Position: start + n}
	}
	c.Advance(n + 1)
	return m, true, nil
}

// parseTarget consumes "TARGET SP" from the current cursor position.
func parseTarget(c *cursor.Cursor) (target wire.Span, ok bool, err *wire.Error) {
	start := c.Pos()
	remaining := c.Remaining()
	k := validate.Count(token.ClassRequestTarget, remaining)
	if k == len(remaining) {
		return wire.Span{}, false, nil // Partial: no terminator found yet
	}
	if k == 0 {
		return wire.Span{}, false, &wire.Error{Kind: wire.ErrTarget, Position: start}
	}
	if remaining[k] != ' ' {
		return wire.Span{}, false, &wire.Error{Kind: wire.ErrTarget, Position: start + k}
	}
	target = wire.Span{Start: start, End: start + k}
	c.Advance(k + 1)
	return target, true, nil
}

// parseVersion consumes "VERSION CRLF" from the current cursor
// position. HTTP/2 and HTTP/3 version literals are rejected with
// ErrVersion unless opts.AcceptALPNVersions is set.
func parseVersion(c *cursor.Cursor, opts Options) (v wire.Version, ok bool, err *wire.Error) {
	start := c.Pos()
	remaining := c.Remaining()
	v, n, status := decode.Version(remaining)
	switch status {
	case decode.NeedMore:
		return 0, false, nil // Partial
	case decode.NoMatch:
		return 0, false, &wire.Error{Kind: wire.ErrVersion, Position: start}
	}
	if (v == wire.VersionHTTP2 || v == wire.VersionHTTP3) && !opts.AcceptALPNVersions {
		return 0, false, &wire.Error{Kind: wire.ErrVersion, Position: start}
	}
	if len(remaining) < n+2 {
		return 0, false, nil // Partial: CRLF may still arrive
	}
	if remaining[n] != '\r' || remaining[n+1] != '\n' {
		return 0, false, &wire.Error{Kind: wire.ErrNewLine, Position: start + n}
	}
	c.Advance(n + 2)
	return v, true, nil
}

// parseHeaders consumes zero or more header-field lines followed by the
// terminating empty line, writing into headers as it goes.
func parseHeaders(c *cursor.Cursor, headers []wire.Header) (count int, done bool, err *wire.Error) {
	for {
		end, ok, perr := tryEndOfHeaders(c)
		if perr != nil {
			return count, false, perr
		}
		if !ok {
			return count, false, nil // Partial
		}
		if end {
			return count, true, nil
		}

		name, ok, perr := parseHeaderName(c)
		if perr != nil || !ok {
			return count, false, perr
		}

		if perr := skipOWS(c); perr != nil {
			return count, false, perr
		}

		value, ok, perr := parseHeaderValue(c)
		if perr != nil || !ok {
			return count, false, perr
		}

		if count >= len(headers) {
			return count, false, &wire.Error{Kind: wire.ErrCapacity, Position: c.Pos()}
		}
		headers[count] = wire.Header{Name: name, Value: value}
		count++
	}
}

// tryEndOfHeaders peeks at the current position: ok=false means more
// data is needed to decide; end=true means the CRLF empty line (and
// thus the header section) was consumed.
func tryEndOfHeaders(c *cursor.Cursor) (end bool, ok bool, err *wire.Error) {
	start := c.Pos()
	remaining := c.Remaining()
	if len(remaining) == 0 {
		return false, false, nil
	}
	if remaining[0] == '\r' {
		if len(remaining) < 2 {
			return false, false, nil
		}
		if remaining[1] != '\n' {
			return false, false, &wire.Error{Kind: wire.ErrNewLine, Position: start}
		}
		c.Advance(2)
		return true, true, nil
	}
	if remaining[0] == '\n' {
		return false, false, &wire.Error{Kind: wire.ErrNewLine, Position: start}
	}
	return false, true, nil
}

// parseHeaderName consumes "NAME :" and returns NAME's span.
func parseHeaderName(c *cursor.Cursor) (name wire.Span, ok bool, err *wire.Error) {
	start := c.Pos()
	remaining := c.Remaining()
	k := validate.Count(token.ClassHeaderName, remaining)
	if k == len(remaining) {
		return wire.Span{}, false, nil // Partial
	}
	if k == 0 {
		return wire.Span{}, false, &wire.Error{Kind: wire.ErrHeaderName, Position: start}
	}
	if remaining[k] != ':' {
		return wire.Span{}, false, &wire.Error{Kind: wire.ErrHeaderName, Position: start + k}
	}
	name = wire.Span{Start: start, End: start + k}
	c.Advance(k + 1)
	return name, true, nil
}

// skipOWS consumes zero or more SP/HTAB bytes after the header colon.
func skipOWS(c *cursor.Cursor) *wire.Error {
	for {
		b, ok := c.Peek()
		if !ok {
			return nil // Partial is signaled by the following value parse
		}
		if b != ' ' && b != '\t' {
			return nil
		}
		c.Advance(1)
	}
}

// parseHeaderValue consumes "VALUE CRLF" and returns VALUE's span with
// trailing OWS trimmed, as RFC 9110 §5.5 requires.
func parseHeaderValue(c *cursor.Cursor) (value wire.Span, ok bool, err *wire.Error) {
	start := c.Pos()
	remaining := c.Remaining()
	k := validate.Count(token.ClassHeaderValue, remaining)
	if k == len(remaining) {
		return wire.Span{}, false, nil // Partial
	}
	if k == 0 {
		return wire.Span{}, false, &wire.Error{Kind: wire.ErrHeaderValue, Position: start}
	}
	end := start + k
	for end > start && (remaining[end-start-1] == ' ' || remaining[end-start-1] == '\t') {
		end--
	}
	c.Advance(k)

	afterValue := c.Remaining()
	if len(afterValue) < 2 {
		return wire.Span{}, false, nil // Partial: CRLF may still arrive
	}
	if afterValue[0] != '\r' || afterValue[1] != '\n' {
		return wire.Span{}, false, &wire.Error{Kind: wire.ErrNewLine, Position: c.Pos()}
	}
	c.Advance(2)
	return wire.Span{Start: start, End: end}, true, nil
}
