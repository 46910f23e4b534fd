package decode

import "github.com/soypat/httpcore/internal/wire"

type methodCandidate struct {
	method wire.Method
	lit    string
	word   uint64
	mask   uint64
}

var methodCandidates []methodCandidate

func init() {
	// Priority order: longest literal first within each length class, so
	// that any two methods sharing a prefix would be disambiguated
	// correctly. The eight recognized methods have no shared prefix of
	// distinguishing length, so this order only needs to be stable, not
	// load-bearing for correctness.
	order := []struct {
		m   wire.Method
		lit string
	}{
		{wire.MethodConnect, "CONNECT"},
		{wire.MethodOptions, "OPTIONS"},
		{wire.MethodDelete, "DELETE"},
		{wire.MethodTrace, "TRACE"},
		{wire.MethodHead, "HEAD"},
		{wire.MethodPost, "POST"},
		{wire.MethodGet, "GET"},
		{wire.MethodPut, "PUT"},
	}
	for _, o := range order {
		mask := maskFor(len(o.lit))
		methodCandidates = append(methodCandidates, methodCandidate{
			method: o.m,
			lit:    o.lit,
			word:   packLiteral(o.lit) & mask,
			mask:   mask,
		})
	}
}

// Method decodes an HTTP method from the start of b via a single 8-byte
// word load. It requires at least 8 bytes of input (the longest method
// literal plus its terminating SP); with fewer it reports NeedMore.
//
// On Matched, n is the method literal's length; the driver (not this
// decoder) is responsible for checking that b[n] == ' '.
func Method(b []byte) (m wire.Method, n int, status Status) {
	if len(b) < 8 {
		return wire.MethodUnknown, 0, NeedMore
	}
	word := wordLow(b)
	for _, c := range methodCandidates {
		if word&c.mask == c.word {
			return c.method, len(c.lit), Matched
		}
	}
	return wire.MethodUnknown, 0, NoMatch
}
