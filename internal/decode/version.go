package decode

import "github.com/soypat/httpcore/internal/wire"

type versionCandidate struct {
	version wire.Version
	lit     string
	word    uint64
	mask    uint64
}

var versionCandidates []versionCandidate

func init() {
	for _, o := range []struct {
		v   wire.Version
		lit string
	}{
		{wire.VersionHTTP10, "HTTP/1.0"},
		{wire.VersionHTTP11, "HTTP/1.1"},
		{wire.VersionHTTP2, "HTTP/2"},
		{wire.VersionHTTP3, "HTTP/3"},
	} {
		mask := maskFor(len(o.lit))
		versionCandidates = append(versionCandidates, versionCandidate{
			version: o.v,
			lit:     o.lit,
			word:    packLiteral(o.lit) & mask,
			mask:    mask,
		})
	}
}

// Version decodes an HTTP-version literal from the start of b via a
// single 8-byte word load. It requires at least 8 bytes of input;
// with fewer it reports NeedMore. On Matched, n is 8 for HTTP/1.0 and
// HTTP/1.1, or 6 for the masked HTTP/2 / HTTP/3 match.
func Version(b []byte) (v wire.Version, n int, status Status) {
	if len(b) < 8 {
		return wire.VersionUnknown, 0, NeedMore
	}
	word := wordLow(b)
	for _, c := range versionCandidates {
		if word&c.mask == c.word {
			return c.version, len(c.lit), Matched
		}
	}
	return wire.VersionUnknown, 0, NoMatch
}
