package reqparser

import (
	"testing"

	"github.com/soypat/httpcore/internal/wire"
)

func parse(t *testing.T, in string, n int) (wire.Request, bool, *wire.Error) {
	t.Helper()
	headers := make([]wire.Header, n)
	return Parse([]byte(in), headers)
}

func TestMinimalGET(t *testing.T) {
	req, complete, err := parse(t, "GET / HTTP/1.1\r\n\r\n", 8)
	if err != nil || !complete {
		t.Fatalf("Parse: complete=%v err=%v", complete, err)
	}
	if req.Method != wire.MethodGet {
		t.Errorf("Method = %v, want GET", req.Method)
	}
	if req.Version != wire.VersionHTTP11 {
		t.Errorf("Version = %v, want HTTP/1.1", req.Version)
	}
	if req.HeaderCount != 0 {
		t.Errorf("HeaderCount = %d, want 0", req.HeaderCount)
	}
	if req.Consumed != len("GET / HTTP/1.1\r\n\r\n") {
		t.Errorf("Consumed = %d, want %d", req.Consumed, len("GET / HTTP/1.1\r\n\r\n"))
	}
}

func TestSingleHeader(t *testing.T) {
	in := "GET /index HTTP/1.1\r\nHost: www.example.org\r\n\r\n"
	req, complete, err := parse(t, in, 8)
	if err != nil || !complete {
		t.Fatalf("Parse: complete=%v err=%v", complete, err)
	}
	if req.HeaderCount != 1 {
		t.Fatalf("HeaderCount = %d, want 1", req.HeaderCount)
	}
	h := req.Headers[0]
	if name := h.Name.Slice([]byte(in)); string(name) != "Host" {
		t.Errorf("header name = %q, want Host", name)
	}
	if val := h.Value.Slice([]byte(in)); string(val) != "www.example.org" {
		t.Errorf("header value = %q, want www.example.org", val)
	}
}

func TestOWSAfterColonAndHTAB(t *testing.T) {
	in := "POST /x HTTP/1.1\r\nX-A:\tv\r\n\r\n"
	req, complete, err := parse(t, in, 8)
	if err != nil || !complete {
		t.Fatalf("Parse: complete=%v err=%v", complete, err)
	}
	if req.HeaderCount != 1 {
		t.Fatalf("HeaderCount = %d, want 1", req.HeaderCount)
	}
	h := req.Headers[0]
	if name := h.Name.Slice([]byte(in)); string(name) != "X-A" {
		t.Errorf("header name = %q, want X-A", name)
	}
	if val := h.Value.Slice([]byte(in)); string(val) != "v" {
		t.Errorf("header value = %q, want v", val)
	}
}

func TestTrailingOWSTrimmedFromValue(t *testing.T) {
	in := "GET / HTTP/1.1\r\nX-A: v   \r\n\r\n"
	req, complete, err := parse(t, in, 8)
	if err != nil || !complete {
		t.Fatalf("Parse: complete=%v err=%v", complete, err)
	}
	val := req.Headers[0].Value.Slice([]byte(in))
	if string(val) != "v" {
		t.Errorf("header value = %q, want %q", val, "v")
	}
}

func TestUnknownMethod(t *testing.T) {
	_, complete, err := parse(t, "FOO / HTTP/1.1\r\n\r\n", 8)
	if complete || err == nil || err.Kind != wire.ErrMethod {
		t.Fatalf("complete=%v err=%v, want ErrMethod", complete, err)
	}
}

func TestBareLF(t *testing.T) {
	_, complete, err := parse(t, "GET / HTTP/1.1\nHost: h\n\n", 8)
	if complete || err == nil || err.Kind != wire.ErrNewLine {
		t.Fatalf("complete=%v err=%v, want ErrNewLine", complete, err)
	}
}

func TestPartialThenComplete(t *testing.T) {
	_, complete, err := parse(t, "GET / HTTP/1.", 8)
	if err != nil || complete {
		t.Fatalf("short input: complete=%v err=%v, want Partial", complete, err)
	}

	req, complete, err := parse(t, "GET / HTTP/1.1\r\n\r\n", 8)
	if err != nil || !complete {
		t.Fatalf("completed input: complete=%v err=%v", complete, err)
	}
	if req.Method != wire.MethodGet {
		t.Errorf("Method = %v, want GET", req.Method)
	}
}

func TestTargetClassRejection(t *testing.T) {
	in := "GET /a\x7Fb HTTP/1.1\r\n\r\n"
	_, complete, err := parse(t, in, 8)
	if complete || err == nil || err.Kind != wire.ErrTarget {
		t.Fatalf("complete=%v err=%v, want ErrTarget", complete, err)
	}
}

func TestEmptyTarget(t *testing.T) {
	_, complete, err := parse(t, "GET  HTTP/1.1\r\n\r\n", 8)
	if complete || err == nil || err.Kind != wire.ErrTarget {
		t.Fatalf("complete=%v err=%v, want ErrTarget", complete, err)
	}
}

func TestHeaderCapacity(t *testing.T) {
	in := "GET / HTTP/1.1\r\n"
	for i := 0; i < 97; i++ {
		in += "X-A: v\r\n"
	}
	in += "\r\n"
	_, complete, err := parse(t, in, 96)
	if complete || err == nil || err.Kind != wire.ErrCapacity {
		t.Fatalf("complete=%v err=%v, want ErrCapacity", complete, err)
	}
}

func TestVersionMismatch(t *testing.T) {
	_, complete, err := parse(t, "GET / HTTP/9.9\r\n\r\n", 8)
	if complete || err == nil || err.Kind != wire.ErrVersion {
		t.Fatalf("complete=%v err=%v, want ErrVersion", complete, err)
	}
}

func TestHTTP2VersionRejectedByDefault(t *testing.T) {
	headers := make([]wire.Header, 8)
	_, complete, err := Parse([]byte("GET / HTTP/2\r\n\r\n"), headers)
	if complete || err == nil || err.Kind != wire.ErrVersion {
		t.Fatalf("complete=%v err=%v, want ErrVersion", complete, err)
	}
}

func TestHTTP2VersionAcceptedWithOption(t *testing.T) {
	headers := make([]wire.Header, 8)
	req, complete, err := ParseOptions([]byte("GET / HTTP/2\r\n\r\n"), headers, Options{AcceptALPNVersions: true})
	if err != nil || !complete {
		t.Fatalf("complete=%v err=%v", complete, err)
	}
	if req.Version != wire.VersionHTTP2 {
		t.Errorf("Version = %v, want HTTP/2", req.Version)
	}
}

func TestNoOverreach(t *testing.T) {
	in := "GET / HTTP/1.1\r\n\r\nGARBAGE AFTER"
	req, complete, err := parse(t, in, 8)
	if err != nil || !complete {
		t.Fatalf("complete=%v err=%v", complete, err)
	}
	if want := len("GET / HTTP/1.1\r\n\r\n"); req.Consumed != want {
		t.Errorf("Consumed = %d, want %d (must not read trailing bytes)", req.Consumed, want)
	}
}

// Prefix monotonicity: if parsing a prefix of input yields Partial,
// parsing a longer prefix (up to and including the full valid request)
// must not yield an Error.
func TestPrefixMonotonicity(t *testing.T) {
	full := "GET /path HTTP/1.1\r\nHost: example.org\r\nAccept: */*\r\n\r\n"
	for i := 1; i < len(full); i++ {
		_, complete, err := parse(t, full[:i], 8)
		if err != nil {
			t.Fatalf("prefix len=%d produced error %v before completion", i, err)
		}
		if complete && i != len(full) {
			t.Fatalf("prefix len=%d reported complete early", i)
		}
	}
	_, complete, err := parse(t, full, 8)
	if err != nil || !complete {
		t.Fatalf("full input: complete=%v err=%v", complete, err)
	}
}

// Idempotence: parsing identical input with the same header capacity
// twice gives identical results.
func TestIdempotence(t *testing.T) {
	in := "GET /path HTTP/1.1\r\nHost: example.org\r\n\r\n"
	req1, complete1, err1 := parse(t, in, 8)
	req2, complete2, err2 := parse(t, in, 8)
	if complete1 != complete2 || (err1 == nil) != (err2 == nil) {
		t.Fatalf("non-deterministic result: (%v,%v) vs (%v,%v)", complete1, err1, complete2, err2)
	}
	if complete1 && (req1.Method != req2.Method || req1.Consumed != req2.Consumed || req1.HeaderCount != req2.HeaderCount) {
		t.Fatalf("non-deterministic request: %+v vs %+v", req1, req2)
	}
}

// Round-trip (request-line): for every method, a set of
// request-targets and each version accepted under default Options
// (HTTP/1.0 and HTTP/1.1), "{method} {target} {version}\r\n\r\n" parses
// to exactly that method, target and version with no headers.
func TestRoundTripRequestLine(t *testing.T) {
	methods := []struct {
		lit string
		m   wire.Method
	}{
		{"GET", wire.MethodGet}, {"HEAD", wire.MethodHead}, {"POST", wire.MethodPost},
		{"PUT", wire.MethodPut}, {"DELETE", wire.MethodDelete}, {"CONNECT", wire.MethodConnect},
		{"OPTIONS", wire.MethodOptions}, {"TRACE", wire.MethodTrace},
	}
	versions := []struct {
		lit string
		v   wire.Version
	}{
		{"HTTP/1.0", wire.VersionHTTP10}, {"HTTP/1.1", wire.VersionHTTP11},
	}
	targets := []string{"/", "/a/b/c", "/index.html?q=1&r=2", "*"}

	for _, m := range methods {
		for _, v := range versions {
			for _, target := range targets {
				in := m.lit + " " + target + " " + v.lit + "\r\n\r\n"
				req, complete, err := parse(t, in, 8)
				if err != nil || !complete {
					t.Fatalf("input %q: complete=%v err=%v", in, complete, err)
				}
				if req.Method != m.m {
					t.Errorf("input %q: Method = %v, want %v", in, req.Method, m.m)
				}
				if req.Version != v.v {
					t.Errorf("input %q: Version = %v, want %v", in, req.Version, v.v)
				}
				if got := string(req.Target.Slice([]byte(in))); got != target {
					t.Errorf("input %q: Target = %q, want %q", in, got, target)
				}
				if req.HeaderCount != 0 {
					t.Errorf("input %q: HeaderCount = %d, want 0", in, req.HeaderCount)
				}
			}
		}
	}
}

func TestMissingColon(t *testing.T) {
	_, complete, err := parse(t, "GET / HTTP/1.1\r\nHost\r\n\r\n", 8)
	if complete || err == nil || err.Kind != wire.ErrHeaderName {
		t.Fatalf("complete=%v err=%v, want ErrHeaderName", complete, err)
	}
}

func TestEmptyHeaderValue(t *testing.T) {
	_, complete, err := parse(t, "GET / HTTP/1.1\r\nX-A:\r\n\r\n", 8)
	if complete || err == nil || err.Kind != wire.ErrHeaderValue {
		t.Fatalf("complete=%v err=%v, want ErrHeaderValue", complete, err)
	}
}
