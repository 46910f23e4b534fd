// Package wire holds the shared request/header/error types that both
// the public httpcore package and the internal parsing packages
// (decode, validate, reqparser) need to refer to. Splitting them out
// here avoids an import cycle: httpcore imports internal/reqparser,
// and internal/reqparser's decoders need to return a Method/Version
// value without importing back up to httpcore. httpcore's exported
// Method, Version, Span, Header, Request, ErrorKind and Error are type
// aliases of the definitions here.
package wire

import "fmt"

// Span is a half-open byte range [Start, End) into a caller-owned
// input buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes spanned.
func (s Span) Len() int { return s.End - s.Start }

// Slice returns the bytes s addresses within buf.
func (s Span) Slice(buf []byte) []byte { return buf[s.Start:s.End] }

// Method is a tagged enum over the eight recognized HTTP methods.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodGet
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodTrace
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodHead:
		return "HEAD"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	case MethodConnect:
		return "CONNECT"
	case MethodOptions:
		return "OPTIONS"
	case MethodTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Version is a tagged enum over the four protocol versions the parser
// can identify in a request line's version field.
type Version uint8

const (
	VersionUnknown Version = iota
	VersionHTTP10
	VersionHTTP11
	VersionHTTP2
	VersionHTTP3
)

func (v Version) String() string {
	switch v {
	case VersionHTTP10:
		return "HTTP/1.0"
	case VersionHTTP11:
		return "HTTP/1.1"
	case VersionHTTP2:
		return "HTTP/2"
	case VersionHTTP3:
		return "HTTP/3"
	default:
		return "UNKNOWN"
	}
}

// Header is a single (name, value) pair as byte ranges into the input
// buffer.
type Header struct {
	Name  Span
	Value Span
}

// DefaultMaxHeaders is the default capacity a caller should reserve for
// header storage.
const DefaultMaxHeaders = 96

// Request is the fully parsed view produced by a Complete Parse call.
type Request struct {
	Method      Method
	Target      Span
	Version     Version
	Headers     []Header
	HeaderCount int
	Consumed    int
}

// ErrorKind is the closed set of ways a parse can fail.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	ErrMethod
	ErrTarget
	ErrVersion
	ErrHeaderName
	ErrHeaderValue
	ErrNewLine
	ErrCapacity
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMethod:
		return "invalid method"
	case ErrTarget:
		return "invalid request-target"
	case ErrVersion:
		return "invalid HTTP-version"
	case ErrHeaderName:
		return "invalid header name"
	case ErrHeaderValue:
		return "invalid header value"
	case ErrNewLine:
		return "expected CRLF"
	case ErrCapacity:
		return "too many headers"
	default:
		return "unknown parse error"
	}
}

// Error is the structured, terminal error a parse returns when the
// input cannot form a valid request.
type Error struct {
	Kind     ErrorKind
	Position int
}

func (e *Error) Error() string {
	return fmt.Sprintf("httpcore: %s at byte %d", e.Kind, e.Position)
}

// Is reports whether target is an *Error with the same Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}
