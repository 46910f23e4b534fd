package httpcore

import "github.com/soypat/httpcore/internal/wire"

// Span is a half-open byte range [Start, End) into a caller-owned input
// buffer. Every byte range returned by [Parse] (the target and each
// header name and value) is a Span; they remain valid only as long as
// the input buffer that produced them lives.
type Span = wire.Span

// Method is a tagged enum over the eight HTTP methods this parser
// recognizes. No other uppercase token is accepted; an unrecognized
// token yields an Error of kind [ErrMethod].
type Method = wire.Method

// Recognized methods. MethodUnknown is the zero value; the order of
// these constants is not the order in which the wide-word decoder tests
// the method literals (it tests the longest literals first).
const (
	MethodUnknown = wire.MethodUnknown
	MethodGet     = wire.MethodGet
	MethodHead    = wire.MethodHead
	MethodPost    = wire.MethodPost
	MethodPut     = wire.MethodPut
	MethodDelete  = wire.MethodDelete
	MethodConnect = wire.MethodConnect
	MethodOptions = wire.MethodOptions
	MethodTrace   = wire.MethodTrace
)

// Version is a tagged enum over the four protocol versions the parser
// can identify in a request line's version field.
type Version = wire.Version

const (
	VersionUnknown = wire.VersionUnknown
	VersionHTTP10  = wire.VersionHTTP10
	VersionHTTP11  = wire.VersionHTTP11
	VersionHTTP2   = wire.VersionHTTP2
	VersionHTTP3   = wire.VersionHTTP3
)

// Header is a single (name, value) pair as byte ranges into the input
// buffer. Both Name and Value are guaranteed non-empty and to contain
// only bytes of their respective token class (tchar for Name, field-vchar
// plus HTAB for Value) once a complete result has been returned.
type Header = wire.Header

// DefaultMaxHeaders is the default capacity a caller should reserve for
// header storage when it has no stronger opinion. RFC 9110 leaves header
// count unbounded; this parser requires callers to pick a bound so that
// adversarial input cannot force unbounded memory use.
const DefaultMaxHeaders = wire.DefaultMaxHeaders

// Request is the fully parsed view produced by a [Parse] call that
// reports complete=true. Its Target and the Name and Value of each
// header are subranges of the input buffer passed to Parse. On any
// non-complete result the fields of Request are undefined and must not
// be read.
type Request = wire.Request
