package httpcore

import "github.com/soypat/httpcore/internal/wire"

// ErrorKind is the closed set of ways a Parse call can fail. Every value
// is distinguishable by the caller; there is no generic/unknown kind.
type ErrorKind = wire.ErrorKind

// Error kinds, grouped by the parse stage that raises them.
const (
	ErrMethod      = wire.ErrMethod
	ErrTarget      = wire.ErrTarget
	ErrVersion     = wire.ErrVersion
	ErrHeaderName  = wire.ErrHeaderName
	ErrHeaderValue = wire.ErrHeaderValue
	ErrNewLine     = wire.ErrNewLine
	ErrCapacity    = wire.ErrCapacity
)

// Error is the structured, terminal error a [Parse] call returns when
// the input cannot form a valid request. Parse never returns a partial
// mutation of its Request output alongside an Error.
type Error = wire.Error
