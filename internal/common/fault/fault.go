// Released under an MIT license. See LICENSE.

// Package fault provides the error kinds raised while evaluating a line.
//
// Faults are thrown as panics and recovered exactly once, at the session
// boundary. They terminate the current line but never the session.
package fault

import "fmt"

// Kind classifies a fault.
type Kind int

// Fault kinds.
const (
	Parse Kind = iota
	UnknownOperation
	Domain
	DivisionByZero
	Overflow
	UnboundName
)

// T (fault) is a recoverable evaluation failure.
type T struct {
	kind Kind
	msg  string
}

type fault = T

// New creates a new fault of kind k.
func New(k Kind, format string, args ...interface{}) *T {
	return &fault{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Throw panics with a new fault of kind k.
func Throw(k Kind, format string, args ...interface{}) {
	panic(New(k, format, args...))
}

// Error returns the single-line message for the fault f.
func (f *fault) Error() string {
	return f.kind.String() + ": " + f.msg
}

// Kind returns the kind of the fault f.
func (f *fault) Kind() Kind {
	return f.kind
}

// Message returns the cause description for the fault f.
func (f *fault) Message() string {
	return f.msg
}

// String returns a label for the kind k.
func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse error"
	case UnknownOperation:
		return "unknown operation"
	case Domain:
		return "domain error"
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "overflow"
	case UnboundName:
		return "unbound name"
	}

	return "fault"
}
