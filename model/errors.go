package model

import "fmt"

// Kind is the closed set of error conditions that can cross any boundary in
// the engine: model construction, transitions, simulator stepping, random
// variate sampling, thinning evaluation, and output analysis.
type Kind int

const (
	_ Kind = iota
	// KindModelNotFound means a lookup by model id found nothing.
	KindModelNotFound
	// KindPortNotFound means a lookup by port name found nothing.
	KindPortNotFound
	// KindInvalidMessage means a model received a message on a port it
	// does not recognize as an input.
	KindInvalidMessage
	// KindInvalidModelState means a state machine reached a combination
	// its contract declares unreachable.
	KindInvalidModelState
	// KindDistributionParamError means a random variable was constructed
	// or sampled with out-of-domain parameters.
	KindDistributionParamError
	// KindEmptyPolynomial means a thinning function was evaluated with no
	// coefficients.
	KindEmptyPolynomial
	// KindPrerequisiteCalcError means an output-analysis method was
	// called in an order its preconditions forbid.
	KindPrerequisiteCalcError
	// KindFloatConvError means an integer-to-float conversion would lose
	// information.
	KindFloatConvError
	// KindDroppedMessageError means analysis code expected a paired
	// message that never arrived.
	KindDroppedMessageError
	// KindSerializationError means configuration decoding or encoding
	// failed.
	KindSerializationError
)

func (k Kind) String() string {
	switch k {
	case KindModelNotFound:
		return "ModelNotFound"
	case KindPortNotFound:
		return "PortNotFound"
	case KindInvalidMessage:
		return "InvalidMessage"
	case KindInvalidModelState:
		return "InvalidModelState"
	case KindDistributionParamError:
		return "DistributionParamError"
	case KindEmptyPolynomial:
		return "EmptyPolynomial"
	case KindPrerequisiteCalcError:
		return "PrerequisiteCalcError"
	case KindFloatConvError:
		return "FloatConvError"
	case KindDroppedMessageError:
		return "DroppedMessageError"
	case KindSerializationError:
		return "SerializationError"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with the operation that produced it and, optionally,
// an underlying cause. Callers compare against a Kind with Is, not against
// a concrete error value.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, model.Kind) style comparisons work by matching on
// Kind rather than on a specific *Error value.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// NewError constructs an *Error for the given kind and operation.
func NewError(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// WrapError constructs an *Error carrying an underlying cause.
func WrapError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Sentinel returns a bare *Error of the given kind, suitable as an
// errors.Is target: errors.Is(err, model.Sentinel(model.KindPortNotFound)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
