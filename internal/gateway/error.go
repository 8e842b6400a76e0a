package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure the way the console reports it:
// reads that never produced a payload, writes the server never
// applied, and writes the server understood but refused.
type Kind uint8

const (
	FetchFailed Kind = iota + 1
	MutationFailed
	ValidationRejected
)

func (k Kind) String() string {
	switch k {
	case FetchFailed:
		return "fetch failed"
	case MutationFailed:
		return "mutation failed"
	case ValidationRejected:
		return "validation rejected"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by every Gateway operation.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s: status %d: %s", e.Op, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind == kind
	}
	return false
}
