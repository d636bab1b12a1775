package enum

import (
	"errors"
	"fmt"
)

var (
	// ErrCaseNotFound is matched by errors.Is for every CaseNotFoundError.
	ErrCaseNotFound = errors.New("enum case not found")
	// ErrDuplicateResolvedValue is matched by errors.Is for every DuplicateResolvedValueError.
	ErrDuplicateResolvedValue = errors.New("duplicate resolved enum value")
	// ErrInvalidBackingType is matched by errors.Is for every InvalidBackingTypeError.
	ErrInvalidBackingType = errors.New("invalid enum backing type")
)

// CaseNotFoundError reports a lookup that matched no case, either by name or
// by backing value.
type CaseNotFoundError struct {
	Type    string
	Name    string
	Backing *Scalar
}

func (e *CaseNotFoundError) Error() string {
	if e.Backing != nil {
		return fmt.Sprintf("invalid backing value %s (%s) for %s", e.Backing, e.Backing.Kind(), e.Type)
	}
	return fmt.Sprintf("enum case %s does not exist in %s", e.Name, e.Type)
}

func (e *CaseNotFoundError) Unwrap() error { return ErrCaseNotFound }

// DuplicateResolvedValueError is returned when two cases of one type resolve
// to the same backing value during materialization.
type DuplicateResolvedValueError struct {
	Type   string
	First  string
	Second string
	Value  Scalar
}

func (e *DuplicateResolvedValueError) Error() string {
	return fmt.Sprintf("enum %s: cases %s and %s both resolve to %s", e.Type, e.First, e.Second, e.Value)
}

func (e *DuplicateResolvedValueError) Unwrap() error { return ErrDuplicateResolvedValue }

// InvalidBackingTypeError is returned when a backing value is neither an
// integer, a string, nor nil, or is an unsigned integer too large for int64.
type InvalidBackingTypeError struct {
	GoType   string
	Overflow bool
}

func (e *InvalidBackingTypeError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("enum value of type %s overflows int64", e.GoType)
	}
	return fmt.Sprintf("enum value must be int, string, or nil, got %s", e.GoType)
}

func (e *InvalidBackingTypeError) Unwrap() error { return ErrInvalidBackingType }
