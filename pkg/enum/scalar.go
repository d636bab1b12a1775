package enum

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the backing kind of an enumeration case or type.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindText:
		return "string"
	default:
		return "unknown"
	}
}

// Scalar is a backing value: an integer, a text, or absent. Scalars are
// comparable, and equality is strict on both kind and value, so Int(0) never
// equals Text("0").
type Scalar struct {
	kind Kind
	i    int64
	s    string
}

// None is the absent backing value.
var None = Scalar{}

func Int(v int64) Scalar { return Scalar{kind: KindInt, i: v} }

func Text(v string) Scalar { return Scalar{kind: KindText, s: v} }

// ScalarOf converts a Go value into a Scalar. Only integer kinds, string and
// nil are accepted; unsigned values above math.MaxInt64 are rejected.
func ScalarOf(v any) (Scalar, error) {
	switch x := v.(type) {
	case nil:
		return None, nil
	case Scalar:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint:
		return fromUnsigned(uint64(x), v)
	case uint64:
		return fromUnsigned(x, v)
	case uintptr:
		return fromUnsigned(uint64(x), v)
	case string:
		return Text(x), nil
	default:
		return None, &InvalidBackingTypeError{GoType: fmt.Sprintf("%T", v)}
	}
}

func fromUnsigned(x uint64, v any) (Scalar, error) {
	if x > math.MaxInt64 {
		return None, &InvalidBackingTypeError{GoType: fmt.Sprintf("%T", v), Overflow: true}
	}
	return Int(int64(x)), nil
}

func (s Scalar) Kind() Kind { return s.kind }

func (s Scalar) IsNone() bool { return s.kind == KindNone }

// Int returns the integer value and whether the scalar is an integer.
func (s Scalar) Int() (int64, bool) { return s.i, s.kind == KindInt }

// Text returns the text value and whether the scalar is a text.
func (s Scalar) Text() (string, bool) { return s.s, s.kind == KindText }

func (s Scalar) String() string {
	switch s.kind {
	case KindInt:
		return strconv.FormatInt(s.i, 10)
	case KindText:
		return strconv.Quote(s.s)
	default:
		return "null"
	}
}
