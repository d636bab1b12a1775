package enum

// Value is one resolved enumeration case. Values handed out by a Registry are
// singletons per (type, case): compare them by pointer.
type Value struct {
	name    string
	backing Scalar
}

// NewValue builds a standalone Value. backing must be an integer, a string or
// nil; anything else yields an InvalidBackingTypeError.
func NewValue(name string, backing any) (*Value, error) {
	scalar, err := ScalarOf(backing)
	if err != nil {
		return nil, err
	}
	return &Value{name: name, backing: scalar}, nil
}

// Name is the case name as declared.
func (v *Value) Name() string { return v.name }

// Backing is the resolved backing value.
func (v *Value) Backing() Scalar { return v.backing }

func (v *Value) String() string { return v.name }

// Member declares one case of an enumeration. A member whose Literal is None
// receives an auto-incremented integer when the type is materialized.
type Member struct {
	Name    string
	Literal Scalar
}

func Auto(name string) Member { return Member{Name: name} }

func IntCase(name string, v int64) Member { return Member{Name: name, Literal: Int(v)} }

func TextCase(name, v string) Member { return Member{Name: name, Literal: Text(v)} }

// Explicit reports whether the member carries its own literal.
func (m Member) Explicit() bool { return !m.Literal.IsNone() }

// Sequence resolves declared literals into backing values in declaration
// order. The counter starts at 0; an absent literal takes the counter and
// advances it, an integer literal V is kept and moves the counter to V+1, and
// a text literal is kept without touching the counter.
func Sequence(literals []Scalar) []Scalar {
	out := make([]Scalar, len(literals))
	var counter int64
	for i, literal := range literals {
		switch literal.Kind() {
		case KindInt:
			out[i] = literal
			counter = literal.i + 1
		case KindText:
			out[i] = literal
		default:
			out[i] = Int(counter)
			counter++
		}
	}
	return out
}

// BackingKindOf infers a type's backing kind from its declared literals:
// text if any literal is text, else int if any literal is present, else none.
func BackingKindOf(literals []Scalar) Kind {
	kind := KindNone
	for _, literal := range literals {
		switch literal.Kind() {
		case KindText:
			return KindText
		case KindInt:
			kind = KindInt
		}
	}
	return kind
}
