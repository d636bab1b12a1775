// Package enum emulates tagged enumerations with lazily materialized,
// identity-stable cases.
//
// An enumeration is any type implementing Declarer:
//
//	type Suit struct{}
//
//	func (Suit) EnumCases() []enum.Member {
//		return []enum.Member{
//			enum.Auto("Hearts"),   // 0
//			enum.Auto("Diamonds"), // 1
//			enum.IntCase("Joker", 100),
//		}
//	}
//
//	hearts, err := enum.Resolve[Suit]("HEARTS")
//
// Cases are looked up case-insensitively with separators ignored, so
// "hearts", "Hearts" and "HEAR_TS" all return the same *Value. Lookups by
// backing value (From, TryFrom) are strict on kind: Int(0) never matches "0".
// Materializing a type whose cases resolve to the same backing value fails
// with a DuplicateResolvedValueError.
package enum

// Resolve looks up a case of T by any spelling of its name in Default.
func Resolve[T Declarer](rawName string) (*Value, error) {
	var d T
	return Default.Resolve(d, rawName)
}

// Cases returns every case of T in declaration order from Default.
func Cases[T Declarer]() ([]*Value, error) {
	var d T
	return Default.Cases(d)
}

// From looks up a case of T by backing value in Default.
func From[T Declarer](backing any) (*Value, error) {
	var d T
	return Default.From(d, backing)
}

// TryFrom is From returning nil instead of a not-found error.
func TryFrom[T Declarer](backing any) (*Value, error) {
	var d T
	return Default.TryFrom(d, backing)
}

// Must panics when err is non-nil.
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
