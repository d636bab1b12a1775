package parser

import (
	"github.com/phpcompatible/enumup/pkg/enum"
)

// Span is a half-open byte range [Start, End) within a file.
type Span struct {
	Start int
	End   int
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool { return offset >= s.Start && offset < s.End }

// CaseDefinition is one declared member of a legacy enum class.
type CaseDefinition struct {
	Name        string    // identifier as declared, without the leading $
	Literal     string    // trimmed initializer source, empty when absent
	LiteralKind enum.Kind // KindNone when the member has no initializer
	Order       int       // declaration index
	Line        Span      // byte span of the declaration statement
}

// HasLiteral reports whether the member declared an initializer.
func (c CaseDefinition) HasLiteral() bool { return c.LiteralKind != enum.KindNone }

// EnumType describes a legacy enum class recognized in one file.
type EnumType struct {
	QualifiedName string // Namespace\ClassName, or ClassName without a namespace
	Namespace     string
	ClassName     string
	Cases         []CaseDefinition
	BackingKind   enum.Kind
	File          string
	Span          Span // class header line through the closing brace
	Header        Span // class header up to and including the opening brace
	Indent        string

	// Resolved holds the backing value of each case, parallel to Cases. Text
	// values keep the literal source form, quotes included.
	Resolved []enum.Scalar

	// HeaderSuffix is whatever followed the base class in the header, such
	// as an implements clause, with whitespace collapsed.
	HeaderSuffix string
}

// CaseNames returns the declared case names in order.
func (t *EnumType) CaseNames() []string {
	names := make([]string, len(t.Cases))
	for i, c := range t.Cases {
		names[i] = c.Name
	}
	return names
}

// Issue captures a non-fatal problem met while enumerating or processing files.
type Issue struct {
	File     string `json:"file"`
	Severity string `json:"severity"` // warning | error
	Message  string `json:"message"`
}
