// Package legacy names the PhpCompatible emulation library and holds the
// patterns that recognize code written against it.
package legacy

import "regexp"

const (
	Namespace   = `PhpCompatible\Enum`
	NativeLabel = "Php8EnumLabel"
	NativeFrom  = "fromEnum"
)

var (
	useBase          = regexp.MustCompile(`use\s+PhpCompatible\\Enum\\Enum\s*;`)
	useBaseAlias     = regexp.MustCompile(`use\s+PhpCompatible\\Enum\\Enum\s+as\s+\w+\s*;`)
	extendsQualified = regexp.MustCompile(`extends\s+\\?PhpCompatible\\Enum\\Enum`)
	ownNamespace     = regexp.MustCompile(`namespace\s+PhpCompatible\\Enum`)
	extendsShort     = regexp.MustCompile(`class\s+\w+\s+extends\s+Enum`)
)

var (
	// ClassHeader matches a class deriving from the base class, by short name
	// or by (optionally fully) qualified name. An alias from
	// "use PhpCompatible\Enum\Enum as X" is not followed.
	ClassHeader = regexp.MustCompile(`(?m)^([ \t]*)class\s+(\w+)\s+extends\s+(?:\\?PhpCompatible\\Enum\\)?Enum\b`)

	NamespaceDecl = regexp.MustCompile(`namespace\s+([\w\\]+)\s*;`)

	// Member matches a case declaration: protected $name [= literal];
	Member = regexp.MustCompile(`protected\s+\$(\w+)(?:\s*=\s*([^;]+))?;`)

	RemoveUseBase  = regexp.MustCompile(`use\s+PhpCompatible\\Enum\\Enum\s*;\s*\n?`)
	RemoveUseValue = regexp.MustCompile(`use\s+PhpCompatible\\Enum\\Value\s*;\s*\n?`)
	UseLabel       = regexp.MustCompile(`use\s+PhpCompatible\\Enum\\EnumLabel\s*;`)
	LabelFromCall  = regexp.MustCompile(`\bEnumLabel::from\(`)

	MethodDocLine = regexp.MustCompile(`(?m)^[ \t]*\*[ \t]*@method\s+static\s+Value\s+\w+\(\)[ \t]*\r?\n`)
	EmptyDocBlock = regexp.MustCompile(`/\*\*\s*(?:\*\s*)*\*/\s*\n`)
)

// NativeLabelImport replaces an import of the legacy label helper.
const NativeLabelImport = `use PhpCompatible\Enum\Php8EnumLabel;`

// NativeLabelCall replaces "EnumLabel::from(".
const NativeLabelCall = NativeLabel + "::" + NativeFrom + "("

// UsesNamespace reports whether a file refers to the emulation library: it
// imports the base class (directly or under an alias), extends it by
// qualified name, or lives in the library's own namespace and extends it by
// short name.
func UsesNamespace(content string) bool {
	switch {
	case useBase.MatchString(content):
		return true
	case useBaseAlias.MatchString(content):
		return true
	case extendsQualified.MatchString(content):
		return true
	case ownNamespace.MatchString(content) && extendsShort.MatchString(content):
		return true
	}
	return false
}
