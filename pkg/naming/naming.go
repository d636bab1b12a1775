// Package naming splits identifiers into words and renders them in the
// spellings a legacy enum case may be referenced by.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Convention identifies one of the supported identifier spellings.
type Convention int

const (
	LowerCamel Convention = iota // draftStatus
	UpperCamel                   // DraftStatus
	LowerSnake                   // draft_status
	UpperSnake                   // DRAFT_STATUS
)

func (c Convention) String() string {
	switch c {
	case LowerCamel:
		return "camelCase"
	case UpperCamel:
		return "PascalCase"
	case LowerSnake:
		return "snake_case"
	case UpperSnake:
		return "SCREAMING_SNAKE_CASE"
	default:
		return "unknown"
	}
}

// Conventions lists every supported convention in a stable order.
func Conventions() []Convention {
	return []Convention{LowerCamel, UpperCamel, LowerSnake, UpperSnake}
}

// Words splits an identifier into lower-case words. Names containing a
// separator are split on it; otherwise case transitions mark word starts and
// acronym runs stay together ("ABCValue" -> abc, value).
func Words(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	if strings.ContainsAny(name, "_-") {
		parts := strings.FieldsFunc(name, isSeparator)
		words := make([]string, 0, len(parts))
		for _, part := range parts {
			words = append(words, strings.ToLower(part))
		}
		return words
	}

	runes := []rune(name)
	words := make([]string, 0, 4)
	start := 0
	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}
		prev := runes[i-1]
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
			words = append(words, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}
	words = append(words, strings.ToLower(string(runes[start:])))
	return words
}

// Format renders name in the given convention.
func Format(name string, convention Convention) string {
	words := Words(name)
	if len(words) == 0 {
		return ""
	}

	switch convention {
	case LowerSnake:
		return strings.Join(words, "_")
	case UpperSnake:
		return strings.ToUpper(strings.Join(words, "_"))
	case UpperCamel, LowerCamel:
		title := cases.Title(language.Und)
		var b strings.Builder
		for i, word := range words {
			if i == 0 && convention == LowerCamel {
				b.WriteString(word)
				continue
			}
			b.WriteString(title.String(word))
		}
		return b.String()
	default:
		return name
	}
}

// Variants returns the declared spelling of name followed by its four
// canonical spellings, without duplicates.
func Variants(name string) []string {
	out := make([]string, 0, 5)
	seen := make(map[string]bool, 5)
	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	add(name)
	for _, convention := range Conventions() {
		add(Format(name, convention))
	}
	return out
}

// Normalize folds case and strips word separators so every spelling of a
// name maps to the same key.
func Normalize(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if isSeparator(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return cases.Fold().String(stripped)
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.'
}
