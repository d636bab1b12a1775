// Package extract recognizes legacy enum classes in PHP source text and
// turns them into parser.EnumType descriptors.
package extract

import (
	"context"
	"strconv"
	"strings"

	"github.com/phpcompatible/enumup/internal/languages"
	"github.com/phpcompatible/enumup/internal/legacy"
	"github.com/phpcompatible/enumup/internal/parser"
	"github.com/phpcompatible/enumup/pkg/enum"
)

// Masker finds regions of a file that hold no code.
type Masker interface {
	Mask(ctx context.Context, content []byte) (languages.Mask, error)
}

// Extractor recognizes one legacy enum class per file.
type Extractor struct {
	masker Masker
}

// New returns an Extractor using masker to skip comments and strings. A nil
// masker matches on plain text.
func New(masker Masker) *Extractor {
	return &Extractor{masker: masker}
}

// Extract returns the legacy enum class declared in content, or nil when the
// file holds no candidate: it does not refer to the emulation library, no
// class header derives from the base class, or the class declares no cases.
func (e *Extractor) Extract(ctx context.Context, file string, content []byte) (*parser.EnumType, error) {
	text := string(content)
	if !legacy.UsesNamespace(text) {
		return nil, nil
	}

	var mask languages.Mask
	if e.masker != nil {
		m, err := e.masker.Mask(ctx, content)
		if err != nil {
			return nil, err
		}
		mask = m
	}

	header := findHeader(text, mask)
	if header == nil {
		return nil, nil
	}
	indent := text[header[2]:header[3]]
	className := text[header[4]:header[5]]

	open := nextUnmasked(text, mask, header[1], '{')
	if open < 0 {
		return nil, nil
	}
	end := matchingBrace(text, mask, open)

	body := parser.Span{Start: open + 1, End: end}
	cases := findCases(text, mask, body)
	if len(cases) == 0 {
		return nil, nil
	}

	namespace := findNamespace(text, mask)
	literals := make([]enum.Scalar, len(cases))
	for i, c := range cases {
		literals[i] = literalScalar(c)
	}

	blockEnd := end + 1
	if blockEnd > len(text) {
		blockEnd = len(text)
	}

	return &parser.EnumType{
		QualifiedName: languages.QualifyName(namespace, className),
		Namespace:     namespace,
		ClassName:     className,
		Cases:         cases,
		Resolved:      enum.Sequence(literals),
		BackingKind:   enum.BackingKindOf(literals),
		File:          file,
		Span:          parser.Span{Start: header[0], End: blockEnd},
		Header:        parser.Span{Start: header[0], End: open + 1},
		Indent:        indent,
		HeaderSuffix:  strings.Join(strings.Fields(text[header[1]:open]), " "),
	}, nil
}

func findHeader(text string, mask languages.Mask) []int {
	for _, loc := range legacy.ClassHeader.FindAllStringSubmatchIndex(text, -1) {
		// loc[3] is the end of the indentation, where the class keyword starts.
		if !mask.Covers(loc[3]) {
			return loc
		}
	}
	return nil
}

func findNamespace(text string, mask languages.Mask) string {
	for _, loc := range legacy.NamespaceDecl.FindAllStringSubmatchIndex(text, -1) {
		if !mask.Covers(loc[0]) {
			return text[loc[2]:loc[3]]
		}
	}
	return ""
}

func findCases(text string, mask languages.Mask, body parser.Span) []parser.CaseDefinition {
	cases := make([]parser.CaseDefinition, 0)
	for _, loc := range legacy.Member.FindAllStringSubmatchIndex(text[body.Start:body.End], -1) {
		start := body.Start + loc[0]
		if mask.Covers(start) {
			continue
		}
		c := parser.CaseDefinition{
			Name:  text[body.Start+loc[2] : body.Start+loc[3]],
			Order: len(cases),
			Line:  parser.Span{Start: start, End: body.Start + loc[1]},
		}
		if loc[4] >= 0 {
			c.Literal = strings.TrimSpace(text[body.Start+loc[4] : body.Start+loc[5]])
			c.LiteralKind = enum.KindInt
			if strings.HasPrefix(c.Literal, "'") || strings.HasPrefix(c.Literal, `"`) {
				c.LiteralKind = enum.KindText
			}
		}
		cases = append(cases, c)
	}
	return cases
}

// literalScalar converts a declared literal into its backing value. Text
// literals keep their source form, quotes included, so they can be emitted
// verbatim.
func literalScalar(c parser.CaseDefinition) enum.Scalar {
	switch c.LiteralKind {
	case enum.KindText:
		return enum.Text(c.Literal)
	case enum.KindInt:
		return enum.Int(IntLiteral(c.Literal))
	default:
		return enum.None
	}
}

// IntLiteral evaluates a PHP integer literal. Decimal, hexadecimal, octal and
// binary forms with digit separators are understood; anything else is cast
// the way PHP's (int) cast does, reading a leading signed decimal and
// yielding 0 when there is none.
func IntLiteral(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return v
	}

	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func nextUnmasked(text string, mask languages.Mask, from int, want byte) int {
	for i := from; i < len(text); i++ {
		if text[i] == want && !mask.Covers(i) {
			return i
		}
	}
	return -1
}

// matchingBrace returns the offset of the brace closing the one at open, or
// len(text) when the block is never closed.
func matchingBrace(text string, mask languages.Mask, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		if mask.Covers(i) {
			continue
		}
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(text)
}
