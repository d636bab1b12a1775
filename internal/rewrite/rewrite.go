// Package rewrite turns a recognized legacy enum class into a native PHP enum
// declaration, leaving the rest of the file untouched.
package rewrite

import (
	"sort"
	"strconv"
	"strings"

	"github.com/phpcompatible/enumup/internal/legacy"
	"github.com/phpcompatible/enumup/internal/parser"
	"github.com/phpcompatible/enumup/pkg/enum"
)

type edit struct {
	span parser.Span
	text string
}

// Rewrite returns content with t converted to native syntax. The second
// result is false, and content is returned as is, when nothing changed.
func Rewrite(content string, t *parser.EnumType) (string, bool) {
	if t == nil || len(t.Cases) == 0 {
		return content, false
	}

	edits := make([]edit, 0, len(t.Cases)+1)
	edits = append(edits, edit{span: t.Header, text: Header(t, lineEnding(content, t.Header.Start))})
	for i, c := range t.Cases {
		edits = append(edits, edit{span: c.Line, text: CaseLine(t, i)})
	}

	out, ok := apply(content, edits)
	if !ok {
		return content, false
	}

	out = legacy.MethodDocLine.ReplaceAllString(out, "")
	out = legacy.EmptyDocBlock.ReplaceAllString(out, "")
	out = legacy.RemoveUseBase.ReplaceAllString(out, "")
	out = legacy.RemoveUseValue.ReplaceAllString(out, "")
	out = legacy.UseLabel.ReplaceAllLiteralString(out, legacy.NativeLabelImport)

	if out == content {
		return content, false
	}
	return out, true
}

// Header renders the native enum header for t, opening brace included. eol
// separates the declaration from the brace.
func Header(t *parser.EnumType, eol string) string {
	var b strings.Builder
	b.WriteString(t.Indent)
	b.WriteString("enum ")
	b.WriteString(t.ClassName)
	if t.BackingKind != enum.KindNone {
		b.WriteString(": ")
		b.WriteString(t.BackingKind.String())
	}
	if t.HeaderSuffix != "" {
		b.WriteByte(' ')
		b.WriteString(t.HeaderSuffix)
	}
	b.WriteString(eol)
	b.WriteString(t.Indent)
	b.WriteByte('{')
	return b.String()
}

// lineEnding returns the line terminator of the first line break at or after
// offset: CRLF when it is one, LF otherwise.
func lineEnding(content string, offset int) string {
	if offset < 0 || offset >= len(content) {
		return "\n"
	}
	if i := strings.IndexByte(content[offset:], '\n'); i > 0 && content[offset+i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

// CaseLine renders the native case declaration for the i-th case of t.
func CaseLine(t *parser.EnumType, i int) string {
	name := t.Cases[i].Name
	if t.BackingKind == enum.KindNone || i >= len(t.Resolved) {
		return "case " + name + ";"
	}
	return "case " + name + " = " + literal(t.Resolved[i]) + ";"
}

func literal(v enum.Scalar) string {
	if i, ok := v.Int(); ok {
		return strconv.FormatInt(i, 10)
	}
	if s, ok := v.Text(); ok {
		return s
	}
	return "null"
}

// apply replaces each span with its text. Spans out of range or overlapping
// an earlier edit abort the rewrite.
func apply(content string, edits []edit) (string, bool) {
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].span.Start < edits[j].span.Start
	})

	var b strings.Builder
	b.Grow(len(content))
	pos := 0
	for _, e := range edits {
		if e.span.Start < pos || e.span.End > len(content) || e.span.Start > e.span.End {
			return content, false
		}
		b.WriteString(content[pos:e.span.Start])
		b.WriteString(e.text)
		pos = e.span.End
	}
	b.WriteString(content[pos:])
	return b.String(), true
}
