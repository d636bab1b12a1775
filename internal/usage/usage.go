// Package usage rewrites call sites of converted enums across a source tree.
package usage

import (
	"regexp"
	"sort"
	"strings"

	"github.com/phpcompatible/enumup/internal/legacy"
	"github.com/phpcompatible/enumup/internal/parser"
	"github.com/phpcompatible/enumup/pkg/naming"
)

// Resolver rewrites "Class::anySpelling()" into "Class::declared" for every
// known enum type, and moves label helper calls to the native-aware helper.
// It is safe for concurrent use once built.
type Resolver struct {
	rules []rule
}

type rule struct {
	pattern *regexp.Regexp
	prefix  string
	names   map[string]string // spelling -> declared name
}

// NewResolver compiles the call-site patterns for types. types must be the
// complete set found during the definition phase.
func NewResolver(types []*parser.EnumType) *Resolver {
	r := &Resolver{rules: make([]rule, 0, len(types))}
	for _, t := range types {
		if rl, ok := newRule(t); ok {
			r.rules = append(r.rules, rl)
		}
	}
	return r
}

func newRule(t *parser.EnumType) (rule, bool) {
	if t == nil || t.ClassName == "" || len(t.Cases) == 0 {
		return rule{}, false
	}

	names := make(map[string]string)
	for _, c := range t.Cases {
		for _, v := range naming.Variants(c.Name) {
			// The first declared case claims a spelling.
			if _, taken := names[v]; !taken {
				names[v] = c.Name
			}
		}
	}

	spellings := make([]string, 0, len(names))
	for v := range names {
		spellings = append(spellings, regexp.QuoteMeta(v))
	}
	sort.Slice(spellings, func(i, j int) bool {
		if len(spellings[i]) != len(spellings[j]) {
			return len(spellings[i]) > len(spellings[j])
		}
		return spellings[i] < spellings[j]
	})

	prefix := t.ClassName + "::"
	expr := `\b` + regexp.QuoteMeta(prefix) + `(` + strings.Join(spellings, "|") + `)\(\)`
	return rule{
		pattern: regexp.MustCompile(expr),
		prefix:  prefix,
		names:   names,
	}, true
}

// Len returns the number of enum types the resolver knows about.
func (r *Resolver) Len() int { return len(r.rules) }

// Resolve returns content with every known call site rewritten. The second
// result is false when nothing matched. Resolving already resolved content
// changes nothing.
func (r *Resolver) Resolve(content string) (string, bool) {
	out := legacy.UseLabel.ReplaceAllLiteralString(content, legacy.NativeLabelImport)
	out = legacy.LabelFromCall.ReplaceAllLiteralString(out, legacy.NativeLabelCall)

	for _, rl := range r.rules {
		if !strings.Contains(out, rl.prefix) {
			continue
		}
		out = rl.pattern.ReplaceAllStringFunc(out, func(match string) string {
			spelling := match[len(rl.prefix) : len(match)-len("()")]
			return rl.prefix + rl.names[spelling]
		})
	}

	if out == content {
		return content, false
	}
	return out, true
}
