package languages

import (
	"context"
	"sort"

	"github.com/phpcompatible/enumup/internal/parser"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"
)

// opaqueNodeTypes are PHP syntax nodes whose bytes never contain code.
var opaqueNodeTypes = map[string]bool{
	"comment":                  true,
	"string":                   true,
	"encapsed_string":          true,
	"heredoc":                  true,
	"nowdoc":                   true,
	"shell_command_expression": true,
	"text":                     true, // inline HTML outside <?php ... ?>
}

// PHPScanner locates comments, string literals and inline HTML in PHP
// sources. A scanner wraps one tree-sitter parser and must not be shared
// between goroutines.
type PHPScanner struct {
	parser *sitter.Parser
}

// NewPHPScanner creates a new PHP scanner
func NewPHPScanner() *PHPScanner {
	p := sitter.NewParser()
	p.SetLanguage(php.GetLanguage())
	return &PHPScanner{parser: p}
}

// Mask returns the opaque regions of content. When the source does not parse
// cleanly the regions cannot be trusted and Mask returns an empty mask, so
// callers fall back to plain text matching.
func (s *PHPScanner) Mask(ctx context.Context, content []byte) (Mask, error) {
	tree, err := s.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, nil
	}

	spans := make([]parser.Span, 0)
	collectOpaque(root, &spans)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return Mask(spans), nil
}

func collectOpaque(node *sitter.Node, spans *[]parser.Span) {
	if opaqueNodeTypes[node.Type()] {
		*spans = append(*spans, parser.Span{Start: int(node.StartByte()), End: int(node.EndByte())})
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		collectOpaque(node.Child(i), spans)
	}
}

// Mask is a sorted list of non-overlapping opaque spans.
type Mask []parser.Span

// Covers reports whether offset lies inside an opaque span.
func (m Mask) Covers(offset int) bool {
	i := sort.Search(len(m), func(i int) bool { return m[i].End > offset })
	return i < len(m) && m[i].Contains(offset)
}
