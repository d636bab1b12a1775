package languages

import (
	"context"
	"strings"
	"testing"
)

func TestPHPScannerMasksCommentsAndStrings(t *testing.T) {
	src := `<?php
// class Fake extends Enum {}
/** class Doc extends Enum {} */
$a = 'class Quoted extends Enum {}';
$b = "class Double extends Enum {}";
class Real extends Enum
{
}
`
	mask, err := NewPHPScanner().Mask(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("mask failed: %v", err)
	}
	if len(mask) == 0 {
		t.Fatalf("expected opaque regions, got none")
	}

	for _, name := range []string{"Fake", "Doc", "Quoted", "Double"} {
		offset := strings.Index(src, "class "+name)
		if !mask.Covers(offset) {
			t.Fatalf("expected %q at %d to be masked", name, offset)
		}
	}
	if offset := strings.Index(src, "class Real"); mask.Covers(offset) {
		t.Fatalf("expected real class declaration to stay visible")
	}
}

func TestPHPScannerSkipsMaskOnSyntaxErrors(t *testing.T) {
	mask, err := NewPHPScanner().Mask(context.Background(), []byte("<?php\nclass {{{ 'unterminated\n"))
	if err != nil {
		t.Fatalf("mask failed: %v", err)
	}
	if mask != nil {
		t.Fatalf("expected nil mask for broken source, got %v", mask)
	}
}

func TestQualifiedNames(t *testing.T) {
	if got := QualifyName(`App\Enums`, "Status"); got != `App\Enums\Status` {
		t.Fatalf("unexpected qualified name %q", got)
	}
	if got := QualifyName("", "Status"); got != "Status" {
		t.Fatalf("unexpected global name %q", got)
	}
}
