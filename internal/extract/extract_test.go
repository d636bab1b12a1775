package extract

import (
	"context"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/phpcompatible/enumup/internal/languages"
	"github.com/phpcompatible/enumup/internal/parser"
	"github.com/phpcompatible/enumup/pkg/enum"
)

func extractString(t *testing.T, src string) *parser.EnumType {
	t.Helper()
	got, err := New(languages.NewPHPScanner()).Extract(context.Background(), "Test.php", []byte(src))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	return got
}

func TestExtractAutoIncrementAfterExplicitValue(t *testing.T) {
	src := `<?php
namespace App\Enums;

use PhpCompatible\Enum\Enum;

class Status extends Enum
{
    protected $a;
    protected $b;
    protected $c = 10;
    protected $d;
}
`
	got := extractString(t, src)
	if got == nil {
		t.Fatalf("expected Status to be recognized")
	}
	if got.QualifiedName != `App\Enums\Status` || got.ClassName != "Status" {
		t.Fatalf("unexpected names:\n%s", spew.Sdump(got))
	}
	if got.BackingKind != enum.KindInt {
		t.Fatalf("expected int backing, got %s", got.BackingKind)
	}
	want := []enum.Scalar{enum.Int(0), enum.Int(1), enum.Int(10), enum.Int(11)}
	if !reflect.DeepEqual(got.Resolved, want) {
		t.Fatalf("expected %v, got %v", want, got.Resolved)
	}
	if !reflect.DeepEqual(got.CaseNames(), []string{"a", "b", "c", "d"}) {
		t.Fatalf("unexpected case order %v", got.CaseNames())
	}
	if got.Cases[2].Literal != "10" || !got.Cases[2].HasLiteral() || got.Cases[3].HasLiteral() {
		t.Fatalf("unexpected literals:\n%s", spew.Sdump(got.Cases))
	}
	if src[got.Span.Start:got.Span.End][:5] != "class" || src[got.Span.End-1] != '}' {
		t.Fatalf("unexpected definition span %q", src[got.Span.Start:got.Span.End])
	}
}

func TestExtractTextBackedKeepsLiteralsVerbatim(t *testing.T) {
	got := extractString(t, `<?php
use PhpCompatible\Enum\Enum;

class Color extends Enum
{
    protected $red = 'red';
    protected $green = "green";
}
`)
	if got == nil {
		t.Fatalf("expected Color to be recognized")
	}
	if got.BackingKind != enum.KindText {
		t.Fatalf("expected text backing, got %s", got.BackingKind)
	}
	if got.QualifiedName != "Color" {
		t.Fatalf("expected global class name, got %q", got.QualifiedName)
	}
	want := []enum.Scalar{enum.Text(`'red'`), enum.Text(`"green"`)}
	if !reflect.DeepEqual(got.Resolved, want) {
		t.Fatalf("expected %v, got %v", want, got.Resolved)
	}
}

func TestExtractUnitEnum(t *testing.T) {
	got := extractString(t, `<?php
use PhpCompatible\Enum\Enum;

class Direction extends Enum
{
    protected $north;
    protected $south;
}
`)
	if got == nil || got.BackingKind != enum.KindNone {
		t.Fatalf("expected unit enum, got:\n%s", spew.Sdump(got))
	}
}

func TestExtractSkipsNonCandidates(t *testing.T) {
	cases := map[string]string{
		"other library": `<?php
use Some\Other\Enum;

class OtherEnum extends Enum
{
    protected $value;
}
`,
		"aliased import": `<?php
use PhpCompatible\Enum\Enum as BaseEnum;

class Status extends BaseEnum
{
    protected $draft;
}
`,
		"no members": `<?php
use PhpCompatible\Enum\Enum;

class Blank extends Enum
{
    public function label() { return 'x'; }
}
`,
		"header in comment": `<?php
use PhpCompatible\Enum\Enum;

/*
class Status extends Enum
{
    protected $draft;
}
*/
`,
	}

	for name, src := range cases {
		if got := extractString(t, src); got != nil {
			t.Fatalf("%s: expected no candidate, got:\n%s", name, spew.Sdump(got))
		}
	}
}

func TestExtractOwnNamespaceShortName(t *testing.T) {
	got := extractString(t, `<?php
namespace PhpCompatible\Enum\Tests;

class Suite extends Enum
{
    protected $Hearts;
    protected $Joker = 100;
}
`)
	if got == nil {
		t.Fatalf("expected class in the library namespace to be recognized")
	}
	if got.QualifiedName != `PhpCompatible\Enum\Tests\Suite` {
		t.Fatalf("unexpected qualified name %q", got.QualifiedName)
	}
}

func TestExtractIgnoresMembersOutsideClassAndInComments(t *testing.T) {
	got := extractString(t, `<?php
use PhpCompatible\Enum\Enum;

class Status extends Enum implements \JsonSerializable
{
    // protected $commented;
    protected $draft;
    protected $quoted = 'a}b';
    protected $published;
}

class Other
{
    protected $notACase;
}
`)
	if got == nil {
		t.Fatalf("expected Status to be recognized")
	}
	if !reflect.DeepEqual(got.CaseNames(), []string{"draft", "quoted", "published"}) {
		t.Fatalf("unexpected cases:\n%s", spew.Sdump(got.Cases))
	}
	if got.HeaderSuffix != `implements \JsonSerializable` {
		t.Fatalf("unexpected header suffix %q", got.HeaderSuffix)
	}
}

func TestExtractWithoutMaskerMatchesPlainText(t *testing.T) {
	src := []byte(`<?php
use PhpCompatible\Enum\Enum;
class Flag extends Enum { protected $on; protected $off; }
`)
	got, err := New(nil).Extract(context.Background(), "Flag.php", src)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if got == nil || len(got.Cases) != 2 {
		t.Fatalf("expected two cases, got:\n%s", spew.Sdump(got))
	}
}

func TestIntLiteral(t *testing.T) {
	cases := map[string]int64{
		"10":        10,
		"-5":        -5,
		"0x1A":      26,
		"0x10":      16,
		"010":       8,
		"0o17":      15,
		"0b101":     5,
		"1_000":     1000,
		"12abc":     12,
		"self::FOO": 0,
		" 7 ":       7,
		"3 + 4":     3,
	}
	for raw, want := range cases {
		if got := IntLiteral(raw); got != want {
			t.Fatalf("IntLiteral(%q): expected %d, got %d", raw, want, got)
		}
	}
}
