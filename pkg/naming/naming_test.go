package naming

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	cases := []struct {
		name string
		want []string
	}{
		{name: "draft", want: []string{"draft"}},
		{name: "publishedAt", want: []string{"published", "at"}},
		{name: "PublishedAt", want: []string{"published", "at"}},
		{name: "PUBLISHED_AT", want: []string{"published", "at"}},
		{name: "published_at", want: []string{"published", "at"}},
		{name: "ABCValue", want: []string{"abc", "value"}},
		{name: "HEARTS", want: []string{"hearts"}},
		{name: "level2Access", want: []string{"level2", "access"}},
		{name: "", want: nil},
	}

	for _, tc := range cases {
		got := Words(tc.name)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Words(%q): expected %#v, got %#v", tc.name, tc.want, got)
		}
	}
}

func TestFormatAllConventions(t *testing.T) {
	want := map[Convention]string{
		LowerCamel: "inProgress",
		UpperCamel: "InProgress",
		LowerSnake: "in_progress",
		UpperSnake: "IN_PROGRESS",
	}
	for _, input := range []string{"inProgress", "InProgress", "in_progress", "IN_PROGRESS"} {
		for convention, expected := range want {
			if got := Format(input, convention); got != expected {
				t.Fatalf("Format(%q, %s): expected %q, got %q", input, convention, expected, got)
			}
		}
	}
}

func TestVariantsKeepsDeclaredSpellingFirst(t *testing.T) {
	got := Variants("Hearts")
	want := []string{"Hearts", "hearts", "HEARTS"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}

	got = Variants("inProgress")
	want = []string{"inProgress", "InProgress", "in_progress", "IN_PROGRESS"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestNormalizeMatchesEveryVariant(t *testing.T) {
	for _, name := range []string{"inProgress", "Hearts", "ABCValue", "level2Access"} {
		key := Normalize(name)
		for _, variant := range Variants(name) {
			if got := Normalize(variant); got != key {
				t.Fatalf("Normalize(%q) = %q, expected %q (declared %q)", variant, got, key, name)
			}
		}
	}

	if got := Normalize("HEAR_TS"); got != "hearts" {
		t.Fatalf("expected separators to be stripped, got %q", got)
	}
}
