package answer

import (
	"errors"
	"testing"
)

func TestParseSpec_CoreTerms(t *testing.T) {
	spec, err := ParseSpec("sofa, couch")
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.CoreTerms) != 2 || spec.CoreTerms[0] != "sofa" || spec.CoreTerms[1] != "couch" {
		t.Errorf("CoreTerms = %v, want [sofa couch]", spec.CoreTerms)
	}
	if spec.Disambiguation != "" || spec.Suffix != "" || spec.Info != "" {
		t.Errorf("unexpected clauses in %+v", spec)
	}
}

func TestParseSpec_Variants(t *testing.T) {
	spec, err := ParseSpec("to be [is, am, are]")
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.Variants) != 3 {
		t.Fatalf("Variants = %v, want 3 entries", spec.Variants)
	}
	if spec.CoreTerms[0] != "to be" {
		t.Errorf("CoreTerms = %v, want [to be]", spec.CoreTerms)
	}
}

func TestParseSpec_SuffixVsInfo(t *testing.T) {
	spec, err := ParseSpec("eye(s)")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Suffix != "s" {
		t.Errorf("Suffix = %q, want \"s\"", spec.Suffix)
	}
	if spec.Info != "" {
		t.Errorf("Info = %q, want empty", spec.Info)
	}

	spec, err = ParseSpec("hello (informal)")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Info != "informal" {
		t.Errorf("Info = %q, want \"informal\"", spec.Info)
	}
	if spec.Suffix != "" {
		t.Errorf("Suffix = %q, want empty", spec.Suffix)
	}
}

func TestParseSpec_Disambiguation(t *testing.T) {
	spec, err := ParseSpec("that <far>")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Disambiguation != "far" {
		t.Errorf("Disambiguation = %q, want \"far\"", spec.Disambiguation)
	}
}

func TestParseSpec_Phonetic(t *testing.T) {
	spec, err := ParseSpec("jj (tense)")
	if err != nil {
		t.Fatal(err)
	}
	if !spec.Phonetic {
		t.Error("expected phonetic spec")
	}
}

func TestParseSpec_Malformed(t *testing.T) {
	cases := []string{
		"a [b [c]]",
		"a [b",
		"a <b <c>>",
		"a (b (c))",
		"a <x> <y>",
		"word]",
	}
	for _, raw := range cases {
		_, err := ParseSpec(raw)
		if err == nil {
			t.Errorf("ParseSpec(%q): expected error", raw)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseSpec(%q): error type %T, want *ParseError", raw, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello   World  ", "hello world"},
		{"Colour", "color"},
		{"I'm", "i am"},
		{"don't!", "do not"},
		{"가", "가"},
		{"  가  ", "가"},
		{"g / k", "g / k"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHint_Levels(t *testing.T) {
	tests := []struct {
		answer string
		level  int
		want   string
	}{
		{"hello", 1, "h____ (5 letters)"},
		{"hello", 2, "he___"},
		{"hello", 3, "hello"},
		{"hello", 7, "hello"},
		{"안녕", 1, "안_ (2 letters)"},
		{"안녕", 2, "안녕"},
		{"안녕하세요", 1, "안____ (5 letters)"},
		{"안녕하세요", 2, "안녕___"},
		{"ya", 2, "ya"},
	}
	for _, tt := range tests {
		if got := Hint(tt.answer, tt.level); got != tt.want {
			t.Errorf("Hint(%q, %d) = %q, want %q", tt.answer, tt.level, got, tt.want)
		}
	}
}
