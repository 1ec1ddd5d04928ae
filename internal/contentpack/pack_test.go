package contentpack

import (
	"errors"
	"strings"
	"testing"

	"github.com/minhokang/baeum/internal/answer"
)

const validPack = `{
  "name": "hangul-basics",
  "version": "1.0.0",
  "description": "Consonants and first words",
  "categories": [
    {
      "name": "consonants",
      "cards": [
        {"id": "c-giyeok", "prompt": "ㄱ", "answer": "[g, k]"},
        {"id": "c-ssang-giyeok", "prompt": "ㄲ", "answer": "g (tense)", "unlock_after": ["c-giyeok"]}
      ]
    },
    {
      "name": "words",
      "cards": [
        {"id": "w-water", "prompt": "water", "answer": "mul", "notes": "물"}
      ]
    }
  ]
}`

func TestParse_ValidPack(t *testing.T) {
	pack, err := Parse([]byte(validPack))
	if err != nil {
		t.Fatal(err)
	}
	if pack.Name != "hangul-basics" || len(pack.Categories) != 2 {
		t.Errorf("pack = %q with %d categories", pack.Name, len(pack.Categories))
	}
	if got := len(pack.Cards()); got != 3 {
		t.Errorf("Cards() returned %d cards, want 3", got)
	}
	if cat, ok := pack.CategoryOf("w-water"); !ok || cat != "words" {
		t.Errorf("CategoryOf(w-water) = (%q, %v)", cat, ok)
	}
	if _, ok := pack.CategoryOf("missing"); ok {
		t.Error("CategoryOf should miss for an unknown card")
	}
}

func TestParse_RejectsMalformedJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"name": `)); err == nil {
		t.Error("expected an error for truncated JSON")
	}
}

func TestParse_SchemaRejections(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing version", `{"name": "x", "categories": [{"name": "a", "cards": [{"id": "1", "prompt": "p", "answer": "a"}]}]}`},
		{"empty categories", `{"name": "x", "version": "1", "categories": []}`},
		{"card without answer", `{"name": "x", "version": "1", "categories": [{"name": "a", "cards": [{"id": "1", "prompt": "p"}]}]}`},
		{"unknown field", `{"name": "x", "version": "1", "bogus": true, "categories": [{"name": "a", "cards": [{"id": "1", "prompt": "p", "answer": "a"}]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.doc)); err == nil {
				t.Error("expected a schema validation error")
			}
		})
	}
}

func TestParse_ReportsEveryAuthoringError(t *testing.T) {
	doc := `{
	  "name": "broken",
	  "version": "1",
	  "categories": [
	    {
	      "name": "a",
	      "cards": [
	        {"id": "dup", "prompt": "p1", "answer": "ok"},
	        {"id": "dup", "prompt": "p2", "answer": "ok"},
	        {"id": "bad-spec", "prompt": "p3", "answer": "[unclosed"},
	        {"id": "bad-dep", "prompt": "p4", "answer": "ok2", "unlock_after": ["ghost"]}
	      ]
	    }
	  ]
	}`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected authoring errors")
	}
	for _, want := range []string{"dup", "bad-spec", "ghost"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	var cardErr *CardError
	if !errors.As(err, &cardErr) {
		t.Errorf("error chain should expose *CardError, got %T", err)
	}
	var parseErr *answer.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("error chain should expose the answer spec parse error")
	}
}
