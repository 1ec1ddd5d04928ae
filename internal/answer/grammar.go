package answer

import (
	"fmt"
	"strings"
)

// Spec is the structured form of an authored answer string. It is derived on
// demand and never stored.
//
// Grammar, by example:
//
//	"sofa, couch"        top-level commas → synonym terms, any accepted
//	"to be [is, am]"     bracketed list → alternative full answers
//	"eye(s)"             no space before '(' → optional suffix
//	"hello (informal)"   space before '(' → informational, ignored
//	"that <far>"         angle brackets → disambiguation, required for
//	                     full credit
//	"jj (tense)"         phonetic modifier: core must match exactly, the
//	                     modifier gets its own tolerance check
type Spec struct {
	Raw            string
	CoreTerms      []string
	Variants       []string
	Suffix         string
	Disambiguation string
	Info           string
	Phonetic       bool
}

// phoneticModifiers are the recognized pronunciation modifiers. An authored
// answer mentioning one is matched as core + modifier, not as plain text.
var phoneticModifiers = []string{"tense", "aspirated"}

// ParseError describes a malformed answer spec. Authors see this at
// content-load time; it never reaches a learner mid-study.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("answer spec %q: %s", e.Spec, e.Reason)
}

// ParseSpec parses an authored answer string into a Spec. It fails only on
// malformed structure: unclosed or nested brackets, or more than one
// disambiguation clause.
func ParseSpec(raw string) (*Spec, error) {
	input := strings.TrimSpace(raw)
	spec := &Spec{Raw: input}

	if isPhonetic(input) {
		spec.Phonetic = true
		spec.CoreTerms = []string{input}
		return spec, nil
	}

	var core strings.Builder
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		switch runes[i] {
		case '[':
			content, next, err := scanBracket(runes, i, '[', ']')
			if err != nil {
				return nil, &ParseError{Spec: input, Reason: err.Error()}
			}
			for _, item := range strings.Split(content, ",") {
				if item = strings.TrimSpace(item); item != "" {
					spec.Variants = append(spec.Variants, item)
				}
			}
			i = next
		case '<':
			content, next, err := scanBracket(runes, i, '<', '>')
			if err != nil {
				return nil, &ParseError{Spec: input, Reason: err.Error()}
			}
			if spec.Disambiguation != "" {
				return nil, &ParseError{Spec: input, Reason: "more than one disambiguation clause"}
			}
			spec.Disambiguation = strings.TrimSpace(content)
			i = next
		case '(':
			content, next, err := scanBracket(runes, i, '(', ')')
			if err != nil {
				return nil, &ParseError{Spec: input, Reason: err.Error()}
			}
			// A space before '(' marks ignorable info; attached parens
			// mark an optional suffix.
			if i > 0 && runes[i-1] != ' ' {
				spec.Suffix = strings.TrimSpace(content)
			} else {
				spec.Info = strings.TrimSpace(content)
			}
			i = next
		case ']', '>', ')':
			return nil, &ParseError{Spec: input, Reason: fmt.Sprintf("unmatched %q", runes[i])}
		default:
			core.WriteRune(runes[i])
			i++
		}
	}

	for _, term := range strings.Split(core.String(), ",") {
		if term = strings.TrimSpace(term); term != "" {
			spec.CoreTerms = append(spec.CoreTerms, term)
		}
	}
	if spec.Suffix != "" && len(spec.Variants) > 0 {
		return nil, &ParseError{Spec: input, Reason: "suffix and bracket variants cannot be combined"}
	}
	return spec, nil
}

// scanBracket returns the content between the opening bracket at start and
// its closing counterpart, plus the index just past the close. Nesting of any
// bracket kind inside the span is malformed.
func scanBracket(runes []rune, start int, open, close rune) (string, int, error) {
	for i := start + 1; i < len(runes); i++ {
		switch runes[i] {
		case close:
			return string(runes[start+1 : i]), i + 1, nil
		case '[', '<', '(':
			return "", 0, fmt.Errorf("nested %q inside %q", runes[i], open)
		}
	}
	return "", 0, fmt.Errorf("unclosed %q", open)
}

// isPhonetic reports whether the authored answer carries a pronunciation
// modifier, e.g. "jj (tense)".
func isPhonetic(answer string) bool {
	lowered := strings.ToLower(answer)
	for _, m := range phoneticModifiers {
		if strings.Contains(lowered, "("+m+")") {
			return true
		}
	}
	return false
}

// acceptedForms expands a Spec into the normalized strings a learner may
// type. partial holds forms that omit the disambiguation; full holds forms
// that include it (when there is none, full == partial).
func (s *Spec) acceptedForms() (full, partial []string) {
	seen := make(map[string]bool)
	add := func(dst *[]string, form string) {
		n := Normalize(form)
		if n != "" && !seen[n] {
			seen[n] = true
			*dst = append(*dst, n)
		}
	}

	for _, term := range s.CoreTerms {
		add(&partial, term)
		// Slash-separated alternatives are each accepted on their own,
		// as is the joined form.
		if strings.Contains(term, "/") {
			parts := splitTrim(term, "/")
			for _, p := range parts {
				add(&partial, p)
			}
			add(&partial, strings.Join(parts, "/"))
		}
		if s.Suffix != "" {
			add(&partial, term+s.Suffix)
		}
	}
	// All core terms concatenated in authored order.
	if len(s.CoreTerms) > 1 {
		add(&partial, strings.Join(s.CoreTerms, " "))
	}
	for _, v := range s.Variants {
		add(&partial, v)
	}

	if s.Disambiguation == "" {
		return partial, partial
	}
	disambig := Normalize(s.Disambiguation)
	for _, p := range partial {
		full = append(full, p+" "+disambig, disambig+" "+p)
	}
	return full, partial
}

func splitTrim(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
