package answer

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Result classifies a submitted answer.
type Result string

const (
	// ResultCorrect is a full match, disambiguation included when required.
	ResultCorrect Result = "Correct"
	// ResultCloseEnough is a match within typo tolerance.
	ResultCloseEnough Result = "CloseEnough"
	// ResultPartialMatch is a correct core with the required disambiguation
	// missing. The learner gets a retry.
	ResultPartialMatch Result = "PartialMatch"
	// ResultIncorrect is a wrong answer.
	ResultIncorrect Result = "Incorrect"
)

// IsCorrect reports whether the result counts as a successful recall.
func (r Result) IsCorrect() bool {
	return r != ResultIncorrect
}

// ValidationResult is the full outcome of one answer submission.
type ValidationResult struct {
	Result      Result `json:"result"`
	Quality     int    `json:"quality"`
	AllowsRetry bool   `json:"allows_retry"`
}

// quality maps a result and hint usage to the scheduler quality rating.
// This table is the single source of truth; a typo alone is never penalized
// beyond the hint penalty, and hint usage never compounds below 3 for a
// correct answer.
func quality(r Result, usedHint bool) int {
	switch r {
	case ResultCorrect, ResultCloseEnough:
		if usedHint {
			return 3
		}
		return 4
	case ResultPartialMatch:
		return 2
	default:
		return 0
	}
}

// Match compares user input against a parsed answer spec.
func Match(userInput string, spec *Spec, usedHint bool) ValidationResult {
	r := classify(userInput, spec)
	return ValidationResult{
		Result:      r,
		Quality:     quality(r, usedHint),
		AllowsRetry: r == ResultPartialMatch,
	}
}

// Validate parses the authored spec and matches the input against it. The
// error is an authoring error; content loading is expected to have caught it
// long before a learner sees the card.
func Validate(userInput, answerSpec string, usedHint bool) (ValidationResult, error) {
	spec, err := ParseSpec(answerSpec)
	if err != nil {
		return ValidationResult{}, err
	}
	return Match(userInput, spec, usedHint), nil
}

func classify(userInput string, spec *Spec) Result {
	// Learners sometimes type the answer exactly as displayed, grammar
	// syntax included. Parse the input too so "that <far>" and "that far"
	// are treated alike; a malformed input is just plain text.
	inputSpec, err := ParseSpec(userInput)
	if err != nil {
		inputSpec = &Spec{CoreTerms: []string{userInput}}
	}
	input := Normalize(strings.Join(inputSpec.CoreTerms, " "))
	if input == "" {
		return ResultIncorrect
	}

	if spec.Phonetic {
		return classifyPhonetic(input, spec.Raw)
	}

	full, partial := spec.acceptedForms()

	// 1. Exact match against a full accepted form.
	for _, form := range full {
		if input == form {
			return ResultCorrect
		}
	}

	userSuppliedDisambig := suppliedDisambiguation(inputSpec, spec)

	// 2. Permutation of the synonym set, any order.
	if len(spec.CoreTerms) > 1 && tokensMatch(input, spec.CoreTerms) {
		if spec.Disambiguation == "" || userSuppliedDisambig {
			return ResultCorrect
		}
		return ResultPartialMatch
	}

	// 3. Core matched without the required disambiguation.
	if spec.Disambiguation != "" {
		for _, form := range partial {
			if input == form {
				if userSuppliedDisambig {
					return ResultCorrect
				}
				return ResultPartialMatch
			}
		}
	}

	// 4. Typo tolerance, thresholded by term length. Terms containing
	// non-Latin script require an exact match, so they are skipped here.
	partialSet := make(map[string]bool, len(partial))
	for _, p := range partial {
		partialSet[p] = true
	}
	for _, form := range append(append([]string{}, full...), partial...) {
		if containsNonLatin(form) {
			continue
		}
		d := levenshtein.Distance(input, form, nil)
		if d > 0 && d <= typoThreshold(form) {
			if spec.Disambiguation != "" && partialSet[form] {
				return ResultPartialMatch
			}
			return ResultCloseEnough
		}
	}

	return ResultIncorrect
}

// typoThreshold returns the maximum edit distance accepted for a term:
// single characters are exact-only, short terms allow one edit, longer terms
// allow two.
func typoThreshold(term string) int {
	switch n := len([]rune(term)); {
	case n <= 1:
		return 0
	case n <= 4:
		return 1
	default:
		return 2
	}
}

// tokensMatch reports whether the input's whitespace-split tokens are exactly
// the multiset of tokens across the given terms, in any order.
func tokensMatch(input string, terms []string) bool {
	got := strings.Fields(input)
	var want []string
	for _, term := range terms {
		want = append(want, strings.Fields(Normalize(term))...)
	}
	if len(got) != len(want) {
		return false
	}
	sort.Strings(got)
	sort.Strings(want)
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// suppliedDisambiguation reports whether the learner typed the expected
// disambiguation using either the <context> or the (info) syntax.
func suppliedDisambiguation(inputSpec, spec *Spec) bool {
	if spec.Disambiguation == "" {
		return false
	}
	want := Normalize(spec.Disambiguation)
	if inputSpec.Disambiguation != "" && Normalize(inputSpec.Disambiguation) == want {
		return true
	}
	return inputSpec.Info != "" && Normalize(inputSpec.Info) == want
}

// classifyPhonetic handles "core (modifier)" answers. The core must match
// exactly; only the modifier gets typo tolerance.
func classifyPhonetic(input, correctAnswer string) Result {
	wantCore, wantMod := splitPhonetic(Normalize(correctAnswer))
	gotCore, gotMod := splitPhonetic(input)

	if gotCore != wantCore {
		return ResultIncorrect
	}
	if wantMod == "" {
		return ResultCorrect
	}
	if gotMod == "" {
		return ResultIncorrect
	}
	switch levenshtein.Distance(gotMod, wantMod, nil) {
	case 0:
		return ResultCorrect
	case 1:
		return ResultCloseEnough
	default:
		return ResultIncorrect
	}
}

// splitPhonetic splits a normalized answer into its core and trailing
// modifier. A final token within one edit of a known modifier counts, so a
// typo like "tenss" still lands in the modifier check.
func splitPhonetic(normalized string) (core, modifier string) {
	parts := strings.Fields(normalized)
	if len(parts) < 2 {
		return normalized, ""
	}
	last := parts[len(parts)-1]
	for _, m := range phoneticModifiers {
		if last == m || levenshtein.Distance(last, m, nil) <= 1 {
			return strings.Join(parts[:len(parts)-1], " "), last
		}
	}
	return normalized, ""
}
