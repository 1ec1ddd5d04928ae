package answer

import (
	"strings"
	"unicode"
)

// spellingVariants maps regional spellings to the canonical form used during
// comparison. Both the learner's input and the authored answer pass through
// the same table, so matching is symmetric regardless of which side uses
// which variant. Display text is never rewritten.
var spellingVariants = map[string]string{
	"colour":    "color",
	"behaviour": "behavior",
	"favour":    "favor",
	"honour":    "honor",
	"centre":    "center",
	"fibre":     "fiber",
	"grey":      "gray",
	"defence":   "defense",
	"licence":   "license",
	"favourite": "favorite",
	"organise":  "organize",
	"realise":   "realize",
	"mum":       "mom",
}

// contractions maps contracted forms to their expanded equivalents.
var contractions = map[string]string{
	"i'm":       "i am",
	"you're":    "you are",
	"he's":      "he is",
	"she's":     "she is",
	"it's":      "it is",
	"we're":     "we are",
	"they're":   "they are",
	"isn't":     "is not",
	"aren't":    "are not",
	"don't":     "do not",
	"doesn't":   "does not",
	"didn't":    "did not",
	"can't":     "cannot",
	"won't":     "will not",
	"wouldn't":  "would not",
	"couldn't":  "could not",
	"shouldn't": "should not",
}

// Normalize canonicalizes raw input for comparison: lowercase, punctuation
// stripped (apostrophes kept long enough to expand contractions), regional
// spellings folded to one canonical form, whitespace collapsed. Non-Latin
// characters pass through untouched. Pure function.
func Normalize(input string) string {
	lowered := strings.ToLower(strings.TrimSpace(input))

	// First pass keeps apostrophes so contractions survive to expansion.
	kept := filterRunes(lowered, true)
	words := strings.Fields(kept)
	for i, w := range words {
		if expanded, ok := contractions[w]; ok {
			words[i] = expanded
		}
	}
	expanded := strings.Join(words, " ")

	// Second pass drops apostrophes, then folds spelling variants.
	cleaned := filterRunes(expanded, false)
	words = strings.Fields(cleaned)
	for i, w := range words {
		if canonical, ok := spellingVariants[w]; ok {
			words[i] = canonical
		}
	}
	return strings.Join(words, " ")
}

// filterRunes keeps letters, digits, spaces and slashes (slashes separate
// alternative answers). Apostrophes are kept only when keepApostrophe is set.
func filterRunes(s string, keepApostrophe bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '/':
			b.WriteRune(r)
		case r == '\'' && keepApostrophe:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// containsNonLatin reports whether s contains a letter outside the Latin
// script (e.g. Hangul jamo or syllables). Such answers get no typo tolerance.
func containsNonLatin(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) && !unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}
