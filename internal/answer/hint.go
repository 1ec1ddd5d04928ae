package answer

import (
	"fmt"
	"strings"
)

// Hint returns a progressive reveal of the answer. Level 1 shows the first
// character and the length, level 2 the first two characters, and level 3 or
// above the full answer. Deterministic for a given (answer, level) pair.
func Hint(answerText string, level int) string {
	runes := []rune(answerText)
	switch {
	case level <= 1:
		first := '?'
		if len(runes) > 0 {
			first = runes[0]
		}
		masked := strings.Repeat("_", max(len(runes)-1, 0))
		return fmt.Sprintf("%c%s (%d letters)", first, masked, len(runes))
	case level == 2:
		// Two characters or fewer leaves nothing meaningful to mask.
		if len(runes) <= 2 {
			return answerText
		}
		return string(runes[:2]) + strings.Repeat("_", len(runes)-2)
	default:
		return answerText
	}
}
