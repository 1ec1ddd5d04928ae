package answer

import "testing"

func classifyAnswer(t *testing.T, input, spec string) Result {
	t.Helper()
	res, err := Validate(input, spec, false)
	if err != nil {
		t.Fatalf("Validate(%q, %q): %v", input, spec, err)
	}
	return res.Result
}

func TestMatch_ExactAndAlternatives(t *testing.T) {
	tests := []struct {
		input string
		spec  string
		want  Result
	}{
		{"g", "g / k", ResultCorrect},
		{"k", "g / k", ResultCorrect},
		{"g / k", "g / k", ResultCorrect},
		{"g/k", "g / k", ResultCorrect},
		{"G", "g / k", ResultCorrect},
		{"YA", "ya", ResultCorrect},
		{"m", "g / k", ResultIncorrect},
		{"", "g / k", ResultIncorrect},
	}
	for _, tt := range tests {
		if got := classifyAnswer(t, tt.input, tt.spec); got != tt.want {
			t.Errorf("classify(%q, %q) = %v, want %v", tt.input, tt.spec, got, tt.want)
		}
	}
}

func TestMatch_TypoTolerance(t *testing.T) {
	tests := []struct {
		input string
		spec  string
		want  Result
	}{
		{"yaa", "ya", ResultCloseEnough},
		{"yo", "ya", ResultCloseEnough},
		{"xyz", "ya", ResultIncorrect},
		// Single-character answers get zero tolerance.
		{"k", "g", ResultIncorrect},
		{"n", "m", ResultIncorrect},
		// Longer answers allow two edits.
		{"annyong", "annyeong", ResultCloseEnough},
		{"anyong", "annyeong", ResultCloseEnough},
		{"ayon", "annyeong", ResultIncorrect},
	}
	for _, tt := range tests {
		if got := classifyAnswer(t, tt.input, tt.spec); got != tt.want {
			t.Errorf("classify(%q, %q) = %v, want %v", tt.input, tt.spec, got, tt.want)
		}
	}
}

func TestMatch_NonLatinExactOnly(t *testing.T) {
	tests := []struct {
		input string
		spec  string
		want  Result
	}{
		{"ㄱ", "ㄱ", ResultCorrect},
		{"ㄴ", "ㄱ", ResultIncorrect},
		{"가", "가", ResultCorrect},
		{"나", "가", ResultIncorrect},
		// Visually close jamo must not be typo-tolerated.
		{"ㄲ", "ㄱ", ResultIncorrect},
		{"ㅃ", "ㅂ", ResultIncorrect},
		{"안녕", "안녕", ResultCorrect},
		{"안넝", "안녕", ResultIncorrect},
	}
	for _, tt := range tests {
		if got := classifyAnswer(t, tt.input, tt.spec); got != tt.want {
			t.Errorf("classify(%q, %q) = %v, want %v", tt.input, tt.spec, got, tt.want)
		}
	}
}

func TestMatch_BracketVariants(t *testing.T) {
	for _, input := range []string{"to be", "is", "am", "are"} {
		if got := classifyAnswer(t, input, "to be [is, am, are]"); got != ResultCorrect {
			t.Errorf("classify(%q) = %v, want Correct", input, got)
		}
	}
}

func TestMatch_OptionalSuffix(t *testing.T) {
	if got := classifyAnswer(t, "eye", "eye(s)"); got != ResultCorrect {
		t.Errorf("bare form = %v, want Correct", got)
	}
	if got := classifyAnswer(t, "eyes", "eye(s)"); got != ResultCorrect {
		t.Errorf("suffixed form = %v, want Correct", got)
	}
}

func TestMatch_InfoIgnored(t *testing.T) {
	if got := classifyAnswer(t, "hello", "hello (informal)"); got != ResultCorrect {
		t.Errorf("core without info = %v, want Correct", got)
	}
	if got := classifyAnswer(t, "informal", "hello (informal)"); got != ResultIncorrect {
		t.Errorf("info text alone = %v, want Incorrect", got)
	}
}

func TestMatch_Disambiguation(t *testing.T) {
	res, err := Validate("that", "that <far>", false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result != ResultPartialMatch {
		t.Errorf("Result = %v, want PartialMatch", res.Result)
	}
	if res.Quality != 2 {
		t.Errorf("Quality = %d, want 2", res.Quality)
	}
	if !res.AllowsRetry {
		t.Error("expected AllowsRetry for partial match")
	}

	res, err = Validate("that far", "that <far>", false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Result != ResultCorrect {
		t.Errorf("Result = %v, want Correct", res.Result)
	}
	if res.Quality != 4 {
		t.Errorf("Quality = %d, want 4", res.Quality)
	}

	// Reversed order and user-typed grammar syntax both count.
	if got := classifyAnswer(t, "far that", "that <far>"); got != ResultCorrect {
		t.Errorf("reversed order = %v, want Correct", got)
	}
	if got := classifyAnswer(t, "that <far>", "that <far>"); got != ResultCorrect {
		t.Errorf("angle syntax = %v, want Correct", got)
	}
	if got := classifyAnswer(t, "that (far)", "that <far>"); got != ResultCorrect {
		t.Errorf("paren syntax = %v, want Correct", got)
	}
}

func TestMatch_Permutation(t *testing.T) {
	tests := []struct {
		input string
		spec  string
		want  Result
	}{
		{"sofa", "sofa, couch", ResultCorrect},
		{"couch", "sofa, couch", ResultCorrect},
		{"sofa couch", "sofa, couch", ResultCorrect},
		{"couch sofa", "sofa, couch", ResultCorrect},
		{"i me", "I, me <informal>", ResultPartialMatch},
		{"me informal", "I, me <informal>", ResultCorrect},
		{"informal me", "I, me <informal>", ResultCorrect},
	}
	for _, tt := range tests {
		if got := classifyAnswer(t, tt.input, tt.spec); got != tt.want {
			t.Errorf("classify(%q, %q) = %v, want %v", tt.input, tt.spec, got, tt.want)
		}
	}
}

func TestMatch_PhoneticModifiers(t *testing.T) {
	tests := []struct {
		input string
		spec  string
		want  Result
	}{
		{"jj tense", "jj (tense)", ResultCorrect},
		{"jj (tense)", "jj (tense)", ResultCorrect},
		{"ch aspirated", "ch (aspirated)", ResultCorrect},
		// Typo in the modifier stays within tolerance.
		{"jj tenss", "jj (tense)", ResultCloseEnough},
		{"jj tensee", "jj (tense)", ResultCloseEnough},
		// The core consonant gets no tolerance at all.
		{"ch tense", "jj (tense)", ResultIncorrect},
		{"dd tense", "jj (tense)", ResultIncorrect},
		{"gg aspirated", "ch (aspirated)", ResultIncorrect},
		// Missing or wrong modifier is a failed recall.
		{"jj", "jj (tense)", ResultIncorrect},
		{"jj aspirated", "jj (tense)", ResultIncorrect},
	}
	for _, tt := range tests {
		if got := classifyAnswer(t, tt.input, tt.spec); got != tt.want {
			t.Errorf("classify(%q, %q) = %v, want %v", tt.input, tt.spec, got, tt.want)
		}
	}
}

func TestMatch_SpellingAndContractions(t *testing.T) {
	tests := []struct {
		input string
		spec  string
	}{
		{"color", "colour"},
		{"colour", "color"},
		{"favourite", "favorite"},
		{"I am", "I'm"},
		{"don't", "do not"},
	}
	for _, tt := range tests {
		if got := classifyAnswer(t, tt.input, tt.spec); got != ResultCorrect {
			t.Errorf("classify(%q, %q) = %v, want Correct", tt.input, tt.spec, got)
		}
	}
}

func TestQualityTable(t *testing.T) {
	tests := []struct {
		result   Result
		usedHint bool
		want     int
	}{
		{ResultCorrect, false, 4},
		{ResultCorrect, true, 3},
		{ResultCloseEnough, false, 4},
		{ResultCloseEnough, true, 3},
		{ResultPartialMatch, false, 2},
		{ResultPartialMatch, true, 2},
		{ResultIncorrect, false, 0},
		{ResultIncorrect, true, 0},
	}
	for _, tt := range tests {
		if got := quality(tt.result, tt.usedHint); got != tt.want {
			t.Errorf("quality(%v, hint=%v) = %d, want %d", tt.result, tt.usedHint, got, tt.want)
		}
	}
}

func TestAllowsRetry_OnlyPartialMatch(t *testing.T) {
	spec, err := ParseSpec("that <far>")
	if err != nil {
		t.Fatal(err)
	}
	if res := Match("that", spec, false); !res.AllowsRetry {
		t.Error("partial match should allow retry")
	}
	if res := Match("that far", spec, false); res.AllowsRetry {
		t.Error("correct answer should not allow retry")
	}
	if res := Match("nothing like it", spec, false); res.AllowsRetry {
		t.Error("incorrect answer should not allow retry")
	}
}
