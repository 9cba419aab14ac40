package sentiment

import (
	"math"
	"strings"
	"unicode"
)

// Analyzer is a pure lexicon-based sentiment scorer. The word sets are built
// once at construction and read-only afterwards, so a single Analyzer is safe
// for concurrent use without synchronization.
type Analyzer struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positive: buildSet(positiveWords),
		negative: buildSet(negativeWords),
	}
}

func buildSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Analyze scores text in [-1.0, 1.0]. With p distinct positive and n distinct
// negative lexicon words present as whole words, the score is
// (p-n)/(p+n) rounded to two decimals, half away from zero. Blank input and
// text with no lexicon hits both score exactly 0.0.
//
// Matching is whole-word only: lexicon entries are compared against tokens
// split on non-letter, non-digit runes. A lexicon word embedded in a longer
// word ("bom" inside "bombardeio") never matches. Tokenization is used
// instead of regexp word boundaries because Go's \b is ASCII-only and
// misfires on accented entries like "ótimo".
func (a *Analyzer) Analyze(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}

	p := countMatches(a.positive, tokens)
	n := countMatches(a.negative, tokens)
	total := p + n
	if total == 0 {
		return 0.0
	}

	ratio := float64(p-n) / float64(total)
	return math.Round(ratio*100) / 100
}

// tokenize lowercases text and splits it into the set of distinct words.
func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return nil
	}

	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}

// countMatches counts the distinct lexicon words present in the token set.
// Repetitions of the same word in the text count once.
func countMatches(lexicon map[string]struct{}, tokens map[string]struct{}) int {
	count := 0
	for token := range tokens {
		if _, ok := lexicon[token]; ok {
			count++
		}
	}
	return count
}
