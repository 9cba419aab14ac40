package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_EmptyAndBlankInput(t *testing.T) {
	a := NewAnalyzer()

	assert.InDelta(t, 0.0, a.Analyze(""), 0)
	assert.InDelta(t, 0.0, a.Analyze("   "), 0)
	assert.InDelta(t, 0.0, a.Analyze("\t\n"), 0)
}

func TestAnalyze_NoLexiconHits(t *testing.T) {
	a := NewAnalyzer()

	assert.InDelta(t, 0.0, a.Analyze("hoje vou almoçar macarrão"), 0)
	assert.InDelta(t, 0.0, a.Analyze("the weather is cloudy today"), 0)
}

func TestAnalyze_PinnedValues(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"all positive", "este framework é ótimo e excelente", 1.0},
		{"all negative", "isso é ruim e péssimo", -1.0},
		{"two positive one negative", "ótimo e excelente, mas chato", 0.33},
		{"one positive two negative", "bom, porém ruim e péssimo", -0.33},
		{"balanced", "adorei mas detesto", 0.0},
		{"single positive", "adorei esta comunidade", 1.0},
		{"three to one", "ótimo excelente perfeito ruim", 0.5},
		{"english mix", "great idea but terrible execution", 0.0},
		{"english positive", "this library is awesome and helpful", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, a.Analyze(tt.text), 1e-9)
		})
	}
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	a := NewAnalyzer()

	assert.InDelta(t, a.Analyze("ótimo"), a.Analyze("ÓTIMO"), 0)
	assert.InDelta(t, 1.0, a.Analyze("ÓTIMO"), 0)
	assert.InDelta(t, a.Analyze("terrible"), a.Analyze("TeRrIbLe"), 0)
}

func TestAnalyze_WholeWordMatchingOnly(t *testing.T) {
	a := NewAnalyzer()

	// "bombardeio" contains "bom" but is not a sentiment word.
	assert.InDelta(t, 0.0, a.Analyze("o bombardeio continua"), 0)
	// "malha" contains "mal".
	assert.InDelta(t, 0.0, a.Analyze("a malha ferroviária"), 0)
	// "badge" contains "bad".
	assert.InDelta(t, 0.0, a.Analyze("shiny badge collection"), 0)
	// Punctuation still bounds words.
	assert.InDelta(t, 1.0, a.Analyze("ótimo!"), 0)
	assert.InDelta(t, -1.0, a.Analyze("(ruim)"), 0)
}

func TestAnalyze_DistinctWordsCountOnce(t *testing.T) {
	a := NewAnalyzer()

	// "ótimo" repeated three times is one distinct hit; one "ruim" balances it.
	assert.InDelta(t, 0.0, a.Analyze("ótimo ótimo ótimo ruim"), 0)
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	a := NewAnalyzer()

	samples := []string{
		"",
		"ótimo excelente legal bom boa adorei incrível maravilhoso",
		"ruim péssimo horrível terrível odeio detesto mal pior",
		"great great great bad",
		"ótimo ruim bom péssimo legal horrível",
		strings.Repeat("palavras neutras sem sentimento ", 50),
		"punctuation, only!!! ???",
	}

	for _, text := range samples {
		score := a.Analyze(text)
		assert.GreaterOrEqual(t, score, -1.0, "text: %q", text)
		assert.LessOrEqual(t, score, 1.0, "text: %q", text)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := NewAnalyzer()

	text := "adorei o projeto, mas achei o setup frustrante e chato"
	first := a.Analyze(text)
	for range 10 {
		assert.InDelta(t, first, a.Analyze(text), 0)
	}
}

func TestLexicons_Disjoint(t *testing.T) {
	seen := make(map[string]struct{}, len(positiveWords))
	for _, w := range positiveWords {
		seen[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range negativeWords {
		_, dup := seen[strings.ToLower(w)]
		assert.False(t, dup, "word %q is in both lexicons", w)
	}
}
