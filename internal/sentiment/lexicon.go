package sentiment

// The lexicons are process-wide immutable constants: loaded once into the
// analyzer at construction and never mutated afterwards. The two lists are
// disjoint. Portuguese and English entries live side by side because the
// forum's communities post in both languages.

var positiveWords = []string{
	// Portuguese
	"ótimo", "ótima", "excelente", "legal", "bom", "boa", "adorei",
	"incrível", "maravilhoso", "fantástico", "perfeito", "amei", "gostei",
	"bacana", "show", "demais", "feliz", "alegre", "satisfeito", "contente",
	// English
	"great", "good", "awesome", "amazing", "wonderful", "fantastic",
	"perfect", "excellent", "loved", "happy", "glad", "nice", "brilliant",
	"helpful", "insightful",
}

var negativeWords = []string{
	// Portuguese
	"ruim", "péssimo", "péssima", "horrível", "terrível", "odeio",
	"detesto", "mal", "pior", "odiei", "triste", "chato", "decepcionante",
	"frustrante", "insatisfeito", "descontente",
	// English
	"bad", "terrible", "horrible", "awful", "hate", "hated", "worse",
	"worst", "sad", "boring", "disappointing", "frustrating", "annoying",
	"useless",
}
