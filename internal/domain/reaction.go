package domain

// ReactionKind is one of the fixed closed set of reaction types.
type ReactionKind string

const (
	ReactionLike       ReactionKind = "like"
	ReactionLove       ReactionKind = "love"
	ReactionInsightful ReactionKind = "insightful"
)

// ReactionKinds lists every valid kind in a stable order.
func ReactionKinds() []ReactionKind {
	return []ReactionKind{ReactionLike, ReactionLove, ReactionInsightful}
}

// Valid reports whether k is a member of the closed set.
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionLike, ReactionLove, ReactionInsightful:
		return true
	}
	return false
}

// ReactionTotals is the per-kind reaction count of a single message. All three
// kinds are always present so clients never have to special-case missing keys.
type ReactionTotals struct {
	Like       int `json:"like"`
	Love       int `json:"love"`
	Insightful int `json:"insightful"`
}

// TotalsFromCounts builds zero-filled totals from a sparse count map.
func TotalsFromCounts(counts map[ReactionKind]int) ReactionTotals {
	return ReactionTotals{
		Like:       counts[ReactionLike],
		Love:       counts[ReactionLove],
		Insightful: counts[ReactionInsightful],
	}
}
