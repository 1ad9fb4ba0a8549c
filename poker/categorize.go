package poker

// HoleCardCategory buckets a starting hand by preflop strength.
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// CategorizeHoleCards provides a simple preflop hand categorization.
// Categories: Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited
// broadway), Weak (22-66, suited connectors), Trash (everything else).
func CategorizeHoleCards(a, b Card) HoleCardCategory {
	low, high := a.Rank, b.Rank
	if low > high {
		low, high = high, low
	}
	suited := a.Suit == b.Suit
	pair := low == high

	switch {
	case pair && low >= Jack:
		return CategoryPremium
	case high == Ace && low == King:
		return CategoryPremium
	case pair && low == Ten:
		return CategoryStrong
	case high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case pair && low >= Seven:
		return CategoryMedium
	case suited && low >= Ten:
		return CategoryMedium
	case pair:
		return CategoryWeak
	case suited && high-low <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
