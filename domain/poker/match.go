package poker

import "strings"

// Category is a poker hand category. Values are ordered by strength.
type Category uint8

const (
	Pair Category = iota + 1
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every category, weakest first.
func Categories() []Category {
	return []Category{Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}
}

func (c Category) String() string {
	switch c {
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Key returns a stable snake_case identifier, used in reports.
func (c Category) Key() string {
	return strings.ReplaceAll(strings.ToLower(c.String()), " ", "_")
}

// ParseCategory is the inverse of Key.
func ParseCategory(key string) (Category, bool) {
	for _, c := range Categories() {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}

// Match is a positive detector result. Cards is the evidence: genuine
// cards from the classified hand. Rest holds every other card of the
// hand.
type Match struct {
	Category Category
	Cards    []Card
	Rest     []Card
}

func (m Match) String() string {
	parts := make([]string, 0, len(m.Cards))
	for _, c := range m.Cards {
		parts = append(parts, c.String())
	}
	return m.Category.String() + ": " + strings.Join(parts, " ")
}

func newMatch(h Hand, category Category, evidence []Card) Match {
	return Match{
		Category: category,
		Cards:    evidence,
		Rest:     h.without(evidence),
	}
}
