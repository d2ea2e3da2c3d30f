package poker

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// DefaultHandSize is the declared size of a hand built by Default.
	DefaultHandSize = 5
	// MinHandSize is the smallest hand a detector accepts.
	MinHandSize = 5
)

// Hand is an ordered collection of cards plus the number of cards the
// dealer should fill it with. The size is only a hint for the card
// supply; classification works on whatever Len is, as long as it is at
// least MinHandSize.
//
// Content only changes through Add and Remove. The Sort methods change
// order, never content. Hand values may be copied freely: every method
// that changes a hand writes to cards of its own, never to a backing
// array another copy can see.
type Hand struct {
	cards []Card
	size  int
}

// NewHand returns an empty hand that the dealer will fill with size cards.
func NewHand(size int) Hand {
	return Hand{cards: make([]Card, 0, size), size: size}
}

// Default returns an empty hand of DefaultHandSize.
func Default() Hand {
	return NewHand(DefaultHandSize)
}

// HandOf returns a hand holding a copy of cards, sized to fit them.
func HandOf(cards ...Card) Hand {
	return Hand{cards: append([]Card(nil), cards...), size: len(cards)}
}

// Add appends cards to the hand in order.
func (h *Hand) Add(cards ...Card) {
	h.cards = append(h.cards[:len(h.cards):len(h.cards)], cards...)
}

// Remove deletes the first occurrence of each given card and returns how
// many were actually removed.
func (h *Hand) Remove(cards ...Card) int {
	kept := append([]Card(nil), h.cards...)
	removed := 0
	for _, rc := range cards {
		for i := range kept {
			if kept[i].Equal(rc) {
				kept = append(kept[:i], kept[i+1:]...)
				removed++
				break
			}
		}
	}
	h.cards = kept
	return removed
}

// Cards returns a copy of the cards in their current order.
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Len returns the number of cards currently held.
func (h Hand) Len() int {
	return len(h.cards)
}

// Size returns the declared target size.
func (h Hand) Size() int {
	return h.size
}

// Missing returns how many cards the dealer still owes the hand.
func (h Hand) Missing() int {
	if n := h.size - len(h.cards); n > 0 {
		return n
	}
	return 0
}

// Clone returns an independent copy; sorting or mutating it never
// affects h.
func (h Hand) Clone() Hand {
	return Hand{cards: append([]Card(nil), h.cards...), size: h.size}
}

// Contains reports whether the hand holds card.
func (h Hand) Contains(card Card) bool {
	for _, c := range h.cards {
		if c.Equal(card) {
			return true
		}
	}
	return false
}

// SortByValueDesc orders the hand Ace high, highest value first.
func (h *Hand) SortByValueDesc() {
	h.own()
	sort.SliceStable(h.cards, func(i, j int) bool {
		return h.cards[i].value > h.cards[j].value
	})
}

// SortByAltValueAsc orders the hand Ace low, lowest value first.
func (h *Hand) SortByAltValueAsc() {
	h.own()
	sort.SliceStable(h.cards, func(i, j int) bool {
		return h.cards[i].altValue < h.cards[j].altValue
	})
}

// SortBySuit groups the hand by suit in suit order, highest value first
// inside each suit.
func (h *Hand) SortBySuit() {
	h.own()
	sort.SliceStable(h.cards, func(i, j int) bool {
		if h.cards[i].suit != h.cards[j].suit {
			return h.cards[i].suit < h.cards[j].suit
		}
		return h.cards[i].value > h.cards[j].value
	})
}

func (h *Hand) sortDesc(lowAce bool) {
	h.own()
	sort.SliceStable(h.cards, func(i, j int) bool {
		return h.cards[i].valueFor(lowAce) > h.cards[j].valueFor(lowAce)
	})
}

// own detaches h from any backing array it shares with a copy.
func (h *Hand) own() {
	h.cards = append([]Card(nil), h.cards...)
}

func (h Hand) String() string {
	parts := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

// mustClassify enforces the detector contract on the hand size.
func mustClassify(h Hand) {
	if len(h.cards) < MinHandSize {
		panic(fmt.Sprintf("poker: cannot classify a hand of %d cards, need at least %d", len(h.cards), MinHandSize))
	}
}
