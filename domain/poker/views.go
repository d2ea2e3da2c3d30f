package poker

// Views derived from a Hand. None of them are cached: every call
// recomputes from the current cards, and none mutate the receiver.

// Run is a run-length tuple: Length cards sharing Value, taken from a
// hand sorted by one of the two value orderings.
type Run struct {
	Length int
	Value  int
}

// ValueCounts returns the frequency map value -> number of cards with
// that value (Ace high). The counts always sum to Len.
func (h Hand) ValueCounts() map[int]int {
	counts := make(map[int]int, len(h.cards))
	for _, c := range h.cards {
		counts[c.value]++
	}
	return counts
}

// CardsWithValue returns the cards holding value v (Ace high), in hand order.
func (h Hand) CardsWithValue(v int) []Card {
	var out []Card
	for _, c := range h.cards {
		if c.value == v {
			out = append(out, c)
		}
	}
	return out
}

// SuitBuckets groups the cards by suit. Each bucket keeps the hand's
// relative order.
func (h Hand) SuitBuckets() map[Suit]Hand {
	buckets := make(map[Suit]Hand, len(Suits))
	for _, c := range h.cards {
		b := buckets[c.suit]
		b.cards = append(b.cards, c)
		b.size = len(b.cards)
		buckets[c.suit] = b
	}
	return buckets
}

// SuitsPresent returns the suits held, in suit order.
func (h Hand) SuitsPresent() []Suit {
	var held [Diamonds + 1]bool
	for _, c := range h.cards {
		held[c.suit] = true
	}
	out := make([]Suit, 0, len(Suits))
	for _, s := range Suits {
		if held[s] {
			out = append(out, s)
		}
	}
	return out
}

// HasAce reports whether any card is an Ace.
func (h Hand) HasAce() bool {
	for _, c := range h.cards {
		if c.rank == Ace {
			return true
		}
	}
	return false
}

// Runs returns the run-length tuples of the hand sorted by value
// descending, using the Ace-low ordering when lowAce is set. Each tuple
// is a maximal group of equal values, so the tuple values are strictly
// descending.
func (h Hand) Runs(lowAce bool) []Run {
	sorted := h.Clone()
	sorted.sortDesc(lowAce)
	return runsOf(sorted.cards, lowAce)
}

func runsOf(sorted []Card, lowAce bool) []Run {
	var runs []Run
	for _, c := range sorted {
		v := c.valueFor(lowAce)
		if n := len(runs); n > 0 && runs[n-1].Value == v {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run{Length: 1, Value: v})
	}
	return runs
}

// SplitDuplicates sorts a copy of the hand by the chosen ordering
// (descending) and keeps the first card of every value in distinct. The
// remaining cards of repeated values are set aside in leftover rather
// than discarded.
func (h Hand) SplitDuplicates(lowAce bool) (distinct, leftover Hand) {
	sorted := h.Clone()
	sorted.sortDesc(lowAce)
	for i, c := range sorted.cards {
		if i > 0 && sorted.cards[i-1].valueFor(lowAce) == c.valueFor(lowAce) {
			leftover.cards = append(leftover.cards, c)
			continue
		}
		distinct.cards = append(distinct.cards, c)
	}
	distinct.size = len(distinct.cards)
	leftover.size = len(leftover.cards)
	return distinct, leftover
}

// without returns the hand minus the given cards, keeping order.
func (h Hand) without(cards []Card) []Card {
	rest := h.Clone()
	rest.Remove(cards...)
	return rest.cards
}
