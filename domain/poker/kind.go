package poker

import (
	"fmt"
	"sort"
)

// NOfAKind reports whether some value appears exactly n times in the
// hand. A value held four times satisfies n=4 only, never n=2 or n=3.
// When several values qualify the highest wins. The evidence is every
// card of that value.
//
// n must be 2, 3 or 4.
func NOfAKind(h Hand, n int) (Match, bool) {
	mustClassify(h)
	category := kindCategory(n)

	counts := h.ValueCounts()
	for _, v := range valuesDesc(counts) {
		if counts[v] == n {
			return newMatch(h, category, h.CardsWithValue(v)), true
		}
	}
	return Match{}, false
}

// DetectPair finds a value held exactly twice.
func DetectPair(h Hand) (Match, bool) {
	return NOfAKind(h, 2)
}

// DetectThreeOfAKind finds a value held exactly three times.
func DetectThreeOfAKind(h Hand) (Match, bool) {
	return NOfAKind(h, 3)
}

// DetectFourOfAKind finds a value held four times.
func DetectFourOfAKind(h Hand) (Match, bool) {
	return NOfAKind(h, 4)
}

// DetectTwoPair needs two different values each held at least twice. A
// value held three or four times fills one pair slot only. The evidence
// is two cards of each of the two highest such values.
func DetectTwoPair(h Hand) (Match, bool) {
	mustClassify(h)

	counts := h.ValueCounts()
	var paired []int
	for _, v := range valuesDesc(counts) {
		if counts[v] >= 2 {
			paired = append(paired, v)
		}
	}
	if len(paired) < 2 {
		return Match{}, false
	}

	evidence := make([]Card, 0, 4)
	evidence = append(evidence, h.CardsWithValue(paired[0])[:2]...)
	evidence = append(evidence, h.CardsWithValue(paired[1])[:2]...)
	return newMatch(h, TwoPair, evidence), true
}

// DetectFullHouse needs a value held at least three times and a
// different value held at least twice. The triple is the highest value
// with three or more cards; the pair is the highest other value with two
// or more, which may itself be a second triple. The five evidence cards
// are always distinct.
func DetectFullHouse(h Hand) (Match, bool) {
	mustClassify(h)

	counts := h.ValueCounts()
	values := valuesDesc(counts)

	trips := 0
	for _, v := range values {
		if counts[v] >= 3 {
			trips = v
			break
		}
	}
	if trips == 0 {
		return Match{}, false
	}

	pair := 0
	for _, v := range values {
		if v != trips && counts[v] >= 2 {
			pair = v
			break
		}
	}
	if pair == 0 {
		return Match{}, false
	}

	evidence := make([]Card, 0, 5)
	evidence = append(evidence, h.CardsWithValue(trips)[:3]...)
	evidence = append(evidence, h.CardsWithValue(pair)[:2]...)
	return newMatch(h, FullHouse, evidence), true
}

func kindCategory(n int) Category {
	switch n {
	case 2:
		return Pair
	case 3:
		return ThreeOfAKind
	case 4:
		return FourOfAKind
	default:
		panic(fmt.Sprintf("poker: no category for %d of a kind", n))
	}
}

func valuesDesc(counts map[int]int) []int {
	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}
