package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three Aces plus five spades (A♠ Q♠ 10♠ 6♠ 5♠): the hand is a flush
// under the flush rule, so it is reported next to the trips and nothing
// else. It holds no pair, straight or full house.
func TestClassifyTripsAndFlush(t *testing.T) {
	t.Parallel()

	h := hand(t, "As Ah Ac Ts Qs 5s 6s Jh")
	set := Classify(h)
	assert.Equal(t, CategorySet(0).Add(Flush).Add(ThreeOfAKind), set)
	assert.False(t, set.Has(Pair))
	assert.False(t, set.Has(FullHouse))
	assert.False(t, set.Has(Straight))
}

func TestClassifyOverlappingEvidence(t *testing.T) {
	t.Parallel()

	h := hand(t, "2s 3s 4s 5s 6s 3h 4h 4h")
	set := Classify(h)
	require.True(t, set.Has(Straight))
	require.True(t, set.Has(Flush))

	m, ok := Detect(h, Straight)
	require.True(t, ok)
	assert.Equal(t, []string{"6s", "5s", "4s", "3s", "2s"}, codes(m.Cards))

	m, ok = Detect(h, Flush)
	require.True(t, ok)
	for _, c := range m.Cards {
		assert.Equal(t, Spades, c.Suit())
	}
}

func TestClassifyDoesNotMutate(t *testing.T) {
	t.Parallel()

	h := hand(t, "9d 2s Ks 2h 7s 4s As 2c")
	before := codes(h.Cards())
	_ = Classify(h)
	_ = Matches(h)
	assert.Equal(t, before, codes(h.Cards()))
	assert.Equal(t, 8, h.Len())
}

func TestMatchesStrongestFirst(t *testing.T) {
	t.Parallel()

	ms := Matches(hand(t, "5s 6s 7s 8s 9s 9h 9d 2c"))
	require.NotEmpty(t, ms)
	got := make([]Category, 0, len(ms))
	for _, m := range ms {
		got = append(got, m.Category)
	}
	assert.Equal(t, []Category{StraightFlush, Flush, Straight, ThreeOfAKind}, got)
}

func TestClassifyPanicsOnShortHand(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Classify(hand(t, "As Kd Qh Jc")) })
	assert.Panics(t, func() { DetectFlush(hand(t, "As Ks Qs Js")) })
}

func TestDetectUnknownCategory(t *testing.T) {
	t.Parallel()

	_, ok := Detect(hand(t, "As Ah Kd Qh Jc"), Category(42))
	assert.False(t, ok)
}

// Properties every classification must satisfy, checked on random
// deals of distinct cards.
func TestClassifyRandomHands(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		h := randomHand(rng, 5+rng.Intn(6))

		for _, m := range Matches(h) {
			for _, c := range m.Cards {
				require.True(t, h.Contains(c), "evidence %s not in %s", c.Code(), codes(h.Cards()))
			}
			require.Equal(t, h.Len(), len(m.Cards)+len(m.Rest))
		}

		set := Classify(h)
		if set.Has(StraightFlush) {
			assert.True(t, set.Has(Straight), codes(h.Cards()))
			assert.True(t, set.Has(Flush), codes(h.Cards()))
		}
		if set.Has(FullHouse) {
			assert.True(t, set.Has(TwoPair), codes(h.Cards()))
			assert.True(t, set.Has(ThreeOfAKind) || set.Has(FourOfAKind), codes(h.Cards()))
		}
	}
}

func TestCategorySet(t *testing.T) {
	t.Parallel()

	var set CategorySet
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, "{}", set.String())
	_, ok := Best(set)
	assert.False(t, ok)

	set = set.Add(ThreeOfAKind).Add(Flush).Add(Flush)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []Category{Flush, ThreeOfAKind}, set.Categories())
	assert.Equal(t, "{Flush, Three of a Kind}", set.String())

	best, ok := Best(set)
	require.True(t, ok)
	assert.Equal(t, Flush, best)
}

func TestCategoryKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "three_of_a_kind", ThreeOfAKind.Key())
	for _, c := range Categories() {
		got, ok := ParseCategory(c.Key())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCategory("royal_flush")
	assert.False(t, ok)
}
