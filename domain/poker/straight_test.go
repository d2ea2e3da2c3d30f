package poker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every span v..v+4 with v in 2..10 is a straight under the Ace-high
// ordering.
func TestDetectStraightEveryHighSpan(t *testing.T) {
	t.Parallel()

	for low := 2; low <= 10; low++ {
		t.Run(fmt.Sprintf("from %d", low), func(t *testing.T) {
			h := NewHand(5)
			for i := 0; i < 5; i++ {
				h.Add(NewCard(Suits[i%len(Suits)], RankOf(low+i)))
			}
			m, ok := DetectStraight(h)
			require.True(t, ok)
			assert.Equal(t, []int{low + 4, low + 3, low + 2, low + 1, low}, values(m.Cards))
			assert.Empty(t, m.Rest)
		})
	}
}

func TestDetectStraightWheel(t *testing.T) {
	t.Parallel()

	m, ok := DetectStraight(hand(t, "As 2d 3c 4h 5s"))
	require.True(t, ok)
	assert.Equal(t, []string{"5s", "4h", "3c", "2d", "As"}, codes(m.Cards))
}

func TestDetectStraightBroadway(t *testing.T) {
	t.Parallel()

	m, ok := DetectStraight(hand(t, "Ts As Qc Kd Jh 2c"))
	require.True(t, ok)
	assert.Equal(t, []string{"As", "Kd", "Qc", "Jh", "Ts"}, codes(m.Cards))
	assert.Equal(t, []string{"2c"}, codes(m.Rest))
}

func TestDetectStraightReportsHighest(t *testing.T) {
	t.Parallel()

	m, ok := DetectStraight(hand(t, "4s 5d 6c 7h 8s 9d"))
	require.True(t, ok)
	assert.Equal(t, []int{9, 8, 7, 6, 5}, values(m.Cards))

	// The Ace-high pass wins before the wheel is ever tried.
	m, ok = DetectStraight(hand(t, "As 2d 3c 4h 5s 6d"))
	require.True(t, ok)
	assert.Equal(t, []int{6, 5, 4, 3, 2}, values(m.Cards))
}

func TestDetectStraightNoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
	}{
		{name: "gap at six", cards: "2s 3d 4c 5h 7s"},
		{name: "gap at six with duplicates", cards: "2s 3d 4c 5h 7s 7d 2c"},
		{name: "no wrap around the ace", cards: "Qs Kd As 2c 3h"},
		{name: "five identical values", cards: "7s 7h 7d 7c 7s"},
		{name: "four in a row", cards: "9s Td Jc Qh 2s 2d"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := DetectStraight(hand(t, tc.cards))
			assert.False(t, ok)
		})
	}
}

func TestDetectStraightToleratesDuplicates(t *testing.T) {
	t.Parallel()

	h := hand(t, "2s 3s 3h 4s 4h 4d 5c 6d")
	m, ok := DetectStraight(h)
	require.True(t, ok)
	assert.Equal(t, []int{6, 5, 4, 3, 2}, values(m.Cards))
	assert.Len(t, m.Rest, 3)

	run, leftover, ok := StraightRun(h)
	require.True(t, ok)
	assert.Equal(t, codes(m.Cards), codes(run))
	assert.Equal(t, []int{4, 4, 3}, values(leftover))
}

func TestStraightRunReturnsLeftoverOnMiss(t *testing.T) {
	t.Parallel()

	run, leftover, ok := StraightRun(hand(t, "2s 2d 3c 5h 9s 9d"))
	assert.False(t, ok)
	assert.Nil(t, run)
	assert.Equal(t, []int{9, 2}, values(leftover))
}

func TestDetectFlush(t *testing.T) {
	t.Parallel()

	m, ok := DetectFlush(hand(t, "2s 9s Ks 4s As 3h Qh"))
	require.True(t, ok)
	assert.Equal(t, Flush, m.Category)
	assert.Equal(t, []string{"As", "Ks", "9s", "4s", "2s"}, codes(m.Cards))
	assert.Equal(t, []string{"3h", "Qh"}, codes(m.Rest))

	_, ok = DetectFlush(hand(t, "2s 3s 4s 5s 2h 3h 4h 5h"))
	assert.False(t, ok)
}

// With more than five cards of the suit the evidence is the five
// highest, sorted descending.
func TestDetectFlushReconstructsTopFive(t *testing.T) {
	t.Parallel()

	m, ok := DetectFlush(hand(t, "2s 3s 5s 7s 9s Js Ks 4h"))
	require.True(t, ok)
	require.Len(t, m.Cards, 5)
	for _, c := range m.Cards {
		assert.Equal(t, Spades, c.Suit())
	}
	assert.Equal(t, []string{"Ks", "Js", "9s", "7s", "5s"}, codes(m.Cards))
}

// Suits are tried Spades, Hearts, Clubs, Diamonds.
func TestDetectFlushSuitOrder(t *testing.T) {
	t.Parallel()

	m, ok := DetectFlush(hand(t, "3c 5c 7c 9c Jc 2h 4h 6h 8h Th"))
	require.True(t, ok)
	assert.Equal(t, []string{"Th", "8h", "6h", "4h", "2h"}, codes(m.Cards))
}

func TestDetectStraightFlush(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  []string
	}{
		{name: "nine high", cards: "5s 6s 7s 8s 9s 9h 2d", want: []string{"9s", "8s", "7s", "6s", "5s"}},
		{name: "wheel", cards: "Ah 2h 3h 4h 5h Kd", want: []string{"5h", "4h", "3h", "2h", "Ah"}},
		{name: "skips a suit without a run", cards: "2s 4s 6s 8s Ts 3h 4h 5h 6h 7h", want: []string{"7h", "6h", "5h", "4h", "3h"}},
		{name: "straight and flush apart", cards: "5s 6s 7s 8s 9h As Ks"},
		{name: "no suit with five", cards: "5s 6s 7s 8s 9h 9d"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := DetectStraightFlush(hand(t, tc.cards))
			if tc.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, StraightFlush, m.Category)
			assert.Equal(t, tc.want, codes(m.Cards))
		})
	}
}
