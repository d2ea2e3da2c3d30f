package deck

import (
	"testing"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplyDistinctCards(t *testing.T) {
	t.Parallel()

	s := NewSupplier(NewSeededShuffler(3))
	for _, n := range []int{1, 5, 8, 52} {
		cards, err := s.Supply(n)
		require.NoError(t, err)
		require.Len(t, cards, n)
		seen := make(map[int]bool, n)
		for _, c := range cards {
			assert.False(t, seen[IndexOf(c)])
			seen[IndexOf(c)] = true
		}
	}
}

func TestSupplyRejectsBadCounts(t *testing.T) {
	t.Parallel()

	s := NewSupplier(NewSeededShuffler(3))
	for _, n := range []int{0, -2, 53} {
		_, err := s.Supply(n)
		assert.Error(t, err)
	}
}

func TestSupplyIsReproducible(t *testing.T) {
	t.Parallel()

	a := NewSupplier(NewSeededShuffler(9))
	b := NewSupplier(NewSeededShuffler(9))
	for i := 0; i < 10; i++ {
		x, err := a.Supply(8)
		require.NoError(t, err)
		y, err := b.Supply(8)
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	s := NewSupplier(NewSeededShuffler(5))
	h := poker.NewHand(7)
	require.NoError(t, Fill(s, &h))
	assert.Equal(t, 7, h.Len())
	assert.Equal(t, 0, h.Missing())

	// A full hand is left alone.
	before := h.Cards()
	require.NoError(t, Fill(s, &h))
	assert.Equal(t, before, h.Cards())
}
