package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore7Orders(t *testing.T) {
	sf, err := Score7(hand(t, "5s 6s 7s 8s 9s 2h 3d").Cards())
	require.NoError(t, err)
	pair, err := Score7(hand(t, "As Ad 3c 7h 9s Jd 2c").Cards())
	require.NoError(t, err)
	assert.Greater(t, sf, pair)
}

func TestScore7Errors(t *testing.T) {
	_, err := Score7(hand(t, "As Kd Qh Jc Ts").Cards())
	assert.Error(t, err)

	cards := hand(t, "As Kd Qh Jc Ts 9s").Cards()
	cards = append(cards, Blank())
	_, err = Score7(cards)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(hand(t, "As Ah Ac Kd Ks 2c 7h").Cards())
	require.NoError(t, err)
	assert.NotEmpty(t, desc)
}
