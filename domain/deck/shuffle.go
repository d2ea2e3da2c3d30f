package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffler reorders cards in place.
type Shuffler interface {
	Shuffle(cards []poker.Card) error
}

var suite suites.Suite = suites.MustFind("Ed25519")

type cryptoShuffler struct {
	stream func() cipher.Stream
}

// NewCryptoShuffler returns a Fisher-Yates shuffler whose swaps are drawn
// from the Ed25519 suite's cryptographic random stream.
func NewCryptoShuffler() Shuffler {
	return cryptoShuffler{stream: suite.RandomStream}
}

func (s cryptoShuffler) Shuffle(cards []poker.Card) error {
	stream := s.stream()
	for i := len(cards) - 1; i > 0; i-- {
		j := random.Int(big.NewInt(int64(i+1)), stream).Int64()
		cards[i], cards[j] = cards[j], cards[i]
	}
	return nil
}

type seededShuffler struct {
	rng *rand.Rand
}

// NewSeededShuffler returns a deterministic shuffler: the same seed
// yields the same sequence of orders. Not safe for concurrent use.
func NewSeededShuffler(seed int64) Shuffler {
	return &seededShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededShuffler) Shuffle(cards []poker.Card) error {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return nil
}
