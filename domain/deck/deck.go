// Package deck deals standard 52-card decks for sampling.
package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
)

// Size is the number of cards in a standard deck.
const Size = 52

var (
	// ErrDeckExhausted is returned when more cards are requested than remain.
	ErrDeckExhausted = errors.New("deck exhausted")
	// ErrCardNumber is returned for a card number outside 1-52.
	ErrCardNumber = errors.New("card number out of range")
)

// Deck is an ordered stack of cards dealt from the top.
type Deck struct {
	cards []poker.Card
	next  int
}

// Standard52 returns the 52 distinct cards in card-number order.
func Standard52() Deck {
	cards := make([]poker.Card, 0, Size)
	for i := 1; i <= Size; i++ {
		c, _ := CardAt(i)
		cards = append(cards, c)
	}
	return Deck{cards: cards}
}

// CardAt converts a card number (1-52) to a Card. Card numbers map to
// suits in order (spades, hearts, clubs, diamonds) with ranks Ace
// through Two within each suit.
//
// Card numbering:
//   - 1-13: Spades (Ace through Two)
//   - 14-26: Hearts
//   - 27-39: Clubs
//   - 40-52: Diamonds
func CardAt(n int) (poker.Card, error) {
	if n < 1 || n > Size {
		return poker.Blank(), fmt.Errorf("%w: %d", ErrCardNumber, n)
	}
	suit := poker.Suits[(n-1)/len(poker.Ranks)]
	rank := poker.Ranks[(n-1)%len(poker.Ranks)]
	return poker.NewCard(suit, rank), nil
}

// IndexOf converts a card to its number (1-52). This is the inverse of
// CardAt. A blank card has number 0.
func IndexOf(c poker.Card) int {
	if c.Suit() == poker.NoSuit || c.Rank() == poker.NoRank {
		return 0
	}
	return (int(c.Suit())-1)*len(poker.Ranks) + int(c.Rank())
}

// Len returns the number of cards not dealt yet.
func (d *Deck) Len() int {
	return len(d.cards) - d.next
}

// Cards returns a copy of the cards not dealt yet, top first.
func (d *Deck) Cards() []poker.Card {
	return append([]poker.Card(nil), d.cards[d.next:]...)
}

// Shuffle puts every card back and reorders the whole deck.
func (d *Deck) Shuffle(s Shuffler) error {
	d.next = 0
	if err := s.Shuffle(d.cards); err != nil {
		return fmt.Errorf("shuffle deck: %w", err)
	}
	return nil
}

// Deal pops n cards from the top of the deck.
func (d *Deck) Deal(n int) ([]poker.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}
	if n > d.Len() {
		return nil, fmt.Errorf("%w: want %d, %d left", ErrDeckExhausted, n, d.Len())
	}
	out := append([]poker.Card(nil), d.cards[d.next:d.next+n]...)
	d.next += n
	return out, nil
}
