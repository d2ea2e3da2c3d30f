package deck

import (
	"fmt"

	"github.com/luca-patrignani/hand-sampler/domain/poker"
)

// Supplier hands out random cards for classification.
type Supplier interface {
	// Supply returns n distinct cards from a freshly shuffled deck.
	Supply(n int) ([]poker.Card, error)
}

type supplier struct {
	shuffler Shuffler
	deck     Deck
}

// NewSupplier returns a Supplier that reshuffles a full deck with
// shuffler on every call. It shares the shuffler's concurrency rules.
func NewSupplier(shuffler Shuffler) Supplier {
	return &supplier{shuffler: shuffler, deck: Standard52()}
}

func (s *supplier) Supply(n int) ([]poker.Card, error) {
	if n < 1 || n > Size {
		return nil, fmt.Errorf("supply %d cards: want 1 to %d", n, Size)
	}
	if err := s.deck.Shuffle(s.shuffler); err != nil {
		return nil, err
	}
	return s.deck.Deal(n)
}

// Fill tops up h with the cards it is still missing. The supply knows
// nothing of the cards h already holds, so fill empty hands only.
func Fill(s Supplier, h *poker.Hand) error {
	n := h.Missing()
	if n == 0 {
		return nil
	}
	cards, err := s.Supply(n)
	if err != nil {
		return fmt.Errorf("fill hand: %w", err)
	}
	h.Add(cards...)
	return nil
}
