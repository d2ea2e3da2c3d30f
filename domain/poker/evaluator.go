package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Score7 scores exactly seven cards with the paulhankin/poker evaluator.
// Higher scores are better hands. The classifier never ranks hands
// itself; this exists so callers that need a strength can get one from
// a proven evaluator.
func Score7(cards []Card) (int16, error) {
	hand, err := makeFinalHand(cards)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&hand), nil
}

// Describe returns the evaluator's description of the best five-card
// hand among exactly seven cards.
func Describe(cards []Card) (string, error) {
	hand, err := makeFinalHand(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(hand[:])
}

func makeFinalHand(cards []Card) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	if len(cards) != 7 {
		return finalHand, fmt.Errorf("evaluator needs exactly 7 cards, got %d", len(cards))
	}
	for i, c := range cards {
		card, err := toEvalCard(c)
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	return finalHand, nil
}

// toEvalCard converts to the evaluator's encoding: suits 0-3 are clubs,
// diamonds, hearts, spades and ranks run 1-13 with the Ace as 1.
func toEvalCard(c Card) (poker.Card, error) {
	var none poker.Card
	var suit uint8
	switch c.suit {
	case Clubs:
		suit = 0
	case Diamonds:
		suit = 1
	case Hearts:
		suit = 2
	case Spades:
		suit = 3
	default:
		return none, fmt.Errorf("%w: %s has no suit", ErrInvalidCard, c.Code())
	}
	if c.rank == NoRank {
		return none, fmt.Errorf("%w: %s has no rank", ErrInvalidCard, c.Code())
	}
	return poker.MakeCard(poker.Suit(suit), poker.Rank(c.altValue))
}
