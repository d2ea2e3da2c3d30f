package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Suit of a card. The declaration order is the order used for grouping,
// sorting and suit-bucket iteration.
type Suit uint8

const (
	NoSuit Suit = iota
	Spades
	Hearts
	Clubs
	Diamonds
)

// Suits lists the four real suits in iteration order.
var Suits = [...]Suit{Spades, Hearts, Clubs, Diamonds}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	default:
		return "No Suit Set"
	}
}

// Symbol returns ♠ ♥ ♣ ♦, or "?" for NoSuit.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

func (s Suit) letter() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	default:
		return "?"
	}
}

// Rank is the face identity of a card, independent of suit.
type Rank uint8

const (
	NoRank Rank = iota
	Ace
	King
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Two
)

// Ranks lists every real rank from Ace down to Two.
var Ranks = [...]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// Value returns the numeric ordering of the rank: Ace is 14, or 1 when
// lowAce is set. NoRank is 0.
func (r Rank) Value(lowAce bool) int {
	switch r {
	case Ace:
		if lowAce {
			return 1
		}
		return 14
	case NoRank:
		return 0
	default:
		if r > Two {
			panic(fmt.Sprintf("poker: rank %d out of range", uint8(r)))
		}
		// King = 2 in declaration order maps to 13, Two = 13 maps to 2.
		return 15 - int(r)
	}
}

// RankOf maps a value back to its rank. Both 1 and 14 map to Ace and 0
// maps to NoRank. Any other value means the rank table is corrupt and
// RankOf panics.
func RankOf(value int) Rank {
	switch {
	case value == 0:
		return NoRank
	case value == 1 || value == 14:
		return Ace
	case value >= 2 && value <= 13:
		return Rank(15 - value)
	default:
		panic(fmt.Sprintf("poker: cannot retrieve rank for value %d", value))
	}
}

// String returns the rank name.
func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Jack:
		return "Jack"
	case NoRank:
		return "No Rank Set"
	default:
		return fmt.Sprintf("%d", r.Value(false))
	}
}

// Short returns the rank abbreviation used in card text (A, K, Q, J, 10 ... 2).
func (r Rank) Short() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	case NoRank:
		return "?"
	default:
		return fmt.Sprintf("%d", r.Value(false))
	}
}

// Card is an immutable playing card. The value is the Ace-high ordering
// and altValue the Ace-low one; they only differ for Aces.
type Card struct {
	suit     Suit
	rank     Rank
	value    int
	altValue int
}

// NewCard builds the card for suit and rank with both values derived
// from the rank. A suit or rank outside the declared constants panics.
func NewCard(suit Suit, rank Rank) Card {
	if suit > Diamonds {
		panic(fmt.Sprintf("poker: suit %d out of range", uint8(suit)))
	}
	return Card{
		suit:     suit,
		rank:     rank,
		value:    rank.Value(false),
		altValue: rank.Value(true),
	}
}

// Blank returns the placeholder card: no suit, no rank, value 0.
func Blank() Card {
	return Card{}
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

// Value returns the Ace-high value (2..14).
func (c Card) Value() int {
	return c.value
}

// AltValue returns the Ace-low value: 1 for an Ace, Value otherwise.
func (c Card) AltValue() int {
	return c.altValue
}

func (c Card) valueFor(lowAce bool) int {
	if lowAce {
		return c.altValue
	}
	return c.value
}

// IsBlank reports whether c is the placeholder card.
func (c Card) IsBlank() bool {
	return c.suit == NoSuit && c.rank == NoRank
}

// Equal reports whether both cards have the same suit and rank.
func (c Card) Equal(o Card) bool {
	return c.suit == o.suit && c.rank == o.rank
}

// String renders the card with its suit symbol, red suits coloured.
func (c Card) String() string {
	if c.IsBlank() {
		return "▓"
	}
	suit := pterm.Black(c.suit.Symbol())
	if c.suit == Hearts || c.suit == Diamonds {
		suit = pterm.LightRed(c.suit.Symbol())
	}
	return c.rank.Short() + suit
}

// Code renders the card in plain two-letter form, e.g. "As", "Th", "2c".
func (c Card) Code() string {
	r := c.rank.Short()
	if c.rank == Ten {
		r = "T"
	}
	return r + c.suit.letter()
}

// ErrInvalidCard is returned when card text cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// ParseCard parses a single card such as "As", "10h", "Th" or "A♠".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	suit, ok := parseSuit(runes[len(runes)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}
	rank, ok := parseRank(strings.ToUpper(string(runes[:len(runes)-1])))
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}
	return NewCard(suit, rank), nil
}

// ParseCards parses a list of cards separated by spaces or commas.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 's', 'S', '♠':
		return Spades, true
	case 'h', 'H', '♥':
		return Hearts, true
	case 'c', 'C', '♣':
		return Clubs, true
	case 'd', 'D', '♦':
		return Diamonds, true
	}
	return NoSuit, false
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "A":
		return Ace, true
	case "K":
		return King, true
	case "Q":
		return Queen, true
	case "J":
		return Jack, true
	case "T", "10":
		return Ten, true
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return RankOf(int(s[0] - '0')), true
	}
	return NoRank, false
}
