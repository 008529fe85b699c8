package spades

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

type Suit int

// Suit order is also the tie-break order for trump selection.
const (
	Spades   Suit = 0
	Hearts   Suit = 1
	Diamonds Suit = 2
	Clubs    Suit = 3
)

// Suits lists every suit in enumeration order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

var (
	SuitSymbols = [4]string{"♠", "♥", "♦", "♣"}
	SuitNames   = [4]string{"Spades", "Hearts", "Diamonds", "Clubs"}
	suitLetters = [4]string{"S", "H", "D", "C"}
)

func (s Suit) Valid() bool    { return s >= Spades && s <= Clubs }
func (s Suit) Symbol() string { return SuitSymbols[s] }
func (s Suit) Name() string   { return SuitNames[s] }
func (s Suit) Letter() string { return suitLetters[s] }

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return s.Symbol()
}

// ParseSuit accepts a letter (S), a symbol (♠) or a name (spades).
func ParseSuit(v string) (Suit, error) {
	v = strings.TrimSpace(v)
	for _, s := range Suits {
		if strings.EqualFold(v, s.Letter()) || v == s.Symbol() || strings.EqualFold(v, s.Name()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", v)
}

// Rank is the zero-based rank index: Two is 0, Ace is 12.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankLabels = [13]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

func (r Rank) Valid() bool { return r >= Two && r <= Ace }

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankLabels[r]
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// ID is the ASCII identity of a card, e.g. "10S".
func (c Card) ID() string { return c.Rank.String() + c.Suit.Letter() }

// ParseCard reads a card written as an ID ("QH") or with a suit symbol ("Q♥").
func ParseCard(v string) (Card, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	for i, label := range rankLabels {
		if !strings.HasPrefix(v, label) {
			continue
		}
		rest := v[len(label):]
		if rest == "" {
			return Card{}, fmt.Errorf("parse card %q: missing suit", v)
		}
		s, err := ParseSuit(rest)
		if err != nil {
			return Card{}, fmt.Errorf("parse card %q: %w", v, err)
		}
		return Card{Suit: s, Rank: Rank(i)}, nil
	}
	return Card{}, fmt.Errorf("parse card %q: unknown rank", v)
}

// RankValue is the comparison value of a card; never used for display.
func RankValue(c Card) int { return int(c.Rank) }

// NewDeck returns the 52 cards in suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := Two; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle returns a uniformly permuted copy of deck. The input is left untouched.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	d := make([]Card, len(deck))
	copy(d, deck)
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// SortHand returns a copy of hand grouped by suit, highest rank first.
func SortHand(hand []Card) []Card {
	h := make([]Card, len(hand))
	copy(h, hand)
	sort.SliceStable(h, func(i, j int) bool {
		if h[i].Suit != h[j].Suit {
			return h[i].Suit < h[j].Suit
		}
		return h[i].Rank > h[j].Rank
	})
	return h
}

func indexOfCard(cards []Card, target Card) (int, bool) {
	for i, c := range cards {
		if c == target {
			return i, true
		}
	}
	return -1, false
}

func hasSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}
