package spades

import "fmt"

const (
	DeckSize = 52
	Seats    = 4
	HandSize = DeckSize / Seats
)

// Hands holds the cards of each seat, indexed by player id.
type Hands [Seats][]Card

func (h Hands) clone() Hands {
	var out Hands
	for p := range h {
		if h[p] != nil {
			out[p] = append([]Card(nil), h[p]...)
		}
	}
	return out
}

// Count returns the number of cards held across all seats.
func (h Hands) Count() int {
	n := 0
	for p := range h {
		n += len(h[p])
	}
	return n
}

// DealInitial gives each seat size consecutive cards from the top of deck:
// cards 0..size-1 to seat 0, the next size to seat 1, and so on.
func DealInitial(deck []Card, size int) (Hands, error) {
	var h Hands
	if size <= 0 || size*Seats > len(deck) {
		return h, fmt.Errorf("%w: need %d cards for the first tranche, have %d", ErrShortDeck, size*Seats, len(deck))
	}
	for p := 0; p < Seats; p++ {
		h[p] = append([]Card(nil), deck[p*size:(p+1)*size]...)
	}
	return h, nil
}

// DealRemainder completes the deal from the same shuffled deck. Each seat keeps
// its first-tranche cards and receives the next equal share of the undealt cards
// in seat order, so the final hands are a function of a single shuffle.
func DealRemainder(hands Hands, deck []Card) (Hands, error) {
	initial := len(hands[0])
	for p := 1; p < Seats; p++ {
		if len(hands[p]) != initial {
			return hands, fmt.Errorf("%w: uneven first tranche (%d vs %d cards)", ErrDealMismatch, len(hands[p]), initial)
		}
	}
	dealt := initial * Seats
	if len(deck) < dealt || (len(deck)-dealt)%Seats != 0 {
		return hands, fmt.Errorf("%w: %d cards cannot complete a %d-card first tranche", ErrShortDeck, len(deck), initial)
	}
	for p := 0; p < Seats; p++ {
		for i := 0; i < initial; i++ {
			if hands[p][i] != deck[p*initial+i] {
				return hands, fmt.Errorf("%w: seat %d does not hold the first tranche of this deck", ErrDealMismatch, p)
			}
		}
	}

	share := (len(deck) - dealt) / Seats
	out := hands.clone()
	for p := 0; p < Seats; p++ {
		start := dealt + p*share
		out[p] = append(out[p], deck[start:start+share]...)
	}
	return out, nil
}
