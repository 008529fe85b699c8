package spades

import (
	"fmt"
	"sort"
)

// Bid is one seat's call. Value 0 is a pass.
type Bid struct {
	Seat  int `json:"seat"`
	Value int `json:"value"`
}

// Contract is the outcome of bidding plus the chosen trump. TrumpSet is false
// while the winner is still choosing.
type Contract struct {
	Winner   int  `json:"winner"`
	Value    int  `json:"value"`
	Trump    Suit `json:"trump"`
	TrumpSet bool `json:"trumpSet"`
}

// ResolveBids picks the strictly highest bid, reducing in seat order so the
// lowest seat wins a tie. A winning value below minimumContract yields
// ErrNoContract.
func ResolveBids(bids []Bid, minimumContract int) (Bid, error) {
	if len(bids) == 0 {
		return Bid{}, fmt.Errorf("%w: no bids", ErrNoContract)
	}
	ordered := append([]Bid(nil), bids...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Seat < ordered[j].Seat })

	best := ordered[0]
	for _, b := range ordered[1:] {
		if b.Value > best.Value {
			best = b
		}
	}
	if best.Value == 0 || best.Value < minimumContract {
		return best, fmt.Errorf("%w: highest bid %d is below %d", ErrNoContract, best.Value, minimumContract)
	}
	return best, nil
}
