package spades

// StrongSuit is the suit the bidding heuristic counts as extra strength.
const StrongSuit = Spades

func isHighCard(c Card) bool { return c.Rank >= Ten }

// AIEstimateBid counts high cards (10 and above) plus strong-suit cards, halves
// the sum, then lifts it to minimumBid and caps it at the hand size. A high
// spade counts twice.
func AIEstimateBid(hand []Card, minimumBid int) int {
	n := 0
	for _, c := range hand {
		if isHighCard(c) {
			n++
		}
		if c.Suit == StrongSuit {
			n++
		}
	}
	return min(max(n/2, minimumBid), HandSize)
}

func trumpWeight(c Card) int {
	switch v := RankValue(c); {
	case v >= 8:
		return 3
	case v >= 5:
		return 2
	}
	return 1
}

// AIChooseTrump returns the suit with the highest tiered score. Ties go to the
// suit that comes first in enumeration order.
func AIChooseTrump(hand []Card) Suit {
	var scores [4]int
	for _, c := range hand {
		scores[c.Suit] += trumpWeight(c)
	}
	best := Suits[0]
	for _, s := range Suits[1:] {
		if scores[s] > scores[best] {
			best = s
		}
	}
	return best
}

// AISelectCard plays the first legal card in hand order.
func AISelectCard(hand, legal []Card) (Card, bool) {
	for _, c := range hand {
		if _, ok := indexOfCard(legal, c); ok {
			return c, true
		}
	}
	return Card{}, false
}
