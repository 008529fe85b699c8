package spades

import "fmt"

// Play is a single card laid on the table.
type Play struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// Trick is the table between leads. LeadSuit is nil until someone leads.
type Trick struct {
	Plays    []Play `json:"plays"`
	LeadSuit *Suit  `json:"leadSuit,omitempty"`
}

func (t Trick) clone() Trick {
	out := Trick{Plays: append([]Play(nil), t.Plays...)}
	if t.LeadSuit != nil {
		s := *t.LeadSuit
		out.LeadSuit = &s
	}
	return out
}

// ResolvedTrick is a completed trick together with the play that took it.
type ResolvedTrick struct {
	Plays  []Play `json:"plays"`
	Winner Play   `json:"winner"`
}

// Stage is the trick sub-state.
type Stage int

const (
	AwaitingLead Stage = iota
	AwaitingFollow
	TrickComplete
)

func (s Stage) String() string {
	switch s {
	case AwaitingLead:
		return "awaiting lead"
	case AwaitingFollow:
		return "awaiting follow"
	case TrickComplete:
		return "trick complete"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	if t == TeamA {
		return "Team A"
	}
	return "Team B"
}

// TeamOf maps even seats to Team A and odd seats to Team B.
func TeamOf(seat int) Team { return Team(seat % 2) }

// Scoreboard counts tricks taken by each team.
type Scoreboard struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

func (s *Scoreboard) Award(t Team) {
	if t == TeamA {
		s.TeamA++
	} else {
		s.TeamB++
	}
}

func (s Scoreboard) Of(t Team) int {
	if t == TeamA {
		return s.TeamA
	}
	return s.TeamB
}

func (s Scoreboard) Total() int { return s.TeamA + s.TeamB }

// LegalCards returns the cards hand may play. With no lead every card is legal;
// otherwise the lead suit must be followed when held.
func LegalCards(hand []Card, leadSuit *Suit) []Card {
	if leadSuit == nil || !hasSuit(hand, *leadSuit) {
		return append([]Card(nil), hand...)
	}
	var out []Card
	for _, c := range hand {
		if c.Suit == *leadSuit {
			out = append(out, c)
		}
	}
	return out
}

// Beats reports whether challenger is preferred over the running best. Trump
// beats non-trump, same suit compares by rank, anything else never wins.
func Beats(challenger, best Card, trump Suit) bool {
	if challenger.Suit == trump && best.Suit != trump {
		return true
	}
	if challenger.Suit == best.Suit {
		return RankValue(challenger) > RankValue(best)
	}
	return false
}

// TrickWinner reduces plays left to right from the lead, replacing the best
// only when a play strictly beats it.
func TrickWinner(plays []Play, trump Suit) (Play, error) {
	if len(plays) == 0 {
		return Play{}, fmt.Errorf("%w: empty trick", ErrIllegalMove)
	}
	best := plays[0]
	for _, p := range plays[1:] {
		if Beats(p.Card, best.Card, trump) {
			best = p
		}
	}
	return best, nil
}
