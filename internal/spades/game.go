package spades

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Phase represents the lifecycle stage of a round.
type Phase string

const (
	PhaseLobby          Phase = "lobby"
	PhaseDealing        Phase = "dealing"
	PhaseBidding        Phase = "bidding"
	PhaseTrumpSelection Phase = "trump_selection"
	PhasePlay           Phase = "play"
	PhaseRoundEnd       Phase = "round_end"
)

type Controller int

const (
	Human Controller = iota
	AI
)

const HumanSeat = 0

var PlayerNames = [Seats]string{"You", "AI 1", "AI 2", "AI 3"}

// Game is the whole state of a table. Commands are methods on a Game value that
// return the next Game; the receiver is never modified, so a rejected command
// leaves the caller holding exactly what it had.
type Game struct {
	Config      Config
	Phase       Phase
	RoundID     string
	Round       int
	Controllers [Seats]Controller

	Hands     Hands
	Bids      []Bid
	Contract  *Contract
	Trick     Trick
	LastTrick *ResolvedTrick
	Current   int

	// Scores counts tricks in the current round; Totals across finished rounds.
	Scores Scoreboard
	Totals Scoreboard
	Log    EventLog

	// deck is owned by the deal until the remainder is dealt. It is never
	// written after the shuffle, so clones may share it.
	deck     []Card
	resolved bool
	// seed feeds the next shuffle. It is plain value state, so StartRound on
	// the same receiver always deals the same deck.
	seed int64
}

// NewGame returns a table in the lobby with the human in seat 0. rng is only
// drawn from once, for the first shuffle seed; a nil rng is replaced by a
// time-seeded source.
func NewGame(cfg Config, rng *rand.Rand) (Game, error) {
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return Game{
		Config:      cfg,
		Phase:       PhaseLobby,
		Controllers: [Seats]Controller{Human, AI, AI, AI},
		Current:     HumanSeat,
		Log:         newEventLog(cfg.LogLimit),
		seed:        rng.Int63(),
	}, nil
}

func (g Game) clone() Game {
	out := g
	out.Hands = g.Hands.clone()
	out.Bids = append([]Bid(nil), g.Bids...)
	if g.Contract != nil {
		c := *g.Contract
		out.Contract = &c
	}
	out.Trick = g.Trick.clone()
	if g.LastTrick != nil {
		lt := ResolvedTrick{Plays: append([]Play(nil), g.LastTrick.Plays...), Winner: g.LastTrick.Winner}
		out.LastTrick = &lt
	}
	out.Log = g.Log.clone()
	return out
}

func (g *Game) discardRound() {
	g.Hands = Hands{}
	g.deck = nil
	g.Contract = nil
	g.Trick = Trick{}
	g.LastTrick = nil
	g.Scores = Scoreboard{}
	g.Current = HumanSeat
	g.resolved = false
}

func name(seat int) string { return PlayerNames[seat] }

// StartRound shuffles a fresh deck and deals the first tranche, moving the
// table through Dealing into Bidding.
func (g Game) StartRound() (Game, error) {
	if g.Phase != PhaseLobby && g.Phase != PhaseRoundEnd {
		return g, fmt.Errorf("%w: cannot start a round during %s", ErrInvalidPhase, g.Phase)
	}
	ng := g.clone()
	ng.discardRound()
	ng.Bids = nil
	ng.Phase = PhaseDealing
	ng.Round++
	ng.RoundID = uuid.NewString()

	src := rand.New(rand.NewSource(ng.seed))
	deck := Shuffle(NewDeck(), src)
	ng.seed = src.Int63()
	hands, err := DealInitial(deck, ng.Config.InitialDealSize)
	if err != nil {
		return g, err
	}
	ng.deck = deck
	ng.Hands = hands
	ng.Log.add("Round %d: %d cards dealt to all players for bidding", ng.Round, ng.Config.InitialDealSize)
	ng.Phase = PhaseBidding
	return ng, nil
}

// SubmitHumanBid records the human's call, lets the AI seats bid and resolves
// the contract. When nobody reaches the minimum the returned game is back in
// the lobby and the error is ErrNoContract.
func (g Game) SubmitHumanBid(value int) (Game, error) {
	if g.Phase != PhaseBidding {
		return g, fmt.Errorf("%w: %w: bid submitted during %s", ErrInvalidBid, ErrInvalidPhase, g.Phase)
	}
	if value != 0 && (value < g.Config.MinimumContract || value > HandSize) {
		return g, fmt.Errorf("%w: %d must be 0 (pass) or between %d and %d", ErrInvalidBid, value, g.Config.MinimumContract, HandSize)
	}

	ng := g.clone()
	ng.Bids = make([]Bid, 0, Seats)
	for seat := 0; seat < Seats; seat++ {
		b := Bid{Seat: seat, Value: value}
		if ng.Controllers[seat] == AI {
			b.Value = AIEstimateBid(ng.Hands[seat], ng.Config.AIBidFloor)
		}
		ng.Bids = append(ng.Bids, b)
		if b.Value == 0 {
			ng.Log.add("%s passes", name(seat))
		} else {
			ng.Log.add("%s bids %d", name(seat), b.Value)
		}
	}

	win, err := ResolveBids(ng.Bids, ng.Config.MinimumContract)
	if errors.Is(err, ErrNoContract) {
		ng.discardRound()
		ng.Phase = PhaseLobby
		ng.Log.add("No bid reached %d, hands discarded for a re-deal", ng.Config.MinimumContract)
		return ng, err
	}
	if err != nil {
		return g, err
	}

	ng.Contract = &Contract{Winner: win.Seat, Value: win.Value}
	ng.Current = win.Seat
	ng.Phase = PhaseTrumpSelection
	ng.Log.add("%s won the bidding with %d", name(win.Seat), win.Value)

	if ng.Controllers[win.Seat] == AI || ng.Config.TrumpSelection == TrumpAuto {
		if err := ng.applyTrump(AIChooseTrump(ng.Hands[win.Seat])); err != nil {
			return g, err
		}
	}
	return ng, nil
}

// SubmitTrumpChoice sets trump for a contract the human won.
func (g Game) SubmitTrumpChoice(s Suit) (Game, error) {
	if g.Phase != PhaseTrumpSelection || g.Contract == nil {
		return g, fmt.Errorf("%w: trump chosen during %s", ErrInvalidPhase, g.Phase)
	}
	if g.Controllers[g.Contract.Winner] != Human {
		return g, fmt.Errorf("%w: trump belongs to %s", ErrInvalidPhase, name(g.Contract.Winner))
	}
	if !s.Valid() {
		return g, fmt.Errorf("%w: %v", ErrInvalidTrump, s)
	}
	ng := g.clone()
	if err := ng.applyTrump(s); err != nil {
		return g, err
	}
	return ng, nil
}

// applyTrump runs on a clone: it fixes trump, completes the deal and opens play
// with the contract winner on lead.
func (g *Game) applyTrump(s Suit) error {
	hands, err := DealRemainder(g.Hands, g.deck)
	if err != nil {
		return err
	}
	g.Contract.Trump = s
	g.Contract.TrumpSet = true
	g.Hands = hands
	g.deck = nil
	g.Trick = Trick{}
	g.Current = g.Contract.Winner
	g.Phase = PhasePlay
	g.Log.add("%s sets trump %s", name(g.Contract.Winner), s.Name())
	g.Log.add("Remaining cards dealt, %d cards each", len(hands[0]))
	return nil
}

// LegalCards returns what seat may play right now.
func (g Game) LegalCards(seat int) []Card {
	if g.Phase != PhasePlay || seat < 0 || seat >= Seats {
		return nil
	}
	return LegalCards(g.Hands[seat], g.Trick.LeadSuit)
}

// SubmitPlay lays card from seat's hand. The fourth card resolves the trick,
// scores it and hands the lead to the winner.
func (g Game) SubmitPlay(seat int, card Card) (Game, error) {
	if g.Phase != PhasePlay {
		return g, fmt.Errorf("%w: play during %s", ErrInvalidPhase, g.Phase)
	}
	if seat != g.Current {
		return g, fmt.Errorf("%w: not seat %d's turn", ErrIllegalMove, seat)
	}
	idx, ok := indexOfCard(g.Hands[seat], card)
	if !ok {
		return g, fmt.Errorf("%w: %s not in hand", ErrIllegalMove, card)
	}
	if _, ok := indexOfCard(g.LegalCards(seat), card); !ok {
		return g, fmt.Errorf("%w: must follow %s", ErrIllegalMove, g.Trick.LeadSuit.Name())
	}

	ng := g.clone()
	ng.resolved = false
	hand := ng.Hands[seat]
	ng.Hands[seat] = append(hand[:idx:idx], hand[idx+1:]...)
	ng.Trick.Plays = append(ng.Trick.Plays, Play{Seat: seat, Card: card})
	if len(ng.Trick.Plays) == 1 {
		s := card.Suit
		ng.Trick.LeadSuit = &s
	}
	ng.Log.add("%s plays %s", name(seat), card)

	if len(ng.Trick.Plays) < Seats {
		ng.Current = (seat + 1) % Seats
		return ng, nil
	}

	win, err := TrickWinner(ng.Trick.Plays, ng.Contract.Trump)
	if err != nil {
		return g, err
	}
	team := TeamOf(win.Seat)
	ng.Scores.Award(team)
	ng.LastTrick = &ResolvedTrick{Plays: ng.Trick.Plays, Winner: win}
	ng.Trick = Trick{}
	ng.Current = win.Seat
	ng.resolved = true
	ng.Log.add("%s wins the trick with %s (%s %d)", name(win.Seat), win.Card, team, ng.Scores.Of(team))

	if ng.Hands.Count() == 0 {
		ng.Phase = PhaseRoundEnd
		ng.Totals.TeamA += ng.Scores.TeamA
		ng.Totals.TeamB += ng.Scores.TeamB
		res, _ := ng.Result()
		outcome := "made"
		if !res.Made {
			outcome = "failed"
		}
		ng.Log.add("Round %d over: Team A %d, Team B %d, contract %s", ng.Round, ng.Scores.TeamA, ng.Scores.TeamB, outcome)
	}
	return ng, nil
}

// PendingAI reports whether the next play belongs to an AI seat.
func (g Game) PendingAI() bool {
	return g.Phase == PhasePlay && g.Controllers[g.Current] == AI
}

// PlayAI makes exactly one pending AI play.
func (g Game) PlayAI() (Game, Play, error) {
	if !g.PendingAI() {
		return g, Play{}, fmt.Errorf("%w: no AI turn pending", ErrInvalidPhase)
	}
	seat := g.Current
	card, ok := AISelectCard(g.Hands[seat], g.LegalCards(seat))
	if !ok {
		return g, Play{}, fmt.Errorf("%w: %s has no legal card", ErrIllegalMove, name(seat))
	}
	ng, err := g.SubmitPlay(seat, card)
	return ng, Play{Seat: seat, Card: card}, err
}

// Abort throws away everything scoped to the current round and returns to the
// lobby. Totals from finished rounds survive.
func (g Game) Abort() Game {
	ng := g.clone()
	if g.Phase != PhaseLobby && g.Phase != PhaseRoundEnd {
		ng.Log.add("Round %d abandoned", g.Round)
	}
	ng.discardRound()
	ng.Bids = nil
	ng.Phase = PhaseLobby
	return ng
}

// Stage reports the trick sub-state. TrickComplete holds right after the
// command that resolved a trick, until the next card is played.
func (g Game) Stage() Stage {
	switch {
	case len(g.Trick.Plays) > 0:
		return AwaitingFollow
	case g.resolved:
		return TrickComplete
	}
	return AwaitingLead
}

// Result summarises a finished round.
type Result struct {
	RoundID      string     `json:"roundId"`
	Round        int        `json:"round"`
	Contract     Contract   `json:"contract"`
	ContractTeam Team       `json:"contractTeam"`
	Scores       Scoreboard `json:"scores"`
	Made         bool       `json:"made"`
}

func (g Game) Result() (Result, bool) {
	if g.Phase != PhaseRoundEnd || g.Contract == nil {
		return Result{}, false
	}
	team := TeamOf(g.Contract.Winner)
	return Result{
		RoundID:      g.RoundID,
		Round:        g.Round,
		Contract:     *g.Contract,
		ContractTeam: team,
		Scores:       g.Scores,
		Made:         g.Scores.Of(team) >= g.Contract.Value,
	}, true
}

// Snapshot is the read-only view published to a renderer sitting in one seat.
type Snapshot struct {
	Phase      Phase          `json:"phase"`
	Stage      Stage          `json:"stage"`
	RoundID    string         `json:"roundId"`
	Round      int            `json:"round"`
	Viewer     int            `json:"viewer"`
	Hand       []Card         `json:"hand"`
	Legal      []Card         `json:"legal"`
	HandCounts [Seats]int     `json:"handCounts"`
	Bids       []Bid          `json:"bids"`
	Contract   *Contract      `json:"contract,omitempty"`
	Trick      []Play         `json:"trick"`
	LeadSuit   *Suit          `json:"leadSuit,omitempty"`
	LastTrick  *ResolvedTrick `json:"lastTrick,omitempty"`
	Current    int            `json:"current"`
	Scores     Scoreboard     `json:"scores"`
	Totals     Scoreboard     `json:"totals"`
	Log        []string       `json:"log"`
	Config     Config         `json:"config"`
	// Result is set once the round is over.
	Result *Result `json:"result,omitempty"`
}

func (g Game) Snapshot(viewer int) Snapshot {
	c := g.clone()
	s := Snapshot{
		Phase:     c.Phase,
		Stage:     c.Stage(),
		RoundID:   c.RoundID,
		Round:     c.Round,
		Viewer:    viewer,
		Bids:      c.Bids,
		Contract:  c.Contract,
		Trick:     c.Trick.Plays,
		LeadSuit:  c.Trick.LeadSuit,
		LastTrick: c.LastTrick,
		Current:   c.Current,
		Scores:    c.Scores,
		Totals:    c.Totals,
		Log:       c.Log.Entries(),
		Config:    c.Config,
	}
	for p := range c.Hands {
		s.HandCounts[p] = len(c.Hands[p])
	}
	if res, ok := c.Result(); ok {
		s.Result = &res
	}
	if viewer >= 0 && viewer < Seats {
		s.Hand = c.Hands[viewer]
		if c.Current == viewer {
			s.Legal = c.LegalCards(viewer)
		}
	}
	return s
}
