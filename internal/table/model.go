package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aminshahid573/dakspades/internal/spades"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const seat = spades.HumanSeat

// aiStepMsg asks for one AI play. It is stale once the round or the pacing
// generation it was scheduled for has moved on.
type aiStepMsg struct {
	round string
	gen   int
}

// RoundFinishedMsg is emitted once when a round reaches its end.
type RoundFinishedMsg struct{ Result spades.Result }

// Model drives one table. Commands run against game; everything rendered comes
// from snap, the human seat's snapshot taken after the last command.
type Model struct {
	game          spades.Game
	snap          spades.Snapshot
	Width, Height int
	Selected      int
	TrumpIndex    int
	BidInput      textinput.Model
	Message       string

	AIDelay    time.Duration
	TrickPause time.Duration

	gen int
}

func NewModel(g spades.Game, aiDelay, trickPause time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("0 or %d-%d", g.Config.MinimumContract, spades.HandSize)
	ti.Prompt = "> "
	ti.CharLimit = 2
	ti.Width = 8

	m := Model{
		BidInput:   ti,
		AIDelay:    aiDelay,
		TrickPause: trickPause,
		Message:    "Press ENTER to deal",
	}
	m.setGame(g)
	return m
}

func (m *Model) setGame(g spades.Game) {
	m.game = g
	m.snap = g.Snapshot(seat)
}

// Snapshot is what the human seat currently sees.
func (m Model) Snapshot() spades.Snapshot { return m.snap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case aiStepMsg:
		if msg.gen != m.gen || msg.round != m.game.RoundID {
			return m, nil
		}
		return m.handleAIMove()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "n" && m.game.Phase != spades.PhaseBidding {
		return m.newRound()
	}

	switch m.game.Phase {
	case spades.PhaseLobby, spades.PhaseRoundEnd:
		if key == "enter" || key == " " {
			return m.startRound()
		}

	case spades.PhaseBidding:
		switch key {
		case "enter":
			return m.submitBid()
		case "ctrl+n":
			return m.newRound()
		}
		if msg.Type == tea.KeyRunes && !isDigits(msg.Runes) {
			return m, nil
		}
		var cmd tea.Cmd
		m.BidInput, cmd = m.BidInput.Update(msg)
		return m, cmd

	case spades.PhaseTrumpSelection:
		switch key {
		case "left":
			m.TrumpIndex = (m.TrumpIndex + len(spades.Suits) - 1) % len(spades.Suits)
		case "right":
			m.TrumpIndex = (m.TrumpIndex + 1) % len(spades.Suits)
		case "enter", " ":
			return m.submitTrump(spades.Suits[m.TrumpIndex])
		default:
			if s, err := spades.ParseSuit(key); err == nil {
				return m.submitTrump(s)
			}
		}

	case spades.PhasePlay:
		if m.game.Current != seat {
			break
		}
		switch key {
		case "left":
			m.moveSelection(-1)
		case "right":
			m.moveSelection(1)
		case "enter", " ":
			return m.humanPlayCard()
		}
	}
	return m, nil
}

// newRound cancels any pending AI step, discards the round and deals again.
func (m Model) newRound() (Model, tea.Cmd) {
	m.gen++
	m.setGame(m.game.Abort())
	return m.startRound()
}

func (m Model) startRound() (Model, tea.Cmd) {
	g, err := m.game.StartRound()
	if err != nil {
		m.Message = "⚠  " + err.Error()
		return m, nil
	}
	m.setGame(g)
	m.Selected = 0
	m.TrumpIndex = 0
	m.BidInput.SetValue("")
	m.BidInput.Focus()
	m.Message = fmt.Sprintf("Round %d  ⟩  Enter your bid (0 passes), then press ENTER", g.Round)
	return m, textinput.Blink
}

func (m Model) submitBid() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.BidInput.Value())
	v, err := strconv.Atoi(raw)
	if err != nil {
		m.Message = fmt.Sprintf("⚠  %q is not a number", raw)
		return m, nil
	}
	g, err := m.game.SubmitHumanBid(v)
	switch {
	case errors.Is(err, spades.ErrNoContract):
		m.setGame(g)
		m.BidInput.Blur()
		m.Message = fmt.Sprintf("No contract: nobody reached %d. Press ENTER to re-deal", g.Config.MinimumContract)
		return m, nil
	case err != nil:
		m.Message = "⚠  " + err.Error()
		return m, nil
	}
	m.setGame(g)
	m.BidInput.Blur()
	c := g.Contract
	if g.Phase == spades.PhaseTrumpSelection {
		m.Message = fmt.Sprintf("You won the bidding with %d  ⟩  Choose trump (←/→, ENTER)", c.Value)
		return m, nil
	}
	m.Message = fmt.Sprintf("%s won with %d and chose %s", spades.PlayerNames[c.Winner], c.Value, c.Trump.Name())
	return m, m.afterChange(spades.PhaseTrumpSelection)
}

func (m Model) submitTrump(s spades.Suit) (Model, tea.Cmd) {
	g, err := m.game.SubmitTrumpChoice(s)
	if err != nil {
		m.Message = "⚠  " + err.Error()
		return m, nil
	}
	m.setGame(g)
	m.Message = fmt.Sprintf("Trump is %s %s  ⟩  You lead! (←/→ select, ENTER play)", s.Symbol(), s.Name())
	return m, m.afterChange(spades.PhaseTrumpSelection)
}

// viewHand is the human's hand in display order; Selected indexes into it.
func (m Model) viewHand() []spades.Card {
	return spades.SortHand(m.snap.Hand)
}

func (m Model) validMask(hand []spades.Card) []bool {
	valid := make([]bool, len(hand))
	legal := m.snap.Legal
	for i, c := range hand {
		for _, l := range legal {
			if c == l {
				valid[i] = true
				break
			}
		}
	}
	return valid
}

func (m *Model) clampSelection() {
	hand := m.viewHand()
	if len(hand) == 0 {
		m.Selected = 0
		return
	}
	if m.Selected >= len(hand) {
		m.Selected = len(hand) - 1
	}
	valid := m.validMask(hand)
	if valid[m.Selected] {
		return
	}
	for i, v := range valid {
		if v {
			m.Selected = i
			return
		}
	}
}

func (m *Model) moveSelection(dir int) {
	hand := m.viewHand()
	valid := m.validMask(hand)
	next := m.Selected + dir
	for next >= 0 && next < len(hand) {
		if valid[next] {
			m.Selected = next
			return
		}
		next += dir
	}
}

func (m Model) humanPlayCard() (Model, tea.Cmd) {
	hand := m.viewHand()
	if m.Selected < 0 || m.Selected >= len(hand) {
		return m, nil
	}
	card := hand[m.Selected]
	g, err := m.game.SubmitPlay(seat, card)
	if err != nil {
		m.Message = "⚠  Must follow suit! Choose a highlighted card."
		if !errors.Is(err, spades.ErrIllegalMove) {
			m.Message = "⚠  " + err.Error()
		}
		return m, nil
	}
	m.setGame(g)
	m.Message = fmt.Sprintf("You played %s", card)
	return m, m.afterChange(spades.PhasePlay)
}

func (m Model) handleAIMove() (Model, tea.Cmd) {
	g, p, err := m.game.PlayAI()
	if err != nil {
		m.Message = "⚠  " + err.Error()
		return m, nil
	}
	m.setGame(g)
	m.Message = fmt.Sprintf("%s played %s", spades.PlayerNames[p.Seat], p.Card)
	return m, m.afterChange(spades.PhasePlay)
}

// afterChange decides what happens next once the game has moved on from prev:
// report a finished round, or pace the next AI play.
func (m *Model) afterChange(prev spades.Phase) tea.Cmd {
	g := m.game
	if g.Phase == spades.PhaseRoundEnd && prev == spades.PhasePlay {
		res, _ := g.Result()
		verdict := "made"
		if !res.Made {
			verdict = "went down on"
		}
		m.Message = fmt.Sprintf("Round %d over  ⟩  %s %s the contract of %d. ENTER deals the next round",
			g.Round, res.ContractTeam, verdict, res.Contract.Value)
		return func() tea.Msg { return RoundFinishedMsg{Result: res} }
	}
	if g.Stage() == spades.TrickComplete && g.LastTrick != nil {
		w := g.LastTrick.Winner
		m.Message = fmt.Sprintf("✨  %s wins the trick with %s", spades.PlayerNames[w.Seat], w.Card)
	}
	if g.PendingAI() {
		delay := m.AIDelay
		if g.Stage() == spades.TrickComplete {
			delay = m.TrickPause
		}
		return m.schedule(delay)
	}
	if g.Phase == spades.PhasePlay && g.Current == seat {
		m.clampSelection()
	}
	return nil
}

func (m Model) schedule(d time.Duration) tea.Cmd {
	step := aiStepMsg{round: m.game.RoundID, gen: m.gen}
	return tea.Tick(d, func(time.Time) tea.Msg { return step })
}

func isDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(rs) > 0
}

// Leave cancels pending AI steps and abandons the round.
func (m Model) Leave() Model {
	m.gen++
	m.setGame(m.game.Abort())
	m.Message = "Press ENTER to deal"
	return m
}
