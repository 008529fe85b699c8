package table

import (
	"math/rand"
	"testing"
	"time"

	"github.com/aminshahid573/dakspades/internal/spades"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, seed int64) Model {
	t.Helper()
	g, err := spades.NewGame(spades.DefaultConfig(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	m := NewModel(g, time.Millisecond, time.Millisecond)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func bidding(t *testing.T, seed int64) Model {
	t.Helper()
	m, _ := press(newTestModel(t, seed), tea.KeyEnter)
	require.Equal(t, spades.PhaseBidding, m.game.Phase)
	return m
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, 1)
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
}

func TestEnterDealsFromLobby(t *testing.T) {
	m := bidding(t, 1)
	assert.Equal(t, 1, m.game.Round)
	assert.Len(t, m.game.Hands[seat], spades.DefaultConfig().InitialDealSize)
	assert.True(t, m.BidInput.Focused())
}

func TestBidInputAcceptsDigitsOnly(t *testing.T) {
	m := typeText(bidding(t, 1), "x1a3")
	assert.Equal(t, "13", m.BidInput.Value())
}

func TestBidOutOfRangeKeepsBidding(t *testing.T) {
	m := typeText(bidding(t, 1), "5")
	m, cmd := press(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, spades.PhaseBidding, m.game.Phase)
	assert.Contains(t, m.Message, "between")
}

func TestHumanWinsAndPicksTrump(t *testing.T) {
	m := typeText(bidding(t, 2), "13")
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, spades.PhaseTrumpSelection, m.game.Phase)

	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 1, m.TrumpIndex)
	m, _ = press(m, tea.KeyLeft)
	m, _ = press(m, tea.KeyLeft)
	assert.Equal(t, len(spades.Suits)-1, m.TrumpIndex)

	m, cmd := press(m, tea.KeyEnter)
	require.Equal(t, spades.PhasePlay, m.game.Phase)
	assert.Equal(t, spades.Clubs, m.game.Contract.Trump)
	assert.Equal(t, seat, m.game.Current)
	assert.Nil(t, cmd, "the human leads, nothing to schedule")
	assert.Len(t, m.game.Hands[seat], spades.HandSize)
}

func TestTrumpByLetter(t *testing.T) {
	m := typeText(bidding(t, 2), "13")
	m, _ = press(m, tea.KeyEnter)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.Equal(t, spades.PhasePlay, m.game.Phase)
	assert.Equal(t, spades.Diamonds, m.game.Contract.Trump)
}

func TestAIContractSchedulesStep(t *testing.T) {
	m := typeText(bidding(t, 3), "0")
	m, cmd := press(m, tea.KeyEnter)
	require.Equal(t, spades.PhasePlay, m.game.Phase)
	assert.NotEqual(t, seat, m.game.Contract.Winner)
	assert.True(t, m.game.PendingAI())
	assert.NotNil(t, cmd)
}

func TestStaleStepIgnored(t *testing.T) {
	m := typeText(bidding(t, 3), "0")
	m, _ = press(m, tea.KeyEnter)
	require.True(t, m.game.PendingAI())
	before := m.game.Hands.Count()

	m, cmd := m.Update(aiStepMsg{round: "some-other-round", gen: m.gen})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.game.Hands.Count())

	m, cmd = m.Update(aiStepMsg{round: m.game.RoundID, gen: m.gen + 1})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.game.Hands.Count())

	m, _ = m.Update(aiStepMsg{round: m.game.RoundID, gen: m.gen})
	assert.Equal(t, before-1, m.game.Hands.Count())
}

func TestNewDealCancelsPendingStep(t *testing.T) {
	m := typeText(bidding(t, 3), "0")
	m, _ = press(m, tea.KeyEnter)
	stale := aiStepMsg{round: m.game.RoundID, gen: m.gen}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.Equal(t, spades.PhaseBidding, m.game.Phase)
	assert.Equal(t, 2, m.game.Round)

	m, cmd := m.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, spades.PhaseBidding, m.game.Phase)
}

func TestLeaveAbandonsRound(t *testing.T) {
	m := typeText(bidding(t, 3), "0")
	m, _ = press(m, tea.KeyEnter)
	gen := m.gen
	m = m.Leave()
	assert.Equal(t, spades.PhaseLobby, m.game.Phase)
	assert.Equal(t, gen+1, m.gen)
	assert.Zero(t, m.game.Hands.Count())
}

// playRound drives the table as the runtime would: AI steps are delivered
// directly instead of waiting on their ticks.
func playRound(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for steps := 0; m.game.Phase == spades.PhasePlay; steps++ {
		require.Less(t, steps, spades.DeckSize+1, "round did not terminate")
		if m.game.PendingAI() {
			m, cmd = m.Update(aiStepMsg{round: m.game.RoundID, gen: m.gen})
			continue
		}
		legal := m.validMask(m.viewHand())
		require.True(t, legal[m.Selected], "selection rests on a legal card")
		m, cmd = press(m, tea.KeyEnter)
	}
	return m, cmd
}

func TestFullRoundEmitsResult(t *testing.T) {
	for _, bid := range []string{"13", "0"} {
		t.Run("bid "+bid, func(t *testing.T) {
			m := typeText(bidding(t, 4), bid)
			m, _ = press(m, tea.KeyEnter)
			if m.game.Phase == spades.PhaseTrumpSelection {
				m, _ = press(m, tea.KeyEnter)
			}

			m, cmd := playRound(t, m)
			require.Equal(t, spades.PhaseRoundEnd, m.game.Phase)
			require.NotNil(t, cmd)
			msg, ok := cmd().(RoundFinishedMsg)
			require.True(t, ok)
			assert.Equal(t, m.game.RoundID, msg.Result.RoundID)
			assert.Equal(t, spades.HandSize, msg.Result.Scores.Total())
			assert.Contains(t, m.Message, "Round 1 over")

			m, _ = press(m, tea.KeyEnter)
			assert.Equal(t, spades.PhaseBidding, m.game.Phase)
			assert.Equal(t, 2, m.game.Round)
		})
	}
}

func TestArrowsSkipIllegalCards(t *testing.T) {
	m := typeText(bidding(t, 5), "13")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, spades.AwaitingFollow, m.game.Stage())

	for m.game.Phase == spades.PhasePlay && m.game.PendingAI() {
		m, _ = m.Update(aiStepMsg{round: m.game.RoundID, gen: m.gen})
	}
	require.Equal(t, seat, m.game.Current)

	valid := m.validMask(m.viewHand())
	for i := 0; i < spades.HandSize; i++ {
		m, _ = press(m, tea.KeyRight)
		assert.True(t, valid[m.Selected])
	}
	for i := 0; i < spades.HandSize; i++ {
		m, _ = press(m, tea.KeyLeft)
		assert.True(t, valid[m.Selected])
	}
}

func TestViewRendersEveryPhase(t *testing.T) {
	m := newTestModel(t, 6)
	assert.Contains(t, m.View(), "D A K")

	m = bidding(t, 6)
	assert.Contains(t, m.View(), "YOUR BID")

	m = typeText(m, "13")
	m, _ = press(m, tea.KeyEnter)
	assert.Contains(t, m.View(), "CHOOSE TRUMP")

	m, _ = press(m, tea.KeyEnter)
	assert.Contains(t, m.View(), "Trick 1/13")

	m, _ = playRound(t, m)
	assert.Contains(t, m.View(), "Complete!")

	m.Width = 20
	assert.Contains(t, m.View(), "too narrow")
}

func humanLeads(t *testing.T, seed int64) Model {
	t.Helper()
	m := typeText(bidding(t, seed), "13")
	m, _ = press(m, tea.KeyEnter)
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, spades.PhasePlay, m.game.Phase)
	require.Equal(t, seat, m.game.Current)
	return m
}

func TestViewRendersFromSnapshot(t *testing.T) {
	m := bidding(t, 1)
	m.snap.Round = 99
	assert.Contains(t, m.View(), "Round 99")
	assert.Equal(t, 1, m.game.Round)

	m = humanLeads(t, 2)
	assert.Equal(t, [spades.Seats]int{13, 13, 13, 13}, m.snap.HandCounts)
	m.snap.HandCounts[2] = 7
	assert.Contains(t, m.View(), "[7 cards]")
	assert.Len(t, m.game.Hands[2], spades.HandSize)
}

func TestSnapshotRefreshedAfterCommands(t *testing.T) {
	m := humanLeads(t, 2)
	assert.Equal(t, m.game.Snapshot(seat), m.Snapshot())

	m, _ = press(m, tea.KeyEnter)
	assert.Len(t, m.Snapshot().Hand, spades.HandSize-1)
	assert.Len(t, m.Snapshot().Trick, 1)
	assert.Nil(t, m.Snapshot().Legal, "not the human's turn")
	assert.Equal(t, m.game.Snapshot(seat), m.Snapshot())
}

func TestSnapshotEditsDoNotReachGame(t *testing.T) {
	m := humanLeads(t, 2)
	hand := append([]spades.Card(nil), m.game.Hands[seat]...)
	trump := m.game.Contract.Trump

	s := m.Snapshot()
	s.Contract.Trump = spades.Clubs
	if trump == spades.Clubs {
		s.Contract.Trump = spades.Hearts
	}
	s.Hand[0] = s.Hand[1]

	assert.Equal(t, trump, m.game.Contract.Trump)
	assert.Equal(t, hand, m.game.Hands[seat])

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, trump, m.Snapshot().Contract.Trump)
}
