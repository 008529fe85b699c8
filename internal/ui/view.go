package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aminshahid573/dakspades/internal/db"
	"github.com/aminshahid573/dakspades/internal/spades"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

func (m Model) View() string {
	if m.PopupActive {
		box := PopupBox.Render(fmt.Sprintf(
			"Leave the table?\n(Round %d will be abandoned)\n\n[Y] Yes    [N] No", m.Table.Snapshot().Round))
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
	}

	if m.State == StateTable {
		return m.Table.View()
	}

	var content string
	var helpText string

	switch m.State {
	case StateNameInput:
		content = lipgloss.JoinVertical(lipgloss.Center,
			"\n",
			Title.Render("DAK SPADES"),
			"\n\n",
			m.TextInput.View(),
			"\n",
		)
		helpText = "Enter: Confirm • Ctrl+C: Quit"

	case StateMenu:
		var rendered []string
		for i, opt := range menuItems {
			if i == m.MenuIndex {
				rendered = append(rendered, ItemFocused.Render(" "+opt+" "))
			} else {
				rendered = append(rendered, ItemBlurred.Render(" "+opt+" "))
			}
		}
		totals := m.Table.Snapshot().Totals
		content = lipgloss.JoinVertical(lipgloss.Center,
			Title.Render("MAIN MENU"),
			Subtle.Render(fmt.Sprintf("Welcome, %s", m.MyName)),
			"",
			lipgloss.JoinVertical(lipgloss.Left, rendered...),
			"",
			Subtle.Render(fmt.Sprintf("Session totals  A %d · B %d", totals.TeamA, totals.TeamB)),
		)
		helpText = "↑/↓: Navigate • Enter: Select"

	case StateResults:
		content = renderResults(m)
		helpText = "R: Refresh • Esc: Back"
	}

	if m.Err != nil {
		content = lipgloss.JoinVertical(lipgloss.Center, content, Err.Render("\n"+m.Err.Error()))
	}

	finalView := lipgloss.JoinVertical(lipgloss.Center,
		content,
		"\n",
		Subtle.Render(helpText),
	)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, finalView)
}

// Container is 70 wide; border and padding take 4, leaving 66.
const listWidth = 66

func renderResults(m Model) string {
	var rows []string
	rows = append(rows, renderSectionHeader(" Recent Rounds ", listWidth, fmt.Sprintf("%d saved this session", m.Saved)))
	switch {
	case m.Busy:
		rows = append(rows, Subtle.Render("  Loading…"))
	case len(m.Results) == 0:
		rows = append(rows, Subtle.Render("  No rounds played yet"))
	default:
		for _, r := range m.Results {
			rows = append(rows, renderResultItem(r, r.SessionID == m.SessionID, listWidth))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		Title.Render("RESULTS"),
		ListContainer.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
	)
}

func renderSectionHeader(text string, width int, info string) string {
	infoRendered := ""
	if info != "" {
		infoRendered = " " + Subtle.Render(info)
	}
	titleRendered := SectionTitle.Render(text)
	remaining := max(width-lipgloss.Width(titleRendered)-lipgloss.Width(infoRendered)-1, 0)
	return titleRendered + " " + SectionLine.Render(strings.Repeat("─", remaining)) + infoRendered
}

func renderResultItem(r db.Record, mine bool, width int) string {
	style, infoStyle := ItemBlurred, InfoTextBlurred
	if mine {
		style, infoStyle = ItemFocused, InfoTextFocused
	}

	verdict := OK.Render("made")
	if !r.Made {
		verdict = Err.Render("down")
	}
	trump := r.Trump
	if s, err := spades.ParseSuit(r.Trump); err == nil {
		trump = s.Symbol()
	}
	right := infoStyle.Render(fmt.Sprintf(" %d–%d %s ", r.TeamA, r.TeamB, time.Unix(r.FinishedAt, 0).Format("Jan 2 15:04")))
	rightW := lipgloss.Width(right)

	name := r.PlayerName
	if name == "" {
		name = "anonymous"
	}
	left := fmt.Sprintf("%s · %s bid %d%s ", name, spades.PlayerNames[r.Winner%spades.Seats], r.Bid, trump)
	left = truncate.StringWithTail(left, uint(max(width-rightW-8, 1)), "...")
	left += verdict

	gap := strings.Repeat(" ", max(0, width-lipgloss.Width(left)-rightW))
	return style.Render(left + gap + right)
}
