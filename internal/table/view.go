package table

import (
	"fmt"
	"strings"

	"github.com/aminshahid573/dakspades/internal/spades"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrBorder = lipgloss.Color("#30363d")
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrGreen  = lipgloss.Color("#3fb950")
	clrRed    = lipgloss.Color("#f85149")
	clrYellow = lipgloss.Color("#f0c862")
	clrWhite  = lipgloss.Color("#e6edf3")
	clrTitle  = lipgloss.Color("#58a6ff")

	// Indexed by spades.Suit.
	suitColorMap = [4]lipgloss.Color{
		lipgloss.Color("#50FA7B"), // Spades
		lipgloss.Color("#FF6B6B"), // Hearts
		lipgloss.Color("#FFD700"), // Diamonds
		lipgloss.Color("#44AAFF"), // Clubs
	}
)

// Compass positions around the table, indexed by seat.
var seatPositions = [spades.Seats]string{"SOUTH", "WEST", "NORTH", "EAST"}

const cardH = 5

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// joinRows joins two blocks side by side, padding both to the same height so
// lipgloss never fills the gap.
func joinRows(left, right string, gap int) string {
	return joinBlocks(left, right, gap, false)
}

// joinRowsVCenter is joinRows with the shorter block centred vertically.
func joinRowsVCenter(left, right string, gap int) string {
	return joinBlocks(left, right, gap, true)
}

func joinBlocks(left, right string, gap int, center bool) string {
	ll := strings.Split(left, "\n")
	rl := strings.Split(right, "\n")
	lw, rw := maxLineWidth(ll), maxLineWidth(rl)
	h := max(len(ll), len(rl))
	ll = padLines(ll, lw, h, center)
	rl = padLines(rl, rw, h, center)

	sep := strings.Repeat(" ", gap)
	rows := make([]string, h)
	for i := range rows {
		lpad := max(lw-lipgloss.Width(ll[i]), 0)
		rpad := max(rw-lipgloss.Width(rl[i]), 0)
		rows[i] = ll[i] + strings.Repeat(" ", lpad) + sep + rl[i] + strings.Repeat(" ", rpad)
	}
	return strings.Join(rows, "\n")
}

func padLines(lines []string, w, target int, center bool) []string {
	if len(lines) >= target {
		return lines
	}
	top := 0
	if center {
		top = (target - len(lines)) / 2
	}
	blank := strings.Repeat(" ", w)
	out := make([]string, 0, target)
	for i := 0; i < top; i++ {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for len(out) < target {
		out = append(out, blank)
	}
	return out
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

func padCenter(s string, w int) string {
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(s)
}

// box wraps content in a rounded border with no background.
func box(content string, w int, borderClr lipgloss.Color) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderClr).
		Width(w).
		Padding(0, 1).
		Render(content)
}

// ─── Cards ───────────────────────────────────────────────────────────────────

func cardFace(c spades.Card, edge, side string) []string {
	r := fmt.Sprintf("%-2s", c.Rank.String())
	b := fmt.Sprintf("%2s", c.Rank.String())
	top, bot := "┌───┐", "└───┘"
	if edge == "═" {
		top, bot = "╔═══╗", "╚═══╝"
	}
	return []string{
		top,
		side + r + " " + side,
		side + " " + c.Suit.Symbol() + " " + side,
		side + " " + b + side,
		bot,
	}
}

func renderCard(c spades.Card, selected, valid bool) string {
	lines := cardFace(c, "─", "│")
	borderClr, textClr := suitColorMap[c.Suit], suitColorMap[c.Suit]
	if selected {
		borderClr = clrGold
	}
	if !valid {
		borderClr, textClr = clrBorder, clrBorder
	}
	for i, l := range lines {
		if i == 0 || i == cardH-1 {
			lines[i] = fg(borderClr).Render(l)
		} else {
			lines[i] = fg(textClr).Render(l)
		}
	}
	if selected {
		lines[cardH-1] = fg(clrGold).Render("└─▲─┘")
	}
	return strings.Join(lines, "\n")
}

func renderTableCard(c spades.Card, winner bool) string {
	clr := suitColorMap[c.Suit]
	edge := bold(clr)
	if winner {
		edge = bold(clrGold)
	}
	lines := cardFace(c, "═", "║")
	for i, l := range lines {
		if i == 0 || i == cardH-1 {
			lines[i] = edge.Render(l)
		} else {
			lines[i] = fg(clr).Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

func renderEmptySlot() string {
	lines := []string{"┌───┐", "│   │", "│   │", "│   │", "└───┘"}
	for i, l := range lines {
		lines[i] = fg(clrBorder).Faint(true).Render(l)
	}
	return strings.Join(lines, "\n")
}

func renderHandRow(hand []spades.Card, selected int, valid []bool, active bool) string {
	if len(hand) == 0 {
		return fg(clrSubtle).Render("(no cards)")
	}
	rows := make([][]string, cardH)
	for i, c := range hand {
		v := i >= len(valid) || valid[i]
		lines := strings.Split(renderCard(c, active && i == selected, v), "\n")
		for r := range rows {
			rows[r] = append(rows[r], lines[r])
		}
	}
	out := make([]string, cardH)
	for i, row := range rows {
		out[i] = strings.Join(row, " ")
	}
	return strings.Join(out, "\n")
}

// ─── Labels ──────────────────────────────────────────────────────────────────

func (m Model) bidOf(p int) (int, bool) {
	for _, b := range m.snap.Bids {
		if b.Seat == p {
			return b.Value, true
		}
	}
	return 0, false
}

func (m Model) playerLabel(p int) string {
	label := seatPositions[p] + " · " + spades.PlayerNames[p]
	if v, ok := m.bidOf(p); ok {
		if v == 0 {
			label += "  pass"
		} else {
			label += fmt.Sprintf("  bid:%d", v)
		}
	}
	if c := m.snap.Contract; c != nil && c.Winner == p {
		label += " ★"
	}
	if m.snap.Phase == spades.PhasePlay && m.snap.Current == p {
		return bold(clrGold).Render("▶ " + label)
	}
	return fg(clrSubtle).Render("  " + label)
}

func (m Model) trumpLabel() string {
	c := m.snap.Contract
	if c == nil || !c.TrumpSet {
		return fg(clrSubtle).Render("—")
	}
	return bold(suitColorMap[c.Trump]).Render(c.Trump.Symbol() + " " + c.Trump.Name())
}

// ─── Header / message bar ────────────────────────────────────────────────────

func (m Model) renderHeader(title string) string {
	left := bold(clrGold).Render("♠ DAK SPADES")
	right := fg(clrSubtle).Render("N New deal · Esc Leave")
	innerW := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right)-8, 0)
	mid := bold(clrWhite).Width(innerW).Align(lipgloss.Center).Render(title)
	return lipgloss.NewStyle().
		BorderBottom(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(clrBorder).
		Width(max(m.Width-2, 0)).Padding(0, 1).
		Render(left + "  " + mid + "  " + right)
}

func (m Model) renderMsgBar() string {
	return lipgloss.NewStyle().
		BorderTop(true).BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(clrBorder).
		Foreground(clrYellow).
		Width(max(m.Width-2, 0)).Padding(0, 2).
		Render(m.Message)
}

// ─── Side panel ──────────────────────────────────────────────────────────────

const logLines = 8

func (m Model) renderSidePanel(w int) string {
	g := m.snap
	rule := fg(clrBorder).Render(strings.Repeat("─", max(w-4, 1)))
	var sb strings.Builder

	sb.WriteString(bold(clrGold).Render("TRICKS") + "\n" + rule + "\n")
	for _, t := range []spades.Team{spades.TeamA, spades.TeamB} {
		clr := clrWhite
		if c := g.Contract; c != nil && spades.TeamOf(c.Winner) == t {
			clr = clrGreen
			if g.Phase == spades.PhaseRoundEnd && g.Scores.Of(t) < c.Value {
				clr = clrRed
			}
		}
		sb.WriteString(fmt.Sprintf("  %-8s", t) + fg(clr).Render(fmt.Sprintf("%2d", g.Scores.Of(t))) +
			fg(clrSubtle).Render(fmt.Sprintf("  (total %d)", g.Totals.Of(t))) + "\n")
	}

	sb.WriteString("\n" + bold(clrGold).Render("CONTRACT") + "\n" + rule + "\n")
	if c := g.Contract; c != nil {
		sb.WriteString(fmt.Sprintf("  %s · %d\n", spades.PlayerNames[c.Winner], c.Value))
	} else {
		sb.WriteString(fg(clrSubtle).Render("  none yet") + "\n")
	}
	sb.WriteString("  Trump " + m.trumpLabel() + "\n")
	sb.WriteString(fg(clrSubtle).Render(fmt.Sprintf("  Round  %d", g.Round)) + "\n")

	sb.WriteString("\n" + bold(clrGold).Render("LOG") + "\n" + rule + "\n")
	entries := g.Log
	if len(entries) > logLines {
		entries = entries[len(entries)-logLines:]
	}
	for _, e := range entries {
		sb.WriteString(fg(clrSubtle).Render(truncate.StringWithTail(e, uint(max(w-4, 1)), "…")) + "\n")
	}

	return box(strings.TrimRight(sb.String(), "\n"), w, clrBorder)
}

// ─── Trick area ──────────────────────────────────────────────────────────────

// trickSlots lays the live trick out by seat. With the live trick empty the
// last resolved trick stays on the cloth until the next lead.
func (m Model) trickSlots() (slots [spades.Seats]string, winner int) {
	winner = -1
	plays := m.snap.Trick
	if len(plays) == 0 && m.snap.LastTrick != nil {
		plays = m.snap.LastTrick.Plays
		winner = m.snap.LastTrick.Winner.Seat
	}
	for p := range slots {
		slots[p] = renderEmptySlot()
	}
	for _, pl := range plays {
		slots[pl.Seat] = renderTableCard(pl.Card, pl.Seat == winner)
	}
	return slots, winner
}

func (m Model) renderTableArea(w int) string {
	const cardW = 5
	slots, _ := m.trickSlots()
	split := func(s string) []string { return strings.Split(s, "\n") }
	north, west, east, south := split(slots[2]), split(slots[1]), split(slots[3]), split(slots[0])

	center := []string{"     ", "  ┌─┐", "  │ │", "  └─┘", "     "}
	if c := m.snap.Contract; c != nil && c.TrumpSet {
		center[2] = "  │" + fg(suitColorMap[c.Trump]).Render(c.Trump.Symbol()) + "│"
	}

	pad := strings.Repeat(" ", max((w-cardW)/2, 0))
	side := strings.Repeat(" ", max((w-cardW-7-cardW-4)/2, 0))

	rows := make([]string, 0, cardH*3+2)
	for _, l := range north {
		rows = append(rows, pad+l)
	}
	rows = append(rows, "")
	for i := 0; i < cardH; i++ {
		rows = append(rows, side+west[i]+"  "+fg(clrSubtle).Render(center[i])+"  "+east[i])
	}
	rows = append(rows, "")
	for _, l := range south {
		rows = append(rows, pad+l)
	}
	return strings.Join(rows, "\n")
}

// ─── View dispatcher ─────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.Width < 40 {
		return "Terminal too narrow (min 40 cols)"
	}
	switch m.snap.Phase {
	case spades.PhaseLobby:
		return m.viewLobby()
	case spades.PhaseBidding:
		return m.viewBidding()
	case spades.PhaseTrumpSelection:
		return m.viewTrump()
	case spades.PhaseRoundEnd:
		return m.viewRoundEnd()
	}
	return m.viewPlay()
}

func (m Model) layout(main string, mainW int) string {
	const sideW = 30
	if m.Width >= mainW+sideW+6 {
		return joinRows(main, m.renderSidePanel(sideW), 2)
	}
	return lipgloss.JoinVertical(lipgloss.Center, main, m.renderSidePanel(max(m.Width-4, 20)))
}

func (m Model) frame(title, body string) string {
	return strings.Join([]string{m.renderHeader(title), body, m.renderMsgBar()}, "\n")
}

// ─── Lobby ───────────────────────────────────────────────────────────────────

func (m Model) viewLobby() string {
	cfg := m.snap.Config
	banner := strings.Join([]string{
		bold(clrGold).Render("╔════════════════════════════════╗"),
		bold(clrGold).Render("║  ♠  ") + bold(clrWhite).Render("   D A K   S P A D E S  ") + bold(clrGold).Render(" ♠  ║"),
		bold(clrGold).Render("╚════════════════════════════════╝"),
	}, "\n")

	rules := []string{
		fmt.Sprintf("%d cards each, then bid", cfg.InitialDealSize),
		fmt.Sprintf("Bid 0 to pass or %d-%d tricks", cfg.MinimumContract, spades.HandSize),
		"Highest bid names trump",
		"Follow the lead suit if you can",
		"You + AI 2 vs AI 1 + AI 3",
	}
	for i, r := range rules {
		rules[i] = "  " + fg(clrSubtle).Render(r)
	}
	rulesBox := box(bold(clrGold).Render("RULES\n")+
		fg(clrBorder).Render(strings.Repeat("─", 30))+"\n"+strings.Join(rules, "\n"), 36, clrBorder)

	start := bold(clrGreen).Render("[ ENTER ]  Deal") + "    " + fg(clrSubtle).Render("[ ESC ]  Back")
	content := strings.Join([]string{"", banner, "", rulesBox, "", start, ""}, "\n")
	return m.frame(fmt.Sprintf("Totals  A %d · B %d", m.snap.Totals.TeamA, m.snap.Totals.TeamB),
		padCenter(content, max(m.Width-4, 40)))
}

// ─── Bidding ─────────────────────────────────────────────────────────────────

func (m Model) suitCounts() string {
	var sb strings.Builder
	for _, s := range spades.Suits {
		n := 0
		for _, c := range m.snap.Hand {
			if c.Suit == s {
				n++
			}
		}
		sb.WriteString(fg(suitColorMap[s]).Render(fmt.Sprintf("%s:%d  ", s.Symbol(), n)))
	}
	return sb.String()
}

func (m Model) viewBidding() string {
	centerW := max(m.Width-30-8, 40)
	hand := m.viewHand()
	handBox := box(bold(clrSubtle).Render("Your Hand\n")+m.suitCounts()+"\n\n"+
		renderHandRow(hand, -1, nil, false), centerW-26, clrBorder)

	bidBox := box(strings.Join([]string{
		bold(clrGold).Render("YOUR BID"),
		"",
		m.BidInput.View(),
		"",
		fg(clrSubtle).Render("0 passes"),
		fg(clrGreen).Render("[ ENTER ] Confirm"),
	}, "\n"), 22, clrGold)

	main := joinRows(handBox, bidBox, 2)
	if centerW < 70 {
		main = lipgloss.JoinVertical(lipgloss.Center, handBox, bidBox)
	}
	return m.frame(fmt.Sprintf("Round %d  ·  BIDDING", m.snap.Round), m.layout(main, centerW))
}

// ─── Trump selection ─────────────────────────────────────────────────────────

func (m Model) viewTrump() string {
	centerW := max(m.Width-30-8, 40)
	var opts []string
	for i, s := range spades.Suits {
		label := fmt.Sprintf(" %s %s ", s.Symbol(), s.Name())
		if i == m.TrumpIndex {
			opts = append(opts, bold(clrGold).Border(lipgloss.RoundedBorder()).BorderForeground(clrGold).Render(label))
		} else {
			opts = append(opts, fg(suitColorMap[s]).Border(lipgloss.RoundedBorder()).BorderForeground(clrBorder).Render(label))
		}
	}
	picker := lipgloss.JoinHorizontal(lipgloss.Top, opts...)
	hand := renderHandRow(m.viewHand(), -1, nil, false)
	content := strings.Join([]string{
		bold(clrGold).Render("CHOOSE TRUMP"),
		m.suitCounts(),
		"",
		picker,
		"",
		hand,
		fg(clrSubtle).Render("← → select     ENTER confirm     S/H/D/C pick"),
	}, "\n")
	return m.frame(fmt.Sprintf("Round %d  ·  TRUMP", m.snap.Round),
		m.layout(box(content, centerW, clrBorder), centerW))
}

// ─── Play ────────────────────────────────────────────────────────────────────

func (m Model) viewPlay() string {
	g := m.snap
	centerW := max(m.Width-30-8, 40)
	const sideColW = 18
	count := func(p int) string {
		return fg(clrSubtle).Render(fmt.Sprintf("[%d cards]", g.HandCounts[p]))
	}

	north := padCenter(m.playerLabel(2)+"\n"+count(2), centerW)
	westCol := lipgloss.NewStyle().Width(sideColW).Align(lipgloss.Center).Render(m.playerLabel(1) + "\n" + count(1))
	eastCol := lipgloss.NewStyle().Width(sideColW).Align(lipgloss.Center).Render(m.playerLabel(3) + "\n" + count(3))
	tableW := max(centerW-sideColW*2-4, 20)
	mid := joinRowsVCenter(joinRowsVCenter(westCol, m.renderTableArea(tableW), 1), eastCol, 1)

	hand := m.viewHand()
	active := g.Phase == spades.PhasePlay && g.Current == seat
	valid := m.validMask(hand)
	if !active {
		valid = nil
	}
	hint := ""
	if active {
		hint = fg(clrSubtle).Render("  ← → select card     ENTER play")
	}

	content := strings.Join([]string{
		north, "", mid, "", m.playerLabel(0),
		renderHandRow(hand, m.Selected, valid, active), hint,
	}, "\n")
	title := fmt.Sprintf("Round %d  ·  Trick %d/%d  ·  Trump: %s",
		g.Round, min(g.Scores.Total()+1, spades.HandSize), spades.HandSize, m.trumpLabel())
	return m.frame(title, m.layout(box(content, centerW, clrBorder), centerW))
}

// ─── Round end ───────────────────────────────────────────────────────────────

func (m Model) viewRoundEnd() string {
	g := m.snap
	res := g.Result
	if res == nil {
		return m.viewLobby()
	}

	var sb strings.Builder
	sb.WriteString(bold(clrGold).Render(fmt.Sprintf("%-10s %7s %7s", "Team", "Tricks", "Total")) + "\n")
	sb.WriteString(fg(clrBorder).Render(strings.Repeat("─", 28)) + "\n")
	for _, t := range []spades.Team{spades.TeamA, spades.TeamB} {
		marker := "  "
		if t == res.ContractTeam {
			marker = fg(clrTitle).Render("★ ")
		}
		sb.WriteString(fmt.Sprintf("%s%-8s %7d %7d\n", marker, t, g.Scores.Of(t), g.Totals.Of(t)))
	}

	verdict := bold(clrGreen).Render(fmt.Sprintf("%s made %d", res.ContractTeam, res.Contract.Value))
	if !res.Made {
		verdict = bold(clrRed).Render(fmt.Sprintf("%s fell short of %d", res.ContractTeam, res.Contract.Value))
	}
	sb.WriteString("\n" + verdict + "\n")
	sb.WriteString(fg(clrSubtle).Render(fmt.Sprintf("Trump was %s %s", res.Contract.Trump.Symbol(), res.Contract.Trump.Name())))
	sb.WriteString("\n\n" + fg(clrSubtle).Render("[ ENTER ] Next round"))

	return m.frame(fmt.Sprintf("Round %d Complete!", g.Round),
		padCenter(box(sb.String(), 36, clrBorder), max(m.Width-4, 40)))
}
