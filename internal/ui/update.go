package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aminshahid573/dakspades/internal/db"
	"github.com/aminshahid573/dakspades/internal/spades"
	"github.com/aminshahid573/dakspades/internal/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Messages
type resultsFetchedMsg []db.Record
type resultSavedMsg db.Record
type errMsg error

const storeTimeout = 5 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// 1. Async store results
	switch msg := msg.(type) {
	case table.RoundFinishedMsg:
		return m, saveResultCmd(m.Store, db.NewRecord(msg.Result, m.SessionID, m.MyName, time.Now()))

	case resultSavedMsg:
		m.Saved++
		log.Info("Result saved", "round", msg.RoundID, "session", msg.SessionID, "made", msg.Made)
		return m, nil

	case resultsFetchedMsg:
		m.Busy = false
		m.Err = nil
		m.Results = []db.Record(msg)
		return m, nil

	case errMsg:
		m.Busy = false
		m.Err = msg
		log.Error("Store error", "session", m.SessionID, "err", msg)
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Table, _ = m.Table.Update(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Leave popup. Only keys are captured; AI steps keep reaching the table.
	if k, ok := msg.(tea.KeyMsg); ok && m.PopupActive {
		switch k.String() {
		case "y", "enter":
			m.Table = m.Table.Leave()
			m.PopupActive = false
			m.State = StateMenu
			m.trackRound()
		case "n", "esc":
			m.PopupActive = false
		}
		return m, nil
	}

	switch m.State {
	case StateNameInput:
		m, cmd = updateName(m, msg)
	case StateMenu:
		m, cmd = updateMenu(m, msg)
	case StateTable:
		m, cmd = updateTable(m, msg)
	case StateResults:
		m, cmd = updateResults(m, msg)
	}
	return m, cmd
}

func updateName(m Model, msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		if val := strings.TrimSpace(m.TextInput.Value()); val != "" {
			m.MyName = val
			m.State = StateMenu
			return m, nil
		}
	}
	m.TextInput, cmd = m.TextInput.Update(msg)
	return m, cmd
}

func updateMenu(m Model, msg tea.Msg) (Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch msgKey.String() {
	case "up", "k":
		if m.MenuIndex > 0 {
			m.MenuIndex--
		}
	case "down", "j":
		if m.MenuIndex < len(menuItems)-1 {
			m.MenuIndex++
		}
	case "q":
		return m, tea.Quit
	case "enter":
		switch m.MenuIndex {
		case 0:
			m.State = StateTable
			m.Err = nil
		case 1:
			m.State = StateResults
			m.Busy = true
			return m, fetchResultsCmd(m.Store, recentLimit)
		default:
			return m, tea.Quit
		}
	}
	return m, nil
}

func updateTable(m Model, msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && (k.String() == "esc" || k.String() == "q") {
		switch m.Table.Snapshot().Phase {
		case spades.PhaseLobby, spades.PhaseRoundEnd:
			m.Table = m.Table.Leave()
			m.State = StateMenu
			m.trackRound()
		default:
			m.PopupActive = true
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	m.trackRound()
	return m, cmd
}

func updateResults(m Model, msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "q", "enter":
			m.State = StateMenu
		case "r":
			m.Busy = true
			return m, fetchResultsCmd(m.Store, recentLimit)
		}
	}
	return m, nil
}

func saveResultCmd(store db.Store, r db.Record) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.SaveResult(ctx, r); err != nil {
			return errMsg(fmt.Errorf("save result: %w", err))
		}
		return resultSavedMsg(r)
	}
}

func fetchResultsCmd(store db.Store, n int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		list, err := store.RecentResults(ctx, n)
		if err != nil {
			return errMsg(fmt.Errorf("fetch results: %w", err))
		}
		return resultsFetchedMsg(list)
	}
}
