package ui

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/aminshahid573/dakspades/internal/db"
	"github.com/aminshahid573/dakspades/internal/spades"
	"github.com/aminshahid573/dakspades/internal/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"
)

type SessionState int

const (
	StateNameInput SessionState = iota
	StateMenu
	StateTable
	StateResults
)

var menuItems = []string{"Play vs AI", "Recent Results", "Quit"}

const recentLimit = 10

// CleanupState is shared with the server so a dropped connection can report
// the round it abandoned.
type CleanupState struct {
	SessionID string
	RoundID   string
	Mu        sync.Mutex
}

// Settings carries what a session needs from the process configuration.
type Settings struct {
	Rules      spades.Config
	AIDelay    time.Duration
	TrickPause time.Duration
	Rand       *rand.Rand
}

type Model struct {
	Width, Height int
	SessionID     string
	Err           error

	Cleanup *CleanupState
	Store   db.Store

	State       SessionState
	TextInput   textinput.Model
	MenuIndex   int
	PopupActive bool
	Busy        bool

	MyName string

	Table   table.Model
	Results []db.Record
	Saved   int
}

func InitialModel(s ssh.Session, cleanup *CleanupState, store db.Store, set Settings) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "Enter Name"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 20

	id := "local"
	if s != nil {
		if key := s.PublicKey(); key != nil {
			id = gossh.FingerprintSHA256(key)
		} else {
			id = s.RemoteAddr().String()
		}
	}
	id = sanitizeID(id)
	if cleanup == nil {
		cleanup = &CleanupState{}
	}
	cleanup.SessionID = id

	g, err := spades.NewGame(set.Rules, set.Rand)
	if err != nil {
		return Model{}, err
	}
	log.Debug("Session opened", "id", id)

	return Model{
		State:     StateNameInput,
		TextInput: ti,
		SessionID: id,
		Cleanup:   cleanup,
		Store:     store,
		Table:     table.NewModel(g, set.AIDelay, set.TrickPause),
	}, nil
}

var idReplacer = strings.NewReplacer(
	":", "_", "/", "_", ".", "_", "+", "-",
	"=", "", "[", "", "]", "",
)

// sanitizeID makes a fingerprint or address usable as a database key.
func sanitizeID(id string) string { return idReplacer.Replace(id) }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// trackRound records the round in progress for the disconnect handler.
func (m Model) trackRound() {
	g := m.Table.Snapshot()
	m.Cleanup.Mu.Lock()
	defer m.Cleanup.Mu.Unlock()
	switch g.Phase {
	case spades.PhaseLobby, spades.PhaseRoundEnd:
		m.Cleanup.RoundID = ""
	default:
		m.Cleanup.RoundID = g.RoundID
	}
}
