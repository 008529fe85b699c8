// Command local plays a table in the current terminal without the SSH server.
package main

import (
	"os"

	"github.com/aminshahid573/dakspades/internal/config"
	"github.com/aminshahid573/dakspades/internal/db"
	"github.com/aminshahid573/dakspades/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	log.SetLevel(config.LogLevel)
	// The alt screen owns stdout.
	log.SetOutput(os.Stderr)

	m, err := ui.InitialModel(nil, nil, db.NewMemory(), ui.Settings{
		Rules:      config.Rules(),
		AIDelay:    config.AIDelay,
		TrickPause: config.TrickPause,
	})
	if err != nil {
		log.Fatal("Invalid rules", "err", err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal("Program exited", "err", err)
	}
}
