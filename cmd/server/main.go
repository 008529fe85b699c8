package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aminshahid573/dakspades/internal/config"
	"github.com/aminshahid573/dakspades/internal/db"
	"github.com/aminshahid573/dakspades/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

var cleanupWg sync.WaitGroup

func main() {
	log.SetLevel(config.LogLevel)

	// 1. Results store
	store := openStore()
	go pruneResults(store)

	// 2. Setup SSH
	s, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf("%s:%d", config.Host, config.Port)),
		wish.WithHostKeyPath(config.HostKeyPath),
		wish.WithMiddleware(
			bm.Middleware(teaHandler(store)),
			logging.Middleware(),
			activeterm.Middleware(),
		),
	)
	if err != nil {
		log.Fatal(err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	log.Info("Starting Server", "host", config.Host, "port", config.Port)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Listen Error", "err", err)
			done <- nil
		}
	}()

	<-done
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Error("Shutdown", "err", err)
	}

	log.Info("Waiting for cleanups...")
	cleanupWg.Wait()
	log.Info("Shutdown complete")
}

func openStore() db.Store {
	if config.DBURL == "" {
		log.Warn("FIREBASE_DB_URL not set, results are kept in memory")
		return db.NewMemory()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	fb, err := db.NewFirebase(ctx, config.DBURL, config.CredPath)
	if err != nil {
		log.Fatal("Failed to init Firebase", "err", err)
	}
	log.Info("Firebase connected")
	return fb
}

// pruneResults drops stale results on startup.
func pruneResults(store db.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := store.Prune(ctx, config.ResultsRetention); err != nil {
		log.Error("Prune results", "err", err)
	}
}

func teaHandler(store db.Store) bm.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		cleanup := &ui.CleanupState{}

		cleanupWg.Add(1)
		go func() {
			defer cleanupWg.Done()
			<-s.Context().Done()

			cleanup.Mu.Lock()
			defer cleanup.Mu.Unlock()
			if cleanup.RoundID != "" {
				log.Info("Session dropped mid-round", "round", cleanup.RoundID, "id", cleanup.SessionID)
			}
		}()

		m, err := ui.InitialModel(s, cleanup, store, ui.Settings{
			Rules:      config.Rules(),
			AIDelay:    config.AIDelay,
			TrickPause: config.TrickPause,
		})
		if err != nil {
			wish.Fatalln(s, err)
			return nil, nil
		}
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
