package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"firebase.google.com/go/v4"
	fdb "firebase.google.com/go/v4/db"
	"github.com/charmbracelet/log"
	"google.golang.org/api/option"
)

const resultsPath = "results"

// Firebase stores results in a Realtime Database under results/<roundId>.
type Firebase struct {
	client *fdb.Client
}

func NewFirebase(ctx context.Context, url, credPath string) (*Firebase, error) {
	if url == "" {
		return nil, fmt.Errorf("FIREBASE_DB_URL environment variable is required")
	}

	var opts []option.ClientOption
	if credPath != "" {
		if _, err := os.Stat(credPath); err == nil {
			opts = append(opts, option.WithCredentialsFile(credPath))
		}
	}

	cfg := &firebase.Config{DatabaseURL: url}
	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing db client: %w", err)
	}
	return &Firebase{client: client}, nil
}

func (f *Firebase) SaveResult(ctx context.Context, r Record) error {
	if r.RoundID == "" {
		return fmt.Errorf("result has no round id")
	}
	log.Debug("Saving result", "round", r.RoundID, "teamA", r.TeamA, "teamB", r.TeamB)
	return f.client.NewRef(resultsPath+"/"+r.RoundID).Set(ctx, r)
}

func (f *Firebase) RecentResults(ctx context.Context, n int) ([]Record, error) {
	var byID map[string]Record
	if err := f.client.NewRef(resultsPath).Get(ctx, &byID); err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}
	list := make([]Record, 0, len(byID))
	for id, r := range byID {
		if r.RoundID == "" {
			r.RoundID = id
		}
		list = append(list, r)
	}
	return newestFirst(list, n), nil
}

// Prune removes results older than maxAge.
func (f *Firebase) Prune(ctx context.Context, maxAge time.Duration) error {
	ref := f.client.NewRef(resultsPath)
	var byID map[string]Record
	if err := ref.Get(ctx, &byID); err != nil {
		return fmt.Errorf("fetch results: %w", err)
	}

	cutoff := time.Now().Add(-maxAge).Unix()
	for id, r := range byID {
		if r.FinishedAt < cutoff {
			log.Info("Pruning result", "round", id, "finishedAt", r.FinishedAt)
			if err := ref.Child(id).Delete(ctx); err != nil {
				log.Error("Prune failed", "round", id, "err", err)
			}
		}
	}
	return nil
}
