package db

import (
	"context"
	"sort"
	"time"

	"github.com/aminshahid573/dakspades/internal/spades"
)

// Record is the summary of one finished round as it is stored.
type Record struct {
	RoundID    string `json:"roundId"`
	SessionID  string `json:"sessionId"`
	PlayerName string `json:"playerName"`
	Round      int    `json:"round"`
	Winner     int    `json:"winner"`
	Bid        int    `json:"bid"`
	Trump      string `json:"trump"`
	TeamA      int    `json:"teamA"`
	TeamB      int    `json:"teamB"`
	Made       bool   `json:"made"`
	FinishedAt int64  `json:"finishedAt"`
}

func NewRecord(res spades.Result, sessionID, playerName string, at time.Time) Record {
	return Record{
		RoundID:    res.RoundID,
		SessionID:  sessionID,
		PlayerName: playerName,
		Round:      res.Round,
		Winner:     res.Contract.Winner,
		Bid:        res.Contract.Value,
		Trump:      res.Contract.Trump.Letter(),
		TeamA:      res.Scores.TeamA,
		TeamB:      res.Scores.TeamB,
		Made:       res.Made,
		FinishedAt: at.Unix(),
	}
}

// Store publishes finished rounds. Game state itself is never stored.
type Store interface {
	SaveResult(ctx context.Context, r Record) error
	RecentResults(ctx context.Context, n int) ([]Record, error)
	Prune(ctx context.Context, maxAge time.Duration) error
}

// newestFirst sorts records by finish time, newest first, and keeps at most n.
func newestFirst(list []Record, n int) []Record {
	sort.Slice(list, func(i, j int) bool {
		if list[i].FinishedAt != list[j].FinishedAt {
			return list[i].FinishedAt > list[j].FinishedAt
		}
		return list[i].RoundID < list[j].RoundID
	})
	if n >= 0 && len(list) > n {
		list = list[:n]
	}
	return list
}
