package spades

import "fmt"

// TrumpMode decides who picks trump once a contract is made.
type TrumpMode string

const (
	// TrumpWinnerChooses waits for a human winner; AI winners use the heuristic.
	TrumpWinnerChooses TrumpMode = "winner"
	// TrumpAuto assigns trump by heuristic for every winner, human included.
	TrumpAuto TrumpMode = "auto"
)

func ParseTrumpMode(v string) (TrumpMode, error) {
	switch TrumpMode(v) {
	case TrumpWinnerChooses, TrumpAuto:
		return TrumpMode(v), nil
	}
	return "", fmt.Errorf("%w: unknown trump mode %q", ErrInvalidConfig, v)
}

// Config holds the rule parameters of one engine.
type Config struct {
	InitialDealSize int       `json:"initialDealSize"`
	MinimumContract int       `json:"minimumContract"`
	AIBidFloor      int       `json:"aiBidFloor"`
	TrumpSelection  TrumpMode `json:"trumpSelection"`
	LogLimit        int       `json:"logLimit"`
}

func DefaultConfig() Config {
	return Config{
		InitialDealSize: 5,
		MinimumContract: 7,
		AIBidFloor:      7,
		TrumpSelection:  TrumpWinnerChooses,
		LogLimit:        50,
	}
}

func (c Config) Validate() error {
	switch {
	case c.InitialDealSize < 1 || c.InitialDealSize > HandSize:
		return fmt.Errorf("%w: initial deal size %d outside 1..%d", ErrInvalidConfig, c.InitialDealSize, HandSize)
	case c.MinimumContract < 1 || c.MinimumContract > HandSize:
		return fmt.Errorf("%w: minimum contract %d outside 1..%d", ErrInvalidConfig, c.MinimumContract, HandSize)
	case c.AIBidFloor < 0 || c.AIBidFloor > HandSize:
		return fmt.Errorf("%w: AI bid floor %d outside 0..%d", ErrInvalidConfig, c.AIBidFloor, HandSize)
	case c.LogLimit < 1:
		return fmt.Errorf("%w: log limit must be positive", ErrInvalidConfig)
	}
	if _, err := ParseTrumpMode(string(c.TrumpSelection)); err != nil {
		return err
	}
	return nil
}
