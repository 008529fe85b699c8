package config

import (
	"os"
	"strconv"
	"time"

	"github.com/aminshahid573/dakspades/internal/spades"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

var (
	Host        = "0.0.0.0"
	Port        = 2324
	HostKeyPath = "ssh_host_key"
	LogLevel    = log.InfoLevel

	DBURL            = ""
	CredPath         = ""
	ResultsRetention = 7 * 24 * time.Hour

	// AIDelay paces AI plays; TrickPause holds a finished trick on screen.
	AIDelay    = 800 * time.Millisecond
	TrickPause = 1200 * time.Millisecond

	InitialDealSize = 5
	MinContract     = 7
	AIBidFloor      = 7
	TrumpMode       = spades.TrumpWinnerChooses
)

func init() {
	// Load .env file if present
	_ = godotenv.Load()
	Load()
}

// Load reads every setting from the environment. Unparseable values are
// logged and the previous value is kept.
func Load() {
	if v := os.Getenv("HOST"); v != "" {
		Host = v
	}
	intVar("PORT", &Port)
	if v := os.Getenv("HOST_KEY_PATH"); v != "" {
		HostKeyPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if lvl, err := log.ParseLevel(v); err == nil {
			LogLevel = lvl
		} else {
			log.Warn("Ignoring LOG_LEVEL", "value", v, "err", err)
		}
	}

	if v := os.Getenv("FIREBASE_DB_URL"); v != "" {
		DBURL = v
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		CredPath = v
	}
	hours := int(ResultsRetention / time.Hour)
	intVar("RESULTS_RETENTION_HOURS", &hours)
	ResultsRetention = time.Duration(hours) * time.Hour

	msVar("AI_DELAY_MS", &AIDelay)
	msVar("TRICK_PAUSE_MS", &TrickPause)

	intVar("INITIAL_DEAL_SIZE", &InitialDealSize)
	intVar("MIN_CONTRACT", &MinContract)
	intVar("AI_BID_FLOOR", &AIBidFloor)
	if v := os.Getenv("TRUMP_MODE"); v != "" {
		if m, err := spades.ParseTrumpMode(v); err == nil {
			TrumpMode = m
		} else {
			log.Warn("Ignoring TRUMP_MODE", "value", v, "err", err)
		}
	}
}

// Rules returns the engine configuration built from the loaded settings. An
// invalid combination falls back to the defaults.
func Rules() spades.Config {
	cfg := spades.DefaultConfig()
	cfg.InitialDealSize = InitialDealSize
	cfg.MinimumContract = MinContract
	cfg.AIBidFloor = AIBidFloor
	cfg.TrumpSelection = TrumpMode
	if err := cfg.Validate(); err != nil {
		log.Warn("Invalid rules, using defaults", "err", err)
		return spades.DefaultConfig()
	}
	return cfg
}

func intVar(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn("Ignoring setting", "key", key, "value", v, "err", err)
		return
	}
	*dst = n
}

func msVar(key string, dst *time.Duration) {
	ms := int(*dst / time.Millisecond)
	intVar(key, &ms)
	if ms < 0 {
		log.Warn("Ignoring negative delay", "key", key, "value", ms)
		return
	}
	*dst = time.Duration(ms) * time.Millisecond
}
