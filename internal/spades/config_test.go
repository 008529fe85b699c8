package spades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrumpMode(t *testing.T) {
	m, err := ParseTrumpMode("auto")
	require.NoError(t, err)
	assert.Equal(t, TrumpAuto, m)

	m, err = ParseTrumpMode("winner")
	require.NoError(t, err)
	assert.Equal(t, TrumpWinnerChooses, m)

	_, err = ParseTrumpMode("random")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateBounds(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	for _, size := range []int{1, 7, HandSize} {
		cfg := DefaultConfig()
		cfg.InitialDealSize = size
		assert.NoError(t, cfg.Validate(), "deal size %d", size)
	}

	cfg := DefaultConfig()
	cfg.AIBidFloor = 0
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.TrumpSelection = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.LogLimit = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
