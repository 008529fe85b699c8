package spades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBids(t *testing.T) {
	tests := []struct {
		name     string
		bids     []Bid
		minimum  int
		want     int
		noResult bool
	}{
		{
			name:    "tie goes to the lowest seat",
			bids:    []Bid{{0, 6}, {1, 8}, {2, 8}, {3, 3}},
			minimum: 7,
			want:    1,
		},
		{
			name:     "nobody reaches the minimum",
			bids:     []Bid{{0, 3}, {1, 4}, {2, 5}, {3, 4}},
			minimum:  7,
			noResult: true,
		},
		{
			name:    "input order does not matter",
			bids:    []Bid{{3, 9}, {2, 9}, {0, 0}, {1, 7}},
			minimum: 7,
			want:    2,
		},
		{
			name:     "everyone passes",
			bids:     []Bid{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
			minimum:  1,
			noResult: true,
		},
		{
			name:    "exact minimum is enough",
			bids:    []Bid{{0, 0}, {1, 5}, {2, 0}, {3, 0}},
			minimum: 5,
			want:    1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBids(tt.bids, tt.minimum)
			if tt.noResult {
				assert.ErrorIs(t, err, ErrNoContract)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Seat)
		})
	}
}

func TestResolveBidsEmpty(t *testing.T) {
	_, err := ResolveBids(nil, 5)
	assert.ErrorIs(t, err, ErrNoContract)
}
