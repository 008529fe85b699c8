package spades

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealInitial(t *testing.T) {
	deck := Shuffle(NewDeck(), rand.New(rand.NewSource(1)))
	hands, err := DealInitial(deck, 5)
	require.NoError(t, err)
	for p := 0; p < Seats; p++ {
		assert.Equal(t, deck[p*5:(p+1)*5], hands[p])
	}
	assert.Equal(t, 20, hands.Count())
}

func TestDealInitialShortDeck(t *testing.T) {
	_, err := DealInitial(NewDeck()[:19], 5)
	assert.ErrorIs(t, err, ErrShortDeck)

	_, err = DealInitial(NewDeck(), 0)
	assert.ErrorIs(t, err, ErrShortDeck)
}

func TestDealRemainderPartitionsDeck(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		deck := Shuffle(NewDeck(), rand.New(rand.NewSource(seed)))
		first, err := DealInitial(deck, 5)
		require.NoError(t, err)

		full, err := DealRemainder(first, deck)
		require.NoError(t, err)

		var all []Card
		for p := 0; p < Seats; p++ {
			require.Len(t, full[p], HandSize)
			assert.Equal(t, first[p], full[p][:5], "seat %d keeps its first tranche", p)
			assert.Equal(t, deck[20+p*8:28+p*8], full[p][5:], "seat %d gets the next 8 in deal order", p)
			all = append(all, full[p]...)
		}
		assert.ElementsMatch(t, NewDeck(), all)
	}
}

func TestDealRemainderOtherTrancheSizes(t *testing.T) {
	deck := Shuffle(NewDeck(), rand.New(rand.NewSource(9)))
	for _, size := range []int{1, 3, 8, 13} {
		first, err := DealInitial(deck, size)
		require.NoError(t, err)
		full, err := DealRemainder(first, deck)
		require.NoError(t, err)
		for p := 0; p < Seats; p++ {
			assert.Len(t, full[p], HandSize, "size %d seat %d", size, p)
		}
	}
}

func TestDealRemainderLeavesInputAlone(t *testing.T) {
	deck := Shuffle(NewDeck(), rand.New(rand.NewSource(2)))
	first, err := DealInitial(deck, 5)
	require.NoError(t, err)
	_, err = DealRemainder(first, deck)
	require.NoError(t, err)
	for p := 0; p < Seats; p++ {
		assert.Len(t, first[p], 5)
	}
}

func TestDealRemainderRejectsForeignHands(t *testing.T) {
	deck := Shuffle(NewDeck(), rand.New(rand.NewSource(4)))
	other := Shuffle(NewDeck(), rand.New(rand.NewSource(5)))
	first, err := DealInitial(other, 5)
	require.NoError(t, err)

	_, err = DealRemainder(first, deck)
	assert.ErrorIs(t, err, ErrDealMismatch)
	assert.NotErrorIs(t, err, ErrIllegalMove)
}

func TestDealRemainderRejectsUnevenTranche(t *testing.T) {
	deck := Shuffle(NewDeck(), rand.New(rand.NewSource(6)))
	first, err := DealInitial(deck, 5)
	require.NoError(t, err)
	first[3] = first[3][:4]

	out, err := DealRemainder(first, deck)
	assert.ErrorIs(t, err, ErrDealMismatch)
	assert.NotErrorIs(t, err, ErrIllegalMove)
	assert.Len(t, out[3], 4, "hands come back untouched")
}
