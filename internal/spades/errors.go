package spades

import "errors"

// Every rejected command returns one of these, possibly wrapped with detail.
// The game value handed to the command is never changed by a rejection.
var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidBid    = errors.New("invalid bid")
	ErrInvalidPhase  = errors.New("invalid phase transition")
	ErrInvalidTrump  = errors.New("invalid trump choice")
	ErrInvalidConfig = errors.New("invalid config")
	ErrShortDeck     = errors.New("deck too short")

	// ErrDealMismatch means the hands handed to the second deal were not
	// dealt from the deck it was given.
	ErrDealMismatch = errors.New("hands do not match the deal")

	// ErrNoContract is an outcome rather than a rejection: the game that comes
	// back with it has already been reset to the lobby for a re-deal.
	ErrNoContract = errors.New("no contract")
)
