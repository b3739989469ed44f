package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnevenDeal is returned when the deck does not divide evenly among
	// the requested number of players.
	ErrUnevenDeal = errors.New("deck does not divide evenly among players")

	// ErrEmptyTrick is returned when a trick has no plays to inspect.
	ErrEmptyTrick = errors.New("trick has no plays")

	// ErrRoundNotFinished is returned when scores are requested before
	// every trick of the round has been played.
	ErrRoundNotFinished = errors.New("round not finished")

	// ErrBidTooLow is returned when a bid is below the current minimum.
	ErrBidTooLow = errors.New("bid below current minimum")

	// ErrBidTooHigh is returned when a bid exceeds the deck's point pool.
	ErrBidTooHigh = errors.New("bid exceeds total points")

	// ErrBiddingFinished is returned when a bid arrives after every seat
	// has already acted.
	ErrBiddingFinished = errors.New("bidding already finished")
)

// ErrIllegalMove is the root of the play legality taxonomy. Every
// rejection from PlayRound.Play satisfies errors.Is(err, ErrIllegalMove).
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrOutOfTurn       = fmt.Errorf("%w: not this seat's turn", ErrIllegalMove)
	ErrCardNotInHand   = fmt.Errorf("%w: card not in hand", ErrIllegalMove)
	ErrMustFollowSuit  = fmt.Errorf("%w: must follow the leading suit", ErrIllegalMove)
	ErrTrumpNotBroken  = fmt.Errorf("%w: cannot lead trump before it is broken", ErrIllegalMove)
	ErrRoundOver       = fmt.Errorf("%w: round is over", ErrIllegalMove)
)
