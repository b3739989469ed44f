package domain

// BidAction is the tagged command a bidder submits: either a pass or an
// (amount, trump) bid. The tag avoids the nil-as-pass overloading that
// makes the opening-bid special case easy to mishandle.
type BidAction struct {
	Pass   bool
	Amount int
	Trump  Suit
}

// PassAction returns the pass command.
func PassAction() BidAction {
	return BidAction{Pass: true}
}

// BidOf returns a bid command for the given amount and trump suit.
func BidOf(amount int, trump Suit) BidAction {
	return BidAction{Amount: amount, Trump: trump}
}

// Bid is one recorded entry of a bet round's history.
type Bid struct {
	Seat   int
	Pass   bool
	Amount int
	Trump  Suit
}

// BetRound is the sequential bidding phase of a round. Bids are stored
// newest-first, like trick plays.
type BetRound struct {
	// Hands holds each seat's dealt cards for the duration of bidding;
	// the play phase consumes them afterwards.
	Hands [][]Card
	Bids  []Bid
	// NextMin is the lowest amount the next bid may carry. It opens at
	// MinOpeningBid and moves to amount+1 after every non-pass bid, which
	// keeps the bid sequence strictly increasing.
	NextMin       int
	CurrentBidder int
}

// NewBetRound opens bidding over the dealt hands, starting at the given
// seat.
func NewBetRound(hands [][]Card, startingSeat int) BetRound {
	return BetRound{
		Hands:         hands,
		NextMin:       MinOpeningBid,
		CurrentBidder: startingSeat,
	}
}

// PlayerCount returns the number of seats in the round.
func (r BetRound) PlayerCount() int {
	return len(r.Hands)
}

// IsFinished reports whether every seat has acted once.
func (r BetRound) IsFinished() bool {
	return len(r.Bids) == len(r.Hands)
}

// PlaceBid applies the current bidder's action and returns the updated
// round.
//
// The opening bidder is not allowed to pass: a pass as the very first
// action is converted into the forced minimum bid (MinOpeningBid, Nose).
// Any later pass is recorded as a true pass and leaves NextMin alone.
func (r BetRound) PlaceBid(action BidAction) (BetRound, error) {
	if r.IsFinished() {
		return r, ErrBiddingFinished
	}

	entry := Bid{Seat: r.CurrentBidder}
	nextMin := r.NextMin

	switch {
	case action.Pass && len(r.Bids) == 0:
		// Forced opening: someone must name a contract.
		entry.Amount = r.NextMin
		entry.Trump = SuitNose
		nextMin = entry.Amount + 1
	case action.Pass:
		entry.Pass = true
	default:
		if action.Amount < r.NextMin {
			return r, ErrBidTooLow
		}
		if action.Amount > TotalPoints {
			return r, ErrBidTooHigh
		}
		entry.Amount = action.Amount
		entry.Trump = action.Trump
		nextMin = action.Amount + 1
	}

	bids := make([]Bid, 0, len(r.Bids)+1)
	bids = append(bids, entry)
	bids = append(bids, r.Bids...)

	return BetRound{
		Hands:         r.Hands,
		Bids:          bids,
		NextMin:       nextMin,
		CurrentBidder: (r.CurrentBidder + 1) % len(r.Hands),
	}, nil
}
