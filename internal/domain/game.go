package domain

// Phase represents the lifecycle stage of a table round.
type Phase string

const (
	// PhaseLobby is the pre-game state where players take seats.
	PhaseLobby Phase = "lobby"
	// PhaseBidding is the bet round: seats bid in turn for the contract.
	PhaseBidding Phase = "bidding"
	// PhasePlaying is the trick-play phase.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after the last trick has been scored.
	PhaseEnded Phase = "ended"
)

// Contract is the resolved outcome of a bet round: the highest bid and
// the seat that made it. Its trump governs the whole play phase.
type Contract struct {
	Seat   int
	Amount int
	Trump  Suit
}

// Game aggregates the state of one table round as it moves from bidding
// through play to scoring. Bets and Round are value snapshots; every
// transition swaps in a fresh value rather than mutating in place.
type Game struct {
	Phase       Phase
	PlayerCount int
	// DealerSeat rotates between rounds; bidding opens to its left.
	DealerSeat int
	Bets       *BetRound
	Round      *PlayRound
	Contract   *Contract
}

// CurrentTurnSeat returns the seat due to act in the current phase, or -1
// when no seat holds the turn.
func (g *Game) CurrentTurnSeat() int {
	switch g.Phase {
	case PhaseBidding:
		if g.Bets != nil {
			return g.Bets.CurrentBidder
		}
	case PhasePlaying:
		if g.Round != nil {
			return g.Round.CurrentTrick().NextSeat
		}
	}
	return -1
}

// LowestAvailableSeat returns the first free seat index (0-based). If the
// table is full, returns 0.
func LowestAvailableSeat(seats *[4]string) int {
	for i := 0; i < len(seats); i++ {
		if seats[i] == "" {
			return i
		}
	}
	return 0
}
