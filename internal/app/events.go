package app

import "fiftysix/internal/domain"

// EventKind identifies emitted round events for adapter dispatch.
type EventKind string

const (
	EventHandDealt      EventKind = "hand_dealt"
	EventBiddingStarted EventKind = "bidding_started"
	EventBidPlaced      EventKind = "bid_placed"
	EventBiddingEnded   EventKind = "bidding_ended"
	EventCardPlayed     EventKind = "card_played"
	EventTrickWon       EventKind = "trick_won"
	EventRoundEnded     EventKind = "round_ended"
)

// Event is a round event with optional targeted recipient seats. The
// adapter owning the table maps seats to connected users; an empty
// RecipientSeats means broadcast.
type Event struct {
	Kind           EventKind
	Payload        any
	RecipientSeats []int
}

// HandDealtPayload is sent privately to each seat after the deal.
type HandDealtPayload struct {
	Seat int           `json:"seat"`
	Hand []domain.Card `json:"hand"`
}

type BiddingStartedPayload struct {
	DealerSeat      int `json:"dealer_seat"`
	FirstBidderSeat int `json:"first_bidder_seat"`
	MinBid          int `json:"min_bid"`
}

// BidPlacedPayload reports the recorded bid entry, which can differ from
// the submitted action: an opening pass is converted into the forced
// minimum bid and flagged as such.
type BidPlacedPayload struct {
	Seat           int         `json:"seat"`
	Pass           bool        `json:"pass"`
	Amount         int         `json:"amount,omitempty"`
	Trump          domain.Suit `json:"trump,omitempty"`
	Forced         bool        `json:"forced,omitempty"`
	NextBidderSeat int         `json:"next_bidder_seat"`
	NextMin        int         `json:"next_min"`
}

type BiddingEndedPayload struct {
	ContractSeat   int         `json:"contract_seat"`
	ContractAmount int         `json:"contract_amount"`
	Trump          domain.Suit `json:"trump"`
	FirstLeadSeat  int         `json:"first_lead_seat"`
}

type CardPlayedPayload struct {
	Seat          int         `json:"seat"`
	Card          domain.Card `json:"card"`
	NextTurnSeat  int         `json:"next_turn_seat"`
	TrickFinished bool        `json:"trick_finished"`
}

type TrickWonPayload struct {
	Seat       int         `json:"seat"`
	Card       domain.Card `json:"card"`
	Points     int         `json:"points"`
	TricksLeft int         `json:"tricks_left"`
}

type RoundEndedPayload struct {
	Team0Points    int         `json:"team0_points"`
	Team1Points    int         `json:"team1_points"`
	ContractSeat   int         `json:"contract_seat"`
	ContractAmount int         `json:"contract_amount"`
	Trump          domain.Suit `json:"trump"`
	ContractMade   bool        `json:"contract_made"`
	WinningTeam    int         `json:"winning_team"`
}
