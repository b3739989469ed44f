package nakama

import (
	"encoding/json"
	"fmt"

	"fiftysix/internal/app"
	"fiftysix/internal/domain"
)

// Client request payloads. Everything on the wire is JSON; card fields
// reuse the domain encoding so clients and server agree by construction.

// PlaceBidRequest carries a seat's bid action. Pass true ignores the
// other fields.
type PlaceBidRequest struct {
	Pass   bool        `json:"pass"`
	Amount int         `json:"amount"`
	Trump  domain.Suit `json:"trump"`
}

func (r PlaceBidRequest) Action() domain.BidAction {
	if r.Pass {
		return domain.PassAction()
	}
	return domain.BidOf(r.Amount, r.Trump)
}

// PlayCardRequest carries the card a seat wants to play.
type PlayCardRequest struct {
	Card domain.Card `json:"card"`
}

// GameErrorEvent is sent privately to the user whose action failed.
type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SeatState describes one occupied seat in a snapshot.
type SeatState struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
	DisplayName string `json:"display_name"`
	CardsLeft   int    `json:"cards_left"`
}

// MatchSnapshot is broadcast whenever table membership changes.
type MatchSnapshot struct {
	Seats      []SeatState  `json:"seats"`
	OwnerSeat  int          `json:"owner_seat"`
	DealerSeat int          `json:"dealer_seat"`
	Phase      domain.Phase `json:"phase"`
	Tick       int64        `json:"tick"`
}

// eventOpCode maps an application event to its wire op code.
func eventOpCode(kind app.EventKind) (int64, error) {
	switch kind {
	case app.EventHandDealt:
		return OpHandDealt, nil
	case app.EventBiddingStarted:
		return OpBiddingStarted, nil
	case app.EventBidPlaced:
		return OpBidPlaced, nil
	case app.EventBiddingEnded:
		return OpBiddingEnded, nil
	case app.EventCardPlayed:
		return OpCardPlayed, nil
	case app.EventTrickWon:
		return OpTrickWon, nil
	case app.EventRoundEnded:
		return OpRoundEnded, nil
	default:
		return 0, fmt.Errorf("no op code for event kind %q", kind)
	}
}

// encodeEvent renders an application event for dispatch.
func encodeEvent(ev app.Event) (int64, []byte, error) {
	opCode, err := eventOpCode(ev.Kind)
	if err != nil {
		return 0, nil, err
	}
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal %s payload: %w", ev.Kind, err)
	}
	return opCode, data, nil
}
