package bot

import (
	"fiftysix/internal/domain"
)

// Move is a bot decision. Exactly one field is set, matching the phase
// the move was requested in.
type Move struct {
	Bid  *domain.BidAction
	Card *domain.Card
}

// Brain is the interface all bot strategies implement. ChooseBid and
// ChooseCard must return legal moves for the seat whose turn it is;
// OnEvent feeds the strategy the round events it wants to observe.
type Brain interface {
	ChooseBid(game *domain.Game, seat int) (domain.BidAction, error)
	ChooseCard(game *domain.Game, seat int) (domain.Card, error)
	OnEvent(event interface{})
}
