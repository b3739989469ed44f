package bot

import (
	"errors"

	"fiftysix/internal/domain"
)

// Agent is an autonomous player occupying a seat.
type Agent struct {
	ID       string
	Name     string
	Seat     int
	Strategy Brain
}

var ErrNotAgentTurn = errors.New("not the agent's turn")

// Act asks the agent for its move in the current phase. The caller is
// expected to check turn order first; acting out of turn is an error.
func (a *Agent) Act(game *domain.Game) (Move, error) {
	if game.CurrentTurnSeat() != a.Seat {
		return Move{}, ErrNotAgentTurn
	}

	switch game.Phase {
	case domain.PhaseBidding:
		action, err := a.Strategy.ChooseBid(game, a.Seat)
		if err != nil {
			return Move{}, err
		}
		return Move{Bid: &action}, nil
	case domain.PhasePlaying:
		card, err := a.Strategy.ChooseCard(game, a.Seat)
		if err != nil {
			return Move{}, err
		}
		return Move{Card: &card}, nil
	default:
		return Move{}, errors.New("no move to make in phase " + string(game.Phase))
	}
}

// OnGameEvent forwards a round event to the strategy.
func (a *Agent) OnGameEvent(event interface{}) {
	a.Strategy.OnEvent(event)
}
