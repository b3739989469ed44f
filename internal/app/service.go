package app

import (
	"errors"
	"math/rand"
	"time"

	"fiftysix/internal/domain"
)

// Service contains the 56 use-cases operating on domain state: dealing a
// round, driving the bet round to a contract and playing it out.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default. Tests inject a fixed seed to make deals reproducible.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrNotBidding = errors.New("round not in bidding phase")
	ErrNotPlaying = errors.New("round not in playing phase")
	ErrNoContract = errors.New("round has no contract")
	ErrBadSeat    = errors.New("seat index out of range")
)

// StartRound deals a fresh round and opens bidding at the seat left of
// the dealer. Hand events are targeted at their owning seats only.
func (s *Service) StartRound(dealerSeat int) (*domain.Game, []Event, error) {
	if dealerSeat < 0 || dealerSeat >= PlayersPerTable {
		return nil, nil, ErrBadSeat
	}

	hands, err := domain.Deal(s.rng, PlayersPerTable)
	if err != nil {
		return nil, nil, err
	}
	for seat := range hands {
		domain.SortHand(hands[seat])
	}

	firstBidder := (dealerSeat + 1) % PlayersPerTable
	bets := domain.NewBetRound(hands, firstBidder)

	game := &domain.Game{
		Phase:       domain.PhaseBidding,
		PlayerCount: PlayersPerTable,
		DealerSeat:  dealerSeat,
		Bets:        &bets,
	}

	events := make([]Event, 0, PlayersPerTable+1)
	for seat, hand := range hands {
		events = append(events, Event{
			Kind:           EventHandDealt,
			Payload:        HandDealtPayload{Seat: seat, Hand: hand},
			RecipientSeats: []int{seat},
		})
	}
	events = append(events, Event{
		Kind: EventBiddingStarted,
		Payload: BiddingStartedPayload{
			DealerSeat:      dealerSeat,
			FirstBidderSeat: firstBidder,
			MinBid:          domain.MinOpeningBid,
		},
	})

	return game, events, nil
}

// PlaceBid applies a seat's bid action. Once every seat has acted the
// contract resolves to the highest bid, the bidder leads the first trick
// and the game moves to the playing phase.
func (s *Service) PlaceBid(game *domain.Game, seat int, action domain.BidAction) ([]Event, error) {
	if game.Phase != domain.PhaseBidding || game.Bets == nil {
		return nil, ErrNotBidding
	}
	if seat != game.Bets.CurrentBidder {
		return nil, domain.ErrOutOfTurn
	}

	updated, err := game.Bets.PlaceBid(action)
	if err != nil {
		return nil, err
	}
	game.Bets = &updated

	entry := updated.Bids[0]
	events := []Event{{
		Kind: EventBidPlaced,
		Payload: BidPlacedPayload{
			Seat:           entry.Seat,
			Pass:           entry.Pass,
			Amount:         entry.Amount,
			Trump:          entry.Trump,
			Forced:         action.Pass && !entry.Pass,
			NextBidderSeat: updated.CurrentBidder,
			NextMin:        updated.NextMin,
		},
	}}

	if !updated.IsFinished() {
		return events, nil
	}

	// The bid sequence is strictly increasing, so the newest non-pass
	// entry is the winning contract. One always exists: the opening
	// bidder cannot pass.
	contract := resolveContract(updated.Bids)
	round := domain.NewPlayRound(updated.Hands, contract.Seat)

	game.Contract = &contract
	game.Round = &round
	game.Phase = domain.PhasePlaying

	events = append(events, Event{
		Kind: EventBiddingEnded,
		Payload: BiddingEndedPayload{
			ContractSeat:   contract.Seat,
			ContractAmount: contract.Amount,
			Trump:          contract.Trump,
			FirstLeadSeat:  contract.Seat,
		},
	})
	return events, nil
}

// PlayCard applies a seat's card to the current trick. Legality is
// enforced by the engine; an illegal move is returned unapplied.
func (s *Service) PlayCard(game *domain.Game, seat int, card domain.Card) ([]Event, error) {
	if game.Phase != domain.PhasePlaying || game.Round == nil {
		return nil, ErrNotPlaying
	}
	if game.Contract == nil {
		return nil, ErrNoContract
	}

	trump := game.Contract.Trump
	prevRemaining := game.Round.Remaining

	updated, err := game.Round.Play(seat, card, trump)
	if err != nil {
		return nil, err
	}
	game.Round = &updated

	trickFinished := updated.Remaining < prevRemaining
	nextTurn := -1
	if !updated.Finished() {
		nextTurn = updated.CurrentTrick().NextSeat
	}

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Seat:          seat,
			Card:          card,
			NextTurnSeat:  nextTurn,
			TrickFinished: trickFinished,
		},
	}}

	if trickFinished {
		finished := updated.Tricks[0]
		if !updated.Finished() {
			finished = updated.Tricks[1]
		}
		winner, werr := finished.WinningPlay(trump)
		if werr != nil {
			return nil, werr
		}
		events = append(events, Event{
			Kind: EventTrickWon,
			Payload: TrickWonPayload{
				Seat:       winner.Seat,
				Card:       winner.Card,
				Points:     finished.Score,
				TricksLeft: updated.Remaining,
			},
		})
	}

	if updated.Finished() {
		endEvent, eerr := s.settleRound(game)
		if eerr != nil {
			return nil, eerr
		}
		events = append(events, endEvent)
	}

	return events, nil
}

// settleRound scores the finished round against the contract and closes
// the game. The bidding team wins only by capturing at least the
// contract amount.
func (s *Service) settleRound(game *domain.Game) (Event, error) {
	trump := game.Contract.Trump
	team0, team1, err := game.Round.Scores(trump)
	if err != nil {
		return Event{}, err
	}

	contractTeam := game.Contract.Seat % 2
	captured := team0
	if contractTeam == 1 {
		captured = team1
	}
	made := captured >= game.Contract.Amount
	winningTeam := contractTeam
	if !made {
		winningTeam = 1 - contractTeam
	}

	game.Phase = domain.PhaseEnded

	return Event{
		Kind: EventRoundEnded,
		Payload: RoundEndedPayload{
			Team0Points:    team0,
			Team1Points:    team1,
			ContractSeat:   game.Contract.Seat,
			ContractAmount: game.Contract.Amount,
			Trump:          trump,
			ContractMade:   made,
			WinningTeam:    winningTeam,
		},
	}, nil
}

func resolveContract(bids []domain.Bid) domain.Contract {
	for _, b := range bids {
		if !b.Pass {
			return domain.Contract{Seat: b.Seat, Amount: b.Amount, Trump: b.Trump}
		}
	}
	// Unreachable: the forced opening bid guarantees a non-pass entry.
	return domain.Contract{Seat: -1}
}
