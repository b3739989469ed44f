package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiftysix/internal/app"
	"fiftysix/internal/domain"
)

// Four agents play a complete round through the application service.
// Counting bots sit across from each other and observe every event the
// way a match adapter would forward them.
func TestAgentsCompleteRound(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		svc := app.NewService(rand.New(rand.NewSource(seed)))

		agents := make([]*Agent, 4)
		for seat := range agents {
			level := BotLevelBasic
			if seat%2 == 0 {
				level = BotLevelCounting
			}
			brain, err := NewBrain(level)
			require.NoError(t, err)
			agents[seat] = &Agent{
				ID:       GetBotIdentity(seat).UserID,
				Seat:     seat,
				Strategy: brain,
			}
		}

		dispatch := func(evs []app.Event) {
			for _, ev := range evs {
				if len(ev.RecipientSeats) == 0 {
					for _, a := range agents {
						a.OnGameEvent(ev.Payload)
					}
					continue
				}
				for _, seat := range ev.RecipientSeats {
					agents[seat].OnGameEvent(ev.Payload)
				}
			}
		}

		game, evs, err := svc.StartRound(int(seed) % 4)
		require.NoError(t, err)
		dispatch(evs)

		moves := 0
		for game.Phase == domain.PhaseBidding || game.Phase == domain.PhasePlaying {
			require.Less(t, moves, 100, "seed %d: round did not terminate", seed)
			seat := game.CurrentTurnSeat()
			require.GreaterOrEqual(t, seat, 0, "seed %d", seed)

			move, err := agents[seat].Act(game)
			require.NoError(t, err, "seed %d seat %d", seed, seat)

			switch {
			case move.Bid != nil:
				evs, err = svc.PlaceBid(game, seat, *move.Bid)
			case move.Card != nil:
				evs, err = svc.PlayCard(game, seat, *move.Card)
			default:
				t.Fatalf("seed %d: empty move from seat %d", seed, seat)
			}
			require.NoError(t, err, "seed %d seat %d", seed, seat)
			dispatch(evs)
			moves++
		}

		require.Equal(t, domain.PhaseEnded, game.Phase, "seed %d", seed)

		last := evs[len(evs)-1]
		require.Equal(t, app.EventRoundEnded, last.Kind)
		payload := last.Payload.(app.RoundEndedPayload)
		assert.Equal(t, domain.TotalPoints, payload.Team0Points+payload.Team1Points, "seed %d", seed)
		assert.Contains(t, []int{0, 1}, payload.WinningTeam)
	}
}

func TestAgentRefusesOutOfTurn(t *testing.T) {
	svc := app.NewService(rand.New(rand.NewSource(3)))
	game, _, err := svc.StartRound(0)
	require.NoError(t, err)

	brain, err := NewBrain(BotLevelBasic)
	require.NoError(t, err)
	agent := &Agent{ID: "bot", Seat: 3, Strategy: brain}

	// Seat 1 bids first after dealer 0.
	_, err = agent.Act(game)
	assert.ErrorIs(t, err, ErrNotAgentTurn)
}
