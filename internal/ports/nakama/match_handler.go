package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"fiftysix/internal/app"
	"fiftysix/internal/bot"
	"fiftysix/internal/config"
	"fiftysix/internal/domain"
	"fiftysix/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match
// handler: seat assignments, connected presences, bot agents and the
// current round.
type MatchState struct {
	Seats      [4]string `json:"seats"` // user IDs, empty string means open
	OwnerSeat  int       `json:"owner_seat"`
	DealerSeat int       `json:"dealer_seat"` // rotates left each round
	Tick       int64     `json:"tick"`

	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"` // nil while in lobby

	BotsEnabled          bool  `json:"bots_enabled"`
	BotMinDelay          int   `json:"bot_min_delay"`
	BotMaxDelay          int   `json:"bot_max_delay"`
	BotAutoFillDelay     int   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64 `json:"bot_wait_until"`
	LastSinglePlayerTick int64 `json:"last_single_player_tick"`

	Bots    map[string]*bot.Agent `json:"-"`
	Economy ports.EconomyPort     `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !ms.isBotUserId(seat) {
			count++
		}
	}
	return count
}

// isBotUserId covers both the provisioned bot pool and throwaway agents
// minted for this match.
func (ms *MatchState) isBotUserId(userId string) bool {
	if userId == "" {
		return false
	}
	if bot.IsBot(userId) {
		return true
	}
	_, ok := ms.Bots[userId]
	return ok
}

func (ms *MatchState) isHumanSeat(seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(ms.Seats) {
		return false
	}
	userId := ms.Seats[seatIndex]
	return userId != "" && !ms.isBotUserId(userId)
}

func (ms *MatchState) findFirstHumanSeat() int {
	for i := range ms.Seats {
		if ms.isHumanSeat(i) {
			return i
		}
	}
	return -1
}

func (ms *MatchState) seatOf(userID string) int {
	for i, id := range ms.Seats {
		if id == userID {
			return i
		}
	}
	return -1
}

type labelPayload struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

type matchHandler struct{}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: initializing table.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:       time.Now().Unix(),
		Presences:  make(map[string]runtime.Presence),
		App:        app.NewService(nil),
		OwnerSeat:  -1,
		DealerSeat: -1,
		Bots:       make(map[string]*bot.Agent),
		Economy:    NewNakamaEconomyAdapter(nk),
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["fiftysix_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["fiftysix_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["fiftysix_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if cfg := config.GetGameConfig(); cfg != nil && cfg.BotAutoFillDelaySeconds > 0 {
		state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	labelBytes, err := json.Marshal(labelPayload{
		Open:  state.GetOpenSeatsCount(),
		Game:  "fiftysix",
		Phase: "lobby",
	})
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat, or a bot to displace while
	// still in the lobby.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if matchState.isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		if matchState.GetOpenSeatsCount() > 0 {
			seat := domain.LowestAvailableSeat(&matchState.Seats)
			matchState.Seats[seat] = p.GetUserId()
			assigned = true
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserId := range matchState.Seats {
				if matchState.isBotUserId(seatUserId) {
					logger.Info("MatchJoin: replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: user %s joined but no seat was available.", p.GetUserId())
		}
	}

	if !matchState.isHumanSeat(matchState.OwnerSeat) {
		matchState.OwnerSeat = matchState.findFirstHumanSeat()
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserId := range matchState.Seats {
			if seatUserId == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: user %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	newOwnerSeat := matchState.findFirstHumanSeat()
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
	}

	if matchState.findFirstHumanSeat() == -1 {
		logger.Info("MatchLeave: terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound:
			mh.handleStartRound(ctx, matchState, dispatcher, logger, msg)
		case OpPlaceBid:
			mh.handlePlaceBid(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Fill a solo human's lobby with bots after the configured wait.
	if state.Game == nil {
		humanCount := state.GetHumanPlayerCount()
		if humanCount == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					agent, err := newBotAgent(identity, i)
					if err != nil {
						logger.Error("processBots: failed to create bot agent: %v", err)
						continue
					}
					state.Seats[i] = agent.ID
					state.Bots[agent.ID] = agent
					logger.Info("processBots: added bot %s (%s) to seat %d", identity.Username, agent.ID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastSnapshot(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// Drive the bot whose turn it is, after a short human-feeling delay.
	turnSeat := state.Game.CurrentTurnSeat()
	if turnSeat < 0 {
		state.BotWaitUntil = 0
		return
	}
	currentUserID := state.Seats[turnSeat]
	if !state.isBotUserId(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists || agent.Seat != turnSeat {
		identity, _ := bot.GetBotConfig(currentUserID)
		if identity.UserID == "" {
			identity.UserID = currentUserID
		}
		var err error
		agent, err = newBotAgent(identity, turnSeat)
		if err != nil {
			logger.Error("processBots: failed to create fallback agent: %v", err)
			return
		}
		state.Bots[currentUserID] = agent
	}

	move, err := agent.Act(state.Game)
	if err != nil {
		logger.Error("processBots: bot %s failed to choose a move: %v", currentUserID, err)
		return
	}

	var events []app.Event
	switch {
	case move.Bid != nil:
		events, err = state.App.PlaceBid(state.Game, turnSeat, *move.Bid)
	case move.Card != nil:
		events, err = state.App.PlayCard(state.Game, turnSeat, *move.Card)
	default:
		return
	}
	if err != nil {
		logger.Error("processBots: bot %s move rejected: %v", currentUserID, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func newBotAgent(identity bot.BotIdentity, seat int) (*bot.Agent, error) {
	brain, err := bot.NewBrain(bot.LevelFromDifficulty(identity.Difficulty))
	if err != nil {
		return nil, err
	}
	return &bot.Agent{
		ID:       identity.UserID,
		Name:     identity.DisplayName,
		Seat:     seat,
		Strategy: brain,
	}, nil
}

func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	seats := make([]SeatState, 0, len(state.Seats))
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}

		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if agent, exists := state.Bots[userId]; exists && agent.Name != "" {
			displayName = agent.Name
		}

		cardsLeft := 0
		if state.Game != nil && state.Game.Round != nil && i < len(state.Game.Round.Hands) {
			cardsLeft = len(state.Game.Round.Hands[i])
		}

		seats = append(seats, SeatState{
			UserID:      userId,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       state.isBotUserId(userId),
			DisplayName: displayName,
			CardsLeft:   cardsLeft,
		})
	}

	phase := domain.PhaseLobby
	if state.Game != nil {
		phase = state.Game.Phase
	}
	snapshot := MatchSnapshot{
		Seats:      seats,
		OwnerSeat:  state.OwnerSeat,
		DealerSeat: state.DealerSeat,
		Phase:      phase,
		Tick:       state.Tick,
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastSnapshot: marshal failed: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, data, nil, nil, true)
}

func (mh *matchHandler) handleStartRound(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartRound: request from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartRound: user %s is not the owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.Game != nil && state.Game.Phase != domain.PhaseEnded {
		logger.Warn("StartRound: a round is already in progress.")
		return
	}
	if state.GetOccupiedSeatCount() < app.PlayersPerTable {
		logger.Warn("StartRound: cannot start with %d seats filled, need %d.", state.GetOccupiedSeatCount(), app.PlayersPerTable)
		return
	}

	state.DealerSeat = (state.DealerSeat + 1) % app.PlayersPerTable

	game, events, err := state.App.StartRound(state.DealerSeat)
	if err != nil {
		logger.Error("StartRound: failed to start round: %v", err)
		return
	}
	state.Game = game

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePlaceBid(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil {
		logger.Warn("handlePlaceBid: round not started.")
		return
	}

	var request PlaceBidRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlaceBid: failed to unmarshal request: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed bid request")
		return
	}

	events, err := state.App.PlaceBid(state.Game, senderSeat, request.Action())
	if err != nil {
		logger.Warn("handlePlaceBid: user %s (seat %d) bid rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil {
		logger.Warn("handlePlayCard: round not started.")
		return
	}

	var request PlayCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCard: failed to unmarshal request: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed play request")
		return
	}

	events, err := state.App.PlayCard(state.Game, senderSeat, request.Card)
	if err != nil {
		logger.Warn("handlePlayCard: user %s (seat %d) failed to play %s: %v", senderID, senderSeat, request.Card.DisplayName(), err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
}

// broadcastEvent dispatches an application event to the connected
// presences it targets and feeds it to the seated bot agents.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, data, err := encodeEvent(ev)
	if err != nil {
		logger.Error("broadcastEvent: %v", err)
		return
	}

	if ev.Kind == app.EventRoundEnded {
		mh.settleStakes(ctx, state, logger, ev.Payload.(app.RoundEndedPayload))
	}

	// Bots observe events through the same targeting rules as humans.
	for _, agent := range state.Bots {
		if len(ev.RecipientSeats) == 0 || containsSeat(ev.RecipientSeats, agent.Seat) {
			agent.OnGameEvent(ev.Payload)
		}
	}

	var recipients []runtime.Presence
	if len(ev.RecipientSeats) > 0 {
		for _, seat := range ev.RecipientSeats {
			if seat < 0 || seat >= len(state.Seats) {
				continue
			}
			if p, ok := state.Presences[state.Seats[seat]]; ok {
				recipients = append(recipients, p)
			}
		}

		// Targeted events with no connected recipient (bot seats) must
		// not leak to the rest of the table.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)

	if ev.Kind == app.EventRoundEnded {
		state.Game = nil
		mh.updateLabel(state, dispatcher, logger)
	}
}

// settleStakes moves the table stake from the losing team's humans to
// the winning team's humans. Bot wallets are never touched.
func (mh *matchHandler) settleStakes(ctx context.Context, state *MatchState, logger runtime.Logger, payload app.RoundEndedPayload) {
	if state.Economy == nil {
		return
	}

	stake := config.GetStake("")
	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)

	updates := make([]ports.WalletUpdate, 0, len(state.Seats))
	for seat, userID := range state.Seats {
		if userID == "" || state.isBotUserId(userID) {
			continue
		}
		amount := stake
		if seat%2 != payload.WinningTeam {
			amount = -stake
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: userID,
			Amount: amount,
			Metadata: map[string]interface{}{
				"match_id": matchID,
				"reason":   "round_settlement",
			},
		})
	}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("settleStakes: failed to update balances: %v", err)
	}
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}

// sendError sends a GameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	data, err := json.Marshal(GameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("sendError: marshal failed: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: presence not found for %s", userID)
		return
	}
	dispatcher.BroadcastMessage(OpGameError, data, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = string(state.Game.Phase)
	}

	labelBytes, err := json.Marshal(labelPayload{
		Open:  state.GetOpenSeatsCount(),
		Game:  "fiftysix",
		Phase: phase,
	})
	if err != nil {
		logger.Error("updateLabel: marshal failed: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: update failed: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
