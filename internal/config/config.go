package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// StakeTier is a table stake level. The stake is the chip amount each
// seat commits to the round; the winning team splits the pot.
type StakeTier struct {
	ID    string `json:"id"`
	Stake int64  `json:"stake"`
}

type GameConfig struct {
	DefaultTier string      `json:"default_tier"`
	Tiers       []StakeTier `json:"tiers"`

	TurnDurationSeconds    int `json:"turn_duration_seconds"`
	BidDurationSeconds     int `json:"bid_duration_seconds"`
	EndOfRoundDelaySeconds int `json:"end_of_round_delay_seconds"`

	// BotAutoFillDelaySeconds is how long a lobby waits for humans before
	// bots take the empty seats.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotMoveDelayTicks paces bot moves so the table reads naturally.
	BotMoveDelayTicks int `json:"bot_move_delay_ticks"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetStake returns the stake for a given tier ID, or the default tier's
// stake when the ID is empty or unknown.
func GetStake(tierID string) int64 {
	if cfg == nil {
		return 100
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier.Stake
		}
	}
	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier.Stake
		}
	}
	return 100
}

// TurnDurationOrDefault returns the configured play-turn clock, with a
// sane floor when config is missing.
func TurnDurationOrDefault() int {
	if cfg == nil || cfg.TurnDurationSeconds <= 0 {
		return 20
	}
	return cfg.TurnDurationSeconds
}

// BidDurationOrDefault returns the configured bidding clock.
func BidDurationOrDefault() int {
	if cfg == nil || cfg.BidDurationSeconds <= 0 {
		return 15
	}
	return cfg.BidDurationSeconds
}
