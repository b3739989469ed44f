package bot

import (
	"fmt"
)

// BotLevel selects a strategy implementation.
type BotLevel int

const (
	BotLevelBasic BotLevel = iota
	BotLevelCounting
)

// NewBrain creates an AI brain for the given level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelBasic:
		return &BasicBot{}, nil
	case BotLevelCounting:
		return NewCountingBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// LevelFromDifficulty maps an identity difficulty string to a level.
// Unknown strings fall back to the basic bot.
func LevelFromDifficulty(difficulty string) BotLevel {
	switch difficulty {
	case "hard":
		return BotLevelCounting
	default:
		return BotLevelBasic
	}
}
