package bot

import botinternal "fiftysix/internal/bot/internal"

// BotTuning collects the knobs shared by all strategies.
type BotTuning struct {
	Bid botinternal.BidWeights

	// MaxBid caps what a bot will ever name, leaving slack for the rare
	// hand the estimator overrates.
	MaxBid int

	// RaiseMargin is the strength surplus over the running minimum a bot
	// needs before outbidding an opponent.
	RaiseMargin int
}

// DefaultTuning weighs trump length heaviest: with twelve tricks and a
// double deck, long trump decides far more tricks than stray honours.
var DefaultTuning = BotTuning{
	Bid: botinternal.BidWeights{
		TrumpCardValue: 3.2,
		JackValue:      2.4,
		NineValue:      1.6,
		TopCardValue:   0.8,
		VoidSuitValue:  2.0,
		LongSuitBonus:  1.2,
	},
	MaxBid:      44,
	RaiseMargin: 2,
}
