package internal

import (
	"fiftysix/internal/domain"
)

// BidWeights tunes how a hand is converted into a point estimate for
// bidding. Values are points, not probabilities.
type BidWeights struct {
	TrumpCardValue float64 // each card of the candidate trump suit
	JackValue      float64 // each jack outside trump
	NineValue      float64 // each nine outside trump
	TopCardValue   float64 // each off-trump ace or ten
	VoidSuitValue  float64 // each suit the hand is void in
	LongSuitBonus  float64 // each trump card beyond the fourth
}

// SuitCounts tallies the hand by suit.
func SuitCounts(hand []domain.Card) map[domain.Suit]int {
	counts := make(map[domain.Suit]int, len(domain.Suits))
	for _, c := range hand {
		counts[c.Suit]++
	}
	return counts
}

// HandStrength estimates the points the hand would capture with the
// given trump suit.
func HandStrength(hand []domain.Card, trump domain.Suit, w BidWeights) float64 {
	counts := SuitCounts(hand)

	strength := float64(counts[trump]) * w.TrumpCardValue
	if counts[trump] > 4 {
		strength += float64(counts[trump]-4) * w.LongSuitBonus
	}
	for _, s := range domain.Suits {
		if counts[s] == 0 {
			strength += w.VoidSuitValue
		}
	}
	for _, c := range hand {
		if c.Suit == trump {
			continue
		}
		switch c.Rank {
		case domain.RankJack:
			strength += w.JackValue
		case domain.RankNine:
			strength += w.NineValue
		case domain.RankAce, domain.RankTen:
			strength += w.TopCardValue
		}
	}
	return strength
}

// BestTrump picks the trump suit maximising HandStrength. Ties break
// toward the longer suit, then toward suit declaration order.
func BestTrump(hand []domain.Card, w BidWeights) (domain.Suit, float64) {
	counts := SuitCounts(hand)

	best := domain.Suits[0]
	bestStrength := HandStrength(hand, best, w)
	for _, s := range domain.Suits[1:] {
		strength := HandStrength(hand, s, w)
		if strength > bestStrength || (strength == bestStrength && counts[s] > counts[best]) {
			best = s
			bestStrength = strength
		}
	}
	return best, bestStrength
}
