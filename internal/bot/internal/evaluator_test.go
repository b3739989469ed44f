package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fiftysix/internal/domain"
)

var testWeights = BidWeights{
	TrumpCardValue: 3.0,
	JackValue:      2.0,
	NineValue:      1.0,
	TopCardValue:   0.5,
	VoidSuitValue:  2.0,
	LongSuitBonus:  1.0,
}

func TestSuitCounts(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankJack},
		{Suit: domain.SuitHearts, Rank: domain.RankJack},
		{Suit: domain.SuitSpades, Rank: domain.RankNine},
	}
	counts := SuitCounts(hand)
	assert.Equal(t, 2, counts[domain.SuitHearts])
	assert.Equal(t, 1, counts[domain.SuitSpades])
	assert.Equal(t, 0, counts[domain.SuitClubs])
}

func TestHandStrengthPrefersLongTrump(t *testing.T) {
	longHearts := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankQueen},
		{Suit: domain.SuitHearts, Rank: domain.RankKing},
		{Suit: domain.SuitHearts, Rank: domain.RankTen},
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitHearts, Rank: domain.RankNine},
		{Suit: domain.SuitHearts, Rank: domain.RankJack},
	}

	asTrump := HandStrength(longHearts, domain.SuitHearts, testWeights)
	offTrump := HandStrength(longHearts, domain.SuitClubs, testWeights)
	assert.Greater(t, asTrump, offTrump)
}

func TestBestTrumpPicksDominantSuit(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitSpades, Rank: domain.RankJack},
		{Suit: domain.SuitSpades, Rank: domain.RankJack},
		{Suit: domain.SuitSpades, Rank: domain.RankNine},
		{Suit: domain.SuitSpades, Rank: domain.RankAce},
		{Suit: domain.SuitSpades, Rank: domain.RankTen},
		{Suit: domain.SuitHearts, Rank: domain.RankQueen},
	}

	suit, strength := BestTrump(hand, testWeights)
	assert.Equal(t, domain.SuitSpades, suit)
	assert.Greater(t, strength, 0.0)
}

func TestVoidSuitsAddStrength(t *testing.T) {
	twoSuiter := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankQueen},
		{Suit: domain.SuitHearts, Rank: domain.RankKing},
		{Suit: domain.SuitSpades, Rank: domain.RankQueen},
	}
	threeSuiter := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankQueen},
		{Suit: domain.SuitHearts, Rank: domain.RankKing},
		{Suit: domain.SuitClubs, Rank: domain.RankQueen},
		{Suit: domain.SuitSpades, Rank: domain.RankQueen},
	}

	a := HandStrength(twoSuiter, domain.SuitHearts, testWeights)
	b := HandStrength(threeSuiter, domain.SuitHearts, testWeights)
	assert.Greater(t, a, b)
}
