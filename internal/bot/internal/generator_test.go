package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiftysix/internal/domain"
)

func handOfSuit(s domain.Suit) []domain.Card {
	cards := make([]domain.Card, 0, 12)
	for r := domain.RankQueen; r <= domain.RankJack; r++ {
		cards = append(cards, domain.Card{Suit: s, Rank: r}, domain.Card{Suit: s, Rank: r})
	}
	return cards
}

func TestLegalCardsFollowsSuit(t *testing.T) {
	hands := [][]domain.Card{
		handOfSuit(domain.SuitHearts),
		{
			{Suit: domain.SuitHearts, Rank: domain.RankQueen},
			{Suit: domain.SuitSpades, Rank: domain.RankJack},
		},
		handOfSuit(domain.SuitClubs),
		handOfSuit(domain.SuitSpades),
	}
	// Pad the short hand so the deal is even.
	for len(hands[1]) < 12 {
		hands[1] = append(hands[1], domain.Card{Suit: domain.SuitDiamonds, Rank: domain.RankQueen})
	}

	round := domain.NewPlayRound(hands, 0)
	round, err := round.Play(0, domain.Card{Suit: domain.SuitHearts, Rank: domain.RankNine}, domain.SuitSpades)
	require.NoError(t, err)

	legal := LegalCards(round, 1, domain.SuitSpades)
	require.Len(t, legal, 1)
	assert.Equal(t, domain.SuitHearts, legal[0].Suit)
}

func TestLegalCardsEmptyOutOfTurn(t *testing.T) {
	hands := [][]domain.Card{
		handOfSuit(domain.SuitHearts),
		handOfSuit(domain.SuitDiamonds),
		handOfSuit(domain.SuitClubs),
		handOfSuit(domain.SuitSpades),
	}
	round := domain.NewPlayRound(hands, 0)

	assert.Empty(t, LegalCards(round, 2, domain.SuitSpades))
	assert.Len(t, LegalCards(round, 0, domain.SuitSpades), 12)
}

func TestLegalBidAmounts(t *testing.T) {
	hands := [][]domain.Card{
		handOfSuit(domain.SuitHearts),
		handOfSuit(domain.SuitDiamonds),
		handOfSuit(domain.SuitClubs),
		handOfSuit(domain.SuitSpades),
	}
	bets := domain.NewBetRound(hands, 0)

	amounts := LegalBidAmounts(bets)
	require.NotEmpty(t, amounts)
	assert.Equal(t, domain.MinOpeningBid, amounts[0])
	assert.Equal(t, domain.TotalPoints, amounts[len(amounts)-1])

	raised, err := bets.PlaceBid(domain.BidOf(50, domain.SuitHearts))
	require.NoError(t, err)
	amounts = LegalBidAmounts(raised)
	assert.Equal(t, []int{51, 52, 53, 54, 55, 56}, amounts)
}

func TestBeats(t *testing.T) {
	trump := domain.SuitSpades
	jackH := domain.Card{Suit: domain.SuitHearts, Rank: domain.RankJack}
	nineH := domain.Card{Suit: domain.SuitHearts, Rank: domain.RankNine}
	queenS := domain.Card{Suit: domain.SuitSpades, Rank: domain.RankQueen}
	kingC := domain.Card{Suit: domain.SuitClubs, Rank: domain.RankKing}

	assert.True(t, Beats(nineH, jackH, trump))
	assert.False(t, Beats(jackH, nineH, trump))
	assert.False(t, Beats(jackH, jackH, trump), "the standing duplicate keeps the trick")
	assert.True(t, Beats(jackH, queenS, trump))
	assert.False(t, Beats(jackH, kingC, trump))
}
