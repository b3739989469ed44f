package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fiftysix/internal/domain"
)

func TestMemoryCountsCopies(t *testing.T) {
	m := NewMemory()
	jack := domain.Card{Suit: domain.SuitHearts, Rank: domain.RankJack}

	assert.Equal(t, 2, m.Unseen(jack))

	m.RecordPlay(1, jack, domain.SuitHearts)
	assert.Equal(t, 1, m.Unseen(jack))

	m.RecordPlay(2, jack, domain.SuitHearts)
	assert.Equal(t, 0, m.Unseen(jack))

	// A third sighting is impossible; the count stays clamped.
	m.RecordPlay(3, jack, domain.SuitHearts)
	assert.Equal(t, 0, m.Unseen(jack))
}

func TestMemoryOwnHandIsNotUnseen(t *testing.T) {
	m := NewMemory()
	nine := domain.Card{Suit: domain.SuitSpades, Rank: domain.RankNine}

	m.MarkMine([]domain.Card{nine})
	assert.Equal(t, 1, m.Unseen(nine))

	m.MarkMine([]domain.Card{nine, nine})
	assert.Equal(t, 0, m.Unseen(nine))
}

func TestMemorySuitBoss(t *testing.T) {
	m := NewMemory()
	nine := domain.Card{Suit: domain.SuitClubs, Rank: domain.RankNine}
	jack := domain.Card{Suit: domain.SuitClubs, Rank: domain.RankJack}

	require.False(t, m.IsSuitBoss(nine))
	assert.True(t, m.IsSuitBoss(jack))

	// Once both jacks are gone the nine is the best club left.
	m.RecordPlay(0, jack, domain.SuitClubs)
	m.RecordPlay(1, jack, domain.SuitClubs)
	assert.True(t, m.IsSuitBoss(nine))
}

func TestMemoryVoidInference(t *testing.T) {
	m := NewMemory()
	heart := domain.Card{Suit: domain.SuitHearts, Rank: domain.RankKing}
	spade := domain.Card{Suit: domain.SuitSpades, Rank: domain.RankQueen}

	// Following suit reveals nothing.
	m.RecordPlay(1, heart, domain.SuitHearts)
	assert.False(t, m.IsVoid(1, domain.SuitHearts))

	// Discarding off-suit marks the seat void in the lead suit.
	m.RecordPlay(2, spade, domain.SuitHearts)
	assert.True(t, m.IsVoid(2, domain.SuitHearts))
	assert.False(t, m.IsVoid(2, domain.SuitSpades))

	// Leading has no lead suit to be void in.
	m.RecordPlay(3, spade, "")
	assert.False(t, m.IsVoid(3, domain.SuitSpades))
}

func TestMemoryUnseenInSuit(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, 12, m.UnseenInSuit(domain.SuitDiamonds))

	m.MarkMine([]domain.Card{
		{Suit: domain.SuitDiamonds, Rank: domain.RankAce},
		{Suit: domain.SuitDiamonds, Rank: domain.RankAce},
	})
	m.RecordPlay(0, domain.Card{Suit: domain.SuitDiamonds, Rank: domain.RankTen}, domain.SuitDiamonds)
	assert.Equal(t, 9, m.UnseenInSuit(domain.SuitDiamonds))
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory()
	card := domain.Card{Suit: domain.SuitHearts, Rank: domain.RankTen}

	m.RecordPlay(0, card, domain.SuitSpades)
	require.True(t, m.IsVoid(0, domain.SuitSpades))

	m.Reset()
	assert.Equal(t, 2, m.Unseen(card))
	assert.False(t, m.IsVoid(0, domain.SuitSpades))
}
