package brain

import (
	"fiftysix/internal/domain"
)

// Memory is a bot's private count of the double deck. Every distinct
// card exists twice, so knowledge is a count of seen copies rather than
// a single owner, plus per-seat void marks inferred from play.
type Memory struct {
	seen  [24]int // copies observed on the table
	mine  [24]int // copies currently in the bot's own hand
	voids [4]map[domain.Suit]bool
}

// NewMemory returns an empty memory for a fresh round.
func NewMemory() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears all counts and void marks.
func (m *Memory) Reset() {
	m.seen = [24]int{}
	m.mine = [24]int{}
	for seat := range m.voids {
		m.voids[seat] = make(map[domain.Suit]bool)
	}
}

// MarkMine replaces the memory's view of the bot's own hand.
func (m *Memory) MarkMine(hand []domain.Card) {
	m.mine = [24]int{}
	for _, c := range hand {
		m.mine[cardIndex(c)]++
	}
}

// RecordPlay counts a played card and infers a void when the seat could
// not follow the lead suit. The lead suit is empty for the lead play.
func (m *Memory) RecordPlay(seat int, card domain.Card, lead domain.Suit) {
	idx := cardIndex(card)
	if m.seen[idx] < 2 {
		m.seen[idx]++
	}
	if m.mine[idx] > 0 {
		m.mine[idx]--
	}
	if lead != "" && card.Suit != lead && seat >= 0 && seat < len(m.voids) {
		m.voids[seat][lead] = true
	}
}

// Unseen returns how many copies of the card are neither played nor in
// the bot's own hand.
func (m *Memory) Unseen(c domain.Card) int {
	idx := cardIndex(c)
	left := 2 - m.seen[idx] - m.mine[idx]
	if left < 0 {
		return 0
	}
	return left
}

// UnseenInSuit counts unseen copies across a whole suit.
func (m *Memory) UnseenInSuit(s domain.Suit) int {
	total := 0
	for r := domain.RankQueen; r <= domain.RankJack; r++ {
		total += m.Unseen(domain.Card{Suit: s, Rank: r})
	}
	return total
}

// IsSuitBoss reports whether no unseen card of the same suit outranks c.
// A boss card still loses to trump from a void hand; callers combine
// this with IsVoid and UnseenInSuit on the trump suit.
func (m *Memory) IsSuitBoss(c domain.Card) bool {
	for r := c.Rank + 1; r <= domain.RankJack; r++ {
		if m.Unseen(domain.Card{Suit: c.Suit, Rank: r}) > 0 {
			return false
		}
	}
	return true
}

// IsVoid reports whether the seat has been observed to be out of a suit.
func (m *Memory) IsVoid(seat int, s domain.Suit) bool {
	if seat < 0 || seat >= len(m.voids) {
		return false
	}
	return m.voids[seat][s]
}

func cardIndex(c domain.Card) int {
	suit := 0
	for i, s := range domain.Suits {
		if s == c.Suit {
			suit = i
			break
		}
	}
	return suit*6 + int(c.Rank)
}
