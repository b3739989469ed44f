package domain

import (
	"math/rand"
	"sort"
)

// NewDeck returns the full 48-card double deck in deterministic generation
// order. Callers that need a random order shuffle before dealing.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := RankQueen; r <= RankJack; r++ {
			deck = append(deck, Card{Suit: s, Rank: r}, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Deal shuffles a fresh deck with the provided rng and distributes it
// round-robin, one card at a time, into playerCount hands. The rng is
// caller-owned so deals can be made deterministic in tests.
func Deal(rng *rand.Rand, playerCount int) ([][]Card, error) {
	if playerCount <= 0 || DeckSize%playerCount != 0 {
		return nil, ErrUnevenDeal
	}

	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	handSize := DeckSize / playerCount
	hands := make([][]Card, playerCount)
	for i := range hands {
		hands[i] = make([]Card, 0, handSize)
	}
	for i, c := range deck {
		hands[i%playerCount] = append(hands[i%playerCount], c)
	}
	return hands, nil
}

// SortHand orders a hand by suit, then ascending rank strength.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit != cards[j].Suit {
			return cards[i].Suit < cards[j].Suit
		}
		return cards[i].Rank < cards[j].Rank
	})
}
