package internal

import (
	"fiftysix/internal/domain"
)

// LegalCards returns every card the seat may play right now, in hand
// order. Empty when it is not the seat's turn.
func LegalCards(round domain.PlayRound, seat int, trump domain.Suit) []domain.Card {
	hand := round.Hands[seat]
	legal := make([]domain.Card, 0, len(hand))
	for _, c := range hand {
		if round.IsLegal(seat, c, trump) {
			legal = append(legal, c)
		}
	}
	return legal
}

// LegalBidAmounts returns the amounts the current bidder may name, from
// the round's running minimum up to the full point pool.
func LegalBidAmounts(bets domain.BetRound) []int {
	if bets.IsFinished() {
		return nil
	}
	amounts := make([]int, 0, domain.TotalPoints-bets.NextMin+1)
	for a := bets.NextMin; a <= domain.TotalPoints; a++ {
		amounts = append(amounts, a)
	}
	return amounts
}

// Beats reports whether the contender takes the trick from the current
// champion. Suit-bound ranks first, trump over everything else; the
// champion keeps ties so the earlier copy of a duplicate wins.
func Beats(champion, contender domain.Card, trump domain.Suit) bool {
	if contender.Suit == champion.Suit {
		return contender.Rank > champion.Rank
	}
	return contender.Suit == trump
}
