package bot

import (
	"errors"

	"fiftysix/internal/bot/internal"
	"fiftysix/internal/domain"
)

var errNoLegalCard = errors.New("no legal card for seat")

// BasicBot bids on raw hand strength and plays greedily: win the trick
// as cheaply as possible, feed points to a winning partner, otherwise
// shed the cheapest card. It keeps no memory between moves.
type BasicBot struct{}

func (b *BasicBot) ChooseBid(game *domain.Game, seat int) (domain.BidAction, error) {
	return planBid(game, seat, DefaultTuning.RaiseMargin)
}

func (b *BasicBot) ChooseCard(game *domain.Game, seat int) (domain.Card, error) {
	trump := game.Contract.Trump
	legal := internal.LegalCards(*game.Round, seat, trump)
	if len(legal) == 0 {
		return domain.Card{}, errNoLegalCard
	}

	trick := game.Round.CurrentTrick()
	if len(trick.Plays) == 0 {
		return leadHighest(legal, trump), nil
	}

	champion, err := trick.WinningPlay(trump)
	if err != nil {
		return domain.Card{}, err
	}

	if champion.Seat%2 == seat%2 {
		return feedPartner(legal, champion.Card, trump), nil
	}
	if card, ok := cheapestWinning(legal, champion.Card, trump); ok {
		return card, nil
	}
	return leastValuable(legal), nil
}

func (b *BasicBot) OnEvent(event interface{}) {}

// planBid converts hand strength into a bid. Opening hands bid the
// minimum when strong enough and otherwise pass into the forced nose
// bid; later hands raise minimally and only with the given margin of
// surplus strength.
func planBid(game *domain.Game, seat int, margin int) (domain.BidAction, error) {
	bets := game.Bets
	if bets == nil || seat < 0 || seat >= bets.PlayerCount() {
		return domain.BidAction{}, errors.New("seat has no hand to bid on")
	}

	hand := bets.Hands[seat]
	trump, strength := internal.BestTrump(hand, DefaultTuning.Bid)
	target := int(strength)
	if target > DefaultTuning.MaxBid {
		target = DefaultTuning.MaxBid
	}

	if len(bets.Bids) == 0 {
		if target >= domain.MinOpeningBid {
			return domain.BidOf(domain.MinOpeningBid, trump), nil
		}
		return domain.PassAction(), nil
	}

	if bets.NextMin <= domain.TotalPoints && target >= bets.NextMin+margin {
		return domain.BidOf(bets.NextMin, trump), nil
	}
	return domain.PassAction(), nil
}

// leadHighest opens a trick with the highest off-trump card, falling
// back to the highest trump when nothing else is legal.
func leadHighest(legal []domain.Card, trump domain.Suit) domain.Card {
	var best domain.Card
	found := false
	for _, c := range legal {
		if c.Suit == trump {
			continue
		}
		if !found || c.Rank > best.Rank {
			best = c
			found = true
		}
	}
	if found {
		return best
	}
	best = legal[0]
	for _, c := range legal[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}

// cheapestWinning picks the lowest-point, lowest-rank card that takes
// the trick from the champion.
func cheapestWinning(legal []domain.Card, champion domain.Card, trump domain.Suit) (domain.Card, bool) {
	var best domain.Card
	found := false
	for _, c := range legal {
		if !internal.Beats(champion, c, trump) {
			continue
		}
		if !found || c.Points() < best.Points() || (c.Points() == best.Points() && c.Rank < best.Rank) {
			best = c
			found = true
		}
	}
	return best, found
}

// feedPartner loads points onto a trick the partner is winning without
// overtaking it. When every legal card would overtake, win as cheaply
// as possible instead.
func feedPartner(legal []domain.Card, champion domain.Card, trump domain.Suit) domain.Card {
	var best domain.Card
	found := false
	for _, c := range legal {
		if internal.Beats(champion, c, trump) {
			continue
		}
		if !found || c.Points() > best.Points() || (c.Points() == best.Points() && c.Rank < best.Rank) {
			best = c
			found = true
		}
	}
	if found {
		return best
	}
	if card, ok := cheapestWinning(legal, champion, trump); ok {
		return card
	}
	return leastValuable(legal)
}

// leastValuable sheds the cheapest card, breaking point ties toward the
// lower rank.
func leastValuable(legal []domain.Card) domain.Card {
	best := legal[0]
	for _, c := range legal[1:] {
		if c.Points() < best.Points() || (c.Points() == best.Points() && c.Rank < best.Rank) {
			best = c
		}
	}
	return best
}
