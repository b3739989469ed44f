package bot

import (
	"fiftysix/internal/app"
	"fiftysix/internal/bot/brain"
	"fiftysix/internal/bot/internal"
	"fiftysix/internal/domain"
)

// CountingBot plays like BasicBot but counts the deck. It cashes cards
// that have become the best of their suit, avoids leading into inferred
// voids and bids a little closer to its estimate because the play phase
// recovers more of it.
type CountingBot struct {
	memory *brain.Memory

	trickLead  domain.Suit
	trickPlays int
}

func NewCountingBot() *CountingBot {
	return &CountingBot{memory: brain.NewMemory()}
}

func (b *CountingBot) ChooseBid(game *domain.Game, seat int) (domain.BidAction, error) {
	return planBid(game, seat, DefaultTuning.RaiseMargin-1)
}

func (b *CountingBot) ChooseCard(game *domain.Game, seat int) (domain.Card, error) {
	trump := game.Contract.Trump
	legal := internal.LegalCards(*game.Round, seat, trump)
	if len(legal) == 0 {
		return domain.Card{}, errNoLegalCard
	}
	b.memory.MarkMine(game.Round.Hands[seat])

	trick := game.Round.CurrentTrick()
	if len(trick.Plays) == 0 {
		return b.lead(legal, seat, trump), nil
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

// lead prefers cashing a suit boss that the opponents can neither
// outrank nor trump. With no safe boss it falls back to the basic
// aggressive lead when trump is drawn, or a cheap exit when not.
func (b *CountingBot) lead(legal []domain.Card, seat int, trump domain.Suit) domain.Card {
	trumpsOut := b.memory.UnseenInSuit(trump) > 0

	var boss domain.Card
	found := false
	for _, c := range legal {
		if c.Suit != trump && !b.memory.IsSuitBoss(c) {
			continue
		}
		if c.Suit != trump && trumpsOut && b.opponentVoidIn(seat, c.Suit) {
			continue
		}
		if c.Suit == trump && !b.memory.IsSuitBoss(c) {
			continue
		}
		if !found || c.Points() > boss.Points() {
			boss = c
			found = true
		}
	}
	if found {
		return boss
	}

	if !trumpsOut {
		return leadHighest(legal, trump)
	}
	return leastValuable(legal)
}

func (b *CountingBot) opponentVoidIn(seat int, s domain.Suit) bool {
	for other := 0; other < app.PlayersPerTable; other++ {
		if other%2 == seat%2 {
			continue
		}
		if b.memory.IsVoid(other, s) {
			return true
		}
	}
	return false
}

// OnEvent keeps the deck count current. Trick lead tracking lives here
// because the played-card payload does not repeat the lead suit.
func (b *CountingBot) OnEvent(event interface{}) {
	switch p := event.(type) {
	case app.HandDealtPayload:
		b.memory.Reset()
		b.memory.MarkMine(p.Hand)
		b.trickLead = ""
		b.trickPlays = 0
	case app.CardPlayedPayload:
		lead := b.trickLead
		if b.trickPlays == 0 {
			lead = ""
			b.trickLead = p.Card.Suit
		}
		b.memory.RecordPlay(p.Seat, p.Card, lead)
		b.trickPlays++
		if p.TrickFinished {
			b.trickLead = ""
			b.trickPlays = 0
		}
	}
}
