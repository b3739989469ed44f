package domain

// Play is one card laid on a trick by a seat.
type Play struct {
	Seat int
	Card Card
}

// Trick is one round of plays within the play phase.
//
// Plays are stored newest-first. That is a deliberate convention shared
// with BetRound's bid history: RecordPlay prepends, and anything that
// depends on play order (LeadingSuit, WinningPlay) reverses back to
// chronological order before looking.
type Trick struct {
	// NextSeat is the seat due to act; while the trick is empty it is the
	// leader's seat.
	NextSeat int
	Plays    []Play
	// Score accumulates the point value of the cards played so far.
	Score int
}

// NewTrick returns an empty trick led by the given seat.
func NewTrick(leader int) Trick {
	return Trick{NextSeat: leader}
}

// IsFinished reports whether every seat has played on this trick.
func (t Trick) IsFinished(playerCount int) bool {
	return len(t.Plays) == playerCount
}

// LeadingSuit returns the suit of the chronologically first play.
func (t Trick) LeadingSuit() (Suit, error) {
	if len(t.Plays) == 0 {
		return "", ErrEmptyTrick
	}
	return t.Plays[len(t.Plays)-1].Card.Suit, nil
}

// RecordPlay returns a copy of the trick with the play prepended, the
// turn advanced one seat and the score increased by the card's points.
// Legality is PlayRound's responsibility, not the trick's.
func (t Trick) RecordPlay(seat int, card Card, playerCount int) Trick {
	plays := make([]Play, 0, len(t.Plays)+1)
	plays = append(plays, Play{Seat: seat, Card: card})
	plays = append(plays, t.Plays...)

	return Trick{
		NextSeat: (seat + 1) % playerCount,
		Plays:    plays,
		Score:    t.Score + card.Points(),
	}
}

// WinningPlay folds the card win rule over the plays in chronological
// order, starting from the leading play, and returns the winning seat and
// card.
func (t Trick) WinningPlay(trump Suit) (Play, error) {
	if len(t.Plays) == 0 {
		return Play{}, ErrEmptyTrick
	}

	// The deck holds two copies of every card, so the champion cannot be
	// tracked by card value alone; defeat is decided play by play. A
	// duplicate of the champion never dethrones it.
	best := t.Plays[len(t.Plays)-1]
	for i := len(t.Plays) - 2; i >= 0; i-- {
		contender := t.Plays[i]
		if defeats(best.Card, contender.Card, trump) {
			best = contender
		}
	}
	return best, nil
}
