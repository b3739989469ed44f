package domain

// PlayRound is the play phase of a round: a sequence of tricks played out
// of the dealt hands, newest trick first.
//
// Every transition returns a new PlayRound value; hands and tricks of the
// old value are never mutated in place, so an orchestrator can keep any
// snapshot it likes.
type PlayRound struct {
	Hands [][]Card
	// Tricks is newest-first. While the round is running Tricks[0] is the
	// in-progress trick; once Remaining hits zero every entry is finished.
	Tricks []Trick
	// Remaining counts tricks left to finish, starting at
	// DeckSize / player count.
	Remaining int
}

// NewPlayRound starts the play phase over the given hands with an empty
// trick led by startingSeat.
func NewPlayRound(hands [][]Card, startingSeat int) PlayRound {
	return PlayRound{
		Hands:     hands,
		Tricks:    []Trick{NewTrick(startingSeat)},
		Remaining: DeckSize / len(hands),
	}
}

// PlayerCount returns the number of seats in the round.
func (r PlayRound) PlayerCount() int {
	return len(r.Hands)
}

// CurrentTrick returns the in-progress trick.
func (r PlayRound) CurrentTrick() Trick {
	return r.Tricks[0]
}

// Finished reports whether every trick of the round has been played.
func (r PlayRound) Finished() bool {
	return r.Remaining == 0
}

// IsLegal reports whether the seat may play the card under the given
// trump. It is the boolean hint for UIs and bots; Play re-checks and
// returns the precise rejection.
func (r PlayRound) IsLegal(seat int, card Card, trump Suit) bool {
	return r.checkLegal(seat, card, trump) == nil
}

func (r PlayRound) checkLegal(seat int, card Card, trump Suit) error {
	if r.Finished() {
		return ErrRoundOver
	}

	cur := r.Tricks[0]
	if cur.NextSeat != seat {
		return ErrOutOfTurn
	}
	if !handContains(r.Hands[seat], card) {
		return ErrCardNotInHand
	}

	if len(cur.Plays) > 0 {
		lead, err := cur.LeadingSuit()
		if err != nil {
			return err
		}
		if card.Suit == lead {
			return nil
		}
		if handHasSuit(r.Hands[seat], lead) {
			return ErrMustFollowSuit
		}
		// Cannot follow: any discard or trump is fine.
		return nil
	}

	// Leading a trick. Trump may only be led once it has been played to an
	// earlier trick, unless the hand leaves no other choice.
	if card.Suit == trump && !r.trumpBroken(trump) && !handAllSuit(r.Hands[seat], trump) {
		return ErrTrumpNotBroken
	}
	return nil
}

// Play validates the move, records it on the current trick and removes
// the card from the seat's hand. When the trick completes, Remaining
// drops by one and a fresh trick led by the trick's winner is opened
// (unless it was the last trick of the round).
func (r PlayRound) Play(seat int, card Card, trump Suit) (PlayRound, error) {
	if err := r.checkLegal(seat, card, trump); err != nil {
		return r, err
	}

	updated := r.Tricks[0].RecordPlay(seat, card, r.PlayerCount())

	hands := make([][]Card, len(r.Hands))
	copy(hands, r.Hands)
	hands[seat] = removeCard(hands[seat], card)

	next := PlayRound{Hands: hands, Remaining: r.Remaining}

	if !updated.IsFinished(r.PlayerCount()) {
		next.Tricks = append([]Trick{updated}, r.Tricks[1:]...)
		return next, nil
	}

	winner, err := updated.WinningPlay(trump)
	if err != nil {
		return r, err
	}
	next.Remaining--

	if next.Remaining > 0 {
		next.Tricks = append([]Trick{NewTrick(winner.Seat), updated}, r.Tricks[1:]...)
	} else {
		next.Tricks = append([]Trick{updated}, r.Tricks[1:]...)
	}
	return next, nil
}

// Scores sums each finished trick's points onto the team of its winning
// seat. Teams are the seat-parity pairs: seats 0 and 2 against 1 and 3.
// Scores are only exposed once the round is complete.
func (r PlayRound) Scores(trump Suit) (team0, team1 int, err error) {
	if !r.Finished() {
		return 0, 0, ErrRoundNotFinished
	}
	for _, trick := range r.Tricks {
		winner, werr := trick.WinningPlay(trump)
		if werr != nil {
			return 0, 0, werr
		}
		if winner.Seat%2 == 0 {
			team0 += trick.Score
		} else {
			team1 += trick.Score
		}
	}
	return team0, team1, nil
}

// trumpBroken reports whether any trump card has been played this round.
func (r PlayRound) trumpBroken(trump Suit) bool {
	for _, trick := range r.Tricks {
		for _, p := range trick.Plays {
			if p.Card.Suit == trump {
				return true
			}
		}
	}
	return false
}

func handContains(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

func handHasSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func handAllSuit(hand []Card, suit Suit) bool {
	for _, c := range hand {
		if c.Suit != suit {
			return false
		}
	}
	return len(hand) > 0
}

// removeCard drops exactly one copy of the card from the hand, leaving
// the original slice untouched.
func removeCard(hand []Card, card Card) []Card {
	out := make([]Card, 0, len(hand))
	removed := false
	for _, c := range hand {
		if !removed && c == card {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}
