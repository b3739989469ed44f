package domain

import (
	"fmt"
	"strings"
)

// Suit is a one-letter suit code.
type Suit string

const (
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitSpades   Suit = "S"

	// SuitNose is the placeholder trump assigned when the opening bidder
	// passes and is forced onto the minimum bid. No card carries this suit,
	// so a nose contract is played without an effective trump.
	SuitNose Suit = "N"
)

// Suits lists the four card suits in deck generation order.
var Suits = [4]Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Rank identifies a card face. The constant order is the strength order:
// Queen is weakest, Jack is strongest.
type Rank int

const (
	RankQueen Rank = iota
	RankKing
	RankTen
	RankAce
	RankNine
	RankJack
)

// rankPoints maps a Rank to its capture value. The table, not the raw
// integer, is the authority on what a card is worth.
var rankPoints = [6]int{
	RankQueen: 0,
	RankKing:  0,
	RankTen:   1,
	RankAce:   1,
	RankNine:  2,
	RankJack:  3,
}

var rankNames = [6]string{
	RankQueen: "Queen",
	RankKing:  "King",
	RankTen:   "10",
	RankAce:   "Ace",
	RankNine:  "9",
	RankJack:  "Jack",
}

var suitNames = map[Suit]string{
	SuitHearts:   "Hearts",
	SuitDiamonds: "Diamonds",
	SuitClubs:    "Clubs",
	SuitSpades:   "Spades",
	SuitNose:     "Nose",
}

const (
	// DeckSize is the number of cards in the double deck: 4 suits, 6 ranks,
	// 2 copies of each.
	DeckSize = 48

	// TotalPoints is the point pool of a full deck: (0+0+1+1+2+3) per rank
	// run, doubled, across four suits. The game takes its name from it.
	TotalPoints = 56

	// MinOpeningBid is the floor for the first bid of a bet round.
	MinOpeningBid = 28
)

// Card is a single playing card. Cards are immutable values; the deck
// contains two identical copies of every (suit, rank) pair.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Points returns the capture value of the card.
func (c Card) Points() int {
	return rankPoints[c.Rank]
}

// RankName returns the face name of the card ("Queen", "10", "Jack", ...).
func (c Card) RankName() string {
	return rankNames[c.Rank]
}

// SuitName returns the long suit name ("Hearts", "Spades", ...).
func (c Card) SuitName() string {
	return suitNames[c.Suit]
}

// DisplayName renders the card for humans, e.g. "Jack of Hearts".
func (c Card) DisplayName() string {
	return c.RankName() + " of " + c.SuitName()
}

// ParseDisplayName is the inverse of DisplayName.
func ParseDisplayName(name string) (Card, error) {
	rankPart, suitPart, ok := strings.Cut(name, " of ")
	if !ok {
		return Card{}, fmt.Errorf("malformed card name %q", name)
	}

	card := Card{Rank: -1}
	for r, rn := range rankNames {
		if rn == rankPart {
			card.Rank = Rank(r)
			break
		}
	}
	if card.Rank < 0 {
		return Card{}, fmt.Errorf("unknown rank %q", rankPart)
	}

	for _, s := range Suits {
		if suitNames[s] == suitPart {
			card.Suit = s
			return card, nil
		}
	}
	return Card{}, fmt.Errorf("unknown suit %q", suitPart)
}

// Winner applies the trick win rule to a reigning champion card and a
// contender played after it:
//
//  1. A contender of the champion's suit wins only with a strictly higher
//     rank.
//  2. Otherwise a trump contender beats a non-trump champion.
//  3. Otherwise the champion retains.
//
// The rule is not symmetric; callers must fold it over plays in
// chronological order rather than compare arbitrary pairs.
func Winner(champion, contender Card, trump Suit) Card {
	if defeats(champion, contender, trump) {
		return contender
	}
	return champion
}

// defeats reports whether the contender takes over from the champion.
func defeats(champion, contender Card, trump Suit) bool {
	if contender.Suit == champion.Suit {
		return contender.Rank > champion.Rank
	}
	return contender.Suit == trump
}
