package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
// In baccarat the ace is always low
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Ace:
		rank = "A"
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// BaccaratValue returns the card's point value in baccarat.
// Ranks ace through nine count face value; tens and court cards count zero.
func (c *Card) BaccaratValue() int {
	if c.Rank <= 9 {
		return c.Rank
	}

	return 0
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([1-9]|1[0-3])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 1 and <= 13 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (1c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
