package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"baccarat-server/internal/rng"
)

// ErrEndOfDeck is an error when Deal() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// singleDeckReshuffleFloor is how many cards must remain in a single deck
// before the next round; below this the deck reports it needs a reshuffle
const singleDeckReshuffleFloor = 6

// Deck represents a single 52-card playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
		rng:  rng.Crypto{},
	}

	d.Cards = buildCards(1)
	return d
}

func buildCards(numDecks int) []*Card {
	cards := make([]*Card, 0, numDecks*52)
	for i := 0; i < numDecks; i++ {
		for _, suit := range []Suit{Hearts, Diamonds, Clubs, Spades} {
			for rank := Ace; rank <= King; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	return cards
}

// SetSeed will replace the deck's randomness with a seeded generator
// This should only be used by tests
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rng.NewSeeded(seed)
}

// GetSeed returns the seed, or -1 if the deck shuffles with crypto randomness
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Shuffle will shuffle the deck of cards
func (d *Deck) Shuffle() {
	shuffle(d.Cards, d.rng)
}

func shuffle(cards []*Card, generator rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := generator.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Deal will deal the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Deal() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// NeedsReshuffle returns true once the deck is too low to guarantee a full round
func (d *Deck) NeedsReshuffle() bool {
	return len(d.Cards) < singleDeckReshuffleFloor
}

// Reshuffle discards the remaining cards and rebuilds a fresh, shuffled 52-card deck
func (d *Deck) Reshuffle() {
	d.Cards = buildCards(1)
	d.Shuffle()
}
