package deck

import "baccarat-server/internal/rng"

// minCutCardReserve is the smallest number of cards the cut card may leave
// behind it, regardless of shoe size
const minCutCardReserve = 15

// Shoe is a multi-deck card source with a cut card.
// The cards are permuted once at construction; once dealing passes the cut
// card the shoe reports it needs a reshuffle, which rebuilds it from scratch.
type Shoe struct {
	Cards []*Card `json:"cards"`

	numDecks        int
	cutCardPosition int
	seed            int64
	rng             rng.Generator
}

// NewShoe returns a shuffled shoe built from numDecks decks
func NewShoe(numDecks int) *Shoe {
	if numDecks < 1 {
		panic("shoe requires at least one deck")
	}

	s := &Shoe{
		numDecks: numDecks,
		seed:     -1,
		rng:      rng.Crypto{},
	}

	s.build()
	return s
}

func (s *Shoe) build() {
	cards := buildCards(s.numDecks)
	shuffle(cards, s.rng)

	total := len(cards)
	reserve := total / 10
	if reserve < minCutCardReserve {
		reserve = minCutCardReserve
	}

	s.Cards = cards
	s.cutCardPosition = total - reserve
}

// SetSeed will replace the shoe's randomness with a seeded generator.
// This should only be used by tests; call Reshuffle() afterwards to get a
// reproducible permutation.
func (s *Shoe) SetSeed(seed int64) {
	s.seed = seed
	s.rng = rng.NewSeeded(seed)
}

// GetSeed returns the seed, or -1 if the shoe shuffles with crypto randomness
func (s *Shoe) GetSeed() int64 {
	return s.seed
}

// NumDecks returns the number of decks the shoe was built from
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// CutCardPosition returns how many cards may be dealt before the cut card
func (s *Shoe) CutCardPosition() int {
	return s.cutCardPosition
}

// Deal will deal the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (s *Shoe) Deal() (*Card, error) {
	if len(s.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := s.Cards[0]
	s.Cards = s.Cards[1:]

	return card, nil
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}

// NeedsReshuffle returns true once dealing has passed the cut card
func (s *Shoe) NeedsReshuffle() bool {
	return len(s.Cards) <= s.numDecks*52-s.cutCardPosition
}

// Reshuffle discards all dealt state and rebuilds a full, freshly permuted shoe.
// A reshuffle is never partial.
func (s *Shoe) Reshuffle() {
	s.build()
}
