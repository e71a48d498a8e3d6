package deck

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
