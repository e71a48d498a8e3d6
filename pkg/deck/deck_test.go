package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 1, Suit: Hearts}, *d.Cards[0])
	a.Equal(Card{Rank: 13, Suit: Spades}, *d.Cards[51])
	a.Equal(int64(-1), d.GetSeed())

	ranks := make(map[int]int)
	for _, card := range d.Cards {
		ranks[card.Rank]++
	}

	for rank := 1; rank <= 13; rank++ {
		a.Equal(4, ranks[rank])
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetSeed(1)
	d1.Shuffle()

	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()

	a.Equal(d1.HashCode(), d2.HashCode())

	d3 := New()
	d3.SetSeed(2)
	d3.Shuffle()

	a.NotEqual(d1.HashCode(), d3.HashCode())
	a.Equal(52, d3.CardsLeft())
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.True(d.CanDeal(52))
	a.False(d.CanDeal(53))

	for i := 0; i < 52; i++ {
		card, err := d.Deal()
		a.NotNil(card)
		a.NoError(err)
	}

	a.False(d.CanDeal(1))

	card, err := d.Deal()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_NeedsReshuffle(t *testing.T) {
	a := assert.New(t)
	d := New()
	d.SetSeed(1)
	d.Shuffle()

	for d.CardsLeft() > 6 {
		_, err := d.Deal()
		a.NoError(err)
		a.False(d.NeedsReshuffle())
	}

	a.Equal(6, d.CardsLeft())
	a.False(d.NeedsReshuffle())

	_, err := d.Deal()
	a.NoError(err)
	a.True(d.NeedsReshuffle())

	d.Reshuffle()
	a.Equal(52, d.CardsLeft())
	a.False(d.NeedsReshuffle())
}

func TestDeck_ReshuffleIsDeterministicWithSeed(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.SetSeed(99)
	d1.Reshuffle()

	d2 := New()
	d2.SetSeed(99)
	d2.Reshuffle()

	a.Equal(d1.HashCode(), d2.HashCode())
}
