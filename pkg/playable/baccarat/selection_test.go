package baccarat

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGetMainSelection(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"player", "banker", "tie", "Player", "BANKER"} {
		sel, err := GetMainSelection(s)
		a.NoError(err)
		a.NotEqual(Selection(""), sel)
	}

	// payout-only selections cannot back a main bet
	for _, s := range []string{"dragon7", "panda8", "lucky_6", ""} {
		_, err := GetMainSelection(s)
		a.ErrorIs(err, ErrInvalidSelection)
	}
}
