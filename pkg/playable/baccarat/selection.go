package baccarat

import (
	"fmt"
	"strings"
)

// Selection identifies what a main bet is riding on
type Selection string

// selection constants
// Dragon 7 and Panda 8 are only payable in EZ Baccarat
const (
	SelectionPlayer  Selection = "player"
	SelectionBanker  Selection = "banker"
	SelectionTie     Selection = "tie"
	SelectionDragon7 Selection = "dragon7"
	SelectionPanda8  Selection = "panda8"
)

// GetMainSelection returns the Selection for a main bet.
// Only player, banker, and tie may back a main bet; dragon7 and panda8 are
// payout-only selections.
func GetMainSelection(s string) (Selection, error) {
	switch Selection(strings.ToLower(s)) {
	case SelectionPlayer:
		return SelectionPlayer, nil
	case SelectionBanker:
		return SelectionBanker, nil
	case SelectionTie:
		return SelectionTie, nil
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidSelection, s)
}
