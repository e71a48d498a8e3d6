package baccarat

// payoutTable computes the main bet payout from a completed round.
// One implementation exists per Variant; the table is selected at
// construction and fixed for the lifetime of the game.
type payoutTable interface {
	// Name returns the name of the payout table
	Name() string
	// MainBetPayout returns the total amount returned for a stake on the
	// selection, including the stake itself. An unmatched selection and
	// outcome pays 0.
	MainBetPayout(round *Round, selection Selection, stake int) int
}

// classicTable pays the traditional commission game: a banker win keeps a 5%
// commission on the winnings
type classicTable struct{}

func (t *classicTable) Name() string {
	return VariantClassic.String()
}

func (t *classicTable) MainBetPayout(round *Round, selection Selection, stake int) int {
	switch {
	case selection == SelectionPlayer && round.Winner == WinnerPlayer:
		return stake * 2
	case selection == SelectionBanker && round.Winner == WinnerBanker:
		// 1.95x, truncated toward zero
		return stake * 195 / 100
	case selection == SelectionTie && round.Winner == WinnerTie:
		return stake * 9
	}

	return 0
}

// noCommissionTable pays banker wins even money, except a winning banker six
// pays half
type noCommissionTable struct{}

func (t *noCommissionTable) Name() string {
	return VariantNoCommission.String()
}

func (t *noCommissionTable) MainBetPayout(round *Round, selection Selection, stake int) int {
	switch {
	case selection == SelectionPlayer && round.Winner == WinnerPlayer:
		return stake * 2
	case selection == SelectionBanker && round.Winner == WinnerBanker:
		if round.BankerScore == 6 {
			// 1.5x, truncated toward zero
			return stake * 3 / 2
		}

		return stake * 2
	case selection == SelectionTie && round.Winner == WinnerTie:
		return stake * 9
	}

	return 0
}

// speedTable pays both sides even money and ties at 8x
type speedTable struct{}

func (t *speedTable) Name() string {
	return VariantSpeed.String()
}

func (t *speedTable) MainBetPayout(round *Round, selection Selection, stake int) int {
	switch {
	case selection == SelectionPlayer && round.Winner == WinnerPlayer:
		return stake * 2
	case selection == SelectionBanker && round.Winner == WinnerBanker:
		return stake * 2
	case selection == SelectionTie && round.Winner == WinnerTie:
		return stake * 8
	}

	return 0
}

// ezBaccaratTable pays banker wins even money, with a push when the banker
// wins with a three-card seven made entirely of zero-value cards. It also
// honors the dragon7 and panda8 selections.
type ezBaccaratTable struct{}

func (t *ezBaccaratTable) Name() string {
	return VariantEzBaccarat.String()
}

func (t *ezBaccaratTable) MainBetPayout(round *Round, selection Selection, stake int) int {
	switch {
	case selection == SelectionPlayer && round.Winner == WinnerPlayer:
		return stake * 2
	case selection == SelectionBanker && round.Winner == WinnerBanker:
		if t.isSevenPush(round) {
			return stake
		}

		return stake * 2
	case selection == SelectionTie && round.Winner == WinnerTie:
		return stake * 9
	case selection == SelectionDragon7 && round.Dragon7():
		return stake * 40
	case selection == SelectionPanda8 && round.Panda8():
		return stake * 25
	}

	return 0
}

// isSevenPush returns true when the banker wins with exactly three cards
// scoring seven, every one of them a zero-value card
func (t *ezBaccaratTable) isSevenPush(round *Round) bool {
	if !round.Dragon7() {
		return false
	}

	for _, card := range round.BankerHand {
		if card.BaccaratValue() != 0 {
			return false
		}
	}

	return true
}
