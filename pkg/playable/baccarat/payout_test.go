package baccarat

import (
	"github.com/stretchr/testify/assert"
	"testing"

	"baccarat-server/pkg/deck"
)

func completedRound(winner Winner, playerScore, bankerScore int) *Round {
	return &Round{
		PlayerScore: playerScore,
		BankerScore: bankerScore,
		Complete:    true,
		Winner:      winner,
	}
}

func TestClassicTable(t *testing.T) {
	a := assert.New(t)
	table := &classicTable{}

	playerWin := completedRound(WinnerPlayer, 8, 3)
	a.Equal(200, table.MainBetPayout(playerWin, SelectionPlayer, 100))
	a.Equal(0, table.MainBetPayout(playerWin, SelectionBanker, 100))
	a.Equal(0, table.MainBetPayout(playerWin, SelectionTie, 100))

	bankerWin := completedRound(WinnerBanker, 3, 8)
	a.Equal(195, table.MainBetPayout(bankerWin, SelectionBanker, 100))
	// truncates toward zero
	a.Equal(64, table.MainBetPayout(bankerWin, SelectionBanker, 33))
	a.Equal(0, table.MainBetPayout(bankerWin, SelectionPlayer, 100))

	tie := completedRound(WinnerTie, 5, 5)
	a.Equal(900, table.MainBetPayout(tie, SelectionTie, 100))
	a.Equal(0, table.MainBetPayout(tie, SelectionPlayer, 100))
	a.Equal(0, table.MainBetPayout(tie, SelectionBanker, 100))

	// dragon7/panda8 are not classic selections
	a.Equal(0, table.MainBetPayout(bankerWin, SelectionDragon7, 100))
	a.Equal(0, table.MainBetPayout(playerWin, SelectionPanda8, 100))
}

func TestNoCommissionTable(t *testing.T) {
	a := assert.New(t)
	table := &noCommissionTable{}

	a.Equal(200, table.MainBetPayout(completedRound(WinnerPlayer, 8, 3), SelectionPlayer, 100))
	a.Equal(200, table.MainBetPayout(completedRound(WinnerBanker, 3, 8), SelectionBanker, 100))
	a.Equal(900, table.MainBetPayout(completedRound(WinnerTie, 5, 5), SelectionTie, 100))

	// the winning banker six pays half
	bankerSix := completedRound(WinnerBanker, 3, 6)
	a.Equal(150, table.MainBetPayout(bankerSix, SelectionBanker, 100))
	a.Equal(49, table.MainBetPayout(bankerSix, SelectionBanker, 33))

	// a losing banker six pays nothing
	a.Equal(0, table.MainBetPayout(completedRound(WinnerPlayer, 7, 6), SelectionBanker, 100))
}

func TestSpeedTable(t *testing.T) {
	a := assert.New(t)
	table := &speedTable{}

	a.Equal(200, table.MainBetPayout(completedRound(WinnerPlayer, 8, 3), SelectionPlayer, 100))
	a.Equal(200, table.MainBetPayout(completedRound(WinnerBanker, 3, 8), SelectionBanker, 100))
	a.Equal(800, table.MainBetPayout(completedRound(WinnerTie, 5, 5), SelectionTie, 100))
	a.Equal(0, table.MainBetPayout(completedRound(WinnerTie, 5, 5), SelectionPlayer, 100))
}

func TestEzBaccaratTable(t *testing.T) {
	a := assert.New(t)
	table := &ezBaccaratTable{}

	a.Equal(200, table.MainBetPayout(completedRound(WinnerPlayer, 8, 3), SelectionPlayer, 100))
	a.Equal(900, table.MainBetPayout(completedRound(WinnerTie, 5, 5), SelectionTie, 100))

	// a normal three-card banker seven pays even money
	dragon := completedRound(WinnerBanker, 2, 7)
	dragon.BankerHand = deck.CardsFromString("2h,2c,3s")
	a.Equal(200, table.MainBetPayout(dragon, SelectionBanker, 100))
	a.Equal(4000, table.MainBetPayout(dragon, SelectionDragon7, 100))

	// the seven-push: a winning three-card seven of all zero-value cards
	// returns only the stake
	push := completedRound(WinnerBanker, 2, 7)
	push.BankerHand = deck.CardsFromString("10h,12c,13s")
	a.Equal(100, table.MainBetPayout(push, SelectionBanker, 100))

	// a two-card banker seven is neither a push nor a dragon
	twoCard := completedRound(WinnerBanker, 2, 7)
	twoCard.BankerHand = deck.CardsFromString("3h,4c")
	a.Equal(200, table.MainBetPayout(twoCard, SelectionBanker, 100))
	a.Equal(0, table.MainBetPayout(twoCard, SelectionDragon7, 100))

	panda := completedRound(WinnerPlayer, 8, 2)
	panda.PlayerHand = deck.CardsFromString("2h,2c,4s")
	a.Equal(2500, table.MainBetPayout(panda, SelectionPanda8, 100))

	// a two-card player eight is not a panda
	twoCardEight := completedRound(WinnerPlayer, 8, 2)
	twoCardEight.PlayerHand = deck.CardsFromString("3h,5c")
	a.Equal(0, table.MainBetPayout(twoCardEight, SelectionPanda8, 100))
}

func TestPayoutDeterminism(t *testing.T) {
	a := assert.New(t)

	round := completedRound(WinnerBanker, 3, 8)
	for _, variant := range []Variant{VariantClassic, VariantNoCommission, VariantSpeed, VariantEzBaccarat} {
		table := variant.payoutTable()

		first := table.MainBetPayout(round, SelectionBanker, 100)
		for i := 0; i < 10; i++ {
			a.Equal(first, table.MainBetPayout(round, SelectionBanker, 100))
		}
	}
}

func TestGame_MainBetPayout(t *testing.T) {
	a := assert.New(t)

	// player 4+3=7 stands, banker 3 draws a 5: banker wins 8 to 7
	g := createTestGame(t, VariantClassic, "4h,2c,3d,1s,5c")
	a.NoError(g.PlayRound())

	a.Equal(195, g.MainBetPayout(SelectionBanker, 100))
	a.Equal(0, g.MainBetPayout(SelectionPlayer, 100))
}
