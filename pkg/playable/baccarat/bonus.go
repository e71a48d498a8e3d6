package baccarat

import "fmt"

// BonusKind identifies an independent side wager
type BonusKind string

// bonus kind constants
const (
	BonusPlayerPair   BonusKind = "player_pair"
	BonusBankerPair   BonusKind = "banker_pair"
	BonusEitherPair   BonusKind = "either_pair"
	BonusPerfectPair  BonusKind = "perfect_pair"
	BonusPlayerDragon BonusKind = "player_dragon"
	BonusBankerDragon BonusKind = "banker_dragon"
	BonusLucky6       BonusKind = "lucky_6"
)

// BonusKinds returns the bonus kinds in a stable order
func BonusKinds() []BonusKind {
	return []BonusKind{
		BonusPlayerPair,
		BonusBankerPair,
		BonusEitherPair,
		BonusPerfectPair,
		BonusPlayerDragon,
		BonusBankerDragon,
		BonusLucky6,
	}
}

// GetBonusKind returns the BonusKind based on the string
func GetBonusKind(s string) (BonusKind, error) {
	for _, kind := range BonusKinds() {
		if BonusKind(s) == kind {
			return kind, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrInvalidSelection, s)
}

// BonusBets holds the stakes for the seven side wagers.
// A zero stake means the bet is not placed. The payout rules are the same in
// every variant.
type BonusBets struct {
	PlayerPair   int `json:"playerPair"`
	BankerPair   int `json:"bankerPair"`
	EitherPair   int `json:"eitherPair"`
	PerfectPair  int `json:"perfectPair"`
	PlayerDragon int `json:"playerDragon"`
	BankerDragon int `json:"bankerDragon"`
	Lucky6       int `json:"lucky6"`
}

// Stake returns the stake placed on the kind
func (b *BonusBets) Stake(kind BonusKind) int {
	switch kind {
	case BonusPlayerPair:
		return b.PlayerPair
	case BonusBankerPair:
		return b.BankerPair
	case BonusEitherPair:
		return b.EitherPair
	case BonusPerfectPair:
		return b.PerfectPair
	case BonusPlayerDragon:
		return b.PlayerDragon
	case BonusBankerDragon:
		return b.BankerDragon
	case BonusLucky6:
		return b.Lucky6
	}

	panic(fmt.Sprintf("unknown bonus kind: %s", kind))
}

// SetStake sets the stake for the kind
func (b *BonusBets) SetStake(kind BonusKind, amount int) {
	switch kind {
	case BonusPlayerPair:
		b.PlayerPair = amount
	case BonusBankerPair:
		b.BankerPair = amount
	case BonusEitherPair:
		b.EitherPair = amount
	case BonusPerfectPair:
		b.PerfectPair = amount
	case BonusPlayerDragon:
		b.PlayerDragon = amount
	case BonusBankerDragon:
		b.BankerDragon = amount
	case BonusLucky6:
		b.Lucky6 = amount
	default:
		panic(fmt.Sprintf("unknown bonus kind: %s", kind))
	}
}

// TotalStaked returns the sum of all placed stakes
func (b *BonusBets) TotalStaked() int {
	total := 0
	for _, kind := range BonusKinds() {
		total += b.Stake(kind)
	}

	return total
}

// dragonPayoutRatio is the payout multiplier for a dragon bet at the given
// victory margin. Margins below four pay nothing.
func dragonPayoutRatio(margin int) int {
	switch margin {
	case 9:
		return 30
	case 8:
		return 10
	case 7:
		return 6
	case 6:
		return 4
	case 5:
		return 2
	case 4:
		return 1
	}

	return 0
}

// Won returns true if the kind's condition holds for the round, independent
// of whether a stake was placed
func (k BonusKind) Won(round *Round) bool {
	switch k {
	case BonusPlayerPair:
		return round.PlayerPair()
	case BonusBankerPair:
		return round.BankerPair()
	case BonusEitherPair:
		return round.EitherPair()
	case BonusPerfectPair:
		return round.PerfectPair()
	case BonusPlayerDragon:
		return round.Winner == WinnerPlayer && dragonPayoutRatio(round.VictoryMargin()) > 0
	case BonusBankerDragon:
		return round.Winner == WinnerBanker && dragonPayoutRatio(round.VictoryMargin()) > 0
	case BonusLucky6:
		return round.Winner == WinnerBanker && round.BankerScore == 6
	}

	panic(fmt.Sprintf("unknown bonus kind: %s", k))
}

// payoutRatio returns the kind's multiplier for the round, assuming the
// condition holds
func (k BonusKind) payoutRatio(round *Round) int {
	switch k {
	case BonusPlayerPair, BonusBankerPair:
		return 11
	case BonusEitherPair:
		return 5
	case BonusPerfectPair:
		return 25
	case BonusPlayerDragon, BonusBankerDragon:
		return dragonPayoutRatio(round.VictoryMargin())
	case BonusLucky6:
		if round.BankerHand.Len() == 3 {
			return 20
		}

		return 12
	}

	panic(fmt.Sprintf("unknown bonus kind: %s", k))
}

// Payout returns the sum over all placed bets whose condition holds.
// Each bet is evaluated independently against the same completed round.
func (b *BonusBets) Payout(round *Round) int {
	total := 0
	for _, kind := range BonusKinds() {
		stake := b.Stake(kind)
		if stake > 0 && kind.Won(round) {
			total += stake * kind.payoutRatio(round)
		}
	}

	return total
}
