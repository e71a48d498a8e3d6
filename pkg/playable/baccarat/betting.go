package baccarat

// RoundStatistics tracks running totals across settled rounds
type RoundStatistics struct {
	HandsPlayed   int               `json:"handsPlayed"`
	AmountWagered int               `json:"amountWagered"`
	AmountWon     int               `json:"amountWon"`
	BonusHits     map[BonusKind]int `json:"bonusHits"`
}

// NewRoundStatistics returns an empty set of statistics
func NewRoundStatistics() *RoundStatistics {
	return &RoundStatistics{
		BonusHits: make(map[BonusKind]int),
	}
}

func (s *RoundStatistics) recordBonusHit(kind BonusKind) {
	s.BonusHits[kind]++
}

// BettingRound validates stakes against a balance and settles them against a
// completed round. Failed placements never mutate the balance or bet state;
// settlement applies exactly one net delta to the balance.
type BettingRound struct {
	MainBetSelection Selection `json:"mainBetSelection"`
	MainBetAmount    int       `json:"mainBetAmount"`
	BonusBets        BonusBets `json:"bonusBets"`
	Balance          int       `json:"balance"`

	Stats *RoundStatistics `json:"stats"`
}

// NewBettingRound returns a betting round backed by the starting balance
func NewBettingRound(balance int) *BettingRound {
	return &BettingRound{
		Balance: balance,
		Stats:   NewRoundStatistics(),
	}
}

// PlaceMainBet places the main bet.
// The selection must be one of player, banker, or tie and the amount must be
// positive and within the balance.
func (b *BettingRound) PlaceMainBet(selection string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if amount > b.Balance {
		return ErrInsufficientBalance
	}

	sel, err := GetMainSelection(selection)
	if err != nil {
		return err
	}

	b.MainBetSelection = sel
	b.MainBetAmount = amount
	return nil
}

// PlaceBonusBet places a stake on the bonus kind.
// The main bet plus all bonus stakes, including this one, must fit the
// balance. A zero amount clears the bet.
func (b *BettingRound) PlaceBonusBet(kind string, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	k, err := GetBonusKind(kind)
	if err != nil {
		return err
	}

	if b.MainBetAmount+b.BonusBets.TotalStaked()+amount > b.Balance {
		return ErrInsufficientBalance
	}

	b.BonusBets.SetStake(k, amount)
	return nil
}

// TotalStaked returns the main bet plus all bonus stakes
func (b *BettingRound) TotalStaked() int {
	return b.MainBetAmount + b.BonusBets.TotalStaked()
}

// SettleRound settles all placed bets against the game's completed round and
// returns the total payout. The balance moves by payout minus total staked;
// statistics are updated and a hit is recorded for every placed bonus bet
// whose condition held.
func (b *BettingRound) SettleRound(game *Game) (int, error) {
	round := game.Round()
	if round == nil || !round.Complete {
		return 0, ErrRoundNotComplete
	}

	totalStaked := b.TotalStaked()
	payout := game.MainBetPayout(b.MainBetSelection, b.MainBetAmount) + b.BonusBets.Payout(round)

	b.Balance += payout - totalStaked
	b.Stats.HandsPlayed++
	b.Stats.AmountWagered += totalStaked
	b.Stats.AmountWon += payout

	for _, kind := range BonusKinds() {
		if b.BonusBets.Stake(kind) > 0 && kind.Won(round) {
			b.Stats.recordBonusHit(kind)
		}
	}

	return payout, nil
}
