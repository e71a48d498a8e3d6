package baccarat

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"baccarat-server/pkg/deck"
	"baccarat-server/pkg/playable"
)

// noThirdCard marks that the player stood on two cards
const noThirdCard = -1

// bankerDrawTable maps the banker's score to the rule deciding whether the
// banker draws a third card. The argument is the baccarat value of the
// player's third card, or noThirdCard if the player stood.
//
// Note the asymmetry on a stood player: the score-3 row still draws (the
// stood marker is not an eight), while the 4-6 rows require a drawn card in
// their range and therefore stand.
var bankerDrawTable = map[int]func(playerThird int) bool{
	0: func(int) bool { return true },
	1: func(int) bool { return true },
	2: func(int) bool { return true },
	3: func(v int) bool { return v != 8 },
	4: func(v int) bool { return v >= 2 && v <= 7 },
	5: func(v int) bool { return v >= 4 && v <= 7 },
	6: func(v int) bool { return v == 6 || v == 7 },
	7: func(int) bool { return false },
	8: func(int) bool { return false },
	9: func(int) bool { return false },
}

// Game is a single-seat game of baccarat.
// A Game owns its card source and round state exclusively; drive one round
// to completion before starting the next.
type Game struct {
	options    Options
	variant    Variant
	payouts    payoutTable
	cardSource deck.CardSource
	round      *Round
	bonusBets  BonusBets
	logChan    chan []*playable.LogMessage
	logger     logrus.FieldLogger
}

// NewGame returns a new game dealt from a fresh, shuffled single deck
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	d := deck.New()
	if options.Seed > 0 {
		d.SetSeed(options.Seed)
	}
	d.Shuffle()

	return newGame(logger, options, d)
}

// NewShoeGame returns a new game dealt from a fresh, shuffled multi-deck shoe
func NewShoeGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.Decks < 1 {
		return nil, fmt.Errorf("shoe requires at least one deck, got %d", options.Decks)
	}

	s := deck.NewShoe(options.Decks)
	if options.Seed > 0 {
		s.SetSeed(options.Seed)
		s.Reshuffle()
	}

	return newGame(logger, options, s)
}

func newGame(logger logrus.FieldLogger, options Options, source deck.CardSource) (*Game, error) {
	if _, ok := GetVariants()[options.Variant]; !ok {
		return nil, fmt.Errorf("unknown variant: %d", int(options.Variant))
	}

	g := &Game{
		options:    options,
		variant:    options.Variant,
		payouts:    options.Variant.payoutTable(),
		cardSource: source,
		round:      newRound(),
		logChan:    make(chan []*playable.LogMessage, 256),
		logger:     logger,
	}

	return g, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return fmt.Sprintf("Baccarat (%s)", g.payouts.Name())
}

// Key returns a unique key
func (g *Game) Key() string {
	return "baccarat"
}

// Variant returns the game's payout variant
func (g *Game) Variant() Variant {
	return g.variant
}

// Round returns the current round state
func (g *Game) Round() *Round {
	return g.round
}

// NeedsReshuffle reports whether the card source must be reshuffled before
// the next round. Callers must check this before PlayRound(); exhausting the
// source mid-round is a precondition violation.
func (g *Game) NeedsReshuffle() bool {
	return g.cardSource.NeedsReshuffle()
}

// Reshuffle rebuilds the card source from scratch
func (g *Game) Reshuffle() {
	g.cardSource.Reshuffle()
}

// CardsLeft returns the number of undealt cards in the source
func (g *Game) CardsLeft() int {
	return g.cardSource.CardsLeft()
}

// LogChan should return a channel that a game will send log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// PlayRound plays a full round: the initial four cards, the third-card
// phase, and winner determination. The previous round state is discarded.
func (g *Game) PlayRound() error {
	g.round = newRound()

	if err := g.dealInitialCards(); err != nil {
		return err
	}

	// a natural eight or nine ends the round immediately
	if g.round.PlayerScore >= 8 || g.round.BankerScore >= 8 {
		g.sendLogMessage(playable.SimpleLogMessage("natural on the initial deal"))
		g.determineWinner()
		return nil
	}

	playerThird := noThirdCard
	if g.round.PlayerScore <= 5 {
		card, err := g.cardSource.Deal()
		if err != nil {
			return fmt.Errorf("could not deal player third card: %w", err)
		}

		g.round.addPlayerCard(card)
		playerThird = card.BaccaratValue()
		g.sendLogMessage(playable.CardsLogMessage([]*deck.Card{card}, "player draws %s", card))
	}

	if bankerDrawTable[g.round.BankerScore](playerThird) {
		card, err := g.cardSource.Deal()
		if err != nil {
			return fmt.Errorf("could not deal banker third card: %w", err)
		}

		g.round.addBankerCard(card)
		g.sendLogMessage(playable.CardsLogMessage([]*deck.Card{card}, "banker draws %s", card))
	}

	g.determineWinner()
	return nil
}

// dealInitialCards deals the opening four cards in fixed order:
// player, banker, player, banker
func (g *Game) dealInitialCards() error {
	for i := 0; i < 2; i++ {
		card, err := g.cardSource.Deal()
		if err != nil {
			return fmt.Errorf("could not deal player card: %w", err)
		}
		g.round.addPlayerCard(card)

		card, err = g.cardSource.Deal()
		if err != nil {
			return fmt.Errorf("could not deal banker card: %w", err)
		}
		g.round.addBankerCard(card)
	}

	return nil
}

func (g *Game) determineWinner() {
	r := g.round
	r.Complete = true

	switch {
	case r.PlayerScore > r.BankerScore:
		r.Winner = WinnerPlayer
	case r.BankerScore > r.PlayerScore:
		r.Winner = WinnerBanker
	default:
		r.Winner = WinnerTie
	}

	g.logger.WithFields(logrus.Fields{
		"player": r.PlayerScore,
		"banker": r.BankerScore,
		"winner": r.Winner,
	}).Debug("round complete")

	g.sendLogMessage(playable.SimpleLogMessage("%s wins %d to %d", r.Winner, r.PlayerScore, r.BankerScore))
}

// MainBetPayout returns the payout for a main bet on the selection given the
// current round
func (g *Game) MainBetPayout(selection Selection, stake int) int {
	return g.payouts.MainBetPayout(g.round, selection, stake)
}

// SetBonusBets replaces the attached bonus bets wholesale
func (g *Game) SetBonusBets(bets BonusBets) {
	g.bonusBets = bets
}

// BonusBets returns the attached bonus bets
func (g *Game) BonusBets() BonusBets {
	return g.bonusBets
}

// TotalPayout returns the main bet payout plus the payout of the attached
// bonus bets
func (g *Game) TotalPayout(selection Selection, stake int) int {
	return g.MainBetPayout(selection, stake) + g.bonusBets.Payout(g.round)
}

// sendLogMessage writes to the log channel without ever blocking the engine
func (g *Game) sendLogMessage(msg *playable.LogMessage) {
	select {
	case g.logChan <- []*playable.LogMessage{msg}:
	default:
	}
}
