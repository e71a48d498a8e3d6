package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"baccarat-server/internal/config"
	"baccarat-server/pkg/playable/baccarat"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var (
	rounds       = flag.Int("rounds", 0, "number of rounds to play (overrides config)")
	variant      = flag.String("variant", "", "payout variant (overrides config)")
	printVersion = flag.Bool("v", false, "print the version and exit")
)

func main() {
	flag.Parse()

	if *printVersion {
		fmt.Println(Version)
		os.Exit(0)
	}

	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	setupLogger()

	cfg := config.Instance()
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}
	if *variant != "" {
		cfg.Variant = *variant
	}

	v, err := baccarat.GetVariant(cfg.Variant)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse variant")
	}

	game, err := baccarat.NewShoeGame(logrus.StandardLogger(), baccarat.Options{
		Variant: v,
		Decks:   cfg.Decks,
		Seed:    cfg.Seed,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	betting := baccarat.NewBettingRound(cfg.StartingBalance)

	logrus.WithFields(logrus.Fields{
		"variant": v,
		"decks":   cfg.Decks,
		"balance": betting.Balance,
		"rounds":  cfg.Rounds,
	}).Info("starting simulation")

	for i := 0; i < cfg.Rounds; i++ {
		if game.NeedsReshuffle() {
			game.Reshuffle()
			logrus.WithField("cardsLeft", game.CardsLeft()).Debug("reshuffled the shoe")
		}

		if err := placeBets(betting, cfg); err != nil {
			logrus.WithError(err).WithField("balance", betting.Balance).Warn("stopping: could not cover the bets")
			break
		}

		if err := game.PlayRound(); err != nil {
			logrus.WithError(err).Fatal("could not play round")
		}

		payout, err := betting.SettleRound(game)
		if err != nil {
			logrus.WithError(err).Fatal("could not settle round")
		}

		drainGameLog(game)

		round := game.Round()
		logrus.WithFields(logrus.Fields{
			"round":   i + 1,
			"player":  fmt.Sprintf("%s (%d)", round.PlayerHand, round.PlayerScore),
			"banker":  fmt.Sprintf("%s (%d)", round.BankerHand, round.BankerScore),
			"winner":  round.Winner,
			"payout":  payout,
			"balance": betting.Balance,
		}).Info("round settled")
	}

	stats := betting.Stats
	logrus.WithFields(logrus.Fields{
		"handsPlayed":   stats.HandsPlayed,
		"amountWagered": stats.AmountWagered,
		"amountWon":     stats.AmountWon,
		"bonusHits":     stats.BonusHits,
		"balance":       betting.Balance,
	}).Info("simulation complete")
}

func placeBets(betting *baccarat.BettingRound, cfg config.Config) error {
	if err := betting.PlaceMainBet(cfg.MainBet.Selection, cfg.MainBet.Amount); err != nil {
		return err
	}

	for kind, amount := range cfg.BonusBets {
		if err := betting.PlaceBonusBet(kind, amount); err != nil {
			return err
		}
	}

	return nil
}

func drainGameLog(game *baccarat.Game) {
	for {
		select {
		case messages := <-game.LogChan():
			for _, msg := range messages {
				logrus.WithField("uuid", msg.UUID).Debug(msg.Message)
			}
		default:
			return
		}
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
