package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"baccarat-server/internal/util"
)

// Config provides configuration for the baccarat simulator
type Config struct {
	loaded          bool
	Variant         string `yaml:"variant" envconfig:"variant"`
	Decks           int    `yaml:"decks" envconfig:"decks"`
	Seed            int64  `yaml:"seed" envconfig:"seed"`
	StartingBalance int    `yaml:"startingBalance" envconfig:"starting_balance"`
	Rounds          int    `yaml:"rounds" envconfig:"rounds"`
	MainBet         struct {
		Selection string `yaml:"selection" envconfig:"selection"`
		Amount    int    `yaml:"amount" envconfig:"amount"`
	} `yaml:"mainBet"`
	BonusBets map[string]int `yaml:"bonusBets" envconfig:"bonus_bets"`
	Log       struct {
		Level string `yaml:"level" envconfig:"level"`
	} `yaml:"log"`
}

var config Config

func defaults() Config {
	c := Config{
		Variant:         "classic",
		Decks:           6,
		StartingBalance: 1000,
		Rounds:          100,
	}
	c.MainBet.Selection = "player"
	c.MainBet.Amount = 25

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and the environment apply
func Load() error {
	config = defaults()

	configFile := util.Getenv("BACCARAT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("baccarat", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
