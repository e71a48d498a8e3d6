package baccarat

import (
	"fmt"

	"baccarat-server/pkg/deck"
)

// Winner identifies the outcome of a round
type Winner int

// winner constants
const (
	WinnerNone Winner = iota
	WinnerPlayer
	WinnerBanker
	WinnerTie
)

// String returns the winner name
func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerPlayer:
		return "player"
	case WinnerBanker:
		return "banker"
	case WinnerTie:
		return "tie"
	}

	panic(fmt.Sprintf("unknown winner: %d", int(w)))
}

// Round is the state of a single baccarat round.
// The scores are derived from the hands and recomputed after every card;
// once Complete is set the round is terminal.
type Round struct {
	PlayerHand  deck.Hand `json:"playerHand"`
	BankerHand  deck.Hand `json:"bankerHand"`
	PlayerScore int       `json:"playerScore"`
	BankerScore int       `json:"bankerScore"`
	Complete    bool      `json:"complete"`
	Winner      Winner    `json:"winner"`
}

func newRound() *Round {
	return &Round{
		PlayerHand: deck.Hand{},
		BankerHand: deck.Hand{},
	}
}

// HandScore returns the baccarat score for the hand: the sum of the card
// values, modulo ten
func HandScore(hand deck.Hand) int {
	total := 0
	for _, card := range hand {
		total += card.BaccaratValue()
	}

	return total % 10
}

func (r *Round) addPlayerCard(card *deck.Card) {
	r.PlayerHand.AddCard(card)
	r.updateScores()
}

func (r *Round) addBankerCard(card *deck.Card) {
	r.BankerHand.AddCard(card)
	r.updateScores()
}

func (r *Round) updateScores() {
	r.PlayerScore = HandScore(r.PlayerHand)
	r.BankerScore = HandScore(r.BankerHand)
}

// PlayerPair returns true if the player's first two cards share a rank
func (r *Round) PlayerPair() bool {
	return r.PlayerHand.Len() >= 2 && r.PlayerHand[0].Rank == r.PlayerHand[1].Rank
}

// BankerPair returns true if the banker's first two cards share a rank
func (r *Round) BankerPair() bool {
	return r.BankerHand.Len() >= 2 && r.BankerHand[0].Rank == r.BankerHand[1].Rank
}

// EitherPair returns true if either hand's first two cards share a rank
func (r *Round) EitherPair() bool {
	return r.PlayerPair() || r.BankerPair()
}

// PerfectPair returns true if either hand's first two cards share both rank and suit
func (r *Round) PerfectPair() bool {
	playerPerfect := r.PlayerPair() && r.PlayerHand[0].Suit == r.PlayerHand[1].Suit
	bankerPerfect := r.BankerPair() && r.BankerHand[0].Suit == r.BankerHand[1].Suit

	return playerPerfect || bankerPerfect
}

// Dragon7 returns true if the banker won with exactly three cards and a score of seven
func (r *Round) Dragon7() bool {
	return r.Winner == WinnerBanker && r.BankerScore == 7 && r.BankerHand.Len() == 3
}

// Panda8 returns true if the player won with exactly three cards and a score of eight
func (r *Round) Panda8() bool {
	return r.Winner == WinnerPlayer && r.PlayerScore == 8 && r.PlayerHand.Len() == 3
}

// VictoryMargin returns the score difference between the winning and losing
// hand, or 0 if there is no winner or the round tied
func (r *Round) VictoryMargin() int {
	if r.Winner != WinnerPlayer && r.Winner != WinnerBanker {
		return 0
	}

	if r.PlayerScore > r.BankerScore {
		return r.PlayerScore - r.BankerScore
	}

	return r.BankerScore - r.PlayerScore
}
