package baccarat

import "errors"

// ErrInsufficientBalance is an error when a stake exceeds the available balance
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInvalidAmount is an error when a bet amount is not positive
var ErrInvalidAmount = errors.New("bet amount must be positive")

// ErrInvalidSelection is an error when a bet selection is not recognized
var ErrInvalidSelection = errors.New("invalid bet selection")

// ErrRoundNotComplete is an error when settlement is attempted before the round is over
var ErrRoundNotComplete = errors.New("the round is not complete")
