package engine

import (
	"errors"

	"coinflip/game"
	"coinflip/sequence"
)

var ErrNegativeCount = errors.New("count must not be negative")

// Classify decides a trial from the summary of its whole flip sequence.
// Fewer than two flips leave nothing to score, which is a tie.
func Classify(s sequence.Summary) game.Result {
	alice, bob := sequence.Points(s)
	switch {
	case alice > bob:
		return game.AliceWin
	case bob > alice:
		return game.BobWin
	default:
		return game.Tie
	}
}
