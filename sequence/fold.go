package sequence

import "coinflip/game"

// Fold reduces outcomes left to right.
func Fold(outcomes ...game.Outcome) Summary {
	s := Identity()
	for _, o := range outcomes {
		s = Combine(s, Lift(o))
	}
	return s
}

// Flip reduces n flips of a coin left to right.
func Flip(coin game.Coin, n int) Summary {
	s := Identity()
	for i := 0; i < n; i++ {
		s = Combine(s, Lift(coin.Flip()))
	}
	return s
}

// Length is the number of flips a summary covers.
func Length(s Summary) int {
	switch s := s.(type) {
	case Single:
		return 1
	case Run:
		return s.Length
	default:
		return 0
	}
}

// Points returns the points scored inside the range. Ranges shorter than two
// flips score nothing.
func Points(s Summary) (alice, bob int) {
	if r, ok := s.(Run); ok {
		return r.AlicePoints, r.BobPoints
	}
	return 0, 0
}
