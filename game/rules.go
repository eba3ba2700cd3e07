package game

// Score returns the points a pair of consecutive flips x, y is worth.
// Alice scores on a repeat of Heads, Bob on Heads followed by Tails. A pair
// starting with Tails scores nobody.
func Score(x, y Outcome) (alice, bob int) {
	if x != Heads {
		return 0, 0
	}
	if y == Heads {
		return 1, 0
	}
	return 0, 1
}
