package game

// Tally counts trial results. The zero value is an empty tally.
type Tally struct {
	AliceWins uint64 `json:"alice_wins"`
	BobWins   uint64 `json:"bob_wins"`
	Ties      uint64 `json:"ties"`
}

// TallyOf returns the one-hot tally for a single result.
func TallyOf(r Result) Tally {
	switch r {
	case AliceWin:
		return Tally{AliceWins: 1}
	case BobWin:
		return Tally{BobWins: 1}
	default:
		return Tally{Ties: 1}
	}
}

// Merge adds two tallies. It is associative and commutative.
func (t Tally) Merge(other Tally) Tally {
	return Tally{
		AliceWins: t.AliceWins + other.AliceWins,
		BobWins:   t.BobWins + other.BobWins,
		Ties:      t.Ties + other.Ties,
	}
}

// Total is the number of trials recorded.
func (t Tally) Total() uint64 {
	return t.AliceWins + t.BobWins + t.Ties
}
