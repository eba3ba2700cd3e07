// Package sequence reduces a sequence of coin flips to a scoring summary.
//
// A Summary describes a contiguous range of flips: the first and last flip
// and the points scored by pairs lying entirely inside the range. Combine
// joins the summaries of two adjacent ranges and scores the one pair that
// straddles the seam, so a sequence can be cut into arbitrary chunks, each
// chunk reduced independently, and the chunk summaries combined in range
// order. Empty is the identity of Combine.
package sequence

import "coinflip/game"

// Summary is one of Empty, Single or Run.
type Summary interface {
	summary()
}

// Empty summarizes a range with no flips.
type Empty struct{}

// Single summarizes a range of exactly one flip. A lone flip has no pair yet.
type Single struct {
	Outcome game.Outcome
}

// Run summarizes a range of two or more flips. Points only count pairs inside
// the range.
type Run struct {
	Length      int
	First       game.Outcome
	Last        game.Outcome
	AlicePoints int
	BobPoints   int
}

func (Empty) summary()  {}
func (Single) summary() {}
func (Run) summary()    {}

func Identity() Summary {
	return Empty{}
}

// Lift promotes a single flip into a summary.
func Lift(o game.Outcome) Summary {
	return Single{Outcome: o}
}

// Combine joins the summary of a range with the summary of the range
// immediately following it. It is associative but not commutative.
func Combine(left, right Summary) Summary {
	switch l := left.(type) {
	case Empty:
		return right
	case Single:
		switch r := right.(type) {
		case Empty:
			return l
		case Single:
			return pair(l.Outcome, r.Outcome)
		case Run:
			return prepend(l.Outcome, r)
		}
	case Run:
		switch r := right.(type) {
		case Empty:
			return l
		case Single:
			return postpend(l, r.Outcome)
		case Run:
			return concat(l, r)
		}
	}
	panic("unexpected summary type")
}

func pair(a, b game.Outcome) Run {
	alice, bob := game.Score(a, b)
	return Run{
		Length:      2,
		First:       a,
		Last:        b,
		AlicePoints: alice,
		BobPoints:   bob,
	}
}

func prepend(a game.Outcome, r Run) Run {
	alice, bob := game.Score(a, r.First)
	return Run{
		Length:      r.Length + 1,
		First:       a,
		Last:        r.Last,
		AlicePoints: r.AlicePoints + alice,
		BobPoints:   r.BobPoints + bob,
	}
}

func postpend(r Run, b game.Outcome) Run {
	alice, bob := game.Score(r.Last, b)
	return Run{
		Length:      r.Length + 1,
		First:       r.First,
		Last:        b,
		AlicePoints: r.AlicePoints + alice,
		BobPoints:   r.BobPoints + bob,
	}
}

func concat(l, r Run) Run {
	alice, bob := game.Score(l.Last, r.First)
	return Run{
		Length:      l.Length + r.Length,
		First:       l.First,
		Last:        r.Last,
		AlicePoints: l.AlicePoints + r.AlicePoints + alice,
		BobPoints:   l.BobPoints + r.BobPoints + bob,
	}
}
