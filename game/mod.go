package game

// Outcome is the face a coin lands on.
type Outcome uint8

const (
	Heads Outcome = iota
	Tails
)

func (o Outcome) String() string {
	switch o {
	case Heads:
		return "Heads"
	case Tails:
		return "Tails"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a single trial from the players' perspective.
type Result uint8

const (
	Tie Result = iota
	AliceWin
	BobWin
)

func (r Result) String() string {
	switch r {
	case Tie:
		return "Tie"
	case AliceWin:
		return "AliceWin"
	case BobWin:
		return "BobWin"
	default:
		return "Unknown"
	}
}
