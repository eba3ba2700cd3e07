package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func flips(coin Coin, n int) []Outcome {
	out := make([]Outcome, n)
	for i := range out {
		out[i] = coin.Flip()
	}
	return out
}

func TestRandomSeeder(t *testing.T) {
	t.Run("same seed and stream replays the same flips", func(t *testing.T) {
		a := NewSeeder(42).Coin(7)
		b := NewSeeder(42).Coin(7)

		require.Equal(t, flips(a, 200), flips(b, 200))
	})

	t.Run("distinct streams differ", func(t *testing.T) {
		seeder := NewSeeder(42)

		require.NotEqual(t, flips(seeder.Coin(0), 200), flips(seeder.Coin(1), 200))
	})

	t.Run("split seeders differ from each other and the parent", func(t *testing.T) {
		seeder := NewSeeder(42)
		parent := flips(seeder.Coin(0), 200)
		first := flips(seeder.Split(0).Coin(0), 200)
		second := flips(seeder.Split(1).Coin(0), 200)

		require.NotEqual(t, parent, first)
		require.NotEqual(t, parent, second)
		require.NotEqual(t, first, second)
	})

	t.Run("coin is roughly fair", func(t *testing.T) {
		const n = 100000
		heads := 0
		for _, o := range flips(NewSeeder(1).Coin(0), n) {
			if o == Heads {
				heads++
			}
		}
		// 10 standard deviations either side of n/2
		require.InDelta(t, n/2, heads, 1600)
	})

	t.Run("entropy seeder produces a coin", func(t *testing.T) {
		seeder, err := NewEntropySeeder()
		require.NoError(t, err)

		for _, o := range flips(seeder.Coin(0), 10) {
			require.Contains(t, []Outcome{Heads, Tails}, o)
		}
	})
}

func TestScript(t *testing.T) {
	script := Script{Heads, Tails, Tails}

	t.Run("replays from the stream position and wraps", func(t *testing.T) {
		require.Equal(t, []Outcome{Heads, Tails, Tails, Heads}, flips(script.Coin(0), 4))
		require.Equal(t, []Outcome{Tails, Tails, Heads}, flips(script.Coin(1), 3))
		require.Equal(t, []Outcome{Tails, Heads}, flips(script.Coin(5), 2))
	})

	t.Run("splits replay the same script", func(t *testing.T) {
		require.Equal(t, flips(script.Coin(0), 3), flips(script.Split(9).Coin(0), 3))
	})

	t.Run("empty script lands on tails", func(t *testing.T) {
		require.Equal(t, []Outcome{Tails, Tails}, flips(Script{}.Coin(3), 2))
	})
}
