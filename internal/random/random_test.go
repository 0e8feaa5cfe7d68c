package random_test

import (
	"testing"

	"github.com/alibigame/alibi/internal/random"
	"github.com/stretchr/testify/require"
)

func TestSeededDeterminism(t *testing.T) {
	a := random.NewSeeded(42)
	b := random.NewSeeded(42)
	for range 100 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestPick(t *testing.T) {
	r := random.New()
	xs := []string{"a", "b", "c"}
	for range 50 {
		require.Contains(t, xs, random.Pick(r, xs))
	}
}

func TestShuffled(t *testing.T) {
	r := random.NewSeeded(7)
	xs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := random.Shuffled(r, xs)
	require.ElementsMatch(t, xs, got)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, xs, "original must not be mutated")
}
