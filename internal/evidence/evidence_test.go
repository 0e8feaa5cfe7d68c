package evidence_test

import (
	"strings"
	"testing"

	"github.com/alibigame/alibi/internal/evidence"
	"github.com/alibigame/alibi/internal/models"
	"github.com/alibigame/alibi/internal/random"
	"github.com/stretchr/testify/require"
)

var testScenario = models.Scenario{
	Crime:    "Bank Vault Heist",
	Location: "Central Bank downtown",
	Time:     "11:43 PM",
	Method:   "Drilled through the back wall",
}

func TestGenerateCounts(t *testing.T) {
	tests := []struct {
		tier models.Difficulty
		min  int
		max  int
	}{
		{models.DifficultyEasy, 3, 3},
		{models.DifficultyMedium, 5, 5},
		{models.DifficultyHard, 7, 8},
		{models.DifficultyExpert, 9, 11},
	}

	gen := evidence.NewGenerator(random.NewSeeded(3))
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			for range 50 {
				got := gen.Generate(testScenario, "Alice", tt.tier)
				require.GreaterOrEqual(t, len(got), tt.min)
				require.LessOrEqual(t, len(got), tt.max)
			}
		})
	}
}

func TestGenerateNoDuplicates(t *testing.T) {
	gen := evidence.NewGenerator(random.NewSeeded(5))
	for range 100 {
		got := gen.Generate(testScenario, "Alice", models.DifficultyExpert)
		seen := make(map[string]bool, len(got))
		for _, stmt := range got {
			require.False(t, seen[stmt], "duplicate statement %q", stmt)
			seen[stmt] = true
		}
	}
}

func TestGenerateInterpolatesSubjectAndScenario(t *testing.T) {
	gen := evidence.NewGenerator(random.NewSeeded(8))
	got := gen.Generate(testScenario, "Bob", models.DifficultyExpert)

	var mentionsSubject bool
	for _, stmt := range got {
		if strings.Contains(stmt, "Bob") {
			mentionsSubject = true
		}
		require.NotContains(t, stmt, "Alice")
	}
	require.True(t, mentionsSubject, "no statement mentions the suspect: %v", got)
}

func TestGenerateUnknownTierFallsBackToMedium(t *testing.T) {
	seed := uint64(11)
	fromUnknown := evidence.NewGenerator(random.NewSeeded(seed)).Generate(testScenario, "Alice", "Nightmare")
	fromMedium := evidence.NewGenerator(random.NewSeeded(seed)).Generate(testScenario, "Alice", models.DifficultyMedium)
	require.Equal(t, fromMedium, fromUnknown)
}

func TestTierPoolsDoNotLeakDownward(t *testing.T) {
	// Statements exclusive to the Expert pool must never show up at Easy.
	gen := evidence.NewGenerator(random.NewSeeded(13))
	for range 200 {
		for _, stmt := range gen.Generate(testScenario, "Alice", models.DifficultyEasy) {
			require.NotContains(t, stmt, "Satellite imagery")
			require.NotContains(t, stmt, "co-conspirator")
			require.NotContains(t, stmt, "DNA")
		}
	}
}
