// Package evidence produces the tiered evidence list stacked against a
// suspect. Each tier has its own phrasing pool; the statement count grows
// with the tier so higher difficulties leave the suspect less room to
// improvise.
package evidence

import (
	"fmt"

	"github.com/alibigame/alibi/internal/models"
	"github.com/alibigame/alibi/internal/random"
)

// template renders one evidence statement from the suspect and scenario.
type template func(name string, s models.Scenario) string

var basePool = []template{
	func(name string, s models.Scenario) string {
		return fmt.Sprintf("%s's phone pinged near %s at %s", name, s.Location, s.Time)
	},
	func(_ string, s models.Scenario) string {
		return fmt.Sprintf("Security cameras captured suspicious activity at %s", s.Time)
	},
	func(string, models.Scenario) string {
		return "A witness reported seeing a suspicious vehicle near the scene"
	},
}

var tierPools = map[models.Difficulty][]template{
	models.DifficultyEasy: {
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("%s was seen in the area earlier that day", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("A red car matching %s's description was spotted", name)
		},
	},
	models.DifficultyMedium: {
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("%s's fingerprints were found on the getaway vehicle", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("Cell tower data places %s at the scene", name)
		},
		func(name string, s models.Scenario) string {
			return fmt.Sprintf("A neighbor reported seeing %s leave their house at %s", name, s.Time)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("Security footage shows someone matching %s's build entering the building", name)
		},
	},
	models.DifficultyHard: {
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("%s's DNA was found on a tool left at the scene", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("Bank records show %s withdrew $5000 the day before", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("A burner phone registered to %s's address was used to coordinate", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("GPS data from %s's car shows it was parked near the scene", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("A witness identified %s from a photo lineup", name)
		},
		func(name string, s models.Scenario) string {
			return fmt.Sprintf("Forensic analysis links %s to the break-in: %s", name, s.Method)
		},
	},
	models.DifficultyExpert: {
		func(name string, s models.Scenario) string {
			return fmt.Sprintf("%s's laptop contains detailed plans of the %s", name, s.Location)
		},
		func(name string, s models.Scenario) string {
			return fmt.Sprintf("A hidden camera in %s's home shows them rehearsing the break-in: %s", name, s.Method)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("Financial records show %s purchased specialized equipment", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("A co-conspirator has already confessed and implicated %s", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("Satellite imagery shows %s's exact movements that night", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("A recording of %s discussing the plan was found", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("Forensic timeline analysis proves %s was at the scene", name)
		},
		func(name string, _ models.Scenario) string {
			return fmt.Sprintf("A coded message in %s's phone directly references the crime", name)
		},
	},
}

// tierCounts sets the statement count per tier; the top tiers additionally
// get a small random bonus.
var tierCounts = map[models.Difficulty]int{
	models.DifficultyEasy:   3,
	models.DifficultyMedium: 5,
	models.DifficultyHard:   7,
	models.DifficultyExpert: 9,
}

// Generator selects evidence statements for a suspect. The random source is
// injected so tests can fix the seed.
type Generator struct {
	rand *random.Rand
}

func NewGenerator(r *random.Rand) *Generator {
	return &Generator{rand: r}
}

// Generate renders the evidence list for the given scenario, suspect, and
// tier. The list is a shuffled prefix of the base pool concatenated with the
// tier's pool, so a single call never repeats a statement. Unrecognized tiers
// fall back to Medium.
func (g *Generator) Generate(s models.Scenario, playerName string, tier models.Difficulty) []string {
	pool, ok := tierPools[tier]
	if !ok {
		tier = models.DifficultyMedium
		pool = tierPools[tier]
	}

	count := tierCounts[tier]
	switch tier {
	case models.DifficultyHard:
		count += g.rand.IntN(2)
	case models.DifficultyExpert:
		count += g.rand.IntN(3)
	}

	combined := make([]template, 0, len(basePool)+len(pool))
	combined = append(combined, basePool...)
	combined = append(combined, pool...)
	if count > len(combined) {
		count = len(combined)
	}

	shuffled := random.Shuffled(g.rand, combined)
	out := make([]string, count)
	for i, tmpl := range shuffled[:count] {
		out[i] = tmpl(playerName, s)
	}
	return out
}
