// Package scenario generates the immutable crime scenario assigned to a
// session at first contact. Crime and location are drawn together from a
// table of plausible pairs so that a bank heist never happens at a gas
// station.
package scenario

import (
	"fmt"

	"github.com/alibigame/alibi/internal/models"
	"github.com/alibigame/alibi/internal/random"
)

// caper binds a crime to the locations where it can plausibly take place.
type caper struct {
	crime     string
	locations []string
}

var capers = []caper{
	{"Bank Vault Heist", []string{"Central Bank downtown", "Local Credit Union"}},
	{"Jewelry Store Robbery", []string{"Diamond District", "Shopping Mall"}},
	{"Art Museum Theft", []string{"Modern Art Gallery"}},
	{"Casino Cash Grab", []string{"Royal Casino"}},
	{"Tech Company Break-in", []string{"Silicon Valley Tech Campus"}},
	{"Pharmaceutical Warehouse Raid", []string{"Downtown Medical District"}},
	{"Auction House Theft", []string{"High-End Auction House"}},
	{"Diamond Exchange Robbery", []string{"International Diamond Exchange"}},
	{"Armored Truck Heist", []string{"Fort Knox Military Base", "Central Bank downtown"}},
	{"ATM Robbery", []string{"Gas Station", "Shopping Mall", "Local Credit Union"}},
	{"Safe Deposit Box Theft", []string{"Central Bank downtown", "Local Credit Union"}},
	{"Cash Register Robbery", []string{"Gas Station", "Shopping Mall"}},
}

var methods = []string{
	"Drilled through the back wall",
	"Used explosives on the front door",
	"Cut through the skylight",
	"Hacked the security system",
	"Used crowbars to break in",
	"Deployed sleeping gas",
	"Used angle grinders to cut through metal",
	"Employed diamond-tipped drills",
	"Used lockpicking tools",
	"Deployed smoke bombs to disable cameras",
	"Used sledgehammers to break windows",
	"Used bolt cutters on locks",
}

// timeRange is a labeled slice of the day the crime can fall into. Hours run
// in a 24–30 space so that late-night ranges can cross midnight; values >=24
// roll into the next calendar day's early hours.
type timeRange struct {
	label string
	from  int
	to    int
}

var timeRanges = []timeRange{
	{"late night", 22, 27},
	{"evening", 18, 21},
	{"early morning", 28, 30},
	{"afternoon", 13, 17},
	{"morning", 7, 11},
}

// Generator produces random crime scenarios. The random source is injected so
// tests can fix the seed.
type Generator struct {
	rand *random.Rand
}

func NewGenerator(r *random.Rand) *Generator {
	return &Generator{rand: r}
}

// Generate draws a new internally consistent scenario: a crime/location pair,
// a break-in method, and a 12-hour clock time within one of the labeled
// ranges.
func (g *Generator) Generate() models.Scenario {
	c := random.Pick(g.rand, capers)
	tr := random.Pick(g.rand, timeRanges)
	hour := tr.from + g.rand.IntN(tr.to-tr.from+1)
	minute := g.rand.IntN(60)

	return models.Scenario{
		Crime:    c.crime,
		Location: random.Pick(g.rand, c.locations),
		Time:     formatClock(hour, minute),
		Method:   random.Pick(g.rand, methods),
	}
}

// formatClock renders an hour in the 24–30 space as a 12-hour clock string
// with zero-padded minutes.
func formatClock(hour, minute int) string {
	h := hour % 24
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}

// IsValidPair reports whether crime and location form one of the predefined
// pairs. The interrogation endpoint tests use it to assert that scenarios are
// never an arbitrary cross product.
func IsValidPair(crime, location string) bool {
	for _, c := range capers {
		if c.crime != crime {
			continue
		}
		for _, l := range c.locations {
			if l == location {
				return true
			}
		}
	}
	return false
}
