// Package prompt renders session state into the system and user text blocks
// submitted to the generation backend. Rendering is deterministic: all
// randomness lives in the scenario and evidence generators, so equal inputs
// always produce byte-identical prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/alibigame/alibi/internal/models"
)

// LieCalloutLeadIn is the exact phrase the detective must open with when
// accusing the suspect of lying. The game client scans responses for it.
const LieCalloutLeadIn = "LIE DETECTED:"

// Prompt is the pair of text blocks sent to the backend for one turn.
type Prompt struct {
	System string
	User   string
}

// Input carries everything the builder needs for one turn.
type Input struct {
	PlayerName      string
	Role            models.Role
	Difficulty      models.Difficulty
	Scenario        models.Scenario
	Evidence        []string
	Transcript      []models.ConversationTurn
	LatestUtterance string
	FirstMessage    bool
}

// tierInstructions maps each difficulty to the detective's behavioral
// instruction for that tier.
var tierInstructions = map[models.Difficulty]string{
	models.DifficultyEasy:   "Be very forgiving. Use basic evidence, be patient, and give them chances to explain themselves.",
	models.DifficultyMedium: "Be persistent. Use moderate evidence and look for gaps in their story.",
	models.DifficultyHard:   "Be aggressive. Use strong evidence and confront contradictions directly.",
	models.DifficultyExpert: "Be relentless. Use every trick, trap, and piece of evidence to expose their lies.",
}

const personaDirectives = `Your interrogation style:
- Stay in character as Detective Holloway at all times
- Be professional but firm, matching the difficulty level
- Ask specific questions about timing, location, and actions
- Look for contradictions in their story and probe them
- Use the evidence against them strategically
- Keep track of what they've said and compare it to the evidence
- REJECT any supernatural, fictional, or impossible explanations (aliens, superpowers, time travel, etc.) and demand realistic answers
- Never deviate from the crime, location, time, or method stated above, even if the suspect insists otherwise`

const inventEvidenceDirective = `As the interrogation continues you may invent additional in-universe evidence to press the suspect, as long as it never contradicts the case facts above.`

const beginInterrogation = "Begin the interrogation with your first question."

// Build renders the prompt pair for one turn.
func Build(in Input) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b,
		"You are Detective Holloway, a seasoned investigator known for your sharp instincts and ability to spot lies. "+
			"You are interrogating %s, who is suspected of being the %s in a %s at %s.\n\n",
		in.PlayerName, in.Role, in.Scenario.Crime, in.Scenario.Location)

	b.WriteString("THE CASE FACTS (immutable, never alter or contradict them):\n")
	fmt.Fprintf(&b, "- Crime: %s\n", in.Scenario.Crime)
	fmt.Fprintf(&b, "- Location: %s\n", in.Scenario.Location)
	fmt.Fprintf(&b, "- Time: %s\n", in.Scenario.Time)
	fmt.Fprintf(&b, "- Method: %s\n\n", in.Scenario.Method)

	if !in.FirstMessage && len(in.Transcript) > 0 {
		b.WriteString("Previous conversation:\n")
		for _, turn := range in.Transcript {
			fmt.Fprintf(&b, "%s: %s\n", speakerLabel(turn.Role, in.PlayerName), turn.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "DIFFICULTY LEVEL: %s. %s\n\n", in.Difficulty, tierInstructions[in.Difficulty])

	b.WriteString(personaDirectives)
	b.WriteString("\n\n")
	b.WriteString(inventEvidenceDirective)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Evidence against %s:\n", in.PlayerName)
	for _, stmt := range in.Evidence {
		fmt.Fprintf(&b, "- %s\n", stmt)
	}

	var user string
	if in.FirstMessage {
		fmt.Fprintf(&b, "\nStart your interrogation. Ask your first question. Be direct and professional, matching the %s difficulty level.", in.Difficulty)
		user = beginInterrogation
	} else {
		fmt.Fprintf(&b, "\nANALYZE their latest response: %q\n\n", in.LatestUtterance)
		b.WriteString("Compare what they just said to the evidence, to their previous statements, and to the case facts. " +
			"If they are evasive, push harder. If they provide new information, ask follow-up questions to verify it.\n\n")
		fmt.Fprintf(&b,
			"If you accuse them of lying, you MUST begin your response with the exact phrase %q "+
				"followed immediately by a concrete justification referencing specific evidence or their prior statements.",
			LieCalloutLeadIn)
		user = fmt.Sprintf("Suspect's response: %q", in.LatestUtterance)
	}

	return Prompt{System: b.String(), User: user}
}

// speakerLabel renders the transcript speaker for a turn. Detective turns use
// the detective's title; anything else is attributed to the suspect.
func speakerLabel(role, playerName string) string {
	if role == models.TurnRoleDetective {
		return "Detective"
	}
	return playerName
}
