package archetype

import (
	"fmt"
	"strings"
)

// Definition describes an archetype for display.
type Definition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growthAreas"`
}

// Lookup returns the definition for id. Unknown ids return the first
// definition (steady-connector).
func Lookup(id string) Definition {
	for _, d := range definitions {
		if d.ID == id {
			return d
		}
	}
	return definitions[0]
}

// Known reports whether id names a defined archetype.
func Known(id string) bool {
	for _, d := range definitions {
		if d.ID == id {
			return true
		}
	}
	return false
}

// All returns a copy of every definition in display order.
func All() []Definition {
	return append([]Definition(nil), definitions...)
}

// FormatList renders definitions for terminal output.
func FormatList(defs []Definition) string {
	var b strings.Builder
	for i, d := range defs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%s)\n  %s\n", d.Name, d.ID, d.Summary)
		for _, s := range d.Strengths {
			fmt.Fprintf(&b, "  + %s\n", s)
		}
		for _, g := range d.GrowthAreas {
			fmt.Fprintf(&b, "  - %s\n", g)
		}
	}
	return b.String()
}

var definitions = []Definition{
	{
		ID:      "steady-connector",
		Name:    "The Steady Connector",
		Summary: "You bring stability and warmth to relationships. You're comfortable with closeness and communicate your needs clearly.",
		Strengths: []string{
			"Builds trust through consistent actions",
			"Balances independence with intimacy",
			"Handles conflict constructively",
		},
		GrowthAreas: []string{
			"Practice patience with less secure partners",
			"Recognize your own needs more often",
		},
	},
	{
		ID:      "confident-anchor",
		Name:    "The Confident Anchor",
		Summary: "You're a grounding presence with high self-assurance. Secure attachment and confidence make dating feel natural to you.",
		Strengths: []string{
			"Calm energy in dating situations",
			"Takes initiative without being pushy",
			"Recovers quickly from setbacks",
		},
		GrowthAreas: []string{
			"Be mindful of partners who need more reassurance",
			"Stay open to feedback when feeling confident",
		},
	},
	{
		ID:      "devoted-romantic",
		Name:    "The Devoted Romantic",
		Summary: "You love deeply and invest fully. Your emotional attunement makes you a caring partner, though you sometimes need reassurance.",
		Strengths: []string{
			"Attuned to a partner's emotions",
			"Puts in effort for the relationship",
			"Values emotional connection",
		},
		GrowthAreas: []string{
			"Self-soothe while waiting for replies",
			"Build confidence independent of relationship status",
		},
	},
	{
		ID:      "careful-romantic",
		Name:    "The Careful Romantic",
		Summary: "You approach dating thoughtfully, seeking deep connection while managing worry about outcomes.",
		Strengths: []string{
			"Intentional about dating",
			"Empathetic and caring",
			"Willing to be vulnerable",
		},
		GrowthAreas: []string{
			"Trust your instincts more",
			"Enjoy the moment rather than predicting outcomes",
		},
	},
	{
		ID:      "independent-spirit",
		Name:    "The Independent Spirit",
		Summary: "You value autonomy and bring self-sufficiency to relationships. The challenge is letting others in while keeping your independence.",
		Strengths: []string{
			"Strong sense of self and boundaries",
			"Keeps identity within relationships",
			"Flexible and low maintenance",
		},
		GrowthAreas: []string{
			"Stay engaged when feeling smothered",
			"Verbalize affection more often",
		},
	},
	{
		ID:      "private-protector",
		Name:    "The Private Protector",
		Summary: "You guard your heart and need trust before opening up. Lowering walls gradually can deepen your connections.",
		Strengths: []string{
			"Self-reliant and resilient",
			"Selective about who gets close",
			"Calm under pressure",
		},
		GrowthAreas: []string{
			"Share feelings proactively",
			"Notice when distance becomes a defense",
		},
	},
	{
		ID:      "complex-soul",
		Name:    "The Complex Soul",
		Summary: "You experience relationships intensely, pulled between closeness and space. Understanding the pattern leads to steadier connections.",
		Strengths: []string{
			"Passionate when committed",
			"Self-aware once patterns are recognized",
			"Capable of deep emotion",
		},
		GrowthAreas: []string{
			"Keep communication routines consistent",
			"Notice hot-cold patterns as they emerge",
		},
	},
	{
		ID:      "searching-soul",
		Name:    "The Searching Soul",
		Summary: "You're working out your relationship patterns. Inconsistent tendencies point toward what you truly need.",
		Strengths: []string{
			"Open to growth",
			"Authentic about complex emotions",
			"Seeks meaningful connection",
		},
		GrowthAreas: []string{
			"Build confidence through small wins",
			"Communicate when feeling conflicted",
		},
	},
	{
		ID:      "diplomatic-dater",
		Name:    "The Diplomatic Dater",
		Summary: "You keep the peace, sometimes at the cost of your own needs. Voicing preferences kindly will strengthen your connections.",
		Strengths: []string{
			"Easy-going and adaptable",
			"Reads social situations well",
			"Avoids unnecessary drama",
		},
		GrowthAreas: []string{
			"State preferences directly",
			"Speak up when boundaries are crossed",
		},
	},
	{
		ID:      "fiery-heart",
		Name:    "The Fiery Heart",
		Summary: "You feel deeply and express yourself passionately. Channeling that intensity constructively lets partners see your caring side.",
		Strengths: []string{
			"Honest about feelings",
			"Partners know where they stand",
			"Fights for what matters",
		},
		GrowthAreas: []string{
			"Pause before responding in conflict",
			"Listen fully before defending your position",
		},
	},
	{
		ID:      "subtle-communicator",
		Name:    "The Subtle Communicator",
		Summary: "You express displeasure indirectly and hope partners work out what's wrong. Direct communication reduces frustration on both sides.",
		Strengths: []string{
			"Avoids explosive confrontations",
			"Notices problems early",
			"Creative in expressing feelings",
		},
		GrowthAreas: []string{
			"Say what you mean directly",
			"Address issues while they're small",
		},
	},
	{
		ID:      "clear-voice",
		Name:    "The Clear Voice",
		Summary: "You express your needs while respecting others, a real asset in building honest relationships.",
		Strengths: []string{
			"States needs and boundaries clearly",
			"Handles disagreements maturely",
			"Models healthy communication",
		},
		GrowthAreas: []string{
			"Remember not everyone communicates as clearly",
			"Stay open to other communication styles",
		},
	},
}
