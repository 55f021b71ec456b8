package stats

import (
	"fmt"
	"strings"

	"github.com/suykerbuyk/qv/internal/archetype"
	"github.com/suykerbuyk/qv/internal/scoring"
)

// Format renders a Summary as aligned terminal output.
func Format(s Summary) string {
	if s.Total == 0 {
		return "qv stats\n\n  No response sets scored.\n"
	}

	var b strings.Builder
	b.WriteString("qv stats\n")

	// Overview
	b.WriteString("\nOverview\n")
	fmt.Fprintf(&b, "  %-22s %d\n", "response sets", s.Total)
	fmt.Fprintf(&b, "  %-22s %d\n", "complete", s.Complete)
	fmt.Fprintf(&b, "  %-22s %s\n", "avg completion", formatPercent(s.AvgCompletion))

	// Averages
	b.WriteString("\nAverages\n")
	fmt.Fprintf(&b, "  %-22s %5.1f\n", "confidence", s.AvgConfidence)
	fmt.Fprintf(&b, "  %-22s %5.1f\n", "emotional", s.AvgEmotional)
	fmt.Fprintf(&b, "  %-22s %5.1f\n", "intimacy comfort", s.AvgComfort)
	fmt.Fprintf(&b, "  %-22s %5.1f\n", "intimacy boundaries", s.AvgBoundaries)

	writeCounts(&b, "Archetypes", s.Archetypes, func(id string) string {
		return archetype.Lookup(id).Name
	})
	writeCounts(&b, "Attachment", s.Attachment, scoring.Label)
	writeCounts(&b, "Communication", s.Communication, scoring.Label)
	writeCounts(&b, "Top Love Language", s.LoveLanguages, scoring.Label)

	return b.String()
}

func writeCounts(b *strings.Builder, title string, rows []CountStats, label func(string) string) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, r := range rows {
		fmt.Fprintf(b, "  %-24s %3d (%d%%)\n", label(r.Name), r.Count, int(r.Percent))
	}
}

// formatPercent formats a 0-100 value with no decimals.
func formatPercent(f float64) string {
	return fmt.Sprintf("%d%%", int(f+0.5))
}
