package stats

import (
	"sort"
	"strings"

	"github.com/suykerbuyk/qv/internal/scoring"
)

// Summary holds aggregate metrics computed from a set of scorecards.
type Summary struct {
	Total         int     `json:"total"`
	Complete      int     `json:"complete"`
	AvgCompletion float64 `json:"avgCompletion"`

	AvgConfidence float64 `json:"avgConfidence"`
	AvgEmotional  float64 `json:"avgEmotional"`
	AvgComfort    float64 `json:"avgIntimacyComfort"`
	AvgBoundaries float64 `json:"avgIntimacyBoundaries"`

	Archetypes    []CountStats `json:"archetypes"`
	Attachment    []CountStats `json:"attachment"`
	Communication []CountStats `json:"communication"`
	LoveLanguages []CountStats `json:"topLoveLanguage"`
}

// CountStats holds how many scorecards landed on one value.
type CountStats struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Compute builds a Summary from scorecards.
func Compute(cards []scoring.Scorecard) Summary {
	var s Summary

	archetypeMap := make(map[string]int)
	attachmentMap := make(map[string]int)
	communicationMap := make(map[string]int)
	loveMap := make(map[string]int)

	var completion, confidence, emotional, comfort, boundaries int

	for _, c := range cards {
		res := c.Results

		s.Total++
		if c.Complete {
			s.Complete++
		}
		completion += c.Completion
		confidence += res.Confidence
		emotional += res.Emotional
		comfort += res.Intimacy.Comfort
		boundaries += res.Intimacy.Boundaries

		archetypeMap[res.Archetype]++
		attachmentMap[res.Attachment.Primary]++
		communicationMap[res.Communication.Primary]++
		if len(res.LoveLanguages.Ranked) > 0 {
			loveMap[res.LoveLanguages.Ranked[0]]++
		}
	}

	// Averages (guard division by zero)
	if s.Total > 0 {
		n := float64(s.Total)
		s.AvgCompletion = float64(completion) / n
		s.AvgConfidence = float64(confidence) / n
		s.AvgEmotional = float64(emotional) / n
		s.AvgComfort = float64(comfort) / n
		s.AvgBoundaries = float64(boundaries) / n
	}

	s.Archetypes = counts(archetypeMap, s.Total)
	s.Attachment = counts(attachmentMap, s.Total)
	s.Communication = counts(communicationMap, s.Total)
	s.LoveLanguages = counts(loveMap, s.Total)

	return s
}

// counts sorts a tally by count desc, then name.
func counts(m map[string]int, total int) []CountStats {
	out := make([]CountStats, 0, len(m))
	for name, count := range m {
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		out = append(out, CountStats{Name: name, Count: count, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
