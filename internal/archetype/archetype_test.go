package archetype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermine(t *testing.T) {
	tests := []struct {
		name          string
		attachment    string
		communication string
		confidence    int
		want          string
	}{
		{"secure high", "secure", "passive", 70, "confident-anchor"},
		{"secure assertive", "secure", "assertive", 40, "confident-anchor"},
		{"secure low", "secure", "passive", 50, "steady-connector"},
		{"anxious high", "anxious", "passive", 70, "devoted-romantic"},
		{"anxious low", "anxious", "assertive", 50, "careful-romantic"},
		{"avoidant high", "avoidant", "passive", 70, "independent-spirit"},
		{"avoidant assertive", "avoidant", "assertive", 40, "independent-spirit"},
		{"avoidant low", "avoidant", "passive", 50, "private-protector"},
		{"disorganized high", "disorganized", "passive", 70, "complex-soul"},
		{"disorganized low", "disorganized", "assertive", 50, "searching-soul"},
		{"boundary 59", "anxious", "passive", 59, "careful-romantic"},
		{"boundary 60", "anxious", "passive", 60, "devoted-romantic"},
		{"fallback passive", "mixed", "passive", 90, "diplomatic-dater"},
		{"fallback aggressive", "", "aggressive", 0, "fiery-heart"},
		{"fallback passive aggressive", "mixed", "passive_aggressive", 0, "subtle-communicator"},
		{"fallback assertive", "mixed", "assertive", 0, "clear-voice"},
		{"fallback default", "mixed", "mixed", 0, "steady-connector"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Determine(tt.attachment, tt.communication, tt.confidence)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetermine_AlwaysKnown(t *testing.T) {
	attachments := []string{"secure", "anxious", "avoidant", "disorganized", "other"}
	styles := []string{"passive", "aggressive", "passive_aggressive", "assertive", "other"}
	for _, a := range attachments {
		for _, s := range styles {
			for _, c := range []int{0, 59, 60, 100} {
				id := Determine(a, s, c)
				assert.True(t, Known(id), "%s/%s/%d -> %s", a, s, c, id)
			}
		}
	}
}

func TestLookup_Fallback(t *testing.T) {
	assert.Equal(t, "steady-connector", Lookup("no-such-archetype").ID)
	assert.Equal(t, "The Clear Voice", Lookup("clear-voice").Name)
}

func TestAll_Copy(t *testing.T) {
	all := All()
	assert.Len(t, all, 12)
	all[0].ID = "changed"
	assert.Equal(t, "steady-connector", All()[0].ID)
}

func TestResolve(t *testing.T) {
	d := Resolve("secure", "assertive", 10)
	assert.Equal(t, "confident-anchor", d.ID)
	assert.NotEmpty(t, d.Strengths)
	assert.NotEmpty(t, d.GrowthAreas)
}

func TestFormatList(t *testing.T) {
	out := FormatList(All()[:2])

	assert.True(t, strings.HasPrefix(out, "The Steady Connector (steady-connector)\n"))
	assert.Contains(t, out, "  + Builds trust through consistent actions\n")
	assert.Equal(t, 1, strings.Count(out, "\n\n"), "definitions are separated by one blank line")
	assert.Empty(t, FormatList(nil))
}
