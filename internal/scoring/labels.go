package scoring

import "strings"

var labels = map[string]string{
	"secure":             "Secure",
	"anxious":            "Anxious",
	"avoidant":           "Avoidant",
	"disorganized":       "Fearful",
	"passive":            "Passive",
	"aggressive":         "Aggressive",
	"passive_aggressive": "Passive-Aggressive",
	"assertive":          "Assertive",
	"words":              "Words of Affirmation",
	"time":               "Quality Time",
	"service":            "Acts of Service",
	"gifts":              "Receiving Gifts",
	"touch":              "Physical Touch",
}

// Label returns the display label for a dimension, or name itself.
func Label(name string) string {
	if l, ok := labels[name]; ok {
		return l
	}
	return name
}

var details = map[string][3]string{
	"confidence": {"High", "Moderate", "Building"},
	"emotional":  {"Open", "Balanced", "Reserved"},
	"intimacy":   {"Comfortable", "Moderate", "Cautious"},
	"boundaries": {"Strong", "Growing", "Flexible"},
}

// Detail describes a 0-100 score for category: >=70 high, >=40 mid, else low.
// Unknown categories yield "".
func Detail(score int, category string) string {
	d, ok := details[strings.ToLower(category)]
	if !ok {
		return ""
	}
	switch {
	case score >= 70:
		return d[0]
	case score >= 40:
		return d[1]
	default:
		return d[2]
	}
}
