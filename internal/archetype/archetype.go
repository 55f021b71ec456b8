package archetype

// HighConfidence is the confidence score at or above which a respondent
// counts as highly confident.
const HighConfidence = 60

// Determine maps primary attachment, primary communication style and
// confidence to an archetype id. Unknown attachments fall back to the
// communication style, then to steady-connector.
func Determine(attachment, communication string, confidence int) string {
	high := confidence >= HighConfidence

	switch attachment {
	case "secure":
		if communication == "assertive" || high {
			return "confident-anchor"
		}
		return "steady-connector"
	case "anxious":
		if high {
			return "devoted-romantic"
		}
		return "careful-romantic"
	case "avoidant":
		if high || communication == "assertive" {
			return "independent-spirit"
		}
		return "private-protector"
	case "disorganized":
		if high {
			return "complex-soul"
		}
		return "searching-soul"
	}

	switch communication {
	case "passive":
		return "diplomatic-dater"
	case "aggressive":
		return "fiery-heart"
	case "passive_aggressive":
		return "subtle-communicator"
	case "assertive":
		return "clear-voice"
	}
	return "steady-connector"
}

// Resolve is Determine followed by Lookup.
func Resolve(attachment, communication string, confidence int) Definition {
	return Lookup(Determine(attachment, communication, confidence))
}
