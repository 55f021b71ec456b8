package quiz

// Section identifies which part of the questionnaire a question belongs to.
type Section string

const (
	SectionAttachment    Section = "attachment"
	SectionCommunication Section = "communication"
	SectionConfidence    Section = "confidence"
	SectionEmotional     Section = "emotional"
	SectionIntimacy      Section = "intimacy"
	SectionLoveLanguage  Section = "love_language"
)

// Kind distinguishes Likert items from the single multiple-choice scenario.
type Kind string

const (
	Likert   Kind = "likert"
	Scenario Kind = "scenario"
)

// Direction marks a love-language question as giving or receiving.
type Direction string

const (
	Give    Direction = "give"
	Receive Direction = "receive"
)

// ScenarioID is the communication scenario question answered with a key (A-D).
const ScenarioID = "COM_SCENARIO_1"

// Question describes one questionnaire item.
type Question struct {
	ID        string
	Section   Section
	Dimension string // attachment dimension, communication style, intimacy facet or love language
	Direction Direction
	Kind      Kind
	Reverse   bool
}

// Canonical orders. Ties on primary selection resolve to the earliest entry.
var (
	AttachmentOrder    = []string{"secure", "anxious", "avoidant", "disorganized"}
	CommunicationOrder = []string{"passive", "aggressive", "passive_aggressive", "assertive"}
	LoveLanguageOrder  = []string{"words", "time", "service", "gifts", "touch"}
)

// AttachmentQuestions maps each attachment dimension to its questions.
var AttachmentQuestions = map[string][]string{
	"secure":       {"S1", "S2", "S3"},
	"anxious":      {"AX1", "AX2", "AX3"},
	"avoidant":     {"AV1", "AV2", "AV3"},
	"disorganized": {"D1", "D2", "D3"},
}

// CommunicationQuestions maps each communication style to its questions.
var CommunicationQuestions = map[string][]string{
	"passive":            {"COM_PASSIVE_1", "COM_PASSIVE_2"},
	"aggressive":         {"COM_AGGRESSIVE_1", "COM_AGGRESSIVE_2"},
	"passive_aggressive": {"COM_PAGG_1", "COM_PAGG_2"},
	"assertive":          {"COM_ASSERTIVE_1", "COM_ASSERTIVE_2"},
}

// ScenarioStyles maps a scenario answer key to the style it signals.
var ScenarioStyles = map[string]string{
	"A": "passive",
	"B": "aggressive",
	"C": "passive_aggressive",
	"D": "assertive",
}

var (
	ConfidenceQuestions       = []string{"C1", "C2", "C3", "C4", "C5"}
	EmotionalQuestions        = []string{"EA1", "EA2", "EA3", "EA4", "EA5"}
	IntimacyComfortQuestions  = []string{"IC1", "IC2", "IC3"}
	IntimacyBoundaryQuestions = []string{"BA1", "BA2", "BA3"}
)

// LoveLanguagePair holds the give and receive question for one love language.
type LoveLanguagePair struct {
	Give    string
	Receive string
}

// LoveLanguageQuestions maps each love language to its question pair.
var LoveLanguageQuestions = map[string]LoveLanguagePair{
	"words":   {Give: "LL1", Receive: "LL2"},
	"time":    {Give: "LL3", Receive: "LL4"},
	"service": {Give: "LL5", Receive: "LL6"},
	"gifts":   {Give: "LL7", Receive: "LL8"},
	"touch":   {Give: "LL9", Receive: "LL10"},
}

// ExpectedReversed lists the negatively phrased questions, in catalog order.
var ExpectedReversed = []string{"C2", "C4", "EA2", "EA4", "BA3"}

var reversed = map[string]bool{
	"C2":  true,
	"C4":  true,
	"EA2": true,
	"EA4": true,
	"BA3": true,
}

// IsReversed reports whether id is reverse-scored.
func IsReversed(id string) bool {
	return reversed[id]
}

// Catalog returns every question in questionnaire order.
func Catalog() []Question {
	var qs []Question
	for _, dim := range AttachmentOrder {
		for _, id := range AttachmentQuestions[dim] {
			qs = append(qs, Question{ID: id, Section: SectionAttachment, Dimension: dim, Kind: Likert})
		}
	}
	for _, style := range CommunicationOrder {
		for _, id := range CommunicationQuestions[style] {
			qs = append(qs, Question{ID: id, Section: SectionCommunication, Dimension: style, Kind: Likert})
		}
	}
	qs = append(qs, Question{ID: ScenarioID, Section: SectionCommunication, Kind: Scenario})
	for _, id := range ConfidenceQuestions {
		qs = append(qs, Question{ID: id, Section: SectionConfidence, Kind: Likert, Reverse: IsReversed(id)})
	}
	for _, id := range EmotionalQuestions {
		qs = append(qs, Question{ID: id, Section: SectionEmotional, Kind: Likert, Reverse: IsReversed(id)})
	}
	for _, id := range IntimacyComfortQuestions {
		qs = append(qs, Question{ID: id, Section: SectionIntimacy, Dimension: "comfort", Kind: Likert})
	}
	for _, id := range IntimacyBoundaryQuestions {
		qs = append(qs, Question{ID: id, Section: SectionIntimacy, Dimension: "boundary", Kind: Likert, Reverse: IsReversed(id)})
	}
	for _, lang := range LoveLanguageOrder {
		pair := LoveLanguageQuestions[lang]
		qs = append(qs,
			Question{ID: pair.Give, Section: SectionLoveLanguage, Dimension: lang, Direction: Give, Kind: Likert},
			Question{ID: pair.Receive, Section: SectionLoveLanguage, Dimension: lang, Direction: Receive, Kind: Likert},
		)
	}
	return qs
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Question, bool) {
	for _, q := range Catalog() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// VerifyReverseConfig returns the expected reverse-scored ids that are
// missing from the catalog or not flagged Reverse there.
func VerifyReverseConfig() []string {
	var bad []string
	for _, id := range ExpectedReversed {
		q, ok := Lookup(id)
		if !ok || !q.Reverse {
			bad = append(bad, id)
		}
	}
	return bad
}
