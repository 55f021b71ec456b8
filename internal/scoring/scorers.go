package scoring

import (
	"sort"

	"github.com/suykerbuyk/qv/internal/quiz"
)

// ScenarioBonus is added to the style chosen in the scenario question.
const ScenarioBonus = 25

// Styled is a set of per-dimension scores with its primary dimension.
type Styled struct {
	Scores  map[string]int `json:"scores"`
	Primary string         `json:"primary"`
}

// Intimacy holds the two independent intimacy scores.
type Intimacy struct {
	Comfort    int `json:"comfort"`
	Boundaries int `json:"boundaries"`
}

// GiveReceive holds the directional scores of one love language.
type GiveReceive struct {
	Give    int `json:"give"`
	Receive int `json:"receive"`
}

// LoveLanguages ranks the five love languages by combined score.
type LoveLanguages struct {
	Ranked      []string               `json:"ranked"`
	Scores      map[string]int         `json:"scores"`
	GiveReceive map[string]GiveReceive `json:"giveReceive"`
}

// Attachment scores the four attachment dimensions.
func Attachment(r quiz.Responses) Styled {
	scores := make(map[string]int, len(quiz.AttachmentOrder))
	for _, dim := range quiz.AttachmentOrder {
		scores[dim] = scoreOf(r, quiz.AttachmentQuestions[dim])
	}
	return Styled{Scores: scores, Primary: primary(scores, quiz.AttachmentOrder)}
}

// Communication scores the four communication styles. A recognised scenario
// key adds ScenarioBonus to its style, capped at 100.
func Communication(r quiz.Responses) Styled {
	scores := make(map[string]int, len(quiz.CommunicationOrder))
	for _, style := range quiz.CommunicationOrder {
		scores[style] = scoreOf(r, quiz.CommunicationQuestions[style])
	}
	if style, ok := quiz.ScenarioStyles[r.ScenarioKey]; ok {
		scores[style] = min(100, scores[style]+ScenarioBonus)
	}
	return Styled{Scores: scores, Primary: primary(scores, quiz.CommunicationOrder)}
}

// Confidence scores dating confidence; C2 and C4 are reverse-scored.
func Confidence(r quiz.Responses) int {
	return scoreOf(r, quiz.ConfidenceQuestions)
}

// Emotional scores emotional availability; EA2 and EA4 are reverse-scored.
func Emotional(r quiz.Responses) int {
	return scoreOf(r, quiz.EmotionalQuestions)
}

// IntimacyScores computes comfort and boundaries independently.
func IntimacyScores(r quiz.Responses) Intimacy {
	return Intimacy{
		Comfort:    scoreOf(r, quiz.IntimacyComfortQuestions),
		Boundaries: scoreOf(r, quiz.IntimacyBoundaryQuestions),
	}
}

// Love scores each love language. The combined score normalizes the mean of
// the answered effective values, not the mean of the directional scores.
func Love(r quiz.Responses) LoveLanguages {
	out := LoveLanguages{
		Scores:      make(map[string]int, len(quiz.LoveLanguageOrder)),
		GiveReceive: make(map[string]GiveReceive, len(quiz.LoveLanguageOrder)),
	}

	for _, lang := range quiz.LoveLanguageOrder {
		pair := quiz.LoveLanguageQuestions[lang]
		var gr GiveReceive
		if v, ok := r.Value(pair.Give); ok {
			gr.Give = Normalize(float64(v))
		}
		if v, ok := r.Value(pair.Receive); ok {
			gr.Receive = Normalize(float64(v))
		}
		out.GiveReceive[lang] = gr
		out.Scores[lang] = scoreOf(r, []string{pair.Give, pair.Receive})
	}

	out.Ranked = append([]string(nil), quiz.LoveLanguageOrder...)
	sort.SliceStable(out.Ranked, func(i, j int) bool {
		return out.Scores[out.Ranked[i]] > out.Scores[out.Ranked[j]]
	})
	return out
}
