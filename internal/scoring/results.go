package scoring

import (
	"github.com/suykerbuyk/qv/internal/archetype"
	"github.com/suykerbuyk/qv/internal/quiz"
)

// Results bundles every score computed from one response set.
type Results struct {
	Attachment    Styled        `json:"attachment"`
	Communication Styled        `json:"communication"`
	Confidence    int           `json:"confidence"`
	Emotional     int           `json:"emotional"`
	Intimacy      Intimacy      `json:"intimacy"`
	LoveLanguages LoveLanguages `json:"loveLanguages"`
	Archetype     string        `json:"archetype"`
}

// Calculate scores r across all sections and derives the archetype.
func Calculate(r quiz.Responses) Results {
	res := Results{
		Attachment:    Attachment(r),
		Communication: Communication(r),
		Confidence:    Confidence(r),
		Emotional:     Emotional(r),
		Intimacy:      IntimacyScores(r),
		LoveLanguages: Love(r),
	}
	res.Archetype = archetype.Determine(res.Attachment.Primary, res.Communication.Primary, res.Confidence)
	return res
}
