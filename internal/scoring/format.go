package scoring

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/suykerbuyk/qv/internal/archetype"
	"github.com/suykerbuyk/qv/internal/quiz"
)

// Scorecard is the scored form of one response set as printed by qv score.
type Scorecard struct {
	ID         string               `json:"id"`
	Key        string               `json:"idempotencyKey"`
	Complete   bool                 `json:"complete"`
	Completion int                  `json:"completion"`
	Results    Results              `json:"results"`
	Archetype  archetype.Definition `json:"archetypeDetail"`
}

// NewScorecard scores r and assigns a fresh result id.
func NewScorecard(r quiz.Responses) Scorecard {
	res := Calculate(r)
	return Scorecard{
		ID:         uuid.NewString(),
		Key:        quiz.Key(r),
		Complete:   quiz.Complete(r),
		Completion: quiz.CompletionPercent(r),
		Results:    res,
		Archetype:  archetype.Lookup(res.Archetype),
	}
}

// Format renders a Scorecard as aligned terminal output.
func (s Scorecard) Format() string {
	var b strings.Builder
	res := s.Results

	fmt.Fprintf(&b, "qv score %s\n", s.ID)
	if !s.Complete {
		fmt.Fprintf(&b, "\n  incomplete: %d%% of questions answered\n", s.Completion)
	}

	fmt.Fprintf(&b, "\nArchetype\n  %s (%s)\n  %s\n", s.Archetype.Name, s.Archetype.ID, s.Archetype.Summary)

	b.WriteString("\nAttachment\n")
	writeStyled(&b, res.Attachment, quiz.AttachmentOrder)

	b.WriteString("\nCommunication\n")
	writeStyled(&b, res.Communication, quiz.CommunicationOrder)

	b.WriteString("\nTraits\n")
	fmt.Fprintf(&b, "  %-22s %3d  %s\n", "confidence", res.Confidence, Detail(res.Confidence, "confidence"))
	fmt.Fprintf(&b, "  %-22s %3d  %s\n", "emotional", res.Emotional, Detail(res.Emotional, "emotional"))
	fmt.Fprintf(&b, "  %-22s %3d  %s\n", "intimacy comfort", res.Intimacy.Comfort, Detail(res.Intimacy.Comfort, "intimacy"))
	fmt.Fprintf(&b, "  %-22s %3d  %s\n", "intimacy boundaries", res.Intimacy.Boundaries, Detail(res.Intimacy.Boundaries, "boundaries"))

	b.WriteString("\nLove Languages\n")
	for i, lang := range res.LoveLanguages.Ranked {
		gr := res.LoveLanguages.GiveReceive[lang]
		fmt.Fprintf(&b, "  %d. %-22s %3d  give:%3d  receive:%3d\n",
			i+1, Label(lang), res.LoveLanguages.Scores[lang], gr.Give, gr.Receive)
	}

	return b.String()
}

func writeStyled(b *strings.Builder, s Styled, order []string) {
	for _, k := range order {
		marker := " "
		if k == s.Primary {
			marker = "*"
		}
		fmt.Fprintf(b, "  %s %-20s %3d\n", marker, Label(k), s.Scores[k])
	}
	if tied := Tied(s.Scores, order); len(tied) > 1 {
		fmt.Fprintf(b, "  tied: %s\n", strings.Join(tied, ", "))
	}
}
