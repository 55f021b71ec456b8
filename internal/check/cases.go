package check

import (
	"fmt"

	"github.com/suykerbuyk/qv/internal/archetype"
	"github.com/suykerbuyk/qv/internal/quiz"
	"github.com/suykerbuyk/qv/internal/scoring"
)

// responses builds a response set answering every id in ids with v.
func responses(v int, groups ...[]string) map[string]int {
	m := map[string]int{}
	for _, ids := range groups {
		for _, id := range ids {
			m[id] = v
		}
	}
	return m
}

func attachmentIDs() [][]string {
	var groups [][]string
	for _, dim := range quiz.AttachmentOrder {
		groups = append(groups, quiz.AttachmentQuestions[dim])
	}
	return groups
}

func communicationIDs() [][]string {
	var groups [][]string
	for _, style := range quiz.CommunicationOrder {
		groups = append(groups, quiz.CommunicationQuestions[style])
	}
	return groups
}

// value returns the effective value of id, or nil when unanswered.
func value(r quiz.Responses, id string) any {
	v, ok := r.Value(id)
	if !ok {
		return nil
	}
	return v
}

// Normalization checks the 1-5 → 0-100 mapping.
func Normalization() []Result {
	var results []Result
	for _, c := range []struct{ raw, want int }{{1, 0}, {2, 25}, {3, 50}, {4, 75}, {5, 100}} {
		results = append(results, Run(fmt.Sprintf("normalize(%d)", c.raw), c.want, scoring.Normalize(float64(c.raw))))
	}
	return results
}

// ReverseScoring checks 6-raw inversion on the negatively phrased questions.
func ReverseScoring() []Result {
	results := []Result{
		Run("C2 reversed (5->1)", 1, value(quiz.New(map[string]int{"C2": 5}), "C2")),
		Run("C1 not reversed (5->5)", 5, value(quiz.New(map[string]int{"C1": 5}), "C1")),
	}
	for _, id := range quiz.ExpectedReversed {
		r := quiz.New(map[string]int{id: 3})
		results = append(results, Run(id+" reversed (3->3)", 3, value(r, id)))
	}
	for _, id := range quiz.ExpectedReversed {
		r := quiz.New(map[string]int{id: 1})
		results = append(results, Run(id+" reversed (1->5)", 5, value(r, id)))
	}
	results = append(results, Run("absent answer", nil, value(quiz.New(nil), "C2")))
	results = append(results, Run("reverse config matches catalog", 0, len(quiz.VerifyReverseConfig())))
	return results
}

// AttachmentCases checks attachment scoring and primary selection.
func AttachmentCases() []Result {
	var results []Result

	res := scoring.Attachment(quiz.New(responses(5, attachmentIDs()...)))
	for _, dim := range quiz.AttachmentOrder {
		results = append(results, Run("attachment all 5s: "+dim, 100, res.Scores[dim]))
	}

	res = scoring.Attachment(quiz.New(responses(1, attachmentIDs()...)))
	for _, dim := range quiz.AttachmentOrder {
		results = append(results, Run("attachment all 1s: "+dim, 0, res.Scores[dim]))
	}

	r := quiz.New(map[string]int{
		"S1": 5, "S2": 5, "S3": 5, "AX1": 1, "AX2": 1, "AX3": 1,
		"AV1": 1, "AV2": 1, "AV3": 1, "D1": 1, "D2": 1, "D3": 1,
	})
	results = append(results, Run("attachment primary=secure", "secure", scoring.Attachment(r).Primary))

	res = scoring.Attachment(quiz.New(responses(3, attachmentIDs()...)))
	results = append(results, Run("attachment tie->secure", "secure", res.Primary))

	r = quiz.New(map[string]int{
		"S1": 5, "S2": 4, "S3": 3, "AX1": 3, "AX2": 3, "AX3": 3,
		"AV1": 1, "AV2": 1, "AV3": 1, "D1": 1, "D2": 1, "D3": 1,
	})
	res = scoring.Attachment(r)
	results = append(results,
		Run("attachment mixed S=75", 75, res.Scores["secure"]),
		Run("attachment mixed AX=50", 50, res.Scores["anxious"]),
	)

	res = scoring.Attachment(quiz.New(map[string]int{"AV1": 4}))
	results = append(results,
		Run("attachment partial AV=75", 75, res.Scores["avoidant"]),
		Run("attachment unanswered S=0", 0, res.Scores["secure"]),
	)

	return results
}

// CommunicationCases checks style scoring and the scenario bonus.
func CommunicationCases() []Result {
	var results []Result

	passiveHigh := responses(1, communicationIDs()...)
	passiveHigh["COM_PASSIVE_1"] = 5
	passiveHigh["COM_PASSIVE_2"] = 5

	res := scoring.Communication(quiz.New(passiveHigh))
	results = append(results,
		Run("comm passive=100", 100, res.Scores["passive"]),
		Run("comm primary=passive", "passive", res.Primary),
	)

	neutral := quiz.New(responses(3, communicationIDs()...))
	results = append(results,
		Run("comm scenario A: passive=75", 75, scoring.Communication(neutral.WithScenario("A")).Scores["passive"]),
		Run("comm scenario D: assertive=75", 75, scoring.Communication(neutral.WithScenario("D")).Scores["assertive"]),
	)

	res = scoring.Communication(quiz.New(passiveHigh).WithScenario("A"))
	results = append(results, Run("comm cap at 100", 100, res.Scores["passive"]))

	low := quiz.New(responses(1, communicationIDs()...))
	for _, key := range []string{"A", "B", "C", "D"} {
		style := quiz.ScenarioStyles[key]
		res := scoring.Communication(low.WithScenario(key))
		results = append(results, Run(fmt.Sprintf("comm scenario %s->%s=25", key, style), 25, res.Scores[style]))
	}

	res = scoring.Communication(neutral.WithScenario("E"))
	results = append(results, Run("comm unknown scenario ignored", 50, res.Scores["passive"]))

	return results
}

// ConfidenceCases checks confidence scoring with C2 and C4 reversed.
func ConfidenceCases() []Result {
	return []Result{
		Run("confidence max=100", 100, scoring.Confidence(quiz.New(map[string]int{"C1": 5, "C2": 1, "C3": 5, "C4": 1, "C5": 5}))),
		Run("confidence min=0", 0, scoring.Confidence(quiz.New(map[string]int{"C1": 1, "C2": 5, "C3": 1, "C4": 5, "C5": 1}))),
		Run("confidence neutral=50", 50, scoring.Confidence(quiz.New(responses(3, quiz.ConfidenceQuestions)))),
		Run("confidence all raw 5=60", 60, scoring.Confidence(quiz.New(responses(5, quiz.ConfidenceQuestions)))),
		Run("confidence empty=0", 0, scoring.Confidence(quiz.New(nil))),
	}
}

// EmotionalCases checks emotional availability with EA2 and EA4 reversed.
func EmotionalCases() []Result {
	return []Result{
		Run("emotional max=100", 100, scoring.Emotional(quiz.New(map[string]int{"EA1": 5, "EA2": 1, "EA3": 5, "EA4": 1, "EA5": 5}))),
		Run("emotional min=0", 0, scoring.Emotional(quiz.New(map[string]int{"EA1": 1, "EA2": 5, "EA3": 1, "EA4": 5, "EA5": 1}))),
		Run("emotional all raw 5=60", 60, scoring.Emotional(quiz.New(responses(5, quiz.EmotionalQuestions)))),
	}
}

// IntimacyCases checks comfort and boundaries stay independent.
func IntimacyCases() []Result {
	hi := scoring.IntimacyScores(quiz.New(map[string]int{"IC1": 5, "IC2": 5, "IC3": 5, "BA1": 5, "BA2": 5, "BA3": 1}))
	lo := scoring.IntimacyScores(quiz.New(map[string]int{"IC1": 1, "IC2": 1, "IC3": 1, "BA1": 1, "BA2": 1, "BA3": 5}))
	rev := scoring.IntimacyScores(quiz.New(map[string]int{"BA1": 5, "BA2": 5, "BA3": 5}))
	ind := scoring.IntimacyScores(quiz.New(map[string]int{"IC1": 5, "IC2": 5, "IC3": 5, "BA1": 1, "BA2": 1, "BA3": 5}))

	return []Result{
		Run("intimacy comfort=100", 100, hi.Comfort),
		Run("intimacy boundary=100", 100, hi.Boundaries),
		Run("intimacy comfort=0", 0, lo.Comfort),
		Run("intimacy boundary=0", 0, lo.Boundaries),
		Run("intimacy BA3 reversed=67", 67, rev.Boundaries),
		Run("intimacy independent comfort", 100, ind.Comfort),
		Run("intimacy independent boundary", 0, ind.Boundaries),
	}
}

// LoveLanguageCases checks ranking and the give/receive breakdown.
func LoveLanguageCases() []Result {
	ranked := scoring.Love(quiz.New(map[string]int{
		"LL1": 5, "LL2": 5, "LL3": 4, "LL4": 4, "LL5": 3, "LL6": 3,
		"LL7": 2, "LL8": 2, "LL9": 1, "LL10": 1,
	}))
	split := scoring.Love(quiz.New(map[string]int{
		"LL1": 5, "LL2": 1, "LL3": 1, "LL4": 5,
		"LL5": 3, "LL6": 3, "LL7": 3, "LL8": 3, "LL9": 3, "LL10": 3,
	}))
	ties := scoring.Love(quiz.New(responses(3, []string{"LL1", "LL2", "LL3", "LL4", "LL5", "LL6", "LL7", "LL8", "LL9", "LL10"})))

	return []Result{
		Run("love ranked order", []string{"words", "time", "service", "gifts", "touch"}, ranked.Ranked),
		Run("love words=100", 100, ranked.Scores["words"]),
		Run("love touch=0", 0, ranked.Scores["touch"]),
		Run("love words give=100", 100, split.GiveReceive["words"].Give),
		Run("love words receive=0", 0, split.GiveReceive["words"].Receive),
		Run("love time give=0", 0, split.GiveReceive["time"].Give),
		Run("love time receive=100", 100, split.GiveReceive["time"].Receive),
		Run("love words combined=50", 50, split.Scores["words"]),
		Run("love ties keep canonical order", quiz.LoveLanguageOrder, ties.Ranked),
	}
}

// ArchetypeCases checks the decision table, its threshold and fallbacks.
func ArchetypeCases() []Result {
	cases := []struct {
		name                      string
		want                      string
		attachment, communication string
		confidence                int
	}{
		{"archetype secure+high", "confident-anchor", "secure", "passive", 70},
		{"archetype secure+assertive", "confident-anchor", "secure", "assertive", 40},
		{"archetype secure+low", "steady-connector", "secure", "passive", 50},
		{"archetype anxious+high", "devoted-romantic", "anxious", "passive", 70},
		{"archetype anxious+low", "careful-romantic", "anxious", "passive", 50},
		{"archetype avoidant+high", "independent-spirit", "avoidant", "passive", 70},
		{"archetype avoidant+assertive", "independent-spirit", "avoidant", "assertive", 40},
		{"archetype avoidant+low", "private-protector", "avoidant", "passive", 50},
		{"archetype disorg+high", "complex-soul", "disorganized", "passive", 70},
		{"archetype disorg+low", "searching-soul", "disorganized", "passive", 50},
		{"archetype boundary 59", "careful-romantic", "anxious", "passive", 59},
		{"archetype boundary 60", "devoted-romantic", "anxious", "passive", 60},
		{"archetype fallback passive", "diplomatic-dater", "mixed", "passive", 80},
		{"archetype fallback aggressive", "fiery-heart", "mixed", "aggressive", 80},
		{"archetype fallback passive_aggressive", "subtle-communicator", "mixed", "passive_aggressive", 80},
		{"archetype fallback assertive", "clear-voice", "mixed", "assertive", 80},
		{"archetype fallback default", "steady-connector", "mixed", "mixed", 80},
	}

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, Run(c.name, c.want, archetype.Determine(c.attachment, c.communication, c.confidence)))
	}
	return results
}

// IntegrationResponses is a full response set tuned to maximise secure
// attachment, assertive communication and every trait after reverse scoring.
func IntegrationResponses() quiz.Responses {
	return quiz.New(map[string]int{
		"S1": 5, "S2": 5, "S3": 5, "AX1": 1, "AX2": 1, "AX3": 1,
		"AV1": 1, "AV2": 1, "AV3": 1, "D1": 1, "D2": 1, "D3": 1,
		"COM_PASSIVE_1": 1, "COM_PASSIVE_2": 1,
		"COM_AGGRESSIVE_1": 1, "COM_AGGRESSIVE_2": 1,
		"COM_PAGG_1": 1, "COM_PAGG_2": 1,
		"COM_ASSERTIVE_1": 5, "COM_ASSERTIVE_2": 5,
		"C1": 5, "C2": 1, "C3": 5, "C4": 1, "C5": 5,
		"EA1": 5, "EA2": 1, "EA3": 5, "EA4": 1, "EA5": 5,
		"IC1": 5, "IC2": 5, "IC3": 5, "BA1": 5, "BA2": 5, "BA3": 1,
		"LL1": 5, "LL2": 5, "LL3": 3, "LL4": 3, "LL5": 3, "LL6": 3,
		"LL7": 3, "LL8": 3, "LL9": 3, "LL10": 3,
	})
}

// Integration scores a complete response set end to end.
func Integration() []Result {
	res := scoring.Calculate(IntegrationResponses())
	return []Result{
		Run("integration attachment primary", "secure", res.Attachment.Primary),
		Run("integration attachment secure=100", 100, res.Attachment.Scores["secure"]),
		Run("integration comm primary", "assertive", res.Communication.Primary),
		Run("integration confidence", 100, res.Confidence),
		Run("integration emotional", 100, res.Emotional),
		Run("integration intimacy comfort", 100, res.Intimacy.Comfort),
		Run("integration intimacy boundary", 100, res.Intimacy.Boundaries),
		Run("integration love #1", "words", res.LoveLanguages.Ranked[0]),
		Run("integration archetype", "confident-anchor", res.Archetype),
	}
}
