package quiz

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"sort"
)

// Responses is a set of raw Likert answers keyed by question id, plus the
// optional scenario key. Missing ids are unanswered questions.
type Responses struct {
	Values      map[string]int
	ScenarioKey string
}

// New returns a response set holding a copy of values.
func New(values map[string]int) Responses {
	r := Responses{Values: make(map[string]int, len(values))}
	for id, v := range values {
		r.Values[id] = v
	}
	return r
}

// WithScenario returns a copy of r answering the scenario question with key.
func (r Responses) WithScenario(key string) Responses {
	c := New(r.Values)
	c.ScenarioKey = key
	return c
}

// Raw returns the raw answer for id.
func (r Responses) Raw(id string) (int, bool) {
	v, ok := r.Values[id]
	return v, ok
}

// Value returns the effective answer for id: 6-raw for reverse-scored
// questions, raw otherwise. ok is false when id is unanswered.
func (r Responses) Value(id string) (int, bool) {
	v, ok := r.Values[id]
	if !ok {
		return 0, false
	}
	if IsReversed(id) {
		return 6 - v, true
	}
	return v, true
}

// Answered counts answered catalog questions, including the scenario.
func (r Responses) Answered() int {
	n := 0
	for _, q := range Catalog() {
		if r.has(q) {
			n++
		}
	}
	return n
}

func (r Responses) has(q Question) bool {
	if q.Kind == Scenario {
		_, ok := ScenarioStyles[r.ScenarioKey]
		return ok
	}
	_, ok := r.Values[q.ID]
	return ok
}

// Complete reports whether every catalog question has an answer.
func Complete(r Responses) bool {
	for _, q := range Catalog() {
		if !r.has(q) {
			return false
		}
	}
	return true
}

// CompletionPercent returns the rounded share of answered questions.
func CompletionPercent(r Responses) int {
	total := len(Catalog())
	return int(math.Round(float64(r.Answered()) / float64(total) * 100))
}

// Unknown returns answered ids that are not in the catalog, sorted.
func Unknown(r Responses) []string {
	var ids []string
	for id := range r.Values {
		if _, ok := Lookup(id); !ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

type canonicalAnswer struct {
	ID    string `json:"id"`
	Value int    `json:"v,omitempty"`
	Key   string `json:"k,omitempty"`
}

// Key returns a deterministic idempotency key for r. Two response sets with
// the same answers yield the same key regardless of map order.
func Key(r Responses) string {
	answers := make([]canonicalAnswer, 0, len(r.Values)+1)
	for id, v := range r.Values {
		answers = append(answers, canonicalAnswer{ID: id, Value: v})
	}
	if r.ScenarioKey != "" {
		answers = append(answers, canonicalAnswer{ID: ScenarioID, Key: r.ScenarioKey})
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].ID < answers[j].ID })

	payload, _ := json.Marshal(struct {
		V       int               `json:"v"`
		Answers []canonicalAnswer `json:"answers"`
	}{V: 1, Answers: answers})

	sum := sha256.Sum256(payload)
	return "quiz:v1:" + hex.EncodeToString(sum[:])
}
