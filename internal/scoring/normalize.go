package scoring

import (
	"math"

	"github.com/suykerbuyk/qv/internal/quiz"
)

// Normalize maps a 1-5 Likert value onto 0-100: 1→0, 3→50, 5→100.
// Halves round away from zero.
func Normalize(raw float64) int {
	return int(math.Round((raw - 1) / 4 * 100))
}

// Average returns the arithmetic mean of values, or 0 when empty.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// effective collects the answered, reverse-adjusted values for ids.
func effective(r quiz.Responses, ids []string) []float64 {
	values := make([]float64, 0, len(ids))
	for _, id := range ids {
		if v, ok := r.Value(id); ok {
			values = append(values, float64(v))
		}
	}
	return values
}

// scoreOf normalizes the mean of the answered questions, 0 if none answered.
func scoreOf(r quiz.Responses, ids []string) int {
	values := effective(r, ids)
	if len(values) == 0 {
		return 0
	}
	return Normalize(Average(values))
}

// primary returns the highest scoring key; ties go to the earliest in order.
func primary(scores map[string]int, order []string) string {
	best := order[0]
	for _, k := range order[1:] {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return best
}

// Tied returns every key sharing the top score, in canonical order.
func Tied(scores map[string]int, order []string) []string {
	top := scores[primary(scores, order)]
	var keys []string
	for _, k := range order {
		if scores[k] == top {
			keys = append(keys, k)
		}
	}
	return keys
}
