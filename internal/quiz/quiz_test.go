package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Size(t *testing.T) {
	qs := Catalog()
	assert.Len(t, qs, 47)
	assert.Equal(t, "S1", qs[0].ID)
	assert.Equal(t, "LL10", qs[len(qs)-1].ID)
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range Catalog() {
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
}

func TestVerifyReverseConfig(t *testing.T) {
	assert.Empty(t, VerifyReverseConfig())
}

func TestValue_Reversed(t *testing.T) {
	for _, id := range ExpectedReversed {
		for raw := 1; raw <= 5; raw++ {
			r := New(map[string]int{id: raw})
			v, ok := r.Value(id)
			require.True(t, ok)
			assert.Equal(t, 6-raw, v, "%s raw %d", id, raw)
		}
	}
}

func TestValue_NotReversed(t *testing.T) {
	r := New(map[string]int{"C1": 5, "S2": 2})
	v, ok := r.Value("C1")
	require.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = r.Value("S2")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestValue_Absent(t *testing.T) {
	r := New(nil)
	_, ok := r.Value("C2")
	assert.False(t, ok)
}

func TestNew_Copies(t *testing.T) {
	src := map[string]int{"S1": 3}
	r := New(src)
	src["S1"] = 5
	v, _ := r.Raw("S1")
	assert.Equal(t, 3, v)
}

func TestComplete(t *testing.T) {
	values := map[string]int{}
	for _, q := range Catalog() {
		if q.Kind == Likert {
			values[q.ID] = 3
		}
	}
	r := New(values)
	assert.False(t, Complete(r), "scenario unanswered")
	assert.Equal(t, 98, CompletionPercent(r))

	r = r.WithScenario("B")
	assert.True(t, Complete(r))
	assert.Equal(t, 100, CompletionPercent(r))
}

func TestComplete_InvalidScenarioKey(t *testing.T) {
	values := map[string]int{}
	for _, q := range Catalog() {
		if q.Kind == Likert {
			values[q.ID] = 3
		}
	}
	r := New(values).WithScenario("E")
	assert.False(t, Complete(r), "E is not a scenario option")
	assert.Equal(t, 98, CompletionPercent(r))
	assert.Equal(t, 46, r.Answered())
}

func TestCompletionPercent_Empty(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(New(nil)))
}

func TestUnknown(t *testing.T) {
	r := New(map[string]int{"S1": 3, "ZZ9": 2, "AA1": 4})
	assert.Equal(t, []string{"AA1", "ZZ9"}, Unknown(r))
}

func TestKey_Deterministic(t *testing.T) {
	a := New(map[string]int{"S1": 3, "AX1": 4, "LL10": 1}).WithScenario("D")
	b := New(map[string]int{"LL10": 1, "S1": 3, "AX1": 4}).WithScenario("D")
	assert.Equal(t, Key(a), Key(b))
	assert.True(t, strings.HasPrefix(Key(a), "quiz:v1:"))
	assert.Len(t, Key(a), len("quiz:v1:")+64)
}

func TestKey_DiffersOnAnswers(t *testing.T) {
	a := New(map[string]int{"S1": 3})
	b := New(map[string]int{"S1": 4})
	assert.NotEqual(t, Key(a), Key(b))
	assert.NotEqual(t, Key(a), Key(a.WithScenario("A")))
}
