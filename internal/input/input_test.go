package input

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "answers": {
    "AX1": 5,
    "C2": "2",
    "EA2": {"value": 4},
    "COM_SCENARIO_1": {"value": 3, "selectedKey": "d"}
  }
}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParse_JSONShapes(t *testing.T) {
	r, err := Parse([]byte(sampleJSON), JSON)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"AX1": 5, "C2": 2, "EA2": 4}, r.Values)
	assert.Equal(t, "D", r.ScenarioKey)
}

func TestParse_TopLevelAnswers(t *testing.T) {
	r, err := Parse([]byte(`{"AX1": 3, "COM_SCENARIO_1": "b"}`), JSON)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"AX1": 3}, r.Values)
	assert.Equal(t, "B", r.ScenarioKey)
}

func TestParse_YAML(t *testing.T) {
	doc := "answers:\n  AX1: 4\n  C4: \"1\"\n  COM_SCENARIO_1: C\n"
	r, err := Parse([]byte(doc), YAML)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"AX1": 4, "C4": 1}, r.Values)
	assert.Equal(t, "C", r.ScenarioKey)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"out of range": `{"AX1": 6}`,
		"zero":         `{"AX1": 0}`,
		"fraction":     `{"AX1": 2.5}`,
		"bool":         `{"AX1": true}`,
		"word":         `{"AX1": "often"}`,
		"null":         `{"AX1": null}`,
		"empty object": `{"AX1": {}}`,
		"hex string":   `{"AX1": "0x3"}`,
		"octal string": `{"AX1": "010"}`,
		"signed hex":   `{"AX1": "+0x2"}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), JSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "AX1")
		})
	}
}

func TestParse_DecimalStrings(t *testing.T) {
	r, err := Parse([]byte(`{"AX1": " 4 ", "AX2": "+2", "AX3": 3.0}`), JSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"AX1": 4, "AX2": 2, "AX3": 3}, r.Values)
}

func TestParse_ScenarioKeyRejected(t *testing.T) {
	cases := map[string]string{
		"letter outside options": `{"COM_SCENARIO_1": "E"}`,
		"object with bad key":    `{"COM_SCENARIO_1": {"value": 3, "selectedKey": "z"}}`,
		"empty":                  `{"COM_SCENARIO_1": ""}`,
		"number":                 `{"COM_SCENARIO_1": 2}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), JSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "COM_SCENARIO_1")
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Auto, "auto": Auto, "JSON": JSON, "yaml": YAML, "yml": YAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"AX1": `), JSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, JSON, DetectFormat("a.json"))
	assert.Equal(t, JSON, DetectFormat("-"))
	assert.Equal(t, YAML, DetectFormat("a.yaml"))
	assert.Equal(t, YAML, DetectFormat("a.yml.zst"))
	assert.Equal(t, JSON, DetectFormat("a.json.zst"))
}

func TestCompressRoundTrip(t *testing.T) {
	packed, err := Compress([]byte(sampleJSON))
	require.NoError(t, err)
	assert.True(t, IsCompressed("responses.json", packed), "magic bytes should be detected")

	out, err := Decompress(packed)
	require.NoError(t, err)
	assert.Equal(t, sampleJSON, string(out))
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "responses.json", []byte(sampleJSON))

	r, err := Load(path, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Values["AX1"])
	assert.Equal(t, "D", r.ScenarioKey)
}

func TestLoad_Compressed(t *testing.T) {
	packed, err := Compress([]byte("AX1: 2\nBA3: 5\n"))
	require.NoError(t, err)
	path := writeFile(t, "responses.yaml.zst", packed)

	r, err := Load(path, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"AX1": 2, "BA3": 5}, r.Values)
}

func TestLoad_CompressedByMagic(t *testing.T) {
	packed, err := Compress([]byte(`{"AX1": 1}`))
	require.NoError(t, err)
	path := writeFile(t, "responses.json", packed)

	r, err := Load(path, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Values["AX1"])
}

func TestLoad_Stdin(t *testing.T) {
	r, err := Load("-", strings.NewReader(`{"AX3": 3}`), Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Values["AX3"])
}

func TestLoad_StdinYAML(t *testing.T) {
	_, err := Load("-", strings.NewReader("AX1: 4\n"), Options{})
	require.Error(t, err, "stdin defaults to JSON")

	r, err := Load("-", strings.NewReader("AX1: 4\nCOM_SCENARIO_1: a\n"), Options{Format: YAML})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Values["AX1"])
	assert.Equal(t, "A", r.ScenarioKey)
}

func TestLoad_FormatOverridesName(t *testing.T) {
	path := writeFile(t, "answers.txt", []byte("AX2: 5\n"))
	r, err := Load(path, nil, Options{Format: YAML})
	require.NoError(t, err)
	assert.Equal(t, 5, r.Values["AX2"])
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ParseErrorNamesFile(t *testing.T) {
	path := writeFile(t, "bad.json", []byte(`{"AX1": 9}`))

	_, err := Load(path, nil, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse bad.json")
}

func TestLoad_TooLarge(t *testing.T) {
	big := bytes.Repeat([]byte(" "), maxInput+10)
	_, err := Load("-", bytes.NewReader(big), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestLoad_WarnUnknown(t *testing.T) {
	var buf bytes.Buffer
	captureLog(t, &buf)

	r, err := Load("-", strings.NewReader(`{"AX1": 3, "ZZ9": 4}`), Options{WarnUnknown: true})
	require.NoError(t, err)
	assert.Equal(t, 4, r.Values["ZZ9"], "unknown ids are kept but ignored by scoring")
	assert.Contains(t, buf.String(), `unknown question id "ZZ9"`)

	buf.Reset()
	_, err = Load("-", strings.NewReader(`{"ZZ9": 4}`), Options{})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
