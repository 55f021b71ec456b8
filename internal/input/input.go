package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/suykerbuyk/qv/internal/quiz"
)

// maxInput bounds how much of a response file is read, after decompression.
const maxInput = 1 << 20

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Format is the encoding of a response document.
type Format int

const (
	// Auto picks the format from the file name.
	Auto Format = iota
	JSON
	YAML
)

// ParseFormat maps a --format value to a Format. "" and "auto" yield Auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Auto, fmt.Errorf("unknown format %q (want auto, json or yaml)", s)
	}
}

// Options controls response decoding.
type Options struct {
	WarnUnknown bool
	// Format overrides detection by file name; stdin is JSON unless set.
	Format Format
}

// Load reads a response set from path, or from stdin when path is "-".
// Files ending in .zst, or starting with the zstd magic number, are
// decompressed first.
func Load(path string, stdin io.Reader, opts Options) (quiz.Responses, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(io.LimitReader(stdin, maxInput+1))
	} else {
		data, err = readFile(path)
	}
	if err != nil {
		return quiz.Responses{}, err
	}

	if IsCompressed(path, data) {
		data, err = Decompress(data)
		if err != nil {
			return quiz.Responses{}, err
		}
	}
	if len(data) > maxInput {
		return quiz.Responses{}, fmt.Errorf("response set exceeds %d bytes", maxInput)
	}

	format := opts.Format
	if format == Auto {
		format = DetectFormat(path)
	}
	r, err := Parse(data, format)
	if err != nil {
		return quiz.Responses{}, fmt.Errorf("parse %s: %w", displayName(path), err)
	}

	if opts.WarnUnknown {
		for _, id := range quiz.Unknown(r) {
			log.Printf("warning: %s: unknown question id %q ignored", displayName(path), id)
		}
	}
	return r, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open responses: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxInput+1))
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	return data, nil
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}

// IsCompressed reports whether the document at path is zstd-compressed,
// judged by its suffix or leading magic bytes.
func IsCompressed(path string, data []byte) bool {
	return strings.HasSuffix(path, ".zst") || bytes.HasPrefix(data, zstdMagic)
}

// Decompress inflates a zstd frame.
func Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer decoder.Close()

	out, err := io.ReadAll(io.LimitReader(decoder, maxInput+1))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return out, nil
}

// Compress deflates data into a single zstd frame.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	encoder, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	if _, err := encoder.Write(data); err != nil {
		encoder.Close()
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("finalize compression: %w", err)
	}
	return buf.Bytes(), nil
}

// DetectFormat picks YAML for .yaml/.yml (optionally .zst) and JSON otherwise,
// including stdin ("-"). Use Options.Format to read YAML from stdin.
func DetectFormat(path string) Format {
	switch filepath.Ext(strings.TrimSuffix(path, ".zst")) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Parse decodes a response document. The answers may sit at the top level or
// under an "answers" key. Each answer is an integer 1-5, a numeric string, or
// an object {"value": n, "selectedKey": "X"}; the scenario question also
// accepts a bare key string.
func Parse(data []byte, format Format) (quiz.Responses, error) {
	var doc map[string]any
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return quiz.Responses{}, fmt.Errorf("decode: %w", err)
	}
	if nested, ok := doc["answers"].(map[string]any); ok {
		doc = nested
	}

	ids := make([]string, 0, len(doc))
	for id := range doc {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	r := quiz.New(nil)
	for _, id := range ids {
		raw := doc[id]
		if id == quiz.ScenarioID {
			key, err := scenarioKey(raw)
			if err != nil {
				return quiz.Responses{}, fmt.Errorf("%s: %w", id, err)
			}
			r.ScenarioKey = key
			continue
		}
		if obj, ok := raw.(map[string]any); ok {
			raw = obj["value"]
		}
		v, err := likert(raw)
		if err != nil {
			return quiz.Responses{}, fmt.Errorf("%s: %w", id, err)
		}
		r.Values[id] = v
	}
	return r, nil
}

func scenarioKey(raw any) (string, error) {
	if obj, ok := raw.(map[string]any); ok {
		raw = obj["selectedKey"]
	}
	key, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("scenario key: %w", err)
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	if _, ok := quiz.ScenarioStyles[key]; !ok {
		return "", fmt.Errorf("scenario key %q not one of A-D", key)
	}
	return key, nil
}

func likert(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, fmt.Errorf("missing value")
	case bool:
		return 0, fmt.Errorf("value %v is not a number", v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("value %v is not a whole number", v)
		}
	}

	var (
		n   int
		err error
	)
	if str, ok := raw.(string); ok {
		// Decimal only; cast would also accept 0x and leading-zero octal.
		n, err = strconv.Atoi(strings.TrimSpace(str))
	} else {
		n, err = cast.ToIntE(raw)
	}
	if err != nil {
		return 0, fmt.Errorf("value %v is not a number", raw)
	}
	if n < 1 || n > 5 {
		return 0, fmt.Errorf("value %d outside 1-5", n)
	}
	return n, nil
}
