package llm

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSONPayload is returned when the model response contains no JSON at all.
var ErrNoJSONPayload = errors.New("no JSON payload found in model response")

var reFence = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSONPayload locates the JSON object inside free-form model output.
// A fenced code block wins; otherwise the outermost {...} span is taken.
func ExtractJSONPayload(text string) ([]byte, error) {
	if m := reFence.FindStringSubmatch(text); m != nil {
		return []byte(m[1]), nil
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONPayload
	}
	return []byte(text[start : end+1]), nil
}
