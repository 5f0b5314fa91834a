// README: Model-response sanitizer; extracts a balanced JSON object from raw text.
package itinerary

import (
	"encoding/json"
	"strings"
)

// ExtractJSON reduces a raw model response to the bytes of a balanced top-level
// JSON object. The model is observed to sometimes append commentary or duplicate
// closing braces after an otherwise valid object; the scan truncates the input at
// the last position where brace depth returns to zero. Braces inside string
// literals (including escaped quotes) do not count toward depth. Text before the
// first opening brace is not stripped; it is carried into the truncated slice and
// left for the JSON parser to reject.
func ExtractJSON(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)

	depth := 0
	opened := false
	inString := false
	escaped := false
	last := -1

	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
			opened = true
		case '}':
			depth--
			if depth == 0 && opened {
				last = i
			}
		}
	}

	if last < 0 {
		return nil, &ParseError{Reason: "no balanced JSON object found"}
	}
	return []byte(trimmed[:last+1]), nil
}

// planEnvelope matches the required wire shape: one top-level travelPlan key.
type planEnvelope struct {
	TravelPlan *TravelPlan `json:"travelPlan"`
}

// ParsePlan sanitizes a raw model response and decodes it into a TravelPlan.
// A syntactically valid object without the travelPlan key is a parse failure,
// not a silent default.
func ParsePlan(raw string) (*TravelPlan, error) {
	data, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var env planEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}
	if env.TravelPlan == nil {
		return nil, &ParseError{Reason: "missing top-level travelPlan key"}
	}
	return env.TravelPlan, nil
}
