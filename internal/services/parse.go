package services

import (
	"encoding/json"
	"regexp"

	"github.com/sbilibin2017/studydesk/internal/logger"
)

// jsonArrayPattern matches greedily from the first '[' to the last ']'.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ParseResult is either a parsed value (OK) or unparseable.
type ParseResult[T any] struct {
	Value T
	OK    bool
}

// ParseJSONArray extracts the bracketed array from free text and decodes it
// into []T. Elements that do not decode as T are skipped. It never panics:
// input without a decodable array yields a result with OK false.
func ParseJSONArray[T any](raw string) (res ParseResult[[]T]) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Warnw("recovered while parsing provider response", "panic", r)
			res = ParseResult[[]T]{}
		}
	}()

	match := jsonArrayPattern.FindString(raw)
	if match == "" {
		return ParseResult[[]T]{}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(match), &elems); err != nil {
		return ParseResult[[]T]{}
	}

	// elements of the wrong shape are skipped, not fatal
	items := make([]T, 0, len(elems))
	for _, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return ParseResult[[]T]{Value: items, OK: true}
}
