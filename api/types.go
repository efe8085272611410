// Package api provides the Merriam-Webster Dictionary API client.
package api

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

// Result is a validated lookup response: either entries or, when the word
// was not found, spelling suggestions.
type Result[T any] struct {
	Entries     []T      `json:"entries,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Dropped     int      `json:"-"` // entries filtered out as malformed
}

// IsSuggestion returns true if the response held spelling suggestions.
func (r *Result[T]) IsSuggestion() bool {
	return len(r.Suggestions) > 0
}

// DictionaryResult is a validated Collegiate Dictionary response.
type DictionaryResult = Result[mw.DictionaryEntry]

// ThesaurusResult is a validated Collegiate Thesaurus response.
type ThesaurusResult = Result[mw.ThesaurusEntry]

// ParseDictionaryResponse validates and decodes a Collegiate Dictionary response.
func ParseDictionaryResponse(body []byte) (*DictionaryResult, error) {
	return parseResponse[mw.DictionaryEntry](body)
}

// ParseThesaurusResponse validates and decodes a Collegiate Thesaurus response.
func ParseThesaurusResponse(body []byte) (*ThesaurusResult, error) {
	return parseResponse[mw.ThesaurusEntry](body)
}

// parseResponse classifies body as entries or suggestions. Entries missing
// required fields are dropped; if none remain, ErrNoResults is returned.
func parseResponse[T any](body []byte) (*Result[T], error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to parse response: invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("failed to parse response: expected an array of entries")
	}

	items := root.Array()
	if len(items) == 0 {
		return nil, ErrNoResults
	}

	if isSuggestionList(items) {
		result := &Result[T]{}
		for _, item := range items {
			result.Suggestions = append(result.Suggestions, item.String())
		}
		return result, nil
	}

	result := &Result[T]{}
	for _, item := range items {
		if !validEntry(item) {
			result.Dropped++
			continue
		}
		var entry T
		if err := json.Unmarshal([]byte(item.Raw), &entry); err != nil {
			result.Dropped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	if len(result.Entries) == 0 {
		return nil, ErrNoResults
	}
	return result, nil
}

func isSuggestionList(items []gjson.Result) bool {
	for _, item := range items {
		if item.Type != gjson.String {
			return false
		}
	}
	return true
}

// validEntry checks the fields every renderable entry must carry.
func validEntry(item gjson.Result) bool {
	if !item.IsObject() {
		return false
	}
	if id := item.Get("meta.id"); id.Type != gjson.String || id.String() == "" {
		return false
	}
	if hw := item.Get("hwi.hw"); hw.Type != gjson.String || hw.String() == "" {
		return false
	}
	if fl := item.Get("fl"); fl.Type != gjson.String {
		return false
	}
	return item.Get("def").IsArray() && item.Get("shortdef").IsArray()
}
