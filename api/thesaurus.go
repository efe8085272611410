package api

import (
	"context"
	"strings"
)

// Synonyms looks up word in the Collegiate Thesaurus.
// Returns ErrNoResults if the response holds no usable entries.
func (c *Client) Synonyms(ctx context.Context, word string) (*ThesaurusResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyQuery
	}

	body, err := c.Get(ctx, Thesaurus, word)
	if err != nil {
		return nil, err
	}

	result, err := ParseThesaurusResponse(body)
	if err != nil {
		return nil, err
	}
	if result.Dropped > 0 {
		c.logger.Debug().Str("word", word).Int("dropped", result.Dropped).Msg("filtered malformed entries")
	}
	return result, nil
}
