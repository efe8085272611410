package api

import (
	"context"
	"strings"
)

// Define looks up word in the Collegiate Dictionary.
// Returns ErrNoResults if the response holds no usable entries.
func (c *Client) Define(ctx context.Context, word string) (*DictionaryResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyQuery
	}

	body, err := c.Get(ctx, Collegiate, word)
	if err != nil {
		return nil, err
	}

	result, err := ParseDictionaryResponse(body)
	if err != nil {
		return nil, err
	}
	if result.Dropped > 0 {
		c.logger.Debug().Str("word", word).Int("dropped", result.Dropped).Msg("filtered malformed entries")
	}
	return result, nil
}
