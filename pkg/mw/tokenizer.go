// tokenizer.go implements tokenization for {tag}...{/tag} inline markup.
package mw

import (
	"fmt"
	"strings"
)

// TokenizeMarkup scans input for inline markup and returns a token stream.
// Recognized forms:
//   - {tag}content{/tag} - paired style token (content is not re-scanned)
//   - {tag} - self-closing formatting token
//   - {tag|field|field...} - cross-reference link
//
// Tokens are matched strictly left to right. Anything that does not form a
// registered token is kept as TokenText, so no input is ever discarded.
// Adjacent text is merged into one token.
func TokenizeMarkup(input string) []Token {
	var tokens []Token
	sc := newScanner(input)
	pos := 0
	textStart := 0

	for pos < len(input) {
		if input[pos] != '{' {
			pos++
			continue
		}

		token, endPos, err := sc.token(pos)
		if err != nil {
			// Not a recognized token - keep '{' as text
			pos++
			continue
		}

		if pos > textStart {
			tokens = append(tokens, Token{
				Type:     TokenText,
				Text:     input[textStart:pos],
				Position: textStart,
			})
		}
		tokens = append(tokens, token)
		pos = endPos
		textStart = pos
	}

	if textStart < len(input) {
		tokens = append(tokens, Token{
			Type:     TokenText,
			Text:     input[textStart:],
			Position: textStart,
		})
	}

	return tokens
}

// maxTagName is the length of the longest registered tag name.
var maxTagName = func() int {
	n := 0
	for name := range TagRegistry {
		n = max(n, len(name))
	}
	return n
}()

// scanner remembers where closing braces and paired closers were found so
// that scanning stays linear when openers are never closed. Searches only
// move forward, so a remembered hit at or after the new start is still the
// first one, and a miss stays a miss.
type scanner struct {
	input     string
	nextBrace int // first '}' at or after the last search start; -1 when none remain
	closers   map[string]int
}

func newScanner(input string) *scanner {
	return &scanner{input: input, nextBrace: -2, closers: make(map[string]int)}
}

// braceFrom returns the index of the first '}' at or after from, or -1.
func (s *scanner) braceFrom(from int) int {
	if s.nextBrace == -1 || s.nextBrace >= from {
		return s.nextBrace
	}
	s.nextBrace = indexFrom(s.input, "}", from)
	return s.nextBrace
}

// closerFrom returns the index of the first "{/name}" at or after from, or -1.
func (s *scanner) closerFrom(name string, from int) int {
	if at, ok := s.closers[name]; ok && (at == -1 || at >= from) {
		return at
	}
	at := indexFrom(s.input, "{/"+name+"}", from)
	s.closers[name] = at
	return at
}

func indexFrom(s, substr string, from int) int {
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

// token attempts to parse a token starting at pos.
// Returns the token, the position after it, and an error if none matches.
// Link and formatting tokens are complete at their closing brace; paired
// tokens additionally need their closer, so they are tried last.
func (s *scanner) token(pos int) (Token, int, error) {
	input := s.input
	if pos >= len(input) || input[pos] != '{' {
		return Token{}, pos, fmt.Errorf("expected '{'")
	}

	// The tag name runs to the first '|' or '}'. Names longer than any
	// registered tag cannot match, so the search is bounded.
	nameEnd := -1
	for i := pos + 1; i < len(input) && i <= pos+1+maxTagName; i++ {
		if input[i] == '|' || input[i] == '}' {
			nameEnd = i
			break
		}
	}
	if nameEnd < 0 {
		return Token{}, pos, fmt.Errorf("unclosed or unknown token")
	}
	name := input[pos+1 : nameEnd]
	if name == "" {
		return Token{}, pos, fmt.Errorf("empty token")
	}

	tagType, known := LookupTag(name)
	if !known {
		return Token{}, pos, fmt.Errorf("unknown tag %q", name)
	}
	hasFields := input[nameEnd] == '|'

	switch tagType.Class {
	case TagLink:
		if !hasFields {
			return Token{}, pos, fmt.Errorf("link %q without text", name)
		}
		closeAt := s.braceFrom(nameEnd)
		if closeAt < 0 {
			return Token{}, pos, fmt.Errorf("unclosed token")
		}
		if closeAt == nameEnd+1 || input[nameEnd+1] == '|' {
			return Token{}, pos, fmt.Errorf("link %q without text", name)
		}
		end := closeAt + 1
		return Token{
			Type:         TokenLink,
			Tag:          name,
			Fields:       strings.Split(input[nameEnd+1:closeAt], "|"),
			Position:     pos,
			OriginalText: input[pos:end],
		}, end, nil

	case TagFormat:
		if hasFields {
			return Token{}, pos, fmt.Errorf("format token %q takes no fields", name)
		}
		end := nameEnd + 1
		return Token{
			Type:         TokenFormat,
			Tag:          name,
			Position:     pos,
			OriginalText: input[pos:end],
		}, end, nil

	case TagPaired:
		if hasFields {
			return Token{}, pos, fmt.Errorf("paired token %q takes no fields", name)
		}
		end := nameEnd + 1
		closeAt := s.closerFrom(name, end)
		if closeAt < 0 {
			return Token{}, pos, fmt.Errorf("unclosed paired token %q", name)
		}
		after := closeAt + len("{/"+name+"}")
		return Token{
			Type:         TokenStyled,
			Tag:          name,
			Text:         input[end:closeAt],
			Position:     pos,
			OriginalText: input[pos:after],
		}, after, nil
	}

	// Annotation markers are removed before scanning; any left over are text.
	return Token{}, pos, fmt.Errorf("annotation %q is not a token", name)
}
