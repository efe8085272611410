// inline.go converts inline markup strings into styled inline nodes.
package mw

import "strings"

// InlineKind indicates what an InlineNode represents.
type InlineKind int

const (
	InlinePlainText  InlineKind = iota // unstyled text
	InlineStyledText                   // text with a Style
	InlineLink                         // cross-reference link
)

// String returns the kind name used in JSON output.
func (k InlineKind) String() string {
	switch k {
	case InlineStyledText:
		return "styled"
	case InlineLink:
		return "link"
	default:
		return "text"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k InlineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// InlineNode is one run of rendered inline content.
type InlineNode struct {
	Kind    InlineKind `json:"kind"`
	Text    string     `json:"text"`
	Style   Style      `json:"style,omitempty"`
	Target  string     `json:"target,omitempty"`  // links: word to look up
	EntryID string     `json:"entryId,omitempty"` // links: entry id, e.g. "fox:2"
}

// Transform converts one markup string into inline nodes. It never fails:
// anything that is not a well-formed token is returned as plain text.
func Transform(markup string) []InlineNode {
	var b inlineBuilder
	for _, tok := range TokenizeMarkup(StripAnnotations(markup)) {
		switch tok.Type {
		case TokenText:
			b.addText(tok.Text)

		case TokenFormat:
			tt, _ := LookupTag(tok.Tag)
			b.addText(tt.Replacement)

		case TokenStyled:
			tt, _ := LookupTag(tok.Tag)
			text := tok.Text
			if tt.Brackets {
				text = "[" + text + "]"
			}
			if tt.Style == StyleNormal {
				b.addText(text)
				continue
			}
			if text == "" {
				continue
			}
			b.nodes = append(b.nodes, InlineNode{Kind: InlineStyledText, Text: text, Style: tt.Style})

		case TokenLink:
			b.nodes = append(b.nodes, linkNode(tok))
		}
	}
	return b.nodes
}

// linkNode builds a link from {tag|text|id|annotation} fields.
func linkNode(tok Token) InlineNode {
	tt, _ := LookupTag(tok.Tag)
	node := InlineNode{
		Kind:   InlineLink,
		Text:   tok.Fields[0],
		Style:  tt.Style,
		Target: tok.Fields[0],
	}
	if len(tok.Fields) > 1 && tok.Fields[1] != "" {
		node.EntryID = tok.Fields[1]
	}
	if tt.Annotated && len(tok.Fields) > 2 && tok.Fields[2] != "" {
		node.Text += " " + tok.Fields[2]
	}
	return node
}

// inlineBuilder accumulates nodes, merging adjacent plain text.
type inlineBuilder struct {
	nodes []InlineNode
}

func (b *inlineBuilder) addText(text string) {
	if text == "" {
		return
	}
	if n := len(b.nodes); n > 0 && b.nodes[n-1].Kind == InlinePlainText {
		b.nodes[n-1].Text += text
		return
	}
	b.nodes = append(b.nodes, InlineNode{Kind: InlinePlainText, Text: text})
}

// addNodes appends nodes, merging plain text with the current tail.
func (b *inlineBuilder) addNodes(nodes []InlineNode) {
	for _, n := range nodes {
		if n.Kind == InlinePlainText {
			b.addText(n.Text)
			continue
		}
		b.nodes = append(b.nodes, n)
	}
}

// PlainText concatenates the visible text of nodes.
func PlainText(nodes []InlineNode) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.Text)
	}
	return sb.String()
}

// StripMarkup returns the visible text of markup with all styling removed.
func StripMarkup(markup string) string {
	return PlainText(Transform(markup))
}
