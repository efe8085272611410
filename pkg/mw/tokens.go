// tokens.go defines the inline markup token table used by the lexer.
package mw

import "strings"

// Style is the typographic style of a run of inline text.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleBold
	StyleSubscript
	StyleSuperscript
	StyleSmallCaps
	StyleBoldItalic
	StyleBoldSmallCaps
)

var styleNames = [...]string{
	StyleNormal:        "normal",
	StyleItalic:        "italic",
	StyleBold:          "bold",
	StyleSubscript:     "subscript",
	StyleSuperscript:   "superscript",
	StyleSmallCaps:     "small-caps",
	StyleBoldItalic:    "bold-italic",
	StyleBoldSmallCaps: "bold-small-caps",
}

// String returns the style name.
func (s Style) String() string {
	if int(s) < 0 || int(s) >= len(styleNames) {
		return "normal"
	}
	return styleNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TagClass groups markup tags by how the lexer consumes them.
type TagClass int

const (
	TagPaired     TagClass = iota // {it}...{/it}
	TagFormat                     // {bc}
	TagLink                       // {a_link|word}
	TagAnnotation                 // {dx}...{/dx}; markers removed, content kept
)

// TagType describes one markup tag.
type TagType struct {
	Name        string
	Class       TagClass
	Style       Style  // paired tags: style of the content; links: display hint
	Brackets    bool   // paired tags: wrap content in literal square brackets
	Replacement string // format tags: literal text emitted in place of the token
	Annotated   bool   // links: third field is appended to the display text
}

// TagRegistry maps tag names to their definitions.
// Adding a new token = adding one entry here.
var TagRegistry = map[string]TagType{
	// paired style tokens
	"it":     {Name: "it", Class: TagPaired, Style: StyleItalic},
	"b":      {Name: "b", Class: TagPaired, Style: StyleBold},
	"inf":    {Name: "inf", Class: TagPaired, Style: StyleSubscript},
	"sup":    {Name: "sup", Class: TagPaired, Style: StyleSuperscript},
	"sc":     {Name: "sc", Class: TagPaired, Style: StyleSmallCaps},
	"gloss":  {Name: "gloss", Class: TagPaired, Style: StyleNormal, Brackets: true},
	"parahw": {Name: "parahw", Class: TagPaired, Style: StyleBoldSmallCaps},
	"phrase": {Name: "phrase", Class: TagPaired, Style: StyleBoldItalic},
	"qword":  {Name: "qword", Class: TagPaired, Style: StyleItalic},
	"wi":     {Name: "wi", Class: TagPaired, Style: StyleItalic},
	"bit":    {Name: "bit", Class: TagPaired, Style: StyleBoldItalic},
	"rom":    {Name: "rom", Class: TagPaired, Style: StyleNormal},

	// self-closing formatting tokens
	"bc":    {Name: "bc", Class: TagFormat, Replacement: ": "},
	"ldquo": {Name: "ldquo", Class: TagFormat, Replacement: "“"},
	"rdquo": {Name: "rdquo", Class: TagFormat, Replacement: "”"},
	"p_br":  {Name: "p_br", Class: TagFormat, Replacement: "\n"},

	// cross-reference links
	"a_link":  {Name: "a_link", Class: TagLink},
	"d_link":  {Name: "d_link", Class: TagLink},
	"i_link":  {Name: "i_link", Class: TagLink, Style: StyleItalic},
	"et_link": {Name: "et_link", Class: TagLink, Style: StyleSmallCaps},
	"mat":     {Name: "mat", Class: TagLink, Style: StyleSmallCaps},
	"sx":      {Name: "sx", Class: TagLink, Style: StyleSmallCaps, Annotated: true},
	"dxt":     {Name: "dxt", Class: TagLink, Style: StyleSmallCaps, Annotated: true},

	// transparent annotations
	"dx":     {Name: "dx", Class: TagAnnotation},
	"dx_def": {Name: "dx_def", Class: TagAnnotation},
	"dx_ety": {Name: "dx_ety", Class: TagAnnotation},
	"ma":     {Name: "ma", Class: TagAnnotation},
}

// LookupTag returns the TagType for a given name.
// Returns ok=false if the tag is not registered. Names are case-sensitive.
func LookupTag(name string) (TagType, bool) {
	tt, ok := TagRegistry[name]
	return tt, ok
}

// annotationStripper removes the open and close markers of every annotation tag.
var annotationStripper = func() *strings.Replacer {
	var pairs []string
	for name, tt := range TagRegistry {
		if tt.Class != TagAnnotation {
			continue
		}
		pairs = append(pairs, "{"+name+"}", "", "{/"+name+"}", "")
	}
	return strings.NewReplacer(pairs...)
}()

// StripAnnotations removes transparent annotation markers such as {dx} and
// {/dx}, leaving the text they wrap in place.
func StripAnnotations(markup string) string {
	if !strings.Contains(markup, "{") {
		return markup
	}
	return annotationStripper.Replace(markup)
}

// TokenType represents token types produced by TokenizeMarkup.
type TokenType int

const (
	TokenText   TokenType = iota // literal text, including unrecognized tokens
	TokenStyled                  // {tag}content{/tag}
	TokenFormat                  // {bc}, {ldquo}, ...
	TokenLink                    // {a_link|...}
)

// Token represents a single token from markup scanning.
type Token struct {
	Type         TokenType
	Tag          string   // set for Styled, Format and Link tokens
	Text         string   // literal text, or the content between paired tags
	Fields       []string // link fields after the tag name
	Position     int      // byte offset in the scanned input
	OriginalText string   // the full original token text
}
