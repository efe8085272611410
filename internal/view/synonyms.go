package view

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

// minAsInWidth keeps a truncated "As in" header readable on narrow widths.
const minAsInWidth = 12

// RenderSynonyms renders synonym groups. Plain output lists each distinct
// word on its own line.
func (r *Renderer) RenderSynonyms(groups []mw.SynonymGroup) error {
	switch r.format {
	case FormatJSON:
		if groups == nil {
			groups = []mw.SynonymGroup{}
		}
		return r.RenderJSON(groups)
	case FormatMarkdown:
		fmt.Fprint(r.writer, mw.RenderSynonymsMarkdown(groups))
		return nil
	case FormatHTML:
		out, err := mw.RenderSynonymsHTML(groups)
		if err != nil {
			return fmt.Errorf("failed to render synonyms: %w", err)
		}
		fmt.Fprint(r.writer, out)
		return nil
	case FormatPlain:
		for _, w := range mw.UniqueWords(groups) {
			fmt.Fprintln(r.writer, w)
		}
		return nil
	}

	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(r.writer)
		}
		lead := g.FunctionalLabel
		header := r.italic(g.FunctionalLabel)
		if g.Number != "" {
			lead = g.Number + " " + lead
			header = g.Number + " " + header
		}
		lead += "  As in: "
		asIn := g.AsIn
		if r.width > 0 {
			asIn = Truncate(asIn, max(r.width-runewidth.StringWidth(lead), minAsInWidth))
		}
		fmt.Fprintln(r.writer, header+"  As in: "+r.bold(asIn))
		r.writeWrapped("  ", "  ", displayWords(g.Synonyms))
		if len(g.Antonyms) > 0 {
			r.writeWrapped("  "+r.bold("Antonyms:")+" ", "  ", displayWords(g.Antonyms))
		}
	}
	return nil
}

func displayWords(words []mw.SynonymWord) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Display()
	}
	return strings.Join(out, ", ")
}

// RenderSuggestions renders the spelling suggestions returned for an unknown word.
func (r *Renderer) RenderSuggestions(word string, suggestions []string) error {
	switch r.format {
	case FormatJSON:
		return r.RenderJSON(struct {
			Word        string   `json:"word"`
			Suggestions []string `json:"suggestions"`
		}{word, suggestions})
	case FormatPlain:
		for _, s := range suggestions {
			fmt.Fprintln(r.writer, s)
		}
		return nil
	case FormatMarkdown, FormatHTML:
		var sb strings.Builder
		fmt.Fprintf(&sb, "No entries found for *%s*. Did you mean:\n\n", word)
		for _, s := range suggestions {
			fmt.Fprintf(&sb, "- [%s](%s)\n", s, mw.EntryURL+url.PathEscape(s))
		}
		if r.format == FormatMarkdown {
			fmt.Fprint(r.writer, sb.String())
			return nil
		}
		out, err := mw.MarkdownToHTML(sb.String())
		if err != nil {
			return err
		}
		fmt.Fprint(r.writer, out)
		return nil
	}

	r.Warning(fmt.Sprintf("No entries found for %q. Did you mean:", word))
	rows := make([][]string, len(suggestions))
	for i, s := range suggestions {
		rows[i] = []string{s, mw.EntryURL + url.PathEscape(s)}
	}
	r.RenderTable([]string{"SUGGESTION", "ENTRY"}, rows)
	return nil
}
