package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

var (
	headwordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	wrapStyle     = lipgloss.NewStyle()
)

var superscriptDigits = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

// RenderEntries renders dictionary entries in the renderer's format.
func (r *Renderer) RenderEntries(entries []mw.EntryView) error {
	switch r.format {
	case FormatJSON:
		if entries == nil {
			entries = []mw.EntryView{}
		}
		return r.RenderJSON(entries)
	case FormatMarkdown:
		for i, e := range entries {
			if i > 0 {
				fmt.Fprintln(r.writer)
			}
			fmt.Fprint(r.writer, mw.RenderMarkdown(e))
		}
		return nil
	case FormatHTML:
		for _, e := range entries {
			out, err := mw.RenderHTML(e)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", e.ID, err)
			}
			fmt.Fprint(r.writer, out)
		}
		return nil
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(r.writer)
		}
		r.writeEntry(e)
	}
	return nil
}

// styled reports whether terminal styling applies.
func (r *Renderer) styled() bool {
	return r.format == FormatTable && !r.noColor && !color.NoColor
}

func (r *Renderer) writeEntry(e mw.EntryView) {
	title := e.Headword
	if r.styled() {
		title = headwordStyle.Render(title)
	}
	if e.Homograph > 0 {
		title += superscriptDigits.Replace(fmt.Sprint(e.Homograph))
	}

	header := []string{title}
	if e.FunctionalLabel != "" {
		header = append(header, r.italic(e.FunctionalLabel))
	}
	if e.Pronunciation != "" {
		header = append(header, `\`+e.Pronunciation+`\`)
	}
	fmt.Fprintln(r.writer, strings.Join(header, "  "))

	if len(e.Labels) > 0 {
		fmt.Fprintln(r.writer, r.italic(strings.Join(e.Labels, ", ")))
	}
	if e.Inflections != "" {
		fmt.Fprintln(r.writer, e.Inflections)
	}
	for _, ref := range e.CrossReferences {
		fmt.Fprintln(r.writer, r.italic(ref))
	}

	for _, def := range e.Definitions {
		fmt.Fprintln(r.writer)
		if def.VerbDivider != "" {
			fmt.Fprintln(r.writer, r.italic(def.VerbDivider))
		}
		for _, seq := range def.Sequences {
			r.writeSenses(seq, 0)
		}
	}

	if len(e.Quotes) > 0 {
		fmt.Fprintln(r.writer)
		heading := fmt.Sprintf("Examples of %s in a sentence", e.Headword)
		if r.styled() {
			heading = sectionStyle.Render(heading)
		}
		fmt.Fprintln(r.writer, heading)
		for _, q := range e.Quotes {
			line := r.inline(q.Text)
			if len(q.Attribution) > 0 {
				line += " " + r.inline(q.Attribution)
			}
			r.writeWrapped("  ", "  ", line)
		}
	}
}

// writeSenses writes one level of siblings. Sense numbers are padded to the
// widest number among the siblings so that the text column lines up.
func (r *Renderer) writeSenses(nodes []*mw.SenseNode, depth int) {
	width := 0
	for _, n := range nodes {
		if n.Row() {
			width = max(width, runewidth.StringWidth(n.Number))
		}
	}
	for _, n := range nodes {
		r.writeSense(n, depth, width)
	}
}

func (r *Renderer) writeSense(n *mw.SenseNode, depth, width int) {
	indent := strings.Repeat("  ", depth)
	childDepth := depth

	if n.Row() {
		var lead, hang string
		if width > 0 {
			if n.Number != "" {
				lead = r.bold(n.Number)
			}
			lead += strings.Repeat(" ", width-runewidth.StringWidth(n.Number)+1)
			hang = strings.Repeat(" ", width+1)
		}
		lead = indent + lead
		hang = indent + hang

		var prefix []string
		if n.GrammaticalLabel != "" {
			prefix = append(prefix, "["+n.GrammaticalLabel+"]")
		}
		if len(n.Labels) > 0 {
			prefix = append(prefix, r.italic(strings.Join(n.Labels, ", ")))
		}

		rest := n.Body
		text := strings.Join(prefix, " ")
		if len(rest) > 0 && rest[0].Kind == mw.BlockText {
			if text != "" {
				text += " "
			}
			text += r.inline(rest[0].Text)
			rest = rest[1:]
		}
		r.writeWrapped(lead, hang, text)
		for _, b := range rest {
			r.writeBlock(b, hang)
		}
		childDepth = depth + 1
	}

	if n.Divided != nil {
		dindent := strings.Repeat("  ", childDepth)
		rest := n.Divided.Body
		text := r.italic(n.Divided.Divider)
		if len(rest) > 0 && rest[0].Kind == mw.BlockText {
			text += " " + r.inline(rest[0].Text)
			rest = rest[1:]
		}
		r.writeWrapped(dindent, dindent+"  ", text)
		for _, b := range rest {
			r.writeBlock(b, dindent+"  ")
		}
	}

	r.writeSenses(n.Children, childDepth)
	if n.Truncated {
		fmt.Fprintln(r.writer, strings.Repeat("  ", childDepth)+"…")
	}
}

func (r *Renderer) writeBlock(b mw.Block, indent string) {
	switch b.Kind {
	case mw.BlockText:
		r.writeWrapped(indent, indent, r.inline(b.Text))
	case mw.BlockIllustrations:
		for _, ill := range b.Illustrations {
			line := "“" + r.inline(ill.Text) + "”"
			if len(ill.Attribution) > 0 {
				line += " " + r.inline(ill.Attribution)
			}
			r.writeWrapped(indent+"  ", indent+"  ", line)
		}
	}
}

// writeWrapped writes text after first, wrapping at the renderer width and
// indenting continuation lines with hang.
func (r *Renderer) writeWrapped(first, hang, text string) {
	avail := r.width - runewidth.StringWidth(hang)
	if r.width <= 0 || avail < 20 {
		fmt.Fprintln(r.writer, first+text)
		return
	}
	wrapped := wrapStyle.Width(avail).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if i == 0 {
			fmt.Fprintln(r.writer, first+line)
			continue
		}
		fmt.Fprintln(r.writer, hang+line)
	}
}

// inline renders inline nodes for a terminal.
func (r *Renderer) inline(nodes []mw.InlineNode) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case mw.InlineLink:
			text := r.style(n.Style, n.Text)
			if r.styled() {
				text = color.New(color.Underline).Sprint(text)
			}
			sb.WriteString(text)
		case mw.InlineStyledText:
			sb.WriteString(r.style(n.Style, n.Text))
		default:
			sb.WriteString(n.Text)
		}
	}
	return sb.String()
}

func (r *Renderer) style(style mw.Style, text string) string {
	switch style {
	case mw.StyleSmallCaps:
		return strings.ToUpper(text)
	case mw.StyleBoldSmallCaps:
		return r.bold(strings.ToUpper(text))
	}
	if !r.styled() {
		return text
	}
	switch style {
	case mw.StyleItalic:
		return color.New(color.Italic).Sprint(text)
	case mw.StyleBold:
		return color.New(color.Bold).Sprint(text)
	case mw.StyleBoldItalic:
		return color.New(color.Bold, color.Italic).Sprint(text)
	case mw.StyleSuperscript:
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

func (r *Renderer) italic(s string) string {
	if !r.styled() {
		return s
	}
	return color.New(color.Italic).Sprint(s)
}

func (r *Renderer) bold(s string) string {
	if !r.styled() {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}
