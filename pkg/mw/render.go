// render.go renders entry views and synonym groups as Markdown.
package mw

import (
	"fmt"
	"net/url"
	"strings"
)

// EntryURL is the public page for a headword; links point here.
const EntryURL = "https://www.merriam-webster.com/dictionary/"

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

// escapeMarkdown escapes characters that Markdown would treat as syntax.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// InlineMarkdown renders inline nodes as Markdown. Small caps have no
// Markdown form and are rendered in upper case.
func InlineMarkdown(nodes []InlineNode) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch n.Kind {
		case InlineLink:
			fmt.Fprintf(&sb, "[%s](%s%s)", styleMarkdown(n.Style, n.Text), EntryURL, url.PathEscape(n.Target))
		case InlineStyledText:
			sb.WriteString(styleMarkdown(n.Style, n.Text))
		default:
			sb.WriteString(escapeMarkdown(n.Text))
		}
	}
	return sb.String()
}

func styleMarkdown(style Style, text string) string {
	// Emphasis markers must hug non-space text.
	lead := text[:len(text)-len(strings.TrimLeft(text, " "))]
	trail := text[len(strings.TrimRight(text, " ")):]
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	core = escapeMarkdown(core)

	switch style {
	case StyleItalic:
		core = "*" + core + "*"
	case StyleBold:
		core = "**" + core + "**"
	case StyleBoldItalic:
		core = "***" + core + "***"
	case StyleSubscript:
		core = "<sub>" + core + "</sub>"
	case StyleSuperscript:
		core = "<sup>" + core + "</sup>"
	case StyleSmallCaps:
		core = strings.ToUpper(core)
	case StyleBoldSmallCaps:
		core = "**" + strings.ToUpper(core) + "**"
	}
	return lead + core + trail
}

// RenderMarkdown renders an entry view as a Markdown document.
func RenderMarkdown(v EntryView) string {
	var sb strings.Builder

	title := escapeMarkdown(v.Headword)
	if v.Homograph > 0 {
		title += fmt.Sprintf(" <sup>%d</sup>", v.Homograph)
	}
	fmt.Fprintf(&sb, "## %s\n\n", title)

	var meta []string
	if v.FunctionalLabel != "" {
		meta = append(meta, "*"+escapeMarkdown(v.FunctionalLabel)+"*")
	}
	if v.Pronunciation != "" {
		meta = append(meta, `\\`+escapeMarkdown(v.Pronunciation)+`\\`)
	}
	if len(v.Labels) > 0 {
		meta = append(meta, "*"+escapeMarkdown(strings.Join(v.Labels, ", "))+"*")
	}
	if len(meta) > 0 {
		sb.WriteString(strings.Join(meta, " · "))
		sb.WriteString("\n\n")
	}
	if v.Inflections != "" {
		fmt.Fprintf(&sb, "**%s**\n\n", escapeMarkdown(v.Inflections))
	}
	for _, ref := range v.CrossReferences {
		fmt.Fprintf(&sb, "*%s*\n\n", escapeMarkdown(ref))
	}

	for _, def := range v.Definitions {
		if def.VerbDivider != "" {
			fmt.Fprintf(&sb, "### %s\n\n", escapeMarkdown(def.VerbDivider))
		}
		for _, seq := range def.Sequences {
			for _, node := range seq {
				writeSenseMarkdown(&sb, node, 0)
			}
		}
		sb.WriteString("\n")
	}

	if len(v.Quotes) > 0 {
		fmt.Fprintf(&sb, "### Examples of %s in a sentence\n\n", escapeMarkdown(v.Headword))
		for _, q := range v.Quotes {
			sb.WriteString("> ")
			sb.WriteString(InlineMarkdown(q.Text))
			if len(q.Attribution) > 0 {
				sb.WriteString(" ")
				sb.WriteString(InlineMarkdown(q.Attribution))
			}
			sb.WriteString("\n\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// writeSenseMarkdown writes a node as a nested list item. Nodes without a
// row of their own (groups, empty senses) contribute their children at the
// same depth so no list item is left without a parent.
func writeSenseMarkdown(sb *strings.Builder, n *SenseNode, depth int) {
	childDepth := depth
	if n.Row() {
		indent := strings.Repeat("  ", depth)
		sb.WriteString(indent)
		sb.WriteString("- ")
		sb.WriteString(senseLead(n))

		rest := n.Body
		if len(rest) > 0 && rest[0].Kind == BlockText {
			sb.WriteString(InlineMarkdown(rest[0].Text))
			rest = rest[1:]
		}
		sb.WriteString("\n")
		for _, b := range rest {
			writeBlockMarkdown(sb, b, depth+1)
		}
		childDepth = depth + 1
	}

	if n.Divided != nil {
		sb.WriteString(strings.Repeat("  ", childDepth))
		fmt.Fprintf(sb, "- *%s*", escapeMarkdown(n.Divided.Divider))
		rest := n.Divided.Body
		if len(rest) > 0 && rest[0].Kind == BlockText {
			sb.WriteString(" ")
			sb.WriteString(InlineMarkdown(rest[0].Text))
			rest = rest[1:]
		}
		sb.WriteString("\n")
		for _, b := range rest {
			writeBlockMarkdown(sb, b, childDepth+1)
		}
	}

	for _, child := range n.Children {
		writeSenseMarkdown(sb, child, childDepth)
	}
	if n.Truncated {
		sb.WriteString(strings.Repeat("  ", childDepth))
		sb.WriteString("- …\n")
	}
}

// senseLead renders the number and labels that start a sense row.
func senseLead(n *SenseNode) string {
	var parts []string
	if n.Number != "" {
		parts = append(parts, "**"+escapeMarkdown(n.Number)+"**")
	}
	if n.GrammaticalLabel != "" {
		parts = append(parts, "["+escapeMarkdown(n.GrammaticalLabel)+"]")
	}
	if len(n.Labels) > 0 {
		parts = append(parts, "*"+escapeMarkdown(strings.Join(n.Labels, ", "))+"*")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + " "
}

func writeBlockMarkdown(sb *strings.Builder, b Block, depth int) {
	indent := strings.Repeat("  ", depth)
	switch b.Kind {
	case BlockText:
		sb.WriteString(indent + "- " + InlineMarkdown(b.Text) + "\n")
	case BlockIllustrations:
		for _, ill := range b.Illustrations {
			line := "“" + InlineMarkdown(ill.Text) + "”"
			if len(ill.Attribution) > 0 {
				line += " " + InlineMarkdown(ill.Attribution)
			}
			sb.WriteString(indent + "- " + line + "\n")
		}
	}
}

// RenderSynonymsMarkdown renders synonym groups as a Markdown document.
func RenderSynonymsMarkdown(groups []SynonymGroup) string {
	var sb strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&sb, "### *%s* As in: %s\n\n", escapeMarkdown(g.FunctionalLabel), escapeMarkdown(g.AsIn))
		sb.WriteString(joinWords(g.Synonyms))
		sb.WriteString("\n\n")
		if len(g.Antonyms) > 0 {
			sb.WriteString("**Antonyms:** ")
			sb.WriteString(joinWords(g.Antonyms))
			sb.WriteString("\n\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func joinWords(words []SynonymWord) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = escapeMarkdown(w.Display())
	}
	return strings.Join(out, ", ")
}
