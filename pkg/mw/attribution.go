package mw

// FormatAttribution renders a citation as "—author, source, date, subsource, subdate",
// including only the parts that are set. Markup in sources and dates is
// transformed; the author is taken literally. Returns nil when nothing is set.
func FormatAttribution(aq AttributionQuote) []InlineNode {
	var parts [][]InlineNode
	if aq.Author != "" {
		parts = append(parts, []InlineNode{{Kind: InlinePlainText, Text: aq.Author}})
	}
	parts = appendMarkup(parts, aq.Source)
	parts = appendMarkup(parts, aq.Date)
	if aq.Subsource != nil {
		parts = appendMarkup(parts, aq.Subsource.Source)
		parts = appendMarkup(parts, aq.Subsource.Date)
	}
	if len(parts) == 0 {
		return nil
	}

	var b inlineBuilder
	b.addText("—")
	for i, part := range parts {
		if i > 0 {
			b.addText(", ")
		}
		b.addNodes(part)
	}
	return b.nodes
}

func appendMarkup(parts [][]InlineNode, markup string) [][]InlineNode {
	if nodes := Transform(markup); len(nodes) > 0 {
		return append(parts, nodes)
	}
	return parts
}
