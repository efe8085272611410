package mw

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// mdRenderer passes the inline <sub>/<sup> tags produced by InlineMarkdown through.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// MarkdownToHTML converts Markdown produced by this package to HTML.
func MarkdownToHTML(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderHTML renders an entry view as an HTML fragment.
func RenderHTML(v EntryView) (string, error) {
	return MarkdownToHTML(RenderMarkdown(v))
}

// RenderSynonymsHTML renders synonym groups as an HTML fragment.
func RenderSynonymsHTML(groups []SynonymGroup) (string, error) {
	return MarkdownToHTML(RenderSynonymsMarkdown(groups))
}
