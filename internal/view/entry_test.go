package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

const foxJSON = `{
	"meta": {"id": "fox:1"},
	"hom": 1,
	"hwi": {"hw": "fox", "prs": [{"mw": "ˈfäks"}]},
	"fl": "noun",
	"ins": [{"if": "fox*es", "il": "plural"}],
	"def": [{
		"vd": "noun",
		"sseq": [
			[
				["sense", {"sn": "1 a", "dt": [["text", "{bc}a {it}carnivorous{/it} mammal"], ["vis", [{"t": "saw a {wi}fox{/wi}"}]]]}],
				["sense", {"sn": "b", "sls": ["chiefly British"], "dt": [["text", "{bc}the fur of a fox"]]}]
			],
			[["sense", {"sn": "2", "dt": [["text", "{bc}a clever person"]]}]]
		]
	}],
	"quotes": [{"t": "a {qword}fox{/qword} in the henhouse", "aq": {"auth": "A. Writer"}}],
	"shortdef": ["a carnivorous mammal"]
}`

func foxView(t *testing.T) mw.EntryView {
	t.Helper()
	var e mw.DictionaryEntry
	require.NoError(t, json.Unmarshal([]byte(foxJSON), &e))
	return mw.BuildEntryView(e)
}

func TestRenderer_RenderEntries_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderEntries([]mw.EntryView{foxView(t)}))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, `fox¹  noun  \ˈfäks\`, lines[0])
	assert.Contains(t, lines, "plural foxes")
	assert.Contains(t, lines, "1 a : a carnivorous mammal")
	assert.Contains(t, lines, "      “saw a fox”")
	// Sibling numbers are padded to a shared width.
	assert.Contains(t, lines, "b   chiefly British : the fur of a fox")
	assert.Contains(t, lines, "2 : a clever person")
	assert.Contains(t, lines, "Examples of fox in a sentence")
	assert.Contains(t, lines, "  a fox in the henhouse —A. Writer")
}

func TestRenderer_RenderEntries_Wraps(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)
	r.SetWidth(30)

	v := foxView(t)
	v.Definitions[0].Sequences[1][0].Body[0].Text = mw.Transform("{bc}a clever person who is very hard to catch out in anything")

	require.NoError(t, r.RenderEntries([]mw.EntryView{v}))

	out := buf.String()
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 30, line)
	}
	assert.Contains(t, out, "2 : a clever person")
	assert.Contains(t, out, "anything")
}

func TestRenderer_RenderEntries_Markdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatMarkdown, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderEntries([]mw.EntryView{foxView(t)}))

	out := buf.String()
	assert.Contains(t, out, "## fox <sup>1</sup>")
	assert.Contains(t, out, "- **1 a** : a *carnivorous* mammal")
}

func TestRenderer_RenderEntries_HTML(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatHTML, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderEntries([]mw.EntryView{foxView(t)}))

	out := buf.String()
	assert.Contains(t, out, "<h2>fox <sup>1</sup></h2>")
	assert.Contains(t, out, "<em>carnivorous</em>")
}

func TestRenderer_RenderEntries_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderEntries(nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))

	buf.Reset()
	require.NoError(t, r.RenderEntries([]mw.EntryView{foxView(t)}))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "fox", decoded[0]["headword"])
}

func TestRenderer_RenderEntries_TruncatedAndGroups(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)

	group := &mw.SenseNode{
		Kind: mw.NodeGroup,
		Children: []*mw.SenseNode{
			{Kind: mw.NodeSense, Number: "a", Body: []mw.Block{{Kind: mw.BlockText, Text: mw.Transform("first")}}},
			{Kind: mw.NodeSense, Number: "b", Truncated: true, Body: []mw.Block{{Kind: mw.BlockText, Text: mw.Transform("second")}}},
		},
	}
	v := mw.EntryView{
		Headword:        "deep",
		FunctionalLabel: "adjective",
		Definitions:     []mw.DefinitionView{{Sequences: [][]*mw.SenseNode{{group}}}},
	}

	require.NoError(t, r.RenderEntries([]mw.EntryView{v}))

	lines := strings.Split(buf.String(), "\n")
	// Group children render as top-level peers.
	assert.Contains(t, lines, "a first")
	assert.Contains(t, lines, "b second")
	assert.Contains(t, lines, "  …")
}

func TestRenderer_RenderSynonyms(t *testing.T) {
	groups := []mw.SynonymGroup{{
		Headword:        "happy",
		FunctionalLabel: "adjective",
		Number:          "1",
		AsIn:            "feeling pleasure",
		Synonyms:        []mw.SynonymWord{{Word: "glad"}, {Word: "joyful"}},
		Antonyms:        []mw.SynonymWord{{Word: "sad"}},
	}, {
		Headword:        "happy",
		FunctionalLabel: "adjective",
		AsIn:            "fortunate",
		Synonyms:        []mw.SynonymWord{{Word: "lucky"}, {Word: "glad"}},
	}}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)
		require.NoError(t, r.RenderSynonyms(groups))

		out := buf.String()
		assert.Contains(t, out, "1 adjective  As in: feeling pleasure")
		assert.Contains(t, out, "  glad, joyful")
		assert.Contains(t, out, "  Antonyms: sad")
	})

	t.Run("table truncates long as-in header to width", func(t *testing.T) {
		long := []mw.SynonymGroup{{
			FunctionalLabel: "adjective",
			Number:          "1",
			AsIn:            "feeling or showing pleasure or contentment in every way",
			Synonyms:        []mw.SynonymWord{{Word: "glad"}},
		}}
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)
		r.SetWidth(40)
		require.NoError(t, r.RenderSynonyms(long))

		header := strings.SplitN(buf.String(), "\n", 2)[0]
		assert.Equal(t, "1 adjective  As in: feeling or showin...", header)
	})

	t.Run("plain lists unique words", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatPlain, true)
		r.SetWriter(&buf)
		require.NoError(t, r.RenderSynonyms(groups))

		assert.Equal(t, "glad\njoyful\nlucky\n", buf.String())
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatMarkdown, true)
		r.SetWriter(&buf)
		require.NoError(t, r.RenderSynonyms(groups))

		assert.Contains(t, buf.String(), "### *adjective* As in: feeling pleasure")
	})
}

func TestRenderer_RenderSuggestions(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)
		require.NoError(t, r.RenderSuggestions("fxo", []string{"fax", "fix"}))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], `No entries found for "fxo"`)
		assert.Equal(t, "SUGGESTION  ENTRY", lines[1])
		assert.Equal(t, "fax         "+mw.EntryURL+"fax", lines[2])
		assert.Equal(t, "fix         "+mw.EntryURL+"fix", lines[3])
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatJSON, true)
		r.SetWriter(&buf)
		require.NoError(t, r.RenderSuggestions("fxo", []string{"fax"}))

		var decoded struct {
			Word        string   `json:"word"`
			Suggestions []string `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "fxo", decoded.Word)
		assert.Equal(t, []string{"fax"}, decoded.Suggestions)
	})

	t.Run("markdown links", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatMarkdown, true)
		r.SetWriter(&buf)
		require.NoError(t, r.RenderSuggestions("fxo", []string{"fax"}))

		assert.Contains(t, buf.String(), "- [fax]("+mw.EntryURL+"fax)")
	})
}

func TestRenderer_RenderTable_AlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"WORD", "FL"}, [][]string{{"狐", "noun"}, {"vixen", "noun"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "WORD   FL", lines[0])
	assert.Equal(t, "狐     noun", lines[1])
	assert.Equal(t, "vixen  noun", lines[2])
}
