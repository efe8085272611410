package mw

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const foxEntryJSON = `{
	"meta": {
		"id": "fox:1",
		"uuid": "8e4e3a4a-3d5d-4a47-9c53-9b8f3c0f9c0e",
		"sort": "060468000",
		"src": "collegiate",
		"section": "alpha",
		"stems": ["fox", "foxes"],
		"offensive": false
	},
	"hom": 1,
	"hwi": {"hw": "fox", "prs": [{"mw": "ˈfäks", "sound": {"audio": "fox00001"}}]},
	"fl": "noun",
	"ins": [{"if": "fox*es", "il": "plural"}, {"if": "fox", "il": "or"}],
	"def": [{
		"sseq": [
			[["sense", {"sn": "1 a", "dt": [["text", "{bc}any of various carnivorous mammals"]]}]],
			[["sense", {"sn": "2", "dt": [["text", "{bc}a clever crafty person"]]}]]
		]
	}],
	"quotes": [{
		"t": "a {qword}fox{/qword} in the henhouse",
		"aq": {"auth": "A. Writer", "source": "{it}The Daily{/it}", "aqdate": "2021"}
	}],
	"shortdef": ["any of various carnivorous mammals", "a clever crafty person"]
}`

func mustEntry(t *testing.T, raw string) DictionaryEntry {
	t.Helper()
	var e DictionaryEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	return e
}

func TestDictionaryEntry_Unmarshal(t *testing.T) {
	e := mustEntry(t, foxEntryJSON)

	assert.Equal(t, "fox:1", e.Meta.ID)
	assert.Equal(t, uuid.MustParse("8e4e3a4a-3d5d-4a47-9c53-9b8f3c0f9c0e"), e.Meta.UUID.UUID)
	assert.Equal(t, 1, e.Homograph)
	assert.Equal(t, "noun", e.FunctionalLabel)
	require.Len(t, e.Definitions, 1)
	assert.Len(t, e.Definitions[0].SenseSequences, 2)
	require.Len(t, e.Quotes, 1)
	require.NotNil(t, e.Quotes[0].Attribution)
	assert.Equal(t, "A. Writer", e.Quotes[0].Attribution.Author)
}

func TestDictionaryEntry_InvalidUUIDIsNil(t *testing.T) {
	e := mustEntry(t, `{"meta": {"id": "fox", "uuid": ""}, "hwi": {"hw": "fox"}, "fl": "noun", "def": [], "shortdef": []}`)
	assert.Equal(t, uuid.Nil, e.Meta.UUID.UUID)
	assert.Empty(t, BuildEntryView(e).UUID)
}

func TestEntryView_JSONIncludesUUID(t *testing.T) {
	data, err := json.Marshal(BuildEntryView(mustEntry(t, foxEntryJSON)))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"uuid":"8e4e3a4a-3d5d-4a47-9c53-9b8f3c0f9c0e"`)
}

func TestDictionaryEntry_WrongTypedFieldsKeepEntry(t *testing.T) {
	e := mustEntry(t, `{
		"meta": {"id": "fox:2", "stems": "fox", "offensive": "no"},
		"hom": "2",
		"hwi": {"hw": "fox"},
		"fl": "verb",
		"lbs": "informal",
		"ins": "foxed",
		"def": [{"vd": "transitive verb", "sseq": {}}, {"sseq": [[["sense", {"sn": "1", "dt": [["text", "to trick"]]}]]]}],
		"shortdef": ["to trick"]
	}`)

	assert.Equal(t, "fox:2", e.Meta.ID)
	assert.Equal(t, []string{"fox"}, e.Meta.Stems)
	assert.False(t, e.Meta.Offensive)
	assert.Equal(t, 2, e.Homograph)
	assert.Equal(t, []string{"informal"}, e.Labels)
	assert.Empty(t, e.Inflections)
	require.Len(t, e.Definitions, 2)
	assert.Equal(t, "transitive verb", e.Definitions[0].VerbDivider)
	assert.Empty(t, e.Definitions[0].SenseSequences)
	assert.Len(t, e.Definitions[1].SenseSequences, 1)
}

func TestDictionaryEntry_NotAnObject(t *testing.T) {
	var e DictionaryEntry
	assert.Error(t, json.Unmarshal([]byte(`42`), &e))
}

func TestBuildEntryView(t *testing.T) {
	view := BuildEntryView(mustEntry(t, foxEntryJSON))

	assert.Equal(t, "fox:1", view.ID)
	assert.Equal(t, "8e4e3a4a-3d5d-4a47-9c53-9b8f3c0f9c0e", view.UUID)
	assert.Equal(t, "fox", view.Headword)
	assert.Equal(t, 1, view.Homograph)
	assert.Equal(t, "noun", view.FunctionalLabel)
	assert.Equal(t, "ˈfäks", view.Pronunciation)
	assert.Equal(t, "plural foxes; or fox", view.Inflections)

	require.Len(t, view.Definitions, 1)
	seqs := view.Definitions[0].Sequences
	require.Len(t, seqs, 2)
	require.Len(t, seqs[0], 1)
	assert.Equal(t, "1 a", seqs[0][0].Number)
	assert.Equal(t, ": any of various carnivorous mammals", PlainText(seqs[0][0].Body[0].Text))
	assert.Equal(t, "2", seqs[1][0].Number)

	require.Len(t, view.Quotes, 1)
	assert.Equal(t, "a fox in the henhouse", PlainText(view.Quotes[0].Text))
	assert.Equal(t, []InlineNode{
		plain("—A. Writer, "),
		styled(StyleItalic, "The Daily"),
		plain(", 2021"),
	}, view.Quotes[0].Attribution)
	assert.Empty(t, view.Warnings)
}

func TestBuildEntryView_CleansHeadword(t *testing.T) {
	e := mustEntry(t, `{"meta": {"id": "vo*ca*bu*lary"}, "hwi": {"hw": "vo*cab*u*lary"}, "fl": "noun", "def": [], "shortdef": []}`)
	assert.Equal(t, "vocabulary", BuildEntryView(e).Headword)
}

func TestBuildEntryView_VerbDividers(t *testing.T) {
	e := mustEntry(t, `{
		"meta": {"id": "run"},
		"hwi": {"hw": "run"},
		"fl": "verb",
		"def": [
			{"vd": "intransitive verb", "sseq": [[["sense", {"sn": "1"}]]]},
			{"vd": "transitive verb", "sseq": [[["sense", {"sn": "1"}]]]}
		],
		"shortdef": []
	}`)

	view := BuildEntryView(e)
	require.Len(t, view.Definitions, 2)
	assert.Equal(t, "intransitive verb", view.Definitions[0].VerbDivider)
	assert.Equal(t, "transitive verb", view.Definitions[1].VerbDivider)
}

func TestBuildEntryView_CollectsWarnings(t *testing.T) {
	e := mustEntry(t, `{
		"meta": {"id": "x"}, "hwi": {"hw": "x"}, "fl": "noun",
		"def": [{"sseq": [[["xyz", {}], ["sense", {"sn": "1"}]]]}],
		"shortdef": []
	}`)

	view := BuildEntryView(e)
	require.Len(t, view.Definitions[0].Sequences[0], 1)
	assert.Len(t, view.Warnings, 1)
}

func TestFormatPronunciations(t *testing.T) {
	tests := []struct {
		name string
		prs  []Pronunciation
		want string
	}{
		{"none", nil, ""},
		{"single", []Pronunciation{{Written: "ˈfäks"}}, "ˈfäks"},
		{
			"default delimiter",
			[]Pronunciation{{Written: "ˈrüt"}, {Written: "ˈrau̇t"}},
			"ˈrüt, ˈrau̇t",
		},
		{
			"pun delimiter",
			[]Pronunciation{{Written: "ˈrüt", Punctuation: ";"}, {Written: "ˈrau̇t"}},
			"ˈrüt; ˈrau̇t",
		},
		{
			"labels",
			[]Pronunciation{{Written: "ˈfäks"}, {Written: "ˈfɔks", PreLabel: "chiefly British", PostLabel: "(older)"}},
			"ˈfäks, chiefly British ˈfɔks (older)",
		},
		{"skips empty", []Pronunciation{{Written: ""}, {Written: "a"}}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPronunciations(tt.prs))
		})
	}
}

func TestFormatAttribution(t *testing.T) {
	tests := []struct {
		name string
		aq   AttributionQuote
		want []InlineNode
	}{
		{"empty", AttributionQuote{}, nil},
		{"author only", AttributionQuote{Author: "Jane Doe"}, []InlineNode{plain("—Jane Doe")}},
		{
			"author source date",
			AttributionQuote{Author: "Jane Doe", Source: "{it}Fox News{/it}", Date: "2020"},
			[]InlineNode{plain("—Jane Doe, "), styled(StyleItalic, "Fox News"), plain(", 2020")},
		},
		{
			"subsource",
			AttributionQuote{Source: "Anthology", Subsource: &Subsource{Source: "Essay", Date: "1999"}},
			[]InlineNode{plain("—Anthology, Essay, 1999")},
		},
		{
			"subsource only",
			AttributionQuote{Subsource: &Subsource{Date: "1850"}},
			[]InlineNode{plain("—1850")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAttribution(tt.aq))
		})
	}
}

func TestBaseID(t *testing.T) {
	assert.Equal(t, "fox", BaseID("fox:2"))
	assert.Equal(t, "fox", BaseID("fox"))
}
