package define

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/lexicon-cli/api"
)

const foxBody = `[{
	"meta": {"id": "fox:1"},
	"hwi": {"hw": "fox", "prs": [{"mw": "ˈfäks"}]},
	"fl": "noun",
	"def": [{"sseq": [[["sense", {"sn": "1", "dt": [["text", "{bc}a {it}carnivorous{/it} mammal"]]}]]]}],
	"shortdef": ["a carnivorous mammal"]
}]`

const foxThesaurusBody = `[{
	"meta": {"id": "fox"},
	"hwi": {"hw": "fox"},
	"fl": "noun",
	"def": [{"sseq": [[["sense", {"sn": "1", "syn_list": [[{"wd": "trickster"}, {"wd": "schemer"}]]}]]]}],
	"shortdef": ["a clever person"]
}]`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/collegiate/json/fox"):
			w.Write([]byte(foxBody))
		case strings.HasPrefix(r.URL.Path, "/thesaurus/json/fox"):
			w.Write([]byte(foxThesaurusBody))
		case strings.HasPrefix(r.URL.Path, "/collegiate/json/fxo"):
			w.Write([]byte(`["fox", "fax"]`))
		case strings.HasPrefix(r.URL.Path, "/collegiate/json/"):
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, word string, opts *defineOptions) (string, error) {
	t.Helper()
	server := newServer(t)
	var buf bytes.Buffer
	opts.out = &buf
	opts.noColor = true
	opts.logger = zerolog.Nop()
	client := api.NewClient(server.URL, "dict-key", "thes-key")
	err := runDefine(context.Background(), word, opts, client)
	return buf.String(), err
}

func TestRunDefine_Success(t *testing.T) {
	out, err := run(t, "fox", &defineOptions{output: "plain"})
	require.NoError(t, err)

	assert.Contains(t, out, `fox  noun  \ˈfäks\`)
	assert.Contains(t, out, "1 : a carnivorous mammal")
	assert.NotContains(t, out, "trickster")
}

func TestRunDefine_WithSynonyms(t *testing.T) {
	out, err := run(t, "fox", &defineOptions{synonyms: true})
	require.NoError(t, err)

	assert.Contains(t, out, "1 : a carnivorous mammal")
	assert.Contains(t, out, "As in: a clever person")
	assert.Contains(t, out, "trickster, schemer")
}

func TestRunDefine_JSONOutput(t *testing.T) {
	out, err := run(t, "fox", &defineOptions{output: "json", synonyms: true})
	require.NoError(t, err)

	var result struct {
		Word    string `json:"word"`
		Entries []struct {
			Headword string `json:"headword"`
		} `json:"entries"`
		Synonyms []struct {
			AsIn string `json:"asIn"`
		} `json:"synonyms"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "fox", result.Word)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "fox", result.Entries[0].Headword)
	require.Len(t, result.Synonyms, 1)
}

func TestRunDefine_Markdown(t *testing.T) {
	out, err := run(t, "fox", &defineOptions{output: "markdown"})
	require.NoError(t, err)

	assert.Contains(t, out, "## fox")
	assert.Contains(t, out, "- **1** : a *carnivorous* mammal")
}

func TestRunDefine_Suggestions(t *testing.T) {
	out, err := run(t, "fxo", &defineOptions{output: "plain"})
	require.NoError(t, err)
	assert.Equal(t, "fox\nfax\n", out)
}

func TestRunDefine_NoResults(t *testing.T) {
	_, err := run(t, "qwxz", &defineOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNoResults)
	assert.Contains(t, err.Error(), `"qwxz"`)
}

func TestRunDefine_InvalidFormat(t *testing.T) {
	_, err := run(t, "fox", &defineOptions{output: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRunDefine_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "Invalid API key"}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL, "bad-key", "")
	opts := &defineOptions{noColor: true, out: &bytes.Buffer{}, logger: zerolog.Nop()}

	err := runDefine(context.Background(), "fox", opts, client)
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "Invalid API key")
}
