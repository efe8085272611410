package synonyms

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/lexicon-cli/api"
	"github.com/open-cli-collective/lexicon-cli/pkg/mw"
)

const happyBody = `[{
	"meta": {"id": "happy"},
	"hwi": {"hw": "happy"},
	"fl": "adjective",
	"def": [{"sseq": [
		[["sense", {"sn": "1", "syn_list": [[{"wd": "glad"}, {"wd": "cheerful"}]], "ant_list": [[{"wd": "sad"}]]}]],
		[["sense", {"sn": "2", "syn_list": [[{"wd": "lucky"}, {"wd": "glad"}]]}]]
	]}],
	"shortdef": ["feeling pleasure", "fortunate"]
}]`

func newClient(t *testing.T) *api.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/thesaurus/json/"))
		switch strings.TrimPrefix(r.URL.Path, "/thesaurus/json/") {
		case "happy":
			w.Write([]byte(happyBody))
		case "hapy":
			w.Write([]byte(`["happy", "harpy"]`))
		case "bare":
			w.Write([]byte(`[{"meta": {"id": "bare"}, "hwi": {"hw": "bare"}, "fl": "adjective", "def": [], "shortdef": []}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, "", "thes-key")
}

func newOptions(buf *bytes.Buffer) *synonymsOptions {
	return &synonymsOptions{
		noColor: true,
		out:     buf,
		logger:  zerolog.Nop(),
		choose: func(string, []mw.SynonymGroup) (string, error) {
			return "", errors.New("unexpected prompt")
		},
		clipboard: func(string) error { return errors.New("unexpected clipboard write") },
	}
}

func writeDraft(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunSynonyms_List(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(&buf)

	err := runSynonyms(context.Background(), "happy", opts, newClient(t))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "As in: feeling pleasure")
	assert.Contains(t, out, "glad, cheerful")
	assert.Contains(t, out, "Antonyms: sad")
	assert.Contains(t, out, "As in: fortunate")
}

func TestRunSynonyms_Plain(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(&buf)
	opts.output = "plain"

	require.NoError(t, runSynonyms(context.Background(), "happy", opts, newClient(t)))
	assert.Equal(t, "glad\ncheerful\nlucky\n", buf.String())
}

func TestRunSynonyms_Suggestions(t *testing.T) {
	var buf bytes.Buffer
	opts := newOptions(&buf)
	opts.output = "plain"

	require.NoError(t, runSynonyms(context.Background(), "hapy", opts, newClient(t)))
	assert.Equal(t, "happy\nharpy\n", buf.String())
}

func TestRunSynonyms_NoSynonyms(t *testing.T) {
	var buf bytes.Buffer
	err := runSynonyms(context.Background(), "bare", newOptions(&buf), newClient(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrNoResults)
}

func TestRunSynonyms_ReplaceWithPick(t *testing.T) {
	path := writeDraft(t, "I am happy today.")

	var buf bytes.Buffer
	opts := newOptions(&buf)
	opts.file = path
	opts.at = "5:10"
	opts.pick = "Cheerful"

	// The word comes from the selection.
	require.NoError(t, runSynonyms(context.Background(), "", opts, newClient(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "I am cheerful today.", string(data))
	assert.Contains(t, buf.String(), `Replaced "happy" with "cheerful"`)
}

func TestRunSynonyms_ReplaceWithPrompt(t *testing.T) {
	path := writeDraft(t, "so happy")

	var buf bytes.Buffer
	opts := newOptions(&buf)
	opts.file = path
	opts.at = "3:8"
	opts.choose = func(word string, groups []mw.SynonymGroup) (string, error) {
		assert.Equal(t, "happy", word)
		assert.Len(t, groups, 2)
		return "lucky", nil
	}

	require.NoError(t, runSynonyms(context.Background(), "happy", opts, newClient(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "so lucky", string(data))
}

func TestRunSynonyms_PickNotListed(t *testing.T) {
	path := writeDraft(t, "so happy")

	var buf bytes.Buffer
	opts := newOptions(&buf)
	opts.file = path
	opts.at = "3:8"
	opts.pick = "morose"

	err := runSynonyms(context.Background(), "", opts, newClient(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a listed synonym")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "so happy", string(data))
}

func TestRunSynonyms_Copy(t *testing.T) {
	var copied string
	var buf bytes.Buffer
	opts := newOptions(&buf)
	opts.copy = true
	opts.pick = "glad"
	opts.clipboard = func(text string) error {
		copied = text
		return nil
	}

	require.NoError(t, runSynonyms(context.Background(), "happy", opts, newClient(t)))
	assert.Equal(t, "glad", copied)
	assert.Contains(t, buf.String(), `Copied "glad" to clipboard`)
}

func TestRunSynonyms_FlagValidation(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		setup   func(o *synonymsOptions)
		wantErr string
	}{
		{"at without file", "happy", func(o *synonymsOptions) { o.at = "0:5" }, "--at requires --file"},
		{"file without at", "happy", func(o *synonymsOptions) { o.file = "x.txt" }, "--file requires --at"},
		{"pick alone", "happy", func(o *synonymsOptions) { o.pick = "glad" }, "--pick requires"},
		{"no word", "", func(o *synonymsOptions) {}, "a word is required"},
		{"invalid format", "happy", func(o *synonymsOptions) { o.output = "xml" }, "invalid output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := newOptions(&buf)
			tt.setup(opts)

			err := runSynonyms(context.Background(), tt.word, opts, newClient(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunSynonyms_SelectionNotSingleWord(t *testing.T) {
	path := writeDraft(t, "very happy")

	var buf bytes.Buffer
	opts := newOptions(&buf)
	opts.file = path
	opts.at = "0:10"

	err := runSynonyms(context.Background(), "", opts, newClient(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a single word")
}

func TestPickerLabel(t *testing.T) {
	tests := []struct {
		name    string
		synonym string
		asIn    string
		want    string
	}{
		{"short meaning kept whole", "glad", "feeling pleasure", "glad  (as in: feeling pleasure)"},
		{
			"long meaning truncated",
			"cheerful",
			"feeling or showing pleasure or contentment because of good fortune or circumstance",
			"cheerful  (as in: feeling or showing pleasure or contentment because ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickerLabel(tt.synonym, tt.asIn)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), maxPickerLabel)
		})
	}
}
