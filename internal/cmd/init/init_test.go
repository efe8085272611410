package init

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/lexicon-cli/internal/config"
)

func TestVerifyKeys_Success(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		switch r.URL.Path {
		case "/collegiate/json/test":
			assert.Equal(t, "dict-key", r.URL.Query().Get("key"))
		case "/thesaurus/json/test":
			assert.Equal(t, "thes-key", r.URL.Query().Get("key"))
		}
		w.Write([]byte(`["tests", "testy"]`))
	}))
	defer server.Close()

	cfg := &config.Config{
		DictionaryKey: "dict-key",
		ThesaurusKey:  "thes-key",
		BaseURL:       server.URL,
	}

	err := verifyKeys(cfg, server.Client())
	require.NoError(t, err)
	assert.Equal(t, []string{"/collegiate/json/test", "/thesaurus/json/test"}, paths)
}

func TestVerifyKeys_DictionaryOnly(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`["tests"]`))
	}))
	defer server.Close()

	cfg := &config.Config{DictionaryKey: "dict-key", BaseURL: server.URL}

	require.NoError(t, verifyKeys(cfg, server.Client()))
	assert.Equal(t, 1, calls)
}

func TestVerifyKeys_InvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The API answers an unknown key with a 200 and a plain-text body.
		w.Write([]byte("Invalid API key. Not subscribed for this reference."))
	}))
	defer server.Close()

	cfg := &config.Config{DictionaryKey: "wrong", BaseURL: server.URL}

	err := verifyKeys(cfg, server.Client())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collegiate key rejected")
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestVerifyKeys_ThesaurusRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/thesaurus/json/test" {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": "forbidden"}`))
			return
		}
		w.Write([]byte(`["tests"]`))
	}))
	defer server.Close()

	cfg := &config.Config{DictionaryKey: "dict-key", ThesaurusKey: "bad", BaseURL: server.URL}

	err := verifyKeys(cfg, server.Client())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thesaurus key rejected")
}

func TestVerifyKeys_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	cfg := &config.Config{DictionaryKey: "dict-key", BaseURL: url}

	err := verifyKeys(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}
