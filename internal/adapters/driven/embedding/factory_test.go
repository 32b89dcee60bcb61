package embedding

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("ollama", func(t *testing.T) {
		svc, err := New(Settings{Provider: "ollama"})
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, "nomic-embed-text", svc.ModelName())
	})

	t.Run("openai with key", func(t *testing.T) {
		svc, err := New(Settings{Provider: "openai", APIKey: "sk-test"})
		require.NoError(t, err)
		assert.Equal(t, "text-embedding-3-small", svc.ModelName())
	})

	t.Run("openai without key fails", func(t *testing.T) {
		_, err := New(Settings{Provider: "openai"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(Settings{Provider: "cohere"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown embedding provider")
	})

	t.Run("model override", func(t *testing.T) {
		svc, err := New(Settings{Provider: "ollama", Model: "mxbai-embed-large"})
		require.NoError(t, err)
		assert.Equal(t, "mxbai-embed-large", svc.ModelName())
	})
}

func TestNewValidated(t *testing.T) {
	t.Run("reachable backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc, err := NewValidated(Settings{Provider: "ollama", BaseURL: server.URL})
		require.NoError(t, err)
		require.NotNil(t, svc)
		svc.Close()
	})

	t.Run("unreachable backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewValidated(Settings{Provider: "ollama", BaseURL: server.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable")
	})

	t.Run("bad settings fail before the ping", func(t *testing.T) {
		_, err := NewValidated(Settings{Provider: "openai"})
		require.Error(t, err)
	})
}
