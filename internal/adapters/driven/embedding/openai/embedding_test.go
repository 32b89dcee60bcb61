package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmbeddingService(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := NewEmbeddingService(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})

	t.Run("defaults", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{APIKey: "sk-test"})
		require.NoError(t, err)
		assert.Equal(t, DefaultModel, svc.ModelName())
		assert.Equal(t, 1536, svc.Dimensions())
	})

	t.Run("known model dimensions", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{
			APIKey: "sk-test",
			Model:  "text-embedding-3-large",
		})
		require.NoError(t, err)
		assert.Equal(t, 3072, svc.Dimensions())
	})

	t.Run("dimension override", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{
			APIKey:     "sk-test",
			Dimensions: 512,
		})
		require.NoError(t, err)
		assert.Equal(t, 512, svc.Dimensions())
	})
}

func TestEmbedBatch(t *testing.T) {
	var gotReq embeddingRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		// Out of order on purpose; results must come back input-ordered.
		w.Write([]byte(`{"data":[
			{"embedding":[0.3,0.4],"index":1},
			{"embedding":[0.1,0.2],"index":0}
		]}`))
	}))
	defer srv.Close()

	svc, err := NewEmbeddingService(Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	embeddings, err := svc.EmbedBatch(context.Background(), []string{"first", "second"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, DefaultModel, gotReq.Model)
	assert.Equal(t, []string{"first", "second"}, gotReq.Input)
	assert.Equal(t, 1536, gotReq.Dimensions)
	require.Len(t, embeddings, 2)
	assert.Equal(t, []float32{0.1, 0.2}, embeddings[0])
	assert.Equal(t, []float32{0.3, 0.4}, embeddings[1])
}

func TestEmbedBatch_NoDimensionsForLegacyModel(t *testing.T) {
	var gotReq embeddingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"data":[{"embedding":[0.1],"index":0}]}`))
	}))
	defer srv.Close()

	svc, err := NewEmbeddingService(Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
		Model:   "text-embedding-ada-002",
	})
	require.NoError(t, err)

	_, err = svc.EmbedBatch(context.Background(), []string{"text"})
	require.NoError(t, err)

	// ada-002 rejects the dimensions parameter.
	assert.Zero(t, gotReq.Dimensions)
}

func TestEmbedBatch_EmptyInput(t *testing.T) {
	svc, err := NewEmbeddingService(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	embeddings, err := svc.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, embeddings)
}

func TestEmbedBatch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	svc, err := NewEmbeddingService(Config{
		APIKey:  "sk-bad",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	_, err = svc.EmbedBatch(context.Background(), []string{"text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestEmbedBatch_IndexOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"embedding":[0.1],"index":5}]}`))
	}))
	defer srv.Close()

	svc, err := NewEmbeddingService(Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	_, err = svc.EmbedBatch(context.Background(), []string{"text"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 5 out of range")
}

func TestPing(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc, err := NewEmbeddingService(Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Ping(context.Background()))
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestPing_BadKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc, err := NewEmbeddingService(Config{
		APIKey:  "sk-bad",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	assert.Error(t, svc.Ping(context.Background()))
}
