package chroma

import (
	"testing"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeDistances(t *testing.T) {
	// The v2 API has no constant for this include value.
	assert.Equal(t, chroma.Include("distances"), includeDistances)
}

func TestToDomainMetadata(t *testing.T) {
	t.Run("maps all stored keys", func(t *testing.T) {
		metadata, err := chroma.NewDocumentMetadataFromMap(map[string]interface{}{
			metaTo:       "alice@example.com",
			metaSubject:  "Quarterly review",
			metaDate:     "2025-03-01",
			metaThreadID: "thread-7",
		})
		require.NoError(t, err)

		out := toDomainMetadata(metadata)

		assert.Equal(t, "alice@example.com", out.To)
		assert.Equal(t, "Quarterly review", out.Subject)
		assert.Equal(t, "2025-03-01", out.Date)
		assert.Equal(t, "thread-7", out.ThreadID)
	})

	t.Run("missing keys map to empty strings", func(t *testing.T) {
		metadata, err := chroma.NewDocumentMetadataFromMap(map[string]interface{}{
			metaTo: "bob@example.com",
		})
		require.NoError(t, err)

		out := toDomainMetadata(metadata)

		assert.Equal(t, "bob@example.com", out.To)
		assert.Empty(t, out.Subject)
		assert.Empty(t, out.Date)
		assert.Empty(t, out.ThreadID)
	})
}
