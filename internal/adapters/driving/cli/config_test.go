package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/inkwell-labs/inkwell-cli/internal/adapters/driven/config/file"
)

// useTempConfig points the wiring at a config store in a temp dir.
func useTempConfig(t *testing.T) {
	t.Helper()
	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store
	settings = nil
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	useTempConfig(t)

	out, err := execute(t, "config", "set", "embedding.provider", "openai")
	require.NoError(t, err)
	assert.Contains(t, out, "Set embedding.provider = openai")

	out, err = execute(t, "config", "get", "embedding.provider")
	require.NoError(t, err)
	assert.Contains(t, out, "openai")
}

func TestConfigCmd_SetKeepsIntegersTyped(t *testing.T) {
	useTempConfig(t)

	_, err := execute(t, "config", "set", "sync.max_emails", "1000")
	require.NoError(t, err)

	assert.Equal(t, 1000, configStore.GetInt("sync.max_emails"))
}

func TestConfigCmd_GetMissingKey(t *testing.T) {
	useTempConfig(t)

	_, err := execute(t, "config", "get", "no.such.key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigCmd_Show(t *testing.T) {
	useTempConfig(t)

	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "embedding.provider    ollama")
	assert.Contains(t, out, "sync.max_emails       500")
}

func TestConfigCmd_Path(t *testing.T) {
	useTempConfig(t)

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
}

func TestParseConfigValue(t *testing.T) {
	assert.Equal(t, true, parseConfigValue("true"))
	assert.Equal(t, int64(42), parseConfigValue("42"))
	assert.Equal(t, "ollama", parseConfigValue("ollama"))
}
