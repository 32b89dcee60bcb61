package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	assert.True(t, key.Matches(ctrlC, km.Quit))

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	assert.True(t, key.Matches(enter, km.Search))

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	assert.True(t, key.Matches(j, km.Down))
	assert.False(t, key.Matches(j, km.Up))

	slash := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}
	assert.True(t, key.Matches(slash, km.NewSearch))
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.InputHelp())
	assert.NotEmpty(t, km.ResultsHelp())
}
