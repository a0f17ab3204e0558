package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_UpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Up.Keys()
	assert.Contains(t, keys, "up")
	assert.Contains(t, keys, "k")
}

func TestDefaultKeyMap_DownBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Down.Keys()
	assert.Contains(t, keys, "down")
	assert.Contains(t, keys, "j")
}

func TestDefaultKeyMap_PageUpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.PageUp.Keys()
	assert.Contains(t, keys, "pgup")
	assert.Contains(t, keys, "ctrl+u")
}

func TestDefaultKeyMap_PageDownBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.PageDown.Keys()
	assert.Contains(t, keys, "pgdown")
	assert.Contains(t, keys, "ctrl+d")
}

func TestDefaultKeyMap_TopBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Top.Keys()
	assert.Contains(t, keys, "home")
	assert.Contains(t, keys, "g")
}

func TestDefaultKeyMap_BottomBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Bottom.Keys()
	assert.Contains(t, keys, "end")
	assert.Contains(t, keys, "G")
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "esc")
	assert.Contains(t, keys, "ctrl+c")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 3)
	assert.Equal(t, km.Up, bindings[0])
	assert.Equal(t, km.Down, bindings[1])
	assert.Equal(t, km.Quit, bindings[2])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 3)    // 3 groups
	assert.Len(t, bindings[0], 4) // Up, Down, PageUp, PageDown
	assert.Len(t, bindings[1], 2) // Top, Bottom
	assert.Len(t, bindings[2], 1) // Quit
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("esc", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("up", km.Up))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("G", km.Bottom))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("down", km.Up))
	assert.False(t, Matches("g", km.Bottom))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Top", km.Top},
		{"Bottom", km.Bottom},
		{"Quit", km.Quit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
