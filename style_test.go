package microui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdooley/microui"
)

func TestStyleTOMLRoundTrip(t *testing.T) {
	style := microui.DefaultStyle()
	style.Padding = 7
	style.ScrollbarSize = 16
	style.Colors[microui.ColorButton] = microui.Color{R: 1, G: 2, B: 3, A: 4}

	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, microui.SaveStyle(path, style))

	loaded, err := microui.LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, style, loaded)
}

func TestLoadStylePartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
padding = 9

[colors.button]
r = 10
g = 20
b = 30
a = 255
`), 0o644))

	style, err := microui.LoadStyle(path)
	require.NoError(t, err)

	def := microui.DefaultStyle()
	assert.Equal(t, 9, style.Padding)
	assert.Equal(t, microui.Color{R: 10, G: 20, B: 30, A: 255},
		style.Colors[microui.ColorButton])
	// everything the file omits keeps the default
	assert.Equal(t, def.Size, style.Size)
	assert.Equal(t, def.TitleHeight, style.TitleHeight)
	assert.Equal(t, def.Colors[microui.ColorText], style.Colors[microui.ColorText])
}

func TestLoadStyleUnknownColorRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[colors.bogus]
r = 1
`), 0o644))

	_, err := microui.LoadStyle(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestLoadStyleMissingFile(t *testing.T) {
	_, err := microui.LoadStyle(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestContextsStylesAreIndependent(t *testing.T) {
	a := newTestContext()
	b := newTestContext()
	a.Style.Padding = 99
	assert.NotEqual(t, a.Style.Padding, b.Style.Padding,
		"styles must be per-context, not shared")
}

func TestLightStyleSharesMetrics(t *testing.T) {
	d := microui.DefaultStyle()
	l := microui.LightStyle()
	assert.Equal(t, d.Size, l.Size)
	assert.Equal(t, d.Padding, l.Padding)
	assert.NotEqual(t, d.Colors[microui.ColorWindowBG], l.Colors[microui.ColorWindowBG])
}
