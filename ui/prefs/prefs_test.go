package prefs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"chaos-game/pkg/colorutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "nope", prefsFile))
	assert.Equal(t, DefaultSettings(), p.Settings())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", prefsFile)
	p := LoadFrom(path)

	want := Settings{
		CanvasWidth:  800,
		CanvasHeight: 600,
		DotRadius:    1.5,
		Dot:          colorutil.Green,
		Background:   color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff},
		Ratio:        0.6,
	}
	p.SetSettings(want)
	require.NoError(t, p.Save())

	reloaded := LoadFrom(path)
	assert.Equal(t, want, reloaded.Settings())
	assert.Equal(t, path, reloaded.Path())
}

func TestSettingsRejectsUnusableValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	data := `{"canvasWidth": -5, "canvasHeight": 0, "dotRadius": -1, "dotColor": "purple", "ratio": "half"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	assert.Equal(t, DefaultSettings(), LoadFrom(path).Settings())
}

func TestMalformedFileIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p := LoadFrom(path)
	assert.Equal(t, "", p.String(KeyDotColor))
	assert.Equal(t, 7, p.IntWithFallback(KeyCanvasWidth, 7))
}
