package app

import (
	"testing"

	"chaos-game/pkg/colorutil"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestChaosTheme(t *testing.T) {
	test.NewApp()

	th := &ChaosTheme{}

	assert.Equal(t, colorutil.Green, th.Color(theme.ColorNamePrimary, theme.VariantDark))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight),
		th.Color(theme.ColorNameForeground, theme.VariantDark),
		"always renders the light variant")
	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))
}
