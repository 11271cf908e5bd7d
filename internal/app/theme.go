// Package app provides application-wide presentation settings.
package app

import (
	"image/color"

	"chaos-game/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ChaosTheme is the light theme used by the chaos game window.
type ChaosTheme struct{}

var _ fyne.Theme = (*ChaosTheme)(nil)

func (t *ChaosTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorutil.Green
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0xF4, G: 0xF4, B: 0xF0, A: 0xFF} // Off-white so the canvas edge is visible
	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

func (t *ChaosTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *ChaosTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *ChaosTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return 13
	}
	return theme.DefaultTheme().Size(name)
}
