// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"chaos-game/internal/chaos"
	"chaos-game/internal/surface"
	"chaos-game/pkg/colorutil"
)

const (
	appDir    = "chaos-game"
	prefsFile = "preferences.json"
)

// Preference keys.
const (
	KeyCanvasWidth     = "canvasWidth"
	KeyCanvasHeight    = "canvasHeight"
	KeyDotRadius       = "dotRadius"
	KeyDotColor        = "dotColor"
	KeyBackgroundColor = "backgroundColor"
	KeyRatio           = "ratio"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads preferences from ~/.config/chaos-game/preferences.json.
// Returns a Prefs with defaults if the file doesn't exist.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFrom(filepath.Join(configDir, appDir, prefsFile))
}

// LoadFrom reads preferences from path. A missing or malformed file yields
// empty preferences that will be written back to path on Save.
func LoadFrom(path string) *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.values)
	return p
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// IntWithFallback returns an integer preference, or fallback if not set.
// JSON numbers decode as float64 and are truncated.
func (p *Prefs) IntWithFallback(key string, fallback int) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return fallback
}

// SetInt stores an integer preference.
func (p *Prefs) SetInt(key string, val int) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Settings are the typed preferences the renderers consume.
type Settings struct {
	CanvasWidth  int
	CanvasHeight int
	DotRadius    float64
	Dot          color.RGBA
	Background   color.RGBA
	Ratio        float64
}

// DefaultSettings matches the classic 500x500 white canvas with black dots.
func DefaultSettings() Settings {
	return Settings{
		CanvasWidth:  500,
		CanvasHeight: 500,
		DotRadius:    surface.DefaultDotRadius,
		Dot:          colorutil.Black,
		Background:   colorutil.White,
		Ratio:        chaos.DefaultRatio,
	}
}

// Settings resolves the typed settings, falling back to defaults for missing
// or unusable values.
func (p *Prefs) Settings() Settings {
	d := DefaultSettings()
	s := Settings{
		CanvasWidth:  p.IntWithFallback(KeyCanvasWidth, d.CanvasWidth),
		CanvasHeight: p.IntWithFallback(KeyCanvasHeight, d.CanvasHeight),
		DotRadius:    p.FloatWithFallback(KeyDotRadius, d.DotRadius),
		Dot:          colorutil.ParseHexOr(p.String(KeyDotColor), d.Dot),
		Background:   colorutil.ParseHexOr(p.String(KeyBackgroundColor), d.Background),
		Ratio:        p.FloatWithFallback(KeyRatio, d.Ratio),
	}
	if s.CanvasWidth <= 0 {
		s.CanvasWidth = d.CanvasWidth
	}
	if s.CanvasHeight <= 0 {
		s.CanvasHeight = d.CanvasHeight
	}
	if s.DotRadius <= 0 {
		s.DotRadius = d.DotRadius
	}
	return s
}

// SetSettings stores typed settings.
func (p *Prefs) SetSettings(s Settings) {
	p.SetInt(KeyCanvasWidth, s.CanvasWidth)
	p.SetInt(KeyCanvasHeight, s.CanvasHeight)
	p.SetFloat(KeyDotRadius, s.DotRadius)
	p.SetString(KeyDotColor, colorutil.Hex(s.Dot))
	p.SetString(KeyBackgroundColor, colorutil.Hex(s.Background))
	p.SetFloat(KeyRatio, s.Ratio)
}
