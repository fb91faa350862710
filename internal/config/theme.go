package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// Theme holds the grid color scheme. Values are W3C color names or
// hex strings, resolved to terminal colors by the ui layer.
type Theme struct {
	HeaderFg    string
	BodyFg      string
	SelectFg    string
	SelectBg    string
	HighlightBg string
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() *Theme {
	return &Theme{
		HeaderFg:    "yellow",
		BodyFg:      "white",
		SelectFg:    "black",
		SelectBg:    "aqua",
		HighlightBg: "darkslategray",
	}
}

// LoadTheme reads a theme from an ini file, falling back to the default
// scheme for any key the file omits. A missing file yields the defaults.
func LoadTheme(path string) (*Theme, error) {
	t := DefaultTheme()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return t, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme %q: %w", path, err)
	}

	grid := f.Section("grid")
	pick := func(key, def string) string {
		if v := grid.Key(key).String(); v != "" {
			return v
		}
		return def
	}

	t.HeaderFg = pick("headerFg", t.HeaderFg)
	t.BodyFg = pick("bodyFg", t.BodyFg)
	t.SelectFg = pick("selectFg", t.SelectFg)
	t.SelectBg = pick("selectBg", t.SelectBg)
	t.HighlightBg = pick("highlightBg", t.HighlightBg)

	return t, nil
}
