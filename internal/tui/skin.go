package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Skin is the on-disk form of a palette, read from
// <configDir>/skins/<name>.yml. Slots left out keep their default color.
type Skin struct {
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`
}

var defaultPalette = map[string]string{
	"accent":  "39",
	"muted":   "244",
	"surface": "236",
	"text":    "231",
	"error":   "196",
	"success": "42",
}

// InitializeSkin resets the palette to the defaults and then applies the
// named skin. "default" and "" need no file.
func InitializeSkin(name, configDir string) error {
	applyPalette(defaultPalette)
	if name == "" || name == "default" {
		return nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading skin %s: %w", path, err)
	}

	var skin Skin
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return fmt.Errorf("parsing skin %s: %w", path, err)
	}
	for slot := range skin.Colors {
		if _, ok := defaultPalette[slot]; !ok {
			return fmt.Errorf("skin %s: unknown color slot %q", path, slot)
		}
	}

	applyPalette(skin.Colors)
	return nil
}

func applyPalette(p map[string]string) {
	for slot, c := range p {
		color := lipgloss.Color(c)
		switch slot {
		case "accent":
			ColorAccent = color
		case "muted":
			ColorMuted = color
		case "surface":
			ColorSurface = color
		case "text":
			ColorText = color
		case "error":
			ColorError = color
		case "success":
			ColorSuccess = color
		}
	}
}
