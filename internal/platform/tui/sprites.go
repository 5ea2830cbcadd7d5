package tui

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
)

// spriteFile is the YAML layout of a glyph set. Every entry is a single
// character; missing entries keep the built-in glyph.
type spriteFile struct {
	Player     string `yaml:"player"`
	PlayerDead string `yaml:"player_dead"`
	Barrier    string `yaml:"barrier"`
	CapTop     string `yaml:"cap_top"`
	CapBottom  string `yaml:"cap_bottom"`
	Hazard     string `yaml:"hazard"`
	Ground     string `yaml:"ground"`
}

// SpriteNotice is shown in the HUD when a glyph set cannot be used.
const SpriteNotice = "sprites unavailable, using built-in glyphs"

// LoadGlyphs reads a glyph set from a YAML file.
func LoadGlyphs(path string) (flappy.Glyphs, error) {
	glyphs := flappy.DefaultGlyphs()

	data, err := os.ReadFile(path)
	if err != nil {
		return glyphs, fmt.Errorf("sprites: cannot read %s: %w", path, err)
	}

	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return glyphs, fmt.Errorf("sprites: cannot parse %s: %w", path, err)
	}

	fields := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"player", f.Player, &glyphs.Player},
		{"player_dead", f.PlayerDead, &glyphs.PlayerDead},
		{"barrier", f.Barrier, &glyphs.Barrier},
		{"cap_top", f.CapTop, &glyphs.CapTop},
		{"cap_bottom", f.CapBottom, &glyphs.CapBottom},
		{"hazard", f.Hazard, &glyphs.Hazard},
		{"ground", f.Ground, &glyphs.Ground},
	}
	for _, fl := range fields {
		if fl.src == "" {
			continue
		}
		runes := []rune(fl.src)
		if len(runes) != 1 {
			return flappy.DefaultGlyphs(), fmt.Errorf("sprites: %s must be a single character, got %q", fl.name, fl.src)
		}
		*fl.dst = runes[0]
	}

	return glyphs, nil
}

// GlyphsOrDefault loads a glyph set, falling back to the built-in one.
// The returned notice is empty unless the fallback was taken for a
// requested file.
func GlyphsOrDefault(path string) (flappy.Glyphs, string, error) {
	if path == "" {
		return flappy.DefaultGlyphs(), "", nil
	}
	glyphs, err := LoadGlyphs(path)
	if err != nil {
		return flappy.DefaultGlyphs(), SpriteNotice, err
	}
	return glyphs, "", nil
}
