package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Legend tells gridinspect how to read the runes of a puzzle grid.
type Legend struct {
	// Walls lists runes that block movement.
	Walls string `yaml:"walls"`
	// Start is the rune marking the start cell for reach.
	Start string `yaml:"start"`
	// Background lists runes that never form regions.
	Background string `yaml:"background"`
}

// DefaultLegend matches the common '#' wall, 'S' start, '.' floor layout.
func DefaultLegend() Legend {
	return Legend{Walls: "#", Start: "S", Background: "."}
}

// LoadLegend reads a YAML legend from path. Missing keys keep their defaults.
func LoadLegend(path string) (Legend, error) {
	lg := DefaultLegend()
	if path == "" {
		return lg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return lg, fmt.Errorf("read legend: %w", err)
	}
	if err := yaml.Unmarshal(raw, &lg); err != nil {
		return lg, fmt.Errorf("parse legend %s: %w", path, err)
	}
	if n := len([]rune(lg.Start)); n != 1 {
		return lg, fmt.Errorf("legend %s: start must be a single rune, got %q", path, lg.Start)
	}
	return lg, nil
}

// IsWall reports whether r blocks movement.
func (lg Legend) IsWall(r rune) bool {
	return strings.ContainsRune(lg.Walls, r)
}

// IsRegion reports whether r takes part in region detection.
func (lg Legend) IsRegion(r rune) bool {
	return !lg.IsWall(r) && !strings.ContainsRune(lg.Background, r)
}

// StartRune returns the start marker.
func (lg Legend) StartRune() rune {
	return []rune(lg.Start)[0]
}
