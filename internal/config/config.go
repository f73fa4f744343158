// Package config loads battle scenarios for the headless report command:
// the walls and tokens on the map, the ruleset id, and an optional cover
// catalog overriding the ruleset defaults.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Cover-Sense/internal/cover"
	"github.com/Garsondee/Cover-Sense/internal/geom"
)

// Scenario is one battle-map setup.
type Scenario struct {
	Name    string `yaml:"name"`
	Ruleset string `yaml:"ruleset"`

	Walls  []WallSpec  `yaml:"walls"`
	Tokens []TokenSpec `yaml:"tokens"`

	// CoverTypes, when present, replaces the ruleset's default catalog.
	CoverTypes []cover.CoverType `yaml:"cover_types,omitempty"`
}

// WallSpec describes one wall segment. Top and Bottom are elevations; nil
// means unbounded in that direction.
type WallSpec struct {
	AX      float64  `yaml:"ax"`
	AY      float64  `yaml:"ay"`
	BX      float64  `yaml:"bx"`
	BY      float64  `yaml:"by"`
	Top     *float64 `yaml:"top,omitempty"`
	Bottom  *float64 `yaml:"bottom,omitempty"`
	Terrain bool     `yaml:"terrain"`
}

// TokenSpec describes one token. Zero Width/Depth/Height fall back to a
// one-square footprint.
type TokenSpec struct {
	Name      string  `yaml:"name"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width,omitempty"`
	Depth     float64 `yaml:"depth,omitempty"`
	Height    float64 `yaml:"height,omitempty"`
	Elevation float64 `yaml:"elevation,omitempty"`
	Size      string  `yaml:"size,omitempty"`

	// IgnoresCover maps action types to the cover-threshold level this
	// token ignores when attacking.
	IgnoresCover map[string]float64 `yaml:"ignores_cover,omitempty"`
}

// squareSize is the default token footprint extent in map pixels.
const squareSize = 16

// Default returns a small demonstration scenario: two shooters, a target
// behind a chest-high wall, and a pair of crossing terrain walls.
func Default() *Scenario {
	half := 8.0
	return &Scenario{
		Name:    "demo-skirmish",
		Ruleset: "generic",
		Walls: []WallSpec{
			{AX: 100, AY: 40, BX: 100, BY: 120, Top: &half, Bottom: new(float64)},
			{AX: 140, AY: 150, BX: 180, BY: 190, Terrain: true},
			{AX: 140, AY: 190, BX: 180, BY: 150, Terrain: true},
		},
		Tokens: []TokenSpec{
			{Name: "archer", X: 20, Y: 80, Size: "medium"},
			{Name: "scout", X: 20, Y: 170, Size: "medium"},
			{Name: "goblin", X: 200, Y: 80, Size: "small"},
			{Name: "ogre", X: 200, Y: 170, Size: "large", Width: 32, Depth: 32, Height: 32},
		},
	}
}

// Load reads a scenario file, filling defaults and validating. An empty
// path returns the built-in demo scenario.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.Ruleset == "" {
		s.Ruleset = "generic"
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate rejects scenarios the report cannot run.
func (s *Scenario) Validate() error {
	if len(s.Tokens) < 2 {
		return fmt.Errorf("need at least two tokens, have %d", len(s.Tokens))
	}
	seen := map[string]bool{}
	for i, tok := range s.Tokens {
		if tok.Name == "" {
			return fmt.Errorf("token %d has no name", i)
		}
		if seen[tok.Name] {
			return fmt.Errorf("duplicate token name %q", tok.Name)
		}
		seen[tok.Name] = true
	}
	for i, w := range s.Walls {
		if w.AX == w.BX && w.AY == w.BY {
			return fmt.Errorf("wall %d is degenerate (zero-length segment)", i)
		}
	}
	return nil
}

// Scene builds the geometry scene for this scenario.
func (s *Scenario) Scene() *cover.Scene {
	scene := &cover.Scene{}
	for _, w := range s.Walls {
		top := geom.ElevationSentinel
		if w.Top != nil {
			top = *w.Top
		}
		bottom := -geom.ElevationSentinel
		if w.Bottom != nil {
			bottom = *w.Bottom
		}
		scene.Walls = append(scene.Walls, geom.NewWall(
			geom.Point{X: w.AX, Y: w.AY},
			geom.Point{X: w.BX, Y: w.BY},
			top, bottom, w.Terrain))
	}
	for _, spec := range s.Tokens {
		width := spec.Width
		if width == 0 {
			width = squareSize
		}
		depth := spec.Depth
		if depth == 0 {
			depth = width
		}
		height := spec.Height
		if height == 0 {
			height = width
		}
		tok := cover.NewGridToken(spec.Name, geom.Point{X: spec.X, Y: spec.Y}, width, depth, spec.Size)
		tok.SetVertical(spec.Elevation, height)
		for action, level := range spec.IgnoresCover {
			tok.SetIgnoresCover(action, level)
		}
		scene.Tokens = append(scene.Tokens, tok)
	}
	return scene
}

// Catalog returns this scenario's cover catalog: the explicit type list
// when given, otherwise the ruleset's defaults.
func (s *Scenario) Catalog(log *zap.Logger) *cover.Catalog {
	if len(s.CoverTypes) == 0 {
		return cover.DefaultCatalog(s.Ruleset, log)
	}
	c := cover.NewCatalog(log)
	for _, ct := range s.CoverTypes {
		c.Add(ct)
	}
	return c
}
