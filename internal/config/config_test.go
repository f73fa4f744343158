package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDemo(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "demo-skirmish", s.Name)
	require.NoError(t, s.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeScenario(t, `
name: bridge
ruleset: sfrpg
walls:
  - {ax: 0, ay: 10, bx: 50, by: 10, top: 5, bottom: 0, terrain: true}
tokens:
  - {name: alpha, x: 0, y: 0, size: medium}
  - {name: beta, x: 100, y: 0, size: large, width: 32}
`)
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "bridge", s.Name)
	require.Equal(t, "sfrpg", s.Ruleset)
	require.Len(t, s.Walls, 1)
	require.True(t, s.Walls[0].Terrain)
	require.Len(t, s.Tokens, 2)
}

func TestLoad_MissingRulesetDefaultsToGeneric(t *testing.T) {
	path := writeScenario(t, `
tokens:
  - {name: a, x: 0, y: 0}
  - {name: b, x: 10, y: 0}
`)
	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "generic", s.Ruleset)
}

func TestLoad_RejectsDuplicateTokenNames(t *testing.T) {
	path := writeScenario(t, `
tokens:
  - {name: twin, x: 0, y: 0}
  - {name: twin, x: 10, y: 0}
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "duplicate token name")
}

func TestLoad_RejectsDegenerateWall(t *testing.T) {
	path := writeScenario(t, `
walls:
  - {ax: 5, ay: 5, bx: 5, by: 5}
tokens:
  - {name: a, x: 0, y: 0}
  - {name: b, x: 10, y: 0}
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "degenerate")
}

func TestScenario_SceneConversion(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	scene := s.Scene()
	require.Len(t, scene.Walls, len(s.Walls))
	require.Len(t, scene.Tokens, len(s.Tokens))
	require.Equal(t, "archer", scene.Tokens[0].Name())

	// The demo's first wall is chest-high; the terrain walls are unbounded
	// and must carry the sentinel.
	require.Equal(t, 8.0, scene.Walls[0].TopZ)
	require.Greater(t, scene.Walls[1].TopZ, 1e5)
}

func TestScenario_CatalogDefaultsByRuleset(t *testing.T) {
	s := Default()
	s.Ruleset = "sfrpg"
	c := s.Catalog(nil)
	_, ok := c.Get("lesser")
	require.True(t, ok)
}

func TestScenario_CatalogOverride(t *testing.T) {
	path := writeScenario(t, `
tokens:
  - {name: a, x: 0, y: 0}
  - {name: b, x: 10, y: 0}
cover_types:
  - {id: custom, name: Custom, percent_threshold: 0.33, priority: 1, icon: x}
`)
	s, err := Load(path)
	require.NoError(t, err)
	c := s.Catalog(nil)
	require.Equal(t, 1, c.Len())
	ct, ok := c.Get("custom")
	require.True(t, ok)
	require.Equal(t, 0.33, ct.PercentThreshold)
}
