package cover

import "github.com/Garsondee/Cover-Sense/internal/geom"

// Token is the narrow view of a game token the cover engine needs: where
// it stands, how big it is, and its effect-icon list.
type Token interface {
	Name() string
	// Center is the ground-plane center of the token's footprint.
	Center() geom.Point
	// Elevation is the bottom of the token's vertical extent; Height is
	// how far it reaches above that.
	Elevation() float64
	Height() float64
	// Footprint is the token's ground-plane outline.
	Footprint() geom.Polygon
	// Size is the creature size label (see SizeRank).
	Size() string

	EffectIcons() []string
	AddEffectIcon(icon string)
	RemoveEffectIcon(icon string) bool
}

// CoverIgnorer is implemented by attackers whose action types can ignore
// some cover: IgnoresCover returns the threshold level at or below which
// cover categories do not apply for the given action type.
type CoverIgnorer interface {
	IgnoresCover(actionType string) float64
}

// GridToken is a rectangular-footprint token on the battle grid. It
// satisfies Token and CoverIgnorer and is what the report CLI and the
// tests place on the map.
type GridToken struct {
	name         string
	center       geom.Point
	width, depth float64
	elevation    float64
	height       float64
	size         string
	icons        []string
	ignoresCover map[string]float64
}

// NewGridToken places a token of the given footprint extent and size label
// at center, standing on the ground with a height matching one grid square.
func NewGridToken(name string, center geom.Point, width, depth float64, size string) *GridToken {
	return &GridToken{
		name:   name,
		center: center,
		width:  width,
		depth:  depth,
		height: width, // roughly cubical unless SetVertical says otherwise
		size:   size,
	}
}

// SetVertical overrides the token's elevation and height.
func (t *GridToken) SetVertical(elevation, height float64) {
	t.elevation = elevation
	t.height = height
}

// SetIgnoresCover records an action-type exemption level for this token as
// an attacker.
func (t *GridToken) SetIgnoresCover(actionType string, level float64) {
	if t.ignoresCover == nil {
		t.ignoresCover = make(map[string]float64)
	}
	t.ignoresCover[actionType] = level
}

func (t *GridToken) Name() string       { return t.name }
func (t *GridToken) Center() geom.Point { return t.center }
func (t *GridToken) Elevation() float64 { return t.elevation }
func (t *GridToken) Height() float64    { return t.height }
func (t *GridToken) Size() string       { return t.size }

// Footprint returns the axis-aligned rectangle of the token's base.
func (t *GridToken) Footprint() geom.Polygon {
	hw, hd := t.width/2, t.depth/2
	return geom.NewPolygon(
		geom.Point{X: t.center.X - hw, Y: t.center.Y - hd},
		geom.Point{X: t.center.X + hw, Y: t.center.Y - hd},
		geom.Point{X: t.center.X + hw, Y: t.center.Y + hd},
		geom.Point{X: t.center.X - hw, Y: t.center.Y + hd},
	)
}

// EffectIcons returns a copy of the token's current effect icons.
func (t *GridToken) EffectIcons() []string {
	out := make([]string, len(t.icons))
	copy(out, t.icons)
	return out
}

// AddEffectIcon appends an icon unless it is already present.
func (t *GridToken) AddEffectIcon(icon string) {
	for _, ic := range t.icons {
		if ic == icon {
			return
		}
	}
	t.icons = append(t.icons, icon)
}

// RemoveEffectIcon removes an icon, reporting whether it was present.
func (t *GridToken) RemoveEffectIcon(icon string) bool {
	for i, ic := range t.icons {
		if ic == icon {
			t.icons = append(t.icons[:i], t.icons[i+1:]...)
			return true
		}
	}
	return false
}

// IgnoresCover returns the exemption level for an action type, zero when
// none is set.
func (t *GridToken) IgnoresCover(actionType string) float64 {
	return t.ignoresCover[actionType]
}

// center3 is the 3D midpoint of the token's vertical extent, used as the
// viewpoint for attacks it makes and the aim point for attacks against it.
func center3(t Token) geom.Point3 {
	c := t.Center()
	return geom.Point3{X: c.X, Y: c.Y, Z: t.Elevation() + t.Height()/2}
}
