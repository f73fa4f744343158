package cover

import (
	"go.uber.org/zap"

	"github.com/Garsondee/Cover-Sense/internal/geom"
)

// PercentCover is the percent-cover oracle contract: the occluded fraction
// of the target's visible extent, in [0,1], counting walls and/or other
// tokens as blockers per the flags.
type PercentCover interface {
	PercentCover(attacker, target Token, includeWalls, includeTokens bool) float64
}

// Scene holds the obstacles a cover query can see: the map's walls and the
// tokens standing on it.
type Scene struct {
	Walls  []*geom.Wall
	Tokens []Token
}

// BlockingTokens returns the tokens (other than attacker and target) whose
// footprint box the attacker→target sightline passes through. Used by the
// size-upgrade ruleset rule.
func (s *Scene) BlockingTokens(attacker, target Token) []Token {
	a := attacker.Center()
	b := target.Center()
	var out []Token
	for _, tok := range s.Tokens {
		if tok == attacker || tok == target {
			continue
		}
		if geom.SegmentIntersectsBounds(a, b, tok.Footprint().Bounds()) {
			out = append(out, tok)
		}
	}
	return out
}

// AreaOracle implements PercentCover geometrically: it projects the scene's
// blockers and the target into the attacker's view and measures how much of
// the target's silhouette the blockers overlap.
//
// Opaque walls contribute their silhouettes directly. Terrain walls only
// block where the view passes through two of them, so they go through
// CombineTerrainWalls, which also removes doubly-counted overlap between
// them. Every query builds fresh geometry; nothing is cached across calls.
type AreaOracle struct {
	scene *Scene
	log   *zap.Logger
}

// NewAreaOracle builds an oracle over a scene. A nil logger disables
// diagnostics.
func NewAreaOracle(scene *Scene, log *zap.Logger) *AreaOracle {
	if log == nil {
		log = zap.NewNop()
	}
	return &AreaOracle{scene: scene, log: log}
}

// PercentCover returns the fraction of the target's silhouette hidden from
// the attacker by the selected blocker kinds.
func (o *AreaOracle) PercentCover(attacker, target Token, includeWalls, includeTokens bool) float64 {
	eye := center3(attacker)
	aim := center3(target)
	m := geom.LookAt(eye, aim)

	targetSil := prismSilhouette(target, m)
	targetArea := targetSil.Area()
	if targetArea <= 0 {
		return 0
	}

	// Blockers beyond the target cannot occlude it. Compare view depths at
	// the ground footprint; the target plane sits at the focal distance.
	targetDepth := m.Transform(aim).Z

	// Cull box: sight rays from the attacker to the target stay inside the
	// hull of the two footprints, so a wall outside its bounding box is
	// irrelevant.
	cull := unionBounds(attacker.Footprint().Bounds(), target.Footprint().Bounds())

	var blockers geom.PolygonSet
	if includeWalls {
		var terrain []*geom.WallGeometry
		for _, w := range o.scene.Walls {
			g := geom.NewWallGeometry(w)
			if !wallInFront(g, m, targetDepth) {
				continue
			}
			a, b := g.Segment()
			if !boundsOverlap(segmentBounds(a, b), cull) {
				continue
			}
			if w.Terrain {
				terrain = append(terrain, g)
				continue
			}
			blockers = geom.Union(blockers, geom.Set(g.Silhouette(m)))
		}
		blockers = geom.Union(blockers, geom.CombineTerrainWalls(terrain, eye, m, o.log))
	}
	if includeTokens {
		for _, tok := range o.scene.Tokens {
			if tok == attacker || tok == target {
				continue
			}
			c := tok.Center()
			d := m.Transform(geom.Point3{X: c.X, Y: c.Y, Z: tok.Elevation()}).Z
			if d <= 0 || d >= targetDepth {
				continue
			}
			blockers = geom.Union(blockers, geom.Set(prismSilhouette(tok, m)))
		}
	}

	blocked := geom.IntersectSets(blockers, geom.Set(targetSil))
	frac := blocked.Area() / targetArea
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// prismSilhouette projects a token's footprint prism (footprint at its
// bottom and top elevations) and takes the convex hull of the projected
// corners.
func prismSilhouette(t Token, m *geom.Matrix) geom.Polygon {
	fp := t.Footprint()
	bottom := t.Elevation()
	top := bottom + t.Height()
	pts := make([]geom.Point, 0, fp.Len()*2)
	for _, v := range fp.Points(false) {
		pts = append(pts, m.Project(geom.Point3{X: v.X, Y: v.Y, Z: bottom}))
		pts = append(pts, m.Project(geom.Point3{X: v.X, Y: v.Y, Z: top}))
	}
	return geom.ConvexHull(pts)
}

// wallInFront reports whether any part of the wall's ground segment sits
// between the eye plane and the target depth.
func wallInFront(g *geom.WallGeometry, m *geom.Matrix, targetDepth float64) bool {
	a, b := g.Segment()
	src := g.Source()
	midZ := (src.TopZ + src.BottomZ) / 2
	if src.TopZ >= geom.ElevationSentinel || src.BottomZ <= -geom.ElevationSentinel {
		midZ = 0
	}
	da := m.Transform(geom.Point3{X: a.X, Y: a.Y, Z: midZ}).Z
	db := m.Transform(geom.Point3{X: b.X, Y: b.Y, Z: midZ}).Z
	if da <= 0 && db <= 0 {
		return false // entirely behind the eye
	}
	if da >= targetDepth && db >= targetDepth {
		return false // entirely beyond the target
	}
	return true
}

func segmentBounds(a, b geom.Point) geom.Bounds {
	bb := geom.Bounds{MinX: a.X, MinY: a.Y, MaxX: a.X, MaxY: a.Y}
	if b.X < bb.MinX {
		bb.MinX = b.X
	}
	if b.X > bb.MaxX {
		bb.MaxX = b.X
	}
	if b.Y < bb.MinY {
		bb.MinY = b.Y
	}
	if b.Y > bb.MaxY {
		bb.MaxY = b.Y
	}
	return bb
}

func unionBounds(a, b geom.Bounds) geom.Bounds {
	out := a
	if b.MinX < out.MinX {
		out.MinX = b.MinX
	}
	if b.MinY < out.MinY {
		out.MinY = b.MinY
	}
	if b.MaxX > out.MaxX {
		out.MaxX = b.MaxX
	}
	if b.MaxY > out.MaxY {
		out.MaxY = b.MaxY
	}
	return out
}

func boundsOverlap(a, b geom.Bounds) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX && a.MinY <= b.MaxY && a.MaxY >= b.MinY
}
