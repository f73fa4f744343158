package geom

import "math"

// ElevationSentinel stands in for an unbounded wall top or bottom. Large
// enough to tower over any map, small enough that projection arithmetic
// stays well-defined.
const ElevationSentinel = 1e6

// Wall is a vertical planar obstacle: a ground segment A–B extruded between
// two elevations. Terrain walls allow partial visibility, so a viewer is
// only blocked where two of them overlap; opaque walls block outright.
type Wall struct {
	A, B    Point
	TopZ    float64
	BottomZ float64
	Terrain bool
}

// NewWall builds a wall, clamping infinite or out-of-range elevations to
// the sentinel so later arithmetic never sees an infinity.
func NewWall(a, b Point, topZ, bottomZ float64, terrain bool) *Wall {
	return &Wall{
		A:       a,
		B:       b,
		TopZ:    clampElevation(topZ),
		BottomZ: clampElevation(bottomZ),
		Terrain: terrain,
	}
}

func clampElevation(z float64) float64 {
	if math.IsNaN(z) {
		return 0
	}
	if z > ElevationSentinel {
		return ElevationSentinel
	}
	if z < -ElevationSentinel {
		return -ElevationSentinel
	}
	return z
}

// WallGeometry wraps one wall and owns its projected representation. The
// ground segment may be a sub-span of the source wall's A–B when the
// combiner has split the wall at a crossing; the source wall itself is
// never modified.
type WallGeometry struct {
	src  *Wall
	a, b Point
}

// NewWallGeometry wraps a wall with its full ground segment.
func NewWallGeometry(w *Wall) *WallGeometry {
	return &WallGeometry{src: w, a: w.A, b: w.B}
}

// Source returns the wall this geometry was built from.
func (g *WallGeometry) Source() *Wall { return g.src }

// Segment returns the ground endpoints of this geometry's span.
func (g *WallGeometry) Segment() (Point, Point) { return g.a, g.b }

// Corners returns the four 3D corner points of the wall quad: top A, top B,
// bottom B, bottom A. The order traces the quad's perimeter so the
// projected silhouette is a simple polygon.
func (g *WallGeometry) Corners() [4]Point3 {
	return [4]Point3{
		{X: g.a.X, Y: g.a.Y, Z: g.src.TopZ},
		{X: g.b.X, Y: g.b.Y, Z: g.src.TopZ},
		{X: g.b.X, Y: g.b.Y, Z: g.src.BottomZ},
		{X: g.a.X, Y: g.a.Y, Z: g.src.BottomZ},
	}
}

// Silhouette projects the wall quad through the viewpoint transform into a
// 2D polygon. Recomputed per call; nothing is cached across viewpoints.
func (g *WallGeometry) Silhouette(m *Matrix) Polygon {
	corners := g.Corners()
	pts := make([]Point, 0, 4)
	for _, c := range corners {
		pts = append(pts, m.Project(c))
	}
	return NewPolygon(pts...)
}

// SplitAt derives two geometries sharing this geometry's source wall but
// cut at a point on the ground segment: one spanning A–pt, one pt–B.
func (g *WallGeometry) SplitAt(pt Point) (*WallGeometry, *WallGeometry) {
	return &WallGeometry{src: g.src, a: g.a, b: pt},
		&WallGeometry{src: g.src, a: pt, b: g.b}
}

// minDepth keeps the perspective divide finite for points at or behind the
// eye plane.
const minDepth = 1e-6

// Matrix is a viewpoint transform: a rigid world-to-view change of basis
// with the eye at the origin and the view axis pointing at the target,
// followed by a perspective divide in Project. Stored as the top three rows
// of the homogeneous 4x4 (the fourth row is always 0 0 0 1).
type Matrix struct {
	m     [3][4]float64
	focal float64
}

// LookAt builds the viewpoint transform for an eye position looking at a
// target. The projection plane is placed at the target's distance, so
// geometry near the target keeps its world scale.
func LookAt(eye, target Point3) *Matrix {
	fx, fy, fz := target.X-eye.X, target.Y-eye.Y, target.Z-eye.Z
	fl := math.Sqrt(fx*fx + fy*fy + fz*fz)
	if fl < orientEps {
		fl = 1
		fx = 1
	}
	fx, fy, fz = fx/fl, fy/fl, fz/fl

	// World up is +Z; fall back to +Y when looking straight up or down.
	ux, uy, uz := 0.0, 0.0, 1.0
	if math.Abs(fz) > 0.9999 {
		ux, uy, uz = 0, 1, 0
	}

	// right = forward x up, then re-derive up so the basis is orthonormal.
	rx := fy*uz - fz*uy
	ry := fz*ux - fx*uz
	rz := fx*uy - fy*ux
	rl := math.Sqrt(rx*rx + ry*ry + rz*rz)
	rx, ry, rz = rx/rl, ry/rl, rz/rl

	ux = ry*fz - rz*fy
	uy = rz*fx - rx*fz
	uz = rx*fy - ry*fx

	return &Matrix{
		m: [3][4]float64{
			{rx, ry, rz, -(rx*eye.X + ry*eye.Y + rz*eye.Z)},
			{ux, uy, uz, -(ux*eye.X + uy*eye.Y + uz*eye.Z)},
			{fx, fy, fz, -(fx*eye.X + fy*eye.Y + fz*eye.Z)},
		},
		focal: fl,
	}
}

// Transform applies the change of basis without the perspective divide,
// returning view-space coordinates (x right, y up, z depth toward target).
func (m *Matrix) Transform(p Point3) Point3 {
	return Point3{
		X: m.m[0][0]*p.X + m.m[0][1]*p.Y + m.m[0][2]*p.Z + m.m[0][3],
		Y: m.m[1][0]*p.X + m.m[1][1]*p.Y + m.m[1][2]*p.Z + m.m[1][3],
		Z: m.m[2][0]*p.X + m.m[2][1]*p.Y + m.m[2][2]*p.Z + m.m[2][3],
	}
}

// Project transforms a world point into view space and perspective-divides
// onto the projection plane. Depth is clamped to a small positive value so
// points at the eye plane do not blow up.
func (m *Matrix) Project(p Point3) Point {
	v := m.Transform(p)
	z := v.Z
	if z < minDepth {
		z = minDepth
	}
	s := m.focal / z
	return Point{X: v.X * s, Y: v.Y * s}
}
