// Package geom provides the 2D/3D geometry used by cover classification:
// polygon utilities, perspective projection of wall quads into silhouettes,
// and the combiner that merges overlapping terrain-wall silhouettes.
//
// Coordinate convention: x increases to the right, y increases down the map
// (screen convention), z is elevation above the ground plane.
package geom

import "math"

// orientEps is the magnitude below which a cross product is treated as zero
// (collinear points). Map coordinates are in pixels, so this is far below
// any meaningful area.
const orientEps = 1e-9

// Point is a 2D map position in pixels.
type Point struct {
	X, Y float64
}

// Point3 is a 3D position: map position plus elevation.
type Point3 struct {
	X, Y, Z float64
}

// XY drops the elevation component.
func (p Point3) XY() Point { return Point{X: p.X, Y: p.Y} }

// Add returns a + b.
func (a Point) Add(b Point) Point { return Point{a.X + b.X, a.Y + b.Y} }

// Sub returns a - b.
func (a Point) Sub(b Point) Point { return Point{a.X - b.X, a.Y - b.Y} }

// Scale returns a scaled by s.
func (a Point) Scale(s float64) Point { return Point{a.X * s, a.Y * s} }

// Dist returns the Euclidean distance between a and b.
func (a Point) Dist(b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AlmostEqual reports whether a and b coincide within orientEps.
func (a Point) AlmostEqual(b Point) bool {
	return math.Abs(a.X-b.X) < orientEps && math.Abs(a.Y-b.Y) < orientEps
}

// Orient returns the orientation of the ordered triple (a, b, c):
// positive when c lies counterclockwise of the ray a→b (above it, in y-down
// screen coordinates that means visually below), negative when clockwise,
// and zero when the three points are collinear. This single sign convention
// is shared by Area, IsClockwise, ConvexHull and the wall combiner.
func Orient(a, b, c Point) float64 {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if math.Abs(v) < orientEps {
		return 0
	}
	return v
}

// sign collapses an orientation value to -1, 0 or +1.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Edge is a directed line segment between two points.
type Edge struct {
	A, B Point
}

// SegmentsCross reports whether segments a1→a2 and b1→b2 properly cross:
// they intersect at exactly one interior point of both. Shared endpoints and
// grazing contact do not count.
func SegmentsCross(a1, a2, b1, b2 Point) bool {
	o1 := sign(Orient(a1, a2, b1))
	o2 := sign(Orient(a1, a2, b2))
	o3 := sign(Orient(b1, b2, a1))
	o4 := sign(Orient(b1, b2, a2))
	return o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 && o1 != o2 && o3 != o4
}

// SegmentIntersection returns the intersection point of the infinite lines
// through a1→a2 and b1→b2. The bool is false when the lines are parallel or
// degenerate, in which case no unambiguous point exists.
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	d1 := a2.Sub(a1)
	d2 := b2.Sub(b1)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < orientEps {
		return Point{}, false
	}
	t := ((b1.X-a1.X)*d2.Y - (b1.Y-a1.Y)*d2.X) / denom
	return Point{X: a1.X + d1.X*t, Y: a1.Y + d1.Y*t}, true
}

// mid returns the midpoint of a and b.
func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
