package geom

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
)

// PolygonSet is a collection of polygon paths produced by boolean clipping.
// Paths with opposite winding represent holes; Area accounts for them.
type PolygonSet []Polygon

// Empty reports whether the set contains no non-degenerate path.
func (s PolygonSet) Empty() bool { return len(s) == 0 }

// Area returns the total enclosed area of the set. Hole paths carry the
// opposite shoelace sign, so summing signed areas before taking the
// absolute value subtracts them.
func (s PolygonSet) Area() float64 {
	sum := 0.0
	for _, p := range s {
		sum += p.signedArea()
	}
	return math.Abs(sum)
}

// toClip converts the set to a polyclip polygon.
func (s PolygonSet) toClip() polyclip.Polygon {
	out := make(polyclip.Polygon, 0, len(s))
	for _, p := range s {
		c := make(polyclip.Contour, 0, p.Len())
		for _, pt := range p.Points(false) {
			c = append(c, polyclip.Point{X: pt.X, Y: pt.Y})
		}
		out = append(out, c)
	}
	return out
}

// fromClip converts a polyclip result back, discarding degenerate paths.
func fromClip(poly polyclip.Polygon) PolygonSet {
	out := make(PolygonSet, 0, len(poly))
	for _, c := range poly {
		pts := make([]Point, 0, len(c))
		for _, pt := range c {
			pts = append(pts, Point{X: pt.X, Y: pt.Y})
		}
		p := NewPolygon(pts...)
		if p.Area() < orientEps {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Set wraps a single polygon as a one-path set. Degenerate polygons yield
// an empty set.
func Set(p Polygon) PolygonSet {
	if p.Area() < orientEps {
		return nil
	}
	return PolygonSet{p}
}

// Intersect returns the region common to both polygons, or an empty set
// when they do not overlap.
func Intersect(a, b Polygon) PolygonSet {
	return fromClip(Set(a).toClip().Construct(polyclip.INTERSECTION, Set(b).toClip()))
}

// Union merges two polygon sets into one, removing doubly-counted overlap.
func Union(a, b PolygonSet) PolygonSet {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return fromClip(a.toClip().Construct(polyclip.UNION, b.toClip()))
}

// IntersectSets returns the region common to two polygon sets.
func IntersectSets(a, b PolygonSet) PolygonSet {
	if a.Empty() || b.Empty() {
		return nil
	}
	return fromClip(a.toClip().Construct(polyclip.INTERSECTION, b.toClip()))
}
