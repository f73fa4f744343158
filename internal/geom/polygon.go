package geom

import "math"

// Polygon is an ordered ring of 2D vertices. The vertex slice is owned by
// the polygon and never mutated after construction; every operation that
// produces different vertices returns a new polygon. Winding and bounds are
// computed lazily and shared between copies, which is safe precisely because
// the vertices are immutable.
type Polygon struct {
	pts   []Point
	cache *polyCache
}

// polyCache holds lazily-computed derived values. It is allocated once per
// vertex ring so that value copies of the Polygon share it.
type polyCache struct {
	cw     *bool
	bounds *Bounds
}

// NewPolygon builds a polygon from an ordered vertex list. A duplicated
// closing vertex (last == first) is dropped so the ring is stored open.
func NewPolygon(pts ...Point) Polygon {
	ring := make([]Point, len(pts))
	copy(ring, pts)
	if len(ring) > 1 && ring[0].AlmostEqual(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	return Polygon{pts: ring, cache: &polyCache{}}
}

// Len returns the number of vertices in the open ring.
func (p Polygon) Len() int { return len(p.pts) }

// Vertex returns vertex i of the open ring.
func (p Polygon) Vertex(i int) Point { return p.pts[i] }

// Points returns the vertex sequence as a fresh slice. When close is true
// the first vertex is repeated at the end so the ring reads as closed.
func (p Polygon) Points(close bool) []Point {
	out := make([]Point, 0, len(p.pts)+1)
	out = append(out, p.pts...)
	if close && len(p.pts) > 0 {
		out = append(out, p.pts[0])
	}
	return out
}

// Edges returns the edge sequence as a fresh slice. Consecutive edges share
// endpoints. When close is true the wrap-around edge (last vertex back to
// the first) is included.
func (p Polygon) Edges(close bool) []Edge {
	if len(p.pts) < 2 {
		return nil
	}
	n := len(p.pts)
	out := make([]Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		out = append(out, Edge{A: p.pts[i], B: p.pts[i+1]})
	}
	if close {
		out = append(out, Edge{A: p.pts[n-1], B: p.pts[0]})
	}
	return out
}

// signedArea is the shoelace sum over the closed ring. Positive for one
// winding, negative for the other; the sign convention matches Orient.
func (p Polygon) signedArea() float64 {
	n := len(p.pts)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p.pts[i]
		b := p.pts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the absolute area of the polygon. Degenerate rings (fewer
// than three vertices) have zero area.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// IsClockwise reports the winding of the ring, computed from the signed
// shoelace area on first use and cached thereafter. In y-down screen
// coordinates a positive signed area is a clockwise visual winding.
func (p Polygon) IsClockwise() bool {
	if p.cache.cw == nil {
		cw := p.signedArea() > 0
		p.cache.cw = &cw
	}
	return *p.cache.cw
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns the polygon's bounding box, cached after first use.
func (p Polygon) Bounds() Bounds {
	if p.cache.bounds == nil {
		b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
		for _, pt := range p.pts {
			b.MinX = math.Min(b.MinX, pt.X)
			b.MinY = math.Min(b.MinY, pt.Y)
			b.MaxX = math.Max(b.MaxX, pt.X)
			b.MaxY = math.Max(b.MaxY, pt.Y)
		}
		p.cache.bounds = &b
	}
	return *p.cache.bounds
}

// Translate returns a copy of the polygon shifted by (dx, dy). Winding is
// invariant under translation, so a cached clockwise flag carries over;
// cached bounds are shifted rather than recomputed.
func (p Polygon) Translate(dx, dy float64) Polygon {
	pts := make([]Point, len(p.pts))
	for i, pt := range p.pts {
		pts[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	out := Polygon{pts: pts, cache: &polyCache{}}
	if p.cache.cw != nil {
		cw := *p.cache.cw
		out.cache.cw = &cw
	}
	if p.cache.bounds != nil {
		b := *p.cache.bounds
		b.MinX += dx
		b.MaxX += dx
		b.MinY += dy
		b.MaxY += dy
		out.cache.bounds = &b
	}
	return out
}

// LinesCross reports whether any of the given segments properly crosses any
// edge of the polygon (including the closing edge).
func (p Polygon) LinesCross(segs []Edge) bool {
	for _, e := range p.Edges(true) {
		for _, s := range segs {
			if SegmentsCross(e.A, e.B, s.A, s.B) {
				return true
			}
		}
	}
	return false
}

// Contains reports whether pt lies inside the polygon, using ray casting.
// Points exactly on the boundary may land on either side.
func (p Polygon) Contains(pt Point) bool {
	inside := false
	n := len(p.pts)
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := p.pts[i], p.pts[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
