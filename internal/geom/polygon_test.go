package geom

import (
	"math"
	"testing"
)

func square() Polygon {
	return NewPolygon(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10})
}

func TestPolygon_Area(t *testing.T) {
	if a := square().Area(); math.Abs(a-100) > 1e-9 {
		t.Fatalf("expected area 100, got %v", a)
	}
}

func TestPolygon_AreaNonNegative(t *testing.T) {
	reversed := NewPolygon(Point{0, 10}, Point{10, 10}, Point{10, 0}, Point{0, 0})
	if a := reversed.Area(); a < 0 || math.Abs(a-100) > 1e-9 {
		t.Fatalf("expected area 100 regardless of winding, got %v", a)
	}
}

func TestPolygon_DegenerateArea(t *testing.T) {
	if a := NewPolygon(Point{1, 1}, Point{2, 2}).Area(); a != 0 {
		t.Fatalf("two-vertex polygon should have zero area, got %v", a)
	}
}

func TestPolygon_ClosingVertexDropped(t *testing.T) {
	p := NewPolygon(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 0})
	if p.Len() != 3 {
		t.Fatalf("duplicated closing vertex should be dropped, len=%d", p.Len())
	}
}

func TestPolygon_PointsRoundTrip(t *testing.T) {
	p := square()
	pts := p.Points(true)
	if len(pts) != 5 {
		t.Fatalf("closed point list should repeat the first vertex, len=%d", len(pts))
	}
	if pts[0] != pts[4] {
		t.Fatal("closed point list must end where it starts")
	}
	reclosed := NewPolygon(pts...)
	if reclosed.Len() != p.Len() {
		t.Fatalf("re-closing changed vertex count: %d != %d", reclosed.Len(), p.Len())
	}
	for i := 0; i < p.Len(); i++ {
		if reclosed.Vertex(i) != p.Vertex(i) {
			t.Fatalf("vertex %d changed in round trip", i)
		}
	}
}

func TestPolygon_EdgesShareEndpoints(t *testing.T) {
	edges := square().Edges(true)
	if len(edges) != 4 {
		t.Fatalf("expected 4 closed edges, got %d", len(edges))
	}
	for i := 0; i < len(edges); i++ {
		next := edges[(i+1)%len(edges)]
		if edges[i].B != next.A {
			t.Fatalf("edge %d does not share its endpoint with the next edge", i)
		}
	}
}

func TestPolygon_EdgesOpen(t *testing.T) {
	edges := square().Edges(false)
	if len(edges) != 3 {
		t.Fatalf("expected 3 open edges, got %d", len(edges))
	}
}

func TestPolygon_IsClockwiseOppositeWindings(t *testing.T) {
	p := square()
	r := NewPolygon(Point{0, 10}, Point{10, 10}, Point{10, 0}, Point{0, 0})
	if p.IsClockwise() == r.IsClockwise() {
		t.Fatal("opposite windings must report opposite clockwise flags")
	}
}

func TestPolygon_TranslatePreservesWinding(t *testing.T) {
	p := square()
	before := p.IsClockwise()
	q := p.Translate(123, -45)
	if q.IsClockwise() != before {
		t.Fatal("winding must be invariant under translation")
	}
	if math.Abs(q.Area()-p.Area()) > 1e-9 {
		t.Fatal("area must be invariant under translation")
	}
}

func TestPolygon_TranslateIsPure(t *testing.T) {
	p := square()
	_ = p.Translate(5, 5)
	if p.Vertex(0) != (Point{0, 0}) {
		t.Fatal("translate must not modify the receiver")
	}
}

func TestPolygon_TranslateShiftsBounds(t *testing.T) {
	p := square()
	_ = p.Bounds() // force the cache
	b := p.Translate(5, 7).Bounds()
	if b.MinX != 5 || b.MinY != 7 || b.MaxX != 15 || b.MaxY != 17 {
		t.Fatalf("unexpected translated bounds: %+v", b)
	}
}

func TestPolygon_Contains(t *testing.T) {
	p := square()
	if !p.Contains(Point{5, 5}) {
		t.Fatal("center must be inside")
	}
	if p.Contains(Point{15, 5}) {
		t.Fatal("point beyond the right edge must be outside")
	}
}

func TestPolygon_LinesCross(t *testing.T) {
	p := square()
	if !p.LinesCross([]Edge{{A: Point{5, -5}, B: Point{5, 5}}}) {
		t.Fatal("segment piercing the top edge should cross")
	}
	if p.LinesCross([]Edge{{A: Point{2, 2}, B: Point{8, 8}}}) {
		t.Fatal("segment fully inside crosses no edge")
	}
	if p.LinesCross([]Edge{{A: Point{-5, -5}, B: Point{0, 0}}}) {
		t.Fatal("segment ending on a vertex is not a proper crossing")
	}
}

func TestOrient_Signs(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	if Orient(a, b, Point{5, 5}) <= 0 {
		t.Fatal("expected positive orientation")
	}
	if Orient(a, b, Point{5, -5}) >= 0 {
		t.Fatal("expected negative orientation")
	}
	if Orient(a, b, Point{20, 0}) != 0 {
		t.Fatal("expected collinear orientation to be zero")
	}
}

func TestSegmentIntersection_Parallel(t *testing.T) {
	_, ok := SegmentIntersection(Point{0, 0}, Point{10, 0}, Point{0, 5}, Point{10, 5})
	if ok {
		t.Fatal("parallel lines have no intersection point")
	}
}

func TestSegmentIntersection_Crossing(t *testing.T) {
	p, ok := SegmentIntersection(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	if !ok {
		t.Fatal("expected an intersection point")
	}
	if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y-5) > 1e-9 {
		t.Fatalf("expected intersection at (5,5), got %+v", p)
	}
}
