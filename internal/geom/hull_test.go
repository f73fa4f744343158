package geom

import "testing"

func TestConvexHull_ExcludesInteriorAndCollinear(t *testing.T) {
	pts := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{5, 5}, // interior
		{5, 0}, // collinear on the bottom edge
	}
	hull := ConvexHull(pts)
	if hull.Len() != 4 {
		t.Fatalf("expected 4 hull vertices, got %d", hull.Len())
	}
	corners := map[Point]bool{{0, 0}: true, {10, 0}: true, {10, 10}: true, {0, 10}: true}
	for i := 0; i < hull.Len(); i++ {
		if !corners[hull.Vertex(i)] {
			t.Fatalf("unexpected hull vertex %+v", hull.Vertex(i))
		}
	}
}

func TestConvexHull_VerticesAreSubsetOfInput(t *testing.T) {
	pts := []Point{{3, 1}, {7, 2}, {1, 8}, {9, 9}, {4, 4}, {6, 7}, {2, 3}}
	in := map[Point]bool{}
	for _, p := range pts {
		in[p] = true
	}
	hull := ConvexHull(pts)
	for i := 0; i < hull.Len(); i++ {
		if !in[hull.Vertex(i)] {
			t.Fatalf("hull vertex %+v is not an input point", hull.Vertex(i))
		}
	}
}

func TestConvexHull_ContainsAllInput(t *testing.T) {
	pts := []Point{{0, 0}, {12, 1}, {11, 11}, {1, 10}, {6, 5}, {3, 7}}
	hull := ConvexHull(pts)
	for _, p := range pts {
		// Interior test with a tiny shrink toward the centroid so points
		// lying exactly on the hull boundary do not flake on the ray cast.
		cx, cy := 0.0, 0.0
		for i := 0; i < hull.Len(); i++ {
			cx += hull.Vertex(i).X
			cy += hull.Vertex(i).Y
		}
		cx /= float64(hull.Len())
		cy /= float64(hull.Len())
		nudged := Point{p.X + (cx-p.X)*1e-6, p.Y + (cy-p.Y)*1e-6}
		if !hull.Contains(nudged) {
			t.Fatalf("hull must contain input point %+v", p)
		}
	}
}

func TestConvexHull_SinglePoint(t *testing.T) {
	hull := ConvexHull([]Point{{3, 4}})
	if hull.Len() != 1 || hull.Vertex(0) != (Point{3, 4}) {
		t.Fatal("single-point input should return that point")
	}
}

func TestConvexHull_TwoPoints(t *testing.T) {
	hull := ConvexHull([]Point{{0, 0}, {5, 5}})
	if hull.Len() != 2 {
		t.Fatalf("expected a 2-vertex hull, got %d", hull.Len())
	}
}

func TestConvexHull_Empty(t *testing.T) {
	if hull := ConvexHull(nil); hull.Len() != 0 {
		t.Fatal("empty input should yield an empty polygon")
	}
}
