package geom

import "testing"

func TestViewablePoints_FacingEdge(t *testing.T) {
	// Origin sits north of the square (negative y): only the two near
	// corners have unobstructed rays.
	p := square()
	keys := ViewablePointIndices(p, Point{5, -10}, ViewableOptions{})
	if len(keys) != 2 || keys[0] != 0 || keys[1] != 1 {
		t.Fatalf("expected key points [0 1], got %v", keys)
	}
}

func TestViewablePoints_WrappedRunRotatedToFront(t *testing.T) {
	// Same square, but ordered so the visible corners sit at the two ends
	// of the vertex array. The wrapped run must come back contiguous.
	p := NewPolygon(Point{10, 0}, Point{10, 10}, Point{0, 10}, Point{0, 0})
	keys := ViewablePointIndices(p, Point{5, -10}, ViewableOptions{})
	if len(keys) != 2 || keys[0] != 3 || keys[1] != 0 {
		t.Fatalf("expected wrapped key points [3 0], got %v", keys)
	}
}

func TestViewablePoints_ResolvesToVertices(t *testing.T) {
	p := square()
	pts := ViewablePoints(p, Point{5, -10}, ViewableOptions{})
	if len(pts) != 2 || pts[0] != (Point{0, 0}) || pts[1] != (Point{10, 0}) {
		t.Fatalf("expected the two near corners, got %v", pts)
	}
}

func TestViewablePoints_CornerOriginSeesThree(t *testing.T) {
	// From outside a corner, three vertices are visible; only the far
	// corner is hidden behind the body of the square.
	p := square()
	keys := ViewablePointIndices(p, Point{-10, -5}, ViewableOptions{})
	if len(keys) != 3 {
		t.Fatalf("expected 3 key points from the diagonal, got %v", keys)
	}
	for _, k := range keys {
		if k == 2 {
			t.Fatal("the far corner (10,10) must be hidden")
		}
	}
}

func TestViewablePoints_OutermostOnly(t *testing.T) {
	p := square()
	keys := ViewablePointIndices(p, Point{-10, -5}, ViewableOptions{OutermostOnly: true})
	if len(keys) != 2 {
		t.Fatalf("outermost-only should keep exactly 2 key points, got %v", keys)
	}
	// The extremes of the visible run [3 0 1] are 3 and 1.
	if keys[0] != 3 || keys[1] != 1 {
		t.Fatalf("expected extreme key points [3 1], got %v", keys)
	}
}

func TestViewablePoints_EmptyPolygon(t *testing.T) {
	if keys := ViewablePointIndices(NewPolygon(), Point{0, 0}, ViewableOptions{}); keys != nil {
		t.Fatal("empty polygon has no key points")
	}
}
