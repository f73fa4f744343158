package geom

import "sort"

// ConvexHull returns the convex hull of the given points as a polygon,
// using Andrew's monotone chain. Collinear points on a hull edge are
// excluded, so the result is strictly convex. A single input point is
// returned as a one-vertex polygon; an empty input yields an empty polygon.
func ConvexHull(points []Point) Polygon {
	n := len(points)
	if n == 0 {
		return NewPolygon()
	}
	if n == 1 {
		return NewPolygon(points[0])
	}

	sorted := make([]Point, n)
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Lower hull, then upper hull. The <= 0 test pops collinear points.
	hull := make([]Point, 0, 2*n)
	for _, p := range sorted {
		for len(hull) >= 2 && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && Orient(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Last point repeats the first; NewPolygon drops the duplicate.
	return NewPolygon(hull...)
}
