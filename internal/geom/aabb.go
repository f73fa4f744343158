package geom

import "math"

// SegmentBoundsHitT returns the first segment parameter t in [0,1] where the
// segment a→b enters the bounding box. The bool is false when no hit exists.
// Uses the slab method on each axis.
func SegmentBoundsHitT(a, b Point, bb Bounds) (float64, bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y

	tMin := 0.0
	tMax := 1.0

	// X slab
	if math.Abs(dx) < 1e-12 {
		if a.X < bb.MinX || a.X > bb.MaxX {
			return 0, false
		}
	} else {
		invD := 1.0 / dx
		t1 := (bb.MinX - a.X) * invD
		t2 := (bb.MaxX - a.X) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Y slab
	if math.Abs(dy) < 1e-12 {
		if a.Y < bb.MinY || a.Y > bb.MaxY {
			return 0, false
		}
	} else {
		invD := 1.0 / dy
		t1 := (bb.MinY - a.Y) * invD
		t2 := (bb.MaxY - a.Y) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, false
	}
	if tMin < 0 {
		tMin = 0
	}
	return tMin, true
}

// SegmentIntersectsBounds reports whether the segment a→b passes through the
// bounding box. Used as a cheap cull before the full silhouette projection:
// a wall whose footprint box never meets the attacker→target sightline can
// not contribute occlusion.
func SegmentIntersectsBounds(a, b Point, bb Bounds) bool {
	_, hit := SegmentBoundsHitT(a, b, bb)
	return hit
}
