package geom

import "go.uber.org/zap"

// CombineTerrainWalls merges the silhouettes of terrain walls as seen from
// the viewer into one occlusion region with inter-wall overlap removed. A
// single terrain wall does not block sight; occlusion only arises where the
// viewer looks through two of them, so the region is the union, over wall
// pairs, of the overlap between each pair's silhouettes.
//
// Returns nil when the input holds fewer than two walls or no pair
// interacts. Degenerate pairs (viewer collinear with a wall, collinear
// walls, an unresolvable crossing) are skipped, with a warning for the
// cases that indicate a geometry problem; the remaining pairs still
// contribute, so the result degrades rather than fails.
func CombineTerrainWalls(walls []*WallGeometry, viewer Point3, m *Matrix, log *zap.Logger) PolygonSet {
	if log == nil {
		log = zap.NewNop()
	}
	v := viewer.XY()

	var regions []PolygonSet
	for i := 0; i < len(walls); i++ {
		for j := i + 1; j < len(walls); j++ {
			regions = append(regions, combinePair(walls[i], walls[j], v, m, log)...)
		}
	}

	var out PolygonSet
	for _, r := range regions {
		out = Union(out, r)
	}
	if out.Empty() {
		return nil
	}
	return out
}

// combinePair computes the occlusion contributed by one unordered wall
// pair: zero, one ("T"/"V" configuration) or two ("X" crossing) clipped
// regions.
func combinePair(wi, wj *WallGeometry, v Point, m *Matrix, log *zap.Logger) []PolygonSet {
	a, b := wi.Segment()
	c, d := wj.Segment()

	oABV := Orient(a, b, v)
	oCDV := Orient(c, d, v)
	if oABV == 0 || oCDV == 0 {
		// No front/back ordering exists for a wall edge-on to the viewer.
		log.Warn("terrain wall collinear with viewer, skipping pair",
			zap.Float64("ax", a.X), zap.Float64("ay", a.Y),
			zap.Float64("bx", b.X), zap.Float64("by", b.Y))
		return nil
	}

	oABC := Orient(a, b, c)
	oABD := Orient(a, b, d)
	if oABC == 0 && oABD == 0 {
		return nil // collinear walls never obscure one another
	}
	oCDA := Orient(c, d, a)
	oCDB := Orient(c, d, b)

	cdOneSide := sign(oABC)*sign(oABD) >= 0
	abOneSide := sign(oCDA)*sign(oCDB) >= 0

	if cdOneSide || abOneSide {
		// "T" or "V": one wall lies entirely to one side of the other, so a
		// single near/far ordering holds for the whole pair. The far wall's
		// silhouette is clipped against the near wall's.
		near, far := wi, wj
		if cdOneSide {
			cdSide := sign(oABC)
			if cdSide == 0 {
				cdSide = sign(oABD)
			}
			if cdSide == sign(oABV) {
				near, far = wj, wi // CD sits between the viewer and AB
			}
		} else {
			abSide := sign(oCDA)
			if abSide == 0 {
				abSide = sign(oCDB)
			}
			if abSide == sign(oCDV) {
				near, far = wi, wj
			} else {
				near, far = wj, wi
			}
		}
		r := Intersect(far.Silhouette(m), near.Silhouette(m))
		if r.Empty() {
			return nil
		}
		return []PolygonSet{r}
	}

	// "X": the ground segments strictly cross. Split both at the crossing
	// and pair each far half with the half that fronts it.
	p, ok := SegmentIntersection(a, b, c, d)
	if !ok {
		log.Warn("crossing terrain walls with no computable intersection, skipping pair",
			zap.Float64("ax", a.X), zap.Float64("ay", a.Y),
			zap.Float64("cx", c.X), zap.Float64("cy", c.Y))
		return nil
	}
	i1, i2 := wi.SplitAt(p)
	j1, j2 := wj.SplitAt(p)

	farAB, nearAB := frontBack(i1, i2, c, d, sign(oCDV))
	farCD, nearCD := frontBack(j1, j2, a, b, sign(oABV))

	var out []PolygonSet
	if r := Intersect(farAB.Silhouette(m), nearCD.Silhouette(m)); !r.Empty() {
		out = append(out, r)
	}
	if r := Intersect(farCD.Silhouette(m), nearAB.Silhouette(m)); !r.Empty() {
		out = append(out, r)
	}
	return out
}

// frontBack orders the two halves of a split wall against the other wall's
// ground line: the half on the opposite side from the viewer is occluded
// (far), the half on the viewer's side occludes (near).
func frontBack(h1, h2 *WallGeometry, lineA, lineB Point, viewerSide int) (far, near *WallGeometry) {
	a1, b1 := h1.Segment()
	if sign(Orient(lineA, lineB, mid(a1, b1))) == viewerSide {
		return h2, h1
	}
	return h1, h2
}
