package geom

// ViewableOptions controls ViewablePointIndices / ViewablePoints.
type ViewableOptions struct {
	// OutermostOnly reduces the result to the first and last key point:
	// the two vertices whose rays from the origin bound the silhouette.
	OutermostOnly bool
}

// ViewablePointIndices returns the indices of the polygon's key points as
// seen from an external origin. A vertex is a key point iff the segment
// from origin to that vertex properly crosses no polygon edge, excluding
// the two edges incident to the vertex itself.
//
// Key points form one or two contiguous runs around the vertex cycle. When
// a run wraps across the end of the vertex array, the wrapped tail is
// rotated to the front so the returned sequence is contiguous in ring
// order. O(V*E) in polygon size.
func ViewablePointIndices(p Polygon, origin Point, opts ViewableOptions) []int {
	n := p.Len()
	if n == 0 {
		return nil
	}

	visible := make([]bool, n)
	count := 0
	for i := 0; i < n; i++ {
		v := p.Vertex(i)
		blocked := false
		for j := 0; j < n; j++ {
			// Edge j runs from vertex j to vertex j+1; skip the two edges
			// that end or start at vertex i.
			if j == i || (j+1)%n == i {
				continue
			}
			if SegmentsCross(origin, v, p.Vertex(j), p.Vertex((j+1)%n)) {
				blocked = true
				break
			}
		}
		if !blocked {
			visible[i] = true
			count++
		}
	}
	if count == 0 {
		return nil
	}

	keys := make([]int, 0, count)
	if count < n && visible[0] && visible[n-1] {
		// The run wraps the array boundary. Start it at the first visible
		// vertex after the gap so the sequence stays contiguous.
		start := 0
		for i := n - 1; i >= 0; i-- {
			if !visible[i] {
				start = i + 1
				break
			}
		}
		for i := 0; i < n; i++ {
			idx := (start + i) % n
			if visible[idx] {
				keys = append(keys, idx)
			}
		}
	} else {
		for i := 0; i < n; i++ {
			if visible[i] {
				keys = append(keys, i)
			}
		}
	}

	if opts.OutermostOnly && len(keys) > 2 {
		keys = []int{keys[0], keys[len(keys)-1]}
	}
	return keys
}

// ViewablePoints is ViewablePointIndices resolved to the vertices
// themselves.
func ViewablePoints(p Polygon, origin Point, opts ViewableOptions) []Point {
	keys := ViewablePointIndices(p, origin, opts)
	if keys == nil {
		return nil
	}
	out := make([]Point, len(keys))
	for i, k := range keys {
		out[i] = p.Vertex(k)
	}
	return out
}
