package geom

import (
	"math"

	"go.uber.org/zap"
)

// PadOptions controls Pad.
type PadOptions struct {
	// MiterLimit bounds how far a sharp corner may spike, as a multiple of
	// the offset delta. Values below 2 are clamped to 2 with a warning,
	// matching the clipping library's contract. Zero means 2.
	MiterLimit float64
	// ScalingFactor, when positive, snaps result coordinates to a 1/sf
	// lattice, the way integer-coordinate clipping libraries quantize.
	ScalingFactor float64
	// Logger receives the miter-limit clamp warning. Nil means no logging.
	Logger *zap.Logger
}

// Pad returns the polygon offset outward by delta (inward for negative
// delta), with mitered corners. Corners sharper than the miter limit are
// beveled instead of spiked.
func Pad(p Polygon, delta float64, opts PadOptions) Polygon {
	n := p.Len()
	if n < 3 || delta == 0 {
		return p
	}

	miterLimit := opts.MiterLimit
	if miterLimit == 0 {
		miterLimit = 2
	}
	if miterLimit < 2 {
		if opts.Logger != nil {
			opts.Logger.Warn("pad: miter limit below 2, clamping",
				zap.Float64("requested", miterLimit))
		}
		miterLimit = 2
	}

	// Outward normal per edge. For a positive shoelace ring the interior
	// lies to the left of travel, so outward is the right-hand normal.
	orientSign := 1.0
	if p.signedArea() < 0 {
		orientSign = -1.0
	}
	normal := func(a, b Point) (Point, bool) {
		d := b.Sub(a)
		l := math.Hypot(d.X, d.Y)
		if l < orientEps {
			return Point{}, false
		}
		return Point{X: orientSign * d.Y / l, Y: orientSign * -d.X / l}, true
	}

	maxMiter := miterLimit * math.Abs(delta)
	out := make([]Point, 0, n*2)
	for i := 0; i < n; i++ {
		prev := p.Vertex((i - 1 + n) % n)
		v := p.Vertex(i)
		next := p.Vertex((i + 1) % n)

		n1, ok1 := normal(prev, v)
		n2, ok2 := normal(v, next)
		if !ok1 || !ok2 {
			continue // zero-length edge contributes nothing
		}

		p1a := prev.Add(n1.Scale(delta))
		p1b := v.Add(n1.Scale(delta))
		p2a := v.Add(n2.Scale(delta))
		p2b := next.Add(n2.Scale(delta))

		m, ok := SegmentIntersection(p1a, p1b, p2a, p2b)
		if ok && m.Dist(v) <= maxMiter {
			out = append(out, m)
		} else {
			// Parallel offset lines or a spike past the miter limit: bevel.
			out = append(out, p1b, p2a)
		}
	}

	if sf := opts.ScalingFactor; sf > 0 {
		for i, pt := range out {
			out[i] = Point{
				X: math.Round(pt.X*sf) / sf,
				Y: math.Round(pt.Y*sf) / sf,
			}
		}
	}
	return NewPolygon(out...)
}
