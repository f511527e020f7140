package internal

// A Polygon is a closed ring of points. The last point connects back to the
// first.
type Polygon []Point

// Even-odd point-in-polygon.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by the ray from p toward +x.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly {
		nextVertex := poly[CircularIndex(i+1, len(poly))]
		if (vertex.Y() > p.Y()) == (nextVertex.Y() > p.Y()) {
			continue
		}
		// The edge line, oriented upward, has p on its left when the crossing is
		// to the right of p
		edge := vertex.Join(nextVertex)
		if nextVertex.Y() < vertex.Y() {
			edge = edge.Neg()
		}
		if edge.Evaluate(p) > 0 {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := make(Polygon, 0, len(poly))
	for i := len(poly) - 1; i >= 0; i-- {
		newPoly = append(newPoly, poly[i])
	}
	return newPoly
}

// SignedArea is positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	if len(poly) < 3 {
		return 0
	}
	origin := poly[0]
	area := 0.0
	for i := 1; i < len(poly)-1; i++ {
		area += poly[i].Sub(origin).Cross(poly[i+1].Sub(origin))
	}
	return area / 2
}

func (poly Polygon) IsCounterClockwise() bool {
	return poly.SignedArea() > 0
}

// Edges returns the line through each edge, oriented along the ring.
func (poly Polygon) Edges() []Line {
	edges := make([]Line, len(poly))
	for i, vertex := range poly {
		edges[i] = vertex.Join(poly[CircularIndex(i+1, len(poly))])
	}
	return edges
}

func (poly Polygon) Transform(m Motor) Polygon {
	return m.TransformPoints(poly)
}

// Reflect mirrors the polygon and reverses the ring so the winding is kept.
func (poly Polygon) Reflect(f Flector) Polygon {
	return Polygon(f.TransformPoints(poly)).Reverse()
}
