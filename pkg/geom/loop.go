package geom

import "github.com/samber/lo"

// Curve is a parameterised 1D locus. EndPoint(0) is the start, EndPoint(1)
// the end.
type Curve interface {
	EndPoint(i int) Point
}

// Edge is a boundary edge of a face.
type Edge interface {
	AsCurve() Curve
}

// EdgeLoop is a closed, ordered cycle of edges: the end of edge i is the
// start of edge (i+1) mod N.
type EdgeLoop []Edge

// SampleLoop returns the start point of every edge in loop order. Only start
// points are taken, so a closed loop of N edges yields N points without
// duplicates.
func SampleLoop(loop EdgeLoop) []Point {
	return lo.Map(loop, func(e Edge, _ int) Point {
		return e.AsCurve().EndPoint(0)
	})
}

// Line is a straight segment between two points. It is its own Edge.
type Line struct {
	Start, End Point
}

// EndPoint returns Start for 0 and End for any other index.
func (l Line) EndPoint(i int) Point {
	if i == 0 {
		return l.Start
	}
	return l.End
}

// AsCurve returns the line itself.
func (l Line) AsCurve() Curve {
	return l
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.End.Vec().Sub(l.Start.Vec()).Len()
}

// PolygonLoop builds a closed loop of lines through the given vertices.
func PolygonLoop(vertices ...Point) EdgeLoop {
	loop := make(EdgeLoop, len(vertices))
	for i, v := range vertices {
		loop[i] = Line{Start: v, End: vertices[(i+1)%len(vertices)]}
	}
	return loop
}
