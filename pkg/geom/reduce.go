package geom

import "errors"

// ErrEmptyInput is returned when a reduction is asked for over no points.
var ErrEmptyInput = errors.New("geom: empty point set")

// MinPoint returns the axis-wise minimum of points. The result need not be
// one of the inputs.
func MinPoint(points []Point) (Point, error) {
	lo, _, err := Bounds(points)
	return lo, err
}

// MaxPoint returns the axis-wise maximum of points.
func MaxPoint(points []Point) (Point, error) {
	_, hi, err := Bounds(points)
	return hi, err
}

// Bounds returns the axis-wise minimum and maximum of points in one pass.
// Both are seeded from the first point.
func Bounds(points []Point) (min, max Point, err error) {
	if len(points) == 0 {
		return Point{}, Point{}, ErrEmptyInput
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max, nil
}
