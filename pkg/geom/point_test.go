package geom

import "testing"

func TestPointCoord(t *testing.T) {
	p := Pt(1, 2, 3)
	for i, want := range []float64{1, 2, 3} {
		if got := p.Coord(i); got != want {
			t.Errorf("Coord(%d) = %f, want %f", i, got, want)
		}
	}
	if got := p.WithCoord(1, 9); got != Pt(1, 9, 3) {
		t.Errorf("WithCoord(1, 9) = %v", got)
	}
}

func TestPointCoordPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Coord(3) did not panic")
		}
	}()
	Pt(0, 0, 0).Coord(3)
}

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(1, 2, 3), Pt(3, 2, 1)
	if got := a.Add(b); got != Pt(4, 4, 4) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Pt(-2, 0, 2) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mid(b); got != Pt(2, 2, 2) {
		t.Errorf("Mid = %v", got)
	}
	if !a.ApproxEqual(Pt(1+1e-10, 2, 3), 1e-9) {
		t.Error("ApproxEqual should accept a difference below the tolerance")
	}
	if a.ApproxEqual(Pt(1.1, 2, 3), 1e-9) {
		t.Error("ApproxEqual should reject a difference above the tolerance")
	}
}

func TestContainerSolids(t *testing.T) {
	c := Container{Line{}, &Instance{}, nil}
	if got := c.Solids(); len(got) != 0 {
		t.Errorf("Solids() = %v, want none", got)
	}
}

func TestFaceIntersectionString(t *testing.T) {
	if Intersecting.String() != "intersecting" || NonIntersecting.String() != "non-intersecting" {
		t.Error("unexpected FaceIntersection strings")
	}
	if FaceIntersection(9).String() != "unknown" {
		t.Error("out-of-range FaceIntersection should print unknown")
	}
}
