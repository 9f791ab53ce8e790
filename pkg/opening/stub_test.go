package opening

import "github.com/chazu/voidcut/pkg/geom"

// stubFace intersects exactly the faces named in touching.
type stubFace struct {
	name     string
	area     float64
	loops    []geom.EdgeLoop
	touching map[string]bool
}

func (f *stubFace) EdgeLoops() []geom.EdgeLoop { return f.loops }
func (f *stubFace) Area() float64              { return f.area }

func (f *stubFace) Intersect(other geom.Face) geom.FaceIntersection {
	if o, ok := other.(*stubFace); ok && f.touching[o.name] {
		return geom.Intersecting
	}
	return geom.NonIntersecting
}

type stubSolid struct {
	name  string
	faces []geom.Face
	area  float64
}

func (s *stubSolid) Faces() []geom.Face                    { return s.faces }
func (s *stubSolid) SurfaceArea() float64                  { return s.area }
func (s *stubSolid) BoundingBox() (geom.Point, geom.Point) { return geom.Point{}, geom.Point{} }

func face(name string) *stubFace { return &stubFace{name: name, area: 1} }

func solid(name string, area float64) *stubSolid {
	return &stubSolid{name: name, area: area, faces: []geom.Face{face(name)}}
}

// stubIntersector returns a canned result and records its arguments.
type stubIntersector struct {
	result geom.Solid
	err    error
	gotA   geom.Solid
	gotB   geom.Solid
}

func (k *stubIntersector) Intersection(a, b geom.Solid) (geom.Solid, error) {
	k.gotA, k.gotB = a, b
	return k.result, k.err
}
