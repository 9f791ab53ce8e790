package tessellate_test

import (
	"math"
	"testing"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/kernel"
	"github.com/chazu/voidcut/pkg/kernel/sdfx"
	"github.com/chazu/voidcut/pkg/model"
	"github.com/chazu/voidcut/pkg/tessellate"
)

// newScene returns a wall with one cut opening, one remaining placeholder
// and one degenerate placeholder.
func newScene(t *testing.T) *model.Document {
	t.Helper()
	doc := model.New()
	w, err := doc.AddWall("W1", geom.Pt(0, 0, 0), geom.Pt(0, 10, 0), 3, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddPlaceholder("B", geom.Pt(-0.5, 6, 1), geom.Pt(0.5, 7, 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.AddPlaceholder("D", geom.Pt(-0.5, 8, 1), geom.Pt(0.5, 9, 2), model.Degenerate()); err != nil {
		t.Fatal(err)
	}

	tx, err := doc.Begin("cut")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.CreateOpening(w.Ref(), geom.Pt(0.1, 3, 1), geom.Pt(0.1, 4, 2)); err != nil {
		t.Fatal(err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestOneMeshPerElement(t *testing.T) {
	doc := newScene(t)

	meshes, err := tessellate.Tessellate(doc, doc.Kernel())
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}

	want := []struct{ element, kind string }{
		{"W1", "wall"},
		{"B", "placeholder"},
		{"W1 opening 1", "opening"},
	}
	if len(meshes) != len(want) {
		t.Fatalf("expected %d meshes, got %d", len(want), len(meshes))
	}
	for i, w := range want {
		m := meshes[i]
		if m.Element != w.element || m.Kind != w.kind {
			t.Errorf("mesh %d = %s %q, want %s %q", i, m.Kind, m.Element, w.kind, w.element)
		}
		// Boxes mesh to two triangles per face.
		if m.TriangleCount() != 12 {
			t.Errorf("mesh %d has %d triangles, want 12", i, m.TriangleCount())
		}
	}
}

func TestKindFilter(t *testing.T) {
	doc := newScene(t)

	tests := []struct {
		name  string
		kinds []model.Kind
		want  int
	}{
		{"all", nil, 3},
		{"walls", []model.Kind{model.KindWall}, 1},
		{"openings and placeholders", []model.Kind{model.KindOpening, model.KindPlaceholder}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meshes, err := tessellate.Tessellate(doc, doc.Kernel(), tt.kinds...)
			if err != nil {
				t.Fatal(err)
			}
			if len(meshes) != tt.want {
				t.Errorf("got %d meshes, want %d", len(meshes), tt.want)
			}
		})
	}
}

func TestOpeningMeshSpansWall(t *testing.T) {
	doc := newScene(t)

	meshes, err := tessellate.Tessellate(doc, doc.Kernel(), model.KindOpening)
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	min, max := meshes[0].Bounds()
	wantMin := [3]float64{-0.1, 3, 1}
	wantMax := [3]float64{0.1, 4, 2}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-6 || math.Abs(max[i]-wantMax[i]) > 1e-6 {
			t.Fatalf("bounds = %v..%v, want %v..%v", min, max, wantMin, wantMax)
		}
	}
}

func TestSdfxMesher(t *testing.T) {
	doc := newScene(t)

	meshes, err := tessellate.Tessellate(doc, sdfx.New(0), model.KindWall)
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 1 || meshes[0].IsEmpty() {
		t.Fatalf("expected one non-empty wall mesh, got %d", len(meshes))
	}

	// Marching cubes is approximate; check the centroid loosely.
	m := meshes[0]
	var c [3]float64
	n := m.VertexCount()
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			c[j] += float64(m.Vertices[i*3+j])
		}
	}
	want := [3]float64{0, 5, 1.5}
	for j := 0; j < 3; j++ {
		c[j] /= float64(n)
		if math.Abs(c[j]-want[j]) > 1 {
			t.Errorf("centroid[%d] = %.2f, expected near %.2f", j, c[j], want[j])
		}
	}
}

// failingMesher rejects every solid.
type failingMesher struct{}

func (failingMesher) ToMesh(geom.Solid) (*kernel.Mesh, error) {
	return nil, errMesh
}

var errMesh = meshError("mesher broke")

type meshError string

func (e meshError) Error() string { return string(e) }

func TestMesherErrorNamesElement(t *testing.T) {
	doc := newScene(t)
	_, err := tessellate.Tessellate(doc, failingMesher{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != `tessellate: wall "W1": mesher broke` {
		t.Errorf("error = %q", got)
	}
}

func TestNilDocument(t *testing.T) {
	meshes, err := tessellate.Tessellate(nil, failingMesher{})
	if err != nil || meshes != nil {
		t.Errorf("got %v, %v", meshes, err)
	}
}
