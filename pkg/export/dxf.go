package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"
)

// DXF layer names.
const (
	LayerWall        = "WALL"
	LayerOpening     = "OPENING"
	LayerPlaceholder = "PLACEHOLDER"
)

// WriteDXF saves the elevation as closed polylines on one layer per
// element kind.
func WriteDXF(path string, e *Elevation) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	d.AddLayer(LayerWall, color.White, dxf.DefaultLineType, true)
	if err := addRects(d, LayerWall, []Rect{e.Outline}); err != nil {
		return err
	}
	d.AddLayer(LayerOpening, color.Red, dxf.DefaultLineType, true)
	if err := addRects(d, LayerOpening, rectsOf(e.Openings)); err != nil {
		return err
	}
	d.AddLayer(LayerPlaceholder, color.Cyan, dxf.DefaultLineType, true)
	if err := addRects(d, LayerPlaceholder, rectsOf(e.Placeholders)); err != nil {
		return err
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save dxf: %w", err)
	}
	return nil
}

func addRects(d *drawing.Drawing, layer string, rects []Rect) error {
	if err := d.ChangeLayer(layer); err != nil {
		return fmt.Errorf("dxf layer %s: %w", layer, err)
	}
	for _, r := range rects {
		d.AddEntity(polyline(r))
	}
	return nil
}

// polyline traces r counter-clockwise and repeats the first vertex to close
// the ring.
func polyline(r Rect) *entity.LwPolyline {
	ring := [][]float64{
		{r.U0, r.V0}, {r.U1, r.V0}, {r.U1, r.V1}, {r.U0, r.V1}, {r.U0, r.V0},
	}
	lwp := entity.NewLwPolyline(len(ring))
	for j, pt := range ring {
		lwp.Vertices[j] = pt
	}
	return lwp
}

func rectsOf(ls []Labeled) []Rect {
	rects := make([]Rect, len(ls))
	for i, l := range ls {
		rects[i] = l.Rect
	}
	return rects
}
