package export

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const svgMargin = 20

// WriteSVG draws the elevation at scale pixels per model unit. The SVG y
// axis points down, so heights are flipped. The drawing is rendered in
// memory first; svgo itself drops write errors.
func WriteSVG(w io.Writer, e *Elevation, scale float64) error {
	px := func(v float64) int { return int(math.Round(v * scale)) }

	width := px(e.Outline.Width()) + 2*svgMargin
	height := px(e.Outline.Height()) + 2*svgMargin
	rect := func(canvas *svg.SVG, r Rect, style string) {
		x := svgMargin + px(r.U0-e.Outline.U0)
		y := svgMargin + px(e.Outline.V1-r.V1)
		canvas.Rect(x, y, px(r.Width()), px(r.Height()), style)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Title(e.Wall)
	rect(canvas, e.Outline, "fill:#d9d9d9;stroke:#000;stroke-width:1")
	for _, p := range e.Placeholders {
		rect(canvas, p.Rect, "fill:none;stroke:#0aa;stroke-dasharray:4,2")
	}
	for _, o := range e.Openings {
		rect(canvas, o.Rect, "fill:#fff;stroke:#c00;stroke-width:1")
	}
	canvas.Text(svgMargin, svgMargin-6, e.Wall, "font-family:sans-serif;font-size:12px")
	canvas.End()

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
