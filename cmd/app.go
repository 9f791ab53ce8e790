package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chazu/voidcut/pkg/config"
	"github.com/chazu/voidcut/pkg/engine"
	"github.com/chazu/voidcut/pkg/export"
	"github.com/chazu/voidcut/pkg/kernel"
	"github.com/chazu/voidcut/pkg/kernel/sdfx"
	"github.com/chazu/voidcut/pkg/model"
	"github.com/chazu/voidcut/pkg/opening"
	"github.com/chazu/voidcut/pkg/tessellate"
	"github.com/sirupsen/logrus"
)

// ErrSceneInvalid is returned when a scene file fails to evaluate.
var ErrSceneInvalid = errors.New("scene has errors")

// App runs voidcut commands against scene files.
type App struct {
	cfg    config.Config
	log    logrus.FieldLogger
	engine *engine.Engine
	in     io.Reader
	out    io.Writer
}

// NewApp returns an app reading wall choices from in and writing results
// to out.
func NewApp(cfg config.Config, log logrus.FieldLogger, in io.Reader, out io.Writer) *App {
	return &App{
		cfg: cfg,
		log: log,
		engine: engine.NewEngine(
			model.WithTolerance(cfg.Geometry.Tolerance),
			model.WithLogger(log),
		),
		in:  in,
		out: out,
	}
}

// LoadScene evaluates the scene file at path.
func (a *App) LoadScene(path string) (*model.Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	doc, evalErrs, err := a.engine.Evaluate(string(src))
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", path, err)
	}
	if len(evalErrs) > 0 {
		msgs := make([]string, len(evalErrs))
		for i, e := range evalErrs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("%s: %w: %s", path, ErrSceneInvalid, strings.Join(msgs, "; "))
	}
	a.log.WithFields(logrus.Fields{
		"scene":        path,
		"walls":        len(doc.Walls()),
		"placeholders": len(doc.Placeholders()),
	}).Debug("loaded scene")
	return doc, nil
}

// CutOptions selects the wall and outputs of a cut.
type CutOptions struct {
	Scene  string
	Wall   string // prompt on the app input when empty
	DryRun bool

	DXF    string
	SVG    string
	Mesh   string
	Mesher string // brep or sdfx
}

// Cut loads a scene, inserts openings into one wall and writes the
// requested outputs. The returned document reflects the cut.
func (a *App) Cut(opts CutOptions) (*opening.Report, *model.Document, error) {
	doc, err := a.LoadScene(opts.Scene)
	if err != nil {
		return nil, nil, err
	}

	mesher, err := a.mesher(doc, opts.Mesher)
	if err != nil {
		return nil, nil, err
	}

	if opts.Wall != "" {
		doc.SetPicker(model.ByName(opts.Wall))
	} else {
		doc.SetPicker(model.Prompt(a.in, a.out))
	}

	// Placeholders are deleted by the cut; keep their names for the report.
	names := make(map[opening.PlaceholderRef]string)
	for _, p := range doc.Placeholders() {
		names[p.Ref()] = p.Name
	}

	batch := opening.NewBatch(doc, doc.Kernel(), a.log)
	batch.Prompt = a.cfg.Host.Prompt
	batch.TransactionName = a.cfg.Host.Transaction
	batch.DryRun = opts.DryRun

	report, err := batch.Run()
	if err != nil {
		return nil, doc, err
	}
	a.printReport(report, names)

	if err := a.writeOutputs(doc, report.Wall, mesher, opts); err != nil {
		return report, doc, err
	}
	return report, doc, nil
}

func (a *App) mesher(doc *model.Document, name string) (kernel.Mesher, error) {
	switch name {
	case "", "brep":
		return doc.Kernel(), nil
	case "sdfx":
		return sdfx.New(a.cfg.Export.MeshCells), nil
	default:
		return nil, fmt.Errorf("unknown mesher %q, expected brep or sdfx", name)
	}
}

func (a *App) printReport(r *opening.Report, names map[opening.PlaceholderRef]string) {
	verb := "opening"
	if r.DryRun {
		verb = "would cut"
	}
	for _, op := range r.Openings {
		fmt.Fprintf(a.out, "%s %s: min %v max %v\n", verb, names[op.Placeholder], op.Min, op.Max)
	}
	for _, s := range r.Skipped {
		fmt.Fprintf(a.out, "skipped %s: %v\n", names[s.Placeholder], s.Reason)
	}
}

func (a *App) writeOutputs(doc *model.Document, wallRef opening.WallRef, mesher kernel.Mesher, opts CutOptions) error {
	if opts.DXF != "" || opts.SVG != "" {
		el, err := doc.Element(opening.ElementID(wallRef))
		if err != nil {
			return err
		}
		elev, err := export.WallElevation(doc, el.(*model.Wall))
		if err != nil {
			return err
		}
		if opts.DXF != "" {
			if err := export.WriteDXF(opts.DXF, elev); err != nil {
				return err
			}
			a.log.WithField("path", opts.DXF).Info("wrote dxf elevation")
		}
		if opts.SVG != "" {
			if err := writeFile(opts.SVG, func(w io.Writer) error {
				return export.WriteSVG(w, elev, a.cfg.Export.SVGScale)
			}); err != nil {
				return err
			}
			a.log.WithField("path", opts.SVG).Info("wrote svg elevation")
		}
	}

	if opts.Mesh != "" {
		meshes, err := tessellate.Tessellate(doc, mesher)
		if err != nil {
			return err
		}
		if err := writeFile(opts.Mesh, func(w io.Writer) error {
			return export.WriteMeshes(w, meshes)
		}); err != nil {
			return err
		}
		a.log.WithFields(logrus.Fields{"path": opts.Mesh, "meshes": len(meshes)}).Info("wrote meshes")
	}
	return nil
}

// WallInfo summarises one wall of a scene.
type WallInfo struct {
	Name         string
	Start, End   string
	Length       float64
	Height       float64
	Thickness    float64
	Placeholders int
}

// Walls lists the walls of a scene with the number of placeholders
// touching each.
func (a *App) Walls(scene string) ([]WallInfo, error) {
	doc, err := a.LoadScene(scene)
	if err != nil {
		return nil, err
	}
	var infos []WallInfo
	for _, w := range doc.Walls() {
		refs, err := doc.IntersectingInstances(w.Ref())
		if err != nil {
			return nil, err
		}
		infos = append(infos, WallInfo{
			Name:         w.Name,
			Start:        w.Start.String(),
			End:          w.End.String(),
			Length:       w.Length(),
			Height:       w.Height,
			Thickness:    w.Thickness,
			Placeholders: len(refs),
		})
	}
	return infos, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
