package engine

import (
	"strings"
	"testing"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/model"
)

// ---------------------------------------------------------------------------
// Preprocessing
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(wall "W1" :height 3)`,
			expect: `(wall "W1" "__kw_height" 3)`,
		},
		{
			name:   "multiple keywords",
			input:  `(placeholder "A" :min a :max b)`,
			expect: `(placeholder "A" "__kw_min" a "__kw_max" b)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "escaped quote in string",
			input:  `"say \":x\"" :y`,
			expect: `"say \":x\"" "__kw_y"`,
		},
		{
			name:   "raw string preserved",
			input:  "`:raw-thing` :k",
			expect: "`:raw-thing` \"__kw_k\"",
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def wall-height 3)`,
			expect: `(def wall_height 3)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative number preserved",
			input:  `(vec3 -0.5 3 1)`,
			expect: `(vec3 -0.5 3 1)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:side-a`,
			expect: `"__kw_side-a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Scene builtins
// ---------------------------------------------------------------------------

func mustEvaluate(t *testing.T, source string) *model.Document {
	t.Helper()
	doc, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	return doc
}

func TestWallAndPlaceholder(t *testing.T) {
	doc := mustEvaluate(t, `
;; one wall along +Y with a window void
(wall "W1" :start (vec3 0 0 0) :end (vec3 0 10 0) :height 3 :thickness 0.2)
(placeholder "A" :min (vec3 -0.5 3 1) :max (vec3 0.5 4 2))
`)

	walls := doc.Walls()
	if len(walls) != 1 {
		t.Fatalf("got %d walls, want 1", len(walls))
	}
	w := walls[0]
	if w.Name != "W1" || w.Height != 3 || w.Thickness != 0.2 {
		t.Errorf("wall = %+v", w)
	}
	if !w.End.ApproxEqual(geom.Pt(0, 10, 0), 1e-12) {
		t.Errorf("wall end = %v", w.End)
	}

	phs := doc.Placeholders()
	if len(phs) != 1 {
		t.Fatalf("got %d placeholders, want 1", len(phs))
	}
	p := phs[0]
	if p.Name != "A" || p.Symbolic || p.Degenerate {
		t.Errorf("placeholder = %+v", p)
	}
	if !p.Min.ApproxEqual(geom.Pt(-0.5, 3, 1), 1e-12) || !p.Max.ApproxEqual(geom.Pt(0.5, 4, 2), 1e-12) {
		t.Errorf("placeholder box = %v..%v", p.Min, p.Max)
	}
}

func TestVariablesAndLoops(t *testing.T) {
	doc := mustEvaluate(t, `
(def wall-height 3)
(def origin (vec3 0 0 0))
(wall "W1" :start origin :end (vec3 0 10 0) :height wall-height :thickness 0.2)
(placeholder "A" :min (vec3 -0.5 1 1) :max (vec3 0.5 2 2))
(placeholder "B" :min (vec3 -0.5 (+ 1 3) 1) :max (vec3 0.5 (+ 2 3) 2))
`)
	if got := len(doc.Placeholders()); got != 2 {
		t.Fatalf("got %d placeholders, want 2", got)
	}
	b, err := doc.PlaceholderByName("B")
	if err != nil {
		t.Fatal(err)
	}
	if b.Min.Y != 4 || b.Max.Y != 5 {
		t.Errorf("B spans %v..%v", b.Min, b.Max)
	}
}

func TestPlaceholderFlags(t *testing.T) {
	doc := mustEvaluate(t, `
(placeholder "S" :min (vec3 0 0 0) :max (vec3 1 1 1) :symbolic true)
(placeholder "D" :min (vec3 2 0 0) :max (vec3 3 1 1) :degenerate true :symbolic false)
(placeholder "F" :min (vec3 4 0 0) :max (vec3 5 1 1) :degenerate)
`)
	tests := []struct {
		name                 string
		symbolic, degenerate bool
	}{
		{"S", true, false},
		{"D", false, true},
		{"F", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := doc.PlaceholderByName(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if p.Symbolic != tt.symbolic || p.Degenerate != tt.degenerate {
				t.Errorf("symbolic=%v degenerate=%v, want %v %v", p.Symbolic, p.Degenerate, tt.symbolic, tt.degenerate)
			}
		})
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{"vec3 arity", `(vec3 1 2)`, "vec3 requires exactly 3 arguments"},
		{"vec3 type", `(vec3 1 "a" 2)`, "expected number"},
		{"wall without name", `(wall :height 3)`, "exactly one name"},
		{"wall missing end", `(wall "W" :start (vec3 0 0 0) :height 3 :thickness 0.2)`, "missing :end"},
		{"wall point type", `(wall "W" :start 1 :end (vec3 0 1 0) :height 3 :thickness 0.2)`, "expected vec3"},
		{"diagonal wall", `(wall "W" :start (vec3 0 0 0) :end (vec3 1 1 0) :height 3 :thickness 0.2)`, "axis-aligned"},
		{"flat placeholder", `(placeholder "P" :min (vec3 0 0 0) :max (vec3 1 1 0))`, "no volume"},
		{"flag type", `(placeholder "P" :min (vec3 0 0 0) :max (vec3 1 1 1) :symbolic 1)`, "expected true or false"},
		{"duplicate name", `(placeholder "P" :min (vec3 0 0 0) :max (vec3 1 1 1))
(placeholder "P" :min (vec3 0 0 0) :max (vec3 1 1 1))`, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if doc != nil {
				t.Error("expected nil document")
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected an eval error")
			}
			if !strings.Contains(evalErrs[0].Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", evalErrs[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestEngineOptionsReachDocument(t *testing.T) {
	eng := NewEngine(model.WithTolerance(1e-3), model.WithPicker(model.ByName("W1")))
	doc, evalErrs, err := eng.Evaluate(`(wall "W1" :start (vec3 0 0 0) :end (vec3 5 0 0) :height 3 :thickness 0.2)`)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("evaluate: %v %v", err, evalErrs)
	}
	if doc.Tolerance() != 1e-3 {
		t.Errorf("tolerance = %g", doc.Tolerance())
	}
	ref, err := doc.PickWall("Select Wall")
	if err != nil {
		t.Fatal(err)
	}
	if ref != doc.Walls()[0].Ref() {
		t.Errorf("picked %s", ref)
	}
}

func TestRapidEvaluationAlternating(t *testing.T) {
	// Sequential on purpose: zygomys keeps global state that is not safe
	// for concurrent sandbox creation.
	eng := NewEngine()
	sources := []struct {
		src      string
		wantErrs bool
		elements int
	}{
		{`(wall "W" :start (vec3 0 0 0) :end (vec3 4 0 0) :height 3 :thickness 0.2)`, false, 1},
		{`(wall "W"`, true, 0},
		{``, false, 0},
		{`(placeholder "P" :min (vec3 0 0 0))`, true, 0},
		{`;; just a comment`, false, 0},
		{`(undefined-func 1 2 3)`, true, 0},
		{`(placeholder "P" :min (vec3 0 0 0) :max (vec3 1 1 1))`, false, 1},
	}
	for i, s := range sources {
		doc, evalErrs, err := eng.Evaluate(s.src)
		if err != nil {
			t.Fatalf("iteration %d: fatal: %v", i, err)
		}
		if got := len(evalErrs) > 0; got != s.wantErrs {
			t.Errorf("iteration %d: eval errors %v, want errors=%v", i, evalErrs, s.wantErrs)
			continue
		}
		if !s.wantErrs && len(doc.Elements()) != s.elements {
			t.Errorf("iteration %d: %d elements, want %d", i, len(doc.Elements()), s.elements)
		}
	}
}
