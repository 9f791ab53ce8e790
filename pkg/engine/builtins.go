package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/voidcut/pkg/geom"
	"github.com/chazu/voidcut/pkg/model"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Sexp wrappers for Go values
// ---------------------------------------------------------------------------

type sexpVec3 struct {
	p geom.Point
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.p.X, v.p.Y, v.p.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpElement is returned by the element builtins so scenes can bind them.
type sexpElement struct {
	kind model.Kind
	name string
}

func (e *sexpElement) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s %q)", e.kind, e.name)
}
func (e *sexpElement) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Argument parsing
// ---------------------------------------------------------------------------

func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs splits args into keyword and positional arguments. A trailing
// keyword without a value is recorded as a flag holding SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// require returns the keyword value or an error naming the missing keyword.
func (a kwArgs) require(fn, key string) (zygo.Sexp, error) {
	v, ok := a.kw[key]
	if !ok {
		return nil, fmt.Errorf("%s: missing :%s", fn, key)
	}
	return v, nil
}

func (a kwArgs) float(fn, key string) (float64, error) {
	v, err := a.require(fn, key)
	if err != nil {
		return 0, err
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", fn, key, err)
	}
	return f, nil
}

func (a kwArgs) point(fn, key string) (geom.Point, error) {
	v, err := a.require(fn, key)
	if err != nil {
		return geom.Point{}, err
	}
	p, err := toPoint(v)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%s: %s: %w", fn, key, err)
	}
	return p, nil
}

// flag reads an optional boolean keyword. A bare trailing keyword counts
// as true.
func (a kwArgs) flag(fn, key string) (bool, error) {
	v, ok := a.kw[key]
	if !ok {
		return false, nil
	}
	if v == zygo.SexpNull {
		return true, nil
	}
	b, err := toBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %s: %w", fn, key, err)
	}
	return b, nil
}

// name returns the single positional name argument of an element builtin.
func (a kwArgs) name(fn string) (string, error) {
	if len(a.positional) != 1 {
		return "", fmt.Errorf("%s requires exactly one name argument, got %d", fn, len(a.positional))
	}
	s, err := toString(a.positional[0])
	if err != nil {
		return "", fmt.Errorf("%s: name: %w", fn, err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Value extraction
// ---------------------------------------------------------------------------

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected true or false, got %T (%s)", s, s.SexpString(nil))
}

func toPoint(s zygo.Sexp) (geom.Point, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.p, nil
	}
	return geom.Point{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the scene builtins. They add elements to doc as
// the scene runs. Source must go through preprocessSource first.
func registerBuiltins(env *zygo.Zlisp, doc *model.Document) {

	// (vec3 1 2 3)
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var c [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %c: %w", "xyz"[i], err)
			}
			c[i] = f
		}
		return &sexpVec3{p: geom.Pt(c[0], c[1], c[2])}, nil
	})

	// -----------------------------------------------------------------------
	// (wall "W1" :start (vec3 0 0 0) :end (vec3 0 10 0) :height 3 :thickness 0.2)
	// -----------------------------------------------------------------------
	env.AddFunction("wall", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		wallName, err := pa.name("wall")
		if err != nil {
			return zygo.SexpNull, err
		}
		start, err := pa.point("wall", "start")
		if err != nil {
			return zygo.SexpNull, err
		}
		end, err := pa.point("wall", "end")
		if err != nil {
			return zygo.SexpNull, err
		}
		height, err := pa.float("wall", "height")
		if err != nil {
			return zygo.SexpNull, err
		}
		thickness, err := pa.float("wall", "thickness")
		if err != nil {
			return zygo.SexpNull, err
		}

		if _, err := doc.AddWall(wallName, start, end, height, thickness); err != nil {
			return zygo.SexpNull, fmt.Errorf("wall: %w", err)
		}
		return &sexpElement{kind: model.KindWall, name: wallName}, nil
	})

	// -----------------------------------------------------------------------
	// (placeholder "A" :min (vec3 -0.5 3 1) :max (vec3 0.5 4 2)
	//                  :symbolic true :degenerate false)
	// -----------------------------------------------------------------------
	env.AddFunction("placeholder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		phName, err := pa.name("placeholder")
		if err != nil {
			return zygo.SexpNull, err
		}
		min, err := pa.point("placeholder", "min")
		if err != nil {
			return zygo.SexpNull, err
		}
		max, err := pa.point("placeholder", "max")
		if err != nil {
			return zygo.SexpNull, err
		}

		var opts []model.PlaceholderOption
		if on, err := pa.flag("placeholder", "symbolic"); err != nil {
			return zygo.SexpNull, err
		} else if on {
			opts = append(opts, model.WithSymbolic())
		}
		if on, err := pa.flag("placeholder", "degenerate"); err != nil {
			return zygo.SexpNull, err
		} else if on {
			opts = append(opts, model.Degenerate())
		}

		if _, err := doc.AddPlaceholder(phName, min, max, opts...); err != nil {
			return zygo.SexpNull, fmt.Errorf("placeholder: %w", err)
		}
		return &sexpElement{kind: model.KindPlaceholder, name: phName}, nil
	})
}
