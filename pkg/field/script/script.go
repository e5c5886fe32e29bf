// Package script adapts a zygomys-scripted function to the
// field.Source sampling contract. The script defines a `field`
// function of three coordinates returning the scalar value:
//
//	(defn field [x y z] (- x 0.5))
//
// Each sample evaluates in a fresh sandboxed interpreter, so scripts
// cannot accumulate state between samples and the source stays pure.
// This is a prototyping surface: interpretation is orders of
// magnitude slower than a compiled Source.
package script

import (
	"fmt"
	"strconv"
	"sync"

	"cogentcore.org/core/math32"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/contour/pkg/field"
)

// Compile-time interface check.
var _ field.Source = (*Field)(nil)

// Field evaluates a scripted scalar field. Safe for concurrent use.
type Field struct {
	program string

	mu      sync.Mutex
	lastErr error
}

// New compiles and probes the script eagerly: it must load, run, and
// define a `field` function returning a number, or construction fails.
func New(program string) (*Field, error) {
	f := &Field{program: program}
	if _, err := f.eval(math32.Vector3{}); err != nil {
		return nil, fmt.Errorf("script: probe evaluation failed: %w", err)
	}
	return f, nil
}

// Sample evaluates the scripted field at a point. A script failure
// yields NaN (which classifies as no crossing downstream) and is
// retrievable via Err.
func (f *Field) Sample(p math32.Vector3) float32 {
	v, err := f.eval(p)
	if err != nil {
		f.mu.Lock()
		f.lastErr = err
		f.mu.Unlock()
		return math32.NaN()
	}
	return v
}

// Err returns the most recent evaluation error, if any.
func (f *Field) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// eval runs the script plus one call to its field function in a fresh
// sandboxed environment.
func (f *Field) eval(p math32.Vector3) (float32, error) {
	// Sandbox mode prevents the script from reaching the filesystem
	// or syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	source := fmt.Sprintf("%s\n(field %s %s %s)", f.program, num(p.X), num(p.Y), num(p.Z))
	if err := env.LoadString(source); err != nil {
		return 0, fmt.Errorf("load: %w", err)
	}
	res, err := env.Run()
	if err != nil {
		return 0, fmt.Errorf("run: %w", err)
	}
	return toFloat32(res)
}

// num renders a coordinate as a literal the interpreter parses back
// to the same value.
func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// toFloat32 extracts a float32 from a Sexp (SexpInt or SexpFloat).
func toFloat32(s zygo.Sexp) (float32, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float32(v.Val), nil
	case *zygo.SexpFloat:
		return float32(v.Val), nil
	}
	return 0, fmt.Errorf("field returned %T (%s), want a number", s, s.SexpString(nil))
}
