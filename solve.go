package goquad

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ============================================================
// Solver
// ============================================================

// NoRealRootText is the roots text reported when the discriminant is negative.
const NoRealRootText = "This quadratic function doesn't have any real root."

type RootKind string

const (
	RootsNone   RootKind = "none"
	RootsSingle RootKind = "single"
	RootsPair   RootKind = "pair"
)

// Roots holds zero, one or two real roots. A pair is ordered x' (the minus
// branch of ±) then x" (the plus branch).
type Roots struct {
	Kind   RootKind
	Values []Expr
}

// Solution is the exact description of y = ax² + bx + c.
type Solution struct {
	A, B, C      int64
	Discriminant int64
	Roots        Roots
	VertexX      Rational
	VertexY      Rational
}

// Solve validates the coefficients and computes roots and vertex.
func Solve(a, b, c int64) (*Solution, error) {
	for _, co := range []struct {
		name string
		v    int64
	}{{"a", a}, {"b", b}, {"c", c}} {
		if abs64(co.v) > MaxCoefficient {
			return nil, fmt.Errorf("coefficient %s: %w", co.name, ErrOutOfRange)
		}
	}
	if a == 0 {
		return nil, ErrZeroLeading
	}

	delta := b*b - 4*a*c
	sol := &Solution{
		A: a, B: b, C: c,
		Discriminant: delta,
		VertexX:      NewRational(-b, 2*a),
		VertexY:      NewRational(-delta, 4*a),
	}
	// Negating the whole equation leaves the roots and Δ unchanged.
	if a < 0 {
		a, b = -a, -b
	}
	sol.Roots = solveRoots(a, b, delta)
	return sol, nil
}

// SolveFloat is Solve for callers holding float64 values, such as decoded
// JSON. Values must be finite and integral.
func SolveFloat(a, b, c float64) (*Solution, error) {
	var ints [3]int64
	for i, f := range [3]float64{a, b, c} {
		n, err := checkCoefficient(f)
		if err != nil {
			return nil, fmt.Errorf("coefficient %s: %w", string(rune('a'+i)), err)
		}
		ints[i] = n
	}
	return Solve(ints[0], ints[1], ints[2])
}

// solveRoots expects a > 0.
func solveRoots(a, b, delta int64) Roots {
	nb, aa := -b, 2*a
	switch {
	case delta < 0:
		return Roots{Kind: RootsNone}
	case delta == 0:
		return Roots{Kind: RootsSingle, Values: []Expr{NewRational(nb, aa)}}
	}

	rad := SimplifySqrt(delta)
	if rad.IsRational() {
		return pair(NewRational(nb-rad.Coeff, aa), NewRational(nb+rad.Coeff, aa))
	}
	if nb == 0 {
		g := GCD(rad.Coeff, aa)
		k, q := rad.Coeff/g, aa/g
		return pair(
			PureRadical{Coeff: -k, Radicand: rad.Radicand, Den: q},
			PureRadical{Coeff: k, Radicand: rad.Radicand, Den: q},
		)
	}
	g := GCD(GCD(rad.Coeff, aa), nb)
	p, k, q := nb/g, rad.Coeff/g, aa/g
	return pair(
		Composite{Rat: p, Coeff: -k, Radicand: rad.Radicand, Den: q},
		Composite{Rat: p, Coeff: k, Radicand: rad.Radicand, Den: q},
	)
}

func pair(x1, x2 Expr) Roots { return Roots{Kind: RootsPair, Values: []Expr{x1, x2}} }

// ============================================================
// Rendering
// ============================================================

func (s *Solution) Formula() string      { return Formula(s.A, s.B, s.C) }
func (s *Solution) FormulaLaTeX() string { return FormulaLaTeX(s.A, s.B, s.C) }

// RootsText renders the roots as `x = r`, `x' = r1, x" = r2` or
// NoRealRootText.
func (s *Solution) RootsText() string {
	v := s.Roots.Values
	switch s.Roots.Kind {
	case RootsSingle:
		return "x = " + v[0].String()
	case RootsPair:
		return fmt.Sprintf("x' = %s, x\" = %s", v[0], v[1])
	}
	return NoRealRootText
}

// VertexText renders the vertex as "(x, y)".
func (s *Solution) VertexText() string {
	return fmt.Sprintf("(%s, %s)", s.VertexX, s.VertexY)
}

// RootsLaTeX returns one LaTeX line per root. Irrational roots carry a
// decimal approximation.
func (s *Solution) RootsLaTeX() []string {
	switch s.Roots.Kind {
	case RootsSingle:
		return []string{"x = " + rootLaTeX(s.Roots.Values[0])}
	case RootsPair:
		out := make([]string, len(s.Roots.Values))
		for i, v := range s.Roots.Values {
			out[i] = fmt.Sprintf("x_{%d} = %s", i+1, rootLaTeX(v))
		}
		return out
	}
	return []string{"\\text{" + NoRealRootText + "}"}
}

func rootLaTeX(e Expr) string {
	if _, ok := e.(Rational); ok {
		return e.LaTeX()
	}
	return fmt.Sprintf("%s \\approx %.6g", e.LaTeX(), e.Float64())
}

func (s *Solution) VertexLaTeX() string {
	return fmt.Sprintf("\\left( %s, %s \\right)", s.VertexX.LaTeX(), s.VertexY.LaTeX())
}

// String is the three-line plain text report.
func (s *Solution) String() string {
	return strings.Join([]string{s.Formula(), s.RootsText(), "Vertex: " + s.VertexText()}, "\n")
}

func (s *Solution) toJSON() map[string]interface{} {
	values := make([]map[string]interface{}, len(s.Roots.Values))
	for i, v := range s.Roots.Values {
		values[i] = v.toJSON()
	}
	return map[string]interface{}{
		"formula":      s.Formula(),
		"a":            s.A,
		"b":            s.B,
		"c":            s.C,
		"discriminant": s.Discriminant,
		"roots": map[string]interface{}{
			"kind":   string(s.Roots.Kind),
			"text":   s.RootsText(),
			"values": values,
		},
		"vertex": map[string]interface{}{
			"x":    s.VertexX.toJSON(),
			"y":    s.VertexY.toJSON(),
			"text": s.VertexText(),
		},
	}
}

func (s *Solution) MarshalJSON() ([]byte, error) { return json.Marshal(s.toJSON()) }

// ToJSON serializes a solution as indented JSON.
func ToJSON(s *Solution) (string, error) {
	b, err := json.MarshalIndent(s.toJSON(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
