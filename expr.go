package goquad

import (
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// Root expression shapes
// ============================================================

// Expr is one exactly represented root or vertex coordinate. The concrete
// types are Rational, PureRadical and Composite.
type Expr interface {
	String() string
	LaTeX() string
	Float64() float64
	exprType() string
	toJSON() map[string]interface{}
}

// ============================================================
// Rational — p/q, reduced, q > 0
// ============================================================

type Rational struct {
	Num int64
	Den int64
}

// NewRational reduces p/q and moves the sign to the numerator.
func NewRational(p, q int64) Rational {
	if q == 0 {
		panic("goquad: denominator is zero")
	}
	if q < 0 {
		p, q = -p, -q
	}
	if g := GCD(p, q); g > 1 {
		p, q = p/g, q/g
	}
	return Rational{Num: p, Den: q}
}

// Int returns the rational n/1.
func Int(n int64) Rational { return Rational{Num: n, Den: 1} }

func (r Rational) IsInteger() bool  { return r.Den == 1 }
func (r Rational) IsZero() bool     { return r.Num == 0 }
func (r Rational) Float64() float64 { return float64(r.Num) / float64(r.Den) }
func (r Rational) exprType() string { return "rational" }

func (r Rational) String() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func (r Rational) LaTeX() string {
	if r.IsInteger() {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%s\\frac{%d}{%d}", signPrefix(r.Num), abs64(r.Num), r.Den)
}

func (r Rational) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "rational", "num": r.Num, "den": r.Den, "value": r.String()}
}

// ============================================================
// PureRadical — Coeff*√Radicand/Den
// ============================================================

type PureRadical struct {
	Coeff    int64
	Radicand int64
	Den      int64
}

func (p PureRadical) exprType() string { return "radical" }
func (p PureRadical) Float64() float64 {
	return float64(p.Coeff) * math.Sqrt(float64(p.Radicand)) / float64(p.Den)
}

func (p PureRadical) String() string {
	s := coeffPrefix(p.Coeff) + sqrtText(p.Radicand)
	if p.Den > 1 {
		s += "/" + strconv.FormatInt(p.Den, 10)
	}
	return s
}

func (p PureRadical) LaTeX() string {
	if p.Den == 1 {
		return coeffPrefix(p.Coeff) + sqrtLaTeX(p.Radicand)
	}
	return fmt.Sprintf("%s\\frac{%s%s}{%d}", signPrefix(p.Coeff), coeffPrefix(abs64(p.Coeff)), sqrtLaTeX(p.Radicand), p.Den)
}

func (p PureRadical) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type": "radical", "coeff": p.Coeff, "radicand": p.Radicand, "den": p.Den, "value": p.String(),
	}
}

// ============================================================
// Composite — (Rat + Coeff*√Radicand)/Den
// ============================================================

// Composite is a mixed rational and irrational root. Rat is never zero and
// Rat, Coeff and Den share no common factor.
type Composite struct {
	Rat      int64
	Coeff    int64
	Radicand int64
	Den      int64
}

func (c Composite) exprType() string { return "composite" }
func (c Composite) Float64() float64 {
	return (float64(c.Rat) + float64(c.Coeff)*math.Sqrt(float64(c.Radicand))) / float64(c.Den)
}

func (c Composite) numerator(sqrt func(int64) string) string {
	op := "+"
	if c.Coeff < 0 {
		op = "-"
	}
	return fmt.Sprintf("%d %s %s%s", c.Rat, op, coeffPrefix(abs64(c.Coeff)), sqrt(c.Radicand))
}

func (c Composite) String() string {
	if c.Den == 1 {
		return c.numerator(sqrtText)
	}
	return fmt.Sprintf("(%s)/%d", c.numerator(sqrtText), c.Den)
}

func (c Composite) LaTeX() string {
	if c.Den == 1 {
		return c.numerator(sqrtLaTeX)
	}
	return fmt.Sprintf("\\frac{%s}{%d}", c.numerator(sqrtLaTeX), c.Den)
}

func (c Composite) toJSON() map[string]interface{} {
	return map[string]interface{}{
		"type": "composite", "rat": c.Rat, "coeff": c.Coeff, "radicand": c.Radicand, "den": c.Den, "value": c.String(),
	}
}

// ============================================================
// Formatting helpers
// ============================================================

// coeffPrefix prints a multiplier in front of a symbol: 1 and -1 collapse
// to their sign.
func coeffPrefix(k int64) string {
	switch k {
	case 1:
		return ""
	case -1:
		return "-"
	}
	return strconv.FormatInt(k, 10)
}

func signPrefix(n int64) string {
	if n < 0 {
		return "-"
	}
	return ""
}

func sqrtText(r int64) string  { return "√" + strconv.FormatInt(r, 10) }
func sqrtLaTeX(r int64) string { return fmt.Sprintf("\\sqrt{%d}", r) }
