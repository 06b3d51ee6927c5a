// Package goquad solves quadratic equations with integer coefficients and
// reports roots and vertex in exact form: reduced fractions and simplified
// radicals, never floating-point approximations.
//
// Design goals:
//   - Pure functions, no shared state, safe for concurrent use
//   - Exact int64 arithmetic on range-checked inputs
//   - One rendering function per root shape (Rational, PureRadical, Composite)
//   - Plain text, LaTeX, JSON and MCP-ready outputs
package goquad

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxCoefficient bounds |a|, |b| and |c|. With this bound the discriminant
// stays well inside int64 and trial division stays cheap.
const MaxCoefficient = 1 << 20

// ============================================================
// Errors
// ============================================================

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotANumber   = fmt.Errorf("%w: \"a\", \"b\" and \"c\" must be numbers", ErrInvalidInput)
	ErrNotInteger   = fmt.Errorf("%w: coefficients must be integers", ErrInvalidInput)
	ErrOutOfRange   = fmt.Errorf("%w: coefficient magnitude exceeds %d", ErrInvalidInput, MaxCoefficient)
	ErrZeroLeading  = fmt.Errorf("%w: \"a\" must not be equal to 0", ErrInvalidInput)
)

// ============================================================
// Integer arithmetic
// ============================================================

// GCD returns the non-negative greatest common divisor of m and n.
// GCD(m, 0) is |m|, so GCD(0, 0) is 0.
func GCD(m, n int64) int64 {
	for n != 0 {
		m, n = n, m%n
	}
	return abs64(m)
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// ============================================================
// Factorizer
// ============================================================

// PrimePower is one prime^exponent factor of an integer.
type PrimePower struct {
	Prime int64 `json:"prime"`
	Exp   int   `json:"exp"`
}

func (p PrimePower) String() string {
	if p.Exp == 1 {
		return strconv.FormatInt(p.Prime, 10)
	}
	return fmt.Sprintf("%d^%d", p.Prime, p.Exp)
}

// Factorize returns the prime factorization of n with primes ascending.
// Factorize(1) is empty and n < 1 yields nil.
func Factorize(n int64) []PrimePower {
	if n < 1 {
		return nil
	}
	factors := []int64{}
	for i := int64(2); n > 1; {
		if i*i > n {
			factors = append(factors, n)
			break
		}
		if n%i == 0 {
			factors = append(factors, i)
			n /= i
			continue
		}
		i++
	}

	out := []PrimePower{}
	for _, f := range factors {
		if last := len(out) - 1; last >= 0 && out[last].Prime == f {
			out[last].Exp++
			continue
		}
		out = append(out, PrimePower{Prime: f, Exp: 1})
	}
	return out
}

// FactorString renders a factorization as "2^3*3*5".
func FactorString(pp []PrimePower) string {
	if len(pp) == 0 {
		return "1"
	}
	parts := make([]string, len(pp))
	for i, p := range pp {
		parts[i] = p.String()
	}
	return strings.Join(parts, "*")
}

// ============================================================
// Radical simplifier
// ============================================================

// Radical is Coeff*√Radicand with Radicand square-free.
type Radical struct {
	Coeff    int64 `json:"coeff"`
	Radicand int64 `json:"radicand"`
}

// SimplifySqrt splits √n into Coeff*√Radicand. It panics on negative n.
func SimplifySqrt(n int64) Radical {
	if n < 0 {
		panic("goquad: square root of negative number")
	}
	if n == 0 {
		return Radical{Coeff: 0, Radicand: 1}
	}
	r := Radical{Coeff: 1, Radicand: 1}
	for _, p := range Factorize(n) {
		for i := 0; i < p.Exp/2; i++ {
			r.Coeff *= p.Prime
		}
		if p.Exp%2 == 1 {
			r.Radicand *= p.Prime
		}
	}
	return r
}

// IsRational reports whether the radical is a plain integer.
func (r Radical) IsRational() bool { return r.Radicand == 1 }

func (r Radical) String() string {
	if r.IsRational() {
		return strconv.FormatInt(r.Coeff, 10)
	}
	return coeffPrefix(r.Coeff) + sqrtText(r.Radicand)
}

func (r Radical) LaTeX() string {
	if r.IsRational() {
		return strconv.FormatInt(r.Coeff, 10)
	}
	return coeffPrefix(r.Coeff) + sqrtLaTeX(r.Radicand)
}

func (r Radical) Float64() float64 { return float64(r.Coeff) * math.Sqrt(float64(r.Radicand)) }

// ============================================================
// Coefficient input
// ============================================================

// ParseCoefficient reads a user-typed coefficient. Surrounding spaces are
// ignored and a decimal comma is accepted; the value must be integral.
func ParseCoefficient(s string) (int64, error) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if s == "" {
		return 0, ErrNotANumber
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if abs64(n) > MaxCoefficient {
			return 0, ErrOutOfRange
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrNotANumber, s)
	}
	return checkCoefficient(f)
}

func checkCoefficient(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	if f != math.Trunc(f) {
		return 0, ErrNotInteger
	}
	if math.Abs(f) > MaxCoefficient {
		return 0, ErrOutOfRange
	}
	return int64(f), nil
}
