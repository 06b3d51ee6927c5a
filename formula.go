package goquad

import (
	"fmt"
	"strings"
)

// ============================================================
// Formula formatter
// ============================================================

// Formula renders "y = ax² +bx +c". Coefficients of ±1 print as their sign
// and zero terms are dropped.
func Formula(a, b, c int64) string {
	parts := []string{"y =", coeffPrefix(a) + "x²"}
	if b != 0 {
		parts = append(parts, signedCoeff(b)+"x")
	}
	if c != 0 {
		parts = append(parts, fmt.Sprintf("%+d", c))
	}
	return strings.Join(parts, " ")
}

// FormulaLaTeX renders the same equation as LaTeX with spaced operators.
func FormulaLaTeX(a, b, c int64) string {
	var sb strings.Builder
	sb.WriteString("y = " + coeffPrefix(a) + "x^{2}")
	if b != 0 {
		sb.WriteString(" " + opText(b) + " " + coeffPrefix(abs64(b)) + "x")
	}
	if c != 0 {
		sb.WriteString(fmt.Sprintf(" %s %d", opText(c), abs64(c)))
	}
	return sb.String()
}

// signedCoeff is coeffPrefix with an explicit plus sign.
func signedCoeff(k int64) string {
	if k > 0 {
		return "+" + coeffPrefix(k)
	}
	return coeffPrefix(k)
}

func opText(k int64) string {
	if k < 0 {
		return "-"
	}
	return "+"
}
