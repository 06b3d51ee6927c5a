package goquad

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// ============================================================
// MCP Tool Interface
// ============================================================

// maxToolInt bounds integer tool parameters so trial division stays fast.
const maxToolInt = 1 << 42

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func HandleToolCall(req ToolRequest) ToolResponse {
	getNumber := func(key string) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return 0, fmt.Errorf("missing param: %s", key)
		}
		f, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return f, nil
	}
	getInt := func(key string) (int64, error) {
		f, err := getNumber(key)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("param %s must be an integer", key)
		}
		if math.Abs(f) > maxToolInt {
			return 0, fmt.Errorf("param %s exceeds %d", key, int64(maxToolInt))
		}
		return int64(f), nil
	}
	getCoefficients := func() (a, b, c float64, err error) {
		if a, err = getNumber("a"); err != nil {
			return
		}
		if b, err = getNumber("b"); err != nil {
			return
		}
		c, err = getNumber("c")
		return
	}
	errResp := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "solve":
		a, b, c, err := getCoefficients()
		if err != nil {
			return errResp(err)
		}
		sol, err := SolveFloat(a, b, c)
		if err != nil {
			return errResp(err)
		}
		lines := append([]string{sol.FormulaLaTeX()}, sol.RootsLaTeX()...)
		lines = append(lines, sol.VertexLaTeX())
		return ToolResponse{Result: sol, LaTeX: strings.Join(lines, ` \\ `), String: sol.String()}

	case "formula":
		a, b, c, err := getCoefficients()
		if err != nil {
			return errResp(err)
		}
		var ints [3]int64
		for i, f := range [3]float64{a, b, c} {
			if ints[i], err = checkCoefficient(f); err != nil {
				return errResp(fmt.Errorf("coefficient %s: %w", string(rune('a'+i)), err))
			}
		}
		if ints[0] == 0 {
			return errResp(ErrZeroLeading)
		}
		s := Formula(ints[0], ints[1], ints[2])
		return ToolResponse{Result: s, LaTeX: FormulaLaTeX(ints[0], ints[1], ints[2]), String: s}

	case "factorize":
		n, err := getInt("n")
		if err != nil {
			return errResp(err)
		}
		if n < 1 {
			return errResp(fmt.Errorf("param n must be at least 1"))
		}
		pp := Factorize(n)
		return ToolResponse{Result: pp, String: FactorString(pp)}

	case "simplify_sqrt":
		n, err := getInt("n")
		if err != nil {
			return errResp(err)
		}
		if n < 0 {
			return errResp(fmt.Errorf("param n must not be negative"))
		}
		r := SimplifySqrt(n)
		return ToolResponse{Result: r, LaTeX: r.LaTeX(), String: r.String()}

	case "gcd":
		m, err := getInt("m")
		if err != nil {
			return errResp(err)
		}
		n, err := getInt("n")
		if err != nil {
			return errResp(err)
		}
		g := GCD(m, n)
		return ToolResponse{Result: g, String: fmt.Sprint(g)}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec()}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %q", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	coeffs := map[string]string{"a": "integer", "b": "integer", "c": "integer"}
	tools := []map[string]interface{}{
		ts("solve", "Solve a*x²+b*x+c=0 exactly: reduced fractions and simplified radicals, plus the vertex", []string{"a", "b", "c"}, coeffs),
		ts("formula", "Render y = ax² + bx + c in canonical text and LaTeX", []string{"a", "b", "c"}, coeffs),
		ts("factorize", "Prime factorization of n >= 1", []string{"n"}, map[string]string{"n": "integer"}),
		ts("simplify_sqrt", "Split √n into k√r with r square-free", []string{"n"}, map[string]string{"n": "integer"}),
		ts("gcd", "Greatest common divisor of m and n", []string{"m", "n"}, map[string]string{"m": "integer", "n": "integer"}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
