package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Flags(t *testing.T) {
	code, out, _ := runCLI("-a", "1", "-b", "0", "-c", "-2")
	require.Equal(t, 0, code)
	assert.Equal(t, "y = x² -2\nx' = -√2, x\" = √2\nVertex: (0, -2)\n", out)
}

func TestRun_Positional(t *testing.T) {
	code, out, _ := runCLI("2", "-5", "3")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `x' = 1, x" = 3/2`)
}

func TestRun_DefaultsMissingTerms(t *testing.T) {
	code, out, _ := runCLI("-a", "2")
	require.Equal(t, 0, code)
	assert.Equal(t, "y = 2x²\nx = 0\nVertex: (0, 0)\n", out)
}

func TestRun_LaTeX(t *testing.T) {
	code, out, _ := runCLI("-latex", "1", "2", "1")
	require.Equal(t, 0, code)
	assert.Equal(t, "y = x^{2} + 2x + 1\nx = -1\n\\left( -1, 0 \\right)\n", out)
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runCLI("-json", "-a", "2", "-b", "4", "-c", "5")
	require.Equal(t, 0, code)
	var v map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "none", v["roots"].(map[string]interface{})["kind"])
}

func TestRun_Errors(t *testing.T) {
	code, _, errOut := runCLI("-a", "0", "-b", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "must not be equal to 0")

	code, _, errOut = runCLI("-a", "x")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "must be numbers")

	code, _, _ = runCLI("1", "2")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI("-bogus")
	assert.Equal(t, 2, code)

	code, _, errOut = runCLI()
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "must be numbers")
}
