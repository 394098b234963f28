// SPDX-License-Identifier: MIT
package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/internal/input"
	"github.com/katalvlaran/matcalc/matrix"
)

const yamlDoc = `operation: mul
mode: fraction
a: |
  1 2
  3 4
b:
  - [a, b]
  - ["1/2", 0]
rows_a: 2
`

const tomlDoc = `operation = "subtract"
a = "1 2; 3 4"
b = [[5, 6.5], ["a", "b + 1"]]
`

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoadRequest_YAML(t *testing.T) {
	t.Parallel()

	req, err := input.LoadRequest(write(t, "req.yaml", yamlDoc), calc.Request{})
	require.NoError(t, err)
	require.Equal(t, matrix.OpMul, req.Operation)
	require.Equal(t, format.Fraction, req.Mode)
	require.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, req.A)
	require.Equal(t, [][]string{{"a", "b"}, {"1/2", "0"}}, req.B)
	require.Equal(t, 2, req.RowsA)

	res, err := calc.Compute(req)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a + 1", "b"}, {"3a + 2", "3b"}}, res.Cells())
}

func TestLoadRequest_TOML(t *testing.T) {
	t.Parallel()

	base := calc.Request{Mode: format.Letters}
	req, err := input.LoadRequest(write(t, "req.toml", tomlDoc), base)
	require.NoError(t, err)
	require.Equal(t, matrix.OpSub, req.Operation)
	require.Equal(t, format.Letters, req.Mode, "mode falls back to base")
	require.Equal(t, [][]string{{"5", "6.5"}, {"a", "b + 1"}}, req.B)
}

func TestLoadRequest_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, file, body string
		want             error
	}{
		{"bad extension", "req.json", "{}", input.ErrFormat},
		{"bad operation", "req.yaml", "operation: divide\n", matrix.ErrUnknownOperation},
		{"bad mode", "req.toml", "mode = \"roman\"\n", format.ErrUnknownMode},
		{"nested map", "req.yaml", "a:\n  x: 1\n", input.ErrGrid},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := input.LoadRequest(write(t, tc.file, tc.body), calc.Request{})
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := input.LoadRequest(filepath.Join(t.TempDir(), "missing.yaml"), calc.Request{})
	require.Error(t, err)

	_, err = input.Decode([]byte("colour: red\n"), ".yaml")
	require.Error(t, err, "unknown keys are rejected")
	_, err = input.Decode([]byte("colour = \"red\"\n"), ".toml")
	require.ErrorContains(t, err, "colour")
}
