// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	rowSeps  = "\n;"
	cellSep  = ","
	textKind = "text block"
)

// ParseGrid splits a text block into rows of raw tokens.
//
// Rows are separated by newlines or ';'; blank rows are skipped. A row that
// contains ',' is split on commas (so a cell may hold spaces, "a + b"),
// otherwise on whitespace. Tokens are trimmed but not interpreted.
func ParseGrid(text string) [][]string {
	var grid [][]string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return strings.ContainsRune(rowSeps, r) }) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []string
		if strings.Contains(line, cellSep) {
			for _, cell := range strings.Split(line, cellSep) {
				row = append(row, strings.TrimSpace(cell))
			}
		} else {
			row = strings.Fields(line)
		}
		grid = append(grid, row)
	}

	return grid
}

// FormatGrid is the inverse of ParseGrid for display in text inputs.
func FormatGrid(grid [][]string) string {
	lines := make([]string, len(grid))
	for i, row := range grid {
		sep := " "
		for _, cell := range row {
			if strings.ContainsAny(cell, " \t") {
				sep = ", "
				break
			}
		}
		lines[i] = strings.Join(row, sep)
	}

	return strings.Join(lines, "\n")
}

// Grid is a matrix in a request document: either a list of rows or a text
// block understood by ParseGrid.
type Grid [][]string

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Grid) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*g = ParseGrid(node.Value)
		return nil
	case yaml.SequenceNode:
		out := make(Grid, 0, len(node.Content))
		for i, rowNode := range node.Content {
			row, err := yamlRow(rowNode)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			out = append(out, row)
		}
		*g = out
		return nil
	default:
		return fmt.Errorf("input: line %d: %w: want a list of rows or a %s", node.Line, ErrGrid, textKind)
	}
}

func yamlRow(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		// "1 2 3" as one row
		rows := ParseGrid(node.Value)
		if len(rows) != 1 {
			return nil, fmt.Errorf("input: line %d: %w: row text must be one line", node.Line, ErrGrid)
		}
		return rows[0], nil
	case yaml.SequenceNode:
		row := make([]string, len(node.Content))
		for j, cell := range node.Content {
			if cell.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("input: line %d: %w: cell %d is not a scalar", cell.Line, ErrGrid, j)
			}
			row[j] = cell.Value
		}
		return row, nil
	default:
		return nil, fmt.Errorf("input: line %d: %w: row is not a list", node.Line, ErrGrid)
	}
}

// UnmarshalTOML implements toml.Unmarshaler.
func (g *Grid) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*g = ParseGrid(v)
		return nil
	case []any:
		out := make(Grid, 0, len(v))
		for i, r := range v {
			row, err := tomlRow(r)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			out = append(out, row)
		}
		*g = out
		return nil
	default:
		return fmt.Errorf("input: %w: want an array of rows or a %s, got %T", ErrGrid, textKind, data)
	}
}

func tomlRow(data any) ([]string, error) {
	switch v := data.(type) {
	case string:
		rows := ParseGrid(v)
		if len(rows) != 1 {
			return nil, fmt.Errorf("input: %w: row text must be one line", ErrGrid)
		}
		return rows[0], nil
	case []any:
		row := make([]string, len(v))
		for j, cell := range v {
			s, err := tomlCell(cell)
			if err != nil {
				return nil, fmt.Errorf("cell %d: %w", j, err)
			}
			row[j] = s
		}
		return row, nil
	default:
		return nil, fmt.Errorf("input: %w: row is %T", ErrGrid, data)
	}
}

func tomlCell(cell any) (string, error) {
	switch c := cell.(type) {
	case string:
		return c, nil
	case int64:
		return strconv.FormatInt(c, 10), nil
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("input: %w: cell is %T", ErrGrid, cell)
	}
}
