// SPDX-License-Identifier: MIT

// Package input collects raw matrices and requests for the calculator core.
//
// A request document names the operation, the display mode and the two
// matrices; it may be YAML or TOML:
//
//	operation: mul
//	mode: fraction
//	a: |
//	  1 2
//	  3 4
//	b:
//	  - [a, b]
//	  - ["1/2", 0]
//
// Matrices are never interpreted here: cells stay raw tokens and go to the
// value parser unchanged.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matcalc/calc"
	"github.com/katalvlaran/matcalc/format"
	"github.com/katalvlaran/matcalc/matrix"
)

var (
	// ErrGrid marks a matrix value that is neither a list of rows nor text.
	ErrGrid = errors.New("input: malformed matrix")

	// ErrFormat is returned for a document extension other than yaml/yml/toml.
	ErrFormat = errors.New("input: unsupported document format")
)

// Document is the on-disk shape of a request.
type Document struct {
	Operation string `yaml:"operation" toml:"operation"`
	Mode      string `yaml:"mode" toml:"mode"`
	A         Grid   `yaml:"a" toml:"a"`
	B         Grid   `yaml:"b" toml:"b"`
	RowsA     int    `yaml:"rows_a" toml:"rows_a"`
	ColsA     int    `yaml:"cols_a" toml:"cols_a"`
	RowsB     int    `yaml:"rows_b" toml:"rows_b"`
	ColsB     int    `yaml:"cols_b" toml:"cols_b"`
}

// Request converts d into a calc.Request; empty operation or mode fields
// take their values from base.
func (d Document) Request(base calc.Request) (calc.Request, error) {
	req := base
	if d.Operation != "" {
		op, err := matrix.ParseOperation(d.Operation)
		if err != nil {
			return calc.Request{}, err
		}
		req.Operation = op
	}
	if d.Mode != "" {
		m, err := format.ParseMode(d.Mode)
		if err != nil {
			return calc.Request{}, err
		}
		req.Mode = m
	}
	req.A, req.B = d.A, d.B
	req.RowsA, req.ColsA, req.RowsB, req.ColsB = d.RowsA, d.ColsA, d.RowsB, d.ColsB

	return req, nil
}

// Decode reads a document; ext selects the syntax (".yaml", ".yml", ".toml").
func Decode(data []byte, ext string) (Document, error) {
	var d Document
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return Document{}, fmt.Errorf("input: yaml: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &d)
		if err != nil {
			return Document{}, fmt.Errorf("input: toml: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return Document{}, fmt.Errorf("input: toml: unknown key %q", keys[0].String())
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrFormat, ext)
	}

	return d, nil
}

// LoadRequest reads the request document at path.
func LoadRequest(path string, base calc.Request) (calc.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return calc.Request{}, fmt.Errorf("input: %w", err)
	}
	d, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return calc.Request{}, fmt.Errorf("%s: %w", path, err)
	}

	return d.Request(base)
}
