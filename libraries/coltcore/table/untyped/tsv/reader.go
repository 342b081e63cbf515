// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tsv loads text tables: a tab-separated header of column names, a
// tab-separated header of type names, a "===" separator, then one
// tab-separated row per non-empty line. Strings are unquoted.
package tsv

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dolthub/colt/go/store/colstore"
	"github.com/dolthub/colt/go/store/types"
)

const separator = "==="

// ReadTableFile loads a text table from disk.
func ReadTableFile(path string, chunkSize uint32) (*colstore.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening table file %s", path)
	}
	defer f.Close()
	return ReadTable(f, chunkSize)
}

// ReadTable loads a text table from r, partitioning rows into chunks of
// chunkSize.
func ReadTable(r io.Reader, chunkSize uint32) (*colstore.Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	names, err := readHeader(scanner, "column names")
	if err != nil {
		return nil, err
	}
	typeNames, err := readHeader(scanner, "column types")
	if err != nil {
		return nil, err
	}
	if len(typeNames) != len(names) {
		return nil, errors.Errorf("header mismatch: %d column names but %d types", len(names), len(typeNames))
	}
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != separator {
		return nil, errors.Errorf("expected %q separator after the headers", separator)
	}

	table := colstore.NewTable(chunkSize)
	for i := range names {
		if err := table.AddColumn(names[i], typeNames[i]); err != nil {
			return nil, errors.Wrapf(err, "adding column %s", names[i])
		}
	}

	lineNo := 3
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, "\t")
		if len(cells) != len(names) {
			return nil, errors.Errorf("line %d: %d cells for %d columns", lineNo, len(cells), len(names))
		}

		row := make([]types.Value, len(cells))
		for i, cell := range cells {
			v, err := ParseValue(cell, table.ColumnType(colstore.ColumnID(i)))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %s", lineNo, names[i])
			}
			row[i] = v
		}
		if err := table.Append(row); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading table")
	}
	return table, nil
}

func readHeader(scanner *bufio.Scanner, what string) ([]string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", what)
		}
		return nil, errors.Errorf("missing %s header", what)
	}
	return strings.Split(scanner.Text(), "\t"), nil
}

// ParseValue parses one cell according to the column kind.
func ParseValue(cell string, kind types.Kind) (types.Value, error) {
	switch kind {
	case types.IntKind:
		n, err := strconv.ParseInt(cell, 10, 32)
		if err != nil {
			return types.Value{}, errors.Wrapf(err, "parsing %q as int", cell)
		}
		return types.Int(int32(n)), nil
	case types.LongKind:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return types.Value{}, errors.Wrapf(err, "parsing %q as long", cell)
		}
		return types.Long(n), nil
	case types.FloatKind:
		f, err := strconv.ParseFloat(cell, 32)
		if err != nil {
			return types.Value{}, errors.Wrapf(err, "parsing %q as float", cell)
		}
		return types.Float(float32(f)), nil
	case types.DoubleKind:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return types.Value{}, errors.Wrapf(err, "parsing %q as double", cell)
		}
		return types.Double(f), nil
	case types.StringKind:
		return types.String(cell), nil
	}
	return types.Value{}, types.ErrUnknownTypeName.New(kind)
}
