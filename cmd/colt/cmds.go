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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dolthub/colt/go/libraries/coltcore/operators"
	"github.com/dolthub/colt/go/libraries/coltcore/table/untyped/tsv"
	"github.com/dolthub/colt/go/store/colstore"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "describe table-file",
		Short: "Load a text table and print its schema and storage layout",
		Args:  cobra.ExactArgs(1),
		RunE:  describe}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "scan table-file column op value",
		Short: "Load a text table and print the rows matching the predicate",
		Args:  cobra.ExactArgs(4),
		RunE:  scan}
	cmd.Flags().Bool("compress", false, "dictionary-compress full chunks before scanning")
	root.AddCommand(cmd)
}

func describe(cmd *cobra.Command, args []string) error {
	table, err := tsv.ReadTableFile(args[0], activeConfig.ChunkSize)
	if err != nil {
		return err
	}

	manager := colstore.NewManager()
	if err := manager.AddTable(tableName(args[0]), table); err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Println(strings.Join(table.ColumnNames(), "\t"))
	typeNames := make([]string, table.ColumnCount())
	for col := range typeNames {
		typeNames[col] = table.ColumnType(colstore.ColumnID(col)).String()
	}
	fmt.Println(strings.Join(typeNames, "\t"))
	fmt.Printf("%s rows in %d chunks of up to %s rows\n",
		humanize.Comma(int64(table.RowCount())), table.ChunkCount(), humanize.Comma(int64(table.ChunkSize())))
	manager.Summary(os.Stdout)
	return nil
}

func scan(cmd *cobra.Command, args []string) error {
	table, err := tsv.ReadTableFile(args[0], activeConfig.ChunkSize)
	if err != nil {
		return err
	}
	if compress, _ := cmd.Flags().GetBool("compress"); compress {
		if err := table.CompressAll(cmd.Context()); err != nil {
			return err
		}
	}

	columnID, err := table.ColumnIDByName(args[1])
	if err != nil {
		return err
	}
	scanType, err := operators.ScanTypeFromString(args[2])
	if err != nil {
		return err
	}
	searchValue, err := tsv.ParseValue(args[3], table.ColumnType(columnID))
	if err != nil {
		return errors.Wrapf(err, "search value %q", args[3])
	}

	ts := operators.NewTableScan(operators.NewTableSource(table), columnID, scanType, searchValue)
	if err := ts.Execute(cmd.Context()); err != nil {
		return err
	}
	out := ts.Table()

	header := color.New(color.FgCyan, color.Bold)
	header.Println(strings.Join(out.ColumnNames(), "\t"))
	for id := 0; id < out.ChunkCount(); id++ {
		chunk := out.GetChunk(colstore.ChunkID(id))
		for row := 0; row < chunk.Size(); row++ {
			cells := make([]string, chunk.ColumnCount())
			for col := range cells {
				cells[col] = chunk.GetSegment(colstore.ColumnID(col)).At(row).String()
			}
			fmt.Println(strings.Join(cells, "\t"))
		}
	}
	fmt.Printf("%s of %s rows matched\n",
		humanize.Comma(int64(out.RowCount())), humanize.Comma(int64(table.RowCount())))
	return nil
}

func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
