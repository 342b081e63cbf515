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

// Package operators holds the programmatically constructed query operators:
// table sources and the predicate table scan. There is no parser or planner;
// callers wire operators together directly.
package operators

import (
	"context"

	"github.com/dolthub/colt/go/store/colstore"
)

// Operator produces a table. Execute runs the operator once; repeated calls
// are no-ops. Table returns the memoized output; for GetTable and TableScan it
// is nil before Execute, while TableSource returns its wrapped table at once.
type Operator interface {
	Execute(ctx context.Context) error
	Table() *colstore.Table
}

// TableSource wraps an existing table as an operator.
type TableSource struct {
	table *colstore.Table
}

var _ Operator = (*TableSource)(nil)

func NewTableSource(table *colstore.Table) *TableSource {
	return &TableSource{table: table}
}

func (s *TableSource) Execute(context.Context) error {
	return nil
}

func (s *TableSource) Table() *colstore.Table {
	return s.table
}

// GetTable resolves a named table from a manager.
type GetTable struct {
	manager *colstore.Manager
	name    string
	out     *colstore.Table
}

var _ Operator = (*GetTable)(nil)

func NewGetTable(manager *colstore.Manager, name string) *GetTable {
	return &GetTable{manager: manager, name: name}
}

func (g *GetTable) Execute(context.Context) error {
	if g.out != nil {
		return nil
	}
	table, err := g.manager.GetTable(g.name)
	if err != nil {
		return err
	}
	g.out = table
	return nil
}

func (g *GetTable) Table() *colstore.Table {
	return g.out
}
