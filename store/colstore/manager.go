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

package colstore

import (
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slices"
)

// Manager is a registry of named tables. It is safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

func NewManager() *Manager {
	return &Manager{tables: make(map[string]*Table)}
}

func (m *Manager) AddTable(name string, table *Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[name]; ok {
		return ErrTableExists.New(name)
	}
	m.tables[name] = table
	return nil
}

func (m *Manager) DropTable(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[name]; !ok {
		return ErrUnknownTable.New(name)
	}
	delete(m.tables, name)
	return nil
}

func (m *Manager) GetTable(name string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	table, ok := m.tables[name]
	if !ok {
		return nil, ErrUnknownTable.New(name)
	}
	return table, nil
}

func (m *Manager) HasTable(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.tables[name]
	return ok
}

func (m *Manager) TableNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Summary writes one line per table: name, column count, row count, chunk
// count.
func (m *Manager) Summary(w io.Writer) {
	for _, name := range m.TableNames() {
		table, err := m.GetTable(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s: %d columns, %s rows, %d chunks\n",
			name, table.ColumnCount(), humanize.Comma(int64(table.RowCount())), table.ChunkCount())
	}
}
