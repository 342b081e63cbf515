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
	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrArityMismatch is returned when a row's value count differs from the
	// column count of the chunk it is appended to.
	ErrArityMismatch = errors.NewKind("row has %d values, chunk has %d columns")

	// ErrSchemaFrozen is returned by AddColumn once the table contains rows.
	ErrSchemaFrozen = errors.NewKind("cannot add column %s: table already contains rows")

	// ErrImmutableSegment is returned when appending to a segment that is not
	// an ingest-phase value segment.
	ErrImmutableSegment = errors.NewKind("cannot append to immutable %s segment")

	// ErrChunkNotFull is returned by CompressChunk when the target chunk has
	// not reached the table's chunk size.
	ErrChunkNotFull = errors.NewKind("chunk %d holds %d of %d rows, compression requires a full chunk")

	// ErrUnknownColumnName is returned by ColumnIDByName for names the schema
	// does not contain.
	ErrUnknownColumnName = errors.NewKind("unknown column: %s")

	// ErrUnsupportedSegment is returned when a segment variant reaches code
	// that cannot handle it, e.g. compressing an already compressed chunk.
	ErrUnsupportedSegment = errors.NewKind("unsupported segment variant %T")

	// ErrDictionaryTooLarge is returned when a value domain cannot be indexed
	// by any supported attribute vector width.
	ErrDictionaryTooLarge = errors.NewKind("dictionary with %d entries exceeds the maximum attribute vector width")

	// ErrChunkTooLarge is returned by EmplaceChunk when the chunk exceeds the
	// table's chunk size.
	ErrChunkTooLarge = errors.NewKind("chunk with %d rows exceeds the table chunk size %d")

	// ErrColumnCountMismatch is returned by EmplaceChunk when the chunk's
	// column count differs from the table schema.
	ErrColumnCountMismatch = errors.NewKind("chunk has %d columns, table has %d")

	// ErrTableExists is returned by Manager.AddTable for duplicate names.
	ErrTableExists = errors.NewKind("table %s already exists")

	// ErrUnknownTable is returned by Manager lookups for unregistered names.
	ErrUnknownTable = errors.NewKind("unknown table: %s")
)
