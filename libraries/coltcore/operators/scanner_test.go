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

package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colt/go/store/colstore"
	"github.com/dolthub/colt/go/store/types"
)

var allScanTypes = []ScanType{
	OpEquals, OpNotEquals, OpLessThan, OpLessThanEquals, OpGreaterThan, OpGreaterThanEquals,
}

func intValueSegment(t *testing.T, values ...int32) *colstore.ValueSegment[int32] {
	seg := colstore.NewValueSegment[int32]()
	for _, v := range values {
		require.NoError(t, seg.Append(types.Int(v)))
	}
	return seg
}

func offsets(pos colstore.PosList) []colstore.ChunkOffset {
	out := make([]colstore.ChunkOffset, len(pos))
	for i, rowID := range pos {
		out[i] = rowID.ChunkOffset
	}
	return out
}

func TestScanValueSegment(t *testing.T) {
	seg := intValueSegment(t, 10, 20, 30, 40, 50)

	scanner, err := ScannerFor(types.IntKind, OpLessThan)
	require.NoError(t, err)

	pos, err := scanner.Scan(0, seg, types.Int(35))
	require.NoError(t, err)
	assert.Equal(t, colstore.PosList{
		{ChunkID: 0, ChunkOffset: 0},
		{ChunkID: 0, ChunkOffset: 1},
		{ChunkID: 0, ChunkOffset: 2},
	}, pos)
}

func TestScanValueSegmentAllOperators(t *testing.T) {
	seg := intValueSegment(t, 10, 20, 30, 20, 50)

	tests := []struct {
		op       ScanType
		cmp      int32
		expected []colstore.ChunkOffset
	}{
		{OpEquals, 20, []colstore.ChunkOffset{1, 3}},
		{OpNotEquals, 20, []colstore.ChunkOffset{0, 2, 4}},
		{OpLessThan, 20, []colstore.ChunkOffset{0}},
		{OpLessThanEquals, 20, []colstore.ChunkOffset{0, 1, 3}},
		{OpGreaterThan, 20, []colstore.ChunkOffset{2, 4}},
		{OpGreaterThanEquals, 20, []colstore.ChunkOffset{1, 2, 3, 4}},
	}
	for _, test := range tests {
		scanner, err := ScannerFor(types.IntKind, test.op)
		require.NoError(t, err)
		pos, err := scanner.Scan(0, seg, types.Int(test.cmp))
		require.NoError(t, err)
		assert.Equal(t, test.expected, offsets(pos), "operator %s", test.op)
	}
}

// Every operator and comparison value yields the same positions on a value
// segment and on its dictionary-compressed equivalent, including comparison
// values absent from, below and above the stored domain.
func TestScanDictionaryMatchesValueScan(t *testing.T) {
	values := []int32{5, 1, 2, 2, 5, 3, 1, 4, 5, 2}
	seg := intValueSegment(t, values...)
	dictSeg, err := colstore.NewDictionarySegment(seg)
	require.NoError(t, err)

	for _, op := range allScanTypes {
		scanner, err := ScannerFor(types.IntKind, op)
		require.NoError(t, err)
		for cmp := int32(0); cmp <= 6; cmp++ {
			raw, err := scanner.Scan(0, seg, types.Int(cmp))
			require.NoError(t, err)
			compressed, err := scanner.Scan(0, dictSeg, types.Int(cmp))
			require.NoError(t, err)
			assert.Equal(t, raw, compressed, "operator %s, cmp %d", op, cmp)
		}
	}
}

func TestScanDictionaryStrings(t *testing.T) {
	seg := colstore.NewValueSegment[string]()
	for _, s := range []string{"pear", "apple", "fig", "apple"} {
		require.NoError(t, seg.Append(types.String(s)))
	}
	dictSeg, err := colstore.NewDictionarySegment(seg)
	require.NoError(t, err)

	scanner, err := ScannerFor(types.StringKind, OpGreaterThanEquals)
	require.NoError(t, err)
	pos, err := scanner.Scan(3, dictSeg, types.String("fig"))
	require.NoError(t, err)
	assert.Equal(t, colstore.PosList{
		{ChunkID: 3, ChunkOffset: 0},
		{ChunkID: 3, ChunkOffset: 2},
	}, pos)
}

func TestScanDictionaryAbsentComparisonValue(t *testing.T) {
	dictSeg, err := colstore.NewDictionarySegment(intValueSegment(t, 10, 30, 10))
	require.NoError(t, err)

	equals, err := ScannerFor(types.IntKind, OpEquals)
	require.NoError(t, err)
	pos, err := equals.Scan(0, dictSeg, types.Int(20))
	require.NoError(t, err)
	assert.Empty(t, pos)

	notEquals, err := ScannerFor(types.IntKind, OpNotEquals)
	require.NoError(t, err)
	pos, err = notEquals.Scan(0, dictSeg, types.Int(20))
	require.NoError(t, err)
	assert.Len(t, pos, 3)
}

func TestScanReferenceSegment(t *testing.T) {
	table := scanTestTable(t, 2, 1, 2, 3, 4, 5, 6)

	// Positions span three chunks, restricted to a subset of offsets.
	pos := colstore.PosList{
		{ChunkID: 0, ChunkOffset: 1}, // 2
		{ChunkID: 1, ChunkOffset: 0}, // 3
		{ChunkID: 1, ChunkOffset: 1}, // 4
		{ChunkID: 2, ChunkOffset: 1}, // 6
	}
	ref := colstore.NewReferenceSegment(table, 0, pos)

	scanner, err := ScannerFor(types.IntKind, OpGreaterThan)
	require.NoError(t, err)
	out, err := scanner.Scan(9, ref, types.Int(2))
	require.NoError(t, err)

	// Emitted row ids preserve the underlying coordinates, not the outer
	// chunk id.
	assert.Equal(t, colstore.PosList{
		{ChunkID: 1, ChunkOffset: 0},
		{ChunkID: 1, ChunkOffset: 1},
		{ChunkID: 2, ChunkOffset: 1},
	}, out)
}

func TestScanReferenceSegmentOverDictionaryChunks(t *testing.T) {
	table := scanTestTable(t, 2, 1, 2, 3, 4, 5, 6)
	require.NoError(t, table.CompressChunk(0))
	require.NoError(t, table.CompressChunk(1))

	pos := colstore.PosList{
		{ChunkID: 0, ChunkOffset: 0},
		{ChunkID: 0, ChunkOffset: 1},
		{ChunkID: 1, ChunkOffset: 1},
		{ChunkID: 2, ChunkOffset: 0},
	}
	ref := colstore.NewReferenceSegment(table, 0, pos)

	scanner, err := ScannerFor(types.IntKind, OpLessThanEquals)
	require.NoError(t, err)
	out, err := scanner.Scan(0, ref, types.Int(4))
	require.NoError(t, err)
	assert.Equal(t, colstore.PosList{
		{ChunkID: 0, ChunkOffset: 0},
		{ChunkID: 0, ChunkOffset: 1},
		{ChunkID: 1, ChunkOffset: 1},
	}, out)
}

func TestScanUnsortedPositionListStaysCorrect(t *testing.T) {
	table := scanTestTable(t, 2, 1, 2, 3, 4)

	pos := colstore.PosList{
		{ChunkID: 1, ChunkOffset: 0}, // 3
		{ChunkID: 0, ChunkOffset: 0}, // 1
		{ChunkID: 1, ChunkOffset: 1}, // 4
	}
	ref := colstore.NewReferenceSegment(table, 0, pos)

	scanner, err := ScannerFor(types.IntKind, OpGreaterThanEquals)
	require.NoError(t, err)
	out, err := scanner.Scan(0, ref, types.Int(3))
	require.NoError(t, err)

	// Each run degenerates to a singleton; relative order is preserved.
	assert.Equal(t, colstore.PosList{
		{ChunkID: 1, ChunkOffset: 0},
		{ChunkID: 1, ChunkOffset: 1},
	}, out)
}

func TestScannerForRejectsUnknownOperator(t *testing.T) {
	_, err := ScannerFor(types.IntKind, ScanType(42))
	assert.True(t, ErrUnsupportedOperator.Is(err))
}

func TestScanComparisonValueTypeMismatch(t *testing.T) {
	seg := intValueSegment(t, 1, 2, 3)
	scanner, err := ScannerFor(types.IntKind, OpEquals)
	require.NoError(t, err)

	_, err = scanner.Scan(0, seg, types.String("2"))
	assert.True(t, types.ErrTypeMismatch.Is(err))
}

func TestScanWrongSegmentElementType(t *testing.T) {
	strings := colstore.NewValueSegment[string]()
	require.NoError(t, strings.Append(types.String("a")))

	scanner, err := ScannerFor(types.IntKind, OpEquals)
	require.NoError(t, err)
	_, err = scanner.Scan(0, strings, types.Int(1))
	assert.True(t, colstore.ErrUnsupportedSegment.Is(err))
}

func TestScanTypeFromString(t *testing.T) {
	for token, op := range map[string]ScanType{
		"=": OpEquals, "==": OpEquals,
		"!=": OpNotEquals, "<>": OpNotEquals,
		"<": OpLessThan, "<=": OpLessThanEquals,
		">": OpGreaterThan, ">=": OpGreaterThanEquals,
	} {
		got, err := ScanTypeFromString(token)
		require.NoError(t, err)
		assert.Equal(t, op, got, "token %s", token)
	}

	_, err := ScanTypeFromString("~")
	assert.True(t, ErrUnsupportedOperator.Is(err))
}

// scanTestTable builds a single int column "a" chunked at chunkSize.
func scanTestTable(t *testing.T, chunkSize uint32, values ...int32) *colstore.Table {
	table := colstore.NewTable(chunkSize)
	require.NoError(t, table.AddColumn("a", "int"))
	for _, v := range values {
		require.NoError(t, table.Append([]types.Value{types.Int(v)}))
	}
	return table
}
