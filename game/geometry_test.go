package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellToCoordinateCorners(t *testing.T) {
	cases := []struct {
		cell  int
		coord Coordinate
	}{
		{1, Coordinate{Col: 9, Row: 9}},
		{10, Coordinate{Col: 0, Row: 9}},
		{11, Coordinate{Col: 0, Row: 8}},
		{20, Coordinate{Col: 9, Row: 8}},
		{91, Coordinate{Col: 0, Row: 0}},
		{100, Coordinate{Col: 9, Row: 0}},
	}

	for _, tc := range cases {
		coord, err := CellToCoordinate(tc.cell)
		require.NoError(t, err)
		assert.Equal(t, tc.coord, coord, "cell %d", tc.cell)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	seen := make(map[Coordinate]int)

	for cell := FirstCell; cell <= LastCell; cell++ {
		coord, err := CellToCoordinate(cell)
		require.NoError(t, err)

		if other, dup := seen[coord]; dup {
			t.Fatalf("cells %d and %d both map to %v", other, cell, coord)
		}
		seen[coord] = cell

		back, err := CoordinateToCell(coord)
		require.NoError(t, err)
		assert.Equal(t, cell, back)
	}

	assert.Len(t, seen, BoardSize*BoardSize)
}

func TestGeometryOutOfRange(t *testing.T) {
	for _, cell := range []int{-1, 0, 101} {
		_, err := CellToCoordinate(cell)
		assert.ErrorIs(t, err, ErrCellOutOfRange)
	}

	for _, coord := range []Coordinate{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		_, err := CoordinateToCell(coord)
		assert.ErrorIs(t, err, ErrCoordinateOutOfRange)
	}
}
