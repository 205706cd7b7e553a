package game

import (
	"errors"
	"fmt"
)

var (
	ErrCellOutOfRange       = errors.New("cell out of range")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
)

// Coordinate locates a cell on the grid. Row 0 is the top row.
type Coordinate struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

func (coord Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Col, coord.Row)
}

func IsValidCell(cell int) bool {
	return cell >= FirstCell && cell <= LastCell
}

// CellToCoordinate lays cells out in serpentine order: cell 1 sits on the
// bottom row and the direction of travel flips on every row.
func CellToCoordinate(cell int) (Coordinate, error) {
	if !IsValidCell(cell) {
		return Coordinate{}, fmt.Errorf("%w: %d", ErrCellOutOfRange, cell)
	}

	idx := cell - 1
	row := BoardSize - 1 - idx/BoardSize
	col := idx % BoardSize
	if row%2 != 0 {
		col = BoardSize - 1 - col
	}
	return Coordinate{Col: col, Row: row}, nil
}

func CoordinateToCell(coord Coordinate) (int, error) {
	if coord.Col < 0 || coord.Col >= BoardSize || coord.Row < 0 || coord.Row >= BoardSize {
		return 0, fmt.Errorf("%w: %v", ErrCoordinateOutOfRange, coord)
	}

	col := coord.Col
	if coord.Row%2 != 0 {
		col = BoardSize - 1 - col
	}
	return (BoardSize-1-coord.Row)*BoardSize + col + 1, nil
}
