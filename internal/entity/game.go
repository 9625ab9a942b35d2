package entity

import (
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

// Mark is the symbol occupying a cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

const BoardSize = 9

// Line is one of the winning triples of cell indices.
type Line [3]int

// WinCombos is ordered rows, then columns, then diagonals. Evaluate reports
// the first complete line in this order.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is the 3x3 grid in row-major order.
type Board [BoardSize]Mark

// Place puts mark on cell. It fails with apperror.ErrInvalidMove when the cell
// is out of range or occupied, the mark is not a player, or the board is
// already in a terminal outcome. Only the target cell is changed on success.
func (that *Board) Place(cell int, mark Mark) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %w: %q", apperror.ErrInvalidMove, apperror.ErrInvalidMark, mark)
	}

	if Evaluate(*that).IsTerminal() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that *Board) Clear() {
	*that = Board{}
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}
	return count
}

// EmptyCells returns the indices of unoccupied cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// Turn derives the mark due to move from the number of filled cells. X always
// moves first.
func (that Board) Turn() Mark {
	if (BoardSize-that.Count(EmptyCell))%2 == 0 {
		return PlayerX
	}
	return PlayerO
}
