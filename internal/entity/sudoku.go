package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

const SudokuSize = 81

// sudokuPuzzle is the fixed starting grid; zero marks a blank cell.
var sudokuPuzzle = [SudokuSize]int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

// Sudoku is a static board. User entries are stored as typed and never
// checked against the rules.
type Sudoku struct {
	cells [SudokuSize]string
	given [SudokuSize]bool
}

func NewSudoku() *Sudoku {
	sudoku := &Sudoku{}
	for i, value := range sudokuPuzzle {
		if value != 0 {
			sudoku.cells[i] = strconv.Itoa(value)
			sudoku.given[i] = true
		}
	}
	return sudoku
}

// Set stores value in a blank cell. Only the index and the given cells are
// guarded.
func (that *Sudoku) Set(cell int, value string) error {
	if cell < 0 || cell >= SudokuSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.given[cell] {
		return fmt.Errorf("%w: cell %d", apperror.ErrGivenCell, cell)
	}

	that.cells[cell] = value

	return nil
}

// Reset clears every user entry and keeps the puzzle.
func (that *Sudoku) Reset() {
	for i := range that.cells {
		if !that.given[i] {
			that.cells[i] = ""
		}
	}
}

func (that *Sudoku) IsGiven(cell int) bool {
	return cell >= 0 && cell < SudokuSize && that.given[cell]
}

func (that *Sudoku) Cells() [SudokuSize]string {
	return that.cells
}

func (that *Sudoku) Given() [SudokuSize]bool {
	return that.given
}
