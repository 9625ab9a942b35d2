package entity

import (
	"testing"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSudoku(t *testing.T) {
	sudoku := NewSudoku()

	cells := sudoku.Cells()
	assert.Equal(t, "5", cells[0])
	assert.Equal(t, "", cells[2])
	assert.Equal(t, "9", cells[80])
	assert.True(t, sudoku.IsGiven(0))
	assert.False(t, sudoku.IsGiven(2))
	assert.False(t, sudoku.IsGiven(-1))
	assert.False(t, sudoku.IsGiven(SudokuSize))

	given := 0
	for _, isGiven := range sudoku.Given() {
		if isGiven {
			given++
		}
	}
	assert.Equal(t, 30, given)
}

func TestSudoku_Set(t *testing.T) {
	t.Run("Accepts any entry in a blank cell", func(t *testing.T) {
		// Given: a fresh board
		sudoku := NewSudoku()

		// When: the user types into blank cells, including a rule-breaking digit
		require.NoError(t, sudoku.Set(2, "5"))
		require.NoError(t, sudoku.Set(3, "x"))

		// Then: the entries are stored as typed
		cells := sudoku.Cells()
		assert.Equal(t, "5", cells[2])
		assert.Equal(t, "x", cells[3])
	})

	t.Run("Rejects given cells", func(t *testing.T) {
		sudoku := NewSudoku()

		err := sudoku.Set(0, "1")

		require.ErrorIs(t, err, apperror.ErrGivenCell)
		assert.Equal(t, "5", sudoku.Cells()[0])
	})

	t.Run("Rejects out of range cells", func(t *testing.T) {
		sudoku := NewSudoku()

		assert.ErrorIs(t, sudoku.Set(-1, "1"), apperror.ErrInvalidCell)
		assert.ErrorIs(t, sudoku.Set(SudokuSize, "1"), apperror.ErrInvalidCell)
	})
}

func TestSudoku_Reset(t *testing.T) {
	// Given: a board with a user entry
	sudoku := NewSudoku()
	require.NoError(t, sudoku.Set(2, "4"))

	// When: resetting
	sudoku.Reset()

	// Then: user entries are cleared and the puzzle stays
	assert.Equal(t, NewSudoku().Cells(), sudoku.Cells())
}
