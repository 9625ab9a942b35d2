package entity

import (
	"testing"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Successful placement", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: player X places a mark on cell 4
		err := board.Place(4, PlayerX)

		// Then: only cell 4 should be occupied
		require.NoError(t, err)
		assert.Equal(t, Board{"", "", "", "", PlayerX, "", "", "", ""}, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is occupied by player X
		board := Board{}
		require.NoError(t, board.Place(0, PlayerX))

		// When: player O tries to place on the same cell
		err := board.Place(0, PlayerO)

		// Then: an invalid move caused by an occupied cell should be returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: the board should remain unchanged
		assert.Equal(t, Board{PlayerX}, board)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// Given: an empty board
			board := Board{}

			// When: an out of range cell index is passed
			err := board.Place(cell, PlayerX)

			// Then: ErrInvalidCell should be returned
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, Board{}, board)
		}
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		board := Board{}

		err := board.Place(0, EmptyCell)

		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Error after the game is won", func(t *testing.T) {
		// Given: a board where X has completed the top row
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: player O tries to place on a free cell
		err := board.Place(5, PlayerO)

		// Then: ErrGameFinished should be returned and the board left alone
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, EmptyCell, board[5])
	})
}

func TestBoard_AlternatingCounts(t *testing.T) {
	// Given: every cell order played with alternating marks
	orders := [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8},
		{4, 0, 8, 2, 6, 1, 7, 3, 5},
		{8, 7, 6, 5, 4, 3, 2, 1, 0},
	}

	for _, order := range orders {
		board := Board{}
		for _, cell := range order {
			if err := board.Place(cell, board.Turn()); err != nil {
				// the game ended early
				break
			}

			// Then: X is never behind O and never more than one ahead
			diff := board.Count(PlayerX) - board.Count(PlayerO)
			assert.GreaterOrEqual(t, diff, 0)
			assert.LessOrEqual(t, diff, 1)
		}
	}
}

func TestBoard_Helpers(t *testing.T) {
	board := Board{PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX}

	assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, board.EmptyCells())
	assert.Equal(t, PlayerO, board.Turn())
	assert.False(t, board.IsFull())

	board.Clear()
	assert.Equal(t, Board{}, board)
	assert.Equal(t, PlayerX, board.Turn())
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestEvaluate(t *testing.T) {
	t.Run("Top row win after alternating play", func(t *testing.T) {
		// Given: moves 0(X), 3(O), 1(X), 4(O), 2(X)
		board := Board{}
		for _, cell := range []int{0, 3, 1, 4, 2} {
			require.NoError(t, board.Place(cell, board.Turn()))
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X should win along [0,1,2]
		require.True(t, outcome.IsWon())
		assert.Equal(t, PlayerX, outcome.Winner)
		assert.Equal(t, &Line{0, 1, 2}, outcome.Line)
	})

	t.Run("Draw on a full board", func(t *testing.T) {
		// Given: X on 0,1,5,6,8 and O on 2,3,4,7
		board := Board{}
		for _, cell := range []int{0, 2, 1, 3, 5, 4, 6, 7, 8} {
			require.NoError(t, board.Place(cell, board.Turn()))
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: it should be a draw
		assert.True(t, outcome.IsDraw())
		assert.Equal(t, EmptyCell, outcome.Winner)
		assert.Nil(t, outcome.Line)
	})

	t.Run("In progress", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		assert.Equal(t, InProgress(), Evaluate(board))
	})

	t.Run("Every line is detected", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board with only the line filled by O
			board := Board{}
			for _, cell := range combo {
				board[cell] = PlayerO
			}

			// When: evaluating the board
			outcome := Evaluate(board)

			// Then: O wins along exactly that line
			require.True(t, outcome.IsWon())
			assert.Equal(t, PlayerO, outcome.Winner)
			assert.Equal(t, combo, *outcome.Line)
		}
	})

	t.Run("First line wins the tie-break", func(t *testing.T) {
		// Given: a hypothetical board with the top row and left column complete
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerX, PlayerO, PlayerO,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the row comes before the column
		assert.Equal(t, Line{0, 1, 2}, *outcome.Line)
	})

	t.Run("Full board with a line is a win", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		outcome := Evaluate(board)

		assert.True(t, outcome.IsWon())
		assert.Equal(t, Line{0, 4, 8}, *outcome.Line)
	})
}
