package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
)

const (
	GameTicTacToe = "tic-tac-toe"
	GameSudoku    = "sudoku"
)

var ruleTexts = map[string][]string{
	GameTicTacToe: {
		"Two players take turns marking spaces in a 3×3 grid with X or O.",
		"The player who succeeds in placing three of their marks in a row wins.",
		"The row can be horizontal, vertical, or diagonal.",
	},
	GameSudoku: {
		"Fill the grid so every row, column, and 3×3 box contains digits 1 to 9.",
		"No repeating numbers allowed in any row, column, or box.",
		"Some numbers will be pre-filled to help you start.",
	},
}

// Rules returns a copy of the rule lines for game.
func Rules(game string) ([]string, error) {
	lines, ok := ruleTexts[game]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownGame, game)
	}

	return append([]string(nil), lines...), nil
}

func IsKnownGame(game string) bool {
	_, ok := ruleTexts[game]
	return ok
}

// RevealStep is one word appended to a rule line at offset At from the start
// of the reveal.
type RevealStep struct {
	At   time.Duration
	Line int
	Word string
}

// Typewriter spreads rule lines over time: a new line opens every LineDelay,
// and inside a line a word is appended every WordDelay.
type Typewriter struct {
	LineDelay time.Duration
	WordDelay time.Duration
}

// Schedule lays the reveal out ahead of time, ordered by At. Steps that land
// on the same offset keep line order.
func (that Typewriter) Schedule(lines []string) []RevealStep {
	var steps []RevealStep

	for i, line := range lines {
		start := time.Duration(i) * that.LineDelay
		for w, word := range strings.Fields(line) {
			steps = append(steps, RevealStep{
				At:   start + time.Duration(w+1)*that.WordDelay,
				Line: i,
				Word: word,
			})
		}
	}

	slices.SortStableFunc(steps, func(a, b RevealStep) int {
		return cmp.Compare(a.At, b.At)
	})

	return steps
}
