package apperror

import "errors"

// ErrInvalidMove is the umbrella for every rejected move. Specific causes are
// wrapped together with it, so callers can match either.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMark  = errors.New("invalid mark")
)

var (
	ErrStaleTimer       = errors.New("stale opponent timer")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGivenCell        = errors.New("cell is part of the puzzle")
	ErrUnknownGame      = errors.New("unknown game")
)

var (
	ErrGameNotSelected = errors.New("game is not selected")
	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidPayload  = errors.New("invalid payload")
)
