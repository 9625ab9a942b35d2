package tictactoe

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

type State string

const (
	StateAwaitingHuman    State = "awaiting_human"
	StateAwaitingOpponent State = "awaiting_opponent"
	StateWon              State = "won"
	StateDraw             State = "draw"
)

const (
	HumanMark    = entity.PlayerX
	OpponentMark = entity.PlayerO

	DefaultOpponentDelay = 700 * time.Millisecond
)

const (
	MessageYourTurn = "Your Turn -> X"
	MessageThinking = "Ai (O) thinking..."
	MessageYouWon   = "You won!"
	MessageAiWon    = "Ai (O) won!"
	MessageDraw     = "It's a draw!"
)

const (
	SoundX   = "x"
	SoundO   = "o"
	SoundWin = "win"
)

// Presenter receives every visible change. Calls are made from the goroutine
// driving the controller.
type Presenter interface {
	CellUpdated(cell int, mark entity.Mark)
	MessageChanged(text string)
	BoardLocked(locked bool)
	Reset()
	SoundCue(cue string)
}

// Scheduler runs task once after delay, on the goroutine that drives the
// controller.
type Scheduler interface {
	After(delay time.Duration, task func())
}

type opponent interface {
	ChooseMove(board entity.Board) (int, error)
}

// GameController is the turn state machine of a game against the bot. It is
// not safe for concurrent use; all calls, including scheduled ones, must come
// from one goroutine.
type GameController struct {
	logger    *slog.Logger
	presenter Presenter
	scheduler Scheduler
	opponent  opponent
	delay     time.Duration

	board   entity.Board
	outcome entity.Outcome
	state   State

	// generation changes on every reset, so timers scheduled before it can
	// tell they are stale.
	generation uint64
}

func NewGameController(logger *slog.Logger, presenter Presenter, scheduler Scheduler, opponent opponent, delay time.Duration) *GameController {
	if delay <= 0 {
		delay = DefaultOpponentDelay
	}

	return &GameController{
		logger:    logger.With("component", "tictactoe"),
		presenter: presenter,
		scheduler: scheduler,
		opponent:  opponent,
		delay:     delay,

		outcome: entity.InProgress(),
		state:   StateAwaitingHuman,
	}
}

// HumanMove applies X on cell. A rejected move returns an error wrapping
// apperror.ErrInvalidMove and leaves everything unchanged.
func (that *GameController) HumanMove(cell int) error {
	switch that.state {
	case StateAwaitingHuman:
	case StateAwaitingOpponent:
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrNotYourTurn)
	default:
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrGameFinished)
	}

	if err := that.board.Place(cell, HumanMark); err != nil {
		return err
	}

	that.presenter.CellUpdated(cell, HumanMark)
	that.presenter.SoundCue(SoundX)

	if that.settle() {
		return nil
	}

	that.state = StateAwaitingOpponent
	that.presenter.MessageChanged(MessageThinking)
	that.presenter.BoardLocked(true)

	generation := that.generation
	that.scheduler.After(that.delay, func() {
		that.opponentTurn(generation)
	})

	return nil
}

// Reset is accepted in every state.
func (that *GameController) Reset() {
	that.generation++

	that.board.Clear()
	that.outcome = entity.InProgress()
	that.state = StateAwaitingHuman

	that.presenter.Reset()
	that.presenter.MessageChanged(MessageYourTurn)
	that.presenter.BoardLocked(false)
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

// Message is the text the presenter should currently show.
func (that *GameController) Message() string {
	switch that.state {
	case StateAwaitingOpponent:
		return MessageThinking
	case StateDraw:
		return MessageDraw
	case StateWon:
		if that.outcome.Winner == HumanMark {
			return MessageYouWon
		}
		return MessageAiWon
	default:
		return MessageYourTurn
	}
}

func (that *GameController) IsLocked() bool {
	return that.state != StateAwaitingHuman
}

func (that *GameController) opponentTurn(generation uint64) {
	log := that.logger.With("method", "opponentTurn")

	if generation != that.generation || that.state != StateAwaitingOpponent {
		log.Debug("discarding opponent move", "error", apperror.ErrStaleTimer, "generation", generation)
		return
	}

	cell, err := that.opponent.ChooseMove(that.board)
	if err != nil {
		log.Error("opponent failed to choose a move", "error", err)
		return
	}

	if err = that.board.Place(cell, OpponentMark); err != nil {
		log.Error("opponent made an invalid move", "cell", cell, "error", err)
		return
	}

	that.presenter.CellUpdated(cell, OpponentMark)
	that.presenter.SoundCue(SoundO)

	if that.settle() {
		return
	}

	that.state = StateAwaitingHuman
	that.presenter.MessageChanged(MessageYourTurn)
	that.presenter.BoardLocked(false)
}

// settle re-evaluates the board after a move and reports whether the game is
// over.
func (that *GameController) settle() bool {
	that.outcome = entity.Evaluate(that.board)

	switch {
	case that.outcome.IsWon():
		that.state = StateWon
		that.presenter.MessageChanged(that.Message())
		that.presenter.SoundCue(SoundWin)
		that.presenter.BoardLocked(true)
	case that.outcome.IsDraw():
		that.state = StateDraw
		that.presenter.MessageChanged(MessageDraw)
		that.presenter.BoardLocked(true)
	default:
		return false
	}

	that.logger.Info("game over", "status", that.outcome.Status, "winner", that.outcome.Winner)

	return true
}
