package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/service"
)

// dispatch runs on the loop goroutine.
func (that *session) dispatch(message *Message) {
	log := that.logger.With("method", "dispatch", "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown action")
		that.sendError(message.Action, fmt.Errorf("%w: %s", apperror.ErrUnknownAction, message.Action))
		return
	}

	if err := handler(message.Payload); err != nil {
		log.Debug("failed to process message", "error", err)
		that.sendError(message.Action, err)
	}
}

func decodePayload(payload json.RawMessage, target any) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: payload is required", apperror.ErrInvalidPayload)
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return nil
}

// handleGameSelect shows a game and starts it from scratch, like switching
// tabs on the page.
func (that *session) handleGameSelect(payload json.RawMessage) error {
	var req GamePayload
	if err := decodePayload(payload, &req); err != nil {
		return err
	}

	if !service.IsKnownGame(req.Name) {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGame, req.Name)
	}

	that.revealGeneration++
	that.activeGame = req.Name
	that.send(ActionGameShow, GamePayload{Name: req.Name})

	switch req.Name {
	case service.GameTicTacToe:
		that.controller.Reset()
	case service.GameSudoku:
		that.sudoku.Reset()
		that.sendSudokuBoard()
	}

	that.logger.Info("game selected", "game", req.Name)

	return nil
}

// handleCellClick answers a rejected move with move:rejected instead of an
// error; a click on a taken cell is a no-op for the page.
func (that *session) handleCellClick(payload json.RawMessage) error {
	var req CellPayload
	if err := decodePayload(payload, &req); err != nil {
		return err
	}

	if that.activeGame != service.GameTicTacToe {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotSelected, service.GameTicTacToe)
	}

	if err := that.controller.HumanMove(req.Cell); err != nil {
		if !errors.Is(err, apperror.ErrInvalidMove) {
			return err
		}

		that.send(ActionMoveRejected, MoveRejectedPayload{Cell: req.Cell, Error: err.Error()})
	}

	return nil
}

func (that *session) handleGameReset(_ json.RawMessage) error {
	if that.activeGame != service.GameTicTacToe {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotSelected, service.GameTicTacToe)
	}

	that.controller.Reset()

	return nil
}

// handleRulesShow hides the active game and types the rules out word by word.
func (that *session) handleRulesShow(payload json.RawMessage) error {
	var req GamePayload
	if err := decodePayload(payload, &req); err != nil {
		return err
	}

	lines, err := service.Rules(req.Name)
	if err != nil {
		return err
	}

	that.revealGeneration++
	that.activeGame = ""
	that.send(ActionRulesClear, RulesClearPayload{Name: req.Name, Lines: len(lines)})

	generation := that.revealGeneration
	for _, step := range that.options.Typewriter.Schedule(lines) {
		that.loop.After(step.At, func() {
			if generation != that.revealGeneration {
				return
			}
			that.send(ActionRulesWord, RulesWordPayload{Line: step.Line, Word: step.Word})
		})
	}

	return nil
}

func (that *session) handleSudokuInput(payload json.RawMessage) error {
	var req SudokuInputPayload
	if err := decodePayload(payload, &req); err != nil {
		return err
	}

	if that.activeGame != service.GameSudoku {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotSelected, service.GameSudoku)
	}

	if err := that.sudoku.Set(req.Cell, req.Value); err != nil {
		return fmt.Errorf("failed to set sudoku cell: %w", err)
	}

	return nil
}

func (that *session) handleSudokuReset(_ json.RawMessage) error {
	if that.activeGame != service.GameSudoku {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotSelected, service.GameSudoku)
	}

	that.sudoku.Reset()
	that.sendSudokuBoard()

	return nil
}

func (that *session) sendSudokuBoard() {
	that.send(ActionSudokuBoard, SudokuBoardPayload{
		Cells: that.sudoku.Cells(),
		Given: that.sudoku.Given(),
	})
}
