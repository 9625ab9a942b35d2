package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/internal/eventloop"
	"github.com/rocketscienceinc/arcade-backend/internal/tictactoe"
)

// session is one page. Everything except reading frames happens on its
// loop goroutine, which is also the only writer to conn.
type session struct {
	id      string
	logger  *slog.Logger
	conn    *websocket.Conn
	loop    *eventloop.Loop
	options Options

	controller *tictactoe.GameController
	sudoku     *entity.Sudoku
	activeGame string

	// revealGeneration invalidates pending rule words when the view changes.
	revealGeneration uint64

	handlers map[string]func(payload json.RawMessage) error
}

var _ tictactoe.Presenter = (*session)(nil)

func newSession(id string, logger *slog.Logger, conn *websocket.Conn, options Options) *session {
	sess := &session{
		id:      id,
		logger:  logger.With("component", "session", "session", id),
		conn:    conn,
		loop:    eventloop.New(loopBuffer),
		options: options,
		sudoku:  entity.NewSudoku(),
	}

	sess.controller = tictactoe.NewGameController(sess.logger, sess, sess.loop, options.NewBot(), options.OpponentDelay)

	sess.handlers = map[string]func(json.RawMessage) error{
		ActionGameSelect:  sess.handleGameSelect,
		ActionCellClick:   sess.handleCellClick,
		ActionGameReset:   sess.handleGameReset,
		ActionRulesShow:   sess.handleRulesShow,
		ActionSudokuInput: sess.handleSudokuInput,
		ActionSudokuReset: sess.handleSudokuReset,
	}

	return sess
}

func (that *session) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		if err := that.loop.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	errg.Go(func() error {
		<-ctx.Done()
		_ = that.conn.Close()
		return nil
	})

	errg.Go(func() error {
		defer cancel()
		return that.readMessages(ctx)
	})

	that.loop.Post(func() {
		that.send(ActionHello, HelloPayload{Session: that.id, Sounds: that.options.Sounds})
	})

	return errg.Wait()
}

// readMessages decodes frames and hands them to the loop. It returns nil on a
// normal close.
func (that *session) readMessages(ctx context.Context) error {
	log := that.logger.With("method", "readMessages")

	that.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || !websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.loop.Post(func() {
				that.sendError("", fmt.Errorf("%w: %w", errInvalidMessage, err))
			})
			continue
		}

		that.loop.Post(func() {
			that.dispatch(&message)
		})
	}
}

var errInvalidMessage = errors.New("invalid message")

func (that *session) send(action string, payload any) {
	log := that.logger.With("method", "send", "action", action)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "error", err)
		return
	}

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Debug("failed to set write deadline", "error", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		log.Error("failed to write message", "error", err)
		_ = that.conn.Close()
	}
}

func (that *session) sendError(action string, err error) {
	that.send(ActionError, ErrorPayload{Action: action, Error: err.Error()})
}

// CellUpdated implements [tictactoe.Presenter].
func (that *session) CellUpdated(cell int, mark entity.Mark) {
	that.send(ActionCellUpdate, CellUpdatePayload{Cell: cell, Mark: mark})
}

// MessageChanged implements [tictactoe.Presenter].
func (that *session) MessageChanged(text string) {
	that.send(ActionMessage, TextPayload{Text: text})
}

// BoardLocked implements [tictactoe.Presenter].
func (that *session) BoardLocked(locked bool) {
	that.send(ActionBoardLock, LockPayload{Locked: locked})
}

// Reset implements [tictactoe.Presenter].
func (that *session) Reset() {
	that.send(ActionBoardReset, struct{}{})
}

// SoundCue implements [tictactoe.Presenter].
func (that *session) SoundCue(cue string) {
	that.send(ActionSound, SoundPayload{Cue: cue})
}
