package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/arcade-backend/internal/config"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

// Actions sent by the page.
const (
	ActionGameSelect  = "game:select"
	ActionCellClick   = "cell:click"
	ActionGameReset   = "game:reset"
	ActionRulesShow   = "rules:show"
	ActionSudokuInput = "sudoku:input"
	ActionSudokuReset = "sudoku:reset"
)

// Actions sent to the page.
const (
	ActionHello        = "hello"
	ActionGameShow     = "game:show"
	ActionCellUpdate   = "cell:update"
	ActionMessage      = "message"
	ActionBoardLock    = "board:lock"
	ActionBoardReset   = "board:reset"
	ActionSound        = "sound"
	ActionMoveRejected = "move:rejected"
	ActionSudokuBoard  = "sudoku:board"
	ActionRulesClear   = "rules:clear"
	ActionRulesWord    = "rules:word"
	ActionError        = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type GamePayload struct {
	Name string `json:"name"`
}

type CellPayload struct {
	Cell int `json:"cell"`
}

type SudokuInputPayload struct {
	Cell  int    `json:"cell"`
	Value string `json:"value"`
}

type HelloPayload struct {
	Session string        `json:"session"`
	Sounds  config.Sounds `json:"sounds"`
}

type CellUpdatePayload struct {
	Cell int         `json:"cell"`
	Mark entity.Mark `json:"mark"`
}

type TextPayload struct {
	Text string `json:"text"`
}

type LockPayload struct {
	Locked bool `json:"locked"`
}

type SoundPayload struct {
	Cue string `json:"cue"`
}

type MoveRejectedPayload struct {
	Cell  int    `json:"cell"`
	Error string `json:"error"`
}

type SudokuBoardPayload struct {
	Cells [entity.SudokuSize]string `json:"cells"`
	Given [entity.SudokuSize]bool   `json:"given"`
}

type RulesClearPayload struct {
	Name  string `json:"name"`
	Lines int    `json:"lines"`
}

type RulesWordPayload struct {
	Line int    `json:"line"`
	Word string `json:"word"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Error  string `json:"error"`
}
