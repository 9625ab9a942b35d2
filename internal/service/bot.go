package service

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
)

// BotService picks the opponent's cell. It never places the mark itself.
type BotService interface {
	ChooseMove(board entity.Board) (int, error)
}

type randomBot struct {
	intN func(n int) int
}

// NewBotService returns an opponent that chooses uniformly among the empty
// cells. There is no search and no difficulty setting.
func NewBotService() BotService {
	return &randomBot{intN: rand.IntN} //nolint: gosec // it's ok
}

// NewBotServiceWithSource is NewBotService with a caller-owned source, mainly
// for tests.
func NewBotServiceWithSource(src rand.Source) BotService {
	rnd := rand.New(src) //nolint: gosec // it's ok
	return &randomBot{intN: rnd.IntN}
}

func (that *randomBot) ChooseMove(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()

	switch len(availableCells) {
	case 0:
		return 0, apperror.ErrNoAvailableMoves
	case 1:
		return availableCells[0], nil
	}

	return availableCells[that.intN(len(availableCells))], nil
}
