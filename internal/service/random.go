package service

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type randomStrategy struct {
	rnd *rand.Rand
}

// NewRandomStrategy picks uniformly among the empty cells. rnd is not safe for
// concurrent use, so neither is the strategy.
func NewRandomStrategy(rnd *rand.Rand) Strategy {
	return &randomStrategy{rnd: rnd}
}

func (that *randomStrategy) SelectMove(board entity.Board) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}

func (that *randomStrategy) Name() string {
	return "random"
}
