package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type exhaustiveStrategy struct {
	solver *tictactoe.ExhaustiveSolver
}

func NewExhaustiveStrategy(solver *tictactoe.ExhaustiveSolver) Strategy {
	return &exhaustiveStrategy{solver: solver}
}

func (that *exhaustiveStrategy) SelectMove(board entity.Board) (entity.Move, error) {
	move, err := that.solver.Lookup(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("exhaustive lookup failed: %w", err)
	}

	return move, nil
}

func (that *exhaustiveStrategy) Name() string {
	return "exhaustive"
}
