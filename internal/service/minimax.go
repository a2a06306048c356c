package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type minimaxStrategy struct {
	solver *tictactoe.MinimaxSolver
}

func NewMinimaxStrategy(maxDepth int) Strategy {
	return &minimaxStrategy{solver: tictactoe.NewMinimaxSolver(maxDepth)}
}

func (that *minimaxStrategy) SelectMove(board entity.Board) (entity.Move, error) {
	move, err := that.solver.Select(board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("minimax search failed: %w", err)
	}

	return move, nil
}

func (that *minimaxStrategy) Name() string {
	return "minimax"
}
