package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	lineOfThree = 100
	lineOfTwo   = 10
	lineOther   = 1
)

// MinimaxSolver searches maxDepth plies ahead and scores the frontier with Heuristic.
type MinimaxSolver struct {
	maxDepth int
}

func NewMinimaxSolver(maxDepth int) *MinimaxSolver {
	return &MinimaxSolver{maxDepth: maxDepth}
}

func (that *MinimaxSolver) MaxDepth() int {
	return that.maxDepth
}

// Select returns the move for the player whose turn it is on board.
func (that *MinimaxSolver) Select(board entity.Board) (entity.Move, error) {
	id := entity.Encode(board)

	next, _, found := that.search(id, board.ToMove(), 0)
	if !found {
		return entity.Move{}, fmt.Errorf("%w: state %d is %s", apperror.ErrNoAvailableMoves, id, board.Outcome())
	}

	move, _ := entity.MoveBetween(id, next)

	return move, nil
}

// search returns the chosen successor of id and its value from PlayerOne's
// point of view. PlayerTwo picks by the negated value. Ties keep the first
// successor found.
func (that *MinimaxSolver) search(id entity.StateID, first entity.Cell, depth int) (entity.StateID, int, bool) {
	board := entity.Decode(id)
	value := Heuristic(board)

	if board.Outcome() != entity.Ongoing || depth > that.maxDepth {
		return 0, value, false
	}

	current := first
	if depth%2 == 1 {
		current = first.Opponent()
	}

	var (
		bestState entity.StateID
		bestValue int
		bestScore int
		found     bool
	)
	for _, next := range entity.NextStates(id, current) {
		_, childValue, _ := that.search(next, first, depth+1)

		score := childValue
		if current == entity.PlayerTwo {
			score = -childValue
		}

		if !found || score > bestScore {
			bestState, bestValue, bestScore = next, childValue, score
			found = true
		}
	}

	return bestState, bestValue, found
}

// Heuristic scores board as PlayerOne's line weights minus PlayerTwo's.
func Heuristic(board entity.Board) int {
	total := 0
	for _, player := range [2]entity.Cell{entity.PlayerOne, entity.PlayerTwo} {
		value := 0
		for _, line := range entity.Lines {
			count := 0
			for _, index := range line {
				if board[index/entity.BoardSize][index%entity.BoardSize] == player {
					count++
				}
			}
			value += lineWeight(count)
		}

		if player == entity.PlayerTwo {
			value = -value
		}
		total += value
	}
	return total
}

// lineWeight gives an empty line the same weight as a single mark.
func lineWeight(count int) int {
	switch count {
	case 3:
		return lineOfThree
	case 2:
		return lineOfTwo
	default:
		return lineOther
	}
}
