package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// ExhaustiveSolver answers from a table holding the best successor of every
// state reachable from the empty board.
type ExhaustiveSolver struct {
	table *entity.MoveTable
}

// NewExhaustiveSolver builds the move table by solving the whole game.
func NewExhaustiveSolver() *ExhaustiveSolver {
	b := &tableBuilder{
		table:   entity.NewMoveTable(),
		results: make([]leaf, entity.StateCount),
	}
	b.solve(0, 0)

	return &ExhaustiveSolver{table: b.table}
}

// NewExhaustiveSolverFromTable restores a solver from a previously built table.
func NewExhaustiveSolverFromTable(table *entity.MoveTable) *ExhaustiveSolver {
	return &ExhaustiveSolver{table: table}
}

// Table returns the solver's move table. Callers must not modify it.
func (that *ExhaustiveSolver) Table() *entity.MoveTable {
	return that.table
}

// Next returns the recorded best successor of id.
func (that *ExhaustiveSolver) Next(id entity.StateID) (entity.StateID, error) {
	next, ok := that.table.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d", apperror.ErrMoveNotFound, id)
	}
	return next, nil
}

func (that *ExhaustiveSolver) Lookup(board entity.Board) (entity.Move, error) {
	id := entity.Encode(board)

	next, err := that.Next(id)
	if err != nil {
		return entity.Move{}, err
	}

	move, ok := entity.MoveBetween(id, next)
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: %d records itself", apperror.ErrInvalidMoveTable, id)
	}

	return move, nil
}

// leaf is the end of the line of best play from a state.
type leaf struct {
	depth   int
	outcome entity.Outcome
	done    bool
}

type tableBuilder struct {
	table   *entity.MoveTable
	results []leaf
}

// solve returns the leaf reached from id under best play. A state's depth is
// its mark count, so results are cached by id alone.
func (that *tableBuilder) solve(id entity.StateID, depth int) (int, entity.Outcome) {
	if cached := that.results[id]; cached.done {
		return cached.depth, cached.outcome
	}

	board := entity.Decode(id)
	outcome := board.Outcome()
	if outcome != entity.Ongoing {
		that.results[id] = leaf{depth: depth, outcome: outcome, done: true}
		return depth, outcome
	}

	current := entity.Cell(depth%2 + 1)
	win := entity.WinFor(current)
	loss := entity.WinFor(current.Opponent())

	var (
		best      leaf
		bestState entity.StateID
	)
	for _, next := range entity.NextStates(id, current) {
		childDepth, childOutcome := that.solve(next, depth+1)

		switch {
		case !best.done,
			best.outcome == loss && (childOutcome == entity.Tie || childOutcome == win),
			best.outcome == entity.Tie && childOutcome == win:
			best = leaf{depth: childDepth, outcome: childOutcome, done: true}
			bestState = next
		case best.outcome == childOutcome && childDepth < best.depth:
			// same result, reached sooner
			best.depth = childDepth
			bestState = next
		}
	}

	that.table.Set(id, bestState)
	that.results[id] = best

	return best.depth, best.outcome
}
