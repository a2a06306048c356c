package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrInvalidGameCount = errors.New("number of games must be positive")

type strategy interface {
	SelectMove(board entity.Board) (entity.Move, error)
	Name() string
}

// GameResult describes one finished game. Times are indexed by seat:
// 0 for PlayerOne, 1 for PlayerTwo.
type GameResult struct {
	Board   entity.Board
	Outcome entity.Outcome
	Times   [2]time.Duration
}

// Result aggregates a series of games from the first strategy's point of view.
type Result struct {
	First  string
	Second string
	Games  int
	Wins   int
	Losses int
	Ties   int

	// average thinking time per game
	FirstTime  time.Duration
	SecondTime time.Duration
}

type Benchmark struct {
	logger *slog.Logger
	rnd    *rand.Rand
}

// NewBenchmark uses rnd to decide seats when sides are randomized.
func NewBenchmark(logger *slog.Logger, rnd *rand.Rand) *Benchmark {
	return &Benchmark{
		logger: logger.With("component", "benchmark"),
		rnd:    rnd,
	}
}

// Play runs one game from the empty board, playerOne moving first.
func (that *Benchmark) Play(playerOne, playerTwo strategy) (*GameResult, error) {
	seats := [2]strategy{playerOne, playerTwo}

	result := &GameResult{}
	mover := entity.PlayerOne
	for result.Board.Outcome() == entity.Ongoing {
		seat := int(mover) - 1
		current := seats[seat]

		start := time.Now()
		move, err := current.SelectMove(result.Board)
		result.Times[seat] += time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("%s failed to select move: %w", current.Name(), err)
		}

		if err = result.Board.Place(move, mover); err != nil {
			return nil, fmt.Errorf("%s made an invalid move: %w", current.Name(), err)
		}

		mover = mover.Opponent()
	}

	result.Outcome = result.Board.Outcome()

	return result, nil
}

// Run plays games between first and second. With randomSides each game
// flips a coin to decide whether second moves first.
func (that *Benchmark) Run(ctx context.Context, first, second strategy, games int, randomSides bool) (*Result, error) {
	if games <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGameCount, games)
	}

	log := that.logger.With("first", first.Name(), "second", second.Name())

	result := &Result{
		First:  first.Name(),
		Second: second.Name(),
		Games:  games,
	}
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("benchmark interrupted after %d games: %w", i, err)
		}

		swapped := randomSides && that.rnd.Intn(2) == 1

		firstSeat := entity.PlayerOne
		playerOne, playerTwo := first, second
		if swapped {
			firstSeat = entity.PlayerTwo
			playerOne, playerTwo = second, first
		}

		game, err := that.Play(playerOne, playerTwo)
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i, err)
		}

		firstTime, secondTime := game.Times[0], game.Times[1]
		if swapped {
			firstTime, secondTime = secondTime, firstTime
		}
		result.FirstTime += firstTime
		result.SecondTime += secondTime

		switch game.Outcome {
		case entity.WinFor(firstSeat):
			result.Wins++
		case entity.Tie:
			result.Ties++
		default:
			result.Losses++
		}

		log.Debug("game finished", "game", i, "swapped", swapped, "outcome", game.Outcome.String())
	}

	result.FirstTime /= time.Duration(games)
	result.SecondTime /= time.Duration(games)

	return result, nil
}
