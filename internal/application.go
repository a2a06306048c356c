package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	solver, closeStorage, err := loadSolver(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	seed := conf.Benchmark.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("Starting benchmark", "seed", seed, "games", conf.Benchmark.Games)

	benchmark := usecase.NewBenchmark(logger, rand.New(rand.NewSource(seed)))
	random := service.NewRandomStrategy(rand.New(rand.NewSource(seed + 1)))
	exhaustive := service.NewExhaustiveStrategy(solver)
	randomSides := !conf.Benchmark.FixedSides

	if err = runSuite(ctx, log, benchmark, random, exhaustive, conf.Benchmark.Games, randomSides); err != nil {
		return err
	}

	for depth := conf.Benchmark.MinDepth; depth <= conf.Benchmark.MaxDepth; depth++ {
		minimax := service.NewMinimaxStrategy(depth)
		depthLog := log.With("depth", depth)

		if err = runSuite(ctx, depthLog, benchmark, random, minimax, conf.Benchmark.Games, randomSides); err != nil {
			return err
		}

		// both solvers are deterministic, so a single game per seat is enough
		if err = runSuite(ctx, depthLog, benchmark, exhaustive, minimax, 1, false); err != nil {
			return err
		}

		if err = runSuite(ctx, depthLog, benchmark, minimax, exhaustive, 1, false); err != nil {
			return err
		}
	}

	log.Info("Benchmark finished")

	return nil
}

func runSuite(ctx context.Context, log *slog.Logger, benchmark *usecase.Benchmark, first, second service.Strategy, games int, randomSides bool) error {
	result, err := benchmark.Run(ctx, first, second, games, randomSides)
	if err != nil {
		return fmt.Errorf("%s vs %s: %w", first.Name(), second.Name(), err)
	}

	log.Info("Suite finished",
		"first", result.First,
		"second", result.Second,
		"games", result.Games,
		"wins", result.Wins,
		"losses", result.Losses,
		"ties", result.Ties,
		"first_time", result.FirstTime.String(),
		"second_time", result.SecondTime.String(),
	)

	return nil
}

// loadSolver restores the exhaustive solver from the configured storage,
// building and saving the move table when none is stored yet.
func loadSolver(ctx context.Context, log *slog.Logger, conf *config.Config) (*tictactoe.ExhaustiveSolver, func(), error) {
	repo, closeStorage, err := openMoveTableRepository(ctx, log, conf)
	if err != nil {
		return nil, nil, err
	}

	if repo == nil {
		return buildSolver(log), closeStorage, nil
	}

	table, err := repo.Load(ctx)
	if err == nil {
		log.Info("Move table loaded", "storage", conf.MoveTable.Storage, "entries", table.Len())
		return tictactoe.NewExhaustiveSolverFromTable(table), closeStorage, nil
	}

	if !errors.Is(err, apperror.ErrMoveTableNotFound) {
		closeStorage()
		return nil, nil, fmt.Errorf("could not load move table: %w", err)
	}

	solver := buildSolver(log)
	if err = repo.Save(ctx, solver.Table()); err != nil {
		closeStorage()
		return nil, nil, fmt.Errorf("could not save move table: %w", err)
	}
	log.Info("Move table saved", "storage", conf.MoveTable.Storage)

	return solver, closeStorage, nil
}

func buildSolver(log *slog.Logger) *tictactoe.ExhaustiveSolver {
	start := time.Now()
	solver := tictactoe.NewExhaustiveSolver()
	log.Info("Move table built", "entries", solver.Table().Len(), "duration", time.Since(start).String())

	return solver
}

// openMoveTableRepository returns a nil repository for in-memory storage.
func openMoveTableRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MoveTableRepository, func(), error) {
	switch conf.MoveTable.Storage {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewMoveTableRedisRepository(redisStorage.Connection, conf.MoveTable.Name), closeStorage, nil

	case config.StorageSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.MoveTable.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		closeStorage := func() {
			if err := sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			closeStorage()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewMoveTableSQLiteRepository(sqliteStorage.Connection), closeStorage, nil

	default:
		return nil, func() {}, nil
	}
}
