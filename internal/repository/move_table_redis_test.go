package repository

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *entity.MoveTable {
	table := entity.NewMoveTable()
	table.Set(0, 256)
	table.Set(256|1<<1, 256|1<<1|1<<16)
	return table
}

func TestMoveTableRedisRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	tableRepo := NewMoveTableRedisRepository(st.Redis, "exhaustive")

	// When: Save is called
	err := tableRepo.Save(ctx, sampleTable())

	// Then: no error should be returned, and the table is stored
	require.NoError(t, err)

	exists, err := st.Redis.Exists(ctx, "movetable:exhaustive").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestMoveTableRedisRepository_Load(t *testing.T) {
	t.Run("Load_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		tableRepo := NewMoveTableRedisRepository(st.Redis, "exhaustive")

		// Given: a fully built table saved in Redis
		solver := tictactoe.NewExhaustiveSolver()
		require.NoError(t, tableRepo.Save(ctx, solver.Table()))

		// When: Load is called
		loaded, err := tableRepo.Load(ctx)

		// Then: the loaded table matches entry for entry
		require.NoError(t, err)
		assert.Equal(t, solver.Table().Len(), loaded.Len())
		solver.Table().Range(func(id, next entity.StateID) {
			got, ok := loaded.Get(id)
			require.True(t, ok)
			require.Equal(t, next, got)
		})
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		tableRepo := NewMoveTableRedisRepository(st.Redis, "missing")

		// When: Load is called on an empty database
		loaded, err := tableRepo.Load(ctx)

		// Then: an ErrMoveTableNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrMoveTableNotFound)
		assert.Nil(t, loaded)
	})

	t.Run("Load_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		tableRepo := NewMoveTableRedisRepository(st.Redis, "exhaustive")

		// Given: a value that is not a move table
		require.NoError(t, st.Redis.Set(ctx, "movetable:exhaustive", "garbage", 0).Err())

		// When: Load is called
		_, err := tableRepo.Load(ctx)

		// Then: ErrInvalidMoveTable is reported
		require.ErrorIs(t, err, apperror.ErrInvalidMoveTable)
	})
}

func TestMoveTableRedisRepository_Delete(t *testing.T) {
	t.Run("Delete_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		tableRepo := NewMoveTableRedisRepository(st.Redis, "exhaustive")
		require.NoError(t, tableRepo.Save(ctx, sampleTable()))

		// When: Delete is called
		err := tableRepo.Delete(ctx)

		// Then: the table is gone
		require.NoError(t, err)

		_, err = tableRepo.Load(ctx)
		require.ErrorIs(t, err, apperror.ErrMoveTableNotFound)
	})

	t.Run("Delete_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		tableRepo := NewMoveTableRedisRepository(st.Redis, "exhaustive")

		// When: Delete is called with nothing stored
		err := tableRepo.Delete(ctx)

		// Then: an ErrMoveTableNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrMoveTableNotFound)
	})
}
