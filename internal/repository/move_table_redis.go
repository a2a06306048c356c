package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const moveTableKeyPrefix = "movetable:"

type redisMoveTable struct {
	client *redis.Client
	key    string
}

// NewMoveTableRedisRepository keeps the whole table in one binary value under movetable:<name>.
func NewMoveTableRedisRepository(client *redis.Client, name string) MoveTableRepository {
	return &redisMoveTable{
		client: client,
		key:    moveTableKeyPrefix + name,
	}
}

func (that *redisMoveTable) Save(ctx context.Context, table *entity.MoveTable) error {
	err := that.client.Set(ctx, that.key, table, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set move table: %w", err)
	}

	return nil
}

func (that *redisMoveTable) Load(ctx context.Context) (*entity.MoveTable, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrMoveTableNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get move table: %w", err)
	}

	table := &entity.MoveTable{}
	if err = table.UnmarshalBinary(response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move table: %w", err)
	}

	return table, nil
}

func (that *redisMoveTable) Delete(ctx context.Context) error {
	deleted, err := that.client.Del(ctx, that.key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move table: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrMoveTableNotFound
	}

	return nil
}
