package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// MoveTableRepository persists the exhaustive solver's move table.
type MoveTableRepository interface {
	Save(ctx context.Context, table *entity.MoveTable) error
	Load(ctx context.Context) (*entity.MoveTable, error)
	Delete(ctx context.Context) error
}
