package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type sqliteMoveTable struct {
	db *sql.DB
}

// NewMoveTableSQLiteRepository stores one row per recorded state. The
// move_table schema is created by storage.Storage.Init.
func NewMoveTableSQLiteRepository(db *sql.DB) MoveTableRepository {
	return &sqliteMoveTable{db: db}
}

func (that *sqliteMoveTable) Save(ctx context.Context, table *entity.MoveTable) error {
	tx, err := that.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, `DELETE FROM move_table`); err != nil {
		return fmt.Errorf("can't clear move table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO move_table (state, next) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("can't prepare insert: %w", err)
	}
	defer stmt.Close()

	var insertErr error
	table.Range(func(id, next entity.StateID) {
		if insertErr != nil {
			return
		}
		if _, err := stmt.ExecContext(ctx, int64(id), int64(next)); err != nil {
			insertErr = fmt.Errorf("can't insert state %d: %w", id, err)
		}
	})
	if insertErr != nil {
		return insertErr
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit move table: %w", err)
	}

	return nil
}

func (that *sqliteMoveTable) Load(ctx context.Context) (*entity.MoveTable, error) {
	rows, err := that.db.QueryContext(ctx, `SELECT state, next FROM move_table`)
	if err != nil {
		return nil, fmt.Errorf("can't query move table: %w", err)
	}
	defer rows.Close()

	table := entity.NewMoveTable()
	count := 0
	for rows.Next() {
		var id, next int64
		if err = rows.Scan(&id, &next); err != nil {
			return nil, fmt.Errorf("can't scan move table row: %w", err)
		}

		if id < 0 || id >= entity.StateCount || next <= 0 || next >= entity.StateCount {
			return nil, fmt.Errorf("%w: state %d points to %d", apperror.ErrInvalidMoveTable, id, next)
		}

		table.Set(entity.StateID(id), entity.StateID(next))
		count++
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read move table: %w", err)
	}

	if count == 0 {
		return nil, apperror.ErrMoveTableNotFound
	}

	return table, nil
}

func (that *sqliteMoveTable) Delete(ctx context.Context) error {
	result, err := that.db.ExecContext(ctx, `DELETE FROM move_table`)
	if err != nil {
		return fmt.Errorf("can't delete move table: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't count deleted rows: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrMoveTableNotFound
	}

	return nil
}
