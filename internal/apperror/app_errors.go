package apperror

import "errors"

var (
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrMoveNotFound      = errors.New("move table has no entry for state")
	ErrMoveTableNotFound = errors.New("move table not found")
	ErrInvalidMoveTable  = errors.New("invalid move table")
)
