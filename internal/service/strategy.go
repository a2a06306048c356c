package service

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// Strategy picks a move for the player whose turn it is. Boards passed in
// must still be ongoing.
type Strategy interface {
	SelectMove(board entity.Board) (entity.Move, error)
	Name() string
}
