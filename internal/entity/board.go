package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const BoardSize = 3

type Cell uint8

const (
	Empty Cell = iota
	PlayerOne
	PlayerTwo
)

// Opponent returns the other player. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

type Outcome uint8

const (
	Ongoing Outcome = iota
	PlayerOneWin
	PlayerTwoWin
	Tie
)

// WinFor returns the outcome of a game won by player.
func WinFor(player Cell) Outcome {
	switch player {
	case PlayerOne:
		return PlayerOneWin
	case PlayerTwo:
		return PlayerTwoWin
	default:
		return Ongoing
	}
}

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerOneWin:
		return "player one wins"
	case PlayerTwoWin:
		return "player two wins"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Lines lists the 3 rows, 3 columns and 2 diagonals as row-major cell indices.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is indexed board[y][x].
type Board [BoardSize][BoardSize]Cell

// Move is a cell position, X is the column and Y the row.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Move) index() int {
	return that.Y*BoardSize + that.X
}

func moveAt(index int) Move {
	return Move{X: index % BoardSize, Y: index / BoardSize}
}

func (that *Board) at(index int) Cell {
	return that[index/BoardSize][index%BoardSize]
}

// Outcome checks PlayerOne's lines before PlayerTwo's and stops at the first
// complete line. Boards with impossible positions are not rejected.
func (that *Board) Outcome() Outcome {
	for _, player := range [2]Cell{PlayerOne, PlayerTwo} {
		for _, line := range Lines {
			if that.at(line[0]) == player && that.at(line[1]) == player && that.at(line[2]) == player {
				return WinFor(player)
			}
		}
	}

	// the game will continue until all the squares are full
	for i := 0; i < BoardSize*BoardSize; i++ {
		if that.at(i) == Empty {
			return Ongoing
		}
	}

	return Tie
}

// Occupied returns the number of marked cells.
func (that *Board) Occupied() int {
	count := 0
	for i := 0; i < BoardSize*BoardSize; i++ {
		if that.at(i) != Empty {
			count++
		}
	}
	return count
}

// ToMove returns PlayerOne while it has no more marks than PlayerTwo.
func (that *Board) ToMove() Cell {
	ones, twos := 0, 0
	for i := 0; i < BoardSize*BoardSize; i++ {
		switch that.at(i) {
		case PlayerOne:
			ones++
		case PlayerTwo:
			twos++
		}
	}

	if ones <= twos {
		return PlayerOne
	}
	return PlayerTwo
}

// EmptyCells returns the free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for i := 0; i < BoardSize*BoardSize; i++ {
		if that.at(i) == Empty {
			moves = append(moves, moveAt(i))
		}
	}
	return moves
}

// Place puts player's mark on the board.
func (that *Board) Place(move Move, player Cell) error {
	if move.X < 0 || move.X >= BoardSize || move.Y < 0 || move.Y >= BoardSize {
		return fmt.Errorf("%w: x=%d y=%d", apperror.ErrInvalidCell, move.X, move.Y)
	}

	if that[move.Y][move.X] != Empty {
		return fmt.Errorf("%w: x=%d y=%d", apperror.ErrCellOccupied, move.X, move.Y)
	}

	that[move.Y][move.X] = player

	return nil
}
