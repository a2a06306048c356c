package entity

// StateID packs a Board into 18 bits: two bits per cell in row-major order,
// the low one for PlayerOne and the high one for PlayerTwo.
type StateID uint32

const (
	bitsPerCell = 2
	cellMask    = 0b11

	// StateCount is the size of the StateID space.
	StateCount = 1 << (bitsPerCell * BoardSize * BoardSize)
)

func Encode(board Board) StateID {
	var id StateID
	for i := 0; i < BoardSize*BoardSize; i++ {
		switch board.at(i) {
		case PlayerOne:
			id |= 1 << (i * bitsPerCell)
		case PlayerTwo:
			id |= 2 << (i * bitsPerCell)
		}
	}
	return id
}

// Decode reads the PlayerTwo bit last, so a cell with both bits set decodes as PlayerTwo.
func Decode(id StateID) Board {
	var board Board
	for i := 0; i < BoardSize*BoardSize; i++ {
		bits := (id >> (i * bitsPerCell)) & cellMask
		if bits&1 != 0 {
			board[i/BoardSize][i%BoardSize] = PlayerOne
		}
		if bits&2 != 0 {
			board[i/BoardSize][i%BoardSize] = PlayerTwo
		}
	}
	return board
}

// NextStates lists the states reachable by one move of player, in row-major
// order of the cell played.
func NextStates(id StateID, player Cell) []StateID {
	states := make([]StateID, 0, BoardSize*BoardSize)
	for i := 0; i < BoardSize*BoardSize; i++ {
		shift := i * bitsPerCell
		if id&(cellMask<<shift) != 0 {
			continue
		}
		states = append(states, id|StateID(player)<<shift)
	}
	return states
}

// MoveBetween returns the first cell that differs between two states.
func MoveBetween(from, to StateID) (Move, bool) {
	diff := from ^ to
	for i := 0; i < BoardSize*BoardSize; i++ {
		if diff&(cellMask<<(i*bitsPerCell)) != 0 {
			return moveAt(i), true
		}
	}
	return Move{}, false
}
