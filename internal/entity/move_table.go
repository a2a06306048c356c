package entity

import (
	"encoding/binary"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// noMove marks an absent entry. The empty board is never a successor, so 0 is free.
const noMove StateID = 0

const entrySize = 4

// MoveTable maps a state to its best successor state.
type MoveTable struct {
	next []StateID
}

func NewMoveTable() *MoveTable {
	return &MoveTable{next: make([]StateID, StateCount)}
}

func (that *MoveTable) Get(id StateID) (StateID, bool) {
	if int(id) >= len(that.next) {
		return noMove, false
	}

	next := that.next[id]
	return next, next != noMove
}

func (that *MoveTable) Set(id, next StateID) {
	that.next[id] = next
}

// Len returns the number of recorded entries.
func (that *MoveTable) Len() int {
	count := 0
	for _, next := range that.next {
		if next != noMove {
			count++
		}
	}
	return count
}

// Range calls fn for every recorded entry in ascending state order.
func (that *MoveTable) Range(fn func(id, next StateID)) {
	for id, next := range that.next {
		if next != noMove {
			fn(StateID(id), next)
		}
	}
}

// MarshalBinary writes one little-endian uint32 per state.
func (that *MoveTable) MarshalBinary() ([]byte, error) {
	data := make([]byte, StateCount*entrySize)
	for id, next := range that.next {
		binary.LittleEndian.PutUint32(data[id*entrySize:], uint32(next))
	}
	return data, nil
}

func (that *MoveTable) UnmarshalBinary(data []byte) error {
	if len(data) != StateCount*entrySize {
		return fmt.Errorf("%w: payload is %d bytes, want %d", apperror.ErrInvalidMoveTable, len(data), StateCount*entrySize)
	}

	next := make([]StateID, StateCount)
	for id := range next {
		value := StateID(binary.LittleEndian.Uint32(data[id*entrySize:]))
		if value >= StateCount {
			return fmt.Errorf("%w: state %d points to %d", apperror.ErrInvalidMoveTable, id, value)
		}
		next[id] = value
	}

	that.next = next

	return nil
}
