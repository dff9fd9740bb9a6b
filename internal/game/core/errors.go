package core

import "errors"

var (
	ErrCellOutOfRange = errors.New("cell index out of range")
	ErrCellOccupied   = errors.New("cell already occupied")
	ErrInvalidMark    = errors.New("invalid mark")
	ErrIllegalMove    = errors.New("illegal move")
	ErrNoLegalMove    = errors.New("no legal move available")
	ErrDuplicateMarks = errors.New("seats share the same mark")
	ErrBoardNotEmpty  = errors.New("board is not empty")
	ErrMatchOver      = errors.New("match is over")
)
