package game

import "errors"

var (
	ErrEmptyCell          = errors.New("no piece at this position")
	ErrNotYourPiece       = errors.New("not your piece")
	ErrIllegalDestination = errors.New("illegal move")
	ErrEmptyHistory       = errors.New("move history is empty")
	ErrOutOfBounds        = errors.New("position out of bounds")
)
