package apperror

import "errors"

var (
	ErrInvalidCell        = errors.New("invalid cell index")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrInvalidMarker      = errors.New("invalid marker")
	ErrNoAvailableSquares = errors.New("no available squares")
	ErrInputClosed        = errors.New("input is closed")
)
