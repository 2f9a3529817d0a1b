package apperror

import "errors"

// contract violations.
var (
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// domain conflicts.
var (
	ErrCellReserved  = errors.New("cell is already reserved")
	ErrRoundFinished = errors.New("round is already finished")
)

// lookup failures.
var (
	ErrNoMarker                = errors.New("no marker at the given coordinate")
	ErrNoWinner                = errors.New("no winning marker detected")
	ErrUnknownMarkerIdentifier = errors.New("unknown marker identifier")
)

// move source failures.
var (
	ErrMoveCanceled    = errors.New("move canceled")
	ErrTooManyAttempts = errors.New("too many invalid move attempts")
)
