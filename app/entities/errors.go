package entities

import "errors"

// Domain errors returned by the reservation core. Everything except a
// storage failure is a deterministic outcome of validation or a business
// rule, so callers can retry after fixing the input.
var (
	ErrPastDate            = errors.New("check-in date is in the past")
	ErrInvalidRange        = errors.New("check-out must be after check-in")
	ErrMissingGuest        = errors.New("guest name is required")
	ErrUnknownRoom         = errors.New("room not found")
	ErrRoomOccupied        = errors.New("room is already booked for the requested dates")
	ErrDuplicateSubmission = errors.New("reservation was already processed")
)
