package domain

import "errors"

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
	ErrInvalidCode  = errors.New("invalid room code")
)

// Wire-level error codes for acknowledged operations.
const (
	CodeRoomNotFound  = "ROOM_NOT_FOUND"
	CodeRoomFull      = "ROOM_FULL"
	CodeInvalidCode   = "INVALID_CODE"
	CodeInternalError = "INTERNAL_ERROR"
)

// ErrorCode maps a registry error to its wire code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return CodeRoomNotFound
	case errors.Is(err, ErrRoomFull):
		return CodeRoomFull
	case errors.Is(err, ErrInvalidCode):
		return CodeInvalidCode
	default:
		return CodeInternalError
	}
}
