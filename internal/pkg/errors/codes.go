package errors

import "net/http"

var (
	ErrDestinationNotFound = New(
		"DESTINATION_NOT_FOUND",
		"Destination not found",
		http.StatusNotFound,
	)

	ErrInvalidFilter = New(
		"INVALID_FILTER",
		"Invalid filter value",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidLayout = New(
		"INVALID_LAYOUT",
		"Invalid page layout",
		http.StatusBadRequest,
	)

	ErrChatSessionNotFound = New(
		"CHAT_SESSION_NOT_FOUND",
		"Chat session not found",
		http.StatusNotFound,
	)

	ErrChatBusy = New(
		"CHAT_BUSY",
		"The guide is still composing a reply",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
