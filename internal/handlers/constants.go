package handlers

const (
	maxBodyBytes = 64 << 10

	ErrInvalidRequest      = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrTooManyRequests     = "Too many requests"
	ErrInternalServerError = "Internal server error"
	ErrWordNotFound        = "Word not found"
	ErrQuizNotFound        = "Quiz not found"
	ErrChapterNotFound     = "Chapter not found"
	ErrUnitNotFound        = "Sticker unit not found"
	ErrNotStarted          = "Nothing started yet"
)
