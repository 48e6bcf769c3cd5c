package services

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")

	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthEmailRequired      = errors.New("email is required")
	ErrAuthPasswordTooShort   = errors.New("password must be at least 8 characters")

	ErrPlayerNameRequired = errors.New("player name is required")
	ErrPlayerDOBInvalid   = errors.New("player date of birth is invalid")

	ErrMatchesEmpty        = errors.New("at least one match is required")
	ErrMatchDateInvalid    = errors.New("match date is invalid")
	ErrMatchDateInFuture   = errors.New("match date cannot be in the future")
	ErrMatchPlayersInvalid = errors.New("each match needs four distinct players")
	ErrMatchPlayerUnknown  = errors.New("match references an unknown player")
	ErrMatchScoreInvalid   = errors.New("one team must score exactly 4 and the other fewer")

	ErrUploaderNotConfigured    = errors.New("file storage is not configured")
	ErrUnsupportedFileType      = errors.New("unsupported file type")
	ErrSuggestionsNotConfigured = errors.New("team suggestions are not configured")
	ErrNotEnoughPlayers         = errors.New("at least four attending players are required")
)
