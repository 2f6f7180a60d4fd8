package repository

import "errors"

// Sentinel kinds for box-score errors.
var (
	ErrNotFound     = errors.New("player not found")
	ErrInvalidLimit = errors.New("invalid leaderboard limit")
)
