// Package repository defines the box-score store interface and errors.
package repository

import "context"

// Entry represents one player's session aggregates.
type Entry struct {
	Rank    int
	Player  string
	Shots   int
	Makes   int
	Points  int
	Assists int
	// ExpectedPoints accumulates model probability times shot value, for
	// comparing simulated output against the model's expectation.
	ExpectedPoints float64
}

// Store provides read/write access to per-player session aggregates.
type Store interface {
	// RecordShot folds one resolved shot attempt into the player's line.
	RecordShot(ctx context.Context, player string, p float64, made bool, value int) error

	// RecordAssist credits the passer with an assist.
	RecordAssist(ctx context.Context, player string) error

	// Player returns the aggregates and rank for one player.
	// Returns ErrNotFound if the player has no recorded events.
	Player(ctx context.Context, player string) (Entry, error)

	// TopN returns the top-N entries ordered by points scored desc.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of players tracked.
	Count(ctx context.Context) int
}
