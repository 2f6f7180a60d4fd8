// Package telemetry records simulated play events and derives summary
// statistics over a session.
package telemetry

import "github.com/courtside/fastbreak/internal/domain/model"

// Event is a closed set of play outcomes. Implementations are immutable
// value types created once per simulated occurrence; the log owns an event
// exclusively once pushed.
type Event interface {
	isEvent()
}

// ShotEvent records a shot attempt and its resolved outcome.
type ShotEvent struct {
	Player  string
	P       float64
	Make    bool
	Explain model.Explain
}

// PassEvent records a pass attempt and its resolved outcome.
type PassEvent struct {
	Player  string
	P       float64
	OK      bool
	Explain model.Explain
}

// ReboundEvent records who came down with a missed shot.
type ReboundEvent struct {
	Winner  string
	Offense bool
	WSelf   float64
}

// FoulEvent records a foul call.
type FoulEvent struct {
	On       string
	Shooting bool
}

func (ShotEvent) isEvent()    {}
func (PassEvent) isEvent()    {}
func (ReboundEvent) isEvent() {}
func (FoulEvent) isEvent()    {}
