package telemetry

// Log is an ordered, append-only sequence of events. One simulation session
// owns one Log; it is not safe for concurrent writers. Parallel workers must
// each own a private Log and merge after completion.
type Log struct {
	events []Event
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Push appends an event. It never rejects a well-formed event.
func (l *Log) Push(e Event) {
	l.events = append(l.events, e)
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}

// Events returns the recorded sequence in push order. The returned slice is
// shared with the log; callers must treat it as read-only.
func (l *Log) Events() []Event {
	return l.events
}

// Summary aggregates the shot events of a session.
type Summary struct {
	Shots int
	Makes int
	PAvg  float64
}

// Summary recomputes over the entire log on every call. PAvg is 0 for a log
// with no shot events rather than NaN.
func (l *Log) Summary() Summary {
	var s Summary
	var pSum float64
	for _, e := range l.events {
		switch ev := e.(type) {
		case ShotEvent:
			s.Shots++
			pSum += ev.P
			if ev.Make {
				s.Makes++
			}
		case PassEvent, ReboundEvent, FoulEvent:
			// counted only through Len
		}
	}
	if s.Shots > 0 {
		s.PAvg = pSum / float64(s.Shots)
	}
	return s
}

// Merge concatenates the given logs onto l in argument order. Only valid once
// the source logs have stopped receiving writes; no cross-log ordering is
// implied beyond the order chosen by the caller.
func (l *Log) Merge(others ...*Log) {
	for _, o := range others {
		l.events = append(l.events, o.events...)
	}
}
