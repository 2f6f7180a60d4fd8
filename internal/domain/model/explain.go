package model

// Term is one additive contribution to a score.
type Term struct {
	Label string
	Value float64
}

// Explain is the audit decomposition of a single scoring call.
//
// Score is always the sum of Terms values. P is Logistic(Score + Noise);
// Noise is zero for every event family except shots, where it carries the
// clamped amplitude derived from the shooter's consistency. Downstream logic
// must consume only P; the decomposition exists for observability.
type Explain struct {
	Terms []Term
	Score float64
	Noise float64
	P     float64
}

// ShotContext carries the situational scalars of a shot attempt.
type ShotContext struct {
	Zone    Zone    // which shooting skill applies
	Quality float64 // shot quality, bounded unit range
	Contest float64 // defender pressure
	Fatigue float64 // shooter fatigue
	Clutch  float64 // late-game pressure modifier
	Release float64 // release-quality modifier
}
