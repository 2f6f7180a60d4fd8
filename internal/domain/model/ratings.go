// Package model contains domain types passed between layers.
package model

// Ratings holds a player's skill attributes on the configured bounded scale
// (25-99 by default). A scoring call sees a fixed snapshot; callers must not
// mutate a Ratings value while a call is in flight.
type Ratings struct {
	Three       float64 // three-point shooting
	Mid         float64 // mid-range shooting
	Finishing   float64 // finishing at the rim
	Pass        float64 // passing accuracy
	IQ          float64 // basketball IQ / decision making
	Speed       float64 // straight-line speed
	Handle      float64 // ball handling
	OnBallDef   float64 // on-ball defense
	Lateral     float64 // lateral quickness
	Consistency float64 // shot-to-shot consistency
}

// Scale describes the rating population used for standardization.
type Scale struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// DefaultScale is the reference rating population.
func DefaultScale() Scale {
	return Scale{Min: 25, Max: 99, Mean: 50, StdDev: 12}
}

// Z standardizes a raw rating against the population: (r - Mean) / StdDev.
// There is no output clamping; out-of-domain inputs extrapolate linearly.
func (s Scale) Z(rating float64) float64 {
	return (rating - s.Mean) / s.StdDev
}

// Zone identifies which shooting skill a shot attempt draws on.
type Zone string

// Shot zones. Exactly one zone's rating contributes the skill term of a shot.
const (
	ZoneThree Zone = "three"
	ZoneMid   Zone = "mid"
	ZoneRim   Zone = "rim"
)

// SkillFor selects the zone-matching shooting rating.
func (r Ratings) SkillFor(zone Zone) float64 {
	switch zone {
	case ZoneMid:
		return r.Mid
	case ZoneRim:
		return r.Finishing
	default:
		return r.Three
	}
}
