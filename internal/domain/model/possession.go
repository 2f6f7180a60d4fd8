package model

// Possession is one unit of simulation work: the matchup and situational
// context a worker needs to play out a single trip down the floor.
type Possession struct {
	ID string

	// Ball handler and primary defender.
	Handler         string
	HandlerRatings  Ratings
	Defender        string
	DefenderRatings Ratings

	// Passer feeding the shot, when the play involves a pass.
	Passer        string
	PasserRatings Ratings

	// Pass context.
	LaneRisk float64
	Pressure float64

	// Drive context.
	Lane  float64
	Angle float64

	// Shot context and dribbles between catch and shot.
	Shot     ShotContext
	Dribbles int
}
