package scoring

// ShotParams holds the weight coefficients of the shot score.
type ShotParams struct {
	Skill   float64 `koanf:"skill"`
	Quality float64 `koanf:"quality"`
	Contest float64 `koanf:"contest"`
	Fatigue float64 `koanf:"fatigue"`
	Clutch  float64 `koanf:"clutch"`
	Release float64 `koanf:"release"`
	Noise   float64 `koanf:"noise"`
}

// PassParams holds the weight coefficients of the pass-completion score.
// LaneRisk and Pressure are expected to be negative.
type PassParams struct {
	Skill    float64 `koanf:"skill"`
	IQ       float64 `koanf:"iq"`
	LaneRisk float64 `koanf:"lane_risk"`
	Pressure float64 `koanf:"pressure"`
}

// DriveParams holds the weight coefficients of the blow-by score. Base is a
// fixed offset and may be negative to model an inherent defensive advantage.
type DriveParams struct {
	Speed  float64 `koanf:"speed"`
	Handle float64 `koanf:"handle"`
	Lane   float64 `koanf:"lane"`
	Angle  float64 `koanf:"angle"`
	Base   float64 `koanf:"base"`
}

// AssistParams holds the constants of the rule-based assist heuristic.
type AssistParams struct {
	Base           float64 `koanf:"base"`
	Passing        float64 `koanf:"passing"`
	PasserIQShare  float64 `koanf:"passer_iq_share"`
	ShooterIQ      float64 `koanf:"shooter_iq"`
	DribblePenalty float64 `koanf:"dribble_penalty"`
	Quality        float64 `koanf:"quality"`
	Floor          float64 `koanf:"floor"`
	Ceiling        float64 `koanf:"ceiling"`
	MaxDribbles    int     `koanf:"max_dribbles"`
}

// Params bundles the per-event weight tables. Tables are read-only once the
// model is constructed.
type Params struct {
	Shot   ShotParams   `koanf:"shot"`
	Pass   PassParams   `koanf:"pass"`
	Drive  DriveParams  `koanf:"drive"`
	Assist AssistParams `koanf:"assist"`
}

// Maximum noise amplitude a shooter's consistency can contribute.
const maxNoiseAmplitude = 0.4

// DefaultParams returns the reference weight tables.
func DefaultParams() Params {
	return Params{
		Shot: ShotParams{
			Skill:   1.0,
			Quality: 0.8,
			Contest: -0.7,
			Fatigue: -0.35,
			Clutch:  0.25,
			Release: 0.5,
			Noise:   0.35,
		},
		Pass: PassParams{
			Skill:    0.8,
			IQ:       0.4,
			LaneRisk: -0.9,
			Pressure: -0.5,
		},
		Drive: DriveParams{
			Speed:  0.9,
			Handle: 0.6,
			Lane:   0.5,
			Angle:  0.3,
			Base:   -0.2,
		},
		Assist: AssistParams{
			Base:           0.85,
			Passing:        0.1,
			PasserIQShare:  0.5,
			ShooterIQ:      0.05,
			DribblePenalty: 0.15,
			Quality:        0.1,
			Floor:          0.1,
			Ceiling:        0.95,
			MaxDribbles:    2,
		},
	}
}
