// Package scoring implements the probabilistic outcome model: weighted linear
// scores over standardized ratings, mapped to probabilities by the logistic
// link, with a full per-term decomposition returned for every call.
package scoring

import (
	"github.com/courtside/fastbreak/internal/domain/model"
	"github.com/courtside/fastbreak/pkg/mathx"
)

// Model computes event probabilities from player ratings and context.
//
// Every method is pure and total: it reads only its arguments and the
// immutable scale/params set at construction, so a single Model is safe for
// concurrent use from any number of simulation workers.
type Model struct {
	scale  model.Scale
	params Params
}

// New creates a Model with the reference scale and weight tables, then
// applies options.
func New(opts ...Option) *Model {
	m := &Model{
		scale:  model.DefaultScale(),
		params: DefaultParams(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Scale returns the rating scale the model standardizes against.
func (m *Model) Scale() model.Scale { return m.scale }

// ShotProbability scores a shot attempt.
//
// The skill term is a selector on ctx.Zone: exactly one of the shooter's
// three/mid/finishing ratings contributes. The remaining five terms weight
// the context scalars. A noise amplitude derived from the shooter's
// consistency, clamped to [0, 0.4], is added to the score before the
// logistic link and recorded on the Explain; a consistency-100 shooter
// contributes zero amplitude.
func (m *Model) ShotProbability(shooter model.Ratings, ctx model.ShotContext) model.Explain {
	b := m.params.Shot
	terms := []model.Term{
		{Label: "skill", Value: b.Skill * m.scale.Z(shooter.SkillFor(ctx.Zone))},
		{Label: "quality", Value: b.Quality * ctx.Quality},
		{Label: "contest", Value: b.Contest * ctx.Contest},
		{Label: "fatigue", Value: b.Fatigue * ctx.Fatigue},
		{Label: "clutch", Value: b.Clutch * ctx.Clutch},
		{Label: "release", Value: b.Release * ctx.Release},
	}
	score := sum(terms)
	noise := mathx.Clamp(b.Noise*(1-shooter.Consistency/100), 0, maxNoiseAmplitude)
	return model.Explain{
		Terms: terms,
		Score: score,
		Noise: noise,
		P:     mathx.Logistic(score + noise),
	}
}

// PassProbability scores a pass-completion attempt. The lane-risk and
// pressure coefficients are negative in the reference tables, so larger
// inputs lower the completion probability. No noise term applies.
func (m *Model) PassProbability(passer model.Ratings, laneRisk, pressure float64) model.Explain {
	b := m.params.Pass
	terms := []model.Term{
		{Label: "skill", Value: b.Skill * m.scale.Z(passer.Pass)},
		{Label: "iq", Value: b.IQ * m.scale.Z(passer.IQ)},
		{Label: "lane_risk", Value: b.LaneRisk * laneRisk},
		{Label: "pressure", Value: b.Pressure * pressure},
	}
	score := sum(terms)
	return model.Explain{Terms: terms, Score: score, P: mathx.Logistic(score)}
}

// DriveProbability scores an attempt to drive past a defender. The speed and
// handle terms weight the standardized advantage of the ball handler over the
// defender's matching attribute; base is a fixed offset. No noise term.
func (m *Model) DriveProbability(offense, defense model.Ratings, lane, angle float64) model.Explain {
	b := m.params.Drive
	terms := []model.Term{
		{Label: "speed_adv", Value: b.Speed * (m.scale.Z(offense.Speed) - m.scale.Z(defense.Lateral))},
		{Label: "handle_adv", Value: b.Handle * (m.scale.Z(offense.Handle) - m.scale.Z(defense.OnBallDef))},
		{Label: "lane", Value: b.Lane * lane},
		{Label: "angle", Value: b.Angle * angle},
		{Label: "base", Value: b.Base},
	}
	score := sum(terms)
	return model.Explain{Terms: terms, Score: score, P: mathx.Logistic(score)}
}

func sum(terms []model.Term) float64 {
	var s float64
	for _, t := range terms {
		s += t.Value
	}
	return s
}
