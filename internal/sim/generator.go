// Package sim generates rosters and possession contexts for simulation runs.
package sim

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/courtside/fastbreak/internal/domain/model"
)

// Rating generation bounds. Archetype deltas stay inside the 25-99 scale.
const (
	baseRatingMin   = 40.0
	baseRatingRange = 35.0
	specialtyBoost  = 15.0
	ratingFloor     = 25.0
	ratingCeiling   = 99.0
)

// Player archetypes drive which ratings get the specialty boost.
const (
	archetypeSharpshooter = iota
	archetypeSlasher
	archetypePlaymaker
	archetypeStopper
	archetypeCount
)

// Player pairs a name with its generated ratings.
type Player struct {
	Name    string
	Ratings model.Ratings
}

// Generator produces random rosters and possessions from a private rng, so a
// fixed seed reproduces a full session.
type Generator struct {
	rng     *rand.Rand
	offense []Player
	defense []Player
}

// NewGenerator builds two five-player rosters from the seed.
func NewGenerator(seed int64) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // simulation randomness, not crypto
	}
	g.offense = g.roster("home")
	g.defense = g.roster("away")
	return g
}

// Offense returns the generated offensive roster.
func (g *Generator) Offense() []Player { return g.offense }

// Defense returns the generated defensive roster.
func (g *Generator) Defense() []Player { return g.defense }

func (g *Generator) roster(side string) []Player {
	players := make([]Player, 5)
	for i := range players {
		players[i] = Player{
			Name:    side + "-" + string(rune('1'+i)),
			Ratings: g.ratings(i % archetypeCount),
		}
	}
	return players
}

func (g *Generator) rating() float64 {
	return baseRatingMin + g.rng.Float64()*baseRatingRange
}

func (g *Generator) boost(r float64) float64 {
	boosted := r + specialtyBoost
	if boosted > ratingCeiling {
		return ratingCeiling
	}
	return boosted
}

func (g *Generator) ratings(archetype int) model.Ratings {
	r := model.Ratings{
		Three:       g.rating(),
		Mid:         g.rating(),
		Finishing:   g.rating(),
		Pass:        g.rating(),
		IQ:          g.rating(),
		Speed:       g.rating(),
		Handle:      g.rating(),
		OnBallDef:   g.rating(),
		Lateral:     g.rating(),
		Consistency: g.rating(),
	}
	switch archetype {
	case archetypeSharpshooter:
		r.Three = g.boost(r.Three)
		r.Mid = g.boost(r.Mid)
		r.Consistency = g.boost(r.Consistency)
	case archetypeSlasher:
		r.Finishing = g.boost(r.Finishing)
		r.Speed = g.boost(r.Speed)
		r.Handle = g.boost(r.Handle)
	case archetypePlaymaker:
		r.Pass = g.boost(r.Pass)
		r.IQ = g.boost(r.IQ)
	case archetypeStopper:
		r.OnBallDef = g.boost(r.OnBallDef)
		r.Lateral = g.boost(r.Lateral)
	}
	return r
}

// Possession draws a matchup and situational context for one trip.
func (g *Generator) Possession() model.Possession {
	handler := g.offense[g.rng.Intn(len(g.offense))]
	defender := g.defense[g.rng.Intn(len(g.defense))]

	p := model.Possession{
		ID:              uuid.New().String(),
		Handler:         handler.Name,
		HandlerRatings:  handler.Ratings,
		Defender:        defender.Name,
		DefenderRatings: defender.Ratings,
		Lane:            g.rng.Float64(),
		Angle:           g.rng.Float64()*2 - 1,
		Shot: model.ShotContext{
			Zone:    g.zone(),
			Quality: g.rng.Float64(),
			Contest: g.rng.Float64(),
			Fatigue: g.rng.Float64() * 0.5,
			Clutch:  g.rng.Float64() * 0.3,
			Release: g.rng.Float64()*0.4 - 0.2,
		},
	}

	// Most possessions involve a feed before the shot.
	if g.rng.Float64() < 0.7 {
		passer := g.offense[g.rng.Intn(len(g.offense))]
		for passer.Name == handler.Name {
			passer = g.offense[g.rng.Intn(len(g.offense))]
		}
		p.Passer = passer.Name
		p.PasserRatings = passer.Ratings
		p.LaneRisk = g.rng.Float64()
		p.Pressure = g.rng.Float64()
		p.Dribbles = g.rng.Intn(5)
	}
	return p
}

func (g *Generator) zone() model.Zone {
	switch g.rng.Intn(3) {
	case 0:
		return model.ZoneThree
	case 1:
		return model.ZoneMid
	default:
		return model.ZoneRim
	}
}
