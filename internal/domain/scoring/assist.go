package scoring

import (
	"github.com/courtside/fastbreak/internal/domain/model"
	"github.com/courtside/fastbreak/pkg/mathx"
)

// AssistProbability estimates whether a made shot is credited as assisted.
//
// Unlike the linear scorers this is a rule-based heuristic and returns a bare
// probability with no decomposition. More than MaxDribbles dribbles after the
// pass returns exactly 0 (no assist is ever credited past two dribbles);
// otherwise the result is the base probability adjusted for passer skill,
// shooter IQ, dribble count and shot quality, clamped to [Floor, Ceiling].
// Saturation at the clamp bounds loses input detail; that is accepted here.
func (m *Model) AssistProbability(passer, shooter model.Ratings, dribblesAfterPass int, shotQuality float64) float64 {
	a := m.params.Assist
	if dribblesAfterPass > a.MaxDribbles {
		return 0
	}
	p := a.Base
	p += a.Passing * (m.scale.Z(passer.Pass) + a.PasserIQShare*m.scale.Z(passer.IQ))
	p += a.ShooterIQ * m.scale.Z(shooter.IQ)
	p -= a.DribblePenalty * float64(dribblesAfterPass)
	p += a.Quality * shotQuality
	return mathx.Clamp(p, a.Floor, a.Ceiling)
}
