package scoring_test

import (
	"fmt"
	"testing"

	model "github.com/courtside/fastbreak/internal/domain/model"
	scoring "github.com/courtside/fastbreak/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAssistProbability(t *testing.T) {
	Convey("Given a model with the reference tables", t, func() {
		m := scoring.New()

		Convey("When the shooter takes more than two dribbles after the pass", func() {
			Convey("Then no assist is credited, whatever the ratings", func() {
				elite := averageRatings()
				elite.Pass = 99
				elite.IQ = 99
				So(m.AssistProbability(elite, elite, 3, 1.0), ShouldEqual, 0)
				So(m.AssistProbability(averageRatings(), averageRatings(), 7, 0.2), ShouldEqual, 0)
			})
		})

		Convey("When the pass qualifies", func() {
			Convey("Then the result always lies inside the clamp bounds", func() {
				players := []model.Ratings{averageRatings()}

				worst := averageRatings()
				worst.Pass = 25
				worst.IQ = 25
				players = append(players, worst)

				best := averageRatings()
				best.Pass = 99
				best.IQ = 99
				players = append(players, best)

				for _, passer := range players {
					for _, shooter := range players {
						for d := 0; d <= 2; d++ {
							for _, q := range []float64{0, 0.5, 1.0} {
								p := m.AssistProbability(passer, shooter, d, q)
								So(p, ShouldBeGreaterThanOrEqualTo, 0.1)
								So(p, ShouldBeLessThanOrEqualTo, 0.95)
							}
						}
					}
				}
			})
		})

		Convey("When an average passer feeds an average shooter for a catch-and-shoot", func() {
			p := m.AssistProbability(averageRatings(), averageRatings(), 0, 0)

			Convey("Then the base probability comes through unadjusted", func() {
				So(p, ShouldAlmostEqual, 0.85, 1e-9)
			})
		})

		Convey("When dribbles accumulate", func() {
			Convey("Then each dribble lowers the estimate until the floor", func() {
				p0 := m.AssistProbability(averageRatings(), averageRatings(), 0, 0.5)
				p1 := m.AssistProbability(averageRatings(), averageRatings(), 1, 0.5)
				p2 := m.AssistProbability(averageRatings(), averageRatings(), 2, 0.5)
				So(p1, ShouldBeLessThan, p0)
				So(p2, ShouldBeLessThan, p1)
			})
		})

		Convey("When passer skill saturates the ceiling", func() {
			best := averageRatings()
			best.Pass = 99
			best.IQ = 99

			Convey("Then very different elite inputs collapse to 0.95", func() {
				for _, q := range []float64{0.6, 0.8, 1.0} {
					So(m.AssistProbability(best, best, 0, q), ShouldEqual, 0.95)
				}
			})
		})

		Convey("When the worst in-domain passer throws the worst qualifying pass", func() {
			worst := averageRatings()
			worst.Pass = 25
			worst.IQ = 25

			Convey("Then the estimate stays above the floor but close to it", func() {
				p := m.AssistProbability(worst, worst, 2, 0)
				So(p, ShouldAlmostEqual, 0.13333, 1e-4)
				So(p, ShouldBeGreaterThanOrEqualTo, 0.1)
			})
		})

		Convey("When adjustments push the estimate below the floor", func() {
			// Out-of-domain rating; the heuristic is total and still clamps.
			hopeless := averageRatings()
			hopeless.Pass = 0
			hopeless.IQ = 0

			Convey("Then the floor holds at exactly 0.1", func() {
				So(m.AssistProbability(hopeless, hopeless, 2, 0), ShouldEqual, 0.1)
			})
		})

		Convey("When shot quality improves", func() {
			for _, d := range []int{1, 2} {
				d := d
				Convey(fmt.Sprintf("Then the estimate rises with quality at %d dribbles", d), func() {
					lo := m.AssistProbability(averageRatings(), averageRatings(), d, 0.1)
					hi := m.AssistProbability(averageRatings(), averageRatings(), d, 0.9)
					So(hi, ShouldBeGreaterThan, lo)
				})
			}
		})
	})
}
