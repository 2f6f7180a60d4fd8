// Package worker runs possessions through the outcome model and records
// what happened.
package worker

import (
	"context"
	"math/rand"
	"time"

	"github.com/courtside/fastbreak/internal/domain/model"
	"github.com/courtside/fastbreak/internal/domain/telemetry"
	"github.com/courtside/fastbreak/pkg/logger"
	"github.com/courtside/fastbreak/pkg/metrics"
)

// Playbook constants for resolving a possession.
const (
	blowByContestRelief = 0.5  // contest multiplier after a successful blow-by
	shootingFoulChance  = 0.08 // chance a missed contested shot drew a foul
	heavyContest        = 0.8  // contest level above which fouls are possible
	offensiveRebound    = 0.3  // weight of the offense winning the board
)

// Possession is the unit of work drained from the queue.
type Possession = model.Possession

// Outcomes is the slice of the scoring model workers consume.
type Outcomes interface {
	ShotProbability(shooter model.Ratings, ctx model.ShotContext) model.Explain
	PassProbability(passer model.Ratings, laneRisk, pressure float64) model.Explain
	DriveProbability(offense, defense model.Ratings, lane, angle float64) model.Explain
	AssistProbability(passer, shooter model.Ratings, dribblesAfterPass int, shotQuality float64) float64
}

// BoxScore receives resolved outcomes for per-player aggregation.
type BoxScore interface {
	RecordShot(ctx context.Context, player string, p float64, made bool, value int) error
	RecordAssist(ctx context.Context, player string) error
}

// Queue defines how workers receive possessions.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Possession
}

// SimWorker plays out possessions. Each worker owns a private telemetry log
// and a private rng; logs are merged by the session after the worker stops.
type SimWorker struct {
	queue    Queue
	outcomes Outcomes
	box      BoxScore
	log      *telemetry.Log
	rng      *rand.Rand
	name     string

	done chan struct{}

	logger logger.Logger
}

// NewSimWorker creates a worker with configuration options.
func NewSimWorker(queue Queue, outcomes Outcomes, box BoxScore, opts ...Option) *SimWorker {
	w := &SimWorker{
		queue:    queue,
		outcomes: outcomes,
		box:      box,
		log:      telemetry.NewLog(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation randomness, not crypto
		name:     "worker",
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = logger.Named(w.name)
	}
	return w
}

// Run drains the queue until it closes or ctx is canceled.
func (w *SimWorker) Run(ctx context.Context) {
	defer close(w.done)

	possessions := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-possessions:
			if !ok {
				return
			}
			w.playPossession(ctx, p)
		}
	}
}

// Done is closed once the worker's Run loop has returned.
func (w *SimWorker) Done() <-chan struct{} { return w.done }

// Log returns the worker's private telemetry log. Only safe to read after
// Done is closed.
func (w *SimWorker) Log() *telemetry.Log { return w.log }

// playPossession resolves one trip down the floor. Outcomes are decided by
// drawing against the model probabilities only; the decompositions go to
// telemetry untouched.
func (w *SimWorker) playPossession(ctx context.Context, p Possession) {
	start := time.Now()
	defer func() {
		metrics.ObservePossessionDuration(time.Since(start).Seconds())
		metrics.RecordPossessionSimulated()
	}()

	assisted := false
	if p.Passer != "" {
		pass := w.outcomes.PassProbability(p.PasserRatings, p.LaneRisk, p.Pressure)
		ok := w.draw(pass.P)
		w.push(telemetry.PassEvent{Player: p.Passer, P: pass.P, OK: ok, Explain: pass})
		if !ok {
			// turnover, possession over
			return
		}
		assisted = true
	}

	shotCtx := p.Shot
	drive := w.outcomes.DriveProbability(p.HandlerRatings, p.DefenderRatings, p.Lane, p.Angle)
	if w.draw(drive.P) {
		shotCtx.Contest *= blowByContestRelief
	}

	shot := w.outcomes.ShotProbability(p.HandlerRatings, shotCtx)
	made := w.draw(shot.P)
	w.push(telemetry.ShotEvent{Player: p.Handler, P: shot.P, Make: made, Explain: shot})
	metrics.ObserveShotProbability(shot.P)

	value := 2
	if shotCtx.Zone == model.ZoneThree {
		value = 3
	}
	if err := w.box.RecordShot(ctx, p.Handler, shot.P, made, value); err != nil {
		metrics.RecordWorkerError()
		w.logger.Error(ctx, "box score update failed",
			logger.String("possession", p.ID),
			logger.Error(err),
		)
	}

	switch {
	case made:
		metrics.RecordShotMake()
		if assisted {
			ap := w.outcomes.AssistProbability(p.PasserRatings, p.HandlerRatings, p.Dribbles, shotCtx.Quality)
			if w.draw(ap) {
				if err := w.box.RecordAssist(ctx, p.Passer); err != nil {
					metrics.RecordWorkerError()
					w.logger.Error(ctx, "assist update failed",
						logger.String("possession", p.ID),
						logger.Error(err),
					)
				}
			}
		}
	case shotCtx.Contest > heavyContest && w.draw(shootingFoulChance):
		w.push(telemetry.FoulEvent{On: p.Defender, Shooting: true})
	default:
		offense := w.draw(offensiveRebound)
		winner := p.Defender
		if offense {
			winner = p.Handler
		}
		w.push(telemetry.ReboundEvent{Winner: winner, Offense: offense, WSelf: offensiveRebound})
	}
}

func (w *SimWorker) push(e telemetry.Event) {
	w.log.Push(e)
	metrics.RecordEvent(eventKind(e))
}

func (w *SimWorker) draw(p float64) bool {
	return w.rng.Float64() < p
}

func eventKind(e telemetry.Event) string {
	switch e.(type) {
	case telemetry.ShotEvent:
		return "shot"
	case telemetry.PassEvent:
		return "pass"
	case telemetry.ReboundEvent:
		return "rebound"
	case telemetry.FoulEvent:
		return "foul"
	default:
		return "unknown"
	}
}
