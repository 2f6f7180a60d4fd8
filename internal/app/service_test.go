package service_test

import (
	"context"
	"testing"

	app "github.com/courtside/fastbreak/internal/app"
	scoring "github.com/courtside/fastbreak/internal/domain/scoring"
	"github.com/courtside/fastbreak/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestServiceRunSession(t *testing.T) {
	Convey("Given a service with a fixed seed", t, func() {
		ctx := context.Background()
		svc := app.New(
			app.WithModel(scoring.New()),
			app.WithWorkerCount(4),
			app.WithQueueSize(64),
			app.WithShardCount(4),
			app.WithSeed(1234),
		)

		Convey("When no session has run", func() {
			Convey("Then reports are empty rather than failing", func() {
				So(svc.Summary().Shots, ShouldEqual, 0)
				So(svc.Events(), ShouldBeNil)

				top, err := svc.TopN(ctx, 10)
				So(err, ShouldBeNil)
				So(top, ShouldBeEmpty)
			})
		})

		Convey("When a session of 200 possessions runs", func() {
			summary, err := svc.RunSession(ctx, 200)

			Convey("Then it completes and produces a coherent summary", func() {
				So(err, ShouldBeNil)
				So(summary.Shots, ShouldBeGreaterThan, 0)
				So(summary.Shots, ShouldBeLessThanOrEqualTo, 200)
				So(summary.Makes, ShouldBeLessThanOrEqualTo, summary.Shots)
				So(summary.PAvg, ShouldBeGreaterThan, 0)
				So(summary.PAvg, ShouldBeLessThan, 1)
			})

			Convey("And the stored results agree with the returned summary", func() {
				So(err, ShouldBeNil)
				So(svc.Summary(), ShouldResemble, summary)
				So(len(svc.Events()), ShouldBeGreaterThanOrEqualTo, summary.Shots)
			})

			Convey("And the box score totals match the telemetry", func() {
				So(err, ShouldBeNil)
				top, topErr := svc.TopN(ctx, 100)
				So(topErr, ShouldBeNil)
				So(top, ShouldNotBeEmpty)

				shots, makes := 0, 0
				for _, e := range top {
					shots += e.Shots
					makes += e.Makes
				}
				So(shots, ShouldEqual, summary.Shots)
				So(makes, ShouldEqual, summary.Makes)
			})
		})

		Convey("When a zero-possession session runs", func() {
			summary, err := svc.RunSession(ctx, 0)

			Convey("Then it completes with an empty summary", func() {
				So(err, ShouldBeNil)
				So(summary.Shots, ShouldEqual, 0)
				So(summary.PAvg, ShouldEqual, 0)
			})
		})

		Convey("When the context is already canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()

			// A full queue forces the enqueue retry path to observe ctx.
			tiny := app.New(
				app.WithWorkerCount(1),
				app.WithQueueSize(1),
				app.WithSeed(1),
			)
			_, err := tiny.RunSession(canceled, 10_000)

			Convey("Then the session may abort with the context error", func() {
				// Workers exit on cancel, so the queue backs up and the
				// enqueue loop returns the context error.
				So(err, ShouldNotBeNil)
			})
		})
	})
}
