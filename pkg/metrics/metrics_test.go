package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a fresh registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "test_namespace")
				So(manager.subsystem, ShouldEqual, "test_subsystem")
			})
		})

		Convey("When options carry invalid values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRegistry(registry),
			)

			Convey("Then defaults are preserved", func() {
				So(manager.namespace, ShouldEqual, "fastbreak")
				So(manager.subsystem, ShouldEqual, "sim")
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording simulation metrics", func() {
			So(func() {
				RecordPossessionSimulated()
				RecordEvent("shot")
				RecordEvent("pass")
				RecordShotMake()
				ObserveShotProbability(0.66)
				UpdateQueueSize(10)
				UpdateQueueCapacity(100)
				RecordQueueEnqueueError()
				UpdateWorkerCount(4)
				RecordWorkerError()
				ObservePossessionDuration(0.002)
				UpdateBoxScorePlayers(8)
				RecordHTTPRequest("/summary", "GET", "200")
				RecordHTTPRequestDuration("/summary", "GET", 0.01)
			}, ShouldNotPanic)
		})

		Convey("When fetching the registry", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
