package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with degenerate options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should still be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording dataset metrics", func() {
			Convey("Then it should set the pool size", func() {
				So(func() {
					SetDatasetPlayers(300)
					SetDatasetPlayers(0)
				}, ShouldNotPanic)
			})

			Convey("And it should observe load durations", func() {
				So(func() {
					ObserveDatasetLoad(0.25)
					ObserveDatasetLoad(1.5)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording engine metrics", func() {
			Convey("Then it should record fit computations", func() {
				So(func() {
					RecordFitComputation(12.0)
					RecordFitComputation(30.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record similarity queries", func() {
				So(func() {
					RecordSimilarityQuery(8.0)
					RecordSimilarityQuery(20.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record leaderboard queries", func() {
				So(func() {
					RecordLeaderboardQuery()
					RecordLeaderboardQuery()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests", func() {
				So(func() {
					RecordHTTPRequest("players", "GET", "200")
					RecordHTTPRequest("role_leaderboard", "GET", "404")
				}, ShouldNotPanic)
			})

			Convey("And it should record request durations", func() {
				So(func() {
					RecordHTTPRequestDuration("players", "GET", "200", 5.0)
					RecordHTTPRequestDuration("player", "GET", "200", 12.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record errors by endpoint", func() {
				So(func() {
					RecordErrorByEndpoint("player", "GET", "not_found")
					RecordErrorByEndpoint("role_leaderboard", "GET", "client_error")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording with edge values", func() {
			So(func() {
				SetDatasetPlayers(-1)
				ObserveDatasetLoad(0.0)
				RecordFitComputation(0.0)
				RecordHTTPRequest("", "", "")
			}, ShouldNotPanic)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given the shared registry", t, func() {
		Convey("Then it is available for the exposition handler", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})

		Convey("Then the global manager exposes from its own registry", func() {
			So(GetRegistry(), ShouldEqual, customRegistry)
		})
	})

	Convey("Given a manager built on its own registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := NewManager(WithPrometheusRegistry(registry))

		Convey("Then it exposes from that registry, not the global one", func() {
			So(manager.Registry(), ShouldEqual, registry)
			So(manager.Registry(), ShouldNotEqual, customRegistry)
		})
	})
}

func TestConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 8)

			for i := 0; i < 8; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordLeaderboardQuery()
						RecordSimilarityQuery(float64(j))
						RecordHTTPRequest("players", "GET", "200")
						SetDatasetPlayers(300 + j)
					}
					done <- true
				}()
			}
			for i := 0; i < 8; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue)
			})
		})
	})
}
