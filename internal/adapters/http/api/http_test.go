package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/courtside/fastbreak/internal/adapters/http/api"
	repository "github.com/courtside/fastbreak/internal/adapters/repository"
	"github.com/courtside/fastbreak/internal/domain/telemetry"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeDeps implements api.Dependencies with canned data.
type fakeDeps struct {
	summary    telemetry.Summary
	entries    []api.Entry
	runErr     error
	lastRunLen int
}

func (f *fakeDeps) RunSession(_ context.Context, n int) (telemetry.Summary, error) {
	if f.runErr != nil {
		return telemetry.Summary{}, f.runErr
	}
	f.lastRunLen = n
	return f.summary, nil
}

func (f *fakeDeps) Summary() telemetry.Summary { return f.summary }

func (f *fakeDeps) TopN(_ context.Context, n int) ([]api.Entry, error) {
	if n < len(f.entries) {
		return f.entries[:n], nil
	}
	return f.entries, nil
}

func (f *fakeDeps) Player(_ context.Context, name string) (api.Entry, error) {
	for _, e := range f.entries {
		if e.Player == name {
			return e, nil
		}
	}
	return api.Entry{}, repository.ErrNotFound
}

func newTestServer(deps api.Dependencies) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, 100, 10_000).Register(mux)
	return httptest.NewServer(mux)
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer(&fakeDeps{})
		defer srv.Close()

		Convey("When GET /healthz is called", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then it should report ok", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body map[string]string
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body["status"], ShouldEqual, "ok")
			})
		})

		Convey("When GET /metrics is called", func() {
			resp, err := http.Get(srv.URL + "/metrics")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the Prometheus registry is served", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestSummaryEndpoint(t *testing.T) {
	Convey("Given a server with a recorded session", t, func() {
		deps := &fakeDeps{summary: telemetry.Summary{Shots: 3, Makes: 2, PAvg: 0.5}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When GET /summary is called", func() {
			resp, err := http.Get(srv.URL + "/summary")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the telemetry summary is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body map[string]float64
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body["shots"], ShouldEqual, 3)
				So(body["makes"], ShouldEqual, 2)
				So(body["p_avg"], ShouldAlmostEqual, 0.5, 1e-9)
			})
		})

		Convey("When /summary is called with the wrong method", func() {
			resp, err := http.Post(srv.URL+"/summary", "application/json", http.NoBody)
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then it should 404", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestSimulateEndpoint(t *testing.T) {
	Convey("Given a server that can run sessions", t, func() {
		deps := &fakeDeps{summary: telemetry.Summary{Shots: 150, Makes: 70, PAvg: 0.47}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When POST /simulate carries a valid request", func() {
			resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(`{"possessions":200}`))
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the session runs and returns its summary", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.lastRunLen, ShouldEqual, 200)
				var body map[string]float64
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body["possessions"], ShouldEqual, 200)
				So(body["shots"], ShouldEqual, 150)
			})
		})

		Convey("When the body is not JSON", func() {
			resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader("not json"))
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When possessions is missing or non-positive", func() {
			resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(`{"possessions":0}`))
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When possessions exceeds the configured maximum", func() {
			resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(`{"possessions":999999}`))
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the session fails", func() {
			deps.runErr = errors.New("boom")
			resp, err := http.Post(srv.URL+"/simulate", "application/json", strings.NewReader(`{"possessions":10}`))
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestLeaderboardEndpoints(t *testing.T) {
	Convey("Given a server with box-score entries", t, func() {
		deps := &fakeDeps{entries: []api.Entry{
			{Rank: 1, Player: "home-1", Shots: 10, Makes: 6, Points: 15},
			{Rank: 2, Player: "home-2", Shots: 8, Makes: 4, Points: 9},
		}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When GET /leaderboard?limit=2 is called", func() {
			resp, err := http.Get(srv.URL + "/leaderboard?limit=2")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the ranked entries come back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body []api.Entry
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body, ShouldHaveLength, 2)
				So(body[0].Player, ShouldEqual, "home-1")
			})
		})

		Convey("When the limit is missing or invalid", func() {
			for _, q := range []string{"", "?limit=0", "?limit=abc", "?limit=1000"} {
				resp, err := http.Get(srv.URL + "/leaderboard" + q)
				So(err, ShouldBeNil)
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				_ = resp.Body.Close()
			}
		})

		Convey("When GET /player/{name} finds the player", func() {
			resp, err := http.Get(srv.URL + "/player/home-2")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the player's line is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body api.Entry
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body.Points, ShouldEqual, 9)
			})
		})

		Convey("When GET /player/{name} misses", func() {
			resp, err := http.Get(srv.URL + "/player/unknown")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}
