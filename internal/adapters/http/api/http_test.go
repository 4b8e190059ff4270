package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/tbekker/xscout/internal/adapters/http/api"
	"github.com/tbekker/xscout/internal/adapters/repository"
	service "github.com/tbekker/xscout/internal/app"
	"github.com/tbekker/xscout/internal/domain/catalog"
	"github.com/tbekker/xscout/internal/domain/scoring"
	"github.com/tbekker/xscout/internal/domain/similarity"
)

// stubDeps is a canned-response implementation of the handler dependencies.
type stubDeps struct {
	lastRole   string
	lastLimit  int
	lastFilter similarity.Filters
}

func (s *stubDeps) Players(_ context.Context) []service.PlayerSummary {
	return []service.PlayerSummary{
		{ID: 1, Name: "Bale", Position: "FW", Age: 26, Minutes: 1800, Overall: 72},
		{ID: 2, Name: "Coke", Position: "DF", Age: 29, Minutes: 2100, Overall: 58},
	}
}

func (s *stubDeps) Player(_ context.Context, id int) (service.PlayerDetail, error) {
	if id != 1 {
		return service.PlayerDetail{}, fmt.Errorf("lookup: %w", repository.ErrNotFound)
	}
	return service.PlayerDetail{
		PlayerSummary: service.PlayerSummary{ID: 1, Name: "Bale", Position: "FW", Age: 26, Minutes: 1800, Overall: 72},
		Metrics:       map[string]float64{"shots_p90": 3.1},
	}, nil
}

func (s *stubDeps) Radar(_ context.Context, id int) ([]service.AxisValue, error) {
	if id != 1 {
		return nil, fmt.Errorf("lookup: %w", repository.ErrNotFound)
	}
	return []service.AxisValue{{Axis: "shooting", Label: "Shooting", Value: 74.5}}, nil
}

func (s *stubDeps) TopRoles(_ context.Context, id int) ([]scoring.FitResult, error) {
	if id != 1 {
		return nil, fmt.Errorf("lookup: %w", repository.ErrNotFound)
	}
	return []scoring.FitResult{{PlayerID: 1, Name: "Bale", Role: "Winger", Fit: 81}}, nil
}

func (s *stubDeps) Roles(_ context.Context) []service.RoleInfo {
	return []service.RoleInfo{{Name: "Winger"}}
}

func (s *stubDeps) RoleLeaderboard(_ context.Context, roleName string, n int) ([]scoring.FitResult, error) {
	s.lastRole, s.lastLimit = roleName, n
	if roleName != "Winger" {
		return nil, fmt.Errorf("registry: %w", catalog.ErrUnknownRole)
	}
	return []scoring.FitResult{
		{PlayerID: 1, Name: "Bale", Role: roleName, Fit: 81},
		{PlayerID: 2, Name: "Coke", Role: roleName, Fit: 40},
	}, nil
}

func (s *stubDeps) Similar(_ context.Context, id int, f similarity.Filters, n int) (similarity.Shortlist, error) {
	s.lastFilter, s.lastLimit = f, n
	if id != 1 {
		return similarity.Shortlist{}, fmt.Errorf("lookup: %w", repository.ErrNotFound)
	}
	if err := f.Validate(); err != nil {
		return similarity.Shortlist{}, err
	}
	return similarity.Shortlist{
		ID:      "q-1",
		Filters: f,
		Results: []similarity.Result{{PlayerID: 2, Name: "Coke", Position: "DF", Age: 29, Score: 64}},
	}, nil
}

type stubStats struct{}

func (stubStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true, "players": 2}
}

func newTestServer(deps *stubDeps) *httptest.Server {
	mux := http.NewServeMux()
	srv := api.NewServer(deps, stubStats{}, api.Limits{MaxLeaderboard: 50, MaxSimilar: 10})
	srv.Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestPlayersRoutes(t *testing.T) {
	Convey("Given the registered routes", t, func() {
		deps := &stubDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("Then GET /players lists the pool", func() {
			resp, body := get(t, ts.URL+"/players")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("X-Request-ID"), ShouldNotBeEmpty)

			var got []service.PlayerSummary
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(len(got), ShouldEqual, 2)
			So(got[0].Name, ShouldEqual, "Bale")
		})

		Convey("Then GET /players/1 returns the profile", func() {
			resp, body := get(t, ts.URL+"/players/1")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var got service.PlayerDetail
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(got.Name, ShouldEqual, "Bale")
			So(got.Metrics["shots_p90"], ShouldEqual, 3.1)
		})

		Convey("Then an unknown player is 404", func() {
			resp, _ := get(t, ts.URL+"/players/42")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then a non-numeric id is 400", func() {
			resp, _ := get(t, ts.URL+"/players/bale")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Then GET /players/1/radar returns axis values", func() {
			resp, body := get(t, ts.URL+"/players/1/radar")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var got []service.AxisValue
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(got[0].Value, ShouldEqual, 74.5)
		})

		Convey("Then GET /players/1/roles returns fits", func() {
			resp, body := get(t, ts.URL+"/players/1/roles")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var got []scoring.FitResult
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(got[0].Role, ShouldEqual, "Winger")
		})

		Convey("Then an unknown subresource is 404", func() {
			resp, _ := get(t, ts.URL+"/players/1/transfers")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSimilarRoute(t *testing.T) {
	Convey("Given the similarity route", t, func() {
		deps := &stubDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("Then defaults apply when no query params are sent", func() {
			resp, _ := get(t, ts.URL+"/players/1/similar")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(deps.lastFilter.Position, ShouldEqual, similarity.PositionAll)
			So(deps.lastLimit, ShouldEqual, similarity.DefaultShortlistSize)
		})

		Convey("Then query params flow through to the engine", func() {
			resp, _ := get(t, ts.URL+"/players/1/similar?position=DF&max_age=30&limit=3")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(deps.lastFilter, ShouldResemble, similarity.Filters{Position: "DF", MaxAge: 30})
			So(deps.lastLimit, ShouldEqual, 3)
		})

		Convey("Then an invalid position filter is 400", func() {
			resp, _ := get(t, ts.URL+"/players/1/similar?position=striker")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Then a non-numeric max_age is 400", func() {
			resp, _ := get(t, ts.URL+"/players/1/similar?max_age=old")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Then a limit above the cap is 400", func() {
			resp, _ := get(t, ts.URL+"/players/1/similar?limit=11")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestRolesRoutes(t *testing.T) {
	Convey("Given the role routes", t, func() {
		deps := &stubDeps{}
		ts := newTestServer(deps)
		defer ts.Close()

		Convey("Then GET /roles lists the registry", func() {
			resp, body := get(t, ts.URL+"/roles")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var got []service.RoleInfo
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(got[0].Name, ShouldEqual, "Winger")
		})

		Convey("Then the leaderboard route ranks a role", func() {
			resp, body := get(t, ts.URL+"/roles/Winger/leaderboard?limit=2")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(deps.lastRole, ShouldEqual, "Winger")
			So(deps.lastLimit, ShouldEqual, 2)

			var got []scoring.FitResult
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(len(got), ShouldEqual, 2)
			So(got[0].Fit, ShouldBeGreaterThan, got[1].Fit)
		})

		Convey("Then an unknown role is 404", func() {
			resp, _ := get(t, ts.URL+"/roles/Sweeper/leaderboard")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then an out-of-range limit is 400", func() {
			resp, _ := get(t, ts.URL+"/roles/Winger/leaderboard?limit=0")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

			resp, _ = get(t, ts.URL+"/roles/Winger/leaderboard?limit=999")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Then a malformed leaderboard path is 404", func() {
			resp, _ := get(t, ts.URL+"/roles/Winger/standings")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	Convey("Given the operational routes", t, func() {
		ts := newTestServer(&stubDeps{})
		defer ts.Close()

		Convey("Then GET /stats reports service state", func() {
			resp, body := get(t, ts.URL+"/stats")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var got map[string]interface{}
			So(json.Unmarshal(body, &got), ShouldBeNil)
			So(got["started"], ShouldEqual, true)
		})

		Convey("Then POST /stats is rejected", func() {
			resp, err := http.Post(ts.URL+"/stats", "application/json", nil)
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("Then GET /healthz serves the metrics exposition", func() {
			resp, err := http.Get(ts.URL + "/healthz")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
