// Package catalog holds the load-time-fixed scouting configuration: the
// metric catalog, the radar axis groupings, and the role template registry.
// All tables are defined at compile time and never mutated; changing them
// means a new deployment, not a runtime API.
package catalog

import "fmt"

// MetricKey identifies one metric in the closed catalog. Metric storage is a
// fixed-shape vector indexed by MetricKey, so an out-of-catalog lookup is a
// compile-time concern rather than a runtime one.
type MetricKey int

// The full metric catalog, as produced by the upstream data pipeline.
// Every value is conceptually normalized to a 0-100 scale upstream.
const (
	ShotsP90 MetricKey = iota
	XGP90
	ShotConversion
	ProgPassesP90
	PassCompletion
	KeyPassesP90
	DribblesP90
	PressuresP90
	PressSuccess
	AerialWinRate
	DistanceP90

	// NumMetrics is the catalog size. The similarity calibration constant is
	// derived from it, so it must track the const block above.
	NumMetrics int = iota
)

// metricNames maps MetricKey to its wire/JSON field name.
var metricNames = [NumMetrics]string{
	ShotsP90:       "shots_p90",
	XGP90:          "xg_p90",
	ShotConversion: "shot_conversion",
	ProgPassesP90:  "prog_passes_p90",
	PassCompletion: "pass_completion",
	KeyPassesP90:   "key_passes_p90",
	DribblesP90:    "dribbles_p90",
	PressuresP90:   "pressures_p90",
	PressSuccess:   "press_success",
	AerialWinRate:  "aerial_win_rate",
	DistanceP90:    "distance_p90",
}

// metricLabels maps MetricKey to its display label.
var metricLabels = [NumMetrics]string{
	ShotsP90:       "Shots /90",
	XGP90:          "xG /90",
	ShotConversion: "Shot Conversion",
	ProgPassesP90:  "Progressive Passes /90",
	PassCompletion: "Pass Completion",
	KeyPassesP90:   "Key Passes /90",
	DribblesP90:    "Dribbles /90",
	PressuresP90:   "Pressures /90",
	PressSuccess:   "Press Success",
	AerialWinRate:  "Aerial Win Rate",
	DistanceP90:    "Carry Distance /90",
}

// String returns the wire name of the metric, e.g. "shots_p90".
func (k MetricKey) String() string {
	if k < 0 || int(k) >= NumMetrics {
		return fmt.Sprintf("metric(%d)", int(k))
	}
	return metricNames[k]
}

// Label returns the human-readable display label for the metric.
func (k MetricKey) Label() string {
	if k < 0 || int(k) >= NumMetrics {
		return k.String()
	}
	return metricLabels[k]
}

// Metrics returns every key in the catalog, in declaration order.
func Metrics() []MetricKey {
	keys := make([]MetricKey, NumMetrics)
	for i := range keys {
		keys[i] = MetricKey(i)
	}
	return keys
}

// Vector is a player's metric values, one slot per catalog key. A metric the
// dataset never provided stays at its zero value; absent data always reads
// as 0, never as a sentinel.
type Vector [NumMetrics]float64

// Get returns the value for a key. Out-of-range keys read as 0 so sparse or
// defensive callers never observe a sentinel.
func (v Vector) Get(k MetricKey) float64 {
	if k < 0 || int(k) >= NumMetrics {
		return 0
	}
	return v[k]
}

// Validate checks the static tables for configuration errors. It is intended
// to run once at startup; a failure here is a deployment bug, not user input.
func Validate() error {
	if NumMetrics == 0 {
		return fmt.Errorf("%w: empty metric catalog", ErrInvalidCatalog)
	}
	seen := make(map[string]struct{}, len(axes))
	for _, ax := range axes {
		if len(ax.Metrics) == 0 {
			return fmt.Errorf("%w: axis %q has no metrics", ErrInvalidCatalog, ax.Name)
		}
		if _, dup := seen[ax.Name]; dup {
			return fmt.Errorf("%w: duplicate axis %q", ErrInvalidCatalog, ax.Name)
		}
		seen[ax.Name] = struct{}{}
		for _, k := range ax.Metrics {
			if k < 0 || int(k) >= NumMetrics {
				return fmt.Errorf("%w: axis %q references unknown metric %d", ErrInvalidCatalog, ax.Name, int(k))
			}
		}
	}
	roleNames := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if len(r.Weights) == 0 {
			return fmt.Errorf("%w: role %q has no weights", ErrInvalidCatalog, r.Name)
		}
		if _, dup := roleNames[r.Name]; dup {
			return fmt.Errorf("%w: duplicate role %q", ErrInvalidCatalog, r.Name)
		}
		roleNames[r.Name] = struct{}{}
		for _, mw := range r.Weights {
			if mw.Key < 0 || int(mw.Key) >= NumMetrics {
				return fmt.Errorf("%w: role %q references unknown metric %d", ErrInvalidCatalog, r.Name, int(mw.Key))
			}
			if mw.Weight <= 0 {
				return fmt.Errorf("%w: role %q has non-positive weight for %s", ErrInvalidCatalog, r.Name, mw.Key)
			}
		}
	}
	return nil
}
