package catalog

// RadarAxis is a composite display grouping of one or more metrics. Axes are
// used only by the radar visualization, never for scoring.
type RadarAxis struct {
	Name    string
	Label   string
	Metrics []MetricKey
}

// axes is the fixed radar layout. Order matters: it is the order the
// dashboard draws the axes in.
var axes = []RadarAxis{
	{Name: "shooting", Label: "Shooting", Metrics: []MetricKey{ShotsP90, XGP90, ShotConversion}},
	{Name: "passing", Label: "Passing", Metrics: []MetricKey{ProgPassesP90, PassCompletion, KeyPassesP90}},
	{Name: "dribbling", Label: "Dribbling", Metrics: []MetricKey{DribblesP90}},
	{Name: "pressing", Label: "Pressing", Metrics: []MetricKey{PressuresP90, PressSuccess}},
	{Name: "aerial", Label: "Aerial", Metrics: []MetricKey{AerialWinRate}},
	{Name: "mobility", Label: "Mobility", Metrics: []MetricKey{DistanceP90}},
}

// Axes returns the radar axis definitions in display order. Callers must
// treat the returned slice as read-only.
func Axes() []RadarAxis {
	return axes
}
