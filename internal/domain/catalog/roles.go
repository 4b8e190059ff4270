package catalog

// MetricWeight pairs a catalog metric with its positive role weight.
type MetricWeight struct {
	Key    MetricKey
	Weight float64
}

// RoleTemplate is a named weighted subset of the catalog representing a
// tactical archetype. Weights intentionally sum to slightly under 1.0 so a
// maxed-out player never renders as a perfect 100 fit.
type RoleTemplate struct {
	Name    string
	Weights []MetricWeight
}

// roles is the registry, in declaration order. Declaration order is a de
// facto tie-break priority: when two roles score the same for a player, the
// first-declared role wins.
var roles = []RoleTemplate{
	{
		Name: "Advanced Forward",
		Weights: []MetricWeight{
			{ShotsP90, 0.30}, {XGP90, 0.30}, {ShotConversion, 0.20}, {DribblesP90, 0.10},
		},
	},
	{
		Name: "Deep-Lying Playmaker",
		Weights: []MetricWeight{
			{ProgPassesP90, 0.35}, {PassCompletion, 0.25}, {KeyPassesP90, 0.30},
		},
	},
	{
		Name: "Winger",
		Weights: []MetricWeight{
			{DribblesP90, 0.35}, {KeyPassesP90, 0.25}, {ShotsP90, 0.15}, {DistanceP90, 0.15},
		},
	},
	{
		Name: "Pressing Forward",
		Weights: []MetricWeight{
			{PressuresP90, 0.30}, {PressSuccess, 0.25}, {ShotsP90, 0.20}, {XGP90, 0.15},
		},
	},
	{
		Name: "Box-to-Box Midfielder",
		Weights: []MetricWeight{
			{DistanceP90, 0.25}, {ProgPassesP90, 0.20}, {PressuresP90, 0.20}, {DribblesP90, 0.15}, {KeyPassesP90, 0.10},
		},
	},
	{
		Name: "Target Man",
		Weights: []MetricWeight{
			{AerialWinRate, 0.40}, {ShotsP90, 0.25}, {XGP90, 0.25},
		},
	},
}

// Roles returns the template registry in declaration order. Callers must
// treat the returned slice as read-only.
func Roles() []RoleTemplate {
	return roles
}

// RoleByName looks up a template by its exact name.
func RoleByName(name string) (RoleTemplate, bool) {
	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return RoleTemplate{}, false
}
