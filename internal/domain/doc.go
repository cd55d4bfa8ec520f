// Package domain models the astronauts currently in space and the analytics
// derived from them.
//
// # Data Source
//
// Raw records come from the Open Notify "people in space" feed
// (http://api.open-notify.org/astros.json) as {"name", "craft"} pairs. The
// weather observation comes from the Open-Meteo forecast API "current" block.
// Both are fetched by adapters; nothing in this package performs I/O.
//
// # Enrichment
//
// Each record is joined against the static spacecraft catalog by exact craft
// name. A miss is not an error: the craft becomes its own display model with
// type "Unknown", agencies and countries ["Unknown"], and no numeric data.
// See [LookupSpacecraft].
//
// # Derived Metrics
//
// Mission distance:
//
//	total_km   = orbital_speed_kmh * mission_days * 24
//	per_day_km = total_km / mission_days
//	orbits     = mission_days * 24 * 60 / orbital_period_min
//
// Fields stay nil when the catalog has no speed (or period, for orbits). Nil
// means "unknown", zero would mean "did not move".
//
// Health risk points per vital (diastolic pressure is reported only):
//
//	O2 saturation: >=95 0 | 90-94 +1 | <90 +3
//	Heart rate:    60-100 0 | 50-59, 101-120 +1 | <50, >120 +3
//	Systolic BP:   90-130 0 | 131-140 +1 | <90, >140 +2
//	Body temp:     36.5-37.5 0 | 36.0-36.4, 37.6-38.0 +1 | <36.0, >38.0 +2
//
//	score 0 Normal | 1-2 Monitor | 3-4 AtRisk | >=5 Critical
//
// Crew diversity uses Simpson's index 1 - sum((n_i/N)^2) over gender,
// nationality and experience level; the overall score is the mean.
//
//	>=0.70 HighlyDiverse | >=0.50 ModeratelyDiverse | >=0.30 LowDiversity | else Homogeneous
//
// Vitals and demographics are simulated. Every simulation function takes an
// explicit *rand.Rand so callers control seeding.
//
// # Correlation Staging
//
// A run yields exactly one [CorrelationRecord]. Correlating astronaut counts
// with weather needs many runs' worth of rows, which this service does not
// accumulate; [AnalyzeCorrelation] reports that instead of a coefficient.
package domain
