package domain

import "time"

// AstronautRecord is one person in space as reported by the source feed.
type AstronautRecord struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

// CraftName implements CrewMember.
func (a AstronautRecord) CraftName() string { return a.Craft }

// AstronautName implements CrewMember.
func (a AstronautRecord) AstronautName() string { return a.Name }

// HistoryRecord holds optional milestones for a spacecraft. Absent fields
// mean "not applicable".
type HistoryRecord struct {
	Milestones          map[string]string `json:"milestones,omitempty"`
	MissionGoals        []string          `json:"mission_goals,omitempty"`
	NotableAchievements []string          `json:"notable_achievements,omitempty"`
}

// SpacecraftInfo is the static reference data for one craft.
type SpacecraftInfo struct {
	Model             string        `json:"model"`
	Type              string        `json:"type"`
	Agencies          []string      `json:"agencies"`
	Countries         []string      `json:"countries"`
	LaunchYear        *int          `json:"launch_year"`
	CrewCapacity      *int          `json:"crew_capacity"`
	OrbitalSpeedKMH   *float64      `json:"orbital_speed_kmh"`
	OrbitalVelocityMS *float64      `json:"orbital_velocity_ms"`
	AltitudeKM        *float64      `json:"altitude_km"`
	OrbitalPeriodMin  *float64      `json:"orbital_period_min"`
	History           HistoryRecord `json:"history"`
}

// EnrichedAstronaut is an AstronautRecord with its craft's reference data
// flattened in.
type EnrichedAstronaut struct {
	Name               string        `json:"name"`
	Craft              string        `json:"craft"`
	SpacecraftModel    string        `json:"spacecraft_model"`
	SpacecraftType     string        `json:"spacecraft_type"`
	OperatingAgencies  []string      `json:"operating_agencies"`
	OperatingCountries []string      `json:"operating_countries"`
	LaunchYear         *int          `json:"launch_year"`
	CrewCapacity       *int          `json:"crew_capacity"`
	OrbitalSpeedKMH    *float64      `json:"orbital_speed_kmh"`
	OrbitalVelocityMS  *float64      `json:"orbital_velocity_ms"`
	AltitudeKM         *float64      `json:"altitude_km"`
	OrbitalPeriodMin   *float64      `json:"orbital_period_min"`
	History            HistoryRecord `json:"history"`
}

// CraftName implements CrewMember.
func (e EnrichedAstronaut) CraftName() string { return e.Craft }

// AstronautName implements CrewMember.
func (e EnrichedAstronaut) AstronautName() string { return e.Name }

// WeatherObservation is the current-conditions snapshot for one run.
type WeatherObservation struct {
	Temperature        float64  `json:"temperature"`
	WindSpeed          float64  `json:"wind_speed"`
	CloudCover         float64  `json:"cloud_cover"`
	Humidity           *float64 `json:"humidity,omitempty"`
	WeatherCode        *int     `json:"weather_code,omitempty"`
	WeatherDescription string   `json:"weather_description,omitempty"`
	Timestamp          string   `json:"timestamp"`
}

// AstronautProfile bundles the per-astronaut derived metrics of a run.
type AstronautProfile struct {
	Astronaut    EnrichedAstronaut `json:"astronaut"`
	Distance     MissionDistance   `json:"mission_distance"`
	Health       HealthEvaluation  `json:"health"`
	Demographics Demographics      `json:"demographics"`
}

// RunReport is everything a single pipeline run produces.
type RunReport struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Seed        uint64              `json:"seed"`
	MissionDays int                 `json:"mission_days"`
	Weather     WeatherObservation  `json:"weather"`
	Profiles    []AstronautProfile  `json:"profiles"`
	Groups      CraftGroups         `json:"groups"`
	Summaries   []CraftSummary      `json:"summaries"`
	Diversity   []DiversityReport   `json:"diversity"`
	Agencies    []AgencyCount       `json:"agencies"`
	Correlation CorrelationRecord   `json:"correlation"`
	Analysis    CorrelationAnalysis `json:"analysis"`
}
