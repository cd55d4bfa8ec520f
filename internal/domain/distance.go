package domain

// DefaultMissionDays is the assumed mission length. No source reports real
// mission start dates, so this stays a placeholder that callers may override.
const DefaultMissionDays = 180

// MissionDistance is the distance an astronaut has travelled over the
// assumed mission length. Nil fields mean the craft's orbit is unknown.
type MissionDistance struct {
	Spacecraft       string   `json:"spacecraft"`
	OrbitalSpeedKMH  *float64 `json:"orbital_speed_kmh"`
	MissionDays      int      `json:"mission_days"`
	TotalDistanceKM  *float64 `json:"total_distance_km"`
	DistancePerDayKM *float64 `json:"distance_per_day_km"`
	OrbitsCompleted  *float64 `json:"orbits_completed"`
}

// MissionDistanceFor computes travelled distance and orbit count. A
// non-positive missionDays falls back to DefaultMissionDays.
func MissionDistanceFor(a EnrichedAstronaut, missionDays int) MissionDistance {
	if missionDays <= 0 {
		missionDays = DefaultMissionDays
	}

	md := MissionDistance{
		Spacecraft:  a.SpacecraftModel,
		MissionDays: missionDays,
	}
	if a.OrbitalSpeedKMH == nil {
		return md
	}

	speed := *a.OrbitalSpeedKMH
	hours := float64(missionDays) * 24
	total := speed * hours
	md.OrbitalSpeedKMH = &speed
	md.TotalDistanceKM = &total
	md.DistancePerDayKM = ptr(total / float64(missionDays))

	if a.OrbitalPeriodMin != nil && *a.OrbitalPeriodMin > 0 {
		md.OrbitsCompleted = ptr(hours * 60 / *a.OrbitalPeriodMin)
	}
	return md
}
