package domain

import (
	"maps"
	"slices"
)

// UnknownCraftType is the type assigned to crafts missing from the catalog.
const UnknownCraftType = "Unknown"

func ptr[T any](v T) *T { return &v }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return ptr(*p)
}

// spacecraftCatalog is read-only after package init. LookupSpacecraft hands
// out deep copies, pointer fields included, so callers cannot mutate it.
var spacecraftCatalog = map[string]SpacecraftInfo{
	"ISS": {
		Model:             "International Space Station",
		Type:              "Space Station",
		Agencies:          []string{"NASA", "Roscosmos", "ESA", "JAXA", "CSA"},
		Countries:         []string{"USA", "Russia", "Europe", "Japan", "Canada"},
		LaunchYear:        ptr(1998),
		CrewCapacity:      ptr(7),
		OrbitalSpeedKMH:   ptr(27600.0),
		OrbitalVelocityMS: ptr(7660.0),
		AltitudeKM:        ptr(408.0),
		OrbitalPeriodMin:  ptr(92.68),
		History: HistoryRecord{
			Milestones: map[string]string{
				"first_module_launch":   "1998-11-20 (Zarya)",
				"first_crew_arrival":    "2000-11-02 (Expedition 1)",
				"assembly_completed":    "2011",
				"continuously_occupied": "since 2000-11-02",
			},
			MissionGoals: []string{
				"Microgravity research in biology, physics and materials science",
				"Long-duration human spaceflight studies",
				"Technology demonstration for exploration missions",
				"Earth observation",
			},
			NotableAchievements: []string{
				"Longest continuous human presence in low Earth orbit",
				"Visited by astronauts from more than 20 countries",
				"Over 3,000 research investigations conducted",
			},
		},
	},
	"Tiangong": {
		Model:             "Tiangong Space Station (CSS)",
		Type:              "Space Station",
		Agencies:          []string{"CNSA"},
		Countries:         []string{"China"},
		LaunchYear:        ptr(2021),
		CrewCapacity:      ptr(6),
		OrbitalSpeedKMH:   ptr(27500.0),
		OrbitalVelocityMS: ptr(7680.0),
		AltitudeKM:        ptr(390.0),
		OrbitalPeriodMin:  ptr(91.5),
		History: HistoryRecord{
			Milestones: map[string]string{
				"core_module_launch": "2021-04-29 (Tianhe)",
				"first_crew_arrival": "2021-06-17 (Shenzhou 12)",
				"assembly_completed": "2022-11",
			},
			MissionGoals: []string{
				"Permanent Chinese crewed presence in low Earth orbit",
				"Space science and applied research",
				"International payload cooperation",
			},
			NotableAchievements: []string{
				"First fully Chinese modular space station",
				"Completed T-shaped three-module assembly in 18 months",
			},
		},
	},
	"Shenzhou": {
		Model:             "Shenzhou Spacecraft",
		Type:              "Crew Vehicle",
		Agencies:          []string{"CNSA"},
		Countries:         []string{"China"},
		LaunchYear:        ptr(1999),
		CrewCapacity:      ptr(3),
		OrbitalSpeedKMH:   ptr(27500.0),
		OrbitalVelocityMS: ptr(7680.0),
		AltitudeKM:        ptr(390.0),
		OrbitalPeriodMin:  ptr(91.5),
		History: HistoryRecord{
			Milestones: map[string]string{
				"first_flight":        "1999-11-20 (Shenzhou 1, uncrewed)",
				"first_crewed_flight": "2003-10-15 (Shenzhou 5)",
			},
			MissionGoals: []string{
				"Crew transport to and from Tiangong",
				"Lifeboat capability for the station crew",
			},
			NotableAchievements: []string{
				"Carried the first Chinese astronaut, Yang Liwei",
				"First Chinese spacewalk on Shenzhou 7",
			},
		},
	},
}

// LookupSpacecraft returns the catalog entry for craft. It never fails: an
// unknown craft gets the sentinel entry built by UnknownSpacecraft. The
// boolean reports whether the craft was found.
func LookupSpacecraft(craft string) (SpacecraftInfo, bool) {
	info, ok := spacecraftCatalog[craft]
	if !ok {
		return UnknownSpacecraft(craft), false
	}
	return cloneSpacecraft(info), true
}

// UnknownSpacecraft builds the sentinel for a craft missing from the catalog.
// The raw craft name doubles as its display model.
func UnknownSpacecraft(craft string) SpacecraftInfo {
	return SpacecraftInfo{
		Model:     craft,
		Type:      UnknownCraftType,
		Agencies:  []string{"Unknown"},
		Countries: []string{"Unknown"},
	}
}

// KnownCrafts lists the catalog keys in sorted order.
func KnownCrafts() []string {
	return slices.Sorted(maps.Keys(spacecraftCatalog))
}

func cloneSpacecraft(info SpacecraftInfo) SpacecraftInfo {
	info.LaunchYear = clonePtr(info.LaunchYear)
	info.CrewCapacity = clonePtr(info.CrewCapacity)
	info.OrbitalSpeedKMH = clonePtr(info.OrbitalSpeedKMH)
	info.OrbitalVelocityMS = clonePtr(info.OrbitalVelocityMS)
	info.AltitudeKM = clonePtr(info.AltitudeKM)
	info.OrbitalPeriodMin = clonePtr(info.OrbitalPeriodMin)
	info.Agencies = slices.Clone(info.Agencies)
	info.Countries = slices.Clone(info.Countries)
	info.History = HistoryRecord{
		Milestones:          maps.Clone(info.History.Milestones),
		MissionGoals:        slices.Clone(info.History.MissionGoals),
		NotableAchievements: slices.Clone(info.History.NotableAchievements),
	}
	return info
}
