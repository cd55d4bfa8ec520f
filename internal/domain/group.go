package domain

// CrewMember is satisfied by both raw and enriched astronaut records.
type CrewMember interface {
	CraftName() string
	AstronautName() string
}

// CraftGroup lists the astronauts aboard one craft.
type CraftGroup struct {
	Craft   string   `json:"craft"`
	Members []string `json:"members"`
}

// CraftGroups is ordered by the first appearance of each craft.
type CraftGroups []CraftGroup

// Members returns the names aboard craft.
func (g CraftGroups) Members(craft string) ([]string, bool) {
	for _, grp := range g {
		if grp.Craft == craft {
			return grp.Members, true
		}
	}
	return nil, false
}

// Crafts returns the craft names in group order.
func (g CraftGroups) Crafts() []string {
	out := make([]string, len(g))
	for i, grp := range g {
		out[i] = grp.Craft
	}
	return out
}

// AsMap flattens the groups into a craft -> names map.
func (g CraftGroups) AsMap() map[string][]string {
	m := make(map[string][]string, len(g))
	for _, grp := range g {
		m[grp.Craft] = grp.Members
	}
	return m
}

// CraftSummary aggregates the enriched records aboard one craft.
type CraftSummary struct {
	Craft            string   `json:"craft"`
	Model            string   `json:"model"`
	Type             string   `json:"type"`
	CrewCount        int      `json:"crew_count"`
	Members          []string `json:"members"`
	Agencies         []string `json:"agencies"`
	Countries        []string `json:"countries"`
	CrewCapacity     *int     `json:"crew_capacity"`
	Occupancy        *float64 `json:"occupancy"`
	OrbitalSpeedKMH  *float64 `json:"orbital_speed_kmh"`
	AltitudeKM       *float64 `json:"altitude_km"`
	OrbitalPeriodMin *float64 `json:"orbital_period_min"`
}

// AgencyCount is the number of astronauts flying on crafts an agency operates.
type AgencyCount struct {
	Agency     string `json:"agency"`
	Astronauts int    `json:"astronauts"`
}

// GroupBy partitions items by key. The returned keys are in first-seen order
// and each partition keeps input order.
func GroupBy[T any, K comparable](items []T, key func(T) K) ([]K, map[K][]T) {
	var order []K
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	return order, groups
}

// GroupByCraft groups astronaut names by craft, preserving first-seen craft
// order and in-craft insertion order.
func GroupByCraft[T CrewMember](records []T) CraftGroups {
	order, groups := GroupBy(records, func(r T) string { return r.CraftName() })
	out := make(CraftGroups, 0, len(order))
	for _, craft := range order {
		members := make([]string, 0, len(groups[craft]))
		for _, r := range groups[craft] {
			members = append(members, r.AstronautName())
		}
		out = append(out, CraftGroup{Craft: craft, Members: members})
	}
	return out
}

// SummarizeCrafts builds one summary per craft in first-seen order. Orbital
// figures are per craft, so they are taken from the first member rather than
// averaged.
func SummarizeCrafts(enriched []EnrichedAstronaut) []CraftSummary {
	order, groups := GroupBy(enriched, func(e EnrichedAstronaut) string { return e.Craft })
	out := make([]CraftSummary, 0, len(order))
	for _, craft := range order {
		crew := groups[craft]
		first := crew[0]
		s := CraftSummary{
			Craft:            craft,
			Model:            first.SpacecraftModel,
			Type:             first.SpacecraftType,
			CrewCount:        len(crew),
			Members:          make([]string, 0, len(crew)),
			CrewCapacity:     first.CrewCapacity,
			OrbitalSpeedKMH:  first.OrbitalSpeedKMH,
			AltitudeKM:       first.AltitudeKM,
			OrbitalPeriodMin: first.OrbitalPeriodMin,
		}
		var agencies, countries []string
		for _, e := range crew {
			s.Members = append(s.Members, e.Name)
			agencies = append(agencies, e.OperatingAgencies...)
			countries = append(countries, e.OperatingCountries...)
		}
		s.Agencies = distinct(agencies)
		s.Countries = distinct(countries)
		if s.CrewCapacity != nil && *s.CrewCapacity > 0 {
			s.Occupancy = ptr(float64(s.CrewCount) / float64(*s.CrewCapacity))
		}
		out = append(out, s)
	}
	return out
}

// CountByAgency counts astronauts per operating agency, in first-seen order.
// An astronaut on a multi-agency craft counts toward every agency.
func CountByAgency(enriched []EnrichedAstronaut) []AgencyCount {
	type pair struct{ agency, name string }
	var pairs []pair
	for _, e := range enriched {
		for _, a := range distinct(e.OperatingAgencies) {
			pairs = append(pairs, pair{agency: a, name: e.Name})
		}
	}
	order, groups := GroupBy(pairs, func(p pair) string { return p.agency })
	out := make([]AgencyCount, 0, len(order))
	for _, a := range order {
		out = append(out, AgencyCount{Agency: a, Astronauts: len(groups[a])})
	}
	return out
}

// CountDistinctCrafts returns the number of distinct craft names.
func CountDistinctCrafts[T CrewMember](records []T) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.CraftName()] = struct{}{}
	}
	return len(seen)
}

func distinct(values []string) []string {
	order, _ := GroupBy(values, func(v string) string { return v })
	if order == nil {
		return []string{}
	}
	return order
}
