package domain

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched by every *MissingFieldError.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError identifies the input record that cannot be enriched.
type MissingFieldError struct {
	Index  int
	Record AstronautRecord
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("astronaut record %d (name=%q craft=%q): %s %q",
		e.Index, e.Record.Name, e.Record.Craft, ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// Enrich joins each record against the spacecraft catalog. The output has
// the same length and order as the input. Unknown crafts resolve to the
// sentinel entry; the only error is a record without a name or craft.
func Enrich(astronauts []AstronautRecord) ([]EnrichedAstronaut, error) {
	enriched := make([]EnrichedAstronaut, 0, len(astronauts))
	for i, a := range astronauts {
		if err := validateRecord(i, a); err != nil {
			return nil, err
		}
		enriched = append(enriched, EnrichAstronaut(a))
	}
	return enriched, nil
}

// EnrichAstronaut joins a single record. It does not validate.
func EnrichAstronaut(a AstronautRecord) EnrichedAstronaut {
	info, _ := LookupSpacecraft(a.Craft)
	return EnrichedAstronaut{
		Name:               a.Name,
		Craft:              a.Craft,
		SpacecraftModel:    info.Model,
		SpacecraftType:     info.Type,
		OperatingAgencies:  info.Agencies,
		OperatingCountries: info.Countries,
		LaunchYear:         info.LaunchYear,
		CrewCapacity:       info.CrewCapacity,
		OrbitalSpeedKMH:    info.OrbitalSpeedKMH,
		OrbitalVelocityMS:  info.OrbitalVelocityMS,
		AltitudeKM:         info.AltitudeKM,
		OrbitalPeriodMin:   info.OrbitalPeriodMin,
		History:            info.History,
	}
}

// CountUnknownCrafts returns how many enriched records fell back to the
// sentinel entry.
func CountUnknownCrafts(enriched []EnrichedAstronaut) int {
	n := 0
	for _, e := range enriched {
		if e.SpacecraftType == UnknownCraftType {
			n++
		}
	}
	return n
}

func validateRecord(index int, a AstronautRecord) error {
	switch {
	case a.Name == "":
		return &MissingFieldError{Index: index, Record: a, Field: "name"}
	case a.Craft == "":
		return &MissingFieldError{Index: index, Record: a, Field: "craft"}
	}
	return nil
}
