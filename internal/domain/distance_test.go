package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionDistanceFor(t *testing.T) {
	iss := EnrichAstronaut(AstronautRecord{Name: "A", Craft: "ISS"})

	t.Run("known orbit", func(t *testing.T) {
		md := MissionDistanceFor(iss, DefaultMissionDays)

		assert.Equal(t, "International Space Station", md.Spacecraft)
		assert.Equal(t, 180, md.MissionDays)
		require.NotNil(t, md.OrbitalSpeedKMH)
		require.NotNil(t, md.TotalDistanceKM)
		require.NotNil(t, md.DistancePerDayKM)
		require.NotNil(t, md.OrbitsCompleted)

		assert.InDelta(t, 27600.0*180*24, *md.TotalDistanceKM, 1e-6)
		assert.InDelta(t, 27600.0*24, *md.DistancePerDayKM, 1e-6)
		assert.InDelta(t, 180.0*24*60/92.68, *md.OrbitsCompleted, 1e-9)
	})

	t.Run("custom mission length", func(t *testing.T) {
		md := MissionDistanceFor(iss, 10)
		require.NotNil(t, md.TotalDistanceKM)
		assert.Equal(t, 10, md.MissionDays)
		assert.InDelta(t, 27600.0*10*24, *md.TotalDistanceKM, 1e-6)
	})

	t.Run("non-positive days use default", func(t *testing.T) {
		assert.Equal(t, DefaultMissionDays, MissionDistanceFor(iss, 0).MissionDays)
		assert.Equal(t, DefaultMissionDays, MissionDistanceFor(iss, -3).MissionDays)
	})

	t.Run("unknown craft yields nil, not zero", func(t *testing.T) {
		md := MissionDistanceFor(EnrichAstronaut(AstronautRecord{Name: "B", Craft: "Mir"}), DefaultMissionDays)

		assert.Equal(t, "Mir", md.Spacecraft)
		assert.Equal(t, 180, md.MissionDays)
		assert.Nil(t, md.OrbitalSpeedKMH)
		assert.Nil(t, md.TotalDistanceKM)
		assert.Nil(t, md.DistancePerDayKM)
		assert.Nil(t, md.OrbitsCompleted)
	})

	t.Run("speed without period", func(t *testing.T) {
		speed := 28000.0
		md := MissionDistanceFor(EnrichedAstronaut{SpacecraftModel: "Crew Dragon", OrbitalSpeedKMH: &speed}, 2)

		require.NotNil(t, md.TotalDistanceKM)
		assert.InDelta(t, 28000.0*48, *md.TotalDistanceKM, 1e-6)
		assert.Nil(t, md.OrbitsCompleted)
	})
}

func TestMissionDistanceFor_NullExactlyWhenSpeedNull(t *testing.T) {
	for _, craft := range append(KnownCrafts(), "Mir", "Soyuz", "") {
		e := EnrichAstronaut(AstronautRecord{Name: "x", Craft: craft})
		md := MissionDistanceFor(e, DefaultMissionDays)
		assert.Equal(t, e.OrbitalSpeedKMH == nil, md.TotalDistanceKM == nil, craft)
	}
}
