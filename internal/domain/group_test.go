package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCraft(t *testing.T) {
	in := []AstronautRecord{
		{Name: "name1", Craft: "ISS"},
		{Name: "name3", Craft: "Shenzhou"},
		{Name: "name2", Craft: "ISS"},
	}

	groups := GroupByCraft(in)

	want := CraftGroups{
		{Craft: "ISS", Members: []string{"name1", "name2"}},
		{Craft: "Shenzhou", Members: []string{"name3"}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"ISS", "Shenzhou"}, groups.Crafts())
	assert.Equal(t, map[string][]string{
		"ISS":      {"name1", "name2"},
		"Shenzhou": {"name3"},
	}, groups.AsMap())

	members, ok := groups.Members("Shenzhou")
	assert.True(t, ok)
	assert.Equal(t, []string{"name3"}, members)

	_, ok = groups.Members("Mir")
	assert.False(t, ok)
}

func TestGroupByCraft_Enriched(t *testing.T) {
	enriched, err := Enrich([]AstronautRecord{
		{Name: "a", Craft: "Tiangong"},
		{Name: "b", Craft: "ISS"},
		{Name: "c", Craft: "Tiangong"},
	})
	require.NoError(t, err)

	groups := GroupByCraft(enriched)
	assert.Equal(t, []string{"Tiangong", "ISS"}, groups.Crafts())
	members, _ := groups.Members("Tiangong")
	assert.Equal(t, []string{"a", "c"}, members)
}

func TestGroupByCraft_Empty(t *testing.T) {
	assert.Empty(t, GroupByCraft([]AstronautRecord{}))
}

func TestSummarizeCrafts(t *testing.T) {
	enriched, err := Enrich([]AstronautRecord{
		{Name: "a", Craft: "ISS"},
		{Name: "b", Craft: "Mir"},
		{Name: "c", Craft: "ISS"},
	})
	require.NoError(t, err)

	summaries := SummarizeCrafts(enriched)
	require.Len(t, summaries, 2)

	iss := summaries[0]
	assert.Equal(t, "ISS", iss.Craft)
	assert.Equal(t, "International Space Station", iss.Model)
	assert.Equal(t, 2, iss.CrewCount)
	assert.Equal(t, []string{"a", "c"}, iss.Members)
	assert.Equal(t, []string{"NASA", "Roscosmos", "ESA", "JAXA", "CSA"}, iss.Agencies)
	assert.Equal(t, []string{"USA", "Russia", "Europe", "Japan", "Canada"}, iss.Countries)
	require.NotNil(t, iss.Occupancy)
	assert.InDelta(t, 2.0/7.0, *iss.Occupancy, 1e-9)
	require.NotNil(t, iss.AltitudeKM)
	assert.InDelta(t, 408.0, *iss.AltitudeKM, 1e-9)

	mir := summaries[1]
	assert.Equal(t, "Mir", mir.Model)
	assert.Equal(t, UnknownCraftType, mir.Type)
	assert.Equal(t, 1, mir.CrewCount)
	assert.Equal(t, []string{"Unknown"}, mir.Agencies)
	assert.Nil(t, mir.CrewCapacity)
	assert.Nil(t, mir.Occupancy)
	assert.Nil(t, mir.OrbitalSpeedKMH)
}

func TestCountByAgency(t *testing.T) {
	enriched, err := Enrich([]AstronautRecord{
		{Name: "a", Craft: "Tiangong"},
		{Name: "b", Craft: "ISS"},
		{Name: "c", Craft: "Shenzhou"},
	})
	require.NoError(t, err)

	counts := CountByAgency(enriched)
	assert.Equal(t, []AgencyCount{
		{Agency: "CNSA", Astronauts: 2},
		{Agency: "NASA", Astronauts: 1},
		{Agency: "Roscosmos", Astronauts: 1},
		{Agency: "ESA", Astronauts: 1},
		{Agency: "JAXA", Astronauts: 1},
		{Agency: "CSA", Astronauts: 1},
	}, counts)
}

func TestGroupBy(t *testing.T) {
	order, groups := GroupBy([]int{5, 2, 8, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []bool{false, true}, order)
	assert.Equal(t, []int{5, 3}, groups[false])
	assert.Equal(t, []int{2, 8, 4}, groups[true])
}

func TestCountDistinctCrafts(t *testing.T) {
	assert.Equal(t, 0, CountDistinctCrafts([]AstronautRecord{}))
	assert.Equal(t, 2, CountDistinctCrafts([]AstronautRecord{
		{Name: "a", Craft: "ISS"},
		{Name: "b", Craft: "ISS"},
		{Name: "c", Craft: "Tiangong"},
	}))
}
