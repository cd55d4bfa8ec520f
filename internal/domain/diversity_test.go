package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiversity(t *testing.T) {
	tests := []struct {
		name        string
		crew        []Demographics
		gender      float64
		nationality float64
		experience  float64
		rating      DiversityRating
	}{
		{
			name:   "single member",
			crew:   []Demographics{{"Female", "USA", "Veteran"}},
			rating: RatingHomogeneous,
		},
		{
			name: "identical members",
			crew: []Demographics{
				{"Male", "China", "Rookie"},
				{"Male", "China", "Rookie"},
				{"Male", "China", "Rookie"},
			},
			rating: RatingHomogeneous,
		},
		{
			name: "two distinct members",
			crew: []Demographics{
				{"Male", "USA", "Rookie"},
				{"Female", "Russia", "Veteran"},
			},
			gender:      0.5,
			nationality: 0.5,
			experience:  0.5,
			rating:      RatingModeratelyDiverse,
		},
		{
			name: "four members",
			crew: []Demographics{
				{"Male", "USA", "Rookie"},
				{"Female", "Russia", "Rookie"},
				{"Male", "Japan", "Experienced"},
				{"Female", "Canada", "Veteran"},
			},
			gender:      0.5,
			nationality: 0.75,
			experience:  0.625,
			rating:      RatingModeratelyDiverse,
		},
		{
			name: "same gender and nationality",
			crew: []Demographics{
				{"Male", "China", "Rookie"},
				{"Male", "China", "Experienced"},
				{"Male", "China", "Veteran"},
			},
			experience: 1 - 3*(1.0/9),
			rating:     RatingHomogeneous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Diversity("ISS", tt.crew)

			assert.Equal(t, "ISS", r.Spacecraft)
			assert.Equal(t, len(tt.crew), r.CrewSize)
			assert.InDelta(t, tt.gender, r.GenderDiversity, 1e-9)
			assert.InDelta(t, tt.nationality, r.NationalityDiversity, 1e-9)
			assert.InDelta(t, tt.experience, r.ExperienceDiversity, 1e-9)
			assert.InDelta(t, (tt.gender+tt.nationality+tt.experience)/3, r.OverallDiversity, 1e-9)
			assert.Equal(t, tt.rating, r.Rating)
		})
	}
}

func TestDiversity_Distributions(t *testing.T) {
	r := Diversity("Tiangong", []Demographics{
		{"Male", "China", "Rookie"},
		{"Female", "China", "Veteran"},
		{"Male", "China", "Veteran"},
	})

	assert.Equal(t, map[string]int{"Male": 2, "Female": 1}, r.Distributions.Gender)
	assert.Equal(t, map[string]int{"China": 3}, r.Distributions.Nationality)
	assert.Equal(t, map[string]int{"Rookie": 1, "Veteran": 2}, r.Distributions.Experience)
	assert.Zero(t, r.NationalityDiversity)
}

func TestDiversity_EmptyCrew(t *testing.T) {
	r := Diversity("Mir", nil)
	assert.Zero(t, r.CrewSize)
	assert.Zero(t, r.OverallDiversity)
	assert.Equal(t, RatingHomogeneous, r.Rating)
}

func TestDiversity_AlwaysInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	iss := EnrichAstronaut(AstronautRecord{Name: "x", Craft: "ISS"})
	for size := 1; size <= 12; size++ {
		crew := make([]Demographics, size)
		for i := range crew {
			crew[i] = SimulateDemographics(rng, iss)
		}
		r := Diversity("ISS", crew)
		for _, v := range []float64{r.GenderDiversity, r.NationalityDiversity, r.ExperienceDiversity, r.OverallDiversity} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestRatingForScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected DiversityRating
	}{
		{0, RatingHomogeneous},
		{0.29, RatingHomogeneous},
		{0.30, RatingLowDiversity},
		{0.49, RatingLowDiversity},
		{0.50, RatingModeratelyDiverse},
		{0.69, RatingModeratelyDiverse},
		{0.70, RatingHighlyDiverse},
		{1, RatingHighlyDiverse},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RatingForScore(tt.score), "score %.2f", tt.score)
	}
}

func TestSimulateDemographics(t *testing.T) {
	t.Run("nationality from operating countries", func(t *testing.T) {
		tiangong := EnrichAstronaut(AstronautRecord{Name: "x", Craft: "Tiangong"})
		rng := rand.New(rand.NewPCG(9, 9))
		for range 20 {
			d := SimulateDemographics(rng, tiangong)
			assert.Equal(t, "China", d.Nationality)
			assert.Contains(t, genders, d.Gender)
			assert.Contains(t, experienceLevels, d.Experience)
		}
	})

	t.Run("no countries", func(t *testing.T) {
		d := SimulateDemographics(rand.New(rand.NewPCG(1, 1)), EnrichedAstronaut{Name: "x"})
		assert.Equal(t, "Unknown", d.Nationality)
	})

	t.Run("seeded", func(t *testing.T) {
		iss := EnrichAstronaut(AstronautRecord{Name: "x", Craft: "ISS"})
		a := SimulateDemographics(rand.New(rand.NewPCG(3, 4)), iss)
		b := SimulateDemographics(rand.New(rand.NewPCG(3, 4)), iss)
		assert.Equal(t, a, b)
	})
}
