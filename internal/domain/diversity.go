package domain

import "math/rand/v2"

// DiversityRating buckets an overall diversity score.
type DiversityRating string

const (
	RatingHomogeneous       DiversityRating = "Homogeneous"
	RatingLowDiversity      DiversityRating = "LowDiversity"
	RatingModeratelyDiverse DiversityRating = "ModeratelyDiverse"
	RatingHighlyDiverse     DiversityRating = "HighlyDiverse"
)

var (
	genders          = []string{"Male", "Female"}
	experienceLevels = []string{"Rookie", "Experienced", "Veteran"}
)

// Demographics are the simulated crew attributes used for diversity scoring.
type Demographics struct {
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Experience  string `json:"experience"`
}

// Distributions counts crew members per category for each dimension.
type Distributions struct {
	Gender      map[string]int `json:"gender"`
	Nationality map[string]int `json:"nationality"`
	Experience  map[string]int `json:"experience"`
}

// DiversityReport scores one spacecraft's crew.
type DiversityReport struct {
	Spacecraft           string          `json:"spacecraft"`
	CrewSize             int             `json:"crew_size"`
	GenderDiversity      float64         `json:"gender_diversity"`
	NationalityDiversity float64         `json:"nationality_diversity"`
	ExperienceDiversity  float64         `json:"experience_diversity"`
	OverallDiversity     float64         `json:"overall_diversity"`
	Rating               DiversityRating `json:"rating"`
	Distributions        Distributions   `json:"distributions"`
}

// SimulateDemographics draws attributes for one astronaut. Nationality is
// picked from the craft's operating countries.
func SimulateDemographics(rng *rand.Rand, a EnrichedAstronaut) Demographics {
	countries := a.OperatingCountries
	if len(countries) == 0 {
		countries = []string{"Unknown"}
	}
	return Demographics{
		Gender:      genders[rng.IntN(len(genders))],
		Nationality: countries[rng.IntN(len(countries))],
		Experience:  experienceLevels[rng.IntN(len(experienceLevels))],
	}
}

// Diversity computes Simpson's index for each dimension of the crew and
// their mean. An empty crew yields a zero Homogeneous report.
func Diversity(craft string, crew []Demographics) DiversityReport {
	dist := Distributions{
		Gender:      map[string]int{},
		Nationality: map[string]int{},
		Experience:  map[string]int{},
	}
	for _, d := range crew {
		dist.Gender[d.Gender]++
		dist.Nationality[d.Nationality]++
		dist.Experience[d.Experience]++
	}

	n := len(crew)
	r := DiversityReport{
		Spacecraft:           craft,
		CrewSize:             n,
		GenderDiversity:      SimpsonIndex(dist.Gender, n),
		NationalityDiversity: SimpsonIndex(dist.Nationality, n),
		ExperienceDiversity:  SimpsonIndex(dist.Experience, n),
		Distributions:        dist,
	}
	r.OverallDiversity = (r.GenderDiversity + r.NationalityDiversity + r.ExperienceDiversity) / 3
	r.Rating = RatingForScore(r.OverallDiversity)
	return r
}

// SimpsonIndex returns 1 - sum((count/total)^2). A zero total returns 0.
func SimpsonIndex(counts map[string]int, total int) float64 {
	if total <= 0 {
		return 0
	}
	var sum float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		sum += p * p
	}
	idx := 1 - sum
	if idx < 0 {
		return 0
	}
	return idx
}

// RatingForScore maps an overall diversity score to its rating.
func RatingForScore(score float64) DiversityRating {
	switch {
	case score >= 0.70:
		return RatingHighlyDiverse
	case score >= 0.50:
		return RatingModeratelyDiverse
	case score >= 0.30:
		return RatingLowDiversity
	default:
		return RatingHomogeneous
	}
}
