package domain

const (
	// SingleObservationMessage is reported when too few rows exist to correlate.
	SingleObservationMessage = "Single data point collected. Correlation analysis requires historical data."
	// DeferredAnalysisMessage is reported when rows exist but no statistic is computed here.
	DeferredAnalysisMessage = "Multiple data points staged. Correlation coefficients are computed by the downstream consumer."
)

// CorrelationRecord is the one row a run contributes toward correlating
// astronaut counts with weather.
type CorrelationRecord struct {
	Timestamp     string  `json:"timestamp"`
	NumAstronauts int     `json:"num_astronauts"`
	NumSpacecraft int     `json:"num_spacecraft"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"wind_speed"`
	CloudCover    float64 `json:"cloud_cover"`
}

// CorrelationAnalysis is informational only: it carries the collected row
// and a message, never a statistic.
type CorrelationAnalysis struct {
	Message       string            `json:"message"`
	SampleSize    int               `json:"sample_size"`
	DataCollected CorrelationRecord `json:"data_collected"`
}

// Stage merges the astronaut snapshot with one weather observation.
func Stage(enriched []EnrichedAstronaut, weather WeatherObservation) CorrelationRecord {
	return CorrelationRecord{
		Timestamp:     weather.Timestamp,
		NumAstronauts: len(enriched),
		NumSpacecraft: CountDistinctCrafts(enriched),
		Temperature:   weather.Temperature,
		WindSpeed:     weather.WindSpeed,
		CloudCover:    weather.CloudCover,
	}
}

// AnalyzeCorrelation reports on the staged rows. Computing a coefficient is
// left to whatever accumulates rows across runs, so this only ever returns
// the latest row with an explanatory message.
func AnalyzeCorrelation(rows []CorrelationRecord) CorrelationAnalysis {
	a := CorrelationAnalysis{
		Message:    SingleObservationMessage,
		SampleSize: len(rows),
	}
	if len(rows) > 1 {
		a.Message = DeferredAnalysisMessage
	}
	if len(rows) > 0 {
		a.DataCollected = rows[len(rows)-1]
	}
	return a
}
