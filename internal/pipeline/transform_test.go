package pipeline_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
	"github.com/couchcryptid/astronaut-etl/internal/observability"
	"github.com/couchcryptid/astronaut-etl/internal/pipeline"
)

func TestRunTransformer_Transform(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC))
	domain.SetClock(fakeClock)
	t.Cleanup(func() {
		domain.SetClock(nil)
	})

	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(180, 4, slog.Default(), metrics)

	records := append(sampleAstronauts(), domain.AstronautRecord{Name: "Test Pilot", Craft: "Dragon"})
	report, err := tfm.Transform(context.Background(), 42, records, sampleWeather())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, fakeClock.Now(), report.GeneratedAt)
	assert.Equal(t, 180, report.MissionDays)
	require.Len(t, report.Profiles, 4)

	for i, p := range report.Profiles {
		assert.Equal(t, records[i].Name, p.Astronaut.Name)
	}

	iss := report.Profiles[0]
	require.NotNil(t, iss.Distance.TotalDistanceKM)
	assert.InDelta(t, 27600.0*180*24, *iss.Distance.TotalDistanceKM, 1e-6)

	dragon := report.Profiles[3]
	assert.Equal(t, domain.UnknownCraftType, dragon.Astronaut.SpacecraftType)
	assert.Nil(t, dragon.Distance.TotalDistanceKM)
	assert.Equal(t, "Unknown", dragon.Demographics.Nationality)

	assert.Equal(t, []string{"ISS", "Tiangong", "Dragon"}, report.Groups.Crafts())
	require.Len(t, report.Diversity, 3)
	assert.Equal(t, "ISS", report.Diversity[0].Spacecraft)
	assert.Equal(t, 2, report.Diversity[0].CrewSize)
	assert.Equal(t, 1, report.Diversity[1].CrewSize)
	assert.Equal(t, domain.RatingHomogeneous, report.Diversity[1].Rating)

	assert.Equal(t, 4, report.Correlation.NumAstronauts)
	assert.Equal(t, 3, report.Correlation.NumSpacecraft)
	assert.InDelta(t, 21.4, report.Correlation.Temperature, 1e-9)
	assert.Equal(t, domain.SingleObservationMessage, report.Analysis.Message)
	assert.Equal(t, 1, report.Analysis.SampleSize)

	assert.InDelta(t, 4.0, testutil.ToFloat64(metrics.AstronautsEnriched), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(metrics.UnknownCrafts), 1e-9)
}

func TestRunTransformer_ReproducibleAcrossConcurrency(t *testing.T) {
	records := make([]domain.AstronautRecord, 0, 24)
	crafts := []string{"ISS", "Tiangong", "Shenzhou"}
	for i := range 24 {
		records = append(records, domain.AstronautRecord{Name: "Crew " + string(rune('A'+i)), Craft: crafts[i%len(crafts)]})
	}

	run := func(concurrency int) domain.RunReport {
		tfm := pipeline.NewTransformer(90, concurrency, slog.Default(), observability.NewMetricsForTesting())
		report, err := tfm.Transform(context.Background(), 1234, records, sampleWeather())
		require.NoError(t, err)
		return report
	}

	sequential := run(1)
	parallel := run(8)

	ignore := cmpopts.IgnoreFields(domain.RunReport{}, "RunID", "GeneratedAt")
	if diff := cmp.Diff(sequential, parallel, ignore); diff != "" {
		t.Fatalf("report differs by concurrency (-seq +par):\n%s", diff)
	}

	other, err := pipeline.NewTransformer(90, 8, slog.Default(), observability.NewMetricsForTesting()).
		Transform(context.Background(), 99, records, sampleWeather())
	require.NoError(t, err)
	assert.False(t, cmp.Equal(sequential.Profiles, other.Profiles), "different seeds should produce different profiles")
}

func TestRunTransformer_MissingField(t *testing.T) {
	tfm := pipeline.NewTransformer(180, 2, slog.Default(), observability.NewMetricsForTesting())
	_, err := tfm.Transform(context.Background(), 1, []domain.AstronautRecord{{Name: "A", Craft: ""}}, sampleWeather())

	var mfe *domain.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "craft", mfe.Field)
}

func TestRunTransformer_CancelledContext(t *testing.T) {
	tfm := pipeline.NewTransformer(180, 1, slog.Default(), observability.NewMetricsForTesting())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tfm.Transform(ctx, 1, sampleAstronauts(), sampleWeather())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunTransformer_DefaultMissionDays(t *testing.T) {
	tfm := pipeline.NewTransformer(0, 1, slog.Default(), observability.NewMetricsForTesting())
	report, err := tfm.Transform(context.Background(), 1, sampleAstronauts(), sampleWeather())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMissionDays, report.MissionDays)
	assert.Equal(t, domain.DefaultMissionDays, report.Profiles[0].Distance.MissionDays)
}
