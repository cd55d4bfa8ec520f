package pipeline

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
	"github.com/couchcryptid/astronaut-etl/internal/observability"
)

// RunTransformer turns one acquisition snapshot into a RunReport by driving
// the domain engines in dependency order.
type RunTransformer struct {
	missionDays int
	concurrency int
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// NewTransformer creates a RunTransformer. concurrency bounds the
// per-astronaut fan-out; values below 1 run sequentially. A non-positive
// missionDays falls back to domain.DefaultMissionDays.
func NewTransformer(missionDays, concurrency int, logger *slog.Logger, metrics *observability.Metrics) *RunTransformer {
	if concurrency < 1 {
		concurrency = 1
	}
	if missionDays <= 0 {
		missionDays = domain.DefaultMissionDays
	}
	return &RunTransformer{
		missionDays: missionDays,
		concurrency: concurrency,
		logger:      logger,
		metrics:     metrics,
	}
}

// Transform enriches the astronauts, derives per-astronaut metrics, groups
// them by craft, and stages the correlation row for the given weather.
func (t *RunTransformer) Transform(ctx context.Context, seed uint64, astronauts []domain.AstronautRecord, weather domain.WeatherObservation) (domain.RunReport, error) {
	enriched, err := domain.Enrich(astronauts)
	if err != nil {
		return domain.RunReport{}, err
	}

	unknown := domain.CountUnknownCrafts(enriched)
	t.metrics.AstronautsEnriched.Add(float64(len(enriched)))
	t.metrics.UnknownCrafts.Add(float64(unknown))
	t.logger.Info("astronauts enriched", "count", len(enriched), "unknown_crafts", unknown)

	profiles, err := t.profile(ctx, seed, enriched)
	if err != nil {
		return domain.RunReport{}, err
	}

	groups := domain.GroupByCraft(enriched)
	diversity := make([]domain.DiversityReport, 0, len(groups))
	for _, g := range groups {
		crew := make([]domain.Demographics, 0, len(g.Members))
		for _, p := range profiles {
			if p.Astronaut.Craft == g.Craft {
				crew = append(crew, p.Demographics)
			}
		}
		diversity = append(diversity, domain.Diversity(g.Craft, crew))
	}

	correlation := domain.Stage(enriched, weather)

	return domain.RunReport{
		RunID:       uuid.NewString(),
		GeneratedAt: domain.Now().UTC(),
		Seed:        seed,
		MissionDays: t.missionDays,
		Weather:     weather,
		Profiles:    profiles,
		Groups:      groups,
		Summaries:   domain.SummarizeCrafts(enriched),
		Diversity:   diversity,
		Agencies:    domain.CountByAgency(enriched),
		Correlation: correlation,
		Analysis:    domain.AnalyzeCorrelation([]domain.CorrelationRecord{correlation}),
	}, nil
}

// profile computes distance, health, and demographics for every astronaut.
// Each index draws from its own generator so results do not depend on
// scheduling order.
func (t *RunTransformer) profile(ctx context.Context, seed uint64, enriched []domain.EnrichedAstronaut) ([]domain.AstronautProfile, error) {
	profiles := make([]domain.AstronautProfile, len(enriched))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)
	for i, a := range enriched {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			health := domain.EvaluateHealth(domain.SimulateVitals(rng))
			profiles[i] = domain.AstronautProfile{
				Astronaut:    a,
				Distance:     domain.MissionDistanceFor(a, t.missionDays),
				Health:       health,
				Demographics: domain.SimulateDemographics(rng, a),
			}
			t.metrics.HealthStatus.WithLabelValues(string(health.HealthStatus)).Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return profiles, nil
}
