//go:build smoke

package openmeteo

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/astronaut-etl/internal/observability"
)

// These tests hit the real Open-Meteo API.
// Run with: go test -tags=smoke ./internal/adapter/openmeteo/ -v -count=1

func smokeClient() *Client {
	// Kennedy Space Center.
	return NewClient(DefaultBaseURL, 28.57, -80.65, 10*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSmoke_FetchWeather(t *testing.T) {
	obs, err := smokeClient().FetchWeather(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, obs.Timestamp)
	assert.GreaterOrEqual(t, obs.CloudCover, 0.0)
	assert.LessOrEqual(t, obs.CloudCover, 100.0)
	if obs.WeatherCode != nil {
		assert.NotEmpty(t, obs.WeatherDescription)
	}
}

func TestSmoke_CachedSource(t *testing.T) {
	cached := NewCachedSource(smokeClient(), 4, time.Minute, nil, observability.NewMetricsForTesting())

	o1, err := cached.FetchWeather(context.Background())
	require.NoError(t, err)

	o2, err := cached.FetchWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, o1, o2)
}
