package observability_test

import (
	"context"
	"testing"

	"github.com/aelexs/greeter-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics_NoEndpoint(t *testing.T) {
	cfg := observability.MetricsConfig{
		ServiceName:    "greeter",
		ServiceVersion: "0.0.1",
		Environment:    "test",
		OTLPEndpoint:   "",
	}

	mp, err := observability.InitMetrics(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, mp)

	err = mp.Shutdown(context.Background())
	assert.NoError(t, err)
}

func TestMetricsProvider_ShutdownNilProvider(t *testing.T) {
	mp := &observability.MetricsProvider{}

	err := mp.Shutdown(context.Background())

	assert.NoError(t, err)
}

func TestMeter(t *testing.T) {
	meter := observability.Meter("test")

	counter, err := meter.Int64Counter("test.counter")

	require.NoError(t, err)
	assert.NotNil(t, counter)
}
