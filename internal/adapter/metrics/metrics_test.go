package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistration(t *testing.T) {
	// Verify all metrics are registered without conflicts
	metrics := []prometheus.Collector{
		TogglesTotal,
		ToggleDuration,
		TogglesRejectedTotal,

		HTTPRequestsTotal,
		HTTPRequestDuration,

		AnalyticsCacheHits,
		AnalyticsComputes,

		RedisOpsTotal,
		RedisOpDuration,
		RedisConnectionErrors,
		CircuitBreakerStateChanges,
		CircuitBreakerState,
	}

	for _, m := range metrics {
		require.NotNil(t, m)
	}
}

func TestTogglesTotal(t *testing.T) {
	before := testutil.ToFloat64(TogglesTotal.WithLabelValues("liked"))
	TogglesTotal.WithLabelValues("liked").Inc()
	after := testutil.ToFloat64(TogglesTotal.WithLabelValues("liked"))
	assert.Equal(t, before+1, after)
}

func TestTogglesRejectedTotal(t *testing.T) {
	before := testutil.ToFloat64(TogglesRejectedTotal.WithLabelValues("rate_limited"))
	TogglesRejectedTotal.WithLabelValues("rate_limited").Inc()
	after := testutil.ToFloat64(TogglesRejectedTotal.WithLabelValues("rate_limited"))
	assert.Equal(t, before+1, after)
}

func TestCircuitBreakerState(t *testing.T) {
	CircuitBreakerState.WithLabelValues("redis").Set(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("redis")))

	CircuitBreakerState.WithLabelValues("redis").Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("redis")))
}

func TestMetricNames(t *testing.T) {
	// Lint the exposition output for the conventions Prometheus expects
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer,
		"vote_toggles_total",
		"vote_toggle_duration_seconds",
		"http_requests_total",
	)
	require.NoError(t, err)

	for _, p := range problems {
		if strings.Contains(p.Text, "counter metrics should") {
			t.Errorf("metric %s: %s", p.Metric, p.Text)
		}
	}
}
