package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwinjamescodes/sinotoriables/internal/adapter/metrics"
)

const testRemoteAddr = "1.2.3.4:1234"

func limitedHandler(mw echo.MiddlewareFunc) echo.HandlerFunc {
	inner := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return func(c echo.Context) error {
		return callHandler(inner, c)
	}
}

func hitToggle(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/candidates/1/toggle", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestIPRateLimiterAllowsRequestsUnderLimit(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newIPRateLimiter(ipLimitConfig{ratePerSecond: 10, burst: 3}))

	for range 3 {
		rec := hitToggle(t, e, handler, testRemoteAddr)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestIPRateLimiterBlocksExcessiveRequests(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newIPRateLimiter(ipLimitConfig{ratePerSecond: 0.01, burst: 1}))

	// First request: allowed (burst)
	rec := hitToggle(t, e, handler, testRemoteAddr)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second request: blocked with the structured error shape
	rec = hitToggle(t, e, handler, testRemoteAddr)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rate limit exceeded", resp["error"])
	assert.Equal(t, "rate_limited", resp["type"])
}

func TestIPRateLimiterDifferentIPsAreIndependent(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newIPRateLimiter(ipLimitConfig{ratePerSecond: 0.01, burst: 1}))

	// First IP uses its burst
	rec := hitToggle(t, e, handler, testRemoteAddr)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Second IP still has its own burst
	rec = hitToggle(t, e, handler, "5.6.7.8:5678")
	assert.Equal(t, http.StatusOK, rec.Code)

	// First IP is now blocked
	rec = hitToggle(t, e, handler, testRemoteAddr)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestIPRateLimiterRecordsRejectReason(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newIPRateLimiter(ipLimitConfig{ratePerSecond: 0.01, burst: 1, rejectReason: "ip_throttle"}))

	counter := metrics.TogglesRejectedTotal.WithLabelValues("ip_throttle")
	before := testutil.ToFloat64(counter)

	hitToggle(t, e, handler, testRemoteAddr)
	rec := hitToggle(t, e, handler, testRemoteAddr)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestIPRateLimiterWithoutReasonRecordsNothing(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(newIPRateLimiter(ipLimitConfig{ratePerSecond: 0.01, burst: 1}))

	counter := metrics.TogglesRejectedTotal.WithLabelValues("ip_throttle")
	before := testutil.ToFloat64(counter)

	hitToggle(t, e, handler, testRemoteAddr)
	rec := hitToggle(t, e, handler, testRemoteAddr)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	assert.Equal(t, before, testutil.ToFloat64(counter))
}
