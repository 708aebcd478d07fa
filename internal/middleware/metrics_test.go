package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"deeplinker/internal/middleware"
	"deeplinker/internal/middleware/mocks"
	"deeplinker/internal/tracking"
)

func captureMetric(t *testing.T, route string, handler echo.HandlerFunc, method, target string) tracking.HTTPMetric {
	t.Helper()

	rec := mocks.NewMockHTTPRecorder(t)

	var captured tracking.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m tracking.HTTPMetric) {
			captured = m
		}).Return().Once()

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.Add(method, route, handler)

	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "192.168.1.1:12345"
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	return captured
}

func TestMetrics_SuccessfulRequest(t *testing.T) {
	m := captureMetric(t, "/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, http.MethodGet, "/test")

	assert.Equal(t, http.MethodGet, m.Method)
	assert.Equal(t, "/test", m.Path)
	assert.Equal(t, http.StatusOK, m.StatusCode)
	assert.GreaterOrEqual(t, m.DurationMs, 0.0)
	assert.Equal(t, "192.168.1.1", m.ClientIP)
	assert.Empty(t, m.Error)
}

func TestMetrics_RequestWithError(t *testing.T) {
	m := captureMetric(t, "/error", func(c echo.Context) error {
		return errors.New("something went wrong")
	}, http.MethodGet, "/error")

	assert.Equal(t, "something went wrong", m.Error)
}

func TestMetrics_HTTPError(t *testing.T) {
	m := captureMetric(t, "/http-error", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}, http.MethodGet, "/http-error")

	assert.Equal(t, http.StatusNotFound, m.StatusCode)
}

// The recorded path is the route template, so per-slug cardinality stays
// out of the metrics table.
func TestMetrics_PathParameter(t *testing.T) {
	m := captureMetric(t, "/r/:slug", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, http.MethodGet, "/r/abc123")

	assert.Equal(t, "/r/:slug", m.Path)
}
