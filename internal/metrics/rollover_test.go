package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolloverObserve(t *testing.T) {
	m := NewRollover()

	m.Observe(ResultSuccess, 2, time.Millisecond)
	m.Observe(ResultFailure, 3, time.Millisecond)
	m.Observe(ResultInvalid, 0, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(ResultInvalid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.clones), "failed runs must not count clones")
}

func TestRolloverNilIsNoop(t *testing.T) {
	var m *Rollover
	assert.NotPanics(t, func() { m.Observe(ResultSuccess, 1, time.Second) })
}

func TestRolloverHandler(t *testing.T) {
	m := NewRollover()
	m.Observe(ResultSuccess, 1, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "promo_rollover_clones_total 1"))
}
