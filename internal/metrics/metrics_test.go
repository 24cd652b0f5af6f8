package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ItemsPriced.WithLabelValues("raw").Inc()
	m.ItemsPriced.WithLabelValues("raw").Inc()
	m.UsersAdded.Inc()
	m.ValidationFailures.WithLabelValues("courses").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ItemsPriced.WithLabelValues("raw")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UsersAdded))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.UsersDeleted))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	count, err := testutil.GatherAndCount(m.Registry, "coursework_items_priced_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
