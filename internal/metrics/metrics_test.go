package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	views := testutil.ToFloat64(viewsTotal.WithLabelValues(ViewSourceLanding))
	clicks := testutil.ToFloat64(clicksTotal)
	platformClicks := testutil.ToFloat64(platformClicksTotal)

	r.View(ViewSourceLanding)
	r.Click()
	r.PlatformClick()

	assert.InDelta(t, views+1, testutil.ToFloat64(viewsTotal.WithLabelValues(ViewSourceLanding)), 0)
	assert.InDelta(t, clicks+2, testutil.ToFloat64(clicksTotal), 0)
	assert.InDelta(t, platformClicks+1, testutil.ToFloat64(platformClicksTotal), 0)
}

func TestObserveHTTP(t *testing.T) {
	done := RequestStarted()
	assert.InDelta(t, 1, testutil.ToFloat64(httpInFlight), 0)
	done()
	assert.InDelta(t, 0, testutil.ToFloat64(httpInFlight), 0)

	ObserveHTTP(HTTPObservation{
		Method:   http.MethodGet,
		Route:    "/api/smartlinks/:id",
		Status:   http.StatusNotFound,
		Duration: time.Millisecond,
	})
	assert.InDelta(t, 1,
		testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/smartlinks/:id", "404")), 0)
}
