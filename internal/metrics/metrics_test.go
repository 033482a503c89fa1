package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordItem(t *testing.T) {
	beforeItems := testutil.ToFloat64(WishItems.WithLabelValues("weapon", "5"))
	beforeFate := testutil.ToFloat64(WishFeatured.WithLabelValues("weapon", "5", "fate"))
	beforePulls := testutil.ToFloat64(WishPulls.WithLabelValues("weapon"))

	RecordItem("weapon", 5, "fate")
	RecordItem("weapon", 3, "")

	assert.Equal(t, beforeItems+1, testutil.ToFloat64(WishItems.WithLabelValues("weapon", "5")))
	assert.Equal(t, beforeFate+1, testutil.ToFloat64(WishFeatured.WithLabelValues("weapon", "5", "fate")))
	assert.Equal(t, beforePulls+2, testutil.ToFloat64(WishPulls.WithLabelValues("weapon")))
}

func TestRecordStoreError(t *testing.T) {
	before := testutil.ToFloat64(WishStoreErrors.WithLabelValues(OperationSave))
	RecordStoreError(OperationSave)
	assert.Equal(t, before+1, testutil.ToFloat64(WishStoreErrors.WithLabelValues(OperationSave)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/banners/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/banners/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/banners/weapon", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/banners/{id}", "418")))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
