package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Wish Metrics
var (
	WishPulls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWishPulls,
			Help: HelpTextWishPulls,
		},
		[]string{LabelBannerType},
	)

	WishItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWishItems,
			Help: HelpTextWishItems,
		},
		[]string{LabelBannerType, LabelRarity},
	)

	WishFeatured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWishFeatured,
			Help: HelpTextWishFeatured,
		},
		[]string{LabelBannerType, LabelRarity, LabelResult},
	)

	WishStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWishStoreErrors,
			Help: HelpTextWishStoreErrors,
		},
		[]string{LabelOperation},
	)

	WishPullDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameWishPullLatency,
			Help:    HelpTextWishPullLatency,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelBannerType},
	)
)

// RecordItem counts one pulled item. result is empty for 3-star filler.
func RecordItem(bannerType string, rarity int, result string) {
	r := strconv.Itoa(rarity)
	WishPulls.WithLabelValues(bannerType).Inc()
	WishItems.WithLabelValues(bannerType, r).Inc()
	if result != "" {
		WishFeatured.WithLabelValues(bannerType, r, result).Inc()
	}
}

// RecordStoreError counts a failed store operation.
func RecordStoreError(operation string) {
	WishStoreErrors.WithLabelValues(operation).Inc()
}
