package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Wish metric names
const (
	MetricNameWishPulls       = "wish_pulls_total"
	MetricNameWishItems       = "wish_items_total"
	MetricNameWishFeatured    = "wish_featured_total"
	MetricNameWishStoreErrors = "wish_store_errors_total"
	MetricNameWishPullLatency = "wish_pull_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Wish metric help text
const (
	HelpTextWishPulls       = "Total number of items pulled"
	HelpTextWishItems       = "Total number of items pulled by rarity"
	HelpTextWishFeatured    = "Resolution of 4 and 5 star pulls (featured, off_banner, fate)"
	HelpTextWishStoreErrors = "Total number of failed wish store operations"
	HelpTextWishPullLatency = "Time to load, draw and persist one batch"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelBannerType = "banner_type"
	LabelRarity     = "rarity"
	LabelResult     = "result"
	LabelOperation  = "operation"
)

// Store operation label values
const (
	OperationLoad = "load"
	OperationSave = "save"
)

// PathUnmatched labels requests that matched no route.
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
