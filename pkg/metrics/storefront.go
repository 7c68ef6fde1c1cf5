package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records counters for the cart and checkout paths.
type StorefrontMetrics struct {
	requestDuration *prometheus.HistogramVec
	cartLines       *prometheus.CounterVec
	ordersPlaced    prometheus.Counter
	orderValue      prometheus.Histogram
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	cartLines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_line_writes_total",
		Help: "Cart line writes, partitioned by merge vs append.",
	}, []string{"outcome"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Successfully placed orders.",
	})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_total_dollars",
		Help:    "Order totals in dollars.",
		Buckets: prometheus.ExponentialBuckets(5, 2, 10),
	})
	reg.MustRegister(requestDuration, cartLines, ordersPlaced, orderValue)
	return &StorefrontMetrics{
		requestDuration: requestDuration,
		cartLines:       cartLines,
		ordersPlaced:    ordersPlaced,
		orderValue:      orderValue,
	}
}

// ObserveRequest records the duration of a handled request.
func (m *StorefrontMetrics) ObserveRequest(route, method string, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(normalizeLabel(route), normalizeLabel(method)).Observe(duration.Seconds())
}

// IncCartMerge counts a cart write that merged into an existing line.
func (m *StorefrontMetrics) IncCartMerge() {
	if m == nil || m.cartLines == nil {
		return
	}
	m.cartLines.WithLabelValues("merge").Inc()
}

// IncCartAppend counts a cart write that appended a new line.
func (m *StorefrontMetrics) IncCartAppend() {
	if m == nil || m.cartLines == nil {
		return
	}
	m.cartLines.WithLabelValues("append").Inc()
}

// ObserveOrder records a successfully placed order and its total.
func (m *StorefrontMetrics) ObserveOrder(totalDollars float64) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.orderValue.Observe(totalDollars)
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
