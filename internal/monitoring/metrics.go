package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	vendasCriadas = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_vendas_criadas_total",
			Help: "Sales created through the storefront by payment method",
		},
		[]string{"metodo"},
	)

	statusPolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_status_polls_total",
			Help: "Payment status reads by resulting status",
		},
		[]string{"status"},
	)
)

// TrackVendaCriada counts a successful sale creation.
func TrackVendaCriada(metodo string) {
	vendasCriadas.WithLabelValues(metodo).Inc()
}

// TrackStatusPoll counts one payment status read.
func TrackStatusPoll(status string) {
	statusPolls.WithLabelValues(status).Inc()
}

// Middleware records per-route request counts and latency. The route
// template is used instead of the raw path so venda IDs don't explode
// the label set.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		httpDuration.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
