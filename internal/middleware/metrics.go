package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters. Cascade deletions are the interesting one to alert on:
// a spike usually means a brigading wave rather than genuinely bad content.
var (
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notebooks_redis_errors_total",
		Help: "Redis command failures by command name.",
	}, []string{"command"})

	PostReports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notebooks_post_reports_total",
		Help: "Post reports accepted.",
	})

	CascadeDeletions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notebooks_cascade_deletions_total",
		Help: "Posts removed by the report-threshold cascade.",
	})

	MediaDeleteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notebooks_media_delete_failures_total",
		Help: "Best-effort media deletions that failed during a cascade.",
	})
)

var (
	promOnce sync.Once
	promMW   *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. The middleware registers its collectors in the default registry, so
// it is created once and shared; repeated calls return the same instance.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMW = fiberprometheus.New(serviceName)
	})
	return promMW
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
