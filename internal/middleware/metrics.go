package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tinkerlab_redis_errors_total",
		Help: "Total number of Redis command errors.",
	}, []string{"command"})

	// AssistantRequests counts remote assistant invocations by outcome
	// (ok, content_error, transport_error).
	AssistantRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tinkerlab_assistant_requests_total",
		Help: "Total number of remote assistant function invocations.",
	}, []string{"outcome"})

	// CatalogFallbacks counts how often a catalog surface served the
	// hardcoded fallback sample instead of live rows.
	CatalogFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tinkerlab_catalog_fallbacks_total",
		Help: "Total number of catalog requests served from the fallback sample.",
	}, []string{"collection"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
