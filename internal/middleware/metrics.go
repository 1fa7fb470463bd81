package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis errors by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hireflow_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// ProjectsCreated counts created projects by category.
var ProjectsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hireflow_projects_created_total",
	Help: "Total number of projects created by category",
}, []string{"category"})

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. Each call gets its own registry so repeated server construction
// (tests, embedded use) never collides on collector registration.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(RedisErrors, ProjectsCreated)
	return fiberprometheus.NewWithRegistry(registry, serviceName, "http", "", nil)
}

// MetricsMiddleware returns the request-level metrics handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
