package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command errors by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "atelier_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// SessionOperations counts session store operations by operation and outcome.
var SessionOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "atelier_session_operations_total",
	Help: "Total number of session store operations by operation and result",
}, []string{"operation", "result"})

// WelcomeEmails counts welcome email dispatch outcomes.
var WelcomeEmails = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "atelier_welcome_emails_total",
	Help: "Total number of welcome email dispatch attempts by result",
}, []string{"result"})

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the HTTP instrumentation handler for the given
// fiberprometheus instance.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
