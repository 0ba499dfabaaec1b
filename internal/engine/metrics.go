package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// Latency: сколько времени заняла обработка команды
	CommandDuration *prometheus.HistogramVec

	// Traffic: общее кол-во команд по имени и исходу
	CommandsTotal *prometheus.CounterVec

	// Errors: классификация отказов командного слоя
	ErrorsTotal *prometheus.CounterVec

	// Heartbeats по исходу (ok / failed)
	HeartbeatsTotal *prometheus.CounterVec

	// Попытки регистрации у оркестратора
	RegistrationAttempts prometheus.Counter

	// Saturation: состояние Circuit Breaker канала до оркестратора (0 - ок, 1 - выбило)
	CircuitBreakerState prometheus.Gauge

	// Audit: события, сброшенные при переполнении буфера зеркала
	AuditDroppedTotal prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	// Null Object Pattern - если рег не передан, используем локальный, который никуда не подключен
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		CommandDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kms_command_duration_seconds",
			Help:    "Histogram of command handling latencies.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"command", "status"}),

		CommandsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "kms_commands_total",
			Help: "Total number of processed commands.",
		}, []string{"command"}),

		ErrorsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "kms_errors_total",
			Help: "Total number of errors by type.",
		}, []string{"type"}), // типы: validation, not_found, invalid_state, approval_required, rate_limit, internal

		HeartbeatsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "kms_heartbeats_total",
			Help: "Total number of heartbeat attempts by outcome.",
		}, []string{"outcome"}),

		RegistrationAttempts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "kms_registration_attempts_total",
			Help: "Total number of registration attempts against the orchestrator.",
		}),

		CircuitBreakerState: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "kms_circuit_breaker_state",
			Help: "Current state of the orchestrator circuit breaker (0=closed, 1=open).",
		}),

		AuditDroppedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "kms_audit_dropped_total",
			Help: "Audit events dropped due to mirror buffer overflow.",
		}),
	}
}
