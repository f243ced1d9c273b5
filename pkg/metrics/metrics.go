package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration mede a duração das requisições HTTP
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "valuation_api_request_duration_seconds",
			Help: "Duração das requisições HTTP em segundos",
		},
		[]string{"path", "method", "status"},
	)

	// ValuationsComputed conta os valuations calculados por método recomendado
	ValuationsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_api_valuations_computed_total",
			Help: "Quantidade de valuations calculados",
		},
		[]string{"method", "source"},
	)

	// CacheHits conta acertos e falhas do cache de relatórios
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_api_cache_hits_total",
			Help: "Quantidade de consultas ao cache",
		},
		[]string{"operation", "result"},
	)

	// DatabaseOperations conta as operações de banco de dados
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_api_database_operations_total",
			Help: "Quantidade de operações de banco de dados",
		},
		[]string{"operation", "status"},
	)

	// SnapshotJobsRunning indica se o job de histórico está em execução
	SnapshotJobsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "valuation_api_snapshot_job_running",
			Help: "1 enquanto o job de histórico de valuation está rodando",
		},
	)
)

// Status converte um erro no rótulo usado pelos contadores
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveDatabase registra o resultado de uma operação de banco
func ObserveDatabase(operation string, err error) {
	DatabaseOperations.WithLabelValues(operation, Status(err)).Inc()
}
