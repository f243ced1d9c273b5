package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/valuation-api/pkg/metrics"
)

// Metrics registra a duração da requisição usando o padrão da rota como rótulo,
// evitando um rótulo por ID de empresa
func Metrics(routePath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			srw := newStatusResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(srw, r)

			metrics.RequestDuration.
				WithLabelValues(routePath, r.Method, strconv.Itoa(srw.statusCode)).
				Observe(time.Since(start).Seconds())
		})
	}
}
