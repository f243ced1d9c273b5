package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/valuation-api/pkg/apiErrors"
	"github.com/vfg2006/valuation-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID usado nos logs da requisição
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra cada requisição HTTP com o ID de correlação
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			srw := newStatusResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"query":       r.URL.RawQuery,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.UserAgent(),
			}).Debug("→ Requisição iniciada")

			next.ServeHTTP(srw, r)

			elapsed := time.Since(startTime)
			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": srw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			msg := fmt.Sprintf("Requisição finalizada em %s", formatDuration(elapsed))
			switch {
			case srw.statusCode >= 500:
				logger.Error(msg)
			case srw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("⚠ Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusResponseWriter captura o status code escrito pelo handler
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	if srw, ok := w.(*statusResponseWriter); ok {
		return srw
	}
	return &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (srw *statusResponseWriter) WriteHeader(code int) {
	srw.statusCode = code
	srw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  err,
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("❌ PANIC na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
