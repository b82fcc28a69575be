package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/creator-leaderboard-api/pkg/log"
)

// LoggingMiddleware registra informações sobre cada requisição HTTP
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Gera um ID de correlação para esta requisição
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			logFields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"duration_ms":    responseTime.Milliseconds(),
				"status_code":    lrw.statusCode,
			}

			logger := log.L.WithFields(logFields)

			switch {
			case lrw.statusCode >= 500:
				logger.Error("Requisição finalizada com erro")
			case lrw.statusCode >= 400:
				logger.Warn("Requisição finalizada com aviso")
			default:
				logger.Info("Requisição finalizada com sucesso")
			}

			if responseTime > 500*time.Millisecond {
				log.L.WithFields(logFields).Warnf("Requisição lenta: %s", responseTime)
			}
		})
	}
}

// loggingResponseWriter é um wrapper para http.ResponseWriter para capturar o status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware captura panics não tratados e devolve 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					correlationID := log.GetCorrelationID(r.Context())

					logger := log.L.WithFields(log.Fields{
						"correlation_id": correlationID,
						"panic_error":    err,
						"method":         r.Method,
						"path":           r.URL.Path,
					})

					logger.Error("Erro não tratado na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
