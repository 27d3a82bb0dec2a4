package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"

	"dealerpulse/internal/infrastructure"
)

// HTTPMetrics records request count, duration, and in-flight gauge on the
// OTel meter exported through Prometheus.
func HTTPMetrics(metrics *infrastructure.HTTPMetrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if metrics == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			start := time.Now()

			metrics.ActiveRequests.Add(ctx, 1)
			defer metrics.ActiveRequests.Add(ctx, -1)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			attrs := infrastructure.RequestAttributes(r.Method, r.URL.Path, ww.Status())
			metrics.RequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
			metrics.RequestDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))
		})
	}
}
