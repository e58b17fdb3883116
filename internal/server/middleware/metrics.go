package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics — RED-метрики HTTP-слоя: число запросов и длительность
// в разрезе метода, шаблона маршрута chi и статуса.
type HTTPMetrics struct {
	reqs *prometheus.CounterVec
	durs *prometheus.HistogramVec
}

// NewHTTPMetrics регистрирует метрики в reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	const namespace = "tabkeeper"
	const subsystem = "http"

	reqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests_total",
		Help:      "Number of HTTP requests handled",
	}, []string{"method", "route", "status"})

	durs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	reg.MustRegister(reqs, durs)

	return &HTTPMetrics{reqs: reqs, durs: durs}
}

func (m *HTTPMetrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := wrapWriter(w)
			next.ServeHTTP(wr, r)

			// метка по шаблону маршрута, без id вкладок
			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			status := strconv.Itoa(wr.StatusCode())

			m.reqs.WithLabelValues(r.Method, route, status).Inc()
			m.durs.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		})
	}
}
