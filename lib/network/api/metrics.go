package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"boscoin.io/council/lib/metrics"
)

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// MetricsMiddleware counts the requests by route template.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}

		labels := []string{
			metrics.EndpointLabel, endpoint,
			metrics.MethodLabel, r.Method,
			metrics.StatusLabel, strconv.Itoa(recorder.status),
		}
		metrics.API.RequestsTotal.With(labels...).Add(1)
		if recorder.status >= http.StatusBadRequest {
			metrics.API.RequestErrorsTotal.With(labels...).Add(1)
		}
		metrics.API.RequestDurationSeconds.With(labels...).Observe(time.Since(begin).Seconds())
	})
}
