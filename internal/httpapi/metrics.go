package httpapi

import (
    "net/http"
    "strconv"
    "time"

    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    httpRequestsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "pantry",
            Name:      "http_requests_total",
            Help:      "Total number of HTTP requests",
        },
        []string{"method", "status"},
    )
    httpRequestDuration = promauto.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "pantry",
            Name:      "http_request_duration_seconds",
            Help:      "Duration of HTTP requests in seconds",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"method", "status"},
    )
    groceryItems = promauto.NewGauge(prometheus.GaugeOpts{
        Namespace: "pantry",
        Name:      "grocery_items",
        Help:      "Number of grocery items currently stored",
    })
    storedUsers = promauto.NewGauge(prometheus.GaugeOpts{
        Namespace: "pantry",
        Name:      "users",
        Help:      "Number of user records currently stored",
    })
    storedLists = promauto.NewGauge(prometheus.GaugeOpts{
        Namespace: "pantry",
        Name:      "grocery_lists",
        Help:      "Number of grocery lists currently stored",
    })
)

func metricsHandler() http.Handler {
    return promhttp.Handler()
}

// RecordStoreSizes updates the store gauges. It matches memory.Store.OnChange.
func RecordStoreSizes(items, users, lists int) {
    groceryItems.Set(float64(items))
    storedUsers.Set(float64(users))
    storedLists.Set(float64(lists))
}

func metricsMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
        start := time.Now()
        defer func() {
            status := strconv.Itoa(ww.Status())
            httpRequestsTotal.WithLabelValues(r.Method, status).Inc()
            httpRequestDuration.WithLabelValues(r.Method, status).Observe(time.Since(start).Seconds())
        }()
        next.ServeHTTP(ww, r)
    })
}
