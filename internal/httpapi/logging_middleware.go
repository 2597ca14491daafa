package httpapi

import (
    "context"
    "log/slog"
    "net/http"
    "runtime/debug"
    "time"

    chi "github.com/go-chi/chi/v5"
    chimw "github.com/go-chi/chi/v5/middleware"
    "github.com/google/uuid"
)

// requestID propagates the client's X-Request-Id or assigns a fresh UUID.
// The id is stored under chi's key so chimw.GetReqID keeps working.
func requestID(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        id := r.Header.Get(chimw.RequestIDHeader)
        if id == "" { id = uuid.NewString() }
        w.Header().Set(chimw.RequestIDHeader, id)
        ctx := context.WithValue(r.Context(), chimw.RequestIDKey, id)
        next.ServeHTTP(w, r.WithContext(ctx))
    })
}

// routePattern reports the chi pattern that matched r, e.g. "/groc/{name}".
// It is empty until routing has run and for requests that matched nothing.
func routePattern(r *http.Request) string {
    if rctx := chi.RouteContext(r.Context()); rctx != nil { return rctx.RoutePattern() }
    return ""
}

// requestLogger emits one line per request once the handler returns. Server
// errors log at ERROR and client errors at WARN, so rejected record writes stand
// out from reads.
func requestLogger(l *slog.Logger) func(next http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
            start := time.Now()
            next.ServeHTTP(ww, r)

            level := slog.LevelInfo
            switch {
            case ww.Status() >= http.StatusInternalServerError:
                level = slog.LevelError
            case ww.Status() >= http.StatusBadRequest:
                level = slog.LevelWarn
            }
            l.LogAttrs(r.Context(), level, "request",
                slog.String("req_id", chimw.GetReqID(r.Context())),
                slog.String("method", r.Method),
                slog.String("route", routePattern(r)),
                slog.String("path", r.URL.Path),
                slog.Int("status", ww.Status()),
                slog.Int("bytes", ww.BytesWritten()),
                slog.Duration("duration", time.Since(start)),
            )
        })
    }
}

// recoverer turns a handler panic into a JSON 500 and logs it with the route.
func recoverer(l *slog.Logger) func(next http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            defer func() {
                rec := recover()
                if rec == nil { return }
                if rec == http.ErrAbortHandler { panic(rec) }
                l.Error("handler panic",
                    "req_id", chimw.GetReqID(r.Context()),
                    "route", routePattern(r),
                    "err", rec,
                    "stack", string(debug.Stack()),
                )
                writeErr(w, http.StatusInternalServerError, "internal error", "internal")
            }()
            next.ServeHTTP(w, r)
        })
    }
}
