// Package httpapi wires the HTTP surface of the pantry service.
// It keeps handlers thin, delegating record rules to the service layer.
package httpapi

import (
    "io"
    "log/slog"
    "net/http"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/pantry/internal/service/grocery"
    "github.com/tinoosan/pantry/internal/service/grocerylist"
    "github.com/tinoosan/pantry/internal/service/user"
)

// Server wires handlers and middleware using Chi.
// It composes read (repo) and write (writer) dependencies through services.
type Server struct {
    groceries grocery.Service
    users     user.Service
    lists     grocerylist.Service
    ready     []ReadyChecker
    log       *slog.Logger
    rt        *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// Any dependency implementing ReadyChecker participates in /readyz, once
// however many roles it fills.
func New(grepo grocery.Repo, gwriter grocery.Writer, urepo user.Repo, uwriter user.Writer, lrepo grocerylist.Repo, lwriter grocerylist.Writer, logger *slog.Logger) *Server {
    if logger == nil { logger = slog.New(slog.NewTextHandler(io.Discard, nil)) }
    r := chi.NewRouter()
    r.Use(requestID)
    r.Use(requestLogger(logger))
    // metrics wraps recoverer so panicking requests are counted as 500s.
    r.Use(metricsMiddleware)
    r.Use(recoverer(logger))

    s := &Server{
        groceries: grocery.New(grepo, gwriter, logger),
        users:     user.New(urepo, uwriter, logger),
        lists:     grocerylist.New(lrepo, lwriter, logger),
        rt:        r,
        log:       logger,
    }
    seen := make(map[ReadyChecker]struct{})
    for _, dep := range []any{grepo, gwriter, urepo, uwriter, lrepo, lwriter} {
        rc, ok := dep.(ReadyChecker)
        if !ok { continue }
        if _, dup := seen[rc]; dup { continue }
        seen[rc] = struct{}{}
        s.ready = append(s.ready, rc)
    }
    s.routes()
    return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches any per-route middleware.
func (s *Server) routes() {
    s.rt.Get("/endpoints", s.listEndpoints)
    s.rt.Get("/main_page", s.mainPage)
    // Grocery types
    s.rt.Get("/groc_types/list", s.listGroceryTypes)
    s.rt.Get("/groc_types/details/{groc_type}", s.groceryTypeDetails)
    // Groceries
    s.rt.Get("/groc/list", s.listItems)
    s.rt.Get("/groc/dict", s.itemsDict)
    s.rt.Get("/groc/types", s.distinctTypes)
    s.rt.Get("/groc/details/{name}", s.itemDetails)
    s.rt.With(s.validateAddItem()).Post("/groc/add", s.addItem)
    s.rt.Put("/groc/{name}", s.updateItem)
    s.rt.Patch("/groc/{name}/quantity", s.updateQuantity)
    s.rt.Delete("/groc/{name}", s.removeItem)
    // Users
    s.rt.Get("/users/list", s.listUsers)
    s.rt.Get("/users/dict", s.usersDict)
    s.rt.With(s.validateAddUser()).Post("/users/add", s.addUser)
    // Grocery lists
    s.rt.Get("/groc_list/list", s.listListOwners)
    s.rt.Get("/groc_list/dict", s.listsDict)
    s.rt.Get("/groc_list/details/{user_name}", s.listDetails)
    s.rt.With(s.validateAddList()).Post("/groc_list/groc_list/add", s.addList)
    // Health / metrics (unversioned)
    s.rt.Get("/healthz", s.healthz)
    s.rt.Get("/readyz", s.readyz)
    s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
