package httpapi

import (
    "context"
    "net/http"
    "sort"
    "time"

    chi "github.com/go-chi/chi/v5"
)

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
    ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
    defer cancel()
    for _, rc := range s.ready {
        if err := rc.Ready(ctx); err != nil { w.WriteHeader(http.StatusServiceUnavailable); return }
    }
    w.WriteHeader(http.StatusOK)
}

// listEndpoints reports every registered route as "METHOD /path", sorted.
func (s *Server) listEndpoints(w http.ResponseWriter, r *http.Request) {
    routes := make([]string, 0)
    walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
        routes = append(routes, method+" "+route)
        return nil
    }
    if err := chi.Walk(s.rt, walk); err != nil {
        s.writeStoreErr(w, r, err)
        return
    }
    sort.Strings(routes)
    toJSON(w, http.StatusOK, map[string][]string{keyEndpoints: routes})
}

func (s *Server) mainPage(w http.ResponseWriter, r *http.Request) {
    toJSON(w, http.StatusOK, mainPageResponse{
        Title:   "Main Page",
        Default: 0,
        Choices: map[string]menuChoice{
            "1": {Text: "List Grocery Types", URL: "/groc_types/list"},
            "2": {Text: "List Groceries", URL: "/groc/list"},
            "3": {Text: "List Users", URL: "/users/list"},
            "4": {Text: "List Grocery Lists", URL: "/groc_list/list"},
        },
    })
}
