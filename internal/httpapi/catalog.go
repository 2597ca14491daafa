package httpapi

import (
    "net/http"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/pantry/internal/dictionary"
    "github.com/tinoosan/pantry/internal/pantry"
)

// GET /groc_types/list
func (s *Server) listGroceryTypes(w http.ResponseWriter, r *http.Request) {
    toJSON(w, http.StatusOK, map[string][]pantry.GroceryType{keyGroceryTypesList: dictionary.Types()})
}

// GET /groc_types/details/{groc_type} lists stored items of a catalog type.
// Unknown tags are 404; a known tag with no items is an empty list.
func (s *Server) groceryTypeDetails(w http.ResponseWriter, r *http.Request) {
    t := pantry.GroceryType(chi.URLParam(r, "groc_type"))
    names, err := s.groceries.ItemsOfType(r.Context(), t)
    if err != nil { s.writeStoreErr(w, r, err); return }
    resp := typeDetailsResponse{Type: t, Items: names}
    for _, d := range dictionary.Definitions() {
        if d.Code == t { resp.Label = d.Label; break }
    }
    toJSON(w, http.StatusOK, resp)
}
