// Grocery list handlers. A user holds at most one list; re-submitting replaces it.
package httpapi

import (
    "net/http"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/pantry/internal/pantry"
)

// GET /groc_list/list
func (s *Server) listListOwners(w http.ResponseWriter, r *http.Request) {
    owners, err := s.lists.Owners(r.Context())
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, map[string][]string{keyListOwners: owners})
}

// GET /groc_list/dict
func (s *Server) listsDict(w http.ResponseWriter, r *http.Request) {
    all, err := s.lists.All(r.Context())
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, all)
}

// GET /groc_list/details/{user_name}
func (s *Server) listDetails(w http.ResponseWriter, r *http.Request) {
    owner := chi.URLParam(r, pantry.FieldListOwner)
    l, err := s.lists.Get(r.Context(), owner)
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, listResponse{Owner: owner, GroceryList: l})
}

// POST /groc_list/groc_list/add
func (s *Server) addList(w http.ResponseWriter, r *http.Request) {
    in, ok := r.Context().Value(ctxKeyAddList).(addListInput)
    if !ok {
        writeErr(w, http.StatusInternalServerError, "validated request missing", "internal")
        return
    }
    if err := s.lists.Add(r.Context(), in.Owner, in.List); err != nil {
        s.writeStoreErr(w, r, err)
        return
    }
    toJSON(w, http.StatusCreated, listResponse{Owner: in.Owner, GroceryList: in.List})
}
