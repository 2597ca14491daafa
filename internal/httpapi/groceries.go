// Grocery handlers: list, details, add, replace, quantity, remove.
package httpapi

import (
    "net/http"

    chi "github.com/go-chi/chi/v5"

    "github.com/tinoosan/pantry/internal/pantry"
)

// GET /groc/list
func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
    names, err := s.groceries.ListItems(r.Context())
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, map[string][]string{keyGroceryList: names})
}

// GET /groc/dict
func (s *Server) itemsDict(w http.ResponseWriter, r *http.Request) {
    items, err := s.groceries.All(r.Context())
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, items)
}

// GET /groc/types lists the types present among stored items.
func (s *Server) distinctTypes(w http.ResponseWriter, r *http.Request) {
    types, err := s.groceries.DistinctTypes(r.Context())
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, map[string][]pantry.GroceryType{keyGroceryTypes: types})
}

// GET /groc/details/{name}
func (s *Server) itemDetails(w http.ResponseWriter, r *http.Request) {
    name := chi.URLParam(r, "name")
    rec, err := s.groceries.Details(r.Context(), name)
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, itemResponse{Name: name, Record: rec})
}

// POST /groc/add
func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
    in, ok := r.Context().Value(ctxKeyAddItem).(addItemInput)
    if !ok {
        writeErr(w, http.StatusInternalServerError, "validated request missing", "internal")
        return
    }
    rec, err := s.groceries.Add(r.Context(), in.Name, in.Fields)
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusCreated, itemResponse{Name: in.Name, Record: rec})
}

// PUT /groc/{name} replaces the whole record.
func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
    if !requireJSON(w, r) { return }
    name := chi.URLParam(r, "name")
    body, err := decodeObject(w, r)
    if err != nil {
        badRequest(w, "invalid JSON: "+err.Error())
        return
    }
    rec, err := s.groceries.Update(r.Context(), name, pantry.Fields(body))
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, itemResponse{Name: name, Record: rec})
}

// PATCH /groc/{name}/quantity with body {"quantity": n}
func (s *Server) updateQuantity(w http.ResponseWriter, r *http.Request) {
    if !requireJSON(w, r) { return }
    name := chi.URLParam(r, "name")
    body, err := decodeObject(w, r)
    if err != nil {
        badRequest(w, "invalid JSON: "+err.Error())
        return
    }
    rec, err := s.groceries.UpdateQuantityValue(r.Context(), name, body[pantry.FieldQuantity])
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, itemResponse{Name: name, Record: rec})
}

// DELETE /groc/{name}
func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
    name := chi.URLParam(r, "name")
    if err := s.groceries.Remove(r.Context(), name); err != nil {
        s.writeStoreErr(w, r, err)
        return
    }
    w.WriteHeader(http.StatusNoContent)
}
