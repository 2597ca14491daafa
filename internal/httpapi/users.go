package httpapi

import (
    "net/http"

    "github.com/tinoosan/pantry/internal/meta"
)

// GET /users/list
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
    names, err := s.users.ListUsernames(r.Context())
    if err != nil { s.writeStoreErr(w, r, err); return }
    toJSON(w, http.StatusOK, map[string][]string{keyUsersList: names})
}

// GET /users/dict returns every user with passwords masked.
func (s *Server) usersDict(w http.ResponseWriter, r *http.Request) {
    all, err := s.users.All(r.Context())
    if err != nil { s.writeStoreErr(w, r, err); return }
    out := make(map[string]meta.Attributes, len(all))
    for name, attrs := range all {
        out[name] = attrs.Redacted()
    }
    toJSON(w, http.StatusOK, usersDictResponse{Data: out, Type: "Data", Title: "Active Users"})
}

// POST /users/add inserts or overwrites; there is no conflict response.
func (s *Server) addUser(w http.ResponseWriter, r *http.Request) {
    in, ok := r.Context().Value(ctxKeyAddUser).(addUserInput)
    if !ok {
        writeErr(w, http.StatusInternalServerError, "validated request missing", "internal")
        return
    }
    if err := s.users.Add(r.Context(), in.Username, in.Attrs); err != nil {
        s.writeStoreErr(w, r, err)
        return
    }
    toJSON(w, http.StatusCreated, map[string]string{meta.KeyUsername: in.Username})
}
