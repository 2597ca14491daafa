package httpapi

import (
    "context"
    "net/http"

    "github.com/tinoosan/pantry/internal/errs"
    "github.com/tinoosan/pantry/internal/pantry"
    "github.com/tinoosan/pantry/internal/service/grocerylist"
    "github.com/tinoosan/pantry/internal/service/user"
)

type ctxKey string

const ctxKeyAddItem ctxKey = "validatedAddItem"
const ctxKeyAddUser ctxKey = "validatedAddUser"
const ctxKeyAddList ctxKey = "validatedAddList"

// validateAddItem decodes POST /groc/add, pulls the item name out of the body and
// stores the remaining fields in the request context. Record rules run in the service.
func (s *Server) validateAddItem() func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            if !requireJSON(w, r) { return }
            body, err := decodeObject(w, r)
            if err != nil {
                badRequest(w, "invalid JSON: "+err.Error())
                return
            }
            raw, ok := body[itemNameField]
            if !ok || raw == nil {
                s.writeStoreErr(w, r, errs.Field("add", "", itemNameField, nil, errs.ErrMissingField))
                return
            }
            name, ok := raw.(string)
            if !ok {
                s.writeStoreErr(w, r, errs.Field("add", "", itemNameField, raw, errs.ErrInvalid))
                return
            }
            delete(body, itemNameField)
            ctx := context.WithValue(r.Context(), ctxKeyAddItem, addItemInput{Name: name, Fields: pantry.Fields(body)})
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// validateAddUser decodes POST /users/add and splits the username from its attributes.
func (s *Server) validateAddUser() func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            if !requireJSON(w, r) { return }
            body, err := decodeObject(w, r)
            if err != nil {
                badRequest(w, "invalid JSON: "+err.Error())
                return
            }
            username, attrs, err := user.SplitFields(body)
            if err != nil {
                s.writeStoreErr(w, r, err)
                return
            }
            ctx := context.WithValue(r.Context(), ctxKeyAddUser, addUserInput{Username: username, Attrs: attrs})
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}

// validateAddList decodes POST /groc_list/groc_list/add into an owner and a list.
func (s *Server) validateAddList() func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            if !requireJSON(w, r) { return }
            body, err := decodeObject(w, r)
            if err != nil {
                badRequest(w, "invalid JSON: "+err.Error())
                return
            }
            owner, list, err := grocerylist.ParseSubmission(body)
            if err != nil {
                s.writeStoreErr(w, r, err)
                return
            }
            ctx := context.WithValue(r.Context(), ctxKeyAddList, addListInput{Owner: owner, List: list})
            next.ServeHTTP(w, r.WithContext(ctx))
        })
    }
}
