package httpapi

import (
    "errors"
    "net/http"

    "github.com/tinoosan/pantry/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
    Error string `json:"error"`
    Code  string `json:"code,omitempty"`
    Field string `json:"field,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
    toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg, "bad_request") }

// statusFor maps a store error kind to its response category.
func statusFor(err error) int {
    switch {
    case errors.Is(err, errs.ErrNotFound):
        return http.StatusNotFound
    case errors.Is(err, errs.ErrConflict):
        return http.StatusConflict
    case errors.Is(err, errs.ErrMissingField), errors.Is(err, errs.ErrInvalid):
        return http.StatusBadRequest
    default:
        return http.StatusInternalServerError
    }
}

// writeStoreErr renders err with the status of its kind. Unclassified errors are
// logged and hidden behind a generic message.
func (s *Server) writeStoreErr(w http.ResponseWriter, r *http.Request, err error) {
    status := statusFor(err)
    if status == http.StatusInternalServerError {
        s.log.Error("store failure", "path", r.URL.Path, "err", err)
        writeErr(w, status, "internal error", "internal")
        return
    }
    resp := errorResponse{Error: err.Error(), Code: errs.Kind(err)}
    var fe *errs.FieldError
    if errors.As(err, &fe) { resp.Field = fe.Field }
    toJSON(w, status, resp)
}
