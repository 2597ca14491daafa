package httpapi

import (
    "mime"
    "net/http"
)

// requireJSON rejects record writes whose body is not declared as JSON.
// Parameters such as charset are allowed. It writes 415 and returns false on rejection.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
    ct := r.Header.Get("Content-Type")
    mt, _, err := mime.ParseMediaType(ct)
    if err == nil && mt == "application/json" { return true }
    msg := "request body must be application/json"
    if ct != "" { msg += ", got " + ct }
    writeErr(w, http.StatusUnsupportedMediaType, msg, "unsupported_media_type")
    return false
}
