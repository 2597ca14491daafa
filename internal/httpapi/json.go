package httpapi

import (
    "bytes"
    "encoding/json"
    "errors"
    "io"
    "net/http"
)

// maxBodyBytes caps request bodies; records are small.
const maxBodyBytes = 1 << 20

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(v)
}

// decodeObject reads a single JSON object from the body. Numbers are kept as
// json.Number so integer checks see the literal the client sent.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
    body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
    if err != nil { return nil, err }
    body = bytes.TrimSpace(body)
    if len(body) == 0 || body[0] != '{' {
        return nil, errors.New("body must be a JSON object")
    }
    dec := json.NewDecoder(bytes.NewReader(body))
    dec.UseNumber()
    var out map[string]any
    if err := dec.Decode(&out); err != nil { return nil, err }
    if dec.More() { return nil, errors.New("unexpected data after JSON object") }
    return out, nil
}
