// internal/controller/render.go
package controller

import (
    "encoding/json"
    "io"
    "net/http"

    appErrors "github.com/pr-poehali-dev/furniture-modern-site/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses. The raw message is
// surfaced in the body; this API backs an internal admin tool.
func writeError(w http.ResponseWriter, err error) {
    status := http.StatusInternalServerError
    switch {
    case appErrors.IsValidation(err):
        status = http.StatusBadRequest
    case appErrors.IsNotFound(err):
        status = http.StatusNotFound
    }
    writeJSON(w, status, map[string]string{"error": err.Error()})
}

// MethodNotAllowed is the router-wide 405 handler.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
}

// decodeBody parses the request body leniently: an absent body is treated as
// an empty object, leaving v at its zero value.
func decodeBody(r *http.Request, v any) error {
    body, err := io.ReadAll(r.Body)
    if err != nil {
        return appErrors.NewValidation("failed to read request body")
    }
    if len(body) == 0 {
        return nil
    }
    if err := json.Unmarshal(body, v); err != nil {
        return appErrors.NewValidation("invalid request body: %v", err)
    }
    return nil
}
