// internal/controller/health.go
package controller

import (
    "database/sql"
    "net/http"
)

// Health reports whether the database is reachable.
func Health(db *sql.DB) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        if err := db.Ping(); err != nil {
            writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "down", "error": err.Error()})
            return
        }
        writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
    }
}
