// internal/controller/middleware.go
package controller

import (
    "log"
    "net/http"

    "github.com/google/uuid"
)

// CORS applies the permissive headers every response carries and answers
// OPTIONS preflights directly with an empty 200.
func CORS(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Access-Control-Allow-Origin", "*")
        w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
        w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

        if r.Method == http.MethodOptions {
            w.WriteHeader(http.StatusOK)
            return
        }

        next.ServeHTTP(w, r)
    })
}

// RequestLogger tags each request with an id for log correlation.
func RequestLogger(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        rid := uuid.NewString()
        w.Header().Set("X-Request-ID", rid)
        log.Println("📥", r.Method, r.URL.Path, "rid="+rid)
        next.ServeHTTP(w, r)
    })
}
