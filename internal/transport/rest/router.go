package rest

import (
	"net/http"

	"github.com/heartmarshall/mynotes-backend/internal/transport/middleware"
)

// NewRouter builds the HTTP route table. The protect middleware guards
// every notes endpoint; health probes stay open so orchestrators can
// reach them without credentials.
func NewRouter(notes *NotesHandler, health *HealthHandler, protect middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /livez", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	// "/api/notes/categories" is more specific than "/api/notes/{id}",
	// so ServeMux routes it first.
	mux.Handle("GET /api/notes", protect(http.HandlerFunc(notes.List)))
	mux.Handle("POST /api/notes", protect(http.HandlerFunc(notes.Create)))
	mux.Handle("GET /api/notes/categories", protect(http.HandlerFunc(notes.Categories)))
	mux.Handle("GET /api/notes/{id}", protect(http.HandlerFunc(notes.Get)))
	mux.Handle("PUT /api/notes/{id}", protect(http.HandlerFunc(notes.Update)))
	mux.Handle("DELETE /api/notes/{id}", protect(http.HandlerFunc(notes.Delete)))

	return mux
}
