package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func toFieldResponses(errs []domain.FieldError) []fieldResponse {
	out := make([]fieldResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, fieldResponse{Field: e.Field, Message: e.Message})
	}
	return out
}
