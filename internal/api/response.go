package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Abdullah403/lost-and-found/internal/items"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(target)
}

// serviceError maps the item error taxonomy onto HTTP statuses. Store
// failures are logged and reported with fallback only.
func serviceError(w http.ResponseWriter, err error, fallback string) {
	var verr *items.ValidationError
	switch {
	case errors.As(err, &verr):
		jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	case errors.Is(err, items.ErrUnauthenticated):
		jsonError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, items.ErrForbidden):
		jsonError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, items.ErrNotFound):
		jsonError(w, http.StatusNotFound, "Item not found")
	default:
		slog.Error(fallback, "error", err)
		jsonError(w, http.StatusInternalServerError, fallback)
	}
}
