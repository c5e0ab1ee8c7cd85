package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/estudaplan/estudaplan-api/middleware"
	"github.com/estudaplan/estudaplan-api/store"
)

// DataHandler serves the plan-data routes. Each request opens a store
// rooted at the authenticated user's data directory; no state is shared
// between requests.
type DataHandler struct {
	DataDir string
	IconDir string
}

var validate = validator.New()

func (h *DataHandler) storeFor(w http.ResponseWriter, r *http.Request) (*store.Store, bool) {
	user, ok := middleware.UserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	s, err := store.New(h.DataDir, user.PublicID)
	if err != nil {
		log.Printf("failed to open data directory for %s: %v", user.PublicID, err)
		writeError(w, http.StatusInternalServerError, "Failed to open user data")
		return nil, false
	}
	return s, true
}

func planName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := r.PathValue("plan")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Plan file name is required")
		return "", false
	}
	return name, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("response encoding error:", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// storeError maps data-layer errors onto HTTP responses: NotFound and
// Exists get their own statuses, a corrupt document is reported as such,
// everything else is logged and turned into a generic failure.
func storeError(w http.ResponseWriter, err error) {
	var parseErr *store.ParseError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrPlanExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidName):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &parseErr):
		log.Println("corrupt plan document:", err)
		writeError(w, http.StatusInternalServerError, "Plan document is corrupted")
	default:
		log.Println("store error:", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Could not decode request")
		return false
	}
	return true
}
