package handlers

import (
	"net/http"

	"github.com/estudaplan/estudaplan-api/models"
)

// GetStudyCycle returns a plan's study-cycle document, 404 when none
// has been saved yet.
func (h *DataHandler) GetStudyCycle(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	cycle, err := s.ReadCycle(name)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cycle)
}

// SaveStudyCycle overwrites a plan's study-cycle document.
func (h *DataHandler) SaveStudyCycle(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	var cycle models.StudyCycle
	if !decodeBody(w, r, &cycle) {
		return
	}
	if err := s.WriteCycle(name, &cycle); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteStudyCycle removes a plan's study-cycle file. Idempotent.
func (h *DataHandler) DeleteStudyCycle(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	if err := s.DeleteCycle(name); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
