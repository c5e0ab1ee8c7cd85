package handlers

import (
	"net/http"

	"github.com/estudaplan/estudaplan-api/models"
)

// GetSimuladoRecords lists a plan's practice-exam records.
func (h *DataHandler) GetSimuladoRecords(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	records, err := s.SimuladoRecords(name)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// SaveSimuladoRecord upserts one simulado record, keyed by its id.
func (h *DataHandler) SaveSimuladoRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	var record models.SimuladoRecord
	if !decodeBody(w, r, &record) {
		return
	}
	if record.ID == "" {
		writeError(w, http.StatusBadRequest, "Record id is required")
		return
	}
	if err := s.SaveSimuladoRecord(name, record); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// DeleteSimuladoRecord removes one simulado record.
func (h *DataHandler) DeleteSimuladoRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	recordID := r.PathValue("recordID")
	if recordID == "" {
		writeError(w, http.StatusBadRequest, "Record id is required")
		return
	}
	if err := s.DeleteSimuladoRecord(name, recordID); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
