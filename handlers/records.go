package handlers

import (
	"net/http"

	"github.com/estudaplan/estudaplan-api/models"
)

// GetStudyRecords lists a plan's study records.
func (h *DataHandler) GetStudyRecords(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	records, err := s.StudyRecords(name)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// SaveStudyRecord upserts one study record, keyed by its id.
func (h *DataHandler) SaveStudyRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	var record models.StudyRecord
	if !decodeBody(w, r, &record) {
		return
	}
	if record.ID == "" {
		writeError(w, http.StatusBadRequest, "Record id is required")
		return
	}
	if err := s.SaveStudyRecord(name, record); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// DeleteStudyRecord removes a study record and its scheduled reviews.
func (h *DataHandler) DeleteStudyRecord(w http.ResponseWriter, r *http.Request) {
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
	if err := s.DeleteStudyRecord(name, recordID); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MigrateRecordIDs backfills generated ids onto legacy study records.
func (h *DataHandler) MigrateRecordIDs(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	migrated, err := s.MigrateRecordIDs(name)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true, "migrated": migrated})
}
