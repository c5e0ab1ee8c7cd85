package handlers

import (
	"net/http"

	"github.com/estudaplan/estudaplan-api/models"
)

// GetReviewRecords lists a plan's scheduled reviews.
func (h *DataHandler) GetReviewRecords(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	records, err := s.ReviewRecords(name)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// SaveReviewRecord upserts one review record, keyed by its id.
func (h *DataHandler) SaveReviewRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	var record models.ReviewRecord
	if !decodeBody(w, r, &record) {
		return
	}
	if record.ID == "" {
		writeError(w, http.StatusBadRequest, "Record id is required")
		return
	}
	if err := s.SaveReviewRecord(name, record); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// DeleteReviewRecord removes one review record.
func (h *DataHandler) DeleteReviewRecord(w http.ResponseWriter, r *http.Request) {
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
	if err := s.DeleteReviewRecord(name, recordID); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
