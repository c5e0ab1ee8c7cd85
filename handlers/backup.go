package handlers

import (
	"net/http"

	"github.com/estudaplan/estudaplan-api/models"
)

// ExportBackup returns every plan document the user owns as one
// payload, for download on the client side.
func (h *DataHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	backup, err := s.ExportAll()
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, backup)
}

// RestoreBackup replaces the user's plan collection with an uploaded
// payload. The store stages the whole payload before touching live
// files, so a rejected payload leaves existing data intact.
func (h *DataHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	var backup models.Backup
	if !decodeBody(w, r, &backup) {
		return
	}
	if backup.Plans == nil {
		writeError(w, http.StatusBadRequest, "Backup data is missing the plans list")
		return
	}
	if err := s.RestoreAll(&backup); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "restored": len(backup.Plans)})
}

// ClearAllData deletes every plan and cycle file for the user.
func (h *DataHandler) ClearAllData(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	if err := s.ClearAll(); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
