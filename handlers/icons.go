package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/estudaplan/estudaplan-api/store"
)

// UploadIcon stores a standalone plan icon and returns its
// root-relative URL.
func (h *DataHandler) UploadIcon(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxIconBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse form")
		return
	}
	baseName := r.FormValue("baseName")
	if baseName == "" {
		writeError(w, http.StatusBadRequest, "Base name for the image was not provided")
		return
	}
	file, header, err := r.FormFile("imageFile")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxIconBytes))
	if err != nil || len(data) == 0 {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	iconURL, err := store.SaveIcon(h.IconDir, baseName, filepath.Ext(header.Filename), data)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"iconUrl": iconURL})
}
