package handlers

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/estudaplan/estudaplan-api/models"
	"github.com/estudaplan/estudaplan-api/store"
)

const maxIconBytes = 5 << 20

// ListPlans returns the listing metadata of every plan the user owns.
func (h *DataHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	summaries, err := s.Summaries()
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// CreatePlan creates an empty plan from a multipart form with an
// optional icon image. 409 when the derived file name is taken.
func (h *DataHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxIconBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse form")
		return
	}

	form := struct {
		Name         string `validate:"required"`
		Observations string
		Cargo        string
		Edital       string
	}{
		Name:         r.FormValue("name"),
		Observations: r.FormValue("observations"),
		Cargo:        r.FormValue("cargo"),
		Edital:       r.FormValue("edital"),
	}
	if err := validate.Struct(form); err != nil {
		writeError(w, http.StatusBadRequest, "Plan name cannot be empty")
		return
	}

	iconURL := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, maxIconBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Could not read image")
			return
		}
		if len(data) > 0 {
			iconURL, err = store.SaveIcon(h.IconDir, form.Name, filepath.Ext(header.Filename), data)
			if err != nil {
				storeError(w, err)
				return
			}
		}
	}

	plan := &models.Plan{
		Name:         form.Name,
		Observations: form.Observations,
		Cargo:        form.Cargo,
		Edital:       form.Edital,
		IconURL:      iconURL,
		Subjects:     []models.Subject{},
	}
	fileName, err := s.CreatePlan(plan)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"fileName": fileName})
}

// GetPlan returns one full plan document.
func (h *DataHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	plan, err := s.Read(name)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// UpdatePlan shallow-merges the request body's top-level fields over the
// stored document.
func (h *DataHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	var fields map[string]any
	if !decodeBody(w, r, &fields) {
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	if err := s.UpdatePlan(name, fields); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeletePlan removes a plan and its study-cycle file. Idempotent.
func (h *DataHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	if err := s.DeletePlan(name); err != nil {
		storeError(w, err)
		return
	}
	if err := s.DeleteCycle(name); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetTopicWeight updates the user-assigned weight of one topic node.
func (h *DataHandler) SetTopicWeight(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	name, ok := planName(w, r)
	if !ok {
		return
	}
	var req struct {
		Subject   string   `json:"subject" validate:"required"`
		TopicText string   `json:"topicText" validate:"required"`
		Weight    *float64 `json:"weight" validate:"required"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "subject, topicText and weight are required")
		return
	}
	if err := s.SetTopicWeight(name, req.Subject, req.TopicText, *req.Weight); err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
