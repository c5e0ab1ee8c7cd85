package handlers

import (
	"net/http"

	"github.com/estudaplan/estudaplan-api/models"
)

// ImportPlan bootstraps a plan from an already-parsed syllabus guide:
// header metadata plus the subject/topic tree, as produced by the
// external scraper. When the examining board is known, per-topic
// question counts seed the banca weight map the UI lets users adjust.
func (h *DataHandler) ImportPlan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.storeFor(w, r)
	if !ok {
		return
	}
	var req struct {
		Name     string           `json:"name" validate:"required"`
		Cargo    string           `json:"cargo"`
		Edital   string           `json:"edital"`
		Banca    string           `json:"banca"`
		IconURL  string           `json:"iconUrl"`
		Subjects []models.Subject `json:"subjects" validate:"required"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name and subjects are required")
		return
	}

	for i := range req.Subjects {
		if req.Subjects[i].TotalTopicsCount == 0 {
			req.Subjects[i].TotalTopicsCount = countTopics(req.Subjects[i].Topics)
		}
	}

	plan := &models.Plan{
		Name:     req.Name,
		Cargo:    req.Cargo,
		Edital:   req.Edital,
		Banca:    req.Banca,
		IconURL:  req.IconURL,
		Subjects: req.Subjects,
	}
	if req.Banca != "" {
		plan.BancaTopicWeights = bancaTopicWeights(req.Subjects)
	}

	fileName, err := s.CreatePlan(plan)
	if err != nil {
		storeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"fileName": fileName})
}

func countTopics(topics []models.Topic) int {
	count := 0
	for _, topic := range topics {
		count += 1 + countTopics(topic.SubTopics)
	}
	return count
}

// bancaTopicWeights maps every topic text to its historical question
// count, zero when unknown, per subject.
func bancaTopicWeights(subjects []models.Subject) map[string]map[string]float64 {
	weights := make(map[string]map[string]float64, len(subjects))
	for _, subject := range subjects {
		perTopic := map[string]float64{}
		collectTopicWeights(subject.Topics, perTopic)
		weights[subject.Name] = perTopic
	}
	return weights
}

func collectTopicWeights(topics []models.Topic, out map[string]float64) {
	for _, topic := range topics {
		if topic.Text != "" {
			out[topic.Text] = float64(topic.QuestionCount)
		}
		collectTopicWeights(topic.SubTopics, out)
	}
}
