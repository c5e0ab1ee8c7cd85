package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/estudaplan/estudaplan-api/models"
)

// CreatePlan allocates a file name from the plan's name and writes the
// initial document. Fails with ErrPlanExists when the slug is taken.
func (s *Store) CreatePlan(plan *models.Plan) (string, error) {
	trimmed := strings.TrimSpace(plan.Name)
	if trimmed == "" {
		return "", errors.New("plan name cannot be empty")
	}
	name := Slugify(trimmed) + ".json"
	path, err := s.path(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("plan %q: %w", trimmed, ErrPlanExists)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	plan.Name = trimmed
	if plan.Subjects == nil {
		plan.Subjects = []models.Subject{}
	}
	if err := s.Write(name, plan); err != nil {
		return "", err
	}
	return name, nil
}

// UpdatePlan shallow-merges the provided top-level fields over the
// existing document. Nested structures are replaced wholesale; fields
// this version does not know about are preserved.
func (s *Store) UpdatePlan(name string, fields map[string]any) error {
	name = ensureJSON(name)
	data, err := s.readRaw(name)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ParseError{File: name, Err: err}
	}
	for key, value := range fields {
		doc[key] = value
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return writeJSONFile(path, doc)
}

// DeletePlan removes a plan file, idempotently.
func (s *Store) DeletePlan(name string) error {
	return s.Delete(ensureJSON(name))
}

// Summaries loads the listing metadata of every plan. Unparseable plans
// are skipped with a log line so one corrupt file cannot hide the rest.
func (s *Store) Summaries() ([]models.PlanSummary, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	summaries := []models.PlanSummary{}
	for _, name := range names {
		plan, err := s.Read(name)
		if err != nil {
			log.Printf("list: skipping plan %s: %v", name, err)
			continue
		}
		summaries = append(summaries, models.PlanSummary{
			FileName:     name,
			Name:         plan.Name,
			Cargo:        plan.Cargo,
			Edital:       plan.Edital,
			IconURL:      plan.IconURL,
			SubjectCount: len(plan.Subjects),
		})
	}
	return summaries, nil
}

// SaveIcon writes an uploaded plan icon under dir and returns the
// root-relative URL it is served from. The nanoid suffix closes the
// same-millisecond collision window of a purely timestamped name.
func SaveIcon(dir, baseName, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	suffix, err := gonanoid.New(6)
	if err != nil {
		return "", err
	}
	fileName := fmt.Sprintf("%s-%d-%s%s", Slugify(baseName), time.Now().UnixMilli(), suffix, ext)
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return "", err
	}
	return "/plan-icons/" + fileName, nil
}
