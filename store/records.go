package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/estudaplan/estudaplan-api/models"
)

// readOrSkeleton loads a plan for an upsert. Only a genuinely missing
// file falls back to the empty skeleton; an unparseable file surfaces
// its *ParseError instead of silently discarding the document.
func (s *Store) readOrSkeleton(name string) (*models.Plan, error) {
	plan, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return &models.Plan{Subjects: []models.Subject{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// SaveStudyRecord upserts a study record by ID: replace in place when
// the ID exists, append otherwise.
func (s *Store) SaveStudyRecord(name string, record models.StudyRecord) error {
	plan, err := s.readOrSkeleton(name)
	if err != nil {
		return err
	}
	replaced := false
	for i := range plan.Records {
		if plan.Records[i].ID == record.ID {
			plan.Records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		plan.Records = append(plan.Records, record)
	}
	return s.Write(name, plan)
}

// StudyRecords returns a plan's study records, empty when the plan or
// the collection is absent.
func (s *Store) StudyRecords(name string) ([]models.StudyRecord, error) {
	plan, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return []models.StudyRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if plan.Records == nil {
		return []models.StudyRecord{}, nil
	}
	return plan.Records, nil
}

// DeleteStudyRecord removes a study record and cascades to every review
// record referencing it. The file is rewritten only when something
// actually changed; a missing plan is success.
func (s *Store) DeleteStudyRecord(name, recordID string) error {
	plan, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	records := make([]models.StudyRecord, 0, len(plan.Records))
	for _, r := range plan.Records {
		if r.ID != recordID {
			records = append(records, r)
		}
	}
	if len(records) == len(plan.Records) {
		return nil
	}
	plan.Records = records
	if plan.ReviewRecords != nil {
		reviews := make([]models.ReviewRecord, 0, len(plan.ReviewRecords))
		for _, rr := range plan.ReviewRecords {
			if rr.StudyRecordID != recordID {
				reviews = append(reviews, rr)
			}
		}
		plan.ReviewRecords = reviews
	}
	return s.Write(name, plan)
}

// SaveReviewRecord upserts a review record by ID.
func (s *Store) SaveReviewRecord(name string, record models.ReviewRecord) error {
	plan, err := s.readOrSkeleton(name)
	if err != nil {
		return err
	}
	replaced := false
	for i := range plan.ReviewRecords {
		if plan.ReviewRecords[i].ID == record.ID {
			plan.ReviewRecords[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		plan.ReviewRecords = append(plan.ReviewRecords, record)
	}
	return s.Write(name, plan)
}

// ReviewRecords returns a plan's review records, empty when absent.
func (s *Store) ReviewRecords(name string) ([]models.ReviewRecord, error) {
	plan, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return []models.ReviewRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if plan.ReviewRecords == nil {
		return []models.ReviewRecord{}, nil
	}
	return plan.ReviewRecords, nil
}

// DeleteReviewRecord removes a review record by ID; no-op writes are
// skipped and a missing plan is success.
func (s *Store) DeleteReviewRecord(name, recordID string) error {
	plan, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	reviews := make([]models.ReviewRecord, 0, len(plan.ReviewRecords))
	for _, rr := range plan.ReviewRecords {
		if rr.ID != recordID {
			reviews = append(reviews, rr)
		}
	}
	if len(reviews) == len(plan.ReviewRecords) {
		return nil
	}
	plan.ReviewRecords = reviews
	return s.Write(name, plan)
}

// SaveSimuladoRecord upserts a simulado record by ID.
func (s *Store) SaveSimuladoRecord(name string, record models.SimuladoRecord) error {
	plan, err := s.readOrSkeleton(name)
	if err != nil {
		return err
	}
	replaced := false
	for i := range plan.SimuladoRecords {
		if plan.SimuladoRecords[i].ID == record.ID {
			plan.SimuladoRecords[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		plan.SimuladoRecords = append(plan.SimuladoRecords, record)
	}
	return s.Write(name, plan)
}

// SimuladoRecords returns a plan's simulado records, empty when absent.
func (s *Store) SimuladoRecords(name string) ([]models.SimuladoRecord, error) {
	plan, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return []models.SimuladoRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	if plan.SimuladoRecords == nil {
		return []models.SimuladoRecord{}, nil
	}
	return plan.SimuladoRecords, nil
}

// DeleteSimuladoRecord removes a simulado record by ID; no-op writes are
// skipped and a missing plan is success.
func (s *Store) DeleteSimuladoRecord(name, recordID string) error {
	plan, err := s.Read(name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	simulados := make([]models.SimuladoRecord, 0, len(plan.SimuladoRecords))
	for _, sr := range plan.SimuladoRecords {
		if sr.ID != recordID {
			simulados = append(simulados, sr)
		}
	}
	if len(simulados) == len(plan.SimuladoRecords) {
		return nil
	}
	plan.SimuladoRecords = simulados
	return s.Write(name, plan)
}

// MigrateRecordIDs assigns a generated ID to every legacy study record
// lacking one. It works on the raw decoded document so fields this
// version does not know about survive the rewrite. Returns whether the
// file was rewritten; a second run over the same plan changes nothing.
func (s *Store) MigrateRecordIDs(name string) (bool, error) {
	data, err := s.readRaw(name)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false, &ParseError{File: name, Err: err}
	}
	records, ok := doc["records"].([]any)
	if !ok {
		return false, nil
	}
	changed := false
	for _, raw := range records {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if id, _ := record["id"].(string); id == "" {
			record["id"] = newMigratedID()
			changed = true
		}
	}
	if !changed {
		return false, nil
	}
	path, err := s.path(name)
	if err != nil {
		return false, err
	}
	return true, writeJSONFile(path, doc)
}

func newMigratedID() string {
	suffix, err := gonanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 7)
	if err != nil {
		suffix = fmt.Sprintf("%07d", time.Now().Nanosecond())
	}
	return fmt.Sprintf("%d-%s-migrated", time.Now().UnixMilli(), suffix)
}
