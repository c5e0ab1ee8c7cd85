package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/estudaplan/estudaplan-api/models"
)

func TestCreatePlanSlugsTheFileName(t *testing.T) {
	s := newTestStore(t)
	name, err := s.CreatePlan(&models.Plan{Name: "Direito  Penal"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if name != "direito-penal.json" {
		t.Errorf("file name = %q, want direito-penal.json", name)
	}
	plan, err := s.Read(name)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Name != "Direito  Penal" || plan.Subjects == nil {
		t.Errorf("created plan = %+v", plan)
	}
}

func TestCreatePlanRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreatePlan(&models.Plan{Name: "Direito Penal"}); err != nil {
		t.Fatal(err)
	}
	_, err := s.CreatePlan(&models.Plan{Name: "direito  penal"})
	if !errors.Is(err, ErrPlanExists) {
		t.Errorf("duplicate CreatePlan = %v, want ErrPlanExists", err)
	}
}

func TestCreatePlanRejectsEmptyName(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreatePlan(&models.Plan{Name: "   "}); err == nil {
		t.Error("CreatePlan accepted a blank name")
	}
}

func TestUpdatePlanShallowMergePreservesUnknownFields(t *testing.T) {
	s := newTestStore(t)
	raw := `{
  "name": "Plano",
  "observations": "antigas",
  "subjects": [{"subject": "Matemática", "topics": []}],
  "futureField": {"nested": true}
}`
	if err := os.WriteFile(filepath.Join(s.Dir(), "plano.json"), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdatePlan("plano", map[string]any{"observations": "novas", "cargo": "Técnico"}); err != nil {
		t.Fatalf("UpdatePlan: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir(), "plano.json"))
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["observations"] != "novas" || doc["cargo"] != "Técnico" {
		t.Errorf("merged fields wrong: %v", doc)
	}
	if doc["name"] != "Plano" {
		t.Error("untouched field changed")
	}
	if _, ok := doc["futureField"]; !ok {
		t.Error("unknown field dropped by update")
	}
	if subjects, ok := doc["subjects"].([]any); !ok || len(subjects) != 1 {
		t.Errorf("subjects changed by shallow merge: %v", doc["subjects"])
	}
}

func TestUpdatePlanMissingIsNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdatePlan("ghost.json", map[string]any{"name": "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdatePlan missing = %v, want ErrNotFound", err)
	}
}

func TestDeletePlanIsIdempotentAndAcceptsBareSlug(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreatePlan(&models.Plan{Name: "Plano"}); err != nil {
		t.Fatal(err)
	}
	if err := s.DeletePlan("plano"); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	if _, err := s.Read("plano.json"); !errors.Is(err, ErrNotFound) {
		t.Error("plan file still present after delete")
	}
	if err := s.DeletePlan("plano"); err != nil {
		t.Errorf("second DeletePlan = %v, want nil", err)
	}
}

func TestSummariesSkipCorruptPlans(t *testing.T) {
	s := newTestStore(t)
	plan := samplePlan()
	plan.IconURL = "/plan-icons/direito-penal-1.png"
	if _, err := s.CreatePlan(plan); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "corrupt.json"), []byte("!"), 0o644); err != nil {
		t.Fatal(err)
	}
	summaries, err := s.Summaries()
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %+v, want 1 entry", summaries)
	}
	got := summaries[0]
	if got.FileName != "direito-penal.json" || got.Name != "Direito Penal" || got.SubjectCount != 1 || got.IconURL == "" {
		t.Errorf("summary = %+v", got)
	}
}

func TestSaveIcon(t *testing.T) {
	dir := t.TempDir()
	url, err := SaveIcon(dir, "Direito Penal", ".png", []byte{0x89, 'P', 'N', 'G'})
	if err != nil {
		t.Fatalf("SaveIcon: %v", err)
	}
	if url == "" || url[0] != '/' {
		t.Errorf("iconUrl = %q, want root-relative path", url)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("icon dir entries = %v", entries)
	}
	name := entries[0].Name()
	if url != "/plan-icons/"+name {
		t.Errorf("url %q does not reference stored file %q", url, name)
	}

	// two uploads in the same millisecond must not collide
	url2, err := SaveIcon(dir, "Direito Penal", ".png", []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	if url2 == url {
		t.Error("icon file names collided")
	}
}
