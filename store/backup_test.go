package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/estudaplan/estudaplan-api/models"
)

func TestExportRestoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	planA := samplePlan()
	planB := samplePlan()
	planB.Name = "Plano B"
	if err := s.Write("plano-a.json", planA); err != nil {
		t.Fatal(err)
	}
	if err := s.Write("plano-b.json", planB); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteCycle("plano-a.json", &models.StudyCycle{StudyHours: "10"}); err != nil {
		t.Fatal(err)
	}

	backup, err := s.ExportAll()
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if len(backup.Plans) != 2 {
		t.Fatalf("exported %d plans, want 2", len(backup.Plans))
	}

	// mutate the live data, then restore the snapshot
	if err := s.DeletePlan("plano-a.json"); err != nil {
		t.Fatal(err)
	}
	planB.Observations = "changed after export"
	if err := s.Write("plano-b.json", planB); err != nil {
		t.Fatal(err)
	}

	if err := s.RestoreAll(backup); err != nil {
		t.Fatalf("RestoreAll: %v", err)
	}
	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"plano-a.json", "plano-b.json"}) {
		t.Fatalf("List after restore = %v", names)
	}
	restored, err := s.Read("plano-b.json")
	if err != nil {
		t.Fatal(err)
	}
	if restored.Observations == "changed after export" {
		t.Error("restore did not roll back the post-export change")
	}
	if _, err := s.ReadCycle("plano-a.json"); err != nil {
		t.Errorf("restore touched the cycle file: %v", err)
	}
}

func TestExportSkipsUnparseablePlans(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write("ok.json", samplePlan()); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	backup, err := s.ExportAll()
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if len(backup.Plans) != 1 || backup.Plans[0].FileName != "ok.json" {
		t.Errorf("export = %+v, want only ok.json", backup.Plans)
	}
}

func TestRestoreRejectsMissingPlansList(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write("keep.json", samplePlan()); err != nil {
		t.Fatal(err)
	}
	if err := s.RestoreAll(&models.Backup{}); err == nil {
		t.Fatal("RestoreAll accepted a payload with no plans list")
	}
	if _, err := s.Read("keep.json"); err != nil {
		t.Errorf("rejected restore damaged existing data: %v", err)
	}
}

func TestRestoreRejectsBadPayloadBeforeDeleting(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write("keep.json", samplePlan()); err != nil {
		t.Fatal(err)
	}
	bad := &models.Backup{Plans: []models.BackupPlan{
		{FileName: "fine.json", Content: json.RawMessage(`{"name":"ok","observations":"","subjects":[]}`)},
		{FileName: "../escape.json", Content: json.RawMessage(`{}`)},
	}}
	if err := s.RestoreAll(bad); err == nil {
		t.Fatal("RestoreAll accepted a path-escaping file name")
	}
	if _, err := s.Read("keep.json"); err != nil {
		t.Errorf("rejected restore damaged existing data: %v", err)
	}
	if names, _ := s.List(); len(names) != 1 {
		t.Errorf("List after rejected restore = %v", names)
	}

	bad.Plans[1] = models.BackupPlan{FileName: "broken.json", Content: json.RawMessage("{")}
	if err := s.RestoreAll(bad); err == nil {
		t.Fatal("RestoreAll accepted invalid plan content")
	}
	if _, err := s.Read("keep.json"); err != nil {
		t.Errorf("rejected restore damaged existing data: %v", err)
	}
}

func TestClearAllRemovesPlansAndCycles(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write("p.json", samplePlan()); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteCycle("p.json", &models.StudyCycle{}); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("user dir not empty after ClearAll: %v", entries)
	}
	if err := s.ClearAll(); err != nil {
		t.Errorf("second ClearAll = %v, want nil", err)
	}
}
