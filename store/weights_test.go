package store

import (
	"errors"
	"testing"

	"github.com/estudaplan/estudaplan-api/models"
)

func TestSetTopicWeightOnNestedTopic(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write(planFile, samplePlan()); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTopicWeight(planFile, "Matemática", "Frações", 3); err != nil {
		t.Fatalf("SetTopicWeight: %v", err)
	}
	plan, err := s.Read(planFile)
	if err != nil {
		t.Fatal(err)
	}
	node := plan.Subjects[0].Topics[0].SubTopics[0]
	if node.Text != "Frações" || node.UserWeight == nil || *node.UserWeight != 3 {
		t.Errorf("weight not applied: %+v", node)
	}
	// siblings untouched
	if plan.Subjects[0].Topics[0].SubTopics[1].UserWeight != nil {
		t.Error("sibling topic gained a weight")
	}
}

func TestSetTopicWeightUnknownTopicLeavesFileUnchanged(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write(planFile, samplePlan()); err != nil {
		t.Fatal(err)
	}
	before := fileBytes(t, s, planFile)
	err := s.SetTopicWeight(planFile, "Matemática", "Trigonometria", 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetTopicWeight unknown topic = %v, want ErrNotFound", err)
	}
	if fileBytes(t, s, planFile) != before {
		t.Error("failed weight update still rewrote the file")
	}
}

func TestSetTopicWeightUnknownSubject(t *testing.T) {
	s := newTestStore(t)
	if err := s.Write(planFile, samplePlan()); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTopicWeight(planFile, "História", "Frações", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetTopicWeight unknown subject = %v, want ErrNotFound", err)
	}
}

func TestSetTopicWeightMissingPlan(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetTopicWeight("ghost.json", "Matemática", "Frações", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetTopicWeight missing plan = %v, want ErrNotFound", err)
	}
}

func TestSetTopicWeightFirstMatchWinsOnDuplicates(t *testing.T) {
	s := newTestStore(t)
	plan := &models.Plan{
		Name: "Dup",
		Subjects: []models.Subject{{
			Name: "Português",
			Topics: []models.Topic{
				{Text: "Crase"},
				{Text: "Sintaxe", SubTopics: []models.Topic{{Text: "Crase"}}},
			},
		}},
	}
	if err := s.Write("dup.json", plan); err != nil {
		t.Fatal(err)
	}
	if err := s.SetTopicWeight("dup.json", "Português", "Crase", 2); err != nil {
		t.Fatalf("SetTopicWeight: %v", err)
	}
	got, err := s.Read("dup.json")
	if err != nil {
		t.Fatal(err)
	}
	first := got.Subjects[0].Topics[0]
	nested := got.Subjects[0].Topics[1].SubTopics[0]
	if first.UserWeight == nil || *first.UserWeight != 2 {
		t.Errorf("first matching node not updated: %+v", first)
	}
	if nested.UserWeight != nil {
		t.Error("later duplicate was updated too")
	}
}
