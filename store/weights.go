package store

import (
	"fmt"

	"github.com/estudaplan/estudaplan-api/models"
)

// SetTopicWeight sets the user-assigned weight of one topic node,
// located by exact subject name and a depth-first search on topic_text.
// The first matching node wins when labels are duplicated. Any failure
// leaves the document untouched on disk.
func (s *Store) SetTopicWeight(name, subjectName, topicText string, weight float64) error {
	plan, err := s.Read(name)
	if err != nil {
		return err
	}
	var subject *models.Subject
	for i := range plan.Subjects {
		if plan.Subjects[i].Name == subjectName {
			subject = &plan.Subjects[i]
			break
		}
	}
	if subject == nil {
		return fmt.Errorf("subject %q: %w", subjectName, ErrNotFound)
	}
	if !applyTopicWeight(subject.Topics, topicText, weight) {
		return fmt.Errorf("topic %q in subject %q: %w", topicText, subjectName, ErrNotFound)
	}
	return s.Write(name, plan)
}

func applyTopicWeight(topics []models.Topic, topicText string, weight float64) bool {
	for i := range topics {
		if topics[i].Text == topicText {
			topics[i].UserWeight = &weight
			return true
		}
		if applyTopicWeight(topics[i].SubTopics, topicText, weight) {
			return true
		}
	}
	return false
}
