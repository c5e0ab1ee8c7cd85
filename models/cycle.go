package models

// StudyCycle is the per-plan study rotation, stored next to the plan as
// <slug>.cycle.json with an independent lifecycle. Cycle entries and
// reminder notes are free-form client data and are kept opaque.
type StudyCycle struct {
	StudyCycle             []any              `json:"studyCycle"`
	StudyHours             string             `json:"studyHours"`
	WeeklyQuestionsGoal    string             `json:"weeklyQuestionsGoal"`
	CurrentProgressMinutes float64            `json:"currentProgressMinutes"`
	SessionProgressMap     map[string]float64 `json:"sessionProgressMap"`
	ReminderNotes          []any              `json:"reminderNotes"`
	StudyDays              []string           `json:"studyDays"`
}
