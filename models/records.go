package models

// QuestionTally is the correct/total question count of one study session.
type QuestionTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// PageRange is a studied page interval.
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// VideoRange is a watched video segment, timestamps kept as free text.
type VideoRange struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// StudyRecord is one logged study session. Subject and topic are weak
// references by name; renaming a subject orphans historical records.
type StudyRecord struct {
	ID               string        `json:"id"`
	Date             string        `json:"date"`
	Subject          string        `json:"subject"`
	Topic            string        `json:"topic"`
	StudyTime        float64       `json:"studyTime"`
	Questions        QuestionTally `json:"questions"`
	Pages            []PageRange   `json:"pages,omitempty"`
	Videos           []VideoRange  `json:"videos,omitempty"`
	Notes            string        `json:"notes,omitempty"`
	Category         string        `json:"category,omitempty"`
	ReviewPeriods    []string      `json:"reviewPeriods,omitempty"`
	TeoriaFinalizada bool          `json:"teoriaFinalizada"`
	CountInPlanning  bool          `json:"countInPlanning"`
}

// Review record statuses.
const (
	ReviewPending   = "pending"
	ReviewCompleted = "completed"
	ReviewSkipped   = "skipped"
)

// ReviewRecord is a scheduled spaced-repetition revisit of a study
// session, linked back to it by studyRecordId.
type ReviewRecord struct {
	ID            string `json:"id"`
	StudyRecordID string `json:"studyRecordId"`
	ScheduledDate string `json:"scheduledDate"`
	Status        string `json:"status"`
	OriginalDate  string `json:"originalDate"`
	Subject       string `json:"subject"`
	Topic         string `json:"topic"`
	ReviewPeriod  string `json:"reviewPeriod"`
	CompletedDate string `json:"completedDate,omitempty"`
	Ignored       bool   `json:"ignored,omitempty"`
}

// SimuladoSubject is one per-subject score line of a practice exam.
type SimuladoSubject struct {
	Name           string  `json:"name"`
	Weight         float64 `json:"weight"`
	TotalQuestions int     `json:"totalQuestions"`
	Correct        int     `json:"correct"`
	Incorrect      int     `json:"incorrect"`
	Color          string  `json:"color,omitempty"`
}

// SimuladoRecord is one practice-exam session.
type SimuladoRecord struct {
	ID        string            `json:"id"`
	Date      string            `json:"date"`
	Name      string            `json:"name"`
	Style     string            `json:"style,omitempty"`
	Banca     string            `json:"banca,omitempty"`
	TimeSpent string            `json:"timeSpent,omitempty"`
	Subjects  []SimuladoSubject `json:"subjects"`
	Comments  string            `json:"comments,omitempty"`
}
