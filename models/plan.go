package models

// Topic is one node of a subject's topic tree. Trees are unbounded in
// depth; topic_text is assumed unique within a subject but not enforced.
type Topic struct {
	Text            string   `json:"topic_text"`
	SubTopics       []Topic  `json:"sub_topics,omitempty"`
	QuestionCount   int      `json:"question_count,omitempty"`
	IsGroupingTopic bool     `json:"is_grouping_topic,omitempty"`
	UserWeight      *float64 `json:"userWeight,omitempty"`
}

// Subject is one exam subject ("matéria") inside a plan.
type Subject struct {
	Name             string  `json:"subject"`
	Color            string  `json:"color,omitempty"`
	Topics           []Topic `json:"topics"`
	TotalTopicsCount int     `json:"total_topics_count,omitempty"`
}

// Plan is the full per-plan document stored as data/<user>/<slug>.json.
// Field names match the on-disk files produced by earlier versions, so
// existing documents keep parsing.
type Plan struct {
	Name              string                        `json:"name"`
	Observations      string                        `json:"observations"`
	Cargo             string                        `json:"cargo,omitempty"`
	Edital            string                        `json:"edital,omitempty"`
	IconURL           string                        `json:"iconUrl,omitempty"`
	Banca             string                        `json:"banca,omitempty"`
	Subjects          []Subject                     `json:"subjects"`
	BancaTopicWeights map[string]map[string]float64 `json:"bancaTopicWeights,omitempty"`
	Records           []StudyRecord                 `json:"records,omitempty"`
	ReviewRecords     []ReviewRecord                `json:"reviewRecords,omitempty"`
	SimuladoRecords   []SimuladoRecord              `json:"simuladoRecords,omitempty"`
}

// PlanSummary is the lightweight listing shape for the plans page.
type PlanSummary struct {
	FileName     string `json:"fileName"`
	Name         string `json:"name"`
	Cargo        string `json:"cargo,omitempty"`
	Edital       string `json:"edital,omitempty"`
	IconURL      string `json:"iconUrl,omitempty"`
	SubjectCount int    `json:"subjectCount"`
}
