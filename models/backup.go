package models

import "encoding/json"

// BackupPlan pairs a plan file name with its document. Content stays raw
// so restore writes exactly what export produced, unknown fields included.
type BackupPlan struct {
	FileName string          `json:"fileName"`
	Content  json.RawMessage `json:"content"`
}

// Backup is the full-export payload, used identically for export and
// restore.
type Backup struct {
	Plans []BackupPlan `json:"plans"`
}
