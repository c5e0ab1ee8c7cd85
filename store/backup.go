package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/estudaplan/estudaplan-api/models"
)

// ExportAll reads every plan document into a backup payload. Plans that
// fail to read or parse are skipped with a log line; the export succeeds
// with whatever subset loaded.
func (s *Store) ExportAll() (*models.Backup, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	backup := &models.Backup{Plans: []models.BackupPlan{}}
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if !json.Valid(data) {
			log.Printf("export: skipping unparseable plan %s", name)
			continue
		}
		backup.Plans = append(backup.Plans, models.BackupPlan{
			FileName: name,
			Content:  json.RawMessage(data),
		})
	}
	return backup, nil
}

// RestoreAll replaces the user's entire plan collection with the backup
// payload. The payload is validated and fully written to a staging
// directory before any live file is touched, so a bad payload or a
// failed write leaves the existing data intact. Cycle files are not part
// of the payload and are left alone.
func (s *Store) RestoreAll(backup *models.Backup) error {
	if backup == nil || backup.Plans == nil {
		return errors.New("backup payload is missing the plans list")
	}
	for _, plan := range backup.Plans {
		if err := validBackupFileName(plan.FileName); err != nil {
			return err
		}
		if !json.Valid(plan.Content) {
			return fmt.Errorf("restore: plan %s has invalid content", plan.FileName)
		}
	}

	staging, err := os.MkdirTemp(s.dir, ".restore-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(staging)

	for _, plan := range backup.Plans {
		var buf bytes.Buffer
		if err := json.Indent(&buf, plan.Content, "", "  "); err != nil {
			return fmt.Errorf("restore: plan %s: %w", plan.FileName, err)
		}
		if err := os.WriteFile(filepath.Join(staging, plan.FileName), buf.Bytes(), 0o644); err != nil {
			return err
		}
	}

	// The staged set is complete; now swap it in.
	existing, err := s.List()
	if err != nil {
		return err
	}
	for _, name := range existing {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	for _, plan := range backup.Plans {
		if err := os.Rename(filepath.Join(staging, plan.FileName), filepath.Join(s.dir, plan.FileName)); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll deletes every plan and cycle file for the user. No undo.
func (s *Store) ClearAll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func validBackupFileName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
		return fmt.Errorf("restore: %w: %q", ErrInvalidName, name)
	}
	return nil
}
