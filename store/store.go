// Package store persists one user's study plans as JSON documents on
// local disk. Every operation is a request-scoped read-modify-write over
// a whole document; the filesystem is the single source of truth and the
// last writer wins.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/estudaplan/estudaplan-api/models"
)

const cycleSuffix = ".cycle.json"

// Store reads and writes the plan documents under a single per-user
// directory (data/<userKey>/).
type Store struct {
	dir string
}

// New opens the store rooted at baseDir/userKey, creating the directory
// when it does not exist yet.
func New(baseDir, userKey string) (*Store, error) {
	dir := filepath.Join(baseDir, userKey)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the user directory backing this store.
func (s *Store) Dir() string { return s.dir }

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives the plan file base name: lowercase, trimmed, whitespace
// runs collapsed to hyphens, path separators stripped.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = strings.NewReplacer("/", "", "\\", "", "\x00", "").Replace(slug)
	return strings.TrimLeft(slug, ".")
}

// CycleFileName maps a plan file name to its study-cycle file name.
func CycleFileName(planFileName string) string {
	return strings.TrimSuffix(planFileName, ".json") + cycleSuffix
}

// path resolves a file name inside the user directory, rejecting names
// that are empty, hidden or not plain base names.
func (s *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

// ensureJSON appends the .json extension when the caller passed a bare
// slug, matching what the update/delete entry points have always taken.
func ensureJSON(name string) string {
	if name != "" && !strings.HasSuffix(name, ".json") {
		return name + ".json"
	}
	return name
}

// Read loads and parses one plan document. A missing file is
// ErrNotFound; a file that will not parse is a *ParseError.
func (s *Store) Read(name string) (*models.Plan, error) {
	data, err := s.readRaw(name)
	if err != nil {
		return nil, err
	}
	var plan models.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, &ParseError{File: name, Err: err}
	}
	return &plan, nil
}

func (s *Store) readRaw(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write overwrites one plan document, pretty-printed UTF-8.
func (s *Store) Write(name string, plan *models.Plan) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return writeJSONFile(path, plan)
}

// Delete removes a plan file. Deleting a file that is already gone is
// success.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns the user's plan file names, sorted, excluding cycle
// files. A missing user directory yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, cycleSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ReadCycle loads the study-cycle document derived from a plan file
// name. Same error contract as Read.
func (s *Store) ReadCycle(planFileName string) (*models.StudyCycle, error) {
	name := CycleFileName(planFileName)
	data, err := s.readRaw(name)
	if err != nil {
		return nil, err
	}
	var cycle models.StudyCycle
	if err := json.Unmarshal(data, &cycle); err != nil {
		return nil, &ParseError{File: name, Err: err}
	}
	return &cycle, nil
}

// WriteCycle overwrites a plan's study-cycle document.
func (s *Store) WriteCycle(planFileName string, cycle *models.StudyCycle) error {
	path, err := s.path(CycleFileName(planFileName))
	if err != nil {
		return err
	}
	return writeJSONFile(path, cycle)
}

// DeleteCycle removes a plan's study-cycle file, idempotently.
func (s *Store) DeleteCycle(planFileName string) error {
	return s.Delete(CycleFileName(planFileName))
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
