package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"stagseek/internal/round"
)

// Key names the single persisted record.
const Key = "lastGameResult"

// Store keeps the last finished round between sessions. Saving overwrites
// whatever was stored before.
type Store interface {
	Load() (round.Result, bool, error)
	Save(res round.Result) error
}

// FileStore keeps the record as a JSON file.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the record. A missing file means no previous round.
func (s *FileStore) Load() (round.Result, bool, error) {
	var res round.Result
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return res, false, nil
	}
	if err != nil {
		return res, false, fmt.Errorf("read %s: %w", s.Path, err)
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return res, false, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return res, true, nil
}

func (s *FileStore) Save(res round.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}

// Memory is an in-process Store.
type Memory struct {
	res round.Result
	ok  bool
}

func (m *Memory) Load() (round.Result, bool, error) {
	return m.res, m.ok, nil
}

func (m *Memory) Save(res round.Result) error {
	m.res, m.ok = res, true
	return nil
}
