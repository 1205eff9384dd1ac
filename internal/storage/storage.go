// Package storage handles all file system operations for datasets and user
// template files. The extraction core itself performs no I/O; everything that
// touches disk lives here.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/samschueth/recipe-bot/internal/models"
)

// DefaultDatasetFile is the file name datasets are saved under when the
// caller doesn't pick one.
const DefaultDatasetFile = "trans_evals_synthetic_data.json"

// Storage handles dataset persistence under a single root directory
type Storage struct {
	rootPath string
}

// NewStorage creates a new storage instance rooted at rootPath. An empty
// rootPath falls back to ~/.recipe-bot.
func NewStorage(rootPath string) (*Storage, error) {
	if rootPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		rootPath = filepath.Join(homeDir, ".recipe-bot")
	}

	return &Storage{rootPath: rootPath}, nil
}

// InitLibrary creates the directory structure for a dataset library
func (s *Storage) InitLibrary() error {
	dirs := []string{
		s.rootPath,
		filepath.Join(s.rootPath, "datasets"),
		filepath.Join(s.rootPath, "templates"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetBaseDir returns the root path of the storage
func (s *Storage) GetBaseDir() string {
	return s.rootPath
}

// TemplatesDir returns the directory user template files are loaded from
func (s *Storage) TemplatesDir() string {
	return filepath.Join(s.rootPath, "templates")
}

// SaveDataset serializes a dataset to pretty-printed JSON and writes it under
// datasets/ atomically, so a crash mid-write can never leave a truncated
// document behind.
func (s *Storage) SaveDataset(dataset *models.Dataset, name string) (string, error) {
	if name == "" {
		name = DefaultDatasetFile
	}

	dir := filepath.Join(s.rootPath, "datasets")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	content, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize dataset: %w", err)
	}
	content = append(content, '\n')

	fullPath := filepath.Join(dir, name)
	if err := atomic.WriteFile(fullPath, bytes.NewReader(content)); err != nil {
		return "", fmt.Errorf("failed to write dataset file: %w", err)
	}

	return fullPath, nil
}

// LoadDataset reads a dataset back from datasets/. The name may omit the
// .json suffix.
func (s *Storage) LoadDataset(name string) (*models.Dataset, error) {
	if name == "" {
		name = DefaultDatasetFile
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	fullPath := filepath.Join(s.rootPath, "datasets", name)
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var dataset models.Dataset
	if err := json.Unmarshal(content, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	return &dataset, nil
}

// ListDatasets returns the names of all saved dataset files, sorted.
func (s *Storage) ListDatasets() ([]string, error) {
	dir := filepath.Join(s.rootPath, "datasets")
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read datasets directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
