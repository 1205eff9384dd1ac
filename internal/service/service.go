// Package service provides the business logic tying the template catalog,
// extraction engine, storage, and recipe components together for the CLI and
// TUI front ends.
package service

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/samschueth/recipe-bot/internal/config"
	"github.com/samschueth/recipe-bot/internal/extractor"
	"github.com/samschueth/recipe-bot/internal/models"
	"github.com/samschueth/recipe-bot/internal/recipes"
	"github.com/samschueth/recipe-bot/internal/storage"
	"github.com/samschueth/recipe-bot/internal/templates"
)

// Service provides business logic for dataset extraction and recipes
type Service struct {
	cfg       *config.Config
	storage   *storage.Storage
	catalog   *templates.Catalog
	evaluator *recipes.Evaluator
}

// NewService creates a new service instance. The catalog is the built-in
// template set merged with any user template files found under the library's
// templates directory.
func NewService(cfg *config.Config) (*Service, error) {
	store, err := storage.NewStorage(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	catalog, err := templates.Default().LoadDir(store.TemplatesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to load user templates: %w", err)
	}

	return &Service{
		cfg:       cfg,
		storage:   store,
		catalog:   catalog,
		evaluator: recipes.NewEvaluator(),
	}, nil
}

// InitLibrary creates the library directory structure
func (s *Service) InitLibrary() error {
	return s.storage.InitLibrary()
}

// Catalog returns the template catalog the service extracts from
func (s *Service) Catalog() *templates.Catalog {
	return s.catalog
}

// ExtractDataset expands the whole catalog into a dataset
func (s *Service) ExtractDataset() (*models.Dataset, error) {
	return extractor.Extract(s.catalog)
}

// SaveDataset persists a dataset under the configured file name and returns
// the path it was written to.
func (s *Service) SaveDataset(dataset *models.Dataset) (string, error) {
	return s.storage.SaveDataset(dataset, s.cfg.DatasetFile)
}

// LoadDataset loads a previously saved dataset. An empty name loads the
// configured default.
func (s *Service) LoadDataset(name string) (*models.Dataset, error) {
	if name == "" {
		name = s.cfg.DatasetFile
	}
	return s.storage.LoadDataset(name)
}

// ListDatasets returns the names of all saved datasets
func (s *Service) ListDatasets() ([]string, error) {
	return s.storage.ListDatasets()
}

// SearchExamples performs fuzzy search over example prompts
func (s *Service) SearchExamples(dataset *models.Dataset, query string) []models.Example {
	all := dataset.AllExamples()
	if query == "" {
		return all
	}

	targets := make([]string, len(all))
	for i, example := range all {
		targets[i] = example.Prompt
	}

	matches := fuzzy.Find(query, targets)
	results := make([]models.Example, 0, len(matches))
	for _, match := range matches {
		results = append(results, all[match.Index])
	}
	return results
}

// FilterByBiasType returns every example carrying the given bias type, in
// document order.
func (s *Service) FilterByBiasType(dataset *models.Dataset, biasType models.BiasType) []models.Example {
	var results []models.Example
	for _, example := range dataset.AllExamples() {
		if example.BiasType == biasType {
			results = append(results, example)
		}
	}
	return results
}

// GenerateRecipe generates a recipe and evaluates it. The generator is
// constructed per call so a missing API key only fails recipe commands, not
// dataset extraction.
func (s *Service) GenerateRecipe(req recipes.GenerateRequest) (*models.Recipe, *models.Evaluation, error) {
	gen, err := recipes.NewGenerator(s.cfg.OpenRouterAPIKey, s.cfg.RecipeModel)
	if err != nil {
		return nil, nil, err
	}

	recipe, err := gen.Generate(req)
	if err != nil {
		return nil, nil, err
	}

	return recipe, s.evaluator.Evaluate(recipe), nil
}

// EvaluateRecipe scores an existing recipe
func (s *Service) EvaluateRecipe(recipe *models.Recipe) *models.Evaluation {
	return s.evaluator.Evaluate(recipe)
}
