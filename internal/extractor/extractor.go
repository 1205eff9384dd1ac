// Package extractor runs the expansion engine across a whole template
// catalog and aggregates the generated examples into a single dataset.
package extractor

import (
	"github.com/samschueth/recipe-bot/internal/expander"
	"github.com/samschueth/recipe-bot/internal/models"
	"github.com/samschueth/recipe-bot/internal/templates"
)

// DatasetSource identifies where the built-in templates were extracted from.
const DatasetSource = "trans-evals repository"

// ExtractionMethod names how the dataset was produced.
const ExtractionMethod = "template_generation"

// Extract expands every template in every category of the catalog and folds
// the results into one dataset, preserving category order, then template
// order within each category, then enumeration order within each template.
//
// Extraction is a pure function of the catalog: two runs over the same
// catalog produce identical datasets, ordering included. It never returns a
// partially filled dataset; the first unbound placeholder aborts the whole
// run.
func Extract(catalog *templates.Catalog) (*models.Dataset, error) {
	dataset := &models.Dataset{
		PronounExamples:    []models.Example{},
		DisclosureExamples: []models.Example{},
		StereotypeExamples: []models.Example{},
		SentimentExamples:  []models.Example{},
	}

	categories := catalog.Categories()
	for _, category := range categories {
		for _, tmpl := range catalog.ForCategory(category) {
			examples, err := expander.Expand(tmpl)
			if err != nil {
				return nil, err
			}
			dataset.Append(category, examples)
		}
	}

	dataset.TotalExamples = dataset.Count()
	dataset.Metadata = models.Metadata{
		Source:           DatasetSource,
		ExtractionMethod: ExtractionMethod,
		Categories:       categoryNames(categories),
	}

	return dataset, nil
}

func categoryNames(categories []models.Category) []string {
	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = string(category)
	}
	return names
}
