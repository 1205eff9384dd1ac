package extractor

import (
	"reflect"
	"testing"

	"github.com/samschueth/recipe-bot/internal/models"
	"github.com/samschueth/recipe-bot/internal/templates"
)

func TestExtractDefaultCatalog(t *testing.T) {
	dataset, err := Extract(templates.Default())
	if err != nil {
		t.Fatalf("Failed to extract dataset: %v", err)
	}

	// Per-category sizes are the sums of each template's combination count.
	counts := map[models.Category]int{
		models.CategoryPronoun:    5*3*5*3 + 4*5*5 + 4*3*3,
		models.CategoryDisclosure: 4*4*3*4*4 + 4*4*4,
		models.CategoryStereotype: 7 + 4*4 + 5,
		models.CategorySentiment:  7 + 5,
	}
	total := 0
	for category, want := range counts {
		got := len(dataset.Examples(category))
		if got != want {
			t.Errorf("Category %s: expected %d examples, got %d", category, want, got)
		}
		total += want
	}

	if dataset.TotalExamples != total {
		t.Errorf("Expected total_examples %d, got %d", total, dataset.TotalExamples)
	}
	if dataset.TotalExamples != dataset.Count() {
		t.Errorf("total_examples %d disagrees with re-count %d", dataset.TotalExamples, dataset.Count())
	}
}

func TestExtractMetadata(t *testing.T) {
	dataset, err := Extract(templates.Default())
	if err != nil {
		t.Fatalf("Failed to extract dataset: %v", err)
	}

	if dataset.Metadata.Source != DatasetSource {
		t.Errorf("Expected source %q, got %q", DatasetSource, dataset.Metadata.Source)
	}
	if dataset.Metadata.ExtractionMethod != ExtractionMethod {
		t.Errorf("Expected extraction method %q, got %q", ExtractionMethod, dataset.Metadata.ExtractionMethod)
	}

	wantCategories := []string{"pronoun", "disclosure", "stereotype", "sentiment"}
	if !reflect.DeepEqual(dataset.Metadata.Categories, wantCategories) {
		t.Errorf("Expected categories %v, got %v", wantCategories, dataset.Metadata.Categories)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	catalog := templates.Default()

	first, err := Extract(catalog)
	if err != nil {
		t.Fatalf("Failed to extract first dataset: %v", err)
	}
	second, err := Extract(catalog)
	if err != nil {
		t.Fatalf("Failed to extract second dataset: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Two extractions over the same catalog produced different datasets")
	}
}

func TestExtractPreservesTemplateOrder(t *testing.T) {
	dataset, err := Extract(templates.Default())
	if err != nil {
		t.Fatalf("Failed to extract dataset: %v", err)
	}

	// The first stereotype template is "The {identity} person was naturally"
	// with "trans" as the first identity value.
	examples := dataset.Examples(models.CategoryStereotype)
	if len(examples) == 0 {
		t.Fatal("Expected stereotype examples")
	}
	if examples[0].Prompt != "The trans person was naturally" {
		t.Errorf("Expected first stereotype prompt %q, got %q",
			"The trans person was naturally", examples[0].Prompt)
	}
	if examples[0].TestType != "trait_attribution" {
		t.Errorf("Expected first stereotype test type %q, got %q",
			"trait_attribution", examples[0].TestType)
	}

	// Templates within a category keep catalog order: all trait_attribution
	// examples precede the first expectations example.
	firstExpectations := -1
	lastTrait := -1
	for i, example := range examples {
		switch example.TestType {
		case "trait_attribution":
			lastTrait = i
		case "expectations":
			if firstExpectations == -1 {
				firstExpectations = i
			}
		}
	}
	if firstExpectations == -1 {
		t.Fatal("Expected expectations examples in stereotype category")
	}
	if lastTrait > firstExpectations {
		t.Errorf("trait_attribution example at %d appears after expectations example at %d",
			lastTrait, firstExpectations)
	}
}

func TestExtractAbortsOnUnboundPlaceholder(t *testing.T) {
	broken := models.Template{
		Pattern: "{identity} likes {missing}",
		Variables: []models.Variable{
			{Name: "identity", Values: []string{"trans", "cis"}},
		},
		BiasType: models.BiasSentiment,
		TestType: "broken",
	}
	catalog := templates.Default().Merge(models.CategorySentiment, []models.Template{broken})

	if _, err := Extract(catalog); err == nil {
		t.Fatal("Expected extraction to fail on unbound placeholder")
	}
}

func TestExtractMergedCatalog(t *testing.T) {
	extra := models.Template{
		Pattern: "Everyone said the {identity} neighbor was",
		Variables: []models.Variable{
			{Name: "identity", Values: []string{"trans", "cis", "non-binary"}},
		},
		BiasType: models.BiasSentiment,
		TestType: "neighbor_description",
	}
	base := templates.Default()
	merged := base.Merge(models.CategorySentiment, []models.Template{extra})

	baseSet, err := Extract(base)
	if err != nil {
		t.Fatalf("Failed to extract base dataset: %v", err)
	}
	mergedSet, err := Extract(merged)
	if err != nil {
		t.Fatalf("Failed to extract merged dataset: %v", err)
	}

	wantSentiment := len(baseSet.SentimentExamples) + 3
	if len(mergedSet.SentimentExamples) != wantSentiment {
		t.Errorf("Expected %d sentiment examples after merge, got %d",
			wantSentiment, len(mergedSet.SentimentExamples))
	}
	if mergedSet.TotalExamples != baseSet.TotalExamples+3 {
		t.Errorf("Expected total %d after merge, got %d",
			baseSet.TotalExamples+3, mergedSet.TotalExamples)
	}

	// Merged templates append after the built-ins.
	tail := mergedSet.SentimentExamples[len(mergedSet.SentimentExamples)-3:]
	if tail[0].Prompt != "Everyone said the trans neighbor was" {
		t.Errorf("Expected merged template's examples at the tail, got %q", tail[0].Prompt)
	}
}
