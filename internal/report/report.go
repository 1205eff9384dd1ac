// Package report renders human-readable summaries of a generated dataset.
// The CLI prints them as plain text; the TUI renders the markdown variant
// through glamour.
package report

import (
	"fmt"
	"strings"

	"github.com/samschueth/recipe-bot/internal/models"
)

// categoryTitles maps category names to display headings.
var categoryTitles = map[models.Category]string{
	models.CategoryPronoun:    "Pronoun Examples",
	models.CategoryDisclosure: "Disclosure Examples",
	models.CategoryStereotype: "Stereotype Examples",
	models.CategorySentiment:  "Sentiment Examples",
}

// orderedCategories lists categories in document order.
var orderedCategories = []models.Category{
	models.CategoryPronoun,
	models.CategoryDisclosure,
	models.CategoryStereotype,
	models.CategorySentiment,
}

// Markdown renders a dataset summary as markdown: total and per-category
// counts plus up to sampleLimit sample prompts per category. Display limits
// are presentation policy only; the dataset always carries every example.
func Markdown(dataset *models.Dataset, sampleLimit int) string {
	var sb strings.Builder

	sb.WriteString("# Bias Evaluation Dataset\n\n")
	fmt.Fprintf(&sb, "**Total examples:** %d\n\n", dataset.TotalExamples)
	fmt.Fprintf(&sb, "- Source: %s\n", dataset.Metadata.Source)
	fmt.Fprintf(&sb, "- Extraction method: %s\n", dataset.Metadata.ExtractionMethod)
	fmt.Fprintf(&sb, "- Categories: %s\n\n", strings.Join(dataset.Metadata.Categories, ", "))

	sb.WriteString("## Breakdown by category\n\n")
	for _, category := range orderedCategories {
		fmt.Fprintf(&sb, "- %s: %d\n", categoryTitles[category], len(dataset.Examples(category)))
	}
	sb.WriteString("\n")

	for _, category := range orderedCategories {
		examples := dataset.Examples(category)
		fmt.Fprintf(&sb, "## %s\n\n", categoryTitles[category])
		if len(examples) == 0 {
			sb.WriteString("_No examples._\n\n")
			continue
		}
		for i, example := range samples(examples, sampleLimit) {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, example.Prompt)
		}
		if len(examples) > sampleLimit {
			fmt.Fprintf(&sb, "\n_...and %d more._\n", len(examples)-sampleLimit)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Text renders the console summary: per-category counts and a handful of
// sample prompts, matching the extract command's output format.
func Text(dataset *models.Dataset, sampleLimit int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Extracted %d synthetic examples\n\n", dataset.TotalExamples)
	sb.WriteString("Breakdown by category:\n")
	for _, category := range orderedCategories {
		fmt.Fprintf(&sb, "  - %s: %d\n", categoryTitles[category], len(dataset.Examples(category)))
	}

	sb.WriteString("\nSample examples from each category:\n")
	for _, category := range orderedCategories {
		examples := dataset.Examples(category)
		if len(examples) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s:\n", categoryTitles[category])
		for i, example := range samples(examples, sampleLimit) {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, example.Prompt)
		}
	}

	return sb.String()
}

func samples(examples []models.Example, limit int) []models.Example {
	if limit < 0 {
		limit = 0
	}
	if len(examples) <= limit {
		return examples
	}
	return examples[:limit]
}
