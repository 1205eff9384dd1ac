package report

import (
	"strings"
	"testing"

	"github.com/samschueth/recipe-bot/internal/extractor"
	"github.com/samschueth/recipe-bot/internal/templates"
)

func TestTextSummary(t *testing.T) {
	dataset, err := extractor.Extract(templates.Default())
	if err != nil {
		t.Fatalf("Failed to extract dataset: %v", err)
	}

	out := Text(dataset, 3)

	if !strings.Contains(out, "Extracted 1233 synthetic examples") {
		t.Errorf("Expected total count in summary, got:\n%s", out)
	}
	for _, heading := range []string{"Pronoun Examples", "Disclosure Examples", "Stereotype Examples", "Sentiment Examples"} {
		if !strings.Contains(out, heading) {
			t.Errorf("Expected heading %q in summary", heading)
		}
	}
	if !strings.Contains(out, "The trans person was naturally") {
		t.Error("Expected first stereotype sample prompt in summary")
	}
}

func TestMarkdownSampleLimit(t *testing.T) {
	dataset, err := extractor.Extract(templates.Default())
	if err != nil {
		t.Fatalf("Failed to extract dataset: %v", err)
	}

	out := Markdown(dataset, 2)

	// Two samples shown, the rest elided.
	if !strings.Contains(out, "_...and") {
		t.Errorf("Expected elision marker for categories larger than the limit, got:\n%s", out)
	}
	if !strings.Contains(out, "1. The trans person was naturally") {
		t.Error("Expected numbered sample prompts")
	}
	if strings.Contains(out, "3. ") {
		t.Error("Expected no more than 2 samples per category")
	}
}
