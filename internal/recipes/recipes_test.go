package recipes

import (
	"math"
	"strings"
	"testing"

	"github.com/samschueth/recipe-bot/internal/models"
)

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	if _, err := NewGenerator("", "openrouter/auto"); err == nil {
		t.Fatal("Expected error when API key is missing")
	}

	gen, err := NewGenerator("test-key", "openrouter/auto")
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}
	if gen == nil {
		t.Fatal("Expected generator instance")
	}
}

func TestGeneratePlaceholderRecipe(t *testing.T) {
	gen, err := NewGenerator("test-key", "openrouter/auto")
	if err != nil {
		t.Fatalf("Failed to create generator: %v", err)
	}

	recipe, err := gen.Generate(GenerateRequest{
		Query:              "mushroom risotto",
		DietaryPreferences: []string{"vegetarian"},
		Cuisine:            "Italian",
	})
	if err != nil {
		t.Fatalf("Failed to generate recipe: %v", err)
	}

	if !strings.Contains(recipe.Title, "mushroom risotto") {
		t.Errorf("Expected query in title, got %q", recipe.Title)
	}
	if recipe.Servings != 4 {
		t.Errorf("Expected default servings 4, got %d", recipe.Servings)
	}
	if recipe.Cuisine != "Italian" {
		t.Errorf("Expected cuisine Italian, got %q", recipe.Cuisine)
	}

	if _, err := gen.Generate(GenerateRequest{}); err == nil {
		t.Error("Expected error for empty query")
	}
}

func TestEvaluateCompleteRecipe(t *testing.T) {
	eval := NewEvaluator()
	recipe := &models.Recipe{
		Title:        "Mushroom Risotto",
		Ingredients:  []string{"rice", "mushrooms", "stock"},
		Instructions: []string{"cook it"},
		Servings:     4,
	}

	result := eval.Evaluate(recipe)

	if result.CompletenessScore != 1.0 {
		t.Errorf("Expected completeness 1.0, got %f", result.CompletenessScore)
	}
	if result.SafetyScore != 1.0 {
		t.Errorf("Expected safety 1.0, got %f", result.SafetyScore)
	}
	// 1.0*0.3 + 1.0*0.4 + 0*0.2 + 0*0.1
	if math.Abs(result.OverallScore-0.7) > 1e-9 {
		t.Errorf("Expected overall 0.7, got %f", result.OverallScore)
	}
	if len(result.Feedback) != 0 {
		t.Errorf("Expected no feedback for complete recipe, got %v", result.Feedback)
	}
}

func TestEvaluateIncompleteRecipe(t *testing.T) {
	eval := NewEvaluator()
	recipe := &models.Recipe{Title: "Just a title"}

	result := eval.Evaluate(recipe)

	if math.Abs(result.CompletenessScore-1.0/3.0) > 1e-9 {
		t.Errorf("Expected completeness 1/3, got %f", result.CompletenessScore)
	}
	if len(result.Feedback) != 1 {
		t.Fatalf("Expected one feedback entry, got %v", result.Feedback)
	}
	if !strings.Contains(result.Feedback[0], "ingredients") || !strings.Contains(result.Feedback[0], "instructions") {
		t.Errorf("Expected feedback naming missing fields, got %q", result.Feedback[0])
	}
}
