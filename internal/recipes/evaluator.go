package recipes

import (
	"fmt"
	"strings"

	"github.com/samschueth/recipe-bot/internal/models"
)

// Score weights for the overall recipe evaluation.
const (
	weightCompleteness = 0.3
	weightSafety       = 0.4
	weightNutrition    = 0.2
	weightDietary      = 0.1
)

// Evaluator evaluates recipes for quality, accuracy, and safety
type Evaluator struct{}

// NewEvaluator creates a new recipe evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores a recipe and collects feedback. The overall score is a
// weighted sum of the component scores.
func (e *Evaluator) Evaluate(recipe *models.Recipe) *models.Evaluation {
	result := &models.Evaluation{
		Feedback: []string{},
	}

	completeness, feedback := e.evaluateCompleteness(recipe)
	result.CompletenessScore = completeness
	result.Feedback = append(result.Feedback, feedback...)

	safety, feedback := e.evaluateSafety(recipe)
	result.SafetyScore = safety
	result.Feedback = append(result.Feedback, feedback...)

	result.OverallScore = result.CompletenessScore*weightCompleteness +
		result.SafetyScore*weightSafety +
		result.NutritionScore*weightNutrition +
		result.DietaryComplianceScore*weightDietary

	return result
}

// evaluateCompleteness checks that the recipe has all required components.
func (e *Evaluator) evaluateCompleteness(recipe *models.Recipe) (float64, []string) {
	var missing []string
	if recipe.Title == "" {
		missing = append(missing, "title")
	}
	if len(recipe.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(recipe.Instructions) == 0 {
		missing = append(missing, "instructions")
	}

	required := 3
	score := float64(required-len(missing)) / float64(required)

	var feedback []string
	if len(missing) > 0 {
		feedback = append(feedback, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}
	return score, feedback
}

// evaluateSafety checks for potential safety issues.
func (e *Evaluator) evaluateSafety(recipe *models.Recipe) (float64, []string) {
	// TODO: add checks for dangerous ingredients and unsafe temperatures.
	return 1.0, nil
}
