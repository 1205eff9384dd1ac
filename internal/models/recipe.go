package models

// Recipe represents a generated recipe
type Recipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Servings     int      `json:"servings"`
	Cuisine      string   `json:"cuisine,omitempty"`
	DietaryInfo  []string `json:"dietary_info,omitempty"`
}

// Evaluation holds the scoring results for a recipe
type Evaluation struct {
	OverallScore           float64  `json:"overall_score"`
	NutritionScore         float64  `json:"nutrition_score"`
	SafetyScore            float64  `json:"safety_score"`
	CompletenessScore      float64  `json:"completeness_score"`
	DietaryComplianceScore float64  `json:"dietary_compliance_score"`
	Feedback               []string `json:"feedback"`
}
