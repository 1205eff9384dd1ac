// Package recipes provides recipe generation and evaluation. Generation
// talks to an external model service and is stubbed pending API integration;
// evaluation is local scoring.
package recipes

import (
	"fmt"

	"github.com/samschueth/recipe-bot/internal/errors"
	"github.com/samschueth/recipe-bot/internal/models"
)

// GenerateRequest describes a recipe to generate
type GenerateRequest struct {
	Query              string
	DietaryPreferences []string
	Cuisine            string
	Servings           int
}

// Generator generates recipes using AI models via the OpenRouter API
type Generator struct {
	apiKey string
	model  string
}

// NewGenerator creates a generator. The API key is required even though the
// remote call is not implemented yet, matching the service's credential
// contract.
func NewGenerator(apiKey, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, errors.NotConfiguredError("OpenRouter API key required (set OPENROUTER_API_KEY)")
	}
	return &Generator{apiKey: apiKey, model: model}, nil
}

// Generate produces a recipe for the request.
//
// TODO: implement the OpenRouter chat completion call; until then this
// returns a placeholder recipe shaped like the real response.
func (g *Generator) Generate(req GenerateRequest) (*models.Recipe, error) {
	if req.Query == "" {
		return nil, errors.ValidationError("recipe query must not be empty")
	}
	servings := req.Servings
	if servings <= 0 {
		servings = 4
	}

	return &models.Recipe{
		Title:        fmt.Sprintf("Generated Recipe for %s", req.Query),
		Ingredients:  []string{},
		Instructions: []string{},
		Servings:     servings,
		Cuisine:      req.Cuisine,
		DietaryInfo:  req.DietaryPreferences,
	}, nil
}
