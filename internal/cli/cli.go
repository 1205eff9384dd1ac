// Package cli provides the headless command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samschueth/recipe-bot/internal/clipboard"
	"github.com/samschueth/recipe-bot/internal/config"
	"github.com/samschueth/recipe-bot/internal/models"
	"github.com/samschueth/recipe-bot/internal/recipes"
	"github.com/samschueth/recipe-bot/internal/report"
	"github.com/samschueth/recipe-bot/internal/service"
)

// CLI provides headless command-line interface functionality
type CLI struct {
	service *service.Service
	cfg     *config.Config
}

// NewCLI creates a new CLI instance
func NewCLI(svc *service.Service, cfg *config.Config) *CLI {
	return &CLI{service: svc, cfg: cfg}
}

// ExecuteCommand processes a CLI command and returns the result
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		return c.printUsage()
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "extract":
		return c.extract(rest)
	case "list", "ls":
		return c.listDatasets()
	case "show":
		return c.showDataset(rest)
	case "search":
		return c.searchExamples(rest)
	case "copy":
		return c.copyExample(rest)
	case "templates":
		return c.listTemplates(rest)
	case "recipe":
		return c.generateRecipe(rest)
	case "help":
		return c.printUsage()
	default:
		return fmt.Errorf("unknown command: %s (run 'recipe-bot help' for usage)", command)
	}
}

// extract runs the full extraction, saves the dataset, and prints a summary
func (c *CLI) extract(args []string) error {
	format := parseFlag(args, "--format", "text")
	noSave := hasFlag(args, "--no-save")

	fmt.Println("Extracting data from trans-evals templates...")

	dataset, err := c.service.ExtractDataset()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if !noSave {
		path, err := c.service.SaveDataset(dataset)
		if err != nil {
			return fmt.Errorf("failed to save dataset: %w", err)
		}
		fmt.Printf("Saved to: %s\n\n", path)
	}

	if format == "json" {
		return printJSON(dataset)
	}
	fmt.Print(report.Text(dataset, c.cfg.SampleLimit))
	return nil
}

// listDatasets prints the saved dataset files
func (c *CLI) listDatasets() error {
	names, err := c.service.ListDatasets()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No datasets found. Run 'recipe-bot extract' to generate one.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// showDataset loads a saved dataset and prints it, optionally narrowed to a
// single category
func (c *CLI) showDataset(args []string) error {
	format := parseFlag(args, "--format", "text")
	name := firstPositional(args)

	dataset, err := c.service.LoadDataset(name)
	if err != nil {
		return err
	}

	if category := parseFlag(args, "--category", ""); category != "" {
		examples := dataset.Examples(models.Category(category))
		if examples == nil {
			return fmt.Errorf("unknown category: %s (pronoun, disclosure, stereotype, sentiment)", category)
		}
		if format == "json" {
			return printJSON(examples)
		}
		fmt.Printf("%s: %d examples\n", category, len(examples))
		for i, example := range examples {
			fmt.Printf("%d. %s\n", i+1, example.Prompt)
		}
		return nil
	}

	if format == "json" {
		return printJSON(dataset)
	}
	fmt.Print(report.Text(dataset, c.cfg.SampleLimit))
	return nil
}

// searchExamples fuzzy-searches generated prompts
func (c *CLI) searchExamples(args []string) error {
	query := firstPositional(args)
	if query == "" {
		return fmt.Errorf("usage: recipe-bot search <query>")
	}
	limit := parseIntFlag(args, "--limit", 10)
	format := parseFlag(args, "--format", "text")

	dataset, err := c.service.ExtractDataset()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	results := c.service.SearchExamples(dataset, query)
	if len(results) > limit {
		results = results[:limit]
	}

	if format == "json" {
		return printJSON(results)
	}
	if len(results) == 0 {
		fmt.Println("No matching examples.")
		return nil
	}
	for i, example := range results {
		fmt.Printf("%d. [%s/%s] %s\n", i+1, example.BiasType, example.TestType, example.Prompt)
	}
	return nil
}

// copyExample copies the best-matching prompt to the system clipboard
func (c *CLI) copyExample(args []string) error {
	query := firstPositional(args)
	if query == "" {
		return fmt.Errorf("usage: recipe-bot copy <query>")
	}

	dataset, err := c.service.ExtractDataset()
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	results := c.service.SearchExamples(dataset, query)
	if len(results) == 0 {
		return fmt.Errorf("no example matches %q", query)
	}

	if err := clipboard.Copy(results[0].Prompt); err != nil {
		return err
	}
	fmt.Printf("Copied to clipboard: %s\n", results[0].Prompt)
	return nil
}

// listTemplates prints the catalog's templates and their expansion sizes
func (c *CLI) listTemplates(args []string) error {
	format := parseFlag(args, "--format", "text")
	catalog := c.service.Catalog()

	if format == "json" {
		out := make(map[string][]models.Template)
		for _, category := range catalog.Categories() {
			out[string(category)] = catalog.ForCategory(category)
		}
		return printJSON(out)
	}

	for _, category := range catalog.Categories() {
		tmpls := catalog.ForCategory(category)
		fmt.Printf("%s (%d templates):\n", category, len(tmpls))
		for _, tmpl := range tmpls {
			fmt.Printf("  - %s [%s, %d examples]\n", tmpl.Pattern, tmpl.TestType, tmpl.Combinations())
		}
		fmt.Println()
	}
	return nil
}

// generateRecipe generates and evaluates a recipe
func (c *CLI) generateRecipe(args []string) error {
	query := firstPositional(args)
	if query == "" {
		return fmt.Errorf("usage: recipe-bot recipe <query>")
	}

	req := recipes.GenerateRequest{
		Query:    query,
		Cuisine:  parseFlag(args, "--cuisine", ""),
		Servings: parseIntFlag(args, "--servings", 4),
	}
	if dietary := parseFlag(args, "--dietary", ""); dietary != "" {
		req.DietaryPreferences = strings.Split(dietary, ",")
	}

	recipe, evaluation, err := c.service.GenerateRecipe(req)
	if err != nil {
		return err
	}

	format := parseFlag(args, "--format", "text")
	if format == "json" {
		return printJSON(map[string]interface{}{
			"recipe":     recipe,
			"evaluation": evaluation,
		})
	}

	fmt.Printf("Recipe: %s\n", recipe.Title)
	fmt.Printf("Servings: %d\n", recipe.Servings)
	if recipe.Cuisine != "" {
		fmt.Printf("Cuisine: %s\n", recipe.Cuisine)
	}
	if len(recipe.DietaryInfo) > 0 {
		fmt.Printf("Dietary: %s\n", strings.Join(recipe.DietaryInfo, ", "))
	}
	fmt.Printf("\nEvaluation:\n")
	fmt.Printf("  Overall:      %.2f\n", evaluation.OverallScore)
	fmt.Printf("  Completeness: %.2f\n", evaluation.CompletenessScore)
	fmt.Printf("  Safety:       %.2f\n", evaluation.SafetyScore)
	for _, feedback := range evaluation.Feedback {
		fmt.Printf("  - %s\n", feedback)
	}
	return nil
}

func (c *CLI) printUsage() error {
	fmt.Print(`recipe-bot - Recipe generation and bias-evaluation dataset extraction

USAGE:
    recipe-bot [OPTIONS] [COMMAND]

COMMANDS:
    (no command)       Start interactive TUI mode
    extract            Generate the synthetic dataset and save it
    list, ls           List saved datasets
    show [name]        Show a saved dataset summary
                       (--category narrows to one category's examples)
    search <query>     Fuzzy-search generated prompts
    copy <query>       Copy the best-matching prompt to the clipboard
    templates          List catalog templates and expansion sizes
    recipe <query>     Generate and evaluate a recipe
    help               Show this help

COMMON FLAGS:
    --format json|text Output format (default: text)
    --no-save          Skip saving during extract
    --limit <n>        Max search results (default: 10)

STORAGE:
    Default directory: ~/.recipe-bot
    Override with: RECIPE_BOT_DIR=<path>
`)
	return nil
}

// Flag helpers

func parseFlag(args []string, name, fallback string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, name+"=") {
			return strings.TrimPrefix(arg, name+"=")
		}
	}
	return fallback
}

func parseIntFlag(args []string, name string, fallback int) int {
	raw := parseFlag(args, name, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// firstPositional returns the first argument that is not a flag or a flag's
// value.
func firstPositional(args []string) string {
	skip := false
	for _, arg := range args {
		if skip {
			skip = false
			continue
		}
		if strings.HasPrefix(arg, "--") {
			if !strings.Contains(arg, "=") && arg != "--no-save" {
				skip = true
			}
			continue
		}
		return arg
	}
	return ""
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
