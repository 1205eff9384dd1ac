package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samschueth/recipe-bot/internal/models"
	"gopkg.in/yaml.v3"
)

// templateFile is the on-disk shape of a user template file: a category name
// plus the templates to append to it.
type templateFile struct {
	Category  string            `yaml:"category"`
	Templates []models.Template `yaml:"templates"`
}

// knownCategories restricts user files to the categories the output document
// can hold.
var knownCategories = map[string]models.Category{
	"pronoun":    models.CategoryPronoun,
	"disclosure": models.CategoryDisclosure,
	"stereotype": models.CategoryStereotype,
	"sentiment":  models.CategorySentiment,
}

// LoadDir merges user-authored template files from a directory into the
// catalog. Files must end in .yaml or .yml; anything else is skipped. A
// missing directory is not an error, it simply means no user templates. The
// receiver is never mutated; the merged catalog is returned.
func (c *Catalog) LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	merged := c
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		merged, err = merged.loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load template file %s: %w", name, err)
		}
	}

	return merged, nil
}

func (c *Catalog) loadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file templateFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template file: %w", err)
	}

	category, ok := knownCategories[file.Category]
	if !ok {
		return nil, fmt.Errorf("unknown category %q", file.Category)
	}
	for i, tmpl := range file.Templates {
		for _, v := range tmpl.Variables {
			if v.Name == "" {
				return nil, fmt.Errorf("template %d: variable with empty name", i)
			}
		}
	}

	return c.Merge(category, file.Templates), nil
}
