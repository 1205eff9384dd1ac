// Package templates holds the bias-evaluation template catalog: a fixed set
// of prompt templates partitioned into categories, established at process
// start and read-only for the life of a run.
package templates

import "github.com/samschueth/recipe-bot/internal/models"

// Catalog is an immutable collection of templates grouped into categories.
// Categories iterate in a fixed, deterministic order so every extraction run
// over the same catalog produces identically ordered output.
type Catalog struct {
	order      []models.Category
	byCategory map[models.Category][]models.Template
}

// Default returns the built-in catalog with the four standard categories.
func Default() *Catalog {
	return &Catalog{
		order: []models.Category{
			models.CategoryPronoun,
			models.CategoryDisclosure,
			models.CategoryStereotype,
			models.CategorySentiment,
		},
		byCategory: map[models.Category][]models.Template{
			models.CategoryPronoun:    pronounTemplates,
			models.CategoryDisclosure: disclosureTemplates,
			models.CategoryStereotype: stereotypeTemplates,
			models.CategorySentiment:  sentimentTemplates,
		},
	}
}

// Categories returns the category names in iteration order. Every category is
// present even when it holds no templates.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.order))
	copy(out, c.order)
	return out
}

// ForCategory returns the templates of a category in catalog order. Unknown
// categories return nil.
func (c *Catalog) ForCategory(category models.Category) []models.Template {
	return c.byCategory[category]
}

// Size returns the total number of templates across all categories.
func (c *Catalog) Size() int {
	n := 0
	for _, tmpls := range c.byCategory {
		n += len(tmpls)
	}
	return n
}

// Merge returns a new catalog with extra templates appended to the end of a
// category's sequence. The receiver is left untouched; catalogs never mutate
// after construction.
func (c *Catalog) Merge(category models.Category, extra []models.Template) *Catalog {
	merged := &Catalog{
		order:      make([]models.Category, len(c.order)),
		byCategory: make(map[models.Category][]models.Template, len(c.byCategory)),
	}
	copy(merged.order, c.order)
	for cat, tmpls := range c.byCategory {
		merged.byCategory[cat] = tmpls
	}

	if _, known := merged.byCategory[category]; !known {
		merged.order = append(merged.order, category)
	}
	combined := make([]models.Template, 0, len(merged.byCategory[category])+len(extra))
	combined = append(combined, merged.byCategory[category]...)
	combined = append(combined, extra...)
	merged.byCategory[category] = combined

	return merged
}
