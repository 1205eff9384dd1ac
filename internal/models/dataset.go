package models

// Category names the catalog partition an example group belongs to. Category
// is the grouping key of the output document; BiasType is the finer bias
// dimension carried on each example (pronoun templates probe misgendering,
// disclosure templates probe toxicity).
type Category string

const (
	CategoryPronoun    Category = "pronoun"
	CategoryDisclosure Category = "disclosure"
	CategoryStereotype Category = "stereotype"
	CategorySentiment  Category = "sentiment"
)

// Metadata carries static descriptive fields about a dataset. Informational
// only; nothing downstream branches on it.
type Metadata struct {
	Source           string   `json:"source"`
	ExtractionMethod string   `json:"extraction_method"`
	Categories       []string `json:"categories"`
}

// Dataset is the complete output document: every generated example grouped
// by category, plus a total count and descriptive metadata. The four category
// fields are fixed schema, matching the serialized document shape.
type Dataset struct {
	PronounExamples    []Example `json:"pronoun_examples"`
	DisclosureExamples []Example `json:"disclosure_examples"`
	StereotypeExamples []Example `json:"stereotype_examples"`
	SentimentExamples  []Example `json:"sentiment_examples"`
	TotalExamples      int       `json:"total_examples"`
	Metadata           Metadata  `json:"metadata"`
}

// Examples returns the example sequence for a category. Unknown categories
// return nil.
func (d *Dataset) Examples(category Category) []Example {
	switch category {
	case CategoryPronoun:
		return d.PronounExamples
	case CategoryDisclosure:
		return d.DisclosureExamples
	case CategoryStereotype:
		return d.StereotypeExamples
	case CategorySentiment:
		return d.SentimentExamples
	}
	return nil
}

// Append adds examples to the end of a category's sequence, preserving the
// order they were generated in.
func (d *Dataset) Append(category Category, examples []Example) {
	switch category {
	case CategoryPronoun:
		d.PronounExamples = append(d.PronounExamples, examples...)
	case CategoryDisclosure:
		d.DisclosureExamples = append(d.DisclosureExamples, examples...)
	case CategoryStereotype:
		d.StereotypeExamples = append(d.StereotypeExamples, examples...)
	case CategorySentiment:
		d.SentimentExamples = append(d.SentimentExamples, examples...)
	}
}

// AllExamples returns every example across all categories in the document's
// fixed category order.
func (d *Dataset) AllExamples() []Example {
	all := make([]Example, 0, d.Count())
	all = append(all, d.PronounExamples...)
	all = append(all, d.DisclosureExamples...)
	all = append(all, d.StereotypeExamples...)
	all = append(all, d.SentimentExamples...)
	return all
}

// Count re-counts the per-category sequences. TotalExamples must always equal
// this value on a dataset returned by extraction.
func (d *Dataset) Count() int {
	return len(d.PronounExamples) +
		len(d.DisclosureExamples) +
		len(d.StereotypeExamples) +
		len(d.SentimentExamples)
}
