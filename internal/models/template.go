package models

// BiasType identifies the bias dimension a template probes
type BiasType string

const (
	BiasMisgendering BiasType = "misgendering"
	BiasToxicity     BiasType = "toxicity"
	BiasStereotype   BiasType = "stereotype"
	BiasSentiment    BiasType = "sentiment"
	BiasCoreference  BiasType = "coreference"
)

// EvalType identifies the evaluation modality of a generated example
type EvalType string

const (
	EvalGeneration EvalType = "generation"
)

// Variable is one named placeholder domain of a template. Variables are kept
// as an ordered slice rather than a map because declaration order fixes the
// enumeration order of the cartesian product during expansion.
type Variable struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Template represents a parameterized prompt pattern with named variable
// domains and category tags. Placeholders appear in the pattern as {name}
// tokens and every placeholder must be backed by a Variable entry. A declared
// variable that never appears in the pattern is legal; it multiplies the
// expansion without changing the prompt text.
type Template struct {
	Pattern   string     `yaml:"template"`
	Variables []Variable `yaml:"variables"`
	BiasType  BiasType   `yaml:"bias_type"`
	TestType  string     `yaml:"test_type"`
}

// Combinations returns the number of examples expansion will produce: the
// product of the value-list lengths across all variables, whether or not a
// variable actually appears in the pattern. A variable with no values makes
// the product zero.
func (t Template) Combinations() int {
	n := 1
	for _, v := range t.Variables {
		n *= len(v.Values)
	}
	return n
}

// Values looks up the value list for a variable name. The second return
// reports whether the variable is declared on this template.
func (t Template) Values(name string) ([]string, bool) {
	for _, v := range t.Variables {
		if v.Name == name {
			return v.Values, true
		}
	}
	return nil, false
}
