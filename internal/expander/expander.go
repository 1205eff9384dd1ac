// Package expander turns one template into the complete set of concrete
// examples it describes, enumerating the full cartesian product of its
// variable domains and substituting each binding into the pattern.
package expander

import (
	"strings"

	"github.com/samschueth/recipe-bot/internal/errors"
	"github.com/samschueth/recipe-bot/internal/models"
)

// Expand generates every example a template describes, in deterministic
// order: the first-declared variable varies slowest, the last fastest, the
// same order nested loops over the declarations would produce.
//
// The result length is always the product of the variable value-list lengths,
// including variables the pattern never references. A variable with zero
// values makes the product empty; that is a valid template yielding no
// examples, not an error. The only error condition is a {name} token in the
// pattern with no matching variable, reported as
// *errors.UnboundPlaceholderError.
func Expand(tmpl models.Template) ([]models.Example, error) {
	total := tmpl.Combinations()
	if total == 0 {
		return nil, nil
	}

	names := make([]string, len(tmpl.Variables))
	for i, v := range tmpl.Variables {
		names[i] = v.Name
	}

	examples := make([]models.Example, 0, total)
	odometer := make([]int, len(tmpl.Variables))
	for {
		bindings := make(map[string]string, len(names))
		for i, v := range tmpl.Variables {
			bindings[names[i]] = v.Values[odometer[i]]
		}

		prompt, err := substitute(tmpl, bindings)
		if err != nil {
			return nil, err
		}

		examples = append(examples, models.Example{
			Prompt:   prompt,
			Bindings: bindings,
			BiasType: tmpl.BiasType,
			EvalType: models.EvalGeneration,
			TestType: tmpl.TestType,
		})

		if !advance(odometer, tmpl.Variables) {
			break
		}
	}

	return examples, nil
}

// advance increments the odometer with the last position as the fastest
// digit. It returns false once every combination has been visited.
func advance(odometer []int, variables []models.Variable) bool {
	for i := len(odometer) - 1; i >= 0; i-- {
		odometer[i]++
		if odometer[i] < len(variables[i].Values) {
			return true
		}
		odometer[i] = 0
	}
	return false
}

// substitute replaces every {name} token in the pattern with its bound value
// in a single left-to-right pass. Each token is treated atomically and
// inserted values are never rescanned, so a value that happens to contain
// brace-delimited text cannot trigger a second substitution.
func substitute(tmpl models.Template, bindings map[string]string) (string, error) {
	pattern := tmpl.Pattern
	var sb strings.Builder
	sb.Grow(len(pattern))

	for i := 0; i < len(pattern); {
		if pattern[i] != '{' {
			sb.WriteByte(pattern[i])
			i++
			continue
		}

		name, width := scanPlaceholder(pattern[i:])
		if width == 0 {
			// Not a well-formed placeholder token; keep the brace as-is.
			sb.WriteByte(pattern[i])
			i++
			continue
		}

		value, bound := bindings[name]
		if !bound {
			return "", errors.NewUnboundPlaceholderError(name, string(tmpl.BiasType), tmpl.TestType)
		}
		sb.WriteString(value)
		i += width
	}

	return sb.String(), nil
}

// scanPlaceholder reads a {name} token at the start of s. It returns the
// placeholder name and the token's width in bytes, or a zero width when s
// does not begin with a complete token.
func scanPlaceholder(s string) (string, int) {
	end := strings.IndexByte(s, '}')
	if end < 2 {
		return "", 0
	}
	name := s[1:end]
	for j := 0; j < len(name); j++ {
		if !isNameChar(name[j]) {
			return "", 0
		}
	}
	return name, end + 1
}

func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
