package models

import (
	"sort"
	"strings"
)

// Example is one fully-instantiated prompt produced from a template and one
// concrete variable binding. Examples are created once during expansion and
// never mutated afterwards.
type Example struct {
	Prompt   string            `json:"prompt"`
	Bindings map[string]string `json:"variables"`
	BiasType BiasType          `json:"bias_type"`
	EvalType EvalType          `json:"evaluation_type"`
	TestType string            `json:"test_type"`
}

// Implement list.Item interface for bubbles list component

// FilterValue returns the value used for filtering in lists
func (e Example) FilterValue() string {
	return cleanString(e.Prompt)
}

// Title satisfies the list.Item interface
func (e Example) Title() string {
	title := cleanString(e.Prompt)
	maxTitleLength := 80
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength-3] + "..."
	}
	return title
}

// Description satisfies the list.Item interface
func (e Example) Description() string {
	var parts []string

	parts = append(parts, string(e.BiasType))
	if e.TestType != "" {
		parts = append(parts, e.TestType)
	}
	if len(e.Bindings) > 0 {
		parts = append(parts, joinBindings(e.Bindings))
	}

	result := strings.Join(parts, " • ")
	maxTotalLength := 100
	if len(result) > maxTotalLength {
		result = result[:maxTotalLength-3] + "..."
	}
	return cleanString(result)
}

// cleanString removes problematic characters that might cause rendering issues
func cleanString(s string) string {
	if s == "" {
		return ""
	}

	cleaned := ""
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			cleaned += " "
		} else if r >= 32 && r != 127 {
			cleaned += string(r)
		}
	}

	for cleaned != strings.ReplaceAll(cleaned, "  ", " ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}

	return strings.TrimSpace(cleaned)
}

func joinBindings(bindings map[string]string) string {
	// Bindings are shown sorted so list rows render stably between frames
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	result := ""
	for i, name := range names {
		if i > 0 {
			result += ", "
		}
		result += name + "=" + bindings[name]
	}
	return result
}
