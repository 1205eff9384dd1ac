package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSetTheme(t *testing.T) {
	SetTheme("light")
	if ColorPrimary != lipgloss.Color("162") {
		t.Errorf("Expected light primary color 162, got %v", ColorPrimary)
	}
	if TitleStyle.GetForeground() != lipgloss.Color("162") {
		t.Errorf("Expected title style to pick up the light primary color, got %v", TitleStyle.GetForeground())
	}

	SetTheme("dark")
	if ColorPrimary != lipgloss.Color("205") {
		t.Errorf("Expected dark primary color 205, got %v", ColorPrimary)
	}
	if StatusStyle.GetForeground() != lipgloss.Color("252") {
		t.Errorf("Expected status style to pick up the dark text color, got %v", StatusStyle.GetForeground())
	}
}
