// Package ui provides the interactive terminal browser for generated
// datasets.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/samschueth/recipe-bot/internal/config"
	"github.com/samschueth/recipe-bot/internal/models"
	"github.com/samschueth/recipe-bot/internal/report"
	"github.com/samschueth/recipe-bot/internal/service"
)

type viewMode int

const (
	viewExamples viewMode = iota
	viewSummary
)

// categoryFilters cycles: all examples first, then one category at a time.
var categoryFilters = []models.Category{
	"", // all
	models.CategoryPronoun,
	models.CategoryDisclosure,
	models.CategoryStereotype,
	models.CategorySentiment,
}

// Model is the bubbletea model for browsing a generated dataset
type Model struct {
	service *service.Service
	cfg     *config.Config
	dataset *models.Dataset
	list    list.Model
	summary string
	mode    viewMode
	filter  int
	width   int
	height  int
}

// createGlamourRenderer creates a glamour renderer honoring the configured
// theme.
func createGlamourRenderer(theme string, wordWrap int) (*glamour.TermRenderer, error) {
	if theme != "" {
		return glamour.NewTermRenderer(
			glamour.WithStandardStyle(theme),
			glamour.WithWordWrap(wordWrap),
		)
	}
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
}

// NewModel creates the TUI model. The dataset is generated up front; the
// browser itself never mutates it.
func NewModel(svc *service.Service, cfg *config.Config) (*Model, error) {
	SetTheme(cfg.Theme)

	dataset, err := svc.ExtractDataset()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	m := &Model{
		service: svc,
		cfg:     cfg,
		dataset: dataset,
	}

	delegate := list.NewDefaultDelegate()
	m.list = list.New(m.itemsForFilter(), delegate, 0, 0)
	m.list.Title = m.listTitle()
	m.list.Styles.Title = TitleStyle
	m.list.SetShowStatusBar(true)
	m.list.SetFilteringEnabled(true)

	if err := m.renderSummary(80); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Model) itemsForFilter() []list.Item {
	category := categoryFilters[m.filter]
	var examples []models.Example
	if category == "" {
		examples = m.dataset.AllExamples()
	} else {
		examples = m.dataset.Examples(category)
	}

	items := make([]list.Item, len(examples))
	for i, example := range examples {
		items[i] = example
	}
	return items
}

func (m *Model) listTitle() string {
	category := categoryFilters[m.filter]
	if category == "" {
		return fmt.Sprintf("All examples (%d)", m.dataset.TotalExamples)
	}
	return fmt.Sprintf("%s examples (%d)", category, len(m.dataset.Examples(category)))
}

func (m *Model) renderSummary(wrap int) error {
	markdown := report.Markdown(m.dataset, m.cfg.SampleLimit)
	renderer, err := createGlamourRenderer(m.cfg.Theme, wrap)
	if err != nil {
		// Fall back to raw markdown when the terminal can't be probed.
		m.summary = markdown
		return nil
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		m.summary = markdown
		return nil
	}
	m.summary = rendered
	return nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		_ = m.renderSummary(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		// Don't intercept keys while the list filter input is active.
		if m.mode == viewExamples && m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "s":
			if m.mode == viewExamples {
				m.mode = viewSummary
			} else {
				m.mode = viewExamples
			}
			return m, nil
		case "c":
			if m.mode == viewExamples {
				m.filter = (m.filter + 1) % len(categoryFilters)
				m.list.SetItems(m.itemsForFilter())
				m.list.Title = m.listTitle()
				m.list.ResetSelected()
			}
			return m, nil
		}
	}

	if m.mode == viewExamples {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	help := HelpStyle.Render("tab: summary • c: cycle category • /: filter • q: quit")

	if m.mode == viewSummary {
		status := StatusStyle.Render(fmt.Sprintf("%d examples", m.dataset.TotalExamples))
		return SummaryStyle.Render(m.summary) + "\n" + status + "\n" + help
	}
	return m.list.View() + "\n" + help
}
