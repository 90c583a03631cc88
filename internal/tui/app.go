package tui

import (
	"fmt"
	"strings"

	"portfolio-be/internal/portfolio"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// title, search, category, skills, blank, status, help
	chromeHeight = 8
)

// Model is the interactive portfolio browser. Every key that changes the
// filter recomputes the view before the next frame.
type Model struct {
	categories []portfolio.Category
	skills     []string
	options    []portfolio.Option
	stats      portfolio.Stats

	filter portfolio.Filter
	view   []portfolio.Category

	Search    textinput.Model
	Viewport  viewport.Model
	searching bool
	cursor    int
	catIndex  int

	Width  int
	Height int
}

// NewModel creates the browser over a loaded catalog.
func NewModel(categories []portfolio.Category) Model {
	ti := textinput.New()
	ti.Placeholder = "Search projects..."
	ti.Prompt = "Search: "
	ti.CharLimit = 120

	m := Model{
		categories: categories,
		skills:     portfolio.SkillUniverse(categories),
		options:    portfolio.CategoryOptions(categories),
		stats:      portfolio.ComputeStats(categories),
		filter:     portfolio.NewFilter(),
		Search:     ti,
		Viewport:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		Width:      defaultWidth,
		Height:     defaultHeight,
	}
	m.refresh()
	return m
}

// Filter returns the current filter state.
func (m Model) Filter() portfolio.Filter {
	return m.filter
}

// Visible returns the categories currently shown.
func (m Model) Visible() []portfolio.Category {
	return m.view
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Viewport.Width = msg.Width
		m.Viewport.Height = max(msg.Height-chromeHeight, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.Search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() != m.filter.Query {
		m.filter.SetQuery(m.Search.Value())
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		return m, m.Search.Focus()

	case "c":
		m.selectCategory(m.catIndex + 1)
	case "C":
		m.selectCategory(m.catIndex - 1)

	case "left", "h":
		if len(m.skills) > 0 {
			m.cursor = (m.cursor - 1 + len(m.skills)) % len(m.skills)
		}
		return m, nil
	case "right", "l":
		if len(m.skills) > 0 {
			m.cursor = (m.cursor + 1) % len(m.skills)
		}
		return m, nil

	case "enter", " ", "space":
		if len(m.skills) == 0 {
			return m, nil
		}
		m.filter.ToggleSkill(m.skills[m.cursor])
		m.refresh()

	case "x":
		m.filter.ClearAll()
		m.Search.SetValue("")
		m.catIndex = 0
		m.refresh()

	default:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) selectCategory(i int) {
	n := len(m.options)
	m.catIndex = (i%n + n) % n
	m.filter.SetCategory(m.options[m.catIndex].ID)
	m.refresh()
}

func (m *Model) refresh() {
	m.view = portfolio.FilteredView(m.categories, m.filter)
	m.Viewport.SetContent(renderCategories(m.view, m.Width))
	m.Viewport.GotoTop()
}

// View renders the UI
func (m Model) View() string {
	titleBar := titleStyle.Render(fmt.Sprintf(
		"Project Portfolio  %d projects · %d award winning · %d categories · %d technologies",
		m.stats.TotalProjects, m.stats.AwardWinning, m.stats.Categories, m.stats.Technologies,
	))

	category := mutedStyle.Render("Category: ") + m.options[m.catIndex].Name

	status := mutedStyle.Render(fmt.Sprintf("Showing %d of %d projects",
		portfolio.CountProjects(m.view), m.stats.TotalProjects))

	help := mutedStyle.Render("/ search · esc done · c/C category · ←/→ skill · enter toggle · x clear · q quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		m.Search.View(),
		category,
		m.renderSkills(),
		"",
		m.Viewport.View(),
		status,
		help,
	)
}

func (m Model) renderSkills() string {
	if len(m.skills) == 0 {
		return mutedStyle.Render("Skills: none")
	}

	parts := make([]string, 0, len(m.skills))
	for i, skill := range m.skills {
		style := skillStyle
		if m.filter.HasSkill(skill) {
			style = selectedSkillStyle
		}
		label := skill
		if i == m.cursor && !m.searching {
			label = "[" + skill + "]"
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.NewStyle().Width(max(m.Width, 20)).Render("Skills: " + strings.Join(parts, " "))
}
