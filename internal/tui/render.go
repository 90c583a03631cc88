package tui

import (
	"fmt"
	"strings"

	"portfolio-be/internal/portfolio"

	"github.com/charmbracelet/lipgloss"
)

const skillPreviewSize = 3

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	projectStyle = lipgloss.NewStyle().Bold(true)

	awardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	tagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))

	skillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	selectedSkillStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("45"))
)

func renderCategories(categories []portfolio.Category, width int) string {
	if len(categories) == 0 {
		return "No projects found.\nTry adjusting your search terms or filters, or press x to clear all filters."
	}

	body := lipgloss.NewStyle().Width(max(width-4, 20)).PaddingLeft(2)

	var b strings.Builder
	for i, c := range categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(categoryStyle.Render(c.Name))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d projects", len(c.Projects))))
		b.WriteString("\n")
		if c.Description != "" {
			b.WriteString(mutedStyle.Render(c.Description))
			b.WriteString("\n")
		}

		for _, p := range c.Projects {
			b.WriteString("\n")
			b.WriteString(body.Render(renderProject(p)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderProject(p portfolio.Project) string {
	lines := []string{projectStyle.Render(p.Title)}
	if p.IsAward {
		lines[0] += "  " + awardStyle.Render("★ Award Winner")
	}
	if p.Description != "" {
		lines = append(lines, p.Description)
	}

	shown, more := p.SkillPreview(skillPreviewSize)
	if len(shown) > 0 {
		skills := strings.Join(shown, " · ")
		if more > 0 {
			skills += fmt.Sprintf(" +%d more", more)
		}
		lines = append(lines, skillStyle.Render(skills))
	}

	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = "#" + t
		}
		lines = append(lines, tagStyle.Render(strings.Join(tags, " ")))
	}

	if p.GitHubURL != "" {
		lines = append(lines, mutedStyle.Render("source: "+p.GitHubURL))
	}
	if p.LiveURL != "" {
		lines = append(lines, mutedStyle.Render("demo:   "+p.LiveURL))
	}

	return strings.Join(lines, "\n")
}
