package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"portfolio-be/internal/catalog"
	"portfolio-be/internal/portfolio"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	listQuery    string
	listCategory string
	listSkills   []string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects matching a filter",
	Long: `Print every category with the projects that match the search text, the
category and all of the given skills.

Examples:
  portfolio list --query battery
  portfolio list --category robotics --skill ROS --skill Python
  portfolio list --skill C,STM32 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeCatalog, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCatalog()

		result := svc.Query(cmd.Context(), buildFilter(listQuery, listCategory, listSkills))

		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		renderList(cmd.OutOrStdout(), result)
		return nil
	},
}

func buildFilter(query, category string, skills []string) portfolio.Filter {
	f := portfolio.NewFilter()
	f.SetQuery(query)
	f.SetCategory(category)
	// cobra has already split the flag values CSV-style
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" && !f.HasSkill(s) {
			f.ToggleSkill(s)
		}
	}
	return f
}

func renderList(w io.Writer, result *catalog.QueryResult) {
	heading := color.New(color.FgCyan, color.Bold)
	title := color.New(color.Bold)
	award := color.New(color.FgYellow, color.Bold)
	muted := color.New(color.FgHiBlack)
	tag := color.New(color.FgBlue)

	if len(result.Categories) == 0 {
		fmt.Fprintln(w, "No projects found.")
		muted.Fprintln(w, "Try adjusting your search terms or filters.")
		return
	}

	for _, c := range result.Categories {
		heading.Fprintf(w, "%s", c.Name)
		muted.Fprintf(w, " (%d)\n", len(c.Projects))

		for _, p := range c.Projects {
			title.Fprintf(w, "  %s", p.Title)
			if p.IsAward {
				award.Fprint(w, "  ★ Award Winner")
			}
			fmt.Fprintln(w)

			if p.Description != "" {
				fmt.Fprintf(w, "    %s\n", p.Description)
			}

			shown, more := p.SkillPreview(3)
			if len(shown) > 0 {
				line := strings.Join(shown, " · ")
				if more > 0 {
					line += fmt.Sprintf(" +%d more", more)
				}
				fmt.Fprintf(w, "    %s\n", line)
			}

			if len(p.Tags) > 0 {
				tags := make([]string, len(p.Tags))
				for i, t := range p.Tags {
					tags[i] = "#" + t
				}
				tag.Fprintf(w, "    %s\n", strings.Join(tags, " "))
			}
		}
		fmt.Fprintln(w)
	}

	muted.Fprintf(w, "Showing %d of %d projects\n", result.Matched, result.Total)
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "search title, description and tags")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", portfolio.AllCategories, "category id")
	listCmd.Flags().StringSliceVarP(&listSkills, "skill", "s", nil, "required skill (repeatable)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of text")
}
