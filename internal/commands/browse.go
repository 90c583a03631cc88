package commands

import (
	"portfolio-be/internal/portfolio"
	"portfolio-be/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio interactively",
	Long: `Open a full screen browser over the catalog.

Keys: / search, esc leave search, c/C next/previous category,
left/right pick a skill, enter toggle it, x clear filters, q quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeCatalog, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCatalog()

		categories := svc.Query(cmd.Context(), portfolio.NewFilter()).Categories

		p := tea.NewProgram(tui.NewModel(categories), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err = p.Run()
		return err
	},
}
