package commands

import (
	"fmt"
	"io"

	"portfolio-be/internal/portfolio"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show portfolio totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeCatalog, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCatalog()

		renderStats(cmd.OutOrStdout(), svc.Stats(cmd.Context()))
		return nil
	},
}

func renderStats(w io.Writer, s portfolio.Stats) {
	value := color.New(color.FgGreen, color.Bold)

	rows := []struct {
		label string
		n     int
	}{
		{"Total Projects", s.TotalProjects},
		{"Award Winning", s.AwardWinning},
		{"Categories", s.Categories},
		{"Technologies", s.Technologies},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-16s", r.label)
		value.Fprintf(w, "%d\n", r.n)
	}
}
