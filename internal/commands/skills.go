package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List every skill used across the portfolio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeCatalog, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCatalog()

		renderSkills(cmd.OutOrStdout(), svc.Skills(cmd.Context()))
		return nil
	},
}

func renderSkills(w io.Writer, skills []string) {
	for _, s := range skills {
		fmt.Fprintln(w, s)
	}
}
