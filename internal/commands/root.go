package commands

import (
	"context"
	"fmt"

	"portfolio-be/internal/catalog"
	"portfolio-be/internal/config"
	"portfolio-be/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	globalConfig *config.Config
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Browse and filter the project portfolio",
	Long: `portfolio reads the project catalog (from a YAML/JSON file or Postgres,
see CATALOG_SOURCE) and lets you search it by text, category and skills.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.Init(globalConfig.AppEnv)
			return
		}
		logger.Replace(zap.NewNop())
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// openCatalog loads the configured catalog into a service.
func openCatalog(ctx context.Context) (catalog.Service, func(), error) {
	repo, closeRepo, err := catalog.OpenRepository(globalConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}

	svc := catalog.NewService(repo)
	if err := svc.Reload(ctx); err != nil {
		closeRepo()
		return nil, nil, err
	}
	return svc, closeRepo, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log catalog loading to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}
