package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			if err := setupStderrLogging(cmd, cfg); err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Export.OutDir
			}

			s, err := buildSite(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			stats, err := s.Export(cmd.Context(), outDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exported %d pages (%d articles, %d tags) to %s\n", stats.Pages, stats.Articles, stats.Tags, outDir)
			if stats.RepoErr != nil {
				fmt.Fprintf(out, "Warning: repositories could not be loaded: %v\n", stats.RepoErr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides export.out_dir)")
	return cmd
}
