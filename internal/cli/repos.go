package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"folio/internal/domain"
	"folio/internal/github"
	"folio/internal/logic"
)

const descriptionWidth = 60

func newReposCommand(opts *rootOptions) *cobra.Command {
	var (
		query string
		topic string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List the account's public repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			if err := setupStderrLogging(cmd, cfg); err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.GitHub.ListLimit
			}

			res := github.NewLoader(newGitHubClient(cfg), cfg.GitHub.Owner, limit).Load(cmd.Context())
			c := logic.NewController[domain.Repository]()
			c.Resolve(res.Collection(), res.Err)
			c.SetQuery(query)
			if topic != "" {
				c.SelectLabel(topic)
			}

			out := cmd.OutOrStdout()
			if msg := logic.RepositoryPlaceholder(c.State(), cfg.GitHub.Owner, c.Err()); msg != "" {
				fmt.Fprintln(out, msg)
				return nil
			}
			writeRepos(out, c.View())
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only repositories whose name, description or language contains this")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "only repositories with this topic")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "repositories to fetch (overrides github.list_limit)")
	return cmd
}

func writeRepos(w io.Writer, repos []domain.Repository) {
	nameWidth := 0
	for _, r := range repos {
		nameWidth = max(nameWidth, len(r.Name))
	}
	for _, r := range repos {
		desc := r.Description
		if desc == "" {
			desc = "No description"
		}
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		line := fmt.Sprintf("%-*s  %-12s ★%-5d %s", nameWidth, r.Name, lang, r.Stars, truncate.StringWithTail(desc, descriptionWidth, "…"))
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
