package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/domain"
	"folio/internal/logic"
	"folio/internal/markdown"
)

func newArticlesCommand(opts *rootOptions) *cobra.Command {
	var (
		query string
		tag   string
	)

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List blog articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			if err := setupStderrLogging(cmd, cfg); err != nil {
				return err
			}

			articles, err := loadArticles(cmd.Context(), cfg)
			c := logic.NewController[domain.Article]()
			c.Resolve(articles, err)
			c.SetQuery(query)
			if tag != "" {
				c.SelectLabel(tag)
			}

			out := cmd.OutOrStdout()
			if msg := logic.ArticlePlaceholder(c.State(), c.Err()); msg != "" {
				fmt.Fprintln(out, msg)
				return nil
			}
			writeArticles(out, c.View())
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only articles whose title, excerpt or tags contain this")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "only articles with this tag")

	cmd.AddCommand(newArticleShowCommand(opts))
	return cmd
}

func newArticleShowCommand(opts *rootOptions) *cobra.Command {
	var (
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print one article rendered for the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			if err := setupStderrLogging(cmd, cfg); err != nil {
				return err
			}

			articles, err := loadArticles(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			a, err := logic.NewMemoryArticleStore(articles).GetArticle(args[0])
			if err != nil {
				return err
			}

			body, err := markdown.NewTerminalRenderer(style).Render(a.Body, width)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.Title)
			fmt.Fprintln(out, articleMeta(a))
			fmt.Fprint(out, body)
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "auto", "markdown style: auto, dark, light, notty, ...")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "wrap width")
	return cmd
}

func articleMeta(a domain.Article) string {
	meta := fmt.Sprintf("%s · %d min read", a.Date.Format("2006-01-02"), a.ReadTime)
	if len(a.Tags) > 0 {
		meta += " · #" + strings.Join(a.Tags, " #")
	}
	return meta
}

func writeArticles(w io.Writer, articles []domain.Article) {
	for _, a := range articles {
		fmt.Fprintf(w, "%-28s %s\n", a.Slug, a.Title)
		fmt.Fprintf(w, "%-28s %s\n", "", articleMeta(a))
	}
}
