package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nayak-niti/internal/bootstrap"
	"nayak-niti/internal/config"
	"nayak-niti/internal/credibility"
	"nayak-niti/internal/domain"
	"nayak-niti/internal/usecases"
	"nayak-niti/pkg/log"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "civicctl",
		Short:        "Inspect sources, score articles and list government policies",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetDefault(log.New(log.Debug, cmd.ErrOrStderr()))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(newSourceCmd(), newAssessCmd(), newPoliciesCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "civicctl %s\n", version)
		},
	}
}

func newSourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "source <url>",
		Short: "Show the credibility profile of a news source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), credibility.Lookup(args[0]))
		},
	}
}

func newAssessCmd() *cobra.Command {
	var in domain.ArticleInput
	var noClaims bool

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score an article's credibility and bias",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := services(bootstrap.Options{DisableClaims: noClaims})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			report, err := svc.CheckArticle.Execute(ctx, in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&in.URL, "url", "", "article URL")
	cmd.Flags().StringVar(&in.Title, "title", "", "article headline")
	cmd.Flags().StringVar(&in.Description, "description", "", "article summary")
	cmd.Flags().StringVar(&in.Content, "content", "", "article body")
	cmd.Flags().BoolVar(&noClaims, "no-claims", false, "skip the claim review search")
	return cmd
}

func newPoliciesCmd() *cobra.Command {
	var topics string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "policies",
		Short: "List government policies, ranked by topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := services(bootstrap.Options{})
			if err != nil {
				return err
			}

			listing, err := svc.ListPolicies.Execute(cmd.Context(), usecases.ParseTopics(topics), refresh)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), listing)
		},
	}

	cmd.Flags().StringVar(&topics, "topics", "", "comma-separated interests, e.g. education,health")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache")
	return cmd
}

func services(opts bootstrap.Options) (*bootstrap.Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return bootstrap.New(cfg, opts)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
