package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seobooster.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seobooster",
		Short: "Generate CMS migrations that replace SEO booster links",
		Long: `seobooster reads a list of page URLs and two SEO booster CSV files and
writes a migration document (seo_boosters_<locale>.json) that replaces the
title and links of both seoBoosters slots on every page.

A page never links to itself: its own URL is removed from its booster links.
Use --check-live to drop pages that do not answer HTTP 200 before generating.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewTemplatesCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
