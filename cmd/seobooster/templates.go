package main

import (
	"fmt"

	"github.com/nao1215/seobooster/internal/source"
	"github.com/spf13/cobra"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Write empty CSV templates for the three input files",
		Long: `Templates writes header-only CSV files to fill in before running generate:

  urls_template.csv           url,locale
  seo_booster_0_template.csv  label,url,title
  seo_booster_1_template.csv  label,url,title

The URLs file lists every page to update. Each booster file should contain
at least 23 links; only the title of the first row is used.

Examples:
  seobooster templates
  seobooster templates -d inputs/`,
		Args: cobra.NoArgs,
		RunE: runTemplatesCmd,
	}

	cmd.Flags().StringP("dir", "d", ".", "Directory to write the templates to")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing templates")

	return cmd
}

// runTemplatesCmd executes the templates command.
func runTemplatesCmd(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	written, err := source.WriteTemplates(dir, force)
	for _, path := range written {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	}
	return err
}
