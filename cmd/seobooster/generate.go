package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nao1215/seobooster/internal/config"
	seolog "github.com/nao1215/seobooster/internal/log"
	"github.com/nao1215/seobooster/internal/model"
	"github.com/nao1215/seobooster/internal/pipeline"
	"github.com/nao1215/seobooster/internal/report"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the SEO booster migration document",
		Long: `Generate reads the URLs file and both booster files and writes
seo_boosters_<locale>.json, one migration block per page.

URLs are reduced to site-relative paths by stripping
"http(s)://(www.)clubmed.<suffix>". When the URLs file has a locale column,
--locale must be one of its values.

Examples:
  # Generate the French document
  seobooster generate -u urls.csv -a booster0.csv -b booster1.csv -l fr-FR

  # Drop dead pages first, resolving relative URLs against the live site
  seobooster generate -u urls.csv -a b0.csv -b b1.csv -L --base-url https://www.clubmed.fr

  # Also write the hand-off email
  seobooster generate -u urls.csv -a b0.csv -b b1.csv --topic "Ski" --month march

  # Print the document instead of writing a file
  seobooster generate -u urls.csv -a b0.csv -b b1.csv --stdout > doc.json`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	// Inputs
	cmd.Flags().StringP("urls", "u", "", "URLs CSV file (columns: url, locale)")
	cmd.Flags().StringP("booster0", "a", "", "SEO booster 0 CSV file (columns: label, url, title)")
	cmd.Flags().StringP("booster1", "b", "", "SEO booster 1 CSV file (columns: label, url, title)")
	cmd.Flags().StringP("locale", "l", config.DefaultLocale, "Target locale")
	cmd.Flags().String("urls-encoding", config.DefaultURLsEncoding, "Charset of the URLs file (latin1 or utf-8)")
	cmd.Flags().String("boosters-encoding", config.DefaultBoostersEncoding, "Charset of the booster files (latin1 or utf-8)")

	// Liveness check
	cmd.Flags().BoolP("check-live", "L", false, "Drop pages that do not answer HEAD with 200")
	cmd.Flags().DurationP("probe-timeout", "t", config.DefaultProbeTimeout, "Timeout of each HEAD request")
	cmd.Flags().Int("probe-concurrency", config.DefaultProbeConcurrency, "Maximum HEAD requests in flight")
	cmd.Flags().String("base-url", "", "Base URL for relative page URLs (e.g. https://www.clubmed.fr)")
	cmd.Flags().String("proxy", "", "SOCKS5 proxy for HEAD requests (host:port)")

	// Outputs
	cmd.Flags().StringP("output", "o", "", "Document path (default: seo_boosters_<locale>.json)")
	cmd.Flags().Bool("stdout", false, "Write the document to stdout; the summary goes to stderr")
	cmd.Flags().BoolP("markdown", "m", false, "Print the summary as Markdown")

	// Email
	cmd.Flags().String("topic", "", "Topic of the email template; no email without it")
	cmd.Flags().String("month", "", "Month of the email template (default: current month)")
	cmd.Flags().String("email-output", "", "Write the email template to a file instead of the terminal")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .seobooster in current or home directory)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runGenerate(ctx, cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// the command flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	if cfg.Locale, err = flags.GetString("locale"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
		return nil, err
	}

	// An explicit --config must exist; otherwise a missing file is fine.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyLocale(file.GetLocaleConfig(cfg.Locale))
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cfg.URLsFile, err = flags.GetString("urls"); err != nil {
		return nil, err
	}
	if cfg.BoosterFiles[0], err = flags.GetString("booster0"); err != nil {
		return nil, err
	}
	if cfg.BoosterFiles[1], err = flags.GetString("booster1"); err != nil {
		return nil, err
	}
	if cfg.URLsEncoding, err = flags.GetString("urls-encoding"); err != nil {
		return nil, err
	}
	if cfg.BoostersEncoding, err = flags.GetString("boosters-encoding"); err != nil {
		return nil, err
	}
	if cfg.CheckLive, err = flags.GetBool("check-live"); err != nil {
		return nil, err
	}
	if cfg.ProbeConcurrency, err = flags.GetInt("probe-concurrency"); err != nil {
		return nil, err
	}

	// Flags below may also come from the configuration file; they only
	// override it when given on the command line.
	if flags.Changed("probe-timeout") {
		if cfg.ProbeTimeout, err = flags.GetDuration("probe-timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("base-url") {
		if cfg.ProbeBaseURL, err = flags.GetString("base-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}

	if cfg.OutputFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Stdout, err = flags.GetBool("stdout"); err != nil {
		return nil, err
	}
	if cfg.MarkdownSummary, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.Topic, err = flags.GetString("topic"); err != nil {
		return nil, err
	}
	if cfg.EmailFile, err = flags.GetString("email-output"); err != nil {
		return nil, err
	}

	// The month only appears in the email template.
	if cfg.Topic != "" {
		month, err := flags.GetString("month")
		if err != nil {
			return nil, err
		}
		if cfg.Month, err = report.NormalizeMonth(month, time.Now()); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return seolog.NewSecureLogger(w, verbose)
}

// runGenerate runs the pipeline and writes the document, the summary and
// the optional email. With cfg.Stdout the document is the only thing
// written to stdout.
func runGenerate(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout, stderr io.Writer) error {
	logger.Info("starting generation",
		"locale", cfg.Locale,
		"urls", cfg.URLsFile,
		"checkLive", cfg.CheckLive,
	)

	p, err := pipeline.DefaultPipeline(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	g := model.NewGeneration(cfg.Locale)
	if err := p.Execute(ctx, g); err != nil {
		return err
	}

	digest, err := report.Digest(g.Document)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	summary := model.NewSummary(g)
	summary.Digest = digest

	console := stdout
	if cfg.Stdout {
		console = stderr
		if err := writeDocument(stdout, g.Document); err != nil {
			return err
		}
	} else {
		summary.OutputPath = cfg.OutputPath()
		f, err := createFile(summary.OutputPath)
		if err != nil {
			return err
		}
		err = writeDocument(f, g.Document)
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
		if err != nil {
			return err
		}
	}

	if err := outputSummary(cfg, summary, console); err != nil {
		return err
	}

	if cfg.Topic == "" {
		return nil
	}
	return outputEmail(cfg, summary, console)
}

// outputSummary writes the run summary in the configured format.
func outputSummary(cfg *config.Config, s *model.Summary, w io.Writer) error {
	var writer report.Writer
	if cfg.MarkdownSummary {
		writer = report.NewMarkdownWriter(w)
	} else {
		writer = report.NewSimpleWriter(w, report.WithVerbose(cfg.Verbose))
	}
	_, err := writer.WriteSummary(s)
	return err
}

// outputEmail writes the email template to cfg.EmailFile or w.
func outputEmail(cfg *config.Config, s *model.Summary, w io.Writer) error {
	email := &report.Email{
		Locale:      cfg.Locale,
		Month:       cfg.Month,
		Topic:       cfg.Topic,
		GeneratedAt: s.GeneratedAt,
		Signature:   cfg.EmailSignature,
		Attachment:  filepath.Base(cfg.OutputPath()),
		Digest:      s.Digest,
	}

	if cfg.EmailFile == "" {
		fmt.Fprintln(w)
		_, err := report.NewEmailWriter(w).WriteEmail(email)
		if err == nil {
			fmt.Fprintln(w)
		}
		return err
	}

	f, err := createFile(cfg.EmailFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := report.NewEmailWriter(f).WriteEmail(email); err != nil {
		return fmt.Errorf("failed to write email template: %w", err)
	}
	fmt.Fprintf(w, "Email template written to %s\n", cfg.EmailFile)
	return nil
}

// createFile creates or truncates path, creating parent directories.
func createFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// writeDocument writes doc as indented JSON.
func writeDocument(w io.Writer, doc *model.Document) error {
	if _, err := report.NewJSONWriter(w, report.WithPrettyPrint()).WriteDocument(doc); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
