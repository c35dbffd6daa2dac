package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nao1215/seobooster/internal/config"
	"github.com/nao1215/seobooster/internal/migration"
	"github.com/nao1215/seobooster/internal/model"
	"github.com/nao1215/seobooster/internal/probe"
	"github.com/nao1215/seobooster/internal/source"
	"github.com/nao1215/seobooster/internal/urlnorm"
)

// Step names.
const (
	StepLoad      = "load"
	StepLocale    = "locale"
	StepNormalize = "normalize"
	StepProbe     = "probe"
	StepBuild     = "build"
)

// LoadStep reads the URLs file and both booster files.
type LoadStep struct {
	urlsFile     string
	boosterFiles [model.BoosterCount]string
	urlsEnc      source.Encoding
	boostersEnc  source.Encoding
	logger       *slog.Logger
}

// LoadStepOption configures a LoadStep.
type LoadStepOption func(*LoadStep)

// WithURLsEncoding sets the charset of the URLs file.
func WithURLsEncoding(enc source.Encoding) LoadStepOption {
	return func(s *LoadStep) {
		s.urlsEnc = enc
	}
}

// WithBoostersEncoding sets the charset of the booster files.
func WithBoostersEncoding(enc source.Encoding) LoadStepOption {
	return func(s *LoadStep) {
		s.boostersEnc = enc
	}
}

// WithLoadLogger sets the logger of the load step.
func WithLoadLogger(logger *slog.Logger) LoadStepOption {
	return func(s *LoadStep) {
		s.logger = logger
	}
}

// NewLoadStep creates a load step. The URLs file defaults to Latin-1 and
// the booster files to UTF-8.
func NewLoadStep(urlsFile string, boosterFiles [model.BoosterCount]string, opts ...LoadStepOption) *LoadStep {
	s := &LoadStep{
		urlsFile:     urlsFile,
		boosterFiles: boosterFiles,
		urlsEnc:      source.EncodingLatin1,
		boostersEnc:  source.EncodingUTF8,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return StepLoad
}

// Do reads the inputs into g.
func (s *LoadStep) Do(_ context.Context, g *model.Generation) error {
	pf, err := source.ReadPages(s.urlsFile, s.urlsEnc)
	if err != nil {
		return err
	}
	g.Pages = pf.Pages
	g.HasLocaleColumn = pf.HasLocale
	if pf.HasLocale {
		g.AvailableLocales = source.Locales(pf.Pages)
	}

	for i, path := range s.boosterFiles {
		list, err := source.ReadBoosters(path, s.boostersEnc)
		if err != nil {
			return fmt.Errorf("booster %d: %w", i, err)
		}
		g.Boosters[i] = list
	}

	s.logger.Debug("inputs loaded",
		"pages", len(g.Pages),
		"booster0", g.Boosters[0].Len(),
		"booster1", g.Boosters[1].Len(),
	)
	return nil
}

// LocaleStep checks the requested locale against the locale column of the
// URLs file. Files without a locale column are accepted as is.
type LocaleStep struct {
	logger *slog.Logger
}

// NewLocaleStep creates a locale step.
func NewLocaleStep(logger *slog.Logger) *LocaleStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LocaleStep{logger: logger}
}

// Name returns the step name.
func (s *LocaleStep) Name() string {
	return StepLocale
}

// Do returns a *LocaleMismatchError when g.Locale is not available.
func (s *LocaleStep) Do(_ context.Context, g *model.Generation) error {
	if !g.HasLocaleColumn {
		s.logger.Debug("URLs file has no locale column, skipping locale check")
		return nil
	}
	if !slices.Contains(g.AvailableLocales, g.Locale) {
		return &LocaleMismatchError{
			Locale:    g.Locale,
			Available: slices.Clone(g.AvailableLocales),
		}
	}
	s.logger.Info("locale is valid", "locale", g.Locale)
	return nil
}

// NormalizeStep strips the brand domain from page and booster URLs.
type NormalizeStep struct {
	normalizer *urlnorm.Normalizer
	logger     *slog.Logger
}

// NewNormalizeStep creates a normalize step.
func NewNormalizeStep(n *urlnorm.Normalizer, logger *slog.Logger) *NormalizeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &NormalizeStep{normalizer: n, logger: logger}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return StepNormalize
}

// Do sets Page.URL and rewrites booster URLs in place. Absolute URLs that
// survive cleaning are collected in g.ForeignURLs.
func (s *NormalizeStep) Do(_ context.Context, g *model.Generation) error {
	seen := make(map[string]bool)
	note := func(raw, cleaned string) {
		if !urlnorm.IsAbsolute(cleaned) || seen[raw] {
			return
		}
		seen[raw] = true
		g.ForeignURLs = append(g.ForeignURLs, raw)
		if s.normalizer.IsForeign(raw) {
			s.logger.Warn("URL outside the brand domain kept as is", "url", raw)
		} else {
			s.logger.Warn("brand URL not stripped, check its host", "url", raw)
		}
	}

	for i := range g.Pages {
		cleaned := s.normalizer.Clean(g.Pages[i].RawURL)
		note(g.Pages[i].RawURL, cleaned)
		g.Pages[i].URL = cleaned
	}
	for i := range g.Boosters {
		rows := g.Boosters[i].Rows
		for j := range rows {
			cleaned := s.normalizer.Clean(rows[j].URL)
			note(rows[j].URL, cleaned)
			rows[j].URL = cleaned
		}
	}
	return nil
}

// ProbeStep removes pages that do not answer HEAD with 200.
type ProbeStep struct {
	prober  *probe.Prober
	baseURL string
	logger  *slog.Logger
}

// NewProbeStep creates a probe step. baseURL resolves relative page URLs;
// without it, relative pages are excluded.
func NewProbeStep(p *probe.Prober, baseURL string, logger *slog.Logger) *ProbeStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProbeStep{prober: p, baseURL: baseURL, logger: logger}
}

// Name returns the step name.
func (s *ProbeStep) Name() string {
	return StepProbe
}

// Do probes every page and keeps the live ones in input order. Probe
// failures are recorded as exclusions, never returned.
func (s *ProbeStep) Do(ctx context.Context, g *model.Generation) error {
	targets := make([]string, 0, len(g.Pages))
	candidates := make([]model.Page, 0, len(g.Pages))

	for _, p := range g.Pages {
		target, err := probe.Target(p.RawURL, s.baseURL)
		if err != nil {
			reason := err.Error()
			if errors.Is(err, probe.ErrNoBaseURL) {
				reason = "no base URL"
			}
			g.AddExclusion(model.Exclusion{URL: p.RawURL, Reason: reason})
			continue
		}
		targets = append(targets, target)
		candidates = append(candidates, p)
	}

	results := s.prober.CheckAll(ctx, targets)

	alive := make([]model.Page, 0, len(candidates))
	for i, r := range results {
		if r.Alive {
			alive = append(alive, candidates[i])
			continue
		}
		g.AddExclusion(model.Exclusion{
			URL:        candidates[i].RawURL,
			Reason:     r.Reason(),
			StatusCode: r.StatusCode,
		})
	}

	s.logger.Info("liveness check done",
		"checked", len(targets),
		"alive", len(alive),
		"excluded", len(g.Excluded),
	)
	g.Pages = alive
	return nil
}

// BuildStep produces the migration document.
type BuildStep struct {
	builder *migration.Builder
	logger  *slog.Logger
}

// NewBuildStep creates a build step.
func NewBuildStep(b *migration.Builder, logger *slog.Logger) *BuildStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuildStep{builder: b, logger: logger}
}

// Name returns the step name.
func (s *BuildStep) Name() string {
	return StepBuild
}

// Do sets g.Titles and g.Document.
func (s *BuildStep) Do(_ context.Context, g *model.Generation) error {
	if len(g.Pages) == 0 {
		s.logger.Warn("no pages left, the document has no migrations", "locale", g.Locale)
	}
	g.Titles = s.builder.Titles(g.Boosters)
	g.Document = s.builder.Build(g.Locale, g.Pages, g.Boosters)
	return nil
}

// DefaultPipeline creates the standard generation pipeline for cfg:
// load, locale, normalize, probe (only with cfg.CheckLive) and build.
func DefaultPipeline(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	p := New(opts...)

	urlsEnc, err := source.ParseEncoding(cfg.URLsEncoding)
	if err != nil {
		return nil, fmt.Errorf("urls encoding %q: %w", cfg.URLsEncoding, err)
	}
	boostersEnc, err := source.ParseEncoding(cfg.BoostersEncoding)
	if err != nil {
		return nil, fmt.Errorf("boosters encoding %q: %w", cfg.BoostersEncoding, err)
	}
	normalizer, err := urlnorm.New(cfg.Brand)
	if err != nil {
		return nil, err
	}

	p.AddSteps(
		NewLoadStep(cfg.URLsFile, cfg.BoosterFiles,
			WithURLsEncoding(urlsEnc),
			WithBoostersEncoding(boostersEnc),
			WithLoadLogger(p.logger),
		),
		NewLocaleStep(p.logger),
		NewNormalizeStep(normalizer, p.logger),
	)

	if cfg.CheckLive {
		prober, err := probe.New(
			probe.WithTimeout(cfg.ProbeTimeout),
			probe.WithUserAgent(cfg.UserAgent),
			probe.WithHeaders(cfg.ProbeHeaders),
			probe.WithProxy(cfg.ProxyAddress),
			probe.WithConcurrency(cfg.ProbeConcurrency),
			probe.WithLogger(p.logger),
		)
		if err != nil {
			return nil, err
		}
		p.AddStep(NewProbeStep(prober, cfg.ProbeBaseURL, p.logger))
	}

	p.AddStep(NewBuildStep(migration.NewBuilder(
		migration.WithContentID(cfg.ContentID),
		migration.WithLinkType(cfg.LinkType),
		migration.WithPlaceholderTitle(cfg.PlaceholderTitle),
	), p.logger))

	return p, nil
}
