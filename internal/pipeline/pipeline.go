package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/seobooster/internal/model"
)

// Step is one stage of a generation.
type Step interface {
	// Do executes the step. Problems that only exclude a page are recorded
	// in the generation; a returned error aborts the run.
	Do(ctx context.Context, g *model.Generation) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes steps in the order they were added.
type Pipeline struct {
	steps []Step

	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger of the pipeline and of the steps built by
// DefaultPipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence. Cancellation is checked before each
// step; steps handle their own timeouts.
func (p *Pipeline) Execute(ctx context.Context, g *model.Generation) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			g.Error = ctx.Err()
			g.ErrorMessage = ctx.Err().Error()
			return ctx.Err()
		default:
		}

		p.logger.Info("executing step", "step", step.Name(), "locale", g.Locale)

		if err := step.Do(ctx, g); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"locale", g.Locale,
				"error", err,
			)
			g.Error = err
			g.ErrorMessage = err.Error()
			return err
		}
		p.logger.Debug("step completed", "step", step.Name(), "locale", g.Locale)

		g.PerformedSteps = append(g.PerformedSteps, step.Name())
	}
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
