package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/addralias/internal/model"
)

// AdvisoryStep reports the advisories of a report. Each advisory is logged
// as a warning and, when a writer is set, printed as a "Warning:" line.
type AdvisoryStep struct {
	// w receives one line per advisory. Nil disables printing.
	w io.Writer

	logger *slog.Logger
}

// AdvisoryStepOption configures an AdvisoryStep.
type AdvisoryStepOption func(*AdvisoryStep)

// WithAdvisoryWriter sets where warning lines are printed, usually stderr.
func WithAdvisoryWriter(w io.Writer) AdvisoryStepOption {
	return func(s *AdvisoryStep) {
		s.w = w
	}
}

// WithAdvisoryLogger sets a custom logger.
func WithAdvisoryLogger(logger *slog.Logger) AdvisoryStepOption {
	return func(s *AdvisoryStep) {
		s.logger = logger
	}
}

// NewAdvisoryStep creates a new AdvisoryStep.
func NewAdvisoryStep(opts ...AdvisoryStepOption) *AdvisoryStep {
	s := &AdvisoryStep{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step name.
func (s *AdvisoryStep) Name() string {
	return "advisory"
}

// Do prints every advisory of report as a warning line and logs it at
// Debug level, so the default output carries a single line per advisory.
func (s *AdvisoryStep) Do(ctx context.Context, report *model.Report) error {
	for _, a := range report.Advisories {
		s.logger.DebugContext(ctx, a.Message,
			"kind", a.Kind.String(),
			"short_id", report.ShortID,
		)
		if s.w == nil {
			continue
		}
		if _, err := fmt.Fprintf(s.w, "Warning: %s\n", a.Message); err != nil {
			return fmt.Errorf("failed to print warning: %w", err)
		}
	}
	return nil
}

// Saver persists a report. *history.Store satisfies it.
type Saver interface {
	Save(ctx context.Context, report *model.Report, seeded bool) error
}

// HistoryStep records each report through a Saver.
type HistoryStep struct {
	saver  Saver
	seeded bool
	logger *slog.Logger
}

// HistoryStepOption configures a HistoryStep.
type HistoryStepOption func(*HistoryStep)

// WithSeeded marks saved reports as derived with a non-empty seed.
func WithSeeded(seeded bool) HistoryStepOption {
	return func(s *HistoryStep) {
		s.seeded = seeded
	}
}

// WithHistoryLogger sets a custom logger.
func WithHistoryLogger(logger *slog.Logger) HistoryStepOption {
	return func(s *HistoryStep) {
		s.logger = logger
	}
}

// NewHistoryStep creates a new HistoryStep.
func NewHistoryStep(saver Saver, opts ...HistoryStepOption) *HistoryStep {
	s := &HistoryStep{saver: saver}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step name.
func (s *HistoryStep) Name() string {
	return "history"
}

// Do saves report.
func (s *HistoryStep) Do(ctx context.Context, report *model.Report) error {
	if s.saver == nil {
		return nil
	}
	if err := s.saver.Save(ctx, report, s.seeded); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "report saved",
		"alias", report.Alias,
		"short_id", report.ShortID,
		"fingerprint", report.Fingerprint,
	)
	return nil
}
