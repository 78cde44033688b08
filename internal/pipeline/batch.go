package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/addralias/internal/fingerprint"
	"github.com/nao1215/addralias/internal/model"
)

// defaultConcurrency is used when WithConcurrency is not given.
const defaultConcurrency = 4

// BatchProcessor derives reports for many addresses concurrently and then
// runs a Pipeline on each report in input order.
type BatchProcessor struct {
	// pipeline is applied to every report after derivation. May be nil.
	pipeline *Pipeline

	// deriveOpts are passed to every fingerprint.Derive call.
	deriveOpts []fingerprint.Option

	// concurrency is the maximum number of concurrent derivations.
	concurrency int

	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent derivations.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithDeriveOptions sets the options used for every derivation.
func WithDeriveOptions(opts ...fingerprint.Option) BatchOption {
	return func(b *BatchProcessor) {
		b.deriveOpts = append(b.deriveOpts, opts...)
	}
}

// WithPipeline sets the steps applied to every report.
func WithPipeline(p *Pipeline) BatchOption {
	return func(b *BatchProcessor) {
		b.pipeline = p
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		concurrency: defaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// Process derives a report for every target. The returned slice has the
// same length and order as targets.
//
// Derivations run concurrently, bounded by the configured limit. Pipeline
// steps run afterwards, one report at a time in input order, so that
// warnings and history rows follow the order of the input. On error the
// reports finished so far are returned together with the error.
func (bp *BatchProcessor) Process(ctx context.Context, targets []string) ([]*model.Report, error) {
	bp.logger.Debug("starting batch derivation",
		"total", len(targets),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	// Each goroutine writes only its own index.
	reports := make([]*model.Report, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, target := range targets {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			reports[i] = fingerprint.Derive(target, bp.deriveOpts...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}

	if bp.pipeline != nil {
		for i, report := range reports {
			if err := bp.pipeline.Execute(ctx, report); err != nil {
				bp.logger.Warn("pipeline failed",
					"index", i+1,
					"total", len(targets),
					"error", err,
				)
				return reports, err
			}
		}
	}

	bp.logger.Debug("batch derivation complete",
		"total", len(targets),
		"elapsed", time.Since(startTime),
	)

	return reports, nil
}
