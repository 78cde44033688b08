package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nao1215/addralias/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, report *model.Report) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, report *model.Report) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, report)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if p.logger == nil {
			t.Error("expected default logger")
		}
	})

	t.Run("applies WithContinueOnError option", func(t *testing.T) {
		t.Parallel()

		p := New(WithContinueOnError(true))
		if !p.continueOnError {
			t.Error("expected continueOnError to be true")
		}
	})
}

func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddStep(&mockStep{name: "first"})
	p.AddSteps(&mockStep{name: "second"}, &mockStep{name: "third"})

	if p.StepCount() != 3 {
		t.Fatalf("expected 3 steps, got %d", p.StepCount())
	}
	expected := []string{"first", "second", "third"}
	for i, name := range p.StepNames() {
		if name != expected[i] {
			t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
		}
	}
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	errStep := errors.New("step failed")

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) func(context.Context, *model.Report) error {
			return func(context.Context, *model.Report) error {
				order = append(order, name)
				return nil
			}
		}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(
			&mockStep{name: "a", doFunc: record("a")},
			&mockStep{name: "b", doFunc: record("b")},
		)

		if err := p.Execute(t.Context(), &model.Report{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(order) != 2 || order[0] != "a" || order[1] != "b" {
			t.Errorf("execution order = %v", order)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		failing := &mockStep{name: "fail", doFunc: func(context.Context, *model.Report) error { return errStep }}
		after := &mockStep{name: "after"}

		p := New(WithLogger(discardLogger()))
		p.AddSteps(failing, after)

		if err := p.Execute(t.Context(), &model.Report{}); !errors.Is(err, errStep) {
			t.Errorf("expected errStep, got %v", err)
		}
		if after.callCount != 0 {
			t.Error("step after failure should not run")
		}
	})

	t.Run("continues on error when configured", func(t *testing.T) {
		t.Parallel()

		failing := &mockStep{name: "fail", doFunc: func(context.Context, *model.Report) error { return errStep }}
		after := &mockStep{name: "after"}

		p := New(WithLogger(discardLogger()), WithContinueOnError(true))
		p.AddSteps(failing, after)

		if err := p.Execute(t.Context(), &model.Report{}); !errors.Is(err, errStep) {
			t.Errorf("expected first error to be returned, got %v", err)
		}
		if after.callCount != 1 {
			t.Error("step after failure should run")
		}
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		step := &mockStep{name: "never"}
		p := New(WithLogger(discardLogger()))
		p.AddStep(step)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		if err := p.Execute(ctx, &model.Report{}); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.callCount != 0 {
			t.Error("step should not run after cancellation")
		}
	})
}
