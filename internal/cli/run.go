// internal/cli/run.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	upm "github.com/upm-tools/upm"
	"github.com/upm-tools/upm/pkg/core"
)

// runIntent is the shared driver behind every action command: build the
// manager, run the intent with interrupt propagation, render the results.
func runIntent(action core.Action, packages []string) error {
	intent, err := core.NewIntent(action, packages)
	if err != nil {
		return err
	}

	manager, err := upm.NewManager(config)
	if err != nil {
		return err
	}

	// Ctrl-C kills every running backend process; a half-finished intent
	// is reported as cancelled, never as partial results
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := manager.Run(ctx, intent)
	if err != nil {
		if results != nil && results.Cancelled {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return errors.New("cancelled")
		}
		return err
	}

	return render(intent, results)
}

func render(intent core.Intent, results *core.ResultSet) error {
	if len(results.Results) == 0 || results.Empty() {
		fmt.Printf("No active package manager supports %q.\n", intent.Action)
		return nil
	}

	for _, r := range results.Results {
		switch r.Outcome {
		case core.OutcomeUnsupported:
			fmt.Printf("- %s: does not support %s\n", r.Backend, r.Action)
			continue
		case core.OutcomeSuccess:
			fmt.Printf("✓ %s (%s)\n", r.Backend, r.Duration.Round(timeUnit(r)))
		case core.OutcomeExitFailure:
			fmt.Printf("✗ %s: exited with status %d\n", r.Backend, r.ExitCode)
		case core.OutcomeLaunchFailure:
			fmt.Printf("✗ %s: could not run: %v\n", r.Backend, r.Err)
		}

		if out := strings.TrimRight(r.Stdout, "\n"); out != "" {
			fmt.Println(indent(out))
		}
		if errOut := strings.TrimRight(r.Stderr, "\n"); errOut != "" {
			fmt.Fprintln(os.Stderr, indent(errOut))
		}
	}

	if failed := results.Failed(); len(failed) > 0 {
		names := make([]string, len(failed))
		for i, r := range failed {
			names[i] = r.Backend
		}
		return fmt.Errorf("%d backend(s) failed: %s", len(failed), strings.Join(names, ", "))
	}

	return nil
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func timeUnit(r core.Result) time.Duration {
	if r.Duration >= time.Second {
		return 100 * time.Millisecond
	}
	return time.Millisecond
}
