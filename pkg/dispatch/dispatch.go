// pkg/dispatch/dispatch.go

// Package dispatch runs translated commands as child processes and collects
// one result per command. Commands within a set are independent, so they may
// run concurrently; results always come back in command order.
package dispatch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/upm-tools/upm/pkg/core"
)

// Dispatcher executes command sets against the host.
type Dispatcher struct {
	sudo        string
	maxParallel int
	logger      zerolog.Logger
}

// New creates a Dispatcher. maxParallel <= 1 serializes execution; sudo is
// the elevation prefix for privileged backends (ignored on Windows and when
// already running as root).
func New(sudo string, maxParallel int, logger zerolog.Logger) *Dispatcher {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Dispatcher{
		sudo:        sudo,
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// Execute runs every command and aggregates the results. One backend's
// failure never suppresses another's result. When ctx is cancelled all
// running children are killed, partial results are discarded, and the
// returned set is marked cancelled alongside ctx's error.
func (d *Dispatcher) Execute(ctx context.Context, commands []core.Command) (*core.ResultSet, error) {
	results := make([]core.Result, len(commands))

	var g errgroup.Group
	g.SetLimit(d.maxParallel)

	for i := range commands {
		i := i
		cmd := commands[i]
		g.Go(func() error {
			results[i] = d.run(ctx, cmd)
			return nil
		})
	}

	// workers never return errors; failures live in their results
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return &core.ResultSet{Cancelled: true}, err
	}

	return &core.ResultSet{Results: results}, nil
}

func (d *Dispatcher) run(ctx context.Context, cmd core.Command) core.Result {
	result := core.Result{
		Backend: cmd.Backend,
		Action:  cmd.Action,
		Argv:    cmd.Argv,
	}

	if err := ctx.Err(); err != nil {
		result.Outcome = core.OutcomeLaunchFailure
		result.Err = err
		return result
	}

	argv := d.argv(cmd)

	d.logger.Debug().
		Str("backend", cmd.Backend).
		Strs("argv", argv).
		Msg("dispatching")

	var stdout, stderr bytes.Buffer
	child := exec.CommandContext(ctx, argv[0], argv[1:]...)
	child.Stdout = &stdout
	child.Stderr = &stderr

	start := time.Now()
	err := child.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	switch {
	case err == nil:
		result.Outcome = core.OutcomeSuccess

	case isExitError(err):
		// the backend ran and reported failure itself
		result.Outcome = core.OutcomeExitFailure
		result.ExitCode = child.ProcessState.ExitCode()

	default:
		// could not even start: executable vanished between probe and
		// dispatch, permission flipped, or similar
		result.Outcome = core.OutcomeLaunchFailure
		result.Err = err
	}

	d.logger.Debug().
		Str("backend", cmd.Backend).
		Stringer("outcome", result.Outcome).
		Dur("elapsed", result.Duration).
		Msg("finished")

	return result
}

// argv returns the final argument vector, wrapping with the elevation prefix
// when the backend needs it. Only mutating actions are elevated; wrapping a
// search in sudo would prompt for credentials on a read-only query.
func (d *Dispatcher) argv(cmd core.Command) []string {
	if !cmd.Privilege || !cmd.Action.Mutating() || d.sudo == "" {
		return cmd.Argv
	}
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		return cmd.Argv
	}
	return append([]string{d.sudo}, cmd.Argv...)
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
