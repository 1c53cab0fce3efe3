// pkg/dispatch/dispatch_test.go
package dispatch

import (
	"context"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upm-tools/upm/pkg/core"
)

func newTestDispatcher(maxParallel int) *Dispatcher {
	return New("sudo", maxParallel, zerolog.Nop())
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixtures assume a unix shell")
	}
}

func TestExecuteCapturesOutput(t *testing.T) {
	skipOnWindows(t)

	commands := []core.Command{
		{Backend: "echo", Action: core.ActionList, Argv: []string{"echo", "hello"}},
	}

	rs, err := newTestDispatcher(1).Execute(context.Background(), commands)
	require.NoError(t, err)
	require.Len(t, rs.Results, 1)

	r := rs.Results[0]
	assert.Equal(t, core.OutcomeSuccess, r.Outcome)
	assert.Equal(t, "hello\n", r.Stdout)
	assert.Equal(t, "echo", r.Backend)
	assert.Greater(t, r.Duration, time.Duration(0))
}

func TestFailureDoesNotSuppressOtherResults(t *testing.T) {
	skipOnWindows(t)

	commands := []core.Command{
		{Backend: "bad", Action: core.ActionList, Argv: []string{"sh", "-c", "exit 3"}},
		{Backend: "good", Action: core.ActionList, Argv: []string{"echo", "ok"}},
	}

	rs, err := newTestDispatcher(2).Execute(context.Background(), commands)
	require.NoError(t, err)
	require.Len(t, rs.Results, 2)

	assert.Equal(t, core.OutcomeExitFailure, rs.Results[0].Outcome)
	assert.Equal(t, 3, rs.Results[0].ExitCode)
	assert.Equal(t, "bad", rs.Results[0].Backend)

	assert.Equal(t, core.OutcomeSuccess, rs.Results[1].Outcome)
	assert.Equal(t, "good", rs.Results[1].Backend)
}

func TestLaunchFailureIsDistinctFromExitFailure(t *testing.T) {
	commands := []core.Command{
		{Backend: "ghost", Action: core.ActionList, Argv: []string{"upm-test-definitely-missing"}},
	}

	rs, err := newTestDispatcher(1).Execute(context.Background(), commands)
	require.NoError(t, err)
	require.Len(t, rs.Results, 1)

	r := rs.Results[0]
	assert.Equal(t, core.OutcomeLaunchFailure, r.Outcome)
	assert.Error(t, r.Err)
}

// Results come back in command order even when a later command finishes
// first.
func TestResultsKeepCommandOrderUnderConcurrency(t *testing.T) {
	skipOnWindows(t)

	commands := []core.Command{
		{Backend: "slow", Action: core.ActionList, Argv: []string{"sh", "-c", "sleep 0.2; echo slow"}},
		{Backend: "fast", Action: core.ActionList, Argv: []string{"echo", "fast"}},
	}

	rs, err := newTestDispatcher(2).Execute(context.Background(), commands)
	require.NoError(t, err)
	require.Len(t, rs.Results, 2)

	assert.Equal(t, "slow", rs.Results[0].Backend)
	assert.Equal(t, "slow\n", rs.Results[0].Stdout)
	assert.Equal(t, "fast", rs.Results[1].Backend)
	assert.Equal(t, "fast\n", rs.Results[1].Stdout)
}

func TestCancellationDiscardsPartialResults(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// let the fast command finish before interrupting the slow one
		time.Sleep(300 * time.Millisecond)
		cancel()
	}()

	commands := []core.Command{
		{Backend: "fast", Action: core.ActionList, Argv: []string{"echo", "done"}},
		{Backend: "slow", Action: core.ActionList, Argv: []string{"sleep", "30"}},
	}

	start := time.Now()
	rs, err := newTestDispatcher(2).Execute(ctx, commands)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, rs.Cancelled)
	assert.Empty(t, rs.Results, "a cancelled set reports no partial results")
	assert.Less(t, time.Since(start), 10*time.Second, "running children must be terminated")
}

func TestElevationPrefix(t *testing.T) {
	d := New("sudo", 1, zerolog.Nop())

	privileged := core.Command{
		Backend:   "apt",
		Action:    core.ActionInstall,
		Argv:      []string{"apt", "install", "-y", "wget"},
		Privilege: true,
	}

	argv := d.argv(privileged)
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		assert.Equal(t, privileged.Argv, argv)
	} else {
		assert.Equal(t, []string{"sudo", "apt", "install", "-y", "wget"}, argv)
	}

	// read-only actions never get elevated
	search := privileged
	search.Action = core.ActionSearch
	assert.Equal(t, search.Argv, d.argv(search))

	// unprivileged backends never get elevated
	plain := privileged
	plain.Privilege = false
	assert.Equal(t, plain.Argv, d.argv(plain))
}

func TestExecuteEmptyCommandSet(t *testing.T) {
	rs, err := newTestDispatcher(4).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rs.Results)
	assert.False(t, rs.Cancelled)
}
