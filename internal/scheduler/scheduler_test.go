package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls  atomic.Int64
	stored bool
	err    error
}

func (f *fakeRunner) RunWeeklyAutoBackup(ctx context.Context) (bool, error) {
	f.calls.Add(1)
	return f.stored, f.err
}

func TestStartRunsImmediateDueCheck(t *testing.T) {
	runner := &fakeRunner{stored: true}
	s := New(runner, "", nil)

	require.NoError(t, s.Start())
	defer s.Stop()

	require.Equal(t, int64(1), runner.calls.Load())
}

func TestStartRejectsBadSpec(t *testing.T) {
	runner := &fakeRunner{}
	s := New(runner, "not a cron spec", nil)

	require.Error(t, s.Start())
	require.Equal(t, int64(0), runner.calls.Load())
}

func TestRunSwallowsRunnerError(t *testing.T) {
	// A failing due-check is logged, never propagated: the host app
	// must not crash because a snapshot could not be written.
	runner := &fakeRunner{err: errors.New("disk full")}
	s := New(runner, "", nil)

	require.NoError(t, s.Start())
	s.Stop()
	require.Equal(t, int64(1), runner.calls.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	s := New(&fakeRunner{}, "", nil)
	require.NoError(t, s.Start())
	s.Stop()
	s.Stop()
}
