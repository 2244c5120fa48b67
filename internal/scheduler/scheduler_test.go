package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobsOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := New(Job{
		Name:     "count",
		Interval: 50 * time.Millisecond,
		Run:      func() { runs.Add(1) },
	})

	require.NoError(t, s.Start())
	defer s.Stop()

	require.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 3*time.Second, 10*time.Millisecond)
}

func TestScheduler_NoJobs(t *testing.T) {
	s := New()
	require.NoError(t, s.Start())
	s.Stop()
}
