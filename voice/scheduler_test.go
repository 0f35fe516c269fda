package voice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCMDuration(t *testing.T) {
	// 24000 samples of 16-bit mono at 24kHz is exactly one second.
	assert.Equal(t, time.Second, PCMDuration(48000, PlaybackSampleRate))
	assert.Equal(t, 500*time.Millisecond, PCMDuration(24000, PlaybackSampleRate))
	assert.Equal(t, time.Duration(0), PCMDuration(0, PlaybackSampleRate))
}

func TestSchedulerGaplessMonotonicStarts(t *testing.T) {
	now := time.Unix(1000, 0)
	s := newScheduler(func() time.Time { return now })

	d1, d2, d3 := 300*time.Millisecond, 150*time.Millisecond, 700*time.Millisecond
	f1 := s.Schedule([]byte{1}, d1)
	f2 := s.Schedule([]byte{2}, d2)
	f3 := s.Schedule([]byte{3}, d3)

	assert.Equal(t, now, f1.Start)
	// start(n+1) = start(n) + d(n): contiguous, no overlap.
	assert.Equal(t, f1.Start.Add(d1), f2.Start)
	assert.Equal(t, f2.Start.Add(d2), f3.Start)
	assert.Equal(t, 3, s.ActiveCount())
}

func TestSchedulerStartsAtNowAfterIdleGap(t *testing.T) {
	now := time.Unix(1000, 0)
	s := newScheduler(func() time.Time { return now })

	f1 := s.Schedule([]byte{1}, 100*time.Millisecond)
	assert.Equal(t, now, f1.Start)

	// The previous fragment finished long ago; the next one must start
	// at now, not at the stale horizon.
	now = now.Add(5 * time.Second)
	f2 := s.Schedule([]byte{2}, 100*time.Millisecond)
	assert.Equal(t, now, f2.Start)
}

func TestSchedulerInterruptResetsClockAndActiveSet(t *testing.T) {
	now := time.Unix(1000, 0)
	s := newScheduler(func() time.Time { return now })

	s.Schedule([]byte{1}, time.Second)
	s.Schedule([]byte{2}, time.Second)
	require.Equal(t, 2, s.ActiveCount())

	stopped := s.Interrupt()
	assert.Equal(t, 2, stopped)
	assert.Equal(t, 0, s.ActiveCount())

	// The next fragment after a barge-in starts immediately.
	f := s.Schedule([]byte{3}, time.Second)
	assert.Equal(t, now, f.Start)
}

func TestSchedulerNaturalCompletionEmptiesActiveSet(t *testing.T) {
	s := NewScheduler()

	// Long windows keep the auto-retire timers out of this test.
	f1 := s.Schedule([]byte{1}, time.Minute)
	f2 := s.Schedule([]byte{2}, time.Minute)

	s.Complete(f1.ID)
	assert.Equal(t, 1, s.ActiveCount())
	s.Complete(f2.ID)
	assert.Equal(t, 0, s.ActiveCount())

	// Completing an unknown or already-completed id is a no-op.
	s.Complete(f1.ID)
	assert.Equal(t, 0, s.ActiveCount())
}

func TestSchedulerRetiresFragmentsAfterPlaybackWindow(t *testing.T) {
	s := NewScheduler()

	for i := 0; i < 5; i++ {
		s.Schedule([]byte{byte(i)}, 10*time.Millisecond)
	}
	require.Equal(t, 5, s.ActiveCount())

	// Nothing interrupts; the fragments must drain on their own once
	// their playback windows elapse.
	assert.Eventually(t, func() bool {
		return s.ActiveCount() == 0
	}, time.Second, 5*time.Millisecond)
}
