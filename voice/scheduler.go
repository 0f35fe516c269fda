package voice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Fragment is one scheduled chunk of playback audio.
type Fragment struct {
	ID       string
	Data     []byte
	Start    time.Time
	Duration time.Duration
}

// PCMDuration computes the play time of 16-bit mono PCM at the given
// sample rate.
func PCMDuration(numBytes, sampleRate int) time.Duration {
	samples := numBytes / 2
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}

// Scheduler assigns start times to incoming audio fragments so playback
// is gapless and never overlaps: each fragment starts at
// max(now, end of previous fragment). It also tracks the set of
// currently playing fragments so an interruption can stop them all; a
// fragment leaves the set on its own once its playback window elapses.
type Scheduler struct {
	mu     sync.Mutex
	now    func() time.Time
	next   time.Time
	active map[string]Fragment
	timers map[string]*time.Timer
}

// NewScheduler creates a scheduler using the wall clock.
func NewScheduler() *Scheduler {
	return newScheduler(time.Now)
}

func newScheduler(now func() time.Time) *Scheduler {
	return &Scheduler{
		now:    now,
		active: make(map[string]Fragment),
		timers: make(map[string]*time.Timer),
	}
}

// Schedule assigns the next fragment's start time and adds it to the
// active set. A timer retires the fragment at the end of its window so
// long uninterrupted playback does not accumulate audio buffers.
func (s *Scheduler) Schedule(data []byte, d time.Duration) Fragment {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	if s.next.After(start) {
		start = s.next
	}
	s.next = start.Add(d)

	f := Fragment{
		ID:       uuid.NewString(),
		Data:     data,
		Start:    start,
		Duration: d,
	}
	s.active[f.ID] = f
	s.timers[f.ID] = time.AfterFunc(s.next.Sub(s.now()), func() {
		s.Complete(f.ID)
	})
	return f
}

// Complete removes a fragment that finished playing naturally.
func (s *Scheduler) Complete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	delete(s.active, id)
}

// Interrupt stops everything scheduled or playing and resets the playback
// clock to now. This is the barge-in path, not an error. It returns the
// number of fragments stopped.
func (s *Scheduler) Interrupt() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	stopped := len(s.active)
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.active = make(map[string]Fragment)
	s.next = s.now()
	return stopped
}

// ActiveCount reports how many fragments are scheduled or playing.
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}
