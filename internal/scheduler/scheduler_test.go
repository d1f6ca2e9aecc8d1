package scheduler

import (
	"sync"
	"testing"
	"time"
)

type fakeEvictor struct {
	mu    sync.Mutex
	ttls  []time.Duration
	evict []string
}

func (f *fakeEvictor) EvictIdle(ttl time.Duration) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls = append(f.ttls, ttl)
	out := f.evict
	f.evict = nil
	return out
}

type fakeForgetter struct {
	ids []string
}

func (f *fakeForgetter) Forget(ids ...string) int {
	f.ids = append(f.ids, ids...)
	return len(ids)
}

type fakeCleaner struct{ calls int }

func (f *fakeCleaner) Cleanup() int {
	f.calls++
	return 1
}

func TestSweepForgetsEvictedLearners(t *testing.T) {
	ev := &fakeEvictor{evict: []string{"a", "b"}}
	fg := &fakeForgetter{}
	s := New(ev, fg, nil, 30*time.Minute, 0)

	s.sweep()
	s.sweep()

	if len(ev.ttls) != 2 || ev.ttls[0] != 30*time.Minute {
		t.Errorf("EvictIdle calls = %v", ev.ttls)
	}
	if len(fg.ids) != 2 || fg.ids[0] != "a" || fg.ids[1] != "b" {
		t.Errorf("Forget ids = %v, want [a b]", fg.ids)
	}
	if s.interval != DefaultInterval {
		t.Errorf("interval = %v, want default", s.interval)
	}
}

func TestSweepWithoutForgetter(t *testing.T) {
	s := New(&fakeEvictor{evict: []string{"a"}}, nil, nil, time.Minute, time.Minute)
	s.sweep()
}

func TestStartRegistersJobs(t *testing.T) {
	cleaner := &fakeCleaner{}
	s := New(&fakeEvictor{}, nil, cleaner, time.Minute, time.Minute)
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer s.Stop()

	if got := s.Jobs(); got != 2 {
		t.Errorf("Jobs() = %d, want 2", got)
	}

	s.cleanup()
	if cleaner.calls != 1 {
		t.Errorf("Cleanup calls = %d, want 1", cleaner.calls)
	}
}
