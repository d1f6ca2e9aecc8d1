package audio

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// State is the lifecycle of an asynchronous media task
type State string

const (
	Pending State = "pending"
	Ready   State = "ready"
	Failed  State = "failed"
)

// Result is the observable state of a task
type Result[T any] struct {
	State State  `json:"state"`
	Value T      `json:"value"`
	Error string `json:"error,omitempty"`
}

type task[T any] struct {
	result Result[T]
	done   chan struct{}
}

// Tasks tracks one task per key. Start is for background work and is a no-op
// while the key is pending; Do is for callers that wait and is deduplicated
// by a singleflight group. A key is driven by one of the two, not both.
type Tasks[T any] struct {
	group singleflight.Group
	mu    sync.Mutex
	tasks map[string]*task[T]
}

// NewTasks creates an empty task table
func NewTasks[T any]() *Tasks[T] {
	return &Tasks[T]{tasks: make(map[string]*task[T])}
}

// Start runs fn in the background under key. It returns false when a task for
// key is still pending. A finished task is replaced.
func (t *Tasks[T]) Start(key string, fn func() (T, error)) bool {
	tk, ok := t.begin(key)
	if !ok {
		return false
	}
	go t.run(tk, fn)
	return true
}

// Do runs fn under key and waits for it. Concurrent callers for the same key
// share one execution through the singleflight group; a call after the
// previous one finished runs fn again.
func (t *Tasks[T]) Do(ctx context.Context, key string, fn func() (T, error)) (Result[T], error) {
	ch := t.group.DoChan(key, func() (any, error) {
		tk := t.track(key)
		v, err := fn()
		return t.finish(tk, v, err), nil
	})

	select {
	case r := <-ch:
		return r.Val.(Result[T]), nil
	case <-ctx.Done():
		return Result[T]{State: Pending}, ctx.Err()
	}
}

// Get returns the current state of key
func (t *Tasks[T]) Get(key string) (Result[T], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tk, ok := t.tasks[key]
	if !ok {
		return Result[T]{}, false
	}
	return tk.result, true
}

// Wait blocks until the task under key leaves Pending or ctx is done
func (t *Tasks[T]) Wait(ctx context.Context, key string) (Result[T], error) {
	t.mu.Lock()
	tk, ok := t.tasks[key]
	t.mu.Unlock()
	if !ok {
		return Result[T]{}, nil
	}

	select {
	case <-tk.done:
	case <-ctx.Done():
		return Result[T]{State: Pending}, ctx.Err()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return tk.result, nil
}

// Forget drops every task whose key satisfies match, unless it is pending
func (t *Tasks[T]) Forget(match func(key string) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for key, tk := range t.tasks {
		if tk.result.State != Pending && match(key) {
			delete(t.tasks, key)
			n++
		}
	}
	return n
}

// begin registers a pending task for key unless one is already pending
func (t *Tasks[T]) begin(key string) (*task[T], bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.tasks[key]; ok && existing.result.State == Pending {
		return existing, false
	}
	tk := newTask[T]()
	t.tasks[key] = tk
	return tk, true
}

// track registers a pending task for key, replacing any previous one
func (t *Tasks[T]) track(key string) *task[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	tk := newTask[T]()
	t.tasks[key] = tk
	return tk
}

func newTask[T any]() *task[T] {
	return &task[T]{result: Result[T]{State: Pending}, done: make(chan struct{})}
}

func (t *Tasks[T]) run(tk *task[T], fn func() (T, error)) {
	v, err := fn()
	t.finish(tk, v, err)
}

func (t *Tasks[T]) finish(tk *task[T], v T, err error) Result[T] {
	t.mu.Lock()
	if err != nil {
		tk.result = Result[T]{State: Failed, Error: err.Error()}
	} else {
		tk.result = Result[T]{State: Ready, Value: v}
	}
	res := tk.result
	t.mu.Unlock()
	close(tk.done)
	return res
}
