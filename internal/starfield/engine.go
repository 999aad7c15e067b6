package starfield

import (
	"context"
	"sync"
	"time"
)

// Scheduler delivers frame signals. The production implementation ticks at
// the display rate; tests drive frames by hand.
type Scheduler interface {
	// Frames returns a channel that yields once per frame and is closed
	// when ctx is cancelled.
	Frames(ctx context.Context) <-chan time.Time
}

// TickScheduler emits frames from a wall-clock ticker.
type TickScheduler struct {
	Interval time.Duration
}

// NewTickScheduler builds a scheduler ticking fps times per second.
func NewTickScheduler(fps int) TickScheduler {
	if fps <= 0 {
		fps = 60
	}
	return TickScheduler{Interval: time.Second / time.Duration(fps)}
}

func (t TickScheduler) Frames(ctx context.Context) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		ticker := time.NewTicker(t.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case out <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// Engine drives a Scene frame by frame and publishes a snapshot after each
// step. The scene is owned exclusively by the engine's loop; readers only
// ever see immutable Frame copies.
type Engine struct {
	scene *Scene
	sched Scheduler

	mu    sync.RWMutex
	frame *Frame
}

// NewEngine wires a scene to a scheduler. Either may be nil, in which case
// Run performs no work and schedules no frames.
func NewEngine(scene *Scene, sched Scheduler) *Engine {
	return &Engine{scene: scene, sched: sched}
}

// Run steps the scene once per scheduler frame until ctx is cancelled. Each
// frame fully completes (advance, render, publish) before the next is waited
// on. If the scene or scheduler is missing the engine returns immediately;
// the background is decorative and its absence is not an error.
func (e *Engine) Run(ctx context.Context) {
	if e == nil || e.scene == nil || e.sched == nil {
		return
	}
	for range e.sched.Frames(ctx) {
		e.step()
	}
}

func (e *Engine) step() {
	e.scene.Step()
	f := e.scene.Frame()
	e.mu.Lock()
	e.frame = &f
	e.mu.Unlock()
}

// Snapshot returns the most recently published frame. ok is false until the
// first frame has been rendered.
func (e *Engine) Snapshot() (Frame, bool) {
	if e == nil {
		return Frame{}, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.frame == nil {
		return Frame{}, false
	}
	return *e.frame, true
}
