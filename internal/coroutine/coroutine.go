// Package coroutine runs frame-driven routines written as iterators.
//
// A routine yields Instructions; the Runner resumes it on a later Update
// once the instruction is satisfied. A nil instruction resumes on the next
// frame. Everything runs on the caller's goroutine.
package coroutine

import (
	"iter"
	"time"
)

// Instruction tells the Runner when to resume a routine.
type Instruction interface {
	// Done reports whether the routine may resume given the time the
	// instruction has been waiting, in seconds.
	Done(waited float32) bool
}

// Routine is a coroutine body.
type Routine = iter.Seq[Instruction]

// WaitForSeconds suspends a routine for a fixed amount of scaled time.
// Instances are immutable and may be shared between routines.
type WaitForSeconds struct {
	seconds float32
}

func NewWaitForSeconds(seconds float32) *WaitForSeconds {
	if seconds < 0 {
		seconds = 0
	}
	return &WaitForSeconds{seconds: seconds}
}

func (w *WaitForSeconds) Seconds() float32 { return w.seconds }

func (w *WaitForSeconds) Duration() time.Duration {
	return time.Duration(float64(w.seconds) * float64(time.Second))
}

func (w *WaitForSeconds) Done(waited float32) bool {
	return waited >= w.seconds
}

// WaitUntil resumes once the predicate returns true.
type WaitUntil func() bool

func (w WaitUntil) Done(float32) bool { return w() }

// Handle identifies a started routine.
type Handle uint64

type task struct {
	handle  Handle
	next    func() (Instruction, bool)
	stop    func()
	current Instruction
	waited  float32
}

// Runner owns a set of routines and advances them once per frame.
type Runner struct {
	tasks      []*task
	nextHandle Handle
	inUpdate   bool
	pending    []*task
}

func NewRunner() *Runner {
	return &Runner{}
}

// Start begins r and runs it up to its first yield.
func (rn *Runner) Start(r Routine) Handle {
	next, stop := iter.Pull(r)
	rn.nextHandle++
	t := &task{handle: rn.nextHandle, next: next, stop: stop}
	if !rn.advance(t) {
		return t.handle
	}
	if rn.inUpdate {
		rn.pending = append(rn.pending, t)
	} else {
		rn.tasks = append(rn.tasks, t)
	}
	return t.handle
}

// Stop cancels a routine. Unknown or finished handles are ignored.
// A routine must not stop itself; it should return instead.
func (rn *Runner) Stop(h Handle) {
	for _, list := range [][]*task{rn.tasks, rn.pending} {
		for _, t := range list {
			if t.handle == h && t.next != nil {
				t.stop()
				t.next = nil
			}
		}
	}
	if !rn.inUpdate {
		rn.compact()
	}
}

// StopAll cancels every routine.
func (rn *Runner) StopAll() {
	for _, t := range append(rn.tasks, rn.pending...) {
		if t.next != nil {
			t.stop()
			t.next = nil
		}
	}
	rn.tasks = nil
	rn.pending = nil
}

// Running reports how many routines are still alive.
func (rn *Runner) Running() int {
	n := 0
	for _, list := range [][]*task{rn.tasks, rn.pending} {
		for _, t := range list {
			if t.next != nil {
				n++
			}
		}
	}
	return n
}

// Update advances the wait of every routine by deltaTime seconds and
// resumes those whose instruction is satisfied.
func (rn *Runner) Update(deltaTime float32) {
	rn.inUpdate = true
	for _, t := range rn.tasks {
		if t.next == nil {
			continue
		}
		t.waited += deltaTime
		if t.current != nil && !t.current.Done(t.waited) {
			continue
		}
		rn.advance(t)
	}
	rn.inUpdate = false
	rn.tasks = append(rn.tasks, rn.pending...)
	rn.pending = nil
	rn.compact()
}

// advance resumes t until its next yield. Returns false when it finished.
func (rn *Runner) advance(t *task) bool {
	if t.next == nil {
		return false
	}
	instr, ok := t.next()
	if !ok {
		t.stop()
		t.next = nil
		return false
	}
	t.current = instr
	t.waited = 0
	return true
}

func (rn *Runner) compact() {
	live := rn.tasks[:0]
	for _, t := range rn.tasks {
		if t.next != nil {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(rn.tasks); i++ {
		rn.tasks[i] = nil
	}
	rn.tasks = live
}
