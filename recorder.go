package regular

import (
	"fmt"
	"runtime"
	"sync"
)

// Recorder is a TestingT that keeps failures to itself instead of failing
// the enclosing test. It lets a program run assertions and then inspect
// the outcome, the way a test runner inspects *testing.T.
type Recorder struct {
	name string

	mu      sync.Mutex
	failed  bool
	stopped bool
	errors  []string
	logs    []string
}

// NewRecorder returns a Recorder reporting the given test name.
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

// Run calls body with the recorder on a separate goroutine and waits for
// it. FailNow ends body early, like t.FailNow ends a test function. A
// panic in body is recorded as a fatal failure. Returns !r.Failed().
func (r *Recorder) Run(body func(t TestingT)) bool {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if p := recover(); p != nil {
				r.mu.Lock()
				r.failed = true
				r.stopped = true
				r.errors = append(r.errors, fmt.Sprintf("panic: %v", p))
				r.mu.Unlock()
			}
		}()
		body(r)
	}()

	<-done
	return !r.Failed()
}

func (r *Recorder) Name() string { return r.name }

func (r *Recorder) Helper() {}

func (r *Recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) Logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

// FailNow marks the recorder failed and stops the calling goroutine. It
// must be called from the goroutine started by Run.
func (r *Recorder) FailNow() {
	r.mu.Lock()
	r.failed = true
	r.stopped = true
	r.mu.Unlock()
	runtime.Goexit()
}

// Failed reports whether any failure was recorded.
func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

// Stopped reports whether the body was ended by FailNow or a panic.
func (r *Recorder) Stopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}

func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

func (r *Recorder) Logs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.logs...)
}
