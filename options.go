package regular

import (
	"fmt"
	"log/slog"
)

// Default labels used when the caller does not name its examples.
const (
	DefaultLabel1 = "example1"
	DefaultLabel2 = "example2"
)

// Option configures a single check.
type Option func(*settings)

type settings struct {
	label1, label2 string
	ops            any // Ops[T] for the T being checked
	location       Location
	logger         *slog.Logger
}

func newSettings(opts []Option) settings {
	s := settings{
		label1: DefaultLabel1,
		label2: DefaultLabel2,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithLabels names the two examples in failure messages, typically with
// the expressions the test wrote for them.
func WithLabels(label1, label2 string) Option {
	return func(s *settings) {
		s.label1 = label1
		s.label2 = label2
	}
}

// WithOps supplies the operations of T. Fields left nil keep their default.
func WithOps[T any](ops Ops[T]) Option {
	return func(s *settings) {
		s.ops = ops
	}
}

// WithLocation overrides the call site reported with a failure.
func WithLocation(file string, line int) Option {
	return func(s *settings) {
		s.location = Location{File: file, Line: line}
	}
}

// WithLogger traces every sub-check at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// opsFor resolves the configured operations for T.
func opsFor[T any](s settings) Ops[T] {
	if s.ops == nil {
		return Ops[T]{}.withDefaults()
	}
	ops, ok := s.ops.(Ops[T])
	if !ok {
		panic(fmt.Sprintf("regular: WithOps given %T, checking %s", s.ops, TypeName[T]()))
	}
	return ops.withDefaults()
}
