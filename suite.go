package regular

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// ErrNoCases is returned when a suite has nothing to run.
var ErrNoCases = errors.New("no test cases selected")

// Case is a named test body, run against a Recorder.
type Case struct {
	Name string
	Run  func(t TestingT)
}

// SuiteConfig controls how a Suite selects cases and decides which of
// them are meant to fail.
type SuiteConfig struct {
	// Cases whose name starts with this word are expected to fail.
	FailurePrefix string

	// Only cases whose name matches are run. nil runs everything.
	Filter *regexp.Regexp

	// Receives one record per case. nil disables logging.
	Logger *slog.Logger
}

// DefaultSuiteConfig expects every case named "Irregular..." to fail.
func DefaultSuiteConfig() SuiteConfig {
	return SuiteConfig{
		FailurePrefix: "Irregular",
	}
}

// Outcome is what happened to one case.
type Outcome struct {
	Name          string   `yaml:"name" json:"name"`
	ExpectFailure bool     `yaml:"expect_failure" json:"expect_failure"`
	Failed        bool     `yaml:"failed" json:"failed"`
	Fatal         bool     `yaml:"fatal,omitempty" json:"fatal,omitempty"`
	Errors        []string `yaml:"errors,omitempty" json:"errors,omitempty"`
}

// Matched reports whether the case failed exactly when it was expected to.
func (o Outcome) Matched() bool {
	return o.Failed == o.ExpectFailure
}

// Suite runs a list of cases in isolation and checks every outcome
// against the polarity implied by its name.
type Suite struct {
	cfg   SuiteConfig
	cases []Case
}

// NewSuite creates a suite with the given cases.
func NewSuite(cfg SuiteConfig, cases ...Case) *Suite {
	return &Suite{cfg: cfg, cases: cases}
}

// Add appends cases to the suite.
func (s *Suite) Add(cases ...Case) {
	s.cases = append(s.cases, cases...)
}

// ExpectFailure reports whether a case with this name is meant to fail.
func (s *Suite) ExpectFailure(name string) bool {
	return s.cfg.FailurePrefix != "" && strings.HasPrefix(name, s.cfg.FailurePrefix)
}

// Run executes the selected cases in order, each with its own Recorder.
func (s *Suite) Run() ([]Outcome, error) {
	var outcomes []Outcome

	for _, c := range s.cases {
		if c.Run == nil {
			return nil, fmt.Errorf("case %q has no body", c.Name)
		}
		if s.cfg.Filter != nil && !s.cfg.Filter.MatchString(c.Name) {
			continue
		}

		rec := NewRecorder(c.Name)
		rec.Run(c.Run)

		o := Outcome{
			Name:          c.Name,
			ExpectFailure: s.ExpectFailure(c.Name),
			Failed:        rec.Failed(),
			Fatal:         rec.Stopped(),
			Errors:        rec.Errors(),
		}
		outcomes = append(outcomes, o)

		if s.cfg.Logger != nil {
			s.cfg.Logger.Debug("case finished",
				"name", o.Name,
				"failed", o.Failed,
				"expect_failure", o.ExpectFailure)
		}
	}

	if len(outcomes) == 0 {
		return nil, ErrNoCases
	}
	return outcomes, nil
}

// MismatchError lists the cases whose outcome contradicts their name.
type MismatchError struct {
	Unexpected []Outcome
}

func (e *MismatchError) Error() string {
	var b strings.Builder
	for i, o := range e.Unexpected {
		if i > 0 {
			b.WriteString("\n")
		}
		if o.ExpectFailure {
			b.WriteString("A test unexpectedly passed successfully: ")
		} else {
			b.WriteString("A test unexpectedly failed: ")
		}
		b.WriteString(o.Name)
	}
	return b.String()
}

// Verify returns a *MismatchError if any outcome did not match.
func Verify(outcomes []Outcome) error {
	var bad []Outcome
	for _, o := range outcomes {
		if !o.Matched() {
			bad = append(bad, o)
		}
	}
	if len(bad) > 0 {
		return &MismatchError{Unexpected: bad}
	}
	return nil
}
