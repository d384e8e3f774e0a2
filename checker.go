package regular

import (
	"log/slog"
)

// Checker verifies that a type T is regular, as demonstrated by two
// example values that compare unequal.
//
// A regular type behaves like int: a copy equals its source and is
// independent of it, assignment replaces the target's value without
// touching the source, a default (value-initialized) object is always the
// same value, and == and != agree with each other.
//
// The checks run in a fixed order and stop at the first violation:
//
//  1. each example equals itself
//  2. the examples compare unequal, in both operand orders
//  3. value-initialization is deterministic
//  4. copy and move construction reproduce each example
//  5. copy and move assignment over the other example reproduce each
//     example, and copy assignment preserves its source
//  6. overwriting a copy leaves its source alone (skipped for an example
//     equal to the value-initialized T)
//  7. self-assignment keeps the value; self-move-assignment keeps the
//     object equal to itself
//  8. assigning an equal value keeps the value
type Checker[T any] struct {
	examples [2]Example[T]
	ops      Ops[T]
	typeName string
	location Location
	logger   *slog.Logger
}

// NewChecker prepares a check of T using v1 and v2 as examples.
func NewChecker[T any](v1, v2 T, opts ...Option) *Checker[T] {
	s := newSettings(opts)
	ops := opsFor[T](s)

	return &Checker[T]{
		examples: [2]Example[T]{
			NewExample(v1, s.label1, ops.Format),
			NewExample(v2, s.label2, ops.Format),
		},
		ops:      ops,
		typeName: TypeName[T](),
		location: s.location,
		logger:   s.logger,
	}
}

// Examples returns the two snapshots the checker works on.
func (c *Checker[T]) Examples() (Example[T], Example[T]) {
	return c.examples[0], c.examples[1]
}

type step struct {
	name string
	run  func(i int) Result
	once bool // not per example
}

func (c *Checker[T]) steps() []step {
	return []step{
		{name: "equal to self", run: c.checkEqualToSelf},
		{name: "unequal pair", run: c.checkUnequal},
		{name: "value-initialization", run: c.checkValueInitialization, once: true},
		{name: "copy and move construction", run: c.checkCopyAndMoveConstruct},
		{name: "assigning a different value", run: c.checkAssigningDifferentValue},
		{name: "copy independence", run: c.checkCopyIndependence},
		{name: "self-assignment", run: c.checkSelfAssignment},
		{name: "assigning its original value", run: c.checkAssigningOriginalValue},
	}
}

// Check runs every sub-check and returns the first violation, or a
// passing Result.
func (c *Checker[T]) Check() Result {
	for _, s := range c.steps() {
		n := len(c.examples)
		if s.once {
			n = 1
		}
		for i := 0; i < n; i++ {
			r := s.run(i)
			c.trace(s, i, r)
			if !r.Passed {
				return c.finish(r)
			}
		}
	}
	return c.finish(pass())
}

func (c *Checker[T]) finish(r Result) Result {
	r.TypeName = c.typeName
	r.Location = c.location
	return r
}

func (c *Checker[T]) trace(s step, i int, r Result) {
	if c.logger == nil {
		return
	}
	attrs := []any{"type", c.typeName, "check", s.name, "passed", r.Passed}
	if !s.once {
		attrs = append(attrs, "example", c.examples[i].Label())
	}
	if !r.Passed {
		attrs = append(attrs, "violation", r.Violation)
	}
	c.logger.Debug("regularity sub-check", attrs...)
}

// equalToExample fails with p unless v equals example i.
func (c *Checker[T]) equalToExample(i int, v T, p Property) Result {
	ex := c.examples[i]
	if c.ops.NotEqual(v, ex.value) {
		return fail(p, "\n    Failed for: ", ex.String())
	}
	return pass()
}

// assignNew overwrites *target by move-assigning a value-initialized T.
func (c *Checker[T]) assignNew(target *T) {
	temp := c.ops.New()
	c.ops.MoveAssign(target, &temp)
}

func (c *Checker[T]) checkEqualToSelf(i int) Result {
	ex := c.examples[i]
	v := ex.value

	if !c.ops.Equal(v, v) {
		return fail(EqualToSelf, "\n    Value: ", ex.String())
	}
	if c.ops.NotEqual(v, v) {
		return fail(NotUnequalToSelf, "\n    Value: ", ex.String())
	}
	return pass()
}

func (c *Checker[T]) checkUnequal(i int) Result {
	left, right := c.examples[i], c.examples[1-i]
	details := []string{
		"\n    Left operand: ", left.String(),
		"\n    Right operand: ", right.String(),
	}

	if c.ops.Equal(left.value, right.value) {
		return fail(ExamplesCompareEqual, details...)
	}
	if !c.ops.NotEqual(left.value, right.value) {
		return fail(ExamplesNotUnequal, details...)
	}
	return pass()
}

func (c *Checker[T]) checkValueInitialization(int) Result {
	v1 := c.ops.New()
	v2 := c.ops.New()

	if c.ops.NotEqual(v1, v2) {
		return fail(ValueInitialization,
			"\n    Value-initialized object 1: ", c.ops.Format(v1),
			"\n    Value-initialized object 2: ", c.ops.Format(v2))
	}
	return pass()
}

func (c *Checker[T]) checkCopyAndMoveConstruct(i int) Result {
	source := c.examples[i].value

	copied := c.ops.Copy(&source)
	if r := c.equalToExample(i, copied, CopyConstruction); !r.Passed {
		return r
	}

	lvalue := c.ops.Copy(&source)
	moved := c.ops.Move(&lvalue)
	return c.equalToExample(i, moved, MoveConstruction)
}

func (c *Checker[T]) checkAssigningDifferentValue(i int) Result {
	initial := c.examples[1-i].value
	example := c.examples[i].value
	source := c.ops.Copy(&example)

	target := c.ops.Copy(&initial)
	c.ops.CopyAssign(&target, &source)
	if r := c.equalToExample(i, target, CopyAssignment); !r.Passed {
		return r
	}
	if r := c.equalToExample(i, source, CopyAssignmentSourcePreserved); !r.Passed {
		return r
	}

	moveTarget := c.ops.Copy(&initial)
	temp := c.ops.Copy(&source)
	c.ops.MoveAssign(&moveTarget, &temp)
	return c.equalToExample(i, moveTarget, MoveAssignment)
}

// checkCopyIndependence detects copies that share storage with their
// source. The only observable effect it looks for is the source turning
// into the value-initialized T, so an example equal to T's
// value-initialized value is not checked at all.
func (c *Checker[T]) checkCopyIndependence(i int) Result {
	ex := c.examples[i]
	source := ex.value

	if !c.ops.NotEqual(source, c.ops.New()) {
		return pass()
	}

	copyTarget := c.ops.Copy(&source)
	c.assignNew(&copyTarget)
	if c.ops.Equal(source, c.ops.New()) {
		return fail(CopyConstructionIndependence, "\n    Failed for: ", ex.String())
	}

	assignTarget := c.ops.New()
	c.ops.CopyAssign(&assignTarget, &source)
	c.assignNew(&assignTarget)
	if c.ops.Equal(source, c.ops.New()) {
		return fail(CopyAssignmentIndependence, "\n    Failed for: ", ex.String())
	}
	return pass()
}

func (c *Checker[T]) checkSelfAssignment(i int) Result {
	example := c.examples[i].value
	value := c.ops.Copy(&example)

	c.ops.CopyAssign(&value, &value)
	if r := c.equalToExample(i, value, SelfAssignment); !r.Passed {
		return r
	}

	// After a self-move only self-equality is required.
	c.ops.MoveAssign(&value, &value)
	if !c.ops.Equal(value, value) {
		return fail(SelfMoveAssignment, "\n    Failed for: ", c.examples[i].String())
	}
	return pass()
}

func (c *Checker[T]) checkAssigningOriginalValue(i int) Result {
	example := c.examples[i].value
	value := c.ops.Copy(&example)

	c.ops.CopyAssign(&value, &example)
	if r := c.equalToExample(i, value, CopyAssignSameValue); !r.Passed {
		return r
	}

	same := c.ops.Copy(&example)
	c.ops.MoveAssign(&value, &same)
	return c.equalToExample(i, value, MoveAssignSameValue)
}
