package errors

import (
	"fmt"

	"autopiper/internal/ast"
)

// Collector accumulates CompilerErrors over the course of one codegen
// run. The walker never formats or prints through it; it only appends.
// Rendering is left to a Reporter, invoked by tests or a future driver.
type Collector struct {
	errs []CompilerError
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

// Add appends err to the collector.
func (c *Collector) Add(err CompilerError) { c.errs = append(c.errs, err) }

// Errors returns every error and warning collected so far, in the order
// they were added.
func (c *Collector) Errors() []CompilerError { return c.errs }

// HasErrors reports whether any collected diagnostic is at Error level
// (as opposed to Warning/Note/Help).
func (c *Collector) HasErrors() bool {
	for _, e := range c.errs {
		if e.Level == Error {
			return true
		}
	}
	return false
}

func newError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{err: CompilerError{
		Level:    Error,
		Code:     code,
		Message:  message,
		Position: pos,
	}}
}

// SemanticErrorBuilder builds a CompilerError up with optional
// suggestions and notes before handing it to a Collector.
type SemanticErrorBuilder struct {
	err CompilerError
}

func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *SemanticErrorBuilder) Build() CompilerError { return b.err }

// NonStaticReference reports E1001: name does not statically resolve to
// a primitive constructor.
func NonStaticReference(name string, pos ast.Position) CompilerError {
	return newError(ErrorNonStaticReference,
		fmt.Sprintf("'%s' does not statically resolve to a register, array, port or bypass definition", name), pos).
		WithNote("entity resolution only traces back through let bindings, not through arbitrary expressions").
		Build()
}

// IllegalLvalue reports E1002: an assignment target that is not a
// Var/RegRef/ArrayRef.
func IllegalLvalue(pos ast.Position) CompilerError {
	return newError(ErrorIllegalLvalue, "invalid assignment target", pos).
		WithSuggestion("assign to a plain variable, register reference or array element").
		Build()
}

// WriteTargetMismatch reports E1003: a write statement whose target does
// not resolve to a port or channel.
func WriteTargetMismatch(pos ast.Position) CompilerError {
	return newError(ErrorWriteTargetMismatch, "write target is not a port or channel", pos).Build()
}

// NamedChan reports E1004: a channel primitive carrying a name.
func NamedChan(name string, pos ast.Position) CompilerError {
	return newError(ErrorNamedChan, fmt.Sprintf("channel '%s' may not be named", name), pos).
		WithNote("only ports and bypass entries are named; channels are always anonymous").
		Build()
}

// SideEffectInKillIf reports E1005: a side-effecting construct inside a
// killif condition.
func SideEffectInKillIf(pos ast.Position) CompilerError {
	return newError(ErrorSideEffectInKillIf, "killif condition must not have side effects", pos).
		WithNote("writes, kills and register updates are not permitted in a killif condition").
		Build()
}

// StageOutsideTiming reports E1006: a stage statement with no enclosing
// timing block.
func StageOutsideTiming(pos ast.Position) CompilerError {
	return newError(ErrorStageOutsideTiming, "stage statement outside any timing block", pos).
		WithSuggestion("wrap the surrounding statements in a timing { } block").
		Build()
}

// BreakContinueWithoutFrame reports E1007: a break/continue with no
// matching loop frame.
func BreakContinueWithoutFrame(label string, pos ast.Position) CompilerError {
	msg := "break or continue outside any loop"
	if label != "" {
		msg = fmt.Sprintf("no enclosing loop labeled '%s'", label)
	}
	return newError(ErrorBreakContinueWithoutFrame, msg, pos).Build()
}

// NonExpressionLastStmt reports E1008: a statement-block expression
// whose last statement is not an expression statement.
func NonExpressionLastStmt(pos ast.Position) CompilerError {
	return newError(ErrorNonExpressionLastStmt,
		"statement-block expression's last statement must be an expression", pos).Build()
}

// JoinMissingValue reports E1009: a binding live across a control-flow
// join that lacks an IR value on one incoming path.
func JoinMissingValue(name string, pos ast.Position) CompilerError {
	return newError(ErrorJoinMissingValue,
		fmt.Sprintf("'%s' has no IR value on every path into this join", name), pos).Build()
}
