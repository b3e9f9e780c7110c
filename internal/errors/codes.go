package errors

// Error codes for the code generator.
//
// E1xxx is reserved for this pass; the front end, type checker and
// backend have their own ranges in the wider toolchain and never
// collide with these.
const (
	// E1001: a let-bound name used where a primitive reference is
	// required does not statically resolve to a RegInit/ArrayInit/
	// PortDef/BypassDef.
	ErrorNonStaticReference = "E1001"

	// E1002: an assignment's target expression is not a Var, RegRef or
	// ArrayRef (a FieldRef target is reported here too).
	ErrorIllegalLvalue = "E1002"

	// E1003: a write statement's target does not resolve to a port or
	// channel primitive.
	ErrorWriteTargetMismatch = "E1003"

	// E1004: a channel primitive was given a name, which the model
	// forbids (channels are anonymous; only ports and bypass entries
	// are named).
	ErrorNamedChan = "E1004"

	// E1005: a killif condition contains a write, kill, or other
	// side-effecting construct.
	ErrorSideEffectInKillIf = "E1005"

	// E1006: a stage statement appears outside any enclosing timing
	// block.
	ErrorStageOutsideTiming = "E1006"

	// E1007: a break or continue names a label with no enclosing loop
	// frame, or appears with no enclosing loop at all.
	ErrorBreakContinueWithoutFrame = "E1007"

	// E1008: the last statement of a statement-block expression is not
	// an expression statement, so the block has no value.
	ErrorNonExpressionLastStmt = "E1008"

	// E1009: a binding live across a control-flow join has no IR value
	// on one of the incoming paths and cannot be phi'd.
	ErrorJoinMissingValue = "E1009"
)

// GetErrorDescription returns a human-readable description of the error
// code, used by tooling that wants a stable summary independent of the
// specific message text.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorNonStaticReference:
		return "reference does not statically resolve to a primitive constructor"
	case ErrorIllegalLvalue:
		return "assignment target is not a valid lvalue"
	case ErrorWriteTargetMismatch:
		return "write target is not a port or channel"
	case ErrorNamedChan:
		return "channel primitives may not be named"
	case ErrorSideEffectInKillIf:
		return "killif condition must be free of side effects"
	case ErrorStageOutsideTiming:
		return "stage statement outside a timing block"
	case ErrorBreakContinueWithoutFrame:
		return "break or continue with no matching loop frame"
	case ErrorNonExpressionLastStmt:
		return "statement-block expression's last statement is not an expression"
	case ErrorJoinMissingValue:
		return "binding missing an IR value on one incoming control-flow path"
	default:
		return "unknown error code"
	}
}
