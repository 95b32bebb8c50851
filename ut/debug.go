package ut

// DebugInfo captures assertion context.
type DebugInfo struct {
	Expr string
	File string
	Line int
}

// LastAssertion records the most recent assertion failure.
var LastAssertion DebugInfo

// DbgAssertionFailed records a failed assertion.
func DbgAssertionFailed(expr, file string, line int) {
	LastAssertion = DebugInfo{Expr: expr, File: file, Line: line}
}

// DbgReset clears debug state.
func DbgReset() {
	LastAssertion = DebugInfo{}
}

// A checks an invariant, recording the failure before panicking.
func A(cond bool, expr string) {
	if cond {
		return
	}
	DbgAssertionFailed(expr, "", 0)
	panic("ut: assertion failed: " + expr)
}
