package codegen

// Result is the three-valued token every walker hook returns in place of
// a thrown exception. Go has no exceptions, so an End result is checked
// and re-propagated explicitly at every point a sub-tree is walked
// outside the main statement loop: if/else arms, while bodies, spawn
// bodies, statement-block expressions.
type Result int

const (
	// Continue means the statement completed normally; walk the next
	// one in the enclosing block.
	Continue Result = iota
	// Terminal means this path's control flow has ended (kill, break,
	// continue, or an if whose arms all end) without error. killyounger
	// and spawn return Continue: the current path goes on after them. Any statements remaining in the current block are
	// unreachable and must not be walked.
	Terminal
	// End means an error was appended to the collector; unwind
	// immediately through every enclosing sub-walk.
	End
)
