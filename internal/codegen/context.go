package codegen

import (
	"fmt"

	"autopiper/internal/ast"
	"autopiper/internal/binding"
	"autopiper/internal/errors"
	"autopiper/internal/ir"
)

// loopFrame tracks one enclosing while loop: its header/footer blocks,
// the overlays captured at every break/continue edge, and the set of
// binding keys seeded with header phis on entry.
type loopFrame struct {
	label       string
	header      *ir.BB
	footer      *ir.BB
	headerPhis  map[string]*ir.Stmt // one phi per live key, seeded at header entry
	breakOvers  []map[string]int   // overlay captured at each break
	breakBlocks []*ir.BB
	contOvers   []map[string]int // overlay captured at each continue (back-edge)
}

// onKillYoungerEntry is a registered on-kill-younger block, re-codegen'd
// by walking the same AST block again (no clone is made) at every
// killyounger site reached while it is in scope.
type onKillYoungerEntry struct {
	body  *ast.Block
	depth int // binding depth at registration; recorded but not read (WalkBlock truncates the list to scope it)
}

// Context is CodeGenContext: the single mutable object threaded through
// one codegen run, owning the IR program under construction, the live
// SSA binding environment, the static (pre-SSA) name-to-definition table
// EntityResolver consults, the monotonic counters, and loop/kill-younger
// bookkeeping.
type Context struct {
	Prog *ir.Program

	curBB *ir.BB

	symCounter    int
	valnumCounter int

	Bindings   *binding.Env
	staticDefs map[string]ast.Expr // name -> its let-bound initializer expression

	loopFrames   []*loopFrame
	onKillYoung  []onKillYoungerEntry
	timingDepth  int
	currentStage int
	timeVars     []*ir.TimeVar

	primitiveNames map[ast.Expr]string // RegInit/ArrayInit/PortDef/BypassDef -> gensym'd IR name
	entityValnums  map[int]bool        // valnum of a RegDecl/ArrayDecl/PortDecl/BypassDecl: stands for an identity, not a joinable value

	errs *errors.Collector
}

// NewContext returns an empty Context ready to codegen one function.
func NewContext(collector *errors.Collector) *Context {
	return &Context{
		Prog:           &ir.Program{},
		Bindings:       binding.New(),
		staticDefs:     make(map[string]ast.Expr),
		primitiveNames: make(map[ast.Expr]string),
		entityValnums:  make(map[int]bool),
		errs:           collector,
	}
}

// Errors returns the collector every emitting method reports through.
func (c *Context) Errors() *errors.Collector { return c.errs }

// GenSym returns a fresh name "<prefix><n>" from the single monotonic
// symbol counter, shared by block labels and primitive names alike so
// that output is stable across repeated runs on the same input.
func (c *Context) GenSym(prefix string) string {
	c.symCounter++
	return fmt.Sprintf("%s%d", prefix, c.symCounter)
}

// NextValnum issues the next SSA value number.
func (c *Context) NextValnum() int {
	c.valnumCounter++
	return c.valnumCounter
}

// AddBB creates, registers and returns a new basic block labeled with a
// fresh gensym. It does not become the current block.
func (c *Context) AddBB() *ir.BB {
	bb := &ir.BB{Label: c.GenSym("bb")}
	c.Prog.BBs = append(c.Prog.BBs, bb)
	return bb
}

// SetCurBB makes bb the block new statements are appended to.
func (c *Context) SetCurBB(bb *ir.BB) { c.curBB = bb }

// CurBB returns the block currently being appended to.
func (c *Context) CurBB() *ir.BB { return c.curBB }

// AddEntry records label as a function/spawn entry point.
func (c *Context) AddEntry(label string) {
	c.Prog.EntryLabels = append(c.Prog.EntryLabels, label)
}

// Emit assigns s a fresh value number, appends it to the current block,
// and returns it.
func (c *Context) Emit(s *ir.Stmt) *ir.Stmt {
	s.Valnum = c.NextValnum()
	c.curBB.AddStmt(s)
	return s
}

// NewTimeVar allocates a fresh timing variable, registers it on the
// program, and pushes it as the current one (for nested stage
// statements to find).
func (c *Context) NewTimeVar() *ir.TimeVar {
	tv := &ir.TimeVar{Name: c.GenSym("t")}
	c.Prog.TimeVars = append(c.Prog.TimeVars, tv)
	c.timeVars = append(c.timeVars, tv)
	return tv
}

// PopTimeVar removes the innermost current timing variable once its
// enclosing timing block has been fully walked.
func (c *Context) PopTimeVar() { c.timeVars = c.timeVars[:len(c.timeVars)-1] }

// CurTimeVar returns the timing variable of the innermost enclosing
// timing block, or nil outside any.
func (c *Context) CurTimeVar() *ir.TimeVar {
	if len(c.timeVars) == 0 {
		return nil
	}
	return c.timeVars[len(c.timeVars)-1]
}
