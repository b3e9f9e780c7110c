package codegen_test

import (
	"testing"

	"autopiper/internal/ast"
	"autopiper/internal/codegen"
	"autopiper/internal/errors"
	"autopiper/internal/fixture"
	"autopiper/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, fn *ast.Function) (*ir.Program, *errors.Collector) {
	t.Helper()
	collector := errors.NewCollector()
	prog, _ := codegen.Generate(fixture.Program(fn), collector)
	return prog, collector
}

// collectKind returns every statement of the given kind across the whole
// program, in block order.
func collectKind(prog *ir.Program, kind ir.Kind) []*ir.Stmt {
	var out []*ir.Stmt
	for _, bb := range prog.BBs {
		for _, s := range bb.Stmts {
			if s.Kind == kind {
				out = append(out, s)
			}
		}
	}
	return out
}

// --- Concrete scenario: conditional assign ---

func TestConditionalAssignProducesMergePhiAndWrite(t *testing.T) {
	body := fixture.Block(
		fixture.Let("p", fixture.PortDef("p")),
		fixture.Let("c", fixture.Const(1)),
		fixture.Let("x", fixture.Const(1)),
		fixture.If(fixture.Var("c"),
			fixture.Block(fixture.Assign(fixture.Var("x"), fixture.Const(2))),
			fixture.Block(fixture.Assign(fixture.Var("x"), fixture.Const(3)))),
		fixture.Write(fixture.Var("p"), fixture.Var("x")),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	phis := collectKind(prog, ir.KindPhi)
	require.Len(t, phis, 1)
	assert.Len(t, phis[0].Args, 2)

	writes := collectKind(prog, ir.KindPortWrite)
	require.Len(t, writes, 1)
	assert.Equal(t, []int{phis[0].Valnum}, writes[0].Args)

	dones := collectKind(prog, ir.KindDone)
	assert.Len(t, dones, 1)
}

func TestIfWithNoElseStillMergesTwoPredecessors(t *testing.T) {
	body := fixture.Block(
		fixture.Let("p", fixture.PortDef("p")),
		fixture.Let("c", fixture.Const(1)),
		fixture.Let("x", fixture.Const(1)),
		fixture.If(fixture.Var("c"), fixture.Block(fixture.Assign(fixture.Var("x"), fixture.Const(2))), nil),
		fixture.Write(fixture.Var("p"), fixture.Var("x")),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	phis := collectKind(prog, ir.KindPhi)
	require.Len(t, phis, 1)
	assert.Len(t, phis[0].PhiBlocks, 2)
}

// --- Concrete scenario: loop with continue ---

func TestWhileLoopWithContinueSeedsThreeIncomingHeaderPhi(t *testing.T) {
	body := fixture.Block(
		fixture.Let("i", fixture.Const(0)),
		fixture.Let("n", fixture.Const(10)),
		fixture.Let("skip", fixture.Const(0)),
		fixture.While("", fixture.Bin(ast.OpLt, fixture.Var("i"), fixture.Var("n")),
			fixture.Block(
				fixture.If(fixture.Var("skip"), fixture.Block(fixture.Continue("")), nil),
				fixture.Assign(fixture.Var("i"), fixture.Bin(ast.OpAdd, fixture.Var("i"), fixture.Const(1))),
			)),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	phis := collectKind(prog, ir.KindPhi)
	require.NotEmpty(t, phis)

	var headerPhiForI *ir.Stmt
	for _, p := range phis {
		if len(p.Args) == 3 {
			headerPhiForI = p
		}
	}
	require.NotNil(t, headerPhiForI, "expected a header phi with entry/continue/end-of-body edges")
}

// --- Concrete scenario: labeled break ---

func TestLabeledBreakTargetsOuterLoopFooter(t *testing.T) {
	body := fixture.Block(
		fixture.Let("co", fixture.Const(1)),
		fixture.Let("ci", fixture.Const(1)),
		fixture.While("outer", fixture.Var("co"),
			fixture.Block(
				fixture.While("inner", fixture.Var("ci"),
					fixture.Block(fixture.Break("outer"))),
			)),
	)
	_, collector := run(t, fixture.Fn("main", body))
	assert.False(t, collector.HasErrors())
}

func TestBreakWithoutEnclosingLoopReportsE1007(t *testing.T) {
	body := fixture.Block(fixture.Break(""))
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorBreakContinueWithoutFrame, collector.Errors()[0].Code)
}

// --- Concrete scenario: spawn with kill-younger cleanup ---

func TestSpawnWithKillYoungerReplaysOnKillYoungerBlock(t *testing.T) {
	body := fixture.Block(
		fixture.OnKillYounger(fixture.Block(fixture.ExprStmt(fixture.Const(0)))),
		fixture.Spawn(fixture.Block(fixture.ExprStmt(fixture.Const(1)))),
		fixture.KillYounger(),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	spawns := collectKind(prog, ir.KindSpawn)
	require.Len(t, spawns, 1)

	spawnTarget := prog.BBByLabel(spawns[0].Targets[0])
	require.NotNil(t, spawnTarget)
	assert.Equal(t, ir.KindKill, spawnTarget.Terminator().Kind)

	killYoungers := collectKind(prog, ir.KindKillYounger)
	require.Len(t, killYoungers, 1)
}

func TestKillYoungerWithNoRegisteredBlockEmitsOnlyItself(t *testing.T) {
	body := fixture.Block(fixture.KillYounger())
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	killYoungers := collectKind(prog, ir.KindKillYounger)
	assert.Len(t, killYoungers, 1)

	consts := collectKind(prog, ir.KindConst)
	assert.Empty(t, consts)
}

// --- Concrete scenario: timing stages ---

func TestTimingStagesEmitFiveBarriersAtExpectedOffsets(t *testing.T) {
	body := fixture.Block(
		fixture.Timing(fixture.Block(
			fixture.Stage(0),
			fixture.ExprStmt(fixture.Const(1)),
			fixture.Stage(5),
			fixture.ExprStmt(fixture.Const(2)),
		)),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	barriers := collectKind(prog, ir.KindTimingBarrier)
	require.Len(t, barriers, 5)

	var offsets []int
	for _, b := range barriers {
		offsets = append(offsets, b.Stage)
	}
	assert.Equal(t, []int{0, 0, 0, 5, 5}, offsets)
}

func TestZeroStageTimingBlockEmitsTwoBarriersAtOffsetZero(t *testing.T) {
	body := fixture.Block(fixture.Timing(fixture.Block(fixture.ExprStmt(fixture.Const(1)))))
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	barriers := collectKind(prog, ir.KindTimingBarrier)
	require.Len(t, barriers, 2)
	assert.Equal(t, 0, barriers[0].Stage)
	assert.Equal(t, 0, barriers[1].Stage)
}

func TestStageOutsideTimingReportsE1006(t *testing.T) {
	body := fixture.Block(fixture.Stage(1))
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorStageOutsideTiming, collector.Errors()[0].Code)
}

// --- Concrete scenario: bypass lifecycle ---

func TestBypassLifecycleEmitsFullSequence(t *testing.T) {
	body := fixture.Block(
		fixture.Let("v", fixture.Const(7)),
		fixture.Let("byp", fixture.BypassDef("byp")),
		fixture.BypassStart("byp"),
		fixture.BypassWrite("byp", fixture.Var("v")),
		fixture.If(fixture.BypassReady(fixture.Var("byp")),
			fixture.Block(fixture.Let("x", fixture.BypassRead(fixture.Var("byp")))), nil),
		fixture.BypassEnd("byp"),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	assert.Len(t, collectKind(prog, ir.KindBypassStart), 1)
	assert.Len(t, collectKind(prog, ir.KindBypassWrite), 1)
	assert.Len(t, collectKind(prog, ir.KindBypassReady), 1)
	assert.Len(t, collectKind(prog, ir.KindBypassRead), 1)
	assert.Len(t, collectKind(prog, ir.KindBypassEnd), 1)

	ifs := collectKind(prog, ir.KindIf)
	require.Len(t, ifs, 1)
}

// --- Structural invariants ---

func TestValueNumbersAreUniqueAndIncreasingWithinBlock(t *testing.T) {
	body := fixture.Block(
		fixture.Let("a", fixture.Const(1)),
		fixture.Let("b", fixture.Bin(ast.OpAdd, fixture.Var("a"), fixture.Const(2))),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	seen := map[int]bool{}
	for _, bb := range prog.BBs {
		last := -1
		for _, s := range bb.Stmts {
			assert.False(t, seen[s.Valnum], "duplicate valnum %d", s.Valnum)
			seen[s.Valnum] = true
			assert.Greater(t, s.Valnum, last)
			last = s.Valnum
		}
	}
}

func TestEveryReachableBlockEndsInATerminator(t *testing.T) {
	body := fixture.Block(
		fixture.Let("c", fixture.Const(1)),
		fixture.If(fixture.Var("c"), fixture.Block(), fixture.Block()),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	for _, bb := range prog.BBs {
		assert.NotNil(t, bb.Terminator(), "block %s has no terminator", bb.Label)
	}
}

func TestUnreachableBlocksArePrunedAndPhiInputsFiltered(t *testing.T) {
	body := fixture.Block(
		fixture.Let("c", fixture.Const(1)),
		fixture.Let("x", fixture.Const(1)),
		fixture.If(fixture.Var("c"),
			fixture.Block(fixture.Kill()),
			fixture.Block(fixture.Kill())),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	// both arms kill, so the if's merge block has no predecessor and must
	// not survive pruning; every phi that does survive must only name
	// predecessors that are themselves still in the program.
	for _, bb := range prog.BBs {
		for _, s := range bb.Stmts {
			if s.Kind != ir.KindPhi {
				continue
			}
			for _, pred := range s.PhiBlocks {
				if pred == "preheader" || pred == "continue" {
					continue
				}
				assert.NotNil(t, prog.BBByLabel(pred), "phi refers to pruned predecessor %s", pred)
			}
		}
	}

	reachableEntries := 0
	for _, bb := range prog.BBs {
		if bb.Entry {
			reachableEntries++
		}
	}
	assert.Equal(t, 1, reachableEntries)
}

func TestPruningIsIdempotent(t *testing.T) {
	body := fixture.Block(
		fixture.Let("c", fixture.Const(1)),
		fixture.Let("x", fixture.Const(1)),
		fixture.If(fixture.Var("c"),
			fixture.Block(fixture.Assign(fixture.Var("x"), fixture.Const(2))),
			fixture.Block(fixture.Assign(fixture.Var("x"), fixture.Const(3)))),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	before := len(prog.BBs)
	codegen.Prune(prog)
	assert.Equal(t, before, len(prog.BBs))
}

func TestSpawnBodyFallthroughGetsImplicitKill(t *testing.T) {
	body := fixture.Block(fixture.Spawn(fixture.Block(fixture.ExprStmt(fixture.Const(1)))))
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	spawns := collectKind(prog, ir.KindSpawn)
	require.Len(t, spawns, 1)
	target := prog.BBByLabel(spawns[0].Targets[0])
	require.NotNil(t, target)
	assert.Equal(t, ir.KindKill, target.Terminator().Kind)
}

func TestEntryFunctionFallthroughGetsImplicitDone(t *testing.T) {
	body := fixture.Block(fixture.Let("x", fixture.Const(1)))
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())
	assert.Len(t, collectKind(prog, ir.KindDone), 1)
}

// --- Nested loop phi capture (open question 3) ---

func TestNestedLoopPhiCapturesInnerPhi(t *testing.T) {
	// outer while binds i via a header phi; the inner while rebinds i via
	// its own header phi; a continue inside the inner loop must snapshot
	// the inner phi's value, not the outer one.
	body := fixture.Block(
		fixture.Let("i", fixture.Const(0)),
		fixture.Let("oc", fixture.Const(1)),
		fixture.Let("ic", fixture.Const(1)),
		fixture.While("outer", fixture.Var("oc"),
			fixture.Block(
				fixture.While("inner", fixture.Var("ic"),
					fixture.Block(
						fixture.Assign(fixture.Var("i"), fixture.Bin(ast.OpAdd, fixture.Var("i"), fixture.Const(1))),
						fixture.Continue("inner"),
					)),
			)),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	phis := collectKind(prog, ir.KindPhi)
	require.NotEmpty(t, phis)

	// the inner loop's header phi for "i" must be seeded from the outer
	// loop's header phi result, not from the pre-outer-loop constant —
	// i.e. there exist two distinct phis whose own valnum chains into
	// another phi's operand set.
	phiValnums := map[int]bool{}
	for _, p := range phis {
		phiValnums[p.Valnum] = true
	}
	foundChain := false
	for _, p := range phis {
		for _, a := range p.Args {
			if phiValnums[a] {
				foundChain = true
			}
		}
	}
	assert.True(t, foundChain, "expected an inner phi operand to chain into an outer phi result")
}

// --- EntityResolver errors ---

func TestAssignToUndefinedRegisterTargetReportsE1001(t *testing.T) {
	body := fixture.Block(
		fixture.Assign(fixture.RegRef(fixture.Var("nope")), fixture.Const(1)),
	)
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorNonStaticReference, collector.Errors()[0].Code)
}

func TestWriteToNonPortTargetReportsE1003(t *testing.T) {
	body := fixture.Block(
		fixture.Let("r", fixture.RegInit(fixture.Const(0))),
		fixture.Write(fixture.Var("r"), fixture.Const(1)),
	)
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorWriteTargetMismatch, collector.Errors()[0].Code)
}

func TestKillIfWithSideEffectingConditionReportsE1005(t *testing.T) {
	body := fixture.Block(
		fixture.KillIf(fixture.StmtBlock(fixture.Block(
			fixture.Write(fixture.PortDef("p"), fixture.Const(1)),
			fixture.ExprStmt(fixture.Const(1)),
		))),
	)
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorSideEffectInKillIf, collector.Errors()[0].Code)
}

func TestKillIfWithBareArrayReadConditionReportsE1005(t *testing.T) {
	body := fixture.Block(
		fixture.KillIf(fixture.ArrayRef(fixture.Var("arr"), fixture.Const(0))),
	)
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorSideEffectInKillIf, collector.Errors()[0].Code)
}

// --- Concrete scenario: if/else phi count is scoped to touched bindings ---

func TestIfElseOnlyPhisBindingsTheArmsActuallyRebind(t *testing.T) {
	body := fixture.Block(
		fixture.Let("p", fixture.PortDef("p")),
		fixture.Let("c", fixture.Const(1)),
		fixture.Let("x", fixture.Const(1)),
		fixture.If(fixture.Var("c"),
			fixture.Block(fixture.Assign(fixture.Var("x"), fixture.Const(2))),
			fixture.Block(fixture.Assign(fixture.Var("x"), fixture.Const(3)))),
	)
	prog, collector := run(t, fixture.Fn("main", body))
	require.False(t, collector.HasErrors())

	phis := collectKind(prog, ir.KindPhi)
	require.Len(t, phis, 1)
	assert.Len(t, phis[0].Args, 2)
}

// --- Concrete scenario: joining a value without IR representation ---

func TestIfReassigningPortInOneArmOnlyReportsE1009(t *testing.T) {
	body := fixture.Block(
		fixture.Let("p", fixture.PortDef("p")),
		fixture.Let("c", fixture.Const(1)),
		fixture.If(fixture.Var("c"),
			fixture.Block(fixture.Assign(fixture.Var("p"), fixture.Const(1))),
			fixture.Block(fixture.ExprStmt(fixture.Const(0)))),
	)
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorJoinMissingValue, collector.Errors()[0].Code)
}

func TestWhileReassigningRegisterOnContinueEdgeReportsE1009(t *testing.T) {
	body := fixture.Block(
		fixture.Let("r", fixture.RegInit(fixture.Const(0))),
		fixture.Let("c", fixture.Const(1)),
		fixture.While("", fixture.Var("c"), fixture.Block(
			fixture.Assign(fixture.Var("r"), fixture.Const(1)),
		)),
	)
	_, collector := run(t, fixture.Fn("main", body))
	require.True(t, collector.HasErrors())
	assert.Equal(t, errors.ErrorJoinMissingValue, collector.Errors()[0].Code)
}

func TestWhileLeavingEntityBindingUntouchedReportsNoError(t *testing.T) {
	body := fixture.Block(
		fixture.Let("r", fixture.RegInit(fixture.Const(0))),
		fixture.Let("c", fixture.Const(1)),
		fixture.While("", fixture.Var("c"), fixture.Block(
			fixture.ExprStmt(fixture.RegRef(fixture.Var("r"))),
		)),
	)
	_, collector := run(t, fixture.Fn("main", body))
	assert.False(t, collector.HasErrors())
}
