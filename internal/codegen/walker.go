package codegen

import (
	"autopiper/internal/ast"
	"autopiper/internal/binding"
	"autopiper/internal/errors"
	"autopiper/internal/ir"
)

// Walker is CodeGenWalker: it drives one AST traversal, dispatching on
// concrete statement and expression type through an exhaustive switch in
// place of the virtual pre/post hooks the original used, since Go has no
// virtual dispatch over a type it does not define. Every method returns
// the three-valued Result (see result.go); callers that drive a sub-walk
// manually (if/else arms, while bodies, spawn bodies, nested entry
// functions, statement-block expressions) check and re-propagate End
// immediately.
type Walker struct {
	ctx      *Context
	resolver *Resolver
}

// NewWalker returns a Walker operating on ctx.
func NewWalker(ctx *Context) *Walker {
	return &Walker{ctx: ctx, resolver: NewResolver(ctx)}
}

// WalkFunction codegens one entry function: a fresh entry block, its
// body, and an implicit Done if the body falls off the end without
// having already terminated via kill/break/continue or an if whose arms
// all terminate.
func (w *Walker) WalkFunction(fn *ast.Function) Result {
	entryBB := w.ctx.AddBB()
	entryBB.Entry = true
	w.ctx.AddEntry(entryBB.Label)
	w.ctx.SetCurBB(entryBB)

	res := w.WalkBlock(fn.Body)
	if res == End {
		return End
	}
	if res != Terminal {
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindDone})
	}
	return Continue
}

// WalkBlock walks every statement of b in order, stopping early on
// Terminal (the rest of the block is unreachable) or End (an error was
// reported). Any on-kill-younger blocks registered inside b go out of
// scope when b finishes, regardless of how it finished.
func (w *Walker) WalkBlock(b *ast.Block) Result {
	okyDepth := len(w.ctx.onKillYoung)
	defer func() { w.ctx.onKillYoung = w.ctx.onKillYoung[:okyDepth] }()

	for _, s := range b.Stmts {
		res := w.WalkStmt(s)
		if res == End {
			return End
		}
		if res == Terminal {
			return Terminal
		}
	}
	return Continue
}

// WalkStmt dispatches s to its handler.
func (w *Walker) WalkStmt(s ast.Stmt) Result {
	switch st := s.(type) {
	case *ast.Block:
		return w.WalkBlock(st)
	case *ast.LetStmt:
		return w.walkLet(st)
	case *ast.AssignStmt:
		return w.walkAssign(st)
	case *ast.IfStmt:
		return w.walkIf(st)
	case *ast.WhileStmt:
		return w.walkWhile(st)
	case *ast.BreakStmt:
		return w.walkBreak(st)
	case *ast.ContinueStmt:
		return w.walkContinue(st)
	case *ast.WriteStmt:
		return w.walkWrite(st)
	case *ast.SpawnStmt:
		return w.walkSpawn(st)
	case *ast.KillStmt:
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindKill, Pos: st.Pos})
		return Terminal
	case *ast.KillIfStmt:
		return w.walkKillIf(st)
	case *ast.KillYoungerStmt:
		return w.walkKillYounger(st)
	case *ast.OnKillYoungerStmt:
		w.ctx.onKillYoung = append(w.ctx.onKillYoung, onKillYoungerEntry{body: st.Body, depth: w.ctx.Bindings.Depth()})
		return Continue
	case *ast.TimingStmt:
		return w.walkTiming(st)
	case *ast.StageStmt:
		return w.walkStage(st)
	case *ast.BypassStartStmt:
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindBypassStart, Name: st.Name, Pos: st.Pos})
		return Continue
	case *ast.BypassEndStmt:
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindBypassEnd, Name: st.Name, Pos: st.Pos})
		return Continue
	case *ast.BypassWriteStmt:
		return w.walkBypassWrite(st)
	case *ast.NestedEntryFuncStmt:
		return w.walkNestedEntryFunc(st)
	case *ast.PragmaStmt:
		if st.Key == "timing_model" {
			w.ctx.Prog.TimingModel = st.Value
		}
		return Continue
	case *ast.ExprStmt:
		_, res := w.WalkExpr(st.Expr)
		return res
	default:
		return Continue
	}
}

func (w *Walker) walkLet(s *ast.LetStmt) Result {
	v, res := w.WalkExpr(s.Expr)
	if res == End {
		return End
	}
	w.ctx.Bindings.Bind(s.Name, v)
	w.ctx.staticDefs[s.Name] = s.Expr
	return Continue
}

func varName(e ast.Expr) string {
	if v, ok := e.(*ast.VarExpr); ok {
		return v.Name
	}
	return "<expr>"
}

func (w *Walker) walkAssign(s *ast.AssignStmt) Result {
	val, res := w.WalkExpr(s.Value)
	if res == End {
		return End
	}

	switch t := s.Target.(type) {
	case *ast.VarExpr:
		w.ctx.Bindings.Bind(t.Name, val)
		return Continue

	case *ast.RegRefExpr:
		def, ok := w.resolver.FindEntityDef(t.Target)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(t.Target), t.Pos))
			return End
		}
		if _, isReg := def.(*ast.RegInitExpr); !isReg {
			w.ctx.Errors().Add(errors.IllegalLvalue(s.Pos))
			return End
		}
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindRegWrite, Name: w.ctx.primitiveNames[def], Args: []int{val}, Pos: s.Pos})
		return Continue

	case *ast.ArrayRefExpr:
		def, ok := w.resolver.FindEntityDef(t.Array)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(t.Array), t.Pos))
			return End
		}
		if _, isArr := def.(*ast.ArrayInitExpr); !isArr {
			w.ctx.Errors().Add(errors.IllegalLvalue(s.Pos))
			return End
		}
		idx, res2 := w.WalkExpr(t.Index)
		if res2 == End {
			return End
		}
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindArrayWrite, Name: w.ctx.primitiveNames[def], Args: []int{idx, val}, Pos: s.Pos})
		return Continue

	default:
		w.ctx.Errors().Add(errors.IllegalLvalue(s.Pos))
		return End
	}
}

func (w *Walker) walkWrite(s *ast.WriteStmt) Result {
	val, res := w.WalkExpr(s.Value)
	if res == End {
		return End
	}

	def, ok := w.resolver.FindEntityDef(s.Target)
	if !ok {
		w.ctx.Errors().Add(errors.WriteTargetMismatch(s.Pos))
		return End
	}
	port, ok := def.(*ast.PortDefExpr)
	if !ok {
		w.ctx.Errors().Add(errors.WriteTargetMismatch(s.Pos))
		return End
	}
	if port.Typ.IsChan && port.Name != "" {
		w.ctx.Errors().Add(errors.NamedChan(port.Name, s.Pos))
		return End
	}
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindPortWrite, Name: w.ctx.primitiveNames[def], Args: []int{val}, Pos: s.Pos})
	return Continue
}

func (w *Walker) walkBypassWrite(s *ast.BypassWriteStmt) Result {
	val, res := w.WalkExpr(s.Value)
	if res == End {
		return End
	}
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindBypassWrite, Name: s.Name, Args: []int{val}, Pos: s.Pos})
	return Continue
}

// walkIf builds the classic two-way SSA diamond: a then-block and an
// else-block (or an implicit empty else), each codegen'd under its own
// pushed binding layer, whose resulting overlays are joined into phi
// nodes in a fresh merge block. An arm that terminates (kill, break,
// continue, ...) contributes no overlay and no jump into the merge
// block; if both arms terminate, the merge block is unreachable and is
// left for the post-pass to prune.
func (w *Walker) walkIf(s *ast.IfStmt) Result {
	cond, res := w.WalkExpr(s.Cond)
	if res == End {
		return End
	}

	thenBB := w.ctx.AddBB()
	elseBB := w.ctx.AddBB()
	mergeBB := w.ctx.AddBB()
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindIf, Args: []int{cond}, Targets: []string{thenBB.Label, elseBB.Label}, Pos: s.Pos})

	baseOverlay := w.ctx.Bindings.Overlay()

	w.ctx.SetCurBB(thenBB)
	thenDepth := w.ctx.Bindings.Depth()
	w.ctx.Bindings.Push()
	thenRes := w.WalkBlock(s.ThenBody)
	if thenRes == End {
		return End
	}
	thenTerminated := thenRes == Terminal
	var thenOverlay map[string]int
	if !thenTerminated {
		thenOverlay = w.ctx.Bindings.OverlayFrom(thenDepth)
	}
	w.ctx.Bindings.PopTo(thenDepth)
	if !thenTerminated {
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindJmp, Targets: []string{mergeBB.Label}})
	}

	w.ctx.SetCurBB(elseBB)
	elseDepth := w.ctx.Bindings.Depth()
	w.ctx.Bindings.Push()
	elseTerminated := false
	if s.ElseBody != nil {
		elseRes := w.WalkBlock(s.ElseBody)
		if elseRes == End {
			return End
		}
		elseTerminated = elseRes == Terminal
	}
	var elseOverlay map[string]int
	if !elseTerminated {
		elseOverlay = w.ctx.Bindings.OverlayFrom(elseDepth)
	}
	w.ctx.Bindings.PopTo(elseDepth)
	if !elseTerminated {
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindJmp, Targets: []string{mergeBB.Label}})
	}

	w.ctx.SetCurBB(mergeBB)
	if thenTerminated && elseTerminated {
		return Terminal
	}

	var overlays []map[string]int
	var preds []string
	if !thenTerminated {
		overlays = append(overlays, thenOverlay)
		preds = append(preds, thenBB.Label)
	}
	if !elseTerminated {
		overlays = append(overlays, elseOverlay)
		preds = append(preds, elseBB.Label)
	}

	joined := binding.JoinOverlays(baseOverlay, overlays)
	for _, key := range sortedKeys(joined) {
		if !w.checkJoinable(key, joined[key], s.Pos) {
			return End
		}
		phi := w.ctx.Emit(&ir.Stmt{Kind: ir.KindPhi, Args: joined[key], PhiBlocks: preds})
		w.ctx.Bindings.Bind(key, phi.Valnum)
	}
	return Continue
}

// isEntityValue reports whether valnum is a primitive declaration's own
// value number (RegInit/ArrayInit/PortDef/BypassDef), which stands for
// the primitive's identity rather than a computed value.
func (w *Walker) isEntityValue(valnum int) bool {
	return w.ctx.entityValnums[valnum]
}

// checkJoinable reports whether every operand bound for key has an IR
// representation a phi can legally merge, reporting E1009 against key
// and returning false the first time it finds one that doesn't (a
// register/array/port/bypass identity reassigned differently down two
// incoming control-flow paths).
func (w *Walker) checkJoinable(key string, vec []int, pos ast.Position) bool {
	for _, v := range vec {
		if w.isEntityValue(v) {
			w.ctx.Errors().Add(errors.JoinMissingValue(key, pos))
			return false
		}
	}
	return true
}

// walkWhile builds a three-block loop (header, body, footer). Every
// binding live at loop entry that has an IR representation gets a phi
// pre-seeded in the header with the preheader value as its first
// operand; once the body has been walked, one operand is appended per
// continue edge (including the implicit fallthrough off the end of the
// body). When the loop has break edges, the footer gets one phi per key
// with the header value as the false-exit operand plus one operand per
// break edge; without break edges no footer phi is emitted and each key
// is rebound straight to its header phi. A binding whose
// preheader value is a register/array/port/bypass identity has no IR
// representation and is skipped at both ends instead: it keeps
// resolving to whatever is visible outside the loop's own layers, and
// any attempt by the body to actually rebind it across a continue or
// break edge is reported as E1009.
func (w *Walker) walkWhile(s *ast.WhileStmt) Result {
	headerBB := w.ctx.AddBB()
	bodyBB := w.ctx.AddBB()
	footerBB := w.ctx.AddBB()

	w.ctx.Emit(&ir.Stmt{Kind: ir.KindJmp, Targets: []string{headerBB.Label}})

	preheaderOverlay := w.ctx.Bindings.Overlay()
	keys := w.ctx.Bindings.Keys()

	w.ctx.SetCurBB(headerBB)
	headerPhis := make(map[string]*ir.Stmt, len(keys))
	for _, k := range keys {
		if w.isEntityValue(preheaderOverlay[k]) {
			continue
		}
		phi := w.ctx.Emit(&ir.Stmt{Kind: ir.KindPhi, Args: []int{preheaderOverlay[k]}, PhiBlocks: []string{"preheader"}})
		headerPhis[k] = phi
		w.ctx.Bindings.Bind(k, phi.Valnum)
	}

	frame := &loopFrame{label: s.Label, header: headerBB, footer: footerBB, headerPhis: headerPhis}
	w.ctx.loopFrames = append(w.ctx.loopFrames, frame)

	cond, res := w.WalkExpr(s.Cond)
	if res == End {
		w.popLoopFrame()
		return End
	}
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindIf, Args: []int{cond}, Targets: []string{bodyBB.Label, footerBB.Label}, Pos: s.Pos})

	w.ctx.SetCurBB(bodyBB)
	bodyDepth := w.ctx.Bindings.Depth()
	w.ctx.Bindings.Push()
	bodyRes := w.WalkBlock(s.Body)
	if bodyRes == End {
		w.ctx.Bindings.PopTo(bodyDepth)
		w.popLoopFrame()
		return End
	}
	if bodyRes != Terminal {
		frame.contOvers = append(frame.contOvers, w.ctx.Bindings.Overlay())
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindJmp, Targets: []string{headerBB.Label}})
	}
	w.ctx.Bindings.PopTo(bodyDepth)
	w.popLoopFrame()

	joinErr := false
	for _, ov := range frame.contOvers {
		for _, k := range keys {
			phi, ok := headerPhis[k]
			if !ok {
				if ov[k] != preheaderOverlay[k] {
					w.ctx.Errors().Add(errors.JoinMissingValue(k, s.Pos))
					joinErr = true
				}
				continue
			}
			phi.Args = append(phi.Args, ov[k])
			phi.PhiBlocks = append(phi.PhiBlocks, "continue")
		}
	}

	w.ctx.SetCurBB(footerBB)
	for _, k := range keys {
		phi, ok := headerPhis[k]
		if !ok {
			for _, ov := range frame.breakOvers {
				if ov[k] != preheaderOverlay[k] {
					w.ctx.Errors().Add(errors.JoinMissingValue(k, s.Pos))
					joinErr = true
				}
			}
			continue
		}
		vec := []int{phi.Valnum}
		preds := []string{headerBB.Label}
		for i, ov := range frame.breakOvers {
			vec = append(vec, ov[k])
			preds = append(preds, frame.breakBlocks[i].Label)
		}
		if len(vec) == 1 {
			w.ctx.Bindings.Bind(k, vec[0])
			continue
		}
		footerPhi := w.ctx.Emit(&ir.Stmt{Kind: ir.KindPhi, Args: vec, PhiBlocks: preds})
		w.ctx.Bindings.Bind(k, footerPhi.Valnum)
	}
	if joinErr {
		return End
	}
	return Continue
}

func (w *Walker) popLoopFrame() {
	w.ctx.loopFrames = w.ctx.loopFrames[:len(w.ctx.loopFrames)-1]
}

func (w *Walker) findLoopFrame(label string) *loopFrame {
	if label == "" {
		if len(w.ctx.loopFrames) == 0 {
			return nil
		}
		return w.ctx.loopFrames[len(w.ctx.loopFrames)-1]
	}
	for i := len(w.ctx.loopFrames) - 1; i >= 0; i-- {
		if w.ctx.loopFrames[i].label == label {
			return w.ctx.loopFrames[i]
		}
	}
	return nil
}

func (w *Walker) walkBreak(s *ast.BreakStmt) Result {
	frame := w.findLoopFrame(s.Label)
	if frame == nil {
		w.ctx.Errors().Add(errors.BreakContinueWithoutFrame(s.Label, s.Pos))
		return End
	}
	frame.breakOvers = append(frame.breakOvers, w.ctx.Bindings.Overlay())
	frame.breakBlocks = append(frame.breakBlocks, w.ctx.CurBB())
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindJmp, Targets: []string{frame.footer.Label}, Pos: s.Pos})
	return Terminal
}

func (w *Walker) walkContinue(s *ast.ContinueStmt) Result {
	frame := w.findLoopFrame(s.Label)
	if frame == nil {
		w.ctx.Errors().Add(errors.BreakContinueWithoutFrame(s.Label, s.Pos))
		return End
	}
	frame.contOvers = append(frame.contOvers, w.ctx.Bindings.Overlay())
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindJmp, Targets: []string{frame.header.Label}, Pos: s.Pos})
	return Terminal
}

// walkSpawn forks a sibling transaction: the spawned path is codegen'd
// into its own entry block under a private binding layer (it does not
// rejoin the spawning path's SSA state), and implicitly ends in a kill
// if it does not already terminate on every path.
func (w *Walker) walkSpawn(s *ast.SpawnStmt) Result {
	spawnBB := w.ctx.AddBB()
	spawnBB.Entry = true
	w.ctx.AddEntry(spawnBB.Label)
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindSpawn, Targets: []string{spawnBB.Label}, Pos: s.Pos})

	savedBB := w.ctx.CurBB()
	depth := w.ctx.Bindings.Depth()
	w.ctx.Bindings.Push()
	w.ctx.SetCurBB(spawnBB)

	res := w.WalkBlock(s.Body)
	if res != End && res != Terminal {
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindKill})
	}
	w.ctx.Bindings.PopTo(depth)
	w.ctx.SetCurBB(savedBB)

	if res == End {
		return End
	}
	return Continue
}

func (w *Walker) walkKillIf(s *ast.KillIfStmt) Result {
	if hasSideEffects(s.Cond) {
		w.ctx.Errors().Add(errors.SideEffectInKillIf(s.Pos))
		return End
	}
	cond, res := w.WalkExpr(s.Cond)
	if res == End {
		return End
	}
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindKillIf, Args: []int{cond}, Pos: s.Pos})
	return Continue
}

// walkKillYounger replays every in-scope on-kill-younger block, most
// recently registered first, before emitting the killyounger itself.
func (w *Walker) walkKillYounger(s *ast.KillYoungerStmt) Result {
	for i := len(w.ctx.onKillYoung) - 1; i >= 0; i-- {
		res := w.WalkBlock(w.ctx.onKillYoung[i].body)
		if res == End {
			return End
		}
	}
	w.ctx.Emit(&ir.Stmt{Kind: ir.KindKillYounger, Pos: s.Pos})
	return Continue
}

// walkTiming brackets Body with a start barrier at stage 0 and an end
// barrier at whatever stage the body last reached. A body with no stage
// statements at all still gets two barriers, both at offset 0 — this is
// intentional, not a bug: see the timing-model design notes.
func (w *Walker) walkTiming(s *ast.TimingStmt) Result {
	tv := w.ctx.NewTimeVar()
	start := w.ctx.Emit(&ir.Stmt{Kind: ir.KindTimingBarrier, TimeVar: tv, Stage: 0, Pos: s.Pos})
	tv.Barriers = append(tv.Barriers, start)

	savedStage := w.ctx.currentStage
	w.ctx.currentStage = 0
	w.ctx.timingDepth++

	res := w.WalkBlock(s.Body)

	w.ctx.timingDepth--
	lastStage := w.ctx.currentStage
	w.ctx.currentStage = savedStage
	w.ctx.PopTimeVar()

	if res == End {
		return End
	}

	end := w.ctx.Emit(&ir.Stmt{Kind: ir.KindTimingBarrier, TimeVar: tv, Stage: lastStage})
	tv.Barriers = append(tv.Barriers, end)
	return res
}

func (w *Walker) walkStage(s *ast.StageStmt) Result {
	if w.ctx.timingDepth == 0 {
		w.ctx.Errors().Add(errors.StageOutsideTiming(s.Pos))
		return End
	}
	tv := w.ctx.CurTimeVar()

	late := w.ctx.Emit(&ir.Stmt{Kind: ir.KindTimingBarrier, TimeVar: tv, Stage: w.ctx.currentStage, Pos: s.Pos})
	tv.Barriers = append(tv.Barriers, late)

	w.ctx.currentStage = s.Stage

	early := w.ctx.Emit(&ir.Stmt{Kind: ir.KindTimingBarrier, TimeVar: tv, Stage: w.ctx.currentStage})
	tv.Barriers = append(tv.Barriers, early)
	return Continue
}

// walkNestedEntryFunc codegens a statically nested entry point into its
// own entry block under an independent binding environment: it shares
// the enclosing Context's counters and IR program but none of the
// enclosing path's SSA bindings, since it is a separate transaction
// root, not a continuation of the one it is declared inside.
func (w *Walker) walkNestedEntryFunc(s *ast.NestedEntryFuncStmt) Result {
	entryBB := w.ctx.AddBB()
	entryBB.Entry = true
	w.ctx.AddEntry(entryBB.Label)

	savedBB := w.ctx.CurBB()
	savedBindings := w.ctx.Bindings
	w.ctx.Bindings = binding.New()
	w.ctx.SetCurBB(entryBB)

	res := w.WalkBlock(s.Body)
	if res != End && res != Terminal {
		w.ctx.Emit(&ir.Stmt{Kind: ir.KindDone})
	}

	w.ctx.Bindings = savedBindings
	w.ctx.SetCurBB(savedBB)

	if res == End {
		return End
	}
	return Continue
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// hasSideEffects reports whether e could, directly or through a nested
// statement-block expression, drive a write, kill, register/array/
// bypass mutation, or spawn, or read an array (array reads carry a
// read-port side effect of their own and are barred from killif
// conditions same as a write). killif conditions must be pure.
func hasSideEffects(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.BinaryExpr:
		return hasSideEffects(v.Left) || hasSideEffects(v.Right)
	case *ast.UnaryExpr:
		return hasSideEffects(v.Operand)
	case *ast.SelectExpr:
		return hasSideEffects(v.Cond) || hasSideEffects(v.Then) || hasSideEffects(v.Else)
	case *ast.BitsliceExpr:
		return hasSideEffects(v.Value)
	case *ast.ConcatExpr:
		for _, p := range v.Parts {
			if hasSideEffects(p) {
				return true
			}
		}
		return false
	case *ast.CastExpr:
		return hasSideEffects(v.Value)
	case *ast.FieldRefExpr:
		return hasSideEffects(v.Target)
	case *ast.ArrayRefExpr:
		return true
	case *ast.PortReadExpr:
		return hasSideEffects(v.Port)
	case *ast.StmtBlockExpr:
		return blockHasSideEffects(v.Body)
	default:
		return false
	}
}

func blockHasSideEffects(b *ast.Block) bool {
	for _, s := range b.Stmts {
		switch st := s.(type) {
		case *ast.WriteStmt, *ast.KillStmt, *ast.KillIfStmt, *ast.KillYoungerStmt,
			*ast.AssignStmt, *ast.SpawnStmt, *ast.BypassStartStmt, *ast.BypassEndStmt,
			*ast.BypassWriteStmt:
			return true
		case *ast.ExprStmt:
			if hasSideEffects(st.Expr) {
				return true
			}
		}
	}
	return false
}
