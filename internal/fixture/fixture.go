// Package fixture builds small AST trees by hand for table-driven
// codegen tests, standing in for the parser this repository does not
// own. Every helper fills in just enough of a node to drive codegen;
// positions are left zero-valued since no test asserts on them.
package fixture

import "autopiper/internal/ast"

func Int(width int) ast.Type { return ast.Type{Width: width} }

func Const(v int64) *ast.ConstExpr {
	return &ast.ConstExpr{Value: v, Typ: Int(32)}
}

func Var(name string) *ast.VarExpr {
	return &ast.VarExpr{Name: name, Typ: Int(32)}
}

func Bin(op ast.BinaryOp, l, r ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: l, Right: r, Typ: Int(32)}
}

func Un(op ast.UnaryOp, v ast.Expr) *ast.UnaryExpr {
	return &ast.UnaryExpr{Op: op, Operand: v, Typ: Int(32)}
}

func Select(cond, then, els ast.Expr) *ast.SelectExpr {
	return &ast.SelectExpr{Cond: cond, Then: then, Else: els, Typ: Int(32)}
}

func Bitslice(v ast.Expr, hi, lo int) *ast.BitsliceExpr {
	return &ast.BitsliceExpr{Value: v, Hi: hi, Lo: lo, Typ: Int(hi - lo + 1)}
}

func Concat(parts ...ast.Expr) *ast.ConcatExpr {
	width := 0
	for _, p := range parts {
		width += p.ExprType().Width
	}
	return &ast.ConcatExpr{Parts: parts, Typ: Int(width)}
}

func Cast(v ast.Expr, width int) *ast.CastExpr {
	return &ast.CastExpr{Value: v, Typ: Int(width)}
}

func FieldRef(target ast.Expr, field string) *ast.FieldRefExpr {
	return &ast.FieldRefExpr{Target: target, Field: field, Typ: Int(32)}
}

func RegInit(init ast.Expr) *ast.RegInitExpr {
	return &ast.RegInitExpr{InitExpr: init, Typ: Int(32)}
}

func ArrayInit(size int) *ast.ArrayInitExpr {
	return &ast.ArrayInitExpr{Size: size, Typ: Int(32)}
}

func PortDef(name string) *ast.PortDefExpr {
	return &ast.PortDefExpr{Name: name, Typ: ast.Type{Width: 32, IsPort: true}}
}

func ChanDef() *ast.PortDefExpr {
	return &ast.PortDefExpr{Typ: ast.Type{Width: 32, IsPort: true, IsChan: true}}
}

func BypassDef(name string) *ast.BypassDefExpr {
	return &ast.BypassDefExpr{Name: name, Typ: Int(32)}
}

func RegRef(target ast.Expr) *ast.RegRefExpr {
	return &ast.RegRefExpr{Target: target, Typ: Int(32)}
}

func ArrayRef(array, index ast.Expr) *ast.ArrayRefExpr {
	return &ast.ArrayRefExpr{Array: array, Index: index, Typ: Int(32)}
}

func PortRead(port ast.Expr) *ast.PortReadExpr {
	return &ast.PortReadExpr{Port: port, Typ: Int(32)}
}

func BypassPresent(target ast.Expr) *ast.BypassPresentExpr {
	return &ast.BypassPresentExpr{Target: target, Typ: Int(1)}
}

func BypassReady(target ast.Expr) *ast.BypassReadyExpr {
	return &ast.BypassReadyExpr{Target: target, Typ: Int(1)}
}

func BypassRead(target ast.Expr) *ast.BypassReadExpr {
	return &ast.BypassReadExpr{Target: target, Typ: Int(32)}
}

func StmtBlock(body *ast.Block) *ast.StmtBlockExpr {
	return &ast.StmtBlockExpr{Body: body, Typ: Int(32)}
}

func Block(stmts ...ast.Stmt) *ast.Block {
	return &ast.Block{Stmts: stmts}
}

func Let(name string, e ast.Expr) *ast.LetStmt {
	return &ast.LetStmt{Name: name, Expr: e}
}

func Assign(target, value ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{Target: target, Value: value}
}

func If(cond ast.Expr, then, els *ast.Block) *ast.IfStmt {
	return &ast.IfStmt{Cond: cond, ThenBody: then, ElseBody: els}
}

func While(label string, cond ast.Expr, body *ast.Block) *ast.WhileStmt {
	return &ast.WhileStmt{Label: label, Cond: cond, Body: body}
}

func Break(label string) *ast.BreakStmt { return &ast.BreakStmt{Label: label} }

func Continue(label string) *ast.ContinueStmt { return &ast.ContinueStmt{Label: label} }

func Write(target, value ast.Expr) *ast.WriteStmt {
	return &ast.WriteStmt{Target: target, Value: value}
}

func Spawn(body *ast.Block) *ast.SpawnStmt { return &ast.SpawnStmt{Body: body} }

func Kill() *ast.KillStmt { return &ast.KillStmt{} }

func KillIf(cond ast.Expr) *ast.KillIfStmt { return &ast.KillIfStmt{Cond: cond} }

func KillYounger() *ast.KillYoungerStmt { return &ast.KillYoungerStmt{} }

func OnKillYounger(body *ast.Block) *ast.OnKillYoungerStmt {
	return &ast.OnKillYoungerStmt{Body: body}
}

func Timing(body *ast.Block) *ast.TimingStmt { return &ast.TimingStmt{Body: body} }

func Stage(n int) *ast.StageStmt { return &ast.StageStmt{Stage: n} }

func BypassStart(name string) *ast.BypassStartStmt { return &ast.BypassStartStmt{Name: name} }

func BypassEnd(name string) *ast.BypassEndStmt { return &ast.BypassEndStmt{Name: name} }

func BypassWrite(name string, value ast.Expr) *ast.BypassWriteStmt {
	return &ast.BypassWriteStmt{Name: name, Value: value}
}

func NestedEntryFunc(name string, body *ast.Block) *ast.NestedEntryFuncStmt {
	return &ast.NestedEntryFuncStmt{Name: name, Body: body}
}

func Pragma(key, value string) *ast.PragmaStmt { return &ast.PragmaStmt{Key: key, Value: value} }

func ExprStmt(e ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{Expr: e} }

func Fn(name string, body *ast.Block) *ast.Function {
	return &ast.Function{Name: name, Body: body}
}

func Program(fns ...*ast.Function) *ast.Program {
	return &ast.Program{Functions: fns}
}
