package codegen

import (
	"autopiper/internal/ast"
	"autopiper/internal/errors"
	"autopiper/internal/ir"
)

// WalkExpr evaluates e post-order: every operand is walked and emitted
// before the expression's own IR statement, and an End from any operand
// aborts immediately without emitting the parent. The returned int is
// the value number of the statement that computes e; for primitive
// constructors (RegInit/ArrayInit/PortDef/BypassDef) it is the value
// number of the declaration statement itself, and the constructor's
// gensym'd IR name is recorded in ctx.primitiveNames for Resolver to
// find later. That declaration valnum also gets marked in
// ctx.entityValnums: it stands for the primitive's identity, not a
// value a control-flow join could legally merge, so walkIf/walkWhile
// consult it before building a phi.
func (w *Walker) WalkExpr(e ast.Expr) (int, Result) {
	switch v := e.(type) {
	case *ast.ConstExpr:
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindConst, Const: v.Value, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.VarExpr:
		val, ok := w.ctx.Bindings.Lookup(v.Name)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(v.Name, v.Pos))
			return 0, End
		}
		return val, Continue

	case *ast.BinaryExpr:
		l, res := w.WalkExpr(v.Left)
		if res == End {
			return 0, End
		}
		r, res := w.WalkExpr(v.Right)
		if res == End {
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindBinOp, BinOp: v.Op, Args: []int{l, r}, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.UnaryExpr:
		o, res := w.WalkExpr(v.Operand)
		if res == End {
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindUnOp, UnOp: v.Op, Args: []int{o}, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.SelectExpr:
		c, res := w.WalkExpr(v.Cond)
		if res == End {
			return 0, End
		}
		t, res := w.WalkExpr(v.Then)
		if res == End {
			return 0, End
		}
		f, res := w.WalkExpr(v.Else)
		if res == End {
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindSelect, Args: []int{c, t, f}, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.BitsliceExpr:
		val, res := w.WalkExpr(v.Value)
		if res == End {
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindBitslice, Args: []int{val}, Hi: v.Hi, Lo: v.Lo, Width: v.Hi - v.Lo + 1, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.ConcatExpr:
		args := make([]int, 0, len(v.Parts))
		width := 0
		for _, p := range v.Parts {
			val, res := w.WalkExpr(p)
			if res == End {
				return 0, End
			}
			args = append(args, val)
			width += p.ExprType().Width
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindConcat, Args: args, Width: width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.CastExpr:
		val, res := w.WalkExpr(v.Value)
		if res == End {
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindCast, Args: []int{val}, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.FieldRefExpr:
		target, res := w.WalkExpr(v.Target)
		if res == End {
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindFieldRead, Args: []int{target}, Name: v.Field, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.RegInitExpr:
		init, res := w.WalkExpr(v.InitExpr)
		if res == End {
			return 0, End
		}
		name := w.ctx.GenSym("reg")
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindRegDecl, Name: name, Args: []int{init}, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		w.ctx.primitiveNames[v] = name
		w.ctx.entityValnums[s.Valnum] = true
		return s.Valnum, Continue

	case *ast.ArrayInitExpr:
		name := w.ctx.GenSym("arr")
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindArrayDecl, Name: name, Const: int64(v.Size), Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		w.ctx.primitiveNames[v] = name
		w.ctx.entityValnums[s.Valnum] = true
		return s.Valnum, Continue

	case *ast.PortDefExpr:
		name := v.Name
		if name == "" {
			name = w.ctx.GenSym("chan")
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindPortDecl, Name: name, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		w.ctx.primitiveNames[v] = name
		w.ctx.entityValnums[s.Valnum] = true
		return s.Valnum, Continue

	case *ast.BypassDefExpr:
		name := v.Name
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindBypassDecl, Name: name, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		w.ctx.primitiveNames[v] = name
		w.ctx.entityValnums[s.Valnum] = true
		return s.Valnum, Continue

	case *ast.RegRefExpr:
		def, ok := w.resolver.FindEntityDef(v.Target)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(v.Target), v.Pos))
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindRegRead, Name: w.ctx.primitiveNames[def], Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.ArrayRefExpr:
		def, ok := w.resolver.FindEntityDef(v.Array)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(v.Array), v.Pos))
			return 0, End
		}
		idx, res := w.WalkExpr(v.Index)
		if res == End {
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindArrayRead, Name: w.ctx.primitiveNames[def], Args: []int{idx}, Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.PortReadExpr:
		def, ok := w.resolver.FindEntityDef(v.Port)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(v.Port), v.Pos))
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindPortRead, Name: w.ctx.primitiveNames[def], Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.BypassPresentExpr:
		def, ok := w.resolver.FindEntityDef(v.Target)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(v.Target), v.Pos))
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindBypassPresent, Name: w.ctx.primitiveNames[def], Width: 1, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.BypassReadyExpr:
		def, ok := w.resolver.FindEntityDef(v.Target)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(v.Target), v.Pos))
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindBypassReady, Name: w.ctx.primitiveNames[def], Width: 1, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.BypassReadExpr:
		def, ok := w.resolver.FindEntityDef(v.Target)
		if !ok {
			w.ctx.Errors().Add(errors.NonStaticReference(varName(v.Target), v.Pos))
			return 0, End
		}
		s := w.ctx.Emit(&ir.Stmt{Kind: ir.KindBypassRead, Name: w.ctx.primitiveNames[def], Width: v.Typ.Width, OrigNode: v, Pos: v.Pos})
		return s.Valnum, Continue

	case *ast.StmtBlockExpr:
		return w.walkStmtBlockExpr(v)

	default:
		return 0, Continue
	}
}

// walkStmtBlockExpr codegens a statement-block expression: every
// statement but the last is walked for effect, and the last must itself
// be an expression statement whose value becomes the block's value.
func (w *Walker) walkStmtBlockExpr(v *ast.StmtBlockExpr) (int, Result) {
	stmts := v.Body.Stmts
	if len(stmts) == 0 {
		w.ctx.Errors().Add(errors.NonExpressionLastStmt(v.Pos))
		return 0, End
	}
	for _, s := range stmts[:len(stmts)-1] {
		res := w.WalkStmt(s)
		if res == End {
			return 0, End
		}
		if res == Terminal {
			return 0, Terminal
		}
	}
	last, ok := stmts[len(stmts)-1].(*ast.ExprStmt)
	if !ok {
		w.ctx.Errors().Add(errors.NonExpressionLastStmt(v.Pos))
		return 0, End
	}
	return w.WalkExpr(last.Expr)
}
