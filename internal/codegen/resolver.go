package codegen

import "autopiper/internal/ast"

// Resolver is EntityResolver: it traces a let-bound name back through
// static (non-SSA) bindings to the primitive constructor expression that
// defines it, failing if the trace escapes anything that isn't itself a
// plain variable reference. This is deliberately independent of the SSA
// BindingEnvironment — registers, arrays, ports and bypass entries are
// addressed by name, not threaded as phi'd values, so their identity
// must survive control-flow joins that would otherwise merge them away.
type Resolver struct {
	ctx *Context
}

// NewResolver returns a Resolver consulting ctx's static definition
// table.
func NewResolver(ctx *Context) *Resolver { return &Resolver{ctx: ctx} }

// FindEntityDef resolves e to the RegInitExpr/ArrayInitExpr/PortDefExpr/
// BypassDefExpr it statically names, or returns ok=false if e is not a
// variable reference or the trace does not bottom out in a primitive
// constructor.
func (r *Resolver) FindEntityDef(e ast.Expr) (ast.Expr, bool) {
	v, ok := e.(*ast.VarExpr)
	if !ok {
		return nil, false
	}
	def, ok := r.ctx.staticDefs[v.Name]
	if !ok {
		return nil, false
	}
	switch def.(type) {
	case *ast.RegInitExpr, *ast.ArrayInitExpr, *ast.PortDefExpr, *ast.BypassDefExpr:
		return def, true
	case *ast.VarExpr:
		return r.FindEntityDef(def)
	default:
		return nil, false
	}
}
