package codegen

import (
	"autopiper/internal/ast"
	"autopiper/internal/binding"
	"autopiper/internal/errors"
	"autopiper/internal/ir"
)

// Generate codegens every entry function in prog in turn, sharing one
// Context (and therefore one gensym/value-number space and one IR
// program) across all of them, then prunes unreachable blocks and stale
// phi operands. It returns the resulting IR program and whether codegen
// succeeded without any collected error-level diagnostic.
func Generate(prog *ast.Program, collector *errors.Collector) (*ir.Program, bool) {
	ctx := NewContext(collector)
	walker := NewWalker(ctx)

	for _, fn := range prog.Functions {
		ctx.Bindings = binding.New()
		ctx.loopFrames = nil
		ctx.onKillYoung = nil
		walker.WalkFunction(fn)
	}

	Prune(ctx.Prog)
	return ctx.Prog, !collector.HasErrors()
}
