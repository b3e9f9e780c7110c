package codegen

import "autopiper/internal/ir"

// Prune removes every basic block unreachable from prog's entry labels
// (a function entry or a spawn target), and drops any phi operand/
// predecessor pair whose source block was pruned. This mirrors running
// a reachability-and-phi-filter pass over the whole program after every
// function and spawn path has been codegen'd, rather than threading
// liveness through the walk itself.
func Prune(prog *ir.Program) {
	reachable := map[string]bool{}
	var walk func(label string)
	walk = func(label string) {
		if reachable[label] {
			return
		}
		bb := prog.BBByLabel(label)
		if bb == nil {
			return
		}
		reachable[label] = true
		for _, s := range bb.Stmts {
			for _, t := range s.Targets {
				walk(t)
			}
		}
	}
	for _, l := range prog.EntryLabels {
		walk(l)
	}

	kept := make([]*ir.BB, 0, len(prog.BBs))
	for _, bb := range prog.BBs {
		if reachable[bb.Label] {
			kept = append(kept, bb)
		}
	}
	prog.BBs = kept

	for _, bb := range kept {
		for _, s := range bb.Stmts {
			if s.Kind != ir.KindPhi || len(s.PhiBlocks) == 0 {
				continue
			}
			filterPhiInputs(s, reachable)
		}
	}
}

// filterPhiInputs drops every (operand, predecessor) pair of s whose
// predecessor is a synthetic marker ("preheader", "continue") or a real
// block label that did not survive pruning.
func filterPhiInputs(s *ir.Stmt, reachable map[string]bool) {
	args := make([]int, 0, len(s.Args))
	preds := make([]string, 0, len(s.PhiBlocks))
	for i, p := range s.PhiBlocks {
		if p == "preheader" || p == "continue" || reachable[p] {
			args = append(args, s.Args[i])
			preds = append(preds, p)
		}
	}
	s.Args = args
	s.PhiBlocks = preds
}
