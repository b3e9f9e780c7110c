package ir

import (
	"fmt"
	"strings"
)

var kindNames = map[Kind]string{
	KindConst: "const", KindBinOp: "binop", KindUnOp: "unop",
	KindSelect: "select", KindBitslice: "bitslice", KindConcat: "concat",
	KindCast: "cast", KindPhi: "phi", KindIf: "if", KindJmp: "jmp",
	KindRegDecl: "reg_decl", KindRegRead: "reg_read", KindRegWrite: "reg_write",
	KindArrayDecl: "array_decl", KindArrayRead: "array_read", KindArrayWrite: "array_write",
	KindPortDecl: "port_decl", KindPortRead: "port_read", KindPortWrite: "port_write",
	KindBypassDecl: "bypass_decl",
	KindBypassStart: "bypass_start", KindBypassEnd: "bypass_end", KindBypassWrite: "bypass_write",
	KindBypassPresent: "bypass_present", KindBypassReady: "bypass_ready", KindBypassRead: "bypass_read",
	KindKill: "kill", KindKillIf: "killif", KindKillYounger: "killyounger",
	KindSpawn: "spawn", KindTimingBarrier: "timing_barrier", KindDone: "done",
	KindFieldRead: "field_read",
}

// String renders one statement in a flat, greppable debug form:
// "%3 = binop %1 %2" or "jmp bb2".
func (s *Stmt) String() string {
	var b strings.Builder
	if s.Kind != KindJmp && s.Kind != KindIf && s.Kind != KindKill &&
		s.Kind != KindKillYounger && s.Kind != KindDone {
		fmt.Fprintf(&b, "%%%d = ", s.Valnum)
	}
	b.WriteString(kindNames[s.Kind])

	switch s.Kind {
	case KindConst:
		fmt.Fprintf(&b, " %d", s.Const)
	case KindBitslice:
		fmt.Fprintf(&b, " %%%d[%d:%d]", s.Args[0], s.Hi, s.Lo)
	case KindPhi:
		for i, a := range s.Args {
			pred := ""
			if i < len(s.PhiBlocks) {
				pred = s.PhiBlocks[i]
			}
			fmt.Fprintf(&b, " [%s: %%%d]", pred, a)
		}
	case KindJmp:
		fmt.Fprintf(&b, " %s", s.Targets[0])
	case KindIf:
		fmt.Fprintf(&b, " %%%d then %s else %s", s.Args[0], s.Targets[0], s.Targets[1])
	case KindSpawn:
		fmt.Fprintf(&b, " %s", s.Targets[0])
	case KindTimingBarrier:
		name := ""
		if s.TimeVar != nil {
			name = s.TimeVar.Name
		}
		fmt.Fprintf(&b, " %s@%d", name, s.Stage)
	default:
		if s.Name != "" {
			fmt.Fprintf(&b, " %s", s.Name)
		}
		for _, a := range s.Args {
			fmt.Fprintf(&b, " %%%d", a)
		}
	}
	return b.String()
}

// String renders a block as a label line followed by its statements,
// one per line, indented.
func (b *BB) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s:\n", b.Label)
	for _, s := range b.Stmts {
		out.WriteString("  ")
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// String renders the whole program: every block in definition order.
func (p *Program) String() string {
	var out strings.Builder
	if p.TimingModel != "" {
		fmt.Fprintf(&out, "#pragma timing_model %s\n", p.TimingModel)
	}
	for _, b := range p.BBs {
		out.WriteString(b.String())
	}
	return out.String()
}
