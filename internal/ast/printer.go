package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, f := range p.Functions {
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (f *Function) String() string {
	return fmt.Sprintf("entry %s {\n%s}", f.Name, f.Body.StringIndented("  "))
}

func (blk *Block) String() string { return blk.StringIndented("  ") }

func (blk *Block) StringIndented(indent string) string {
	var b strings.Builder
	for _, s := range blk.Stmts {
		b.WriteString(indent)
		b.WriteString(strings.ReplaceAll(s.String(), "\n", "\n"+indent))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", s.Name, s.Expr.String())
}

func (s *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s;", s.Target.String(), s.Value.String())
}

func (s *IfStmt) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("if (%s) {\n%s}", s.Cond.String(), s.ThenBody.StringIndented("  ")))
	if s.ElseBody != nil {
		b.WriteString(fmt.Sprintf(" else {\n%s}", s.ElseBody.StringIndented("  ")))
	}
	return b.String()
}

func (s *WhileStmt) String() string {
	label := ""
	if s.Label != "" {
		label = s.Label + ": "
	}
	return fmt.Sprintf("%swhile (%s) {\n%s}", label, s.Cond.String(), s.Body.StringIndented("  "))
}

func (s *BreakStmt) String() string {
	if s.Label != "" {
		return fmt.Sprintf("break %s;", s.Label)
	}
	return "break;"
}

func (s *ContinueStmt) String() string {
	if s.Label != "" {
		return fmt.Sprintf("continue %s;", s.Label)
	}
	return "continue;"
}

func (s *WriteStmt) String() string {
	return fmt.Sprintf("write(%s, %s);", s.Target.String(), s.Value.String())
}

func (s *SpawnStmt) String() string {
	return fmt.Sprintf("spawn {\n%s}", s.Body.StringIndented("  "))
}

func (s *KillStmt) String() string { return "kill;" }

func (s *KillIfStmt) String() string {
	return fmt.Sprintf("killif (%s);", s.Cond.String())
}

func (s *KillYoungerStmt) String() string { return "killyounger;" }

func (s *OnKillYoungerStmt) String() string {
	return fmt.Sprintf("on_kill_younger {\n%s}", s.Body.StringIndented("  "))
}

func (s *TimingStmt) String() string {
	return fmt.Sprintf("timing {\n%s}", s.Body.StringIndented("  "))
}

func (s *StageStmt) String() string {
	return fmt.Sprintf("stage %d;", s.Stage)
}

func (s *BypassStartStmt) String() string {
	return fmt.Sprintf("bypass_start(%s);", s.Name)
}

func (s *BypassEndStmt) String() string {
	return fmt.Sprintf("bypass_end(%s);", s.Name)
}

func (s *BypassWriteStmt) String() string {
	return fmt.Sprintf("bypass_write(%s, %s);", s.Name, s.Value.String())
}

func (s *NestedEntryFuncStmt) String() string {
	return fmt.Sprintf("entry %s {\n%s}", s.Name, s.Body.StringIndented("  "))
}

func (s *PragmaStmt) String() string {
	return fmt.Sprintf("#pragma %s %s", s.Key, s.Value)
}

func (s *ExprStmt) String() string { return s.Expr.String() + ";" }

func (e *ConstExpr) String() string { return strconv.FormatInt(e.Value, 10) }

func (e *VarExpr) String() string { return e.Name }

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpAnd: "&", OpOr: "|", OpXor: "^", OpShl: "<<", OpShr: ">>",
	OpEq: "==", OpNe: "!=", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
	OpLogicalAnd: "&&", OpLogicalOr: "||",
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), binaryOpSymbols[e.Op], e.Right.String())
}

var unaryOpSymbols = map[UnaryOp]string{OpNeg: "-", OpNot: "!", OpBitNot: "~"}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", unaryOpSymbols[e.Op], e.Operand.String())
}

func (e *SelectExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", e.Cond.String(), e.Then.String(), e.Else.String())
}

func (e *BitsliceExpr) String() string {
	return fmt.Sprintf("%s[%d:%d]", e.Value.String(), e.Hi, e.Lo)
}

func (e *ConcatExpr) String() string {
	parts := make([]string, len(e.Parts))
	for i, p := range e.Parts {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (e *RegInitExpr) String() string {
	return fmt.Sprintf("reg_init(%s)", e.InitExpr.String())
}

func (e *ArrayInitExpr) String() string {
	return fmt.Sprintf("array_init(%d)", e.Size)
}

func (e *PortDefExpr) String() string { return fmt.Sprintf("port_def(%s)", e.Name) }

func (e *BypassDefExpr) String() string { return fmt.Sprintf("bypass_def(%s)", e.Name) }

func (e *RegRefExpr) String() string { return e.Target.String() }

func (e *ArrayRefExpr) String() string {
	return fmt.Sprintf("%s[%s]", e.Array.String(), e.Index.String())
}

func (e *PortReadExpr) String() string { return fmt.Sprintf("read(%s)", e.Port.String()) }

func (e *BypassPresentExpr) String() string {
	return fmt.Sprintf("bypass_present(%s)", e.Target.String())
}

func (e *BypassReadyExpr) String() string {
	return fmt.Sprintf("bypass_ready(%s)", e.Target.String())
}

func (e *BypassReadExpr) String() string {
	return fmt.Sprintf("bypass_read(%s)", e.Target.String())
}

func (e *StmtBlockExpr) String() string {
	return fmt.Sprintf("{\n%s}", e.Body.StringIndented("  "))
}

func (e *FieldRefExpr) String() string {
	return fmt.Sprintf("%s.%s", e.Target.String(), e.Field)
}

func (e *CastExpr) String() string {
	return fmt.Sprintf("cast<%d>(%s)", e.Typ.Width, e.Value.String())
}
