package ast

// ConstExpr is an integer literal.
type ConstExpr struct {
	base
	Pos    Position
	EndPos Position
	Value  int64
	Typ    Type
}

// VarExpr reads the current binding of a let-bound name.
type VarExpr struct {
	base
	Pos    Position
	EndPos Position
	Name   string
	Typ    Type
}

// BinaryExpr applies Op to Left and Right.
type BinaryExpr struct {
	base
	Pos    Position
	EndPos Position
	Op     BinaryOp
	Left   Expr
	Right  Expr
	Typ    Type
}

// UnaryExpr applies Op to Operand.
type UnaryExpr struct {
	base
	Pos     Position
	EndPos  Position
	Op      UnaryOp
	Operand Expr
	Typ     Type
}

// SelectExpr is a ternary mux: Cond ? Then : Else.
type SelectExpr struct {
	base
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
	Typ    Type
}

// BitsliceExpr extracts bits [Lo, Hi] (inclusive) of Value.
type BitsliceExpr struct {
	base
	Pos    Position
	EndPos Position
	Value  Expr
	Hi     int
	Lo     int
	Typ    Type
}

// ConcatExpr concatenates Parts, most-significant first.
type ConcatExpr struct {
	base
	Pos    Position
	EndPos Position
	Parts  []Expr
	Typ    Type
}

// RegInitExpr declares a register primitive with an initial value.
type RegInitExpr struct {
	base
	Pos      Position
	EndPos   Position
	InitExpr Expr
	Typ      Type
}

// ArrayInitExpr declares an array primitive of Size elements.
type ArrayInitExpr struct {
	base
	Pos    Position
	EndPos Position
	Size   int
	Typ    Type
}

// PortDefExpr declares an input/output port primitive.
type PortDefExpr struct {
	base
	Pos    Position
	EndPos Position
	Name   string
	Typ    Type
}

// BypassDefExpr declares a bypass network primitive.
type BypassDefExpr struct {
	base
	Pos    Position
	EndPos Position
	Name   string
	Typ    Type
}

// RegRefExpr reads the register a let-bound name statically resolves to.
type RegRefExpr struct {
	base
	Pos    Position
	EndPos Position
	Target Expr
	Typ    Type
}

// ArrayRefExpr reads (or is used as the lvalue of a write to) an array
// element.
type ArrayRefExpr struct {
	base
	Pos    Position
	EndPos Position
	Array  Expr
	Index  Expr
	Typ    Type
}

// PortReadExpr reads the current value presented on Port.
type PortReadExpr struct {
	base
	Pos    Position
	EndPos Position
	Port   Expr
	Typ    Type
}

// BypassPresentExpr, BypassReadyExpr and BypassReadExpr query and read a
// bypass network entry named by Target.
type BypassPresentExpr struct {
	base
	Pos    Position
	EndPos Position
	Target Expr
	Typ    Type
}

type BypassReadyExpr struct {
	base
	Pos    Position
	EndPos Position
	Target Expr
	Typ    Type
}

type BypassReadExpr struct {
	base
	Pos    Position
	EndPos Position
	Target Expr
	Typ    Type
}

// StmtBlockExpr is a block used in expression position; its last
// statement must be an ExprStmt whose value becomes the block's value.
type StmtBlockExpr struct {
	base
	Pos    Position
	EndPos Position
	Body   *Block
	Typ    Type
}

// FieldRefExpr accesses a named field of a struct-typed value.
type FieldRefExpr struct {
	base
	Pos    Position
	EndPos Position
	Target Expr
	Field  string
	Typ    Type
}

// CastExpr reinterprets Value at a different width/signedness.
type CastExpr struct {
	base
	Pos    Position
	EndPos Position
	Value  Expr
	Typ    Type
}

func (e *ConstExpr) exprNode()         {}
func (e *VarExpr) exprNode()           {}
func (e *BinaryExpr) exprNode()        {}
func (e *UnaryExpr) exprNode()         {}
func (e *SelectExpr) exprNode()        {}
func (e *BitsliceExpr) exprNode()      {}
func (e *ConcatExpr) exprNode()        {}
func (e *RegInitExpr) exprNode()       {}
func (e *ArrayInitExpr) exprNode()     {}
func (e *PortDefExpr) exprNode()       {}
func (e *BypassDefExpr) exprNode()     {}
func (e *RegRefExpr) exprNode()        {}
func (e *ArrayRefExpr) exprNode()      {}
func (e *PortReadExpr) exprNode()      {}
func (e *BypassPresentExpr) exprNode() {}
func (e *BypassReadyExpr) exprNode()   {}
func (e *BypassReadExpr) exprNode()    {}
func (e *StmtBlockExpr) exprNode()     {}
func (e *FieldRefExpr) exprNode()      {}
func (e *CastExpr) exprNode()          {}

func (e *ConstExpr) ExprType() Type         { return e.Typ }
func (e *VarExpr) ExprType() Type           { return e.Typ }
func (e *BinaryExpr) ExprType() Type        { return e.Typ }
func (e *UnaryExpr) ExprType() Type         { return e.Typ }
func (e *SelectExpr) ExprType() Type        { return e.Typ }
func (e *BitsliceExpr) ExprType() Type      { return e.Typ }
func (e *ConcatExpr) ExprType() Type        { return e.Typ }
func (e *RegInitExpr) ExprType() Type       { return e.Typ }
func (e *ArrayInitExpr) ExprType() Type     { return e.Typ }
func (e *PortDefExpr) ExprType() Type       { return e.Typ }
func (e *BypassDefExpr) ExprType() Type     { return e.Typ }
func (e *RegRefExpr) ExprType() Type        { return e.Typ }
func (e *ArrayRefExpr) ExprType() Type      { return e.Typ }
func (e *PortReadExpr) ExprType() Type      { return e.Typ }
func (e *BypassPresentExpr) ExprType() Type { return e.Typ }
func (e *BypassReadyExpr) ExprType() Type   { return e.Typ }
func (e *BypassReadExpr) ExprType() Type    { return e.Typ }
func (e *StmtBlockExpr) ExprType() Type     { return e.Typ }
func (e *FieldRefExpr) ExprType() Type      { return e.Typ }
func (e *CastExpr) ExprType() Type          { return e.Typ }
