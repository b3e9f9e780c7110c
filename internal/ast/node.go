package ast

func (n *Program) NodePos() Position    { return n.Pos }
func (n *Program) NodeEndPos() Position { return n.EndPos }
func (*Program) NodeType() NodeType     { return ILLEGAL }

func (n *Function) NodePos() Position    { return n.Pos }
func (n *Function) NodeEndPos() Position { return n.EndPos }
func (*Function) NodeType() NodeType     { return ENTRY_FUNCTION }

func (n *Block) NodePos() Position    { return n.Pos }
func (n *Block) NodeEndPos() Position { return n.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK_STMT }

func (n *LetStmt) NodePos() Position    { return n.Pos }
func (n *LetStmt) NodeEndPos() Position { return n.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (n *AssignStmt) NodePos() Position    { return n.Pos }
func (n *AssignStmt) NodeEndPos() Position { return n.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (n *IfStmt) NodePos() Position    { return n.Pos }
func (n *IfStmt) NodeEndPos() Position { return n.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (n *WhileStmt) NodePos() Position    { return n.Pos }
func (n *WhileStmt) NodeEndPos() Position { return n.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (n *BreakStmt) NodePos() Position    { return n.Pos }
func (n *BreakStmt) NodeEndPos() Position { return n.EndPos }
func (*BreakStmt) NodeType() NodeType     { return BREAK_STMT }

func (n *ContinueStmt) NodePos() Position    { return n.Pos }
func (n *ContinueStmt) NodeEndPos() Position { return n.EndPos }
func (*ContinueStmt) NodeType() NodeType     { return CONTINUE_STMT }

func (n *WriteStmt) NodePos() Position    { return n.Pos }
func (n *WriteStmt) NodeEndPos() Position { return n.EndPos }
func (*WriteStmt) NodeType() NodeType     { return WRITE_STMT }

func (n *SpawnStmt) NodePos() Position    { return n.Pos }
func (n *SpawnStmt) NodeEndPos() Position { return n.EndPos }
func (*SpawnStmt) NodeType() NodeType     { return SPAWN_STMT }

func (n *KillStmt) NodePos() Position    { return n.Pos }
func (n *KillStmt) NodeEndPos() Position { return n.EndPos }
func (*KillStmt) NodeType() NodeType     { return KILL_STMT }

func (n *KillIfStmt) NodePos() Position    { return n.Pos }
func (n *KillIfStmt) NodeEndPos() Position { return n.EndPos }
func (*KillIfStmt) NodeType() NodeType     { return KILLIF_STMT }

func (n *KillYoungerStmt) NodePos() Position    { return n.Pos }
func (n *KillYoungerStmt) NodeEndPos() Position { return n.EndPos }
func (*KillYoungerStmt) NodeType() NodeType     { return KILLYOUNGER_STMT }

func (n *OnKillYoungerStmt) NodePos() Position    { return n.Pos }
func (n *OnKillYoungerStmt) NodeEndPos() Position { return n.EndPos }
func (*OnKillYoungerStmt) NodeType() NodeType     { return ONKILLYOUNGER_STMT }

func (n *TimingStmt) NodePos() Position    { return n.Pos }
func (n *TimingStmt) NodeEndPos() Position { return n.EndPos }
func (*TimingStmt) NodeType() NodeType     { return TIMING_STMT }

func (n *StageStmt) NodePos() Position    { return n.Pos }
func (n *StageStmt) NodeEndPos() Position { return n.EndPos }
func (*StageStmt) NodeType() NodeType     { return STAGE_STMT }

func (n *BypassStartStmt) NodePos() Position    { return n.Pos }
func (n *BypassStartStmt) NodeEndPos() Position { return n.EndPos }
func (*BypassStartStmt) NodeType() NodeType     { return BYPASS_START_STMT }

func (n *BypassEndStmt) NodePos() Position    { return n.Pos }
func (n *BypassEndStmt) NodeEndPos() Position { return n.EndPos }
func (*BypassEndStmt) NodeType() NodeType     { return BYPASS_END_STMT }

func (n *BypassWriteStmt) NodePos() Position    { return n.Pos }
func (n *BypassWriteStmt) NodeEndPos() Position { return n.EndPos }
func (*BypassWriteStmt) NodeType() NodeType     { return BYPASS_WRITE_STMT }

func (n *NestedEntryFuncStmt) NodePos() Position    { return n.Pos }
func (n *NestedEntryFuncStmt) NodeEndPos() Position { return n.EndPos }
func (*NestedEntryFuncStmt) NodeType() NodeType     { return NESTED_ENTRY_FUNC_STMT }

func (n *PragmaStmt) NodePos() Position    { return n.Pos }
func (n *PragmaStmt) NodeEndPos() Position { return n.EndPos }
func (*PragmaStmt) NodeType() NodeType     { return PRAGMA_STMT }

func (n *ExprStmt) NodePos() Position    { return n.Pos }
func (n *ExprStmt) NodeEndPos() Position { return n.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (n *ConstExpr) NodePos() Position    { return n.Pos }
func (n *ConstExpr) NodeEndPos() Position { return n.EndPos }
func (*ConstExpr) NodeType() NodeType     { return CONST_EXPR }

func (n *VarExpr) NodePos() Position    { return n.Pos }
func (n *VarExpr) NodeEndPos() Position { return n.EndPos }
func (*VarExpr) NodeType() NodeType     { return VAR_EXPR }

func (n *BinaryExpr) NodePos() Position    { return n.Pos }
func (n *BinaryExpr) NodeEndPos() Position { return n.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (n *UnaryExpr) NodePos() Position    { return n.Pos }
func (n *UnaryExpr) NodeEndPos() Position { return n.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (n *SelectExpr) NodePos() Position    { return n.Pos }
func (n *SelectExpr) NodeEndPos() Position { return n.EndPos }
func (*SelectExpr) NodeType() NodeType     { return SELECT_EXPR }

func (n *BitsliceExpr) NodePos() Position    { return n.Pos }
func (n *BitsliceExpr) NodeEndPos() Position { return n.EndPos }
func (*BitsliceExpr) NodeType() NodeType     { return BITSLICE_EXPR }

func (n *ConcatExpr) NodePos() Position    { return n.Pos }
func (n *ConcatExpr) NodeEndPos() Position { return n.EndPos }
func (*ConcatExpr) NodeType() NodeType     { return CONCAT_EXPR }

func (n *RegInitExpr) NodePos() Position    { return n.Pos }
func (n *RegInitExpr) NodeEndPos() Position { return n.EndPos }
func (*RegInitExpr) NodeType() NodeType     { return REG_INIT_EXPR }

func (n *ArrayInitExpr) NodePos() Position    { return n.Pos }
func (n *ArrayInitExpr) NodeEndPos() Position { return n.EndPos }
func (*ArrayInitExpr) NodeType() NodeType     { return ARRAY_INIT_EXPR }

func (n *PortDefExpr) NodePos() Position    { return n.Pos }
func (n *PortDefExpr) NodeEndPos() Position { return n.EndPos }
func (*PortDefExpr) NodeType() NodeType     { return PORT_DEF_EXPR }

func (n *BypassDefExpr) NodePos() Position    { return n.Pos }
func (n *BypassDefExpr) NodeEndPos() Position { return n.EndPos }
func (*BypassDefExpr) NodeType() NodeType     { return BYPASS_DEF_EXPR }

func (n *RegRefExpr) NodePos() Position    { return n.Pos }
func (n *RegRefExpr) NodeEndPos() Position { return n.EndPos }
func (*RegRefExpr) NodeType() NodeType     { return REG_REF_EXPR }

func (n *ArrayRefExpr) NodePos() Position    { return n.Pos }
func (n *ArrayRefExpr) NodeEndPos() Position { return n.EndPos }
func (*ArrayRefExpr) NodeType() NodeType     { return ARRAY_REF_EXPR }

func (n *PortReadExpr) NodePos() Position    { return n.Pos }
func (n *PortReadExpr) NodeEndPos() Position { return n.EndPos }
func (*PortReadExpr) NodeType() NodeType     { return PORT_READ_EXPR }

func (n *BypassPresentExpr) NodePos() Position    { return n.Pos }
func (n *BypassPresentExpr) NodeEndPos() Position { return n.EndPos }
func (*BypassPresentExpr) NodeType() NodeType     { return BYPASS_PRESENT_EXPR }

func (n *BypassReadyExpr) NodePos() Position    { return n.Pos }
func (n *BypassReadyExpr) NodeEndPos() Position { return n.EndPos }
func (*BypassReadyExpr) NodeType() NodeType     { return BYPASS_READY_EXPR }

func (n *BypassReadExpr) NodePos() Position    { return n.Pos }
func (n *BypassReadExpr) NodeEndPos() Position { return n.EndPos }
func (*BypassReadExpr) NodeType() NodeType     { return BYPASS_READ_EXPR }

func (n *StmtBlockExpr) NodePos() Position    { return n.Pos }
func (n *StmtBlockExpr) NodeEndPos() Position { return n.EndPos }
func (*StmtBlockExpr) NodeType() NodeType     { return STMT_BLOCK_EXPR }

func (n *FieldRefExpr) NodePos() Position    { return n.Pos }
func (n *FieldRefExpr) NodeEndPos() Position { return n.EndPos }
func (*FieldRefExpr) NodeType() NodeType     { return FIELD_REF_EXPR }

func (n *CastExpr) NodePos() Position    { return n.Pos }
func (n *CastExpr) NodeEndPos() Position { return n.EndPos }
func (*CastExpr) NodeType() NodeType     { return CAST_EXPR }
