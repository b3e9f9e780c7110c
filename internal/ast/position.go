package ast

// Position tracks location information for error reporting and tooling.
// Carried unchanged from node to node; codegen never mutates it, only
// copies it onto the IR statements it emits.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// NodeID is a unique identifier assigned to each AST node by the producer
// of the tree (the front end). Codegen never assigns IDs; it only reads
// them through Metadata when present.
type NodeID uint32

// Metadata is an optional side-table for parent/source-text bookkeeping.
// Codegen does not consult it; it exists so a downstream pass (a
// pretty-printer, a location-aware diagnostic tool) can rely on parentage
// and original text without codegen having to know about either.
type Metadata struct {
	NodeID     NodeID
	ParentID   NodeID
	SourceText string
}

// Node is satisfied by every AST statement and expression type.
type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
	GetMetadata() *Metadata
	SetMetadata(*Metadata)
}

// base is embedded by every concrete node to provide Metadata storage
// without repeating the same two methods on every type.
type base struct {
	metadata *Metadata
}

func (b *base) GetMetadata() *Metadata    { return b.metadata }
func (b *base) SetMetadata(m *Metadata)   { b.metadata = m }
