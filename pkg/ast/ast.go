package ast

type NodeType string

const (
	NodeProgram          NodeType = "Program"
	NodeLetStatement     NodeType = "LetStatement"
	NodeExitStatement    NodeType = "ExitStatement"
	NodeIdentifier       NodeType = "Identifier"
	NodeIntegerLiteral   NodeType = "IntegerLiteral"
	NodeBinaryExpression NodeType = "BinaryExpression"
)

// Position is a 1-based line/column location in the source.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span covers the source text a node was parsed from.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type Node interface {
	NodeType() NodeType
	Span() Span
	SetSpan(Span)
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	Loc  Span     `json:"span"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.Loc }
func (n *nodeImpl) SetSpan(s Span)    { n.Loc = s }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Program is the root node: an ordered sequence of statements executed top to
// bottom.
type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// LetStatement binds Name to the value of Value, with a declared type the
// checker verifies against the initializer.
type LetStatement struct {
	nodeImpl
	statementMarker

	Name         *Identifier `json:"name"`
	DeclaredType *Identifier `json:"declaredType"`
	Value        Expression  `json:"value"`
}

func NewLetStatement(name *Identifier, declaredType *Identifier, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Name: name, DeclaredType: declaredType, Value: value}
}

// ExitStatement terminates the program with the value of its argument.
// Statements after an executed exit never run.
type ExitStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value"`
}

func NewExitStatement(value Expression) *ExitStatement {
	return &ExitStatement{nodeImpl: newNodeImpl(NodeExitStatement), Value: value}
}

// Identifier names a binding. As a statement component it is a declaration
// site; as an expression it reads a previously bound value.
type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// IntegerLiteral holds a decimal integer. ghl integers are fixed-width
// 64-bit signed values.
type IntegerLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type Operator string

const (
	OperatorPlus  Operator = "+"
	OperatorMinus Operator = "-"
	OperatorStar  Operator = "*"
)

// BinaryExpression applies Operator to Left and Right. All three ghl
// operators share one precedence level and group from the left.
type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator Operator   `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator Operator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}
