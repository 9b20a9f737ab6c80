package ast

// Visitor dispatches over every concrete AST node type. Implementations
// drive traversal themselves from within each Visit method.
type Visitor interface {
	VisitProgram(node *Program)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitAssignStatement(node *AssignStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitBlockStatement(node *BlockStatement)

	VisitIdentifier(node *Identifier)
	VisitIntegerLiteral(node *IntegerLiteral)
	VisitFloatLiteral(node *FloatLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNilLiteral(node *NilLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitBytesLiteral(node *BytesLiteral)

	VisitPrefixExpression(node *PrefixExpression)
	VisitInfixExpression(node *InfixExpression)
	VisitIfExpression(node *IfExpression)
	VisitForExpression(node *ForExpression)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitCallExpression(node *CallExpression)
	VisitIndexExpression(node *IndexExpression)

	VisitListLiteral(node *ListLiteral)
	VisitTupleLiteral(node *TupleLiteral)
	VisitSetLiteral(node *SetLiteral)
	VisitDictLiteral(node *DictLiteral)
	VisitDictEntry(node *DictEntry)
	VisitSpreadExpression(node *SpreadExpression)
	VisitDoubleSpreadExpression(node *DoubleSpreadExpression)

	VisitListComprehension(node *ListComprehension)
	VisitSetComprehension(node *SetComprehension)
	VisitDictComprehension(node *DictComprehension)
	VisitGeneratorExpression(node *GeneratorExpression)
}
