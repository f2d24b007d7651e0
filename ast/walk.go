package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *BlockStmt:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *Param:
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *FnDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *WhileStmt:
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *LetStmt:
		if n.Param != nil {
			Walk(n.Param, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *AssignStmt:
		if n.Target != nil {
			Walk(n.Target, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ExprStmt:
		if n.Expr != nil {
			Walk(n.Expr, fn)
		}

	case *PrefixExpr:
		if n.Operand != nil {
			Walk(n.Operand, fn)
		}

	case *InfixExpr:
		if n.Left != nil {
			Walk(n.Left, fn)
		}
		if n.Right != nil {
			Walk(n.Right, fn)
		}

	case *FieldExpr:
		if n.Target != nil {
			Walk(n.Target, fn)
		}
		if n.Field != nil {
			Walk(n.Field, fn)
		}

	case *IndexExpr:
		if n.Target != nil {
			Walk(n.Target, fn)
		}
		if n.Index != nil {
			Walk(n.Index, fn)
		}

	case *CallExpr:
		if n.Callee != nil {
			Walk(n.Callee, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *GroupedExpr:
		if n.Inner != nil {
			Walk(n.Inner, fn)
		}

	case *IfExpr:
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Then != nil {
			Walk(n.Then, fn)
		}
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *BreakStmt, *ContinueStmt, *Ident, *IntegerLit, *FloatLit, *StringLit, *BoolLit:
		// Leaf nodes.
	}
}
