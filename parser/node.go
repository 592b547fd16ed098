package parser

import (
	"esfront/ast"
)

func isSimpleAssignTarget(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func isLocalVariableAccess(expr ast.Expression) bool {
	_, ok := expr.(*ast.Identifier)
	return ok
}

func isPrivateFieldAccess(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.MemberExpression:
		_, ok := e.Property.(*ast.PrivateIdentifier)
		return ok
	case *ast.ChainExpression:
		return isPrivateFieldAccess(e.Expression)
	}
	return false
}

// isOptional reports whether expr is a `?.` link of an optional chain.
func isOptional(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.MemberExpression:
		return e.Optional
	case *ast.CallExpression:
		return e.Optional
	}
	return false
}

// orElse returns pos, or fallback when pos is unset.
func orElse(pos, fallback int) int {
	if pos != 0 {
		return pos
	}
	return fallback
}

func toNodes[T ast.Node](items []T) []ast.Node {
	out := make([]ast.Node, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
