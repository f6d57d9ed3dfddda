package checker

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/types"
)

// CheckExpression type-checks expr, optionally against an expected type
// (nil when none is known); callers thread expected through for empty
// collection literals and parameter inference per spec.md §4.3.
func (c *Checker) CheckExpression(expr ast.Expression, env *Env, expected types.Type) types.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return types.Integer{}
	case *ast.DoubleLiteral:
		return types.Double{}
	case *ast.BooleanLiteral:
		return types.Boolean{}
	case *ast.StringLiteral:
		return types.String{}
	case *ast.InterpStringLiteral:
		return c.checkInterpString(e, env)
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(e, env, expected)
	case *ast.HashLiteral:
		return c.checkHashLiteral(e, env, expected)
	case *ast.TupleLiteral:
		return c.checkTupleLiteral(e, env, expected)
	case *ast.Identifier:
		return c.checkIdentifier(e, env)
	case *ast.PrefixExpr:
		return c.checkPrefixExpr(e, env)
	case *ast.InfixExpr:
		return c.checkInfixExpr(e, env)
	case *ast.AssignExpr:
		return c.checkAssignExpr(e, env)
	case *ast.CallExpr:
		return c.checkCallExpr(e, env, expected)
	case *ast.IndexExpr:
		return c.checkIndexExpr(e, env)
	case *ast.MemberExpr:
		return c.checkMemberExpr(e, env)
	case *ast.IfExpr:
		return c.checkIfExpr(e, env, expected)
	case *ast.MatchExpr:
		return c.checkMatchExpr(e, env, expected)
	case *ast.WhenExpr:
		return c.checkWhenExpr(e, env, expected)
	case *ast.TryExpr:
		return c.checkTryExpr(e, env)
	case *ast.FunctionLiteral:
		return c.checkFunctionLiteral(e, env, expected)
	case *ast.BlockExpr:
		return c.checkBlockExpr(e, env, expected)
	default:
		return c.errorAt(expr.Tok(), expr, "unknown expression kind %T", expr)
	}
}

func (c *Checker) checkInterpString(e *ast.InterpStringLiteral, env *Env) types.Type {
	for _, seg := range e.Segments {
		if seg.Expr != nil {
			t := c.CheckExpression(seg.Expr, env, nil)
			if _, bad := isError(t); bad {
				return t
			}
		}
	}
	return types.String{}
}

func (c *Checker) checkArrayLiteral(e *ast.ArrayLiteral, env *Env, expected types.Type) types.Type {
	if len(e.Elements) == 0 {
		if arr, ok := expected.(*types.Array); ok {
			return arr
		}
		return c.errorAt(e.Token, e, "cannot infer element type of empty array literal without an expected type")
	}
	var elemExpected types.Type
	if arr, ok := expected.(*types.Array); ok {
		elemExpected = arr.Elem
	}
	first := c.CheckExpression(e.Elements[0], env, elemExpected)
	if _, bad := isError(first); bad {
		return first
	}
	for _, el := range e.Elements[1:] {
		t := c.CheckExpression(el, env, first)
		if _, bad := isError(t); bad {
			return t
		}
		sigma := types.Subst{}
		if _, ok := types.Unify(first, t, sigma); !ok {
			return c.errorAt(el.Tok(), el, "array elements must share one type: found %s and %s", first, t)
		}
	}
	return &types.Array{Elem: first}
}

func (c *Checker) checkHashLiteral(e *ast.HashLiteral, env *Env, expected types.Type) types.Type {
	if len(e.Keys) == 0 {
		if h, ok := expected.(*types.Hash); ok {
			return h
		}
		return c.errorAt(e.Token, e, "cannot infer key/value types of empty hash literal without an expected type")
	}
	var keyExp, valExp types.Type
	if h, ok := expected.(*types.Hash); ok {
		keyExp, valExp = h.Key, h.Value
	}
	keyType := c.CheckExpression(e.Keys[0], env, keyExp)
	valType := c.CheckExpression(e.Values[0], env, valExp)
	if _, bad := isError(keyType); bad {
		return keyType
	}
	if _, bad := isError(valType); bad {
		return valType
	}
	for i := 1; i < len(e.Keys); i++ {
		kt := c.CheckExpression(e.Keys[i], env, keyType)
		vt := c.CheckExpression(e.Values[i], env, valType)
		sigma := types.Subst{}
		if _, ok := types.Unify(keyType, kt, sigma); !ok {
			return c.errorAt(e.Keys[i].Tok(), e.Keys[i], "hash keys must share one type: found %s and %s", keyType, kt)
		}
		sigma = types.Subst{}
		if _, ok := types.Unify(valType, vt, sigma); !ok {
			return c.errorAt(e.Values[i].Tok(), e.Values[i], "hash values must share one type: found %s and %s", valType, vt)
		}
	}
	return &types.Hash{Key: keyType, Value: valType}
}

func (c *Checker) checkTupleLiteral(e *ast.TupleLiteral, env *Env, expected types.Type) types.Type {
	var expectedElems []types.Type
	if tup, ok := expected.(*types.Tuple); ok && len(tup.Elements) == len(e.Elements) {
		expectedElems = tup.Elements
	}
	elems := make([]types.Type, len(e.Elements))
	for i, el := range e.Elements {
		var exp types.Type
		if expectedElems != nil {
			exp = expectedElems[i]
		}
		t := c.CheckExpression(el, env, exp)
		if _, bad := isError(t); bad {
			return t
		}
		elems[i] = t
	}
	return &types.Tuple{Elements: elems}
}

// checkIdentifier resolves through the constructor table first, then the
// ordinary binding store, per spec.md §4.3.
func (c *Checker) checkIdentifier(e *ast.Identifier, env *Env) types.Type {
	if t, ok := env.LookupConstructor(e.Name); ok {
		return instantiate(t, nil)
	}
	if t, ok := env.Lookup(e.Name); ok {
		return t
	}
	return c.errorAt(e.Token, e, "undefined name %q", e.Name)
}

func (c *Checker) checkPrefixExpr(e *ast.PrefixExpr, env *Env) types.Type {
	right := c.CheckExpression(e.Right, env, nil)
	if _, bad := isError(right); bad {
		return right
	}
	switch e.Operator {
	case "-":
		if !types.IsNumeric(right) {
			return c.errorAt(e.Token, e, "unary - requires a numeric operand, got %s", right)
		}
		return right
	case "!":
		if _, ok := right.(types.Boolean); !ok {
			return c.errorAt(e.Token, e, "unary ! requires a Boolean operand, got %s", right)
		}
		return types.Boolean{}
	default:
		return c.errorAt(e.Token, e, "unknown prefix operator %q", e.Operator)
	}
}

func (c *Checker) checkInfixExpr(e *ast.InfixExpr, env *Env) types.Type {
	left := c.CheckExpression(e.Left, env, nil)
	if _, bad := isError(left); bad {
		return left
	}
	right := c.CheckExpression(e.Right, env, nil)
	if _, bad := isError(right); bad {
		return right
	}

	switch e.Operator {
	case "+":
		if _, lok := left.(types.String); lok {
			if _, rok := right.(types.String); rok {
				return types.String{}
			}
			return c.errorAt(e.Token, e, "cannot concatenate String with %s", right)
		}
		return c.checkArithmetic(e, left, right)
	case "-", "*", "/":
		return c.checkArithmetic(e, left, right)
	case "%":
		if !isInteger(left) || !isInteger(right) {
			return c.errorAt(e.Token, e, "%% requires Integer operands, got %s and %s", left, right)
		}
		return types.Integer{}
	case "==", "!=":
		return c.checkEquality(e, left, right)
	case "<", ">", "<=", ">=":
		if !types.IsNumeric(left) || !types.IsNumeric(right) {
			return c.errorAt(e.Token, e, "comparison requires numeric operands, got %s and %s", left, right)
		}
		return types.Boolean{}
	case "&&", "||":
		if _, lok := left.(types.Boolean); !lok {
			return c.errorAt(e.Token, e, "%s requires Boolean operands, got %s", e.Operator, left)
		}
		if _, rok := right.(types.Boolean); !rok {
			return c.errorAt(e.Token, e, "%s requires Boolean operands, got %s", e.Operator, right)
		}
		return types.Boolean{}
	default:
		return c.errorAt(e.Token, e, "unknown infix operator %q", e.Operator)
	}
}

func isInteger(t types.Type) bool {
	_, ok := t.(types.Integer)
	return ok
}

func (c *Checker) checkArithmetic(e *ast.InfixExpr, left, right types.Type) types.Type {
	if !types.IsNumeric(left) || !types.IsNumeric(right) {
		return c.errorAt(e.Token, e, "%s requires numeric operands, got %s and %s", e.Operator, left, right)
	}
	if isInteger(left) && isInteger(right) {
		return types.Integer{}
	}
	return types.Double{}
}

func (c *Checker) checkEquality(e *ast.InfixExpr, left, right types.Type) types.Type {
	if _, lnull := left.(types.Null); lnull {
		return types.Boolean{}
	}
	if _, rnull := right.(types.Null); rnull {
		return types.Boolean{}
	}
	sigma := types.Subst{}
	if _, ok := types.Unify(left, right, sigma); !ok {
		return c.errorAt(e.Token, e, "cannot compare %s with %s", left, right)
	}
	return types.Boolean{}
}

// checkAssignExpr: target must be a mutable identifier or a Hash index
// expression; `+=` additionally requires numeric types.
func (c *Checker) checkAssignExpr(e *ast.AssignExpr, env *Env) types.Type {
	switch target := e.Target.(type) {
	case *ast.Identifier:
		b, ok := env.LookupBinding(target.Name)
		if !ok {
			return c.errorAt(target.Token, target, "undefined name %q", target.Name)
		}
		if !b.Mutable {
			return c.errorAt(e.Token, e, "cannot assign to immutable binding %q", target.Name)
		}
		val := c.CheckExpression(e.Value, env, b.Type)
		if _, bad := isError(val); bad {
			return val
		}
		if e.Operator == "+=" {
			if !types.IsNumeric(b.Type) {
				return c.errorAt(e.Token, e, "+= requires a numeric binding, got %s", b.Type)
			}
			if !types.IsNumeric(val) {
				return c.errorAt(e.Token, e, "+= requires a numeric value, got %s", val)
			}
			return b.Type
		}
		sigma := types.Subst{}
		if _, ok := types.Unify(b.Type, val, sigma); !ok {
			return c.errorAt(e.Token, e, "cannot assign %s to binding of type %s", val, b.Type)
		}
		return b.Type
	case *ast.IndexExpr:
		leftType := c.CheckExpression(target.Left, env, nil)
		if _, bad := isError(leftType); bad {
			return leftType
		}
		h, ok := leftType.(*types.Hash)
		if !ok {
			return c.errorAt(e.Token, e, "index-assignment target must be a Hash, got %s", leftType)
		}
		idxType := c.CheckExpression(target.Index, env, h.Key)
		sigma := types.Subst{}
		if _, ok := types.Unify(h.Key, idxType, sigma); !ok {
			return c.errorAt(target.Index.Tok(), target.Index, "hash key must be %s, got %s", h.Key, idxType)
		}
		val := c.CheckExpression(e.Value, env, h.Value)
		if _, bad := isError(val); bad {
			return val
		}
		if e.Operator == "+=" {
			if !types.IsNumeric(h.Value) || !types.IsNumeric(val) {
				return c.errorAt(e.Token, e, "+= requires numeric operands")
			}
			return h.Value
		}
		sigma = types.Subst{}
		if _, ok := types.Unify(h.Value, val, sigma); !ok {
			return c.errorAt(e.Token, e, "cannot assign %s into Hash<%s, %s>", val, h.Key, h.Value)
		}
		return h.Value
	default:
		return c.errorAt(e.Token, e, "assignment target must be an identifier or hash index expression")
	}
}

func (c *Checker) checkTryExpr(e *ast.TryExpr, env *Env) types.Type {
	operand := c.CheckExpression(e.Operand, env, nil)
	if _, bad := isError(operand); bad {
		return operand
	}
	sum, ok := operand.(*types.Sum)
	if !ok || sum.Name != "Result" {
		return c.errorAt(e.Token, e, "? requires a Result<O, E> operand, got %s", operand)
	}
	retType, ok := env.CurrentReturnType()
	if !ok {
		return c.errorAt(e.Token, e, "? used outside a function body")
	}
	retSum, ok := retType.(*types.Sum)
	if !ok || retSum.Name != "Result" {
		return c.errorAt(e.Token, e, "? requires the enclosing function to return Result<_, F>, declared return is %s", retType)
	}
	sigma := types.Subst{}
	if _, ok := types.Unify(retSum.TypeArgs[1], sum.TypeArgs[1], sigma); !ok {
		return c.errorAt(e.Token, e, "? error type %s does not unify with function's declared error type %s", sum.TypeArgs[1], retSum.TypeArgs[1])
	}
	return sum.TypeArgs[0]
}

func (c *Checker) checkIfExpr(e *ast.IfExpr, env *Env, expected types.Type) types.Type {
	cond := c.CheckExpression(e.Condition, env, nil)
	if _, bad := isError(cond); bad {
		return cond
	}
	if _, ok := cond.(types.Boolean); !ok {
		return c.errorAt(e.Condition.Tok(), e.Condition, "if condition must be Boolean, got %s", cond)
	}
	thenT := c.CheckExpression(e.Consequence, env, expected)
	if _, bad := isError(thenT); bad {
		return thenT
	}
	if e.Alternative == nil {
		return types.Null{}
	}
	elseT := c.CheckExpression(e.Alternative, env, expected)
	if _, bad := isError(elseT); bad {
		return elseT
	}
	sigma := types.Subst{}
	if _, ok := types.Unify(thenT, elseT, sigma); !ok {
		return c.errorAt(e.Token, e, "if branches have incompatible types: %s and %s", thenT, elseT)
	}
	return types.Substitute(thenT, sigma)
}

func (c *Checker) checkBlockExpr(e *ast.BlockExpr, env *Env, expected types.Type) types.Type {
	blockEnv := NewEnv(env)
	var last types.Type = types.Null{}
	for i, stmt := range e.Statements {
		var exp types.Type
		if i == len(e.Statements)-1 {
			exp = expected
		}
		if es, ok := stmt.(*ast.ExpressionStatement); ok && i == len(e.Statements)-1 {
			last = c.CheckExpression(es.Expression, blockEnv, exp)
			continue
		}
		last = c.CheckStatement(stmt, blockEnv)
		if i < len(e.Statements)-1 {
			last = types.Null{}
		}
	}
	return last
}
