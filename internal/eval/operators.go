package eval

import "github.com/cwbudde/logoscript/internal/runtime"

// valuesEqual defines `==`/`!=` for any pair of values. Same-kind
// comparisons compare by value; cross-kind comparisons are always
// unequal rather than an error, since the language has no implicit
// coercion between kinds.
func valuesEqual(lhs, rhs runtime.Value) bool {
	switch l := lhs.(type) {
	case runtime.Number:
		r, ok := rhs.(runtime.Number)
		return ok && l.Val == r.Val
	case runtime.Str:
		r, ok := rhs.(runtime.Str)
		return ok && l.Val == r.Val
	case runtime.Bool:
		r, ok := rhs.(runtime.Bool)
		return ok && l.Val == r.Val
	default:
		return false
	}
}

// numericOperands requires both values to be Number, returning a
// RuntimeError naming both kinds otherwise.
func numericOperands(pos runtime.Position, op string, lhs, rhs runtime.Value) (float64, float64, error) {
	l, lok := lhs.(runtime.Number)
	r, rok := rhs.(runtime.Number)
	if !lok || !rok {
		return 0, 0, runtime.NewRuntimeError(pos, "Unsupported operation for types %s and %s", lhs.Kind(), rhs.Kind())
	}
	return l.Val, r.Val, nil
}

func applyRelation(pos runtime.Position, op string, lhs, rhs runtime.Value) (runtime.Value, error) {
	switch op {
	case "==":
		return runtime.Bool{Val: valuesEqual(lhs, rhs)}, nil
	case "!=":
		return runtime.Bool{Val: !valuesEqual(lhs, rhs)}, nil
	}
	l, r, err := numericOperands(pos, op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch op {
	case "<":
		return runtime.Bool{Val: l < r}, nil
	case ">":
		return runtime.Bool{Val: l > r}, nil
	case "<=":
		return runtime.Bool{Val: l <= r}, nil
	case ">=":
		return runtime.Bool{Val: l >= r}, nil
	}
	return nil, runtime.NewRuntimeError(pos, "Unknown relational operator %s", op)
}

func applyAdd(pos runtime.Position, op string, lhs, rhs runtime.Value) (runtime.Value, error) {
	if op == "+" {
		if l, ok := lhs.(runtime.Str); ok {
			if r, ok := rhs.(runtime.Str); ok {
				return runtime.Str{Val: l.Val + r.Val}, nil
			}
		}
	}
	l, r, err := numericOperands(pos, op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	if op == "+" {
		return runtime.Number{Val: l + r}, nil
	}
	return runtime.Number{Val: l - r}, nil
}

func applyMul(pos runtime.Position, op string, lhs, rhs runtime.Value) (runtime.Value, error) {
	l, r, err := numericOperands(pos, op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	if op == "*" {
		return runtime.Number{Val: l * r}, nil
	}
	if r == 0 {
		return nil, runtime.NewRuntimeError(pos, "Division by zero")
	}
	return runtime.Number{Val: l / r}, nil
}

func applyUnary(pos runtime.Position, op string, v runtime.Value) (runtime.Value, error) {
	if op == "!" {
		return runtime.Bool{Val: !v.Truthy()}, nil
	}
	n, ok := v.(runtime.Number)
	if !ok {
		return nil, runtime.NewRuntimeError(pos, "Unsupported operation for type %s", v.Kind())
	}
	if op == "-" {
		return runtime.Number{Val: -n.Val}, nil
	}
	return n, nil
}
