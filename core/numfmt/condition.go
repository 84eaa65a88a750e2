package numfmt

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// conditions caches compiled section conditions, keyed by condition text.
var conditions sync.Map // string → *vm.Program

// conditionHolds evaluates a section condition such as ">=100" for value v.
// Conditions which cannot be compiled never hold.
func conditionHolds(cond string, v float64) bool {
	env := map[string]any{"value": v}
	program, err := compileCondition(cond, env)
	if err != nil {
		tracer().Debugf("condition [%s] ignored: %v", cond, err)
		return false
	}
	result, err := expr.Run(program, env)
	if err != nil {
		tracer().Debugf("condition [%s] failed: %v", cond, err)
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

func compileCondition(cond string, env map[string]any) (*vm.Program, error) {
	if cached, ok := conditions.Load(cond); ok {
		return cached.(*vm.Program), nil
	}
	code, err := conditionExpr(cond)
	if err != nil {
		return nil, err
	}
	program, err := expr.Compile(code, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, err
	}
	conditions.Store(cond, program)
	return program, nil
}

// conditionExpr rewrites a format condition into an expression over 'value'.
func conditionExpr(cond string) (string, error) {
	cond = strings.TrimSpace(cond)
	n := 0
	for n < len(cond) && strings.IndexByte("<>=", cond[n]) >= 0 {
		n++
	}
	op, operand := cond[:n], strings.TrimSpace(cond[n:])
	switch op {
	case "=":
		op = "=="
	case "<>":
		op = "!="
	case "<", "<=", ">", ">=":
	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
	x, err := strconv.ParseFloat(operand, 64)
	if err != nil {
		return "", fmt.Errorf("operand %q is not a number", operand)
	}
	return "value " + op + " " + strconv.FormatFloat(x, 'f', -1, 64), nil
}
