package lispy

import (
	"github.com/xiam/lispy/ast"
)

// Eval evaluates obj in env. There is no evaluator yet: the object is
// returned unchanged and ownership passes back to the caller.
func Eval(obj ast.Object, env *Env) (ast.Object, error) {
	if obj == nil {
		return nil, ast.ErrInvalidArgument
	}
	return obj, nil
}
