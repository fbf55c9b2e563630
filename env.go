package lispy

import (
	"errors"

	"github.com/xiam/lispy/ast"
)

var (
	errNoSuchKey = errors.New("no such key")
	errReleased  = errors.New("value was destroyed")
)

// Env binds names to objects. Evaluation does not use it yet.
type Env struct {
	parent *Env

	n map[string]ast.Object
}

// NewEnv creates an environment whose lookups fall back to parent.
func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		n:      make(map[string]ast.Object),
	}
}

// Set binds name to value. The environment owns value from now on.
func (env *Env) Set(name string, value ast.Object) error {
	if value == nil {
		return ast.ErrInvalidArgument
	}
	if ast.Released(value) {
		return errReleased
	}
	if old, ok := env.n[name]; ok && old != value {
		ast.Destroy(old)
	}
	env.n[name] = value
	return nil
}

// Get returns the value bound to name in env or any of its parents.
func (env *Env) Get(name string) (ast.Object, error) {
	if value, ok := env.n[name]; ok {
		return value, nil
	}
	if env.parent != nil {
		return env.parent.Get(name)
	}
	return nil, errNoSuchKey
}

// Close destroys every value bound in env. Parents are left untouched.
func (env *Env) Close() {
	for name, value := range env.n {
		ast.Destroy(value)
		delete(env.n, name)
	}
}
