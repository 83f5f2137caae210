// Package mock provides a recording Executor for tests.
package mock

import (
	"context"
	"sync"
)

// Call is one recorded invocation
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Executor records every call and delegates to ExecuteFunc when set
type Executor struct {
	ExecuteFunc func(ctx context.Context, name string, args ...string) (string, error)

	mu    sync.Mutex
	calls []Call
}

func (m *Executor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return m.ExecuteInDir(ctx, "", name, args...)
}

func (m *Executor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Dir: dir, Name: name, Args: append([]string(nil), args...)})
	m.mu.Unlock()

	if m.ExecuteFunc == nil {
		return "", nil
	}
	return m.ExecuteFunc(ctx, name, args...)
}

// Calls returns a copy of the recorded calls
func (m *Executor) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}
