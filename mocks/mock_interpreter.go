package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockInterpreter is a mock implementation of port.Interpreter.
type MockInterpreter struct {
	mock.Mock
}

func (m *MockInterpreter) CheckSyntax(src string) error {
	args := m.Called(src)
	return args.Error(0)
}

func (m *MockInterpreter) Execute(ctx context.Context, src string) error {
	args := m.Called(ctx, src)
	return args.Error(0)
}
