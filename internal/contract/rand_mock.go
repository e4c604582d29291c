package contract

import "github.com/stretchr/testify/mock"

// MockRandSource is a mock implementation of RandSource for testing.
type MockRandSource struct {
	mock.Mock
}

var _ RandSource = &MockRandSource{} // Compile-time check

// IntN implements the RandSource interface.
func (m *MockRandSource) IntN(n int) int {
	args := m.Called(n)
	return args.Int(0)
}
