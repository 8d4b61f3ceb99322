package mocks

import "github.com/dstrickland/wordsmith-api/internal/service/auth"

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	CompareFn func(hashedPassword, password string) error

	// Err is returned when no Fn is set; nil means every comparison passes.
	Err error
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return m.Err
}
