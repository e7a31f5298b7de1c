// Package mock provides a fake testing.TB for exercising assertion helpers.
package mock

import "fmt"

// TBMock exposes enough testing.TB methods for assertions.
type TBMock struct {
	ErrorFound   bool
	ErrMsg       string
	FatalCalled  bool
	FatalMessage string
}

// Errorf writes testing logs to ErrMsg.
func (tb *TBMock) Errorf(format string, args ...interface{}) {
	tb.ErrorFound = true
	tb.ErrMsg = fmt.Sprintf(format, args...)
}

// Fatalf writes testing logs to ErrMsg and sets FatalCalled.
func (tb *TBMock) Fatalf(format string, args ...interface{}) {
	tb.FatalCalled = true
	tb.Errorf(format, args...)
}
