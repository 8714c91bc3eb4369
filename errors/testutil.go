package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertCode checks the code carried by err. Errors from outside this
// package carry no code, they only pass when the default is expected.
func AssertCode(t *testing.T, err error, code int) {
	t.Helper()

	switch err := err.(type) {
	case Error:
		assert.Equal(t, code, err.Code(), "wrong error code")
	default:
		if code != DefaultCode {
			assert.Fail(t, fmt.Sprintf("error carries no code, expected %d", code))
		}
	}
}
