package lox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormat(t *testing.T) {
	t.Parallel()

	err := &Error{Line: 3, Message: "Unexpected character"}
	assert.Equal(t, "[line 3] Error: Unexpected character", err.Error())
}
