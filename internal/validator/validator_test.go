package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLogin(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidLogin("alice"))
	assert.True(t, IsValidLogin("alice_99.dev"))
	assert.False(t, IsValidLogin("ab"))
	assert.False(t, IsValidLogin("bad login"))
	assert.False(t, IsValidLogin(""))
}

func TestIsValidPassword(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPassword("longenough"))
	assert.False(t, IsValidPassword("short"))
}

func TestIsValidName(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidName("Alice Liddell"))
	assert.False(t, IsValidName(""))
}
