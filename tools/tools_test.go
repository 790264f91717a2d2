package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordEncryptCompare(t *testing.T) {
	hashed, err := PasswordEncrypt("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)

	require.True(t, PasswordCompare("secret123", hashed))
	require.False(t, PasswordCompare("wrong", hashed))
}
