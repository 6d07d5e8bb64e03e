package color

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisable(t *testing.T) {
	Disable()
	require.Equal(t, "hello", ColorPrompt("hello"))
	require.Equal(t, "assistant", ColorSender("assistant"))
	require.Equal(t, "user", ColorSender("user"))
}
