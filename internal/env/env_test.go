package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	t.Setenv("ENV_TEST_STR", "hello")
	assert.Equal(t, "hello", GetString("ENV_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetString("ENV_TEST_STR_MISSING", "fallback"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("ENV_TEST_INT", "42")
	assert.Equal(t, 42, GetInt("ENV_TEST_INT", 7))
	assert.Equal(t, 7, GetInt("ENV_TEST_INT_MISSING", 7))

	t.Setenv("ENV_TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, GetInt("ENV_TEST_INT_BAD", 7))
}

func TestGetBool(t *testing.T) {
	truthy := []string{"true", "TRUE", "True", "1", "yes", "YES", " yes "}
	for _, v := range truthy {
		t.Setenv("ENV_TEST_BOOL", v)
		assert.True(t, GetBool("ENV_TEST_BOOL", false), "value %q", v)
	}

	falsy := []string{"false", "0", "no", "on", "y", "enabled", ""}
	for _, v := range falsy {
		t.Setenv("ENV_TEST_BOOL", v)
		assert.False(t, GetBool("ENV_TEST_BOOL", true), "value %q", v)
	}

	assert.True(t, GetBool("ENV_TEST_BOOL_MISSING", true))
	assert.False(t, GetBool("ENV_TEST_BOOL_MISSING", false))
}
