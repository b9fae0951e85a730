package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// UnsetEnv removes environment variables during the test and restores them after it.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}
