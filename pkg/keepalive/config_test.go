package keepalive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unitboard/unitboard/pkg/keepalive"
)

func clearSupabaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SUPABASE_URL", "SUPABASE_KEY", "SUPABASE_EMAIL", "SUPABASE_PASSWORD"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearSupabaseEnv(t)
	t.Setenv("SUPABASE_URL", "https://test.supabase.co")
	t.Setenv("SUPABASE_KEY", "test-key-123")
	t.Setenv("SUPABASE_EMAIL", "test@example.com")
	t.Setenv("SUPABASE_PASSWORD", "test-password")

	cfg, err := keepalive.LoadConfig("")

	require.NoError(t, err)
	require.Equal(t, "https://test.supabase.co", cfg.URL)
	require.Equal(t, "test-key-123", cfg.Key)
	require.Equal(t, "test@example.com", cfg.Email)
	require.Equal(t, "test-password", cfg.Password)
	require.True(t, cfg.HasAuthCredentials())
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	clearSupabaseEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"SUPABASE_URL=https://file.supabase.co\nSUPABASE_KEY=file-key-456\n",
	), 0o600))

	cfg, err := keepalive.LoadConfig(envFile)

	require.NoError(t, err)
	require.Equal(t, "https://file.supabase.co", cfg.URL)
	require.Equal(t, "file-key-456", cfg.Key)
	require.False(t, cfg.HasAuthCredentials())
}

func TestLoadConfigFailsWhenURLMissing(t *testing.T) {
	clearSupabaseEnv(t)
	t.Setenv("SUPABASE_KEY", "key")

	_, err := keepalive.LoadConfig("")

	require.Error(t, err)
	require.Contains(t, err.Error(), "SUPABASE_URL")
}

func TestLoadConfigFailsWhenKeyMissing(t *testing.T) {
	clearSupabaseEnv(t)
	t.Setenv("SUPABASE_URL", "https://test.supabase.co")

	_, err := keepalive.LoadConfig("")

	require.Error(t, err)
	require.Contains(t, err.Error(), "SUPABASE_KEY")
}

func TestLoadConfigRejectsHalfAuthPair(t *testing.T) {
	clearSupabaseEnv(t)
	t.Setenv("SUPABASE_URL", "https://test.supabase.co")
	t.Setenv("SUPABASE_KEY", "key")
	t.Setenv("SUPABASE_EMAIL", "test@example.com")

	_, err := keepalive.LoadConfig("")

	require.Error(t, err)
	require.Contains(t, err.Error(), "SUPABASE_PASSWORD")
}

func TestLoadConfigFailsWhenEnvFileMissing(t *testing.T) {
	clearSupabaseEnv(t)

	_, err := keepalive.LoadConfig(filepath.Join(t.TempDir(), "nope.env"))

	require.Error(t, err)
}
