package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unitboard/unitboard/internal/config"
)

func writeUtilitiesFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "utilities.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadUtilitiesSkipsCommentsAndBlankLines(t *testing.T) {
	path := writeUtilitiesFile(t, "a\n# comment\n\nb\n")

	utilities, err := config.LoadUtilities(path)

	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, utilities)
}

func TestLoadUtilitiesPreservesFileOrder(t *testing.T) {
	path := writeUtilitiesFile(t, "zulu\nalpha\n# middle comment\nmike\n")

	utilities, err := config.LoadUtilities(path)

	require.NoError(t, err)
	require.Equal(t, []string{"zulu", "alpha", "mike"}, utilities)
}

func TestLoadUtilitiesTrimsSurroundingWhitespace(t *testing.T) {
	path := writeUtilitiesFile(t, "  backup  \n\t metrics\n")

	utilities, err := config.LoadUtilities(path)

	require.NoError(t, err)
	require.Equal(t, []string{"backup", "metrics"}, utilities)
}

func TestLoadUtilitiesWithMissingFileYieldsEmptyList(t *testing.T) {
	utilities, err := config.LoadUtilities(filepath.Join(t.TempDir(), "nope.conf"))

	require.NoError(t, err)
	require.NotNil(t, utilities)
	require.Empty(t, utilities)
}
