package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/backstop/internal/config"
)

func newSpecCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addSpecFlags(cmd)
	for name, value := range flags {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestResolveSpec_Defaults(t *testing.T) {
	spec, err := resolveSpec(newSpecCmd(t, nil))
	require.NoError(t, err)

	assert.Equal(t, 3, spec.Count())
	assert.Equal(t, 100*time.Millisecond, spec.FirstDelay())
	assert.Equal(t, 30*time.Second, spec.MaxDelay())
	assert.Equal(t, 2.0, spec.Factor())
	assert.Equal(t, 0.1, spec.Jitter())
}

func TestResolveSpec_Flags(t *testing.T) {
	spec, err := resolveSpec(newSpecCmd(t, map[string]string{
		flagAttempts:   "7",
		flagFirstDelay: "50ms",
		flagMaxDelay:   "2s",
		flagFactor:     "3",
		flagJitter:     "0",
	}))
	require.NoError(t, err)

	assert.Equal(t, 7, spec.Count())
	assert.Equal(t, 50*time.Millisecond, spec.FirstDelay())
	assert.Equal(t, 2*time.Second, spec.MaxDelay())
	assert.Equal(t, 3.0, spec.Factor())
	assert.Equal(t, 0.0, spec.Jitter())
}

func TestResolveSpec_ProfileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	content := `profiles:
  ci:
    attempts: 9
    first_delay: 1s
    jitter: 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))

	spec, err := resolveSpec(newSpecCmd(t, map[string]string{
		flagProfile:  "ci",
		flagConfig:   dir,
		flagAttempts: "2", // explicit flag beats the profile
	}))
	require.NoError(t, err)

	assert.Equal(t, 2, spec.Count())
	assert.Equal(t, 1*time.Second, spec.FirstDelay())
	assert.Equal(t, 0.0, spec.Jitter())
}

func TestResolveSpec_UnknownProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("profiles: {}\n"), 0644))

	_, err := resolveSpec(newSpecCmd(t, map[string]string{
		flagProfile: "missing",
		flagConfig:  dir,
	}))
	assert.ErrorContains(t, err, `unknown profile "missing"`)
}

func TestResolveSpec_ProfileWithoutConfigFile(t *testing.T) {
	_, err := resolveSpec(newSpecCmd(t, map[string]string{
		flagProfile: "ci",
		flagConfig:  t.TempDir(),
	}))
	assert.ErrorContains(t, err, "not found")
}

func TestResolveSpec_InvalidJitter(t *testing.T) {
	_, err := resolveSpec(newSpecCmd(t, map[string]string{
		flagJitter: "1.5",
	}))
	assert.Error(t, err)
}
