package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/backstop/pkg/backstop"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `profiles:
  default:
    attempts: 5
    first_delay: 200ms
    max_delay: 10s
    factor: 1.5
    jitter: 0.2

  aggressive:
    attempts: 10
    first_delay: 50ms
`)

	f, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, f)

	p, err := f.Profile("default")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Attempts)
	assert.Equal(t, "200ms", p.FirstDelay)
	assert.Equal(t, "10s", p.MaxDelay)
	assert.Equal(t, 1.5, p.Factor)
	assert.Equal(t, 0.2, p.Jitter)
	assert.True(t, p.JitterSet)

	p, err = f.Profile("aggressive")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Attempts)
	assert.False(t, p.JitterSet)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "profiles: [not a map")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestProfile_Unknown(t *testing.T) {
	dir := writeConfig(t, "profiles: {}\n")
	f, err := Load(dir)
	require.NoError(t, err)

	_, err = f.Profile("nope")
	assert.ErrorContains(t, err, `unknown profile "nope"`)
	assert.True(t, errors.Is(err, backstop.ErrUnknownProfile))
}

func TestProfile_Backoff(t *testing.T) {
	p := Profile{
		Attempts:   4,
		FirstDelay: "250ms",
		MaxDelay:   "5s",
		Factor:     3,
		Jitter:     0,
		JitterSet:  true,
	}

	spec, err := p.Backoff()
	require.NoError(t, err)
	assert.Equal(t, 4, spec.Count())
	assert.Equal(t, 250*time.Millisecond, spec.FirstDelay())
	assert.Equal(t, 5*time.Second, spec.MaxDelay())
	assert.Equal(t, 3.0, spec.Factor())
	assert.Equal(t, 0.0, spec.Jitter())

	// jitter: 0 was explicit, so the schedule is deterministic.
	assert.Equal(t, []time.Duration{
		250 * time.Millisecond,
		750 * time.Millisecond,
		2250 * time.Millisecond,
		5 * time.Second,
	}, spec.Delays())
}

func TestProfile_Backoff_Defaults(t *testing.T) {
	spec, err := Profile{}.Backoff()
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Count())
	assert.Equal(t, 100*time.Millisecond, spec.FirstDelay())
}

func TestProfile_Backoff_BadDuration(t *testing.T) {
	_, err := Profile{FirstDelay: "soon"}.Backoff()
	assert.ErrorContains(t, err, "first_delay")
}
