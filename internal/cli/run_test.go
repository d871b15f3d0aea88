package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/backstop/pkg/backoff"
	"github.com/vvka-141/backstop/pkg/backstop"
)

func TestFinishRun_Success(t *testing.T) {
	spec, err := backoff.New(3)
	require.NoError(t, err)

	assert.NoError(t, finishRun(context.Background(), spec, nil))
}

func TestFinishRun_ExhaustionWrapsRetriesExceeded(t *testing.T) {
	spec, err := backoff.New(3)
	require.NoError(t, err)

	runErr := errors.New("exit status 1")
	got := finishRun(context.Background(), spec, runErr)
	require.Error(t, got)
	assert.True(t, errors.Is(got, backstop.ErrRetriesExceeded))
	assert.Contains(t, got.Error(), "after 4 attempts")
	assert.Equal(t, backstop.ExitRetriesExceeded, backstop.ExitCodeForError(got))
}

func TestFinishRun_CancellationIsNotRetriesExceeded(t *testing.T) {
	spec, err := backoff.New(3)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := finishRun(ctx, spec, ctx.Err())
	assert.True(t, errors.Is(got, context.Canceled))
	assert.False(t, errors.Is(got, backstop.ErrRetriesExceeded))
	assert.NotEqual(t, backstop.ExitRetriesExceeded, backstop.ExitCodeForError(got))
}
