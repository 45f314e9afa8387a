package shutdown_test

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/SscSPs/abase_form_kit/pkg/shutdown"
	"github.com/stretchr/testify/require"
)

func TestWithSignals_CancelsOnSIGTERM(t *testing.T) {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
}

func TestWithSignals_CancelFuncStops(t *testing.T) {
	ctx, cancel := shutdown.WithSignals(context.Background())
	cancel()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}
