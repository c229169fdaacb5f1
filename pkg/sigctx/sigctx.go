package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// NotifyContext is canceled on the first shutdown signal.
func NotifyContext() (context.Context, context.CancelFunc) {
	return NotifyContextFrom(context.Background())
}

// NotifyContextFrom is [NotifyContext] derived from parent.
func NotifyContextFrom(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
