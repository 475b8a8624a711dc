package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals cancel a running batch. Files already written are kept.
// syscall.SIGTERM is defined on Windows too, where it is never delivered.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// notifyContext returns a context canceled on the first shutdown signal.
// Workers stop picking new files once it is done.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
