// Package shutdown blocks the process until SIGINT or SIGTERM and then
// runs ordered teardown hooks.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"supplyhub/pkg/logger"
)

const (
	msgSignalReceived = "shutdown signal received"
	msgHookFailed     = "shutdown hook failed"
	msgTimeoutExpired = "shutdown timeout expired, remaining hooks skipped"
)

// Wait blocks until SIGINT or SIGTERM is received, then runs the hooks
// one by one in the order given, all within the shared timeout. A failing
// hook is logged and does not stop the hooks after it; hooks that the
// deadline overtakes are skipped.
func Wait(timeout time.Duration, hooks ...func(context.Context) error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	signal.Stop(sigCh)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log := logger.Log(ctx)
	log.Info(ctx, msgSignalReceived, zap.String("signal", sig.String()))

	for i, hook := range hooks {
		if ctx.Err() != nil {
			log.Warn(ctx, msgTimeoutExpired, zap.Int("remaining", len(hooks)-i))
			return
		}
		if err := hook(ctx); err != nil {
			log.Error(ctx, msgHookFailed, zap.Int("hook", i), zap.Error(err))
		}
	}
}
