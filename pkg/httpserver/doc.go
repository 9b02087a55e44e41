// Package httpserver wraps net/http with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, env-driven timeouts and liveness and
// readiness handlers.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver
