// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent.
//
// New wraps the selected JSON or text handler with LogHandlerDecorator, which
// runs registered ContextExtractor funcs on every record. This is how request
// ids and the environment end up on log lines without being passed around:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "onboarding"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "user logged in", logger.UserID(42))
//
// Helpers such as Error and UserID return an empty slog.Attr for nil input,
// so callers never need a nil check before logging.
package logger
