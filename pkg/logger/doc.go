// Package logger builds the SDK's *slog.Logger instances.
//
// New creates a logger configured by Option functions: output format (text or
// JSON), minimum level, static attributes and ContextExtractor callbacks that
// pull request-scoped values out of context.Context on every record.
//
// The handler returned by New is wrapped with LogHandlerDecorator which also
// redacts secret values. Attributes named token, authorization, jwt_key or
// secret (plus any key passed to WithRedactedKeys) are replaced with
// RedactedValue, including inside groups, so signed payloads and the shared
// JWT secret never reach log output.
//
// Helper constructors in attr.go (DocumentKey, FileID, Status, Endpoint, ...)
// keep attribute names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "docs-integration"),
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.InfoContext(ctx, "callback accepted",
//	    logger.FileID(fileID),
//	    logger.Status(2),
//	)
//
// Error returns an empty attribute for nil errors so it can be passed
// unconditionally.
package logger
