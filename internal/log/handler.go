// Package log provides slog handlers.
package log

import (
	"context"
	"log/slog"

	"github.com/dhis2-sre/pick-a-date/internal/middleware"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
)

// ContextHandler adds values from the [context.Context] to the [slog.Record]. It has to use the
// same attribute keys as the Gin [middleware.RequestLogger] so logs created by the middleware and by
// the context aware [slog.Logger] methods can be correlated. Not every log happens within an HTTP
// request so keys missing from the [context.Context] are skipped.
type ContextHandler struct {
	slog.Handler
}

func New(handler slog.Handler) *ContextHandler {
	return &ContextHandler{
		Handler: handler,
	}
}

func (rh *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return rh.Handler.Enabled(ctx, level)
}

func (rh *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := middleware.GetCorrelationID(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyCorrelationID, id))
	}

	// only routes guarded by an access token carry an event scope
	if scope, ok := model.GetScopeFromContext(ctx); ok {
		r.AddAttrs(slog.String(middleware.RequestLoggerKeyEvent, scope.EventID))
	}

	return rh.Handler.Handle(ctx, r)
}

func (rh *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return New(rh.Handler.WithAttrs(attrs))
}

func (rh *ContextHandler) WithGroup(name string) slog.Handler {
	return New(rh.Handler.WithGroup(name))
}
