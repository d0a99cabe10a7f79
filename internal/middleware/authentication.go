package middleware

import (
	"context"
	"log/slog"

	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewAuthentication(logger *slog.Logger, tokenService tokenService) AuthenticationMiddleware {
	return AuthenticationMiddleware{
		logger:       logger,
		tokenService: tokenService,
	}
}

type tokenService interface {
	Resolve(ctx context.Context, token string) (model.Scope, error)
}

// AuthenticationMiddleware guards every route scoped to a single event.
type AuthenticationMiddleware struct {
	logger       *slog.Logger
	tokenService tokenService
}

// TokenAuthentication resolves the request's access token to an event scope and stores the scope in
// the request context. Requests without a token or with a token not bound to any event are aborted
// as unauthorized.
func (m AuthenticationMiddleware) TokenAuthentication(c *gin.Context) {
	token, err := handler.GetTokenFromRequest(c)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	scope, err := m.tokenService.Resolve(c.Request.Context(), token)
	if err != nil {
		m.logger.WarnContext(c.Request.Context(), "Failed to resolve access token", "error", err)
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Request = c.Request.WithContext(model.NewContextWithScope(c.Request.Context(), scope))
	c.Next()
}
