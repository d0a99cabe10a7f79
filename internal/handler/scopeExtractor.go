package handler

import (
	"errors"

	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/gin-gonic/gin"
)

// GetScopeFromContext returns the event scope resolved by the token authentication middleware.
func GetScopeFromContext(c *gin.Context) (model.Scope, error) {
	scope, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errors.New("event scope not found on context")
	}
	return scope, nil
}
