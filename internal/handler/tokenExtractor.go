package handler

import (
	"strings"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/gin-gonic/gin"
)

const TokenParameter = "token"

// GetTokenFromRequest returns the event access token of the request. The token is looked up in the
// path, the query string and finally the Authorization header. The first non-empty value wins.
func GetTokenFromRequest(c *gin.Context) (string, error) {
	if token := strings.TrimSpace(c.Param(TokenParameter)); token != "" {
		return token, nil
	}

	if token := strings.TrimSpace(c.Query(TokenParameter)); token != "" {
		return token, nil
	}

	if token, err := GetTokenFromHttpAuthHeader(c); err == nil {
		return token, nil
	}

	return "", errdef.NewUnauthorized("token is missing")
}

func GetTokenFromHttpAuthHeader(c *gin.Context) (string, error) {
	token := strings.TrimSpace(c.GetHeader("Authorization"))

	if scheme, rest, found := strings.Cut(token, " "); found && strings.EqualFold(scheme, "Bearer") {
		token = strings.TrimSpace(rest)
	} else if strings.EqualFold(token, "Bearer") {
		token = ""
	}

	if token == "" {
		return "", errdef.NewUnauthorized("token not found in Authorization header")
	}

	return token, nil
}
