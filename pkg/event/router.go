package event

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r gin.IRouter, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	r.POST("/events", handler.Create)

	tokenAuthenticationRouter := r.Group("/events/:token")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)
	tokenAuthenticationRouter.GET("", handler.Find)
	tokenAuthenticationRouter.PATCH("", handler.Update)
	tokenAuthenticationRouter.POST("/deactivate", handler.Deactivate)
}
