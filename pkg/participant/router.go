package participant

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r gin.IRouter, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("/events/:token")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	tokenAuthenticationRouter.POST("/participants", handler.Create)
	tokenAuthenticationRouter.GET("/participants", handler.FindAll)
	tokenAuthenticationRouter.GET("/participants/:participant", handler.FindByPhone)
	tokenAuthenticationRouter.PATCH("/participants/:participant", handler.Update)
}
