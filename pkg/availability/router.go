package availability

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r gin.IRouter, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("/events/:token")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	tokenAuthenticationRouter.POST("/participants/:participant/dates", handler.Create)
	tokenAuthenticationRouter.GET("/participants/:participant/dates", handler.FindAll)
	tokenAuthenticationRouter.PUT("/participants/:participant/dates/:date", handler.Update)
	tokenAuthenticationRouter.DELETE("/participants/:participant/dates/:date", handler.Delete)

	tokenAuthenticationRouter.GET("/availability", handler.Availability)
	tokenAuthenticationRouter.GET("/best-date", handler.BestDate)
	tokenAuthenticationRouter.GET("/calendar.ics", handler.Calendar)
}
