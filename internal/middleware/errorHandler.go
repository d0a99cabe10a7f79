package middleware

import (
	"fmt"
	"net/http"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the context as an error envelope. Errors not
// classified by errdef are considered internal and their message is not exposed to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := c.Errors.Last()
		if err == nil {
			return
		}

		if c.Writer.Written() {
			return
		}

		// nolint:gocritic
		if errdef.IsBadRequest(err) {
			handler.RespondError(c, http.StatusBadRequest, err.Error())
		} else if errdef.IsUnauthorized(err) {
			handler.RespondError(c, http.StatusUnauthorized, err.Error())
		} else if errdef.IsNotFound(err) {
			handler.RespondError(c, http.StatusNotFound, err.Error())
		} else if errdef.IsDuplicated(err) {
			handler.RespondError(c, http.StatusConflict, err.Error())
		} else if errdef.IsConflict(err) {
			handler.RespondError(c, http.StatusConflict, err.Error())
		} else if errdef.IsUnsupportedMediaType(err) {
			handler.RespondError(c, http.StatusUnsupportedMediaType, err.Error())
		} else {
			id, _ := GetCorrelationID(c.Request.Context())
			message := fmt.Sprintf("something went wrong. We'll look into it if you send us the id %q :)", id)
			handler.RespondError(c, http.StatusInternalServerError, message)
		}
	}
}
