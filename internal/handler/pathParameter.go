package handler

import (
	"strconv"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/gin-gonic/gin"
)

// GetPathParameter parses the named path parameter as an id. A parse failure is attached to the
// context as a bad request and false is returned.
func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	idParam := c.Param(parameter)
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("error parsing %q: %v", parameter, err))
		return 0, false
	}
	return uint(id), true
}
