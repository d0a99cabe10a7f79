package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := map[string]struct {
		err     error
		status  int
		message string
	}{
		"BadRequest":           {errdef.NewBadRequest("bad input"), http.StatusBadRequest, "bad input"},
		"Unauthorized":         {errdef.NewUnauthorized("token is missing"), http.StatusUnauthorized, "token is missing"},
		"NotFound":             {errdef.NewNotFound("event not found"), http.StatusNotFound, "event not found"},
		"Duplicated":           {errdef.NewDuplicated("phone already joined"), http.StatusConflict, "phone already joined"},
		"Conflict":             {errdef.NewConflict("event is inactive"), http.StatusConflict, "event is inactive"},
		"UnsupportedMediaType": {errdef.NewUnsupportedMediaType("json only"), http.StatusUnsupportedMediaType, "json only"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/", func(c *gin.Context) {
				_ = c.Error(test.err)
			})

			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			r.ServeHTTP(w, req)

			assert.Equal(t, test.status, w.Code)
			var response handler.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, handler.StatusError, response.Status)
			assert.Equal(t, test.message, response.Message)
			assert.Nil(t, response.Data)
		})
	}
}

func TestErrorHandler_InternalErrorIsNotLeaked(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CorrelationID())
	r.Use(ErrorHandler())
	var correlationID string
	r.GET("/", func(c *gin.Context) {
		correlationID, _ = GetCorrelationID(c.Request.Context())
		_ = c.Error(errors.New("pq: password authentication failed for user \"pick\""))
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), correlationID)
}

func TestErrorHandler_NoError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		handler.Respond(c, http.StatusOK, "pong", "")
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":"pong","message":""}`, w.Body.String())
}
