package inttest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/dhis2-sre/pick-a-date/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupHTTPServer creates an HTTP server using Gin. An HTTP client is returned to interact with the
// created server.
func SetupHTTPServer(t *testing.T, f func(engine *gin.Engine)) *HTTPClient {
	t.Helper()

	err := handler.RegisterValidation()
	require.NoError(t, err, "failed to register validation")
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := server.GetEngine(logger, "")
	f(engine)

	server := httptest.NewServer(engine.Handler())
	client := server.Client()
	t.Cleanup(func() {
		client.CloseIdleConnections()
		server.Close()
	})

	return &HTTPClient{Client: client, ServerURL: server.URL}
}

// HTTPClient allows making requests in a way most of our handlers would expect them. It does so by
// wrapping an http.Client. Access the actual http.Client for specific use cases where our defaults don't
// work.
type HTTPClient struct {
	Client    *http.Client
	ServerURL string
}

// WithHeader adds a header with the given key and value to HTTP request headers.
func WithHeader(key string, value string) func(http.Header) {
	return func(header http.Header) {
		header.Add(key, value)
	}
}

// WithAuthToken adds an authorization header with the given bearer token to HTTP request headers.
func WithAuthToken(token string) func(http.Header) {
	return func(header http.Header) {
		header.Add("Authorization", "Bearer "+token)
	}
}

// Get sends an HTTP GET request to given path. Optional headers are applied to the request. The
// response body is read in full and returned as is. Failure to read or close the HTTP response body
// and HTTP status other than 200 will fail the test associated with t.
func (hc *HTTPClient) Get(t *testing.T, path string, headers ...func(http.Header)) []byte {
	t.Helper()
	return hc.Do(t, http.MethodGet, path, nil, http.StatusOK, headers...)
}

// Post sends an HTTP POST request to given path. Optional headers are applied to the request. The
// response body is read in full and returned as is. Failure to read or close the HTTP response body
// and HTTP status other than 201 will fail the test associated with t.
func (hc *HTTPClient) Post(t *testing.T, path string, requestBody io.Reader, headers ...func(http.Header)) []byte {
	t.Helper()
	return hc.Do(t, http.MethodPost, path, requestBody, http.StatusCreated, headers...)
}

// Delete sends an HTTP DELETE request to given path. Optional headers are applied to the request. The
// response body is read in full and returned as is. Failure to read or close the HTTP response body
// and HTTP status other than 200 will fail the test associated with t.
func (hc *HTTPClient) Delete(t *testing.T, path string, headers ...func(http.Header)) []byte {
	t.Helper()
	return hc.Do(t, http.MethodDelete, path, nil, http.StatusOK, headers...)
}

// Do sends an HTTP request of given method to given path. Optional headers are applied to the
// request. The response body is read in full and returned as is. Failure to read or close the HTTP
// response body and HTTP status other than given expectedStatus will fail the test associated with t.
func (hc *HTTPClient) Do(t *testing.T, method, path string, requestBody io.Reader, expectedStatus int, headers ...func(http.Header)) []byte {
	t.Helper()

	req := hc.newRequest(t, method, path, requestBody, headers...)
	res := hc.do(t, req)

	errMsg := httpClientErrMessage(method, path)
	defer func() {
		require.NoError(t, res.Body.Close(), errMsg+": failed to close HTTP response body")
	}()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err, errMsg+": failed to read HTTP response body")
	require.Equal(t, expectedStatus, res.StatusCode, errMsg+": HTTP status mismatch, body: "+string(body))
	return body
}

// do delegates the request to the underlying HTTP client.
func (hc *HTTPClient) do(t *testing.T, req *http.Request) *http.Response {
	resp, err := hc.Client.Do(req)
	require.NoError(t, err, httpClientErrMessage(req.Method, req.URL.Path)+": HTTP request failed")
	return resp
}

// GetJSON sends an HTTP GET request to given path. Optional headers are applied to the request. The
// data of the response envelope is unmarshaled as JSON into given responseData. Failure to read or
// close the HTTP response body and HTTP status other than 200 will fail the test associated with t.
func (hc *HTTPClient) GetJSON(t *testing.T, path string, responseData any, headers ...func(http.Header)) {
	t.Helper()

	body := hc.Get(t, path, headers...)
	unmarshalData(t, http.MethodGet, path, body, responseData)
}

// PostJSON sends an HTTP POST request to given path. Optional headers are applied to the request. The
// requestBody is marshaled as JSON. The data of the response envelope is unmarshaled as JSON into
// given responseData. Failure to read or close the HTTP response body and HTTP status other than 201
// will fail the test associated with t.
func (hc *HTTPClient) PostJSON(t *testing.T, path string, requestBody any, responseData any, headers ...func(http.Header)) {
	t.Helper()

	body := hc.DoJSON(t, http.MethodPost, path, requestBody, http.StatusCreated, headers...)
	unmarshalData(t, http.MethodPost, path, body, responseData)
}

// PutJSON is like [HTTPClient.PostJSON] for HTTP PUT requests expecting HTTP status 200.
func (hc *HTTPClient) PutJSON(t *testing.T, path string, requestBody any, responseData any, headers ...func(http.Header)) {
	t.Helper()

	body := hc.DoJSON(t, http.MethodPut, path, requestBody, http.StatusOK, headers...)
	unmarshalData(t, http.MethodPut, path, body, responseData)
}

// PatchJSON is like [HTTPClient.PostJSON] for HTTP PATCH requests expecting HTTP status 200.
func (hc *HTTPClient) PatchJSON(t *testing.T, path string, requestBody any, responseData any, headers ...func(http.Header)) {
	t.Helper()

	body := hc.DoJSON(t, http.MethodPatch, path, requestBody, http.StatusOK, headers...)
	unmarshalData(t, http.MethodPatch, path, body, responseData)
}

// DoJSON sends an HTTP request with requestBody marshaled as JSON and returns the raw response body.
// HTTP status other than given expectedStatus will fail the test associated with t.
func (hc *HTTPClient) DoJSON(t *testing.T, method, path string, requestBody any, expectedStatus int, headers ...func(http.Header)) []byte {
	t.Helper()

	var reader io.Reader
	if requestBody != nil {
		b, err := json.Marshal(requestBody)
		require.NoError(t, err, httpClientErrMessage(method, path)+": failed to marshal request body")
		reader = bytes.NewReader(b)
		headers = append(headers, WithHeader("Content-Type", "application/json"))
	}

	return hc.Do(t, method, path, reader, expectedStatus, headers...)
}

// ErrorMessage returns the message of an error response envelope.
func ErrorMessage(t *testing.T, body []byte) string {
	t.Helper()

	var response handler.Response
	require.NoError(t, json.Unmarshal(body, &response), "failed to unmarshal error response body")
	require.Equal(t, handler.StatusError, response.Status)
	return response.Message
}

func unmarshalData(t *testing.T, method, path string, body []byte, responseData any) {
	t.Helper()

	var envelope struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	errMsg := httpClientErrMessage(method, path)
	require.NoError(t, json.Unmarshal(body, &envelope), errMsg+": failed to unmarshal response body")
	require.Equal(t, handler.StatusSuccess, envelope.Status, errMsg+": unexpected response status")
	if responseData == nil {
		return
	}
	require.NoError(t, json.Unmarshal(envelope.Data, responseData), errMsg+": failed to unmarshal response data")
}

func httpClientErrMessage(method, path string) string {
	return fmt.Sprintf("failed %s %q", method, path)
}

// newRequest creates a new HTTP request to the server at given path after applying any optional
// headers.
func (hc *HTTPClient) newRequest(t *testing.T, method, path string, body io.Reader, headers ...func(http.Header)) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, hc.ServerURL+path, body)
	require.NoError(t, err, httpClientErrMessage(method, path)+": failed to create request")

	for _, f := range headers {
		f(req.Header)
	}

	return req
}
