// Package docs holds swagger definitions shared by all packages.
//
//go:generate swagger generate spec --work-dir ../.. --output ../swagger.yaml --scan-models
package docs

import "github.com/dhis2-sre/pick-a-date/internal/handler"

// swagger:response
type Response struct {
	// in: body
	Body handler.Response
}

// swagger:response
type Error struct {
	// The error envelope. Status is always "error" and data is always null.
	// in: body
	Body handler.Response
}
