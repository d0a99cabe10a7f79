package model

import (
	"context"
	"time"
)

// AccessToken is an opaque capability granting access to exactly one event. Tokens are minted once
// when the event is created and are never rotated.
type AccessToken struct {
	Token     string    `json:"token" gorm:"primaryKey;type:varchar(64)"`
	CreatedAt time.Time `json:"created_at"`
	EventID   string    `json:"event_id" gorm:"not null;index;type:varchar(36)"`
	AccountID *uint     `json:"account_id,omitempty"`
	Account   *Account  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// Scope is the event a request was authorized for.
type Scope struct {
	EventID string
}

type scopeKey struct{}

func NewContextWithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// GetScopeFromContext returns the event scope stored in ctx, if any. It is only present on routes
// guarded by the token authentication middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(Scope)
	return scope, ok
}
