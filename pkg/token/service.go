package token

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"time"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
	"github.com/go-redis/redis"
)

const cacheKeyPrefix = "access-token:"

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, repository tokenRepository, cache *redis.Client, cacheTTL time.Duration) *service {
	return &service{
		logger:     logger,
		repository: repository,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

type tokenRepository interface {
	create(uow *storage.UnitOfWork, token *model.AccessToken) error
	find(ctx context.Context, token string) (*model.AccessToken, error)
}

// service mints access tokens and resolves them to the event they are bound to. Resolved tokens are
// cached in Redis if a client is given. Tokens are never rotated so cache entries only expire.
type service struct {
	logger     *slog.Logger
	repository tokenRepository
	cache      *redis.Client
	cacheTTL   time.Duration
}

// Mint creates a new access token bound to the event with given id as part of uow.
func (s service) Mint(uow *storage.UnitOfWork, eventID string, accountID *uint) (*model.AccessToken, error) {
	token := &model.AccessToken{
		Token:     rand.Text(),
		EventID:   eventID,
		AccountID: accountID,
	}

	if err := s.repository.create(uow, token); err != nil {
		return nil, err
	}

	return token, nil
}

// Resolve returns the scope of the event the token is bound to. An unknown token results in an
// unauthorized error.
func (s service) Resolve(ctx context.Context, token string) (model.Scope, error) {
	if eventID, ok := s.cached(ctx, token); ok {
		return model.Scope{EventID: eventID}, nil
	}

	accessToken, err := s.repository.find(ctx, token)
	if err != nil {
		if errdef.IsNotFound(err) {
			return model.Scope{}, errdef.NewUnauthorized("token not valid")
		}
		return model.Scope{}, err
	}

	s.store(ctx, token, accessToken.EventID)

	return model.Scope{EventID: accessToken.EventID}, nil
}

func (s service) cached(ctx context.Context, token string) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	eventID, err := s.cache.WithContext(ctx).Get(cacheKeyPrefix + token).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "Failed to read access token from cache", "error", err)
		}
		return "", false
	}

	return eventID, true
}

func (s service) store(ctx context.Context, token, eventID string) {
	if s.cache == nil {
		return
	}

	err := s.cache.WithContext(ctx).Set(cacheKeyPrefix+token, eventID, s.cacheTTL).Err()
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to cache access token", "error", err)
	}
}
