package token_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/pkg/inttest"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
	"github.com/dhis2-sre/pick-a-date/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	t.Parallel()

	db := inttest.SetupDB(t)
	redis := inttest.SetupRedis(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenService := token.NewService(logger, token.NewRepository(db), redis, time.Minute)
	transactor := storage.NewTransactor(db)
	ctx := context.Background()

	minDate, err := model.ParseDay("2024-01-01")
	require.NoError(t, err)
	maxDate, err := model.ParseDay("2024-01-31")
	require.NoError(t, err)
	event1 := &model.Event{Name: "Summer party", MinDate: minDate, MaxDate: maxDate, Active: true}
	event2 := &model.Event{Name: "Winter party", MinDate: minDate, MaxDate: maxDate, Active: true}
	var token1, token2 *model.AccessToken
	err = transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if err := uow.Tx().Create(event1).Error; err != nil {
			return err
		}
		if err := uow.Tx().Create(event2).Error; err != nil {
			return err
		}
		var err error
		token1, err = tokenService.Mint(uow, event1.ID, nil)
		if err != nil {
			return err
		}
		token2, err = tokenService.Mint(uow, event2.ID, nil)
		return err
	})
	require.NoError(t, err)

	t.Run("ResolvesToBoundEventOnly", func(t *testing.T) {
		scope1, err := tokenService.Resolve(ctx, token1.Token)
		require.NoError(t, err)
		scope2, err := tokenService.Resolve(ctx, token2.Token)
		require.NoError(t, err)

		assert.Equal(t, event1.ID, scope1.EventID)
		assert.Equal(t, event2.ID, scope2.EventID)
	})

	t.Run("CachesResolvedToken", func(t *testing.T) {
		_, err := tokenService.Resolve(ctx, token1.Token)
		require.NoError(t, err)

		cached, err := redis.Get("access-token:" + token1.Token).Result()
		require.NoError(t, err)
		assert.Equal(t, event1.ID, cached)
		ttl, err := redis.TTL("access-token:" + token1.Token).Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		_, err := tokenService.Resolve(ctx, "not-a-token")

		require.Error(t, err)
		assert.True(t, errdef.IsUnauthorized(err))
	})

	t.Run("RolledBackTokenDoesNotResolve", func(t *testing.T) {
		var minted *model.AccessToken
		err := transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
			var err error
			minted, err = tokenService.Mint(uow, event1.ID, nil)
			if err != nil {
				return err
			}
			return errdef.NewBadRequest("abort")
		})
		require.True(t, errdef.IsBadRequest(err))
		require.NotNil(t, minted)

		_, err = tokenService.Resolve(ctx, minted.Token)

		assert.True(t, errdef.IsUnauthorized(err))
	})
}
