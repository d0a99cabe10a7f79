package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(uow *storage.UnitOfWork, token *model.AccessToken) error {
	err := uow.Tx().Create(token).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("access token already exists")
	}
	return err
}

func (r repository) find(ctx context.Context, token string) (*model.AccessToken, error) {
	var accessToken *model.AccessToken
	err := r.db.
		WithContext(ctx).
		Where("token = ?", token).
		First(&accessToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errdef.NewNotFound("access token not found")
		}
		return nil, fmt.Errorf("failed to find access token: %v", err)
	}

	return accessToken, nil
}
