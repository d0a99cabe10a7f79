package errdef_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"

	"github.com/stretchr/testify/assert"
)

func TestIsBadRequest(t *testing.T) {
	assert.False(t, errdef.IsBadRequest(errors.New("some error")))
	assert.True(t, errdef.IsBadRequest(errdef.NewBadRequest("some error")))
}

func TestIsDuplicate(t *testing.T) {
	assert.False(t, errdef.IsDuplicated(errors.New("some error")))
	assert.True(t, errdef.IsDuplicated(errdef.NewDuplicated("some error")))
}

func TestIsUnauthorized(t *testing.T) {
	assert.False(t, errdef.IsUnauthorized(errors.New("some error")))
	assert.True(t, errdef.IsUnauthorized(errdef.NewUnauthorized("some error")))
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, errdef.IsNotFound(errors.New("some error")))
	assert.True(t, errdef.IsNotFound(errdef.NewNotFound("some error")))
}

func TestIsConflict(t *testing.T) {
	assert.False(t, errdef.IsConflict(errors.New("some error")))
	assert.True(t, errdef.IsConflict(errdef.NewConflict("some error")))
}

func TestIsUnsupportedMediaType(t *testing.T) {
	assert.False(t, errdef.IsUnsupportedMediaType(errors.New("some error")))
	assert.True(t, errdef.IsUnsupportedMediaType(errdef.NewUnsupportedMediaType("some error")))
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("failed to create participant: %w", errdef.NewDuplicated("phone %q already joined", "555-0100"))

	assert.True(t, errdef.IsDuplicated(err))
	assert.False(t, errdef.IsNotFound(err))
	assert.Equal(t, `failed to create participant: phone "555-0100" already joined`, err.Error())
}
