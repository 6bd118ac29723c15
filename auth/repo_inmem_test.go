package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountRepository(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	acc := NewAccount("jane", "jane@b.co", "Jane", "")
	acc.ID = NewID()
	assert.NoError(t, repo.Store(ctx, acc))

	got, err := repo.FindByName(ctx, "jane")
	assert.NoError(t, err)
	assert.Equal(t, acc, got)

	got, err = repo.FindByID(ctx, acc.ID)
	assert.NoError(t, err)
	assert.Equal(t, acc, got)

	_, err = repo.FindByID(ctx, "missing")
	assert.Equal(t, ErrNotFound, err)

	// either leg of the $or predicate matches
	got, err = repo.FindByNameOrEmail(ctx, "jane", "other@b.co")
	assert.NoError(t, err)
	assert.Equal(t, acc, got)

	got, err = repo.FindByNameOrEmail(ctx, "other", "jane@b.co")
	assert.NoError(t, err)
	assert.Equal(t, acc, got)

	_, err = repo.FindByNameOrEmail(ctx, "other", "other@b.co")
	assert.Equal(t, ErrNotFound, err)

	dup := NewAccount("jane", "new@b.co", "", "")
	dup.ID = NewID()
	assert.Equal(t, ErrDuplicateAccount, repo.Store(ctx, dup))

	dup = NewAccount("newname", "jane@b.co", "", "")
	dup.ID = NewID()
	assert.Equal(t, ErrDuplicateAccount, repo.Store(ctx, dup))
}
