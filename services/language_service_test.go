package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageService(t *testing.T) {
	ctx := context.Background()
	svc := NewLanguageService(newTestDB(t))

	rust, err := svc.Create(ctx, " Rust ")
	require.NoError(t, err)
	assert.Equal(t, "Rust", rust.Name)

	_, err = svc.Create(ctx, "Go")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Rust")
	assert.ErrorIs(t, err, ErrConflict, "unique index rejects duplicate names")

	_, err = svc.Create(ctx, "")
	assert.ErrorIs(t, err, ErrBadRequest)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Go", all[0].Name)
	assert.Equal(t, "Rust", all[1].Name)

	got, err := svc.Get(ctx, rust.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rust", got.Name)

	_, err = svc.Get(ctx, 1234)
	assert.ErrorIs(t, err, ErrNotFound)
}
