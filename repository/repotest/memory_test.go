package repotest

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QR-Code-Tracker/models"
	"QR-Code-Tracker/repository"
)

func TestLogoStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewLogoStore()

	id, err := store.UploadLogo(ctx, "logo.png", "image/png", bytes.NewReader([]byte{1, 2, 3}))
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	require.NoError(t, store.DeleteLogo(ctx, id))
	assert.Equal(t, 0, store.Len())

	_, err = store.OpenLogo(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.DeleteLogo(ctx, models.NewID()), repository.ErrNotFound)
}
