package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aroma/internal/common"
)

func newStore(t *testing.T) (*Store, *kv.MemoryRepository) {
	t.Helper()
	repo := kv.NewMemoryRepository()
	return New(repo), repo
}

func TestStore_JSONRoundTripAndAbsence(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	var u models.User
	found, err := s.GetJSON(ctx, KeyCurrentUser, &u)
	require.NoError(t, err)
	assert.False(t, found)

	admin := models.DefaultUsers()[0]
	require.NoError(t, s.SetJSON(ctx, KeyCurrentUser, admin))

	found, err = s.GetJSON(ctx, KeyCurrentUser, &u)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, admin, u)

	require.NoError(t, s.Remove(ctx, KeyCurrentUser))
	has, err := s.Has(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStore_ThemeIsStoredAsBareString(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetString(ctx, KeyTheme, "dark"))

	raw, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), raw)

	v, ok, err := s.GetString(ctx, KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestStore_CorruptedRecord(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cart", []byte("{not json")))

	var c models.Cart
	_, err := s.GetJSON(ctx, KeyCart, &c)
	require.ErrorIs(t, err, common.ErrorCorruptedRecord)

	_, err = UpdateJSON(ctx, s, KeyCart, func(cur models.Cart, _ bool) (models.Cart, error) { return cur, nil })
	require.ErrorIs(t, err, common.ErrorCorruptedRecord)
}

func TestAppendJSON_CreatesAndAppends(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, AppendJSON(ctx, s, KeyVisits, models.Visit{Page: "index.html"}))
	require.NoError(t, AppendJSON(ctx, s, KeyVisits, models.Visit{Page: "meniu.html"}))

	var visits []models.Visit
	found, err := s.GetJSON(ctx, KeyVisits, &visits)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, visits, 2)
	assert.Equal(t, "index.html", visits[0].Page)
	assert.Equal(t, "meniu.html", visits[1].Page)
}

func TestUpdateJSON_ReportsFoundAndReturnsNewValue(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	got, err := UpdateJSON(ctx, s, KeyUsers, func(cur []models.User, found bool) ([]models.User, error) {
		assert.False(t, found)
		return models.DefaultUsers(), nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = UpdateJSON(ctx, s, KeyUsers, func(cur []models.User, found bool) ([]models.User, error) {
		assert.True(t, found)
		assert.Len(t, cur, 2)
		return cur, nil
	})
	require.NoError(t, err)
}
