package filestore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproject/password-manager/internal/domain"
	"github.com/acproject/password-manager/internal/persistence/filestore"
)

func newStore(t *testing.T) *filestore.Store {
	t.Helper()
	s, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_SaveLoadDeleteMetadata(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	m := domain.NewKeyMetadata("db-master", "", domain.KeyTypeSymmetric, domain.AlgorithmAES256, "alice", false)
	m.Tags["env"] = "prod"
	require.NoError(t, s.SaveKeyMetadata(ctx, m))

	got, err := s.LoadKeyMetadata(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, domain.AlgorithmAES256, got.Algorithm)
	assert.Equal(t, "prod", got.Tags["env"])
	assert.Equal(t, 1, got.Version)

	// Перезапись поверх — не ошибка, версия растет вместе с паспортом
	m.Version = 2
	m.Status = domain.KeyStatusSuspended
	require.NoError(t, s.SaveKeyMetadata(ctx, m))
	got, err = s.LoadKeyMetadata(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, domain.KeyStatusSuspended, got.Status)

	require.NoError(t, s.DeleteKeyMetadata(ctx, m.ID))
	_, err = s.LoadKeyMetadata(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Повторное удаление несуществующего — no-op
	assert.NoError(t, s.DeleteKeyMetadata(ctx, m.ID))
}

func TestStore_ListMetadataFilters(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	a := domain.NewKeyMetadata("a", "", domain.KeyTypeSymmetric, domain.AlgorithmAES256, "alice", false)
	a.Tags["env"] = "prod"
	b := domain.NewKeyMetadata("b", "", domain.KeyTypeHMAC, domain.AlgorithmAES256, "bob", false)
	c := domain.NewKeyMetadata("c", "", domain.KeyTypeSymmetric, domain.AlgorithmRSA2048, "alice", false)
	c.Status = domain.KeyStatusSuspended
	for _, m := range []*domain.KeyMetadata{a, b, c} {
		require.NoError(t, s.SaveKeyMetadata(ctx, m))
	}

	all, err := s.ListKeyMetadata(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := s.ListKeyMetadata(ctx, map[string]string{"owner": "alice", "status": "ACTIVE"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = s.ListKeyMetadata(ctx, map[string]string{"tag.env": "prod"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	// Неизвестный фильтр игнорируется
	got, err = s.ListKeyMetadata(ctx, map[string]string{"shape": "round"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStore_AuditLogOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	// Пустой журнал — пустой ответ, файла еще нет
	got, err := s.LoadAuditLogs(ctx, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	batch := []domain.AuditLogEntry{
		domain.NewAuditEntry("create_key", "alice", "k1", "first"),
		domain.NewAuditEntry("rotate_key", "alice", "k1", "second"),
	}
	require.NoError(t, s.SaveAuditLogs(ctx, batch))
	require.NoError(t, s.SaveAuditLogs(ctx, []domain.AuditLogEntry{
		domain.NewAuditError("rotate_key", "bob", "k2", "rotate", "key not found"),
	}))

	got, err = s.LoadAuditLogs(ctx, nil, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Новые первыми
	assert.Equal(t, "k2", got[0].KeyID)
	assert.Equal(t, "first", got[2].Details)

	got, err = s.LoadAuditLogs(ctx, map[string]string{"user": "alice"}, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Details)

	got, err = s.LoadAuditLogs(ctx, map[string]string{"success": "false"}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].User)
}
