package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproject/password-manager/internal/domain"
	"github.com/acproject/password-manager/internal/persistence/postgres"
)

var metadataColumns = []string{
	"id", "name", "description", "key_type", "algorithm", "status", "owner",
	"created_at", "updated_at", "expiration_date", "version", "requires_approval",
}

func TestStore_SaveKeyMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := postgres.New(db)

	m := domain.NewKeyMetadata("db-master", "primary", domain.KeyTypeSymmetric, domain.AlgorithmAES256, "alice", false)
	m.Tags["env"] = "prod"

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO key_metadata").
		WithArgs(m.ID, "db-master", "primary", "SYMMETRIC", "AES-256", "ACTIVE", "alice",
			m.CreatedAt, m.UpdatedAt, nil, 1, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM key_tags").
		WithArgs(m.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO key_tags").
		WithArgs(m.ID, "env", "prod").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.SaveKeyMetadata(context.Background(), m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadKeyMetadata(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := postgres.New(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM key_metadata WHERE id").
		WithArgs("k1").
		WillReturnRows(sqlmock.NewRows(metadataColumns).
			AddRow("k1", "db-master", "primary", "SYMMETRIC", "AES-256", "ACTIVE", "alice",
				now, now, nil, 3, true))
	mock.ExpectQuery("SELECT tag_key, tag_value FROM key_tags").
		WithArgs("k1").
		WillReturnRows(sqlmock.NewRows([]string{"tag_key", "tag_value"}).AddRow("env", "prod"))

	m, err := store.LoadKeyMetadata(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, domain.KeyTypeSymmetric, m.KeyType)
	assert.Equal(t, domain.KeyStatusActive, m.Status)
	assert.Equal(t, 3, m.Version)
	assert.True(t, m.RequiresApproval)
	assert.Nil(t, m.ExpirationDate)
	assert.Equal(t, "prod", m.Tags["env"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadKeyMetadata_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := postgres.New(db)

	mock.ExpectQuery("SELECT (.+) FROM key_metadata WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(metadataColumns))

	_, err = store.LoadKeyMetadata(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListKeyMetadata_StatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := postgres.New(db)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM key_metadata WHERE 1=1 AND status").
		WithArgs("ACTIVE").
		WillReturnRows(sqlmock.NewRows(metadataColumns).
			AddRow("k1", "a", nil, "SYMMETRIC", "AES-256", "ACTIVE", "alice", now, now, nil, 1, false).
			AddRow("k2", "b", nil, "HMAC", "AES-256", "ACTIVE", "bob", now, now, nil, 1, false))
	mock.ExpectQuery("SELECT tag_key, tag_value FROM key_tags").
		WithArgs("k1").
		WillReturnRows(sqlmock.NewRows([]string{"tag_key", "tag_value"}))
	mock.ExpectQuery("SELECT tag_key, tag_value FROM key_tags").
		WithArgs("k2").
		WillReturnRows(sqlmock.NewRows([]string{"tag_key", "tag_value"}))

	result, err := store.ListKeyMetadata(context.Background(), map[string]string{"status": "ACTIVE"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "k1", result[0].ID)
	assert.Equal(t, domain.KeyTypeHMAC, result[1].KeyType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveAuditLogs_Batch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := postgres.New(db)

	ok := domain.NewAuditEntry("create_key", "alice", "k1", "created")
	fail := domain.NewAuditError("rotate_key", "bob", "", "rotate", "key not found")

	// Одна вставка на всю пачку, пустые key_id/error уходят как NULL
	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(
			ok.ID, ok.Timestamp, "alice", "create_key", "k1", "created", true, nil,
			fail.ID, fail.Timestamp, "bob", "rotate_key", nil, "rotate", false, "key not found",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, store.SaveAuditLogs(context.Background(), []domain.AuditLogEntry{ok, fail}))
	assert.NoError(t, mock.ExpectationsWereMet())

	// Пустая пачка не должна трогать базу
	require.NoError(t, store.SaveAuditLogs(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_LoadAuditLogs_FilterAndLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	store := postgres.New(db)

	now := time.Now().UTC()
	columns := []string{"id", "timestamp", "user_name", "action", "key_id", "details", "success", "error"}
	mock.ExpectQuery("SELECT (.+) FROM audit_logs WHERE 1=1 AND success (.+) ORDER BY timestamp DESC LIMIT").
		WithArgs(false, 5).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("e1", now, "bob", "rotate_key", nil, "rotate", false, "key not found"))

	entries, err := store.LoadAuditLogs(context.Background(), map[string]string{"success": "false"}, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].User)
	assert.Empty(t, entries[0].KeyID)
	assert.Equal(t, "key not found", entries[0].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}
