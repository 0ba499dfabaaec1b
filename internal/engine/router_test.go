package engine_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/acproject/password-manager/internal/audit"
	"github.com/acproject/password-manager/internal/domain"
	"github.com/acproject/password-manager/internal/engine"
	"github.com/acproject/password-manager/internal/security"
)

func newRouter(t *testing.T, limiter *rate.Limiter) *engine.CommandRouter {
	t.Helper()
	trail := audit.NewTrail(nil, zap.NewNop())
	core := engine.NewKeyManagementEngine(security.NewMockHSM(), nil, trail, zap.NewNop())
	return engine.NewCommandRouter(core, limiter, engine.NewMetrics(nil), zap.NewNop())
}

func mustCreate(t *testing.T, r *engine.CommandRouter, params map[string]string) domain.KeyMetadata {
	t.Helper()
	res := r.Execute(context.Background(), "create_key", params)
	require.True(t, res.Success, res.ErrorMessage)
	var m domain.KeyMetadata
	require.NoError(t, json.Unmarshal([]byte(res.Result), &m))
	return m
}

func TestRouter_UnsupportedCommand(t *testing.T) {
	r := newRouter(t, nil)
	res := r.Execute(context.Background(), "self_destruct", nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "unsupported command: self_destruct")
}

func TestRouter_MissingParameter(t *testing.T) {
	r := newRouter(t, nil)

	res := r.Execute(context.Background(), "create_key", map[string]string{"description": "no name"})
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, `"name"`)

	res = r.Execute(context.Background(), "rotate_key", map[string]string{"user": "alice"})
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, `"key_id"`)
}

func TestRouter_CreateKeyWithTags(t *testing.T) {
	r := newRouter(t, nil)
	m := mustCreate(t, r, map[string]string{
		"name":            "db-master",
		"key_type":        "SYMMETRIC",
		"algorithm":       "AES-256",
		"user":            "alice",
		"tag.environment": "test",
		"tag.team":        "core",
	})
	assert.Equal(t, "alice", m.Owner)
	assert.Equal(t, 1, m.Version)
	assert.Equal(t, "test", m.Tags["environment"])
	assert.Equal(t, "core", m.Tags["team"])
}

func TestRouter_InvalidEnum(t *testing.T) {
	r := newRouter(t, nil)
	res := r.Execute(context.Background(), "create_key", map[string]string{
		"name":      "k",
		"algorithm": "ROT13",
	})
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "unknown algorithm")
}

func TestRouter_ListKeysFilters(t *testing.T) {
	r := newRouter(t, nil)
	mustCreate(t, r, map[string]string{"name": "a", "user": "alice", "tag.env": "prod"})
	mustCreate(t, r, map[string]string{"name": "b", "user": "bob"})

	res := r.Execute(context.Background(), "list_keys", map[string]string{"owner": "alice"})
	require.True(t, res.Success)
	var keys []domain.KeyMetadata
	require.NoError(t, json.Unmarshal([]byte(res.Result), &keys))
	require.Len(t, keys, 1)
	assert.Equal(t, "a", keys[0].Name)
}

func TestRouter_RotateApprovalSurfacesOperationID(t *testing.T) {
	r := newRouter(t, nil)
	m := mustCreate(t, r, map[string]string{
		"name": "guarded", "user": "alice", "requires_approval": "true",
	})

	res := r.Execute(context.Background(), "rotate_key", map[string]string{"key_id": m.ID, "user": "bob"})
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "requires approval")

	res = r.Execute(context.Background(), "list_approvals", nil)
	require.True(t, res.Success)
	var approvals []domain.PendingApproval
	require.NoError(t, json.Unmarshal([]byte(res.Result), &approvals))
	require.Len(t, approvals, 1)
	assert.Equal(t, m.ID, approvals[0].KeyID)
}

func TestRouter_AuditListing(t *testing.T) {
	r := newRouter(t, nil)
	m := mustCreate(t, r, map[string]string{"name": "k", "user": "alice"})
	r.Execute(context.Background(), "rotate_key", map[string]string{"key_id": "missing", "user": "bob"})

	res := r.Execute(context.Background(), "list_audit", map[string]string{"success": "false"})
	require.True(t, res.Success)
	var entries []domain.AuditLogEntry
	require.NoError(t, json.Unmarshal([]byte(res.Result), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].User)

	res = r.Execute(context.Background(), "list_audit", map[string]string{"key_id": m.ID, "limit": "1"})
	require.True(t, res.Success)
	entries = nil
	require.NoError(t, json.Unmarshal([]byte(res.Result), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "create_key", entries[0].Action)
}

func TestRouter_CryptoCommands(t *testing.T) {
	r := newRouter(t, nil)
	ctx := context.Background()
	m := mustCreate(t, r, map[string]string{"name": "k", "user": "alice"})

	res := r.Execute(ctx, "sign", map[string]string{"key_id": m.ID, "data": "payload"})
	require.True(t, res.Success, res.ErrorMessage)
	var signed map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.Result), &signed))
	_, err := base64.StdEncoding.DecodeString(signed["signature"])
	require.NoError(t, err)

	res = r.Execute(ctx, "verify", map[string]string{
		"key_id": m.ID, "data": "payload", "signature": signed["signature"],
	})
	require.True(t, res.Success)
	var verified map[string]bool
	require.NoError(t, json.Unmarshal([]byte(res.Result), &verified))
	assert.True(t, verified["valid"])

	res = r.Execute(ctx, "encrypt", map[string]string{"key_id": m.ID, "plaintext": "secret"})
	require.True(t, res.Success)
	var enc map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.Result), &enc))

	res = r.Execute(ctx, "decrypt", map[string]string{"key_id": m.ID, "ciphertext": enc["ciphertext"]})
	require.True(t, res.Success)
	var dec map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.Result), &dec))
	assert.Equal(t, "secret", dec["plaintext"])
}

func TestRouter_RateLimit(t *testing.T) {
	// Нулевой бюджет: первый же вызов отсекается
	r := newRouter(t, rate.NewLimiter(0, 0))
	res := r.Execute(context.Background(), "list_keys", nil)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "rate limit")
}
