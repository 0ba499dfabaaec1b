package audit_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acproject/password-manager/internal/audit"
	"github.com/acproject/password-manager/internal/domain"
)

// mockBatchWriter собирает все пачки, дошедшие до хранилища
type mockBatchWriter struct {
	mu      sync.Mutex
	entries []domain.AuditLogEntry
}

func (m *mockBatchWriter) SaveAuditLogs(_ context.Context, entries []domain.AuditLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *mockBatchWriter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func TestTrail_RecordAndQuery(t *testing.T) {
	trail := audit.NewTrail(nil, zap.NewNop())

	trail.Record(domain.NewAuditEntry("create_key", "alice", "k1", "created"))
	trail.Record(domain.NewAuditEntry("rotate_key", "bob", "k1", "rotated"))
	trail.Record(domain.NewAuditError("rotate_key", "alice", "k2", "rotate", "key not found"))

	require.Equal(t, 3, trail.Len())

	// Новые записи первыми
	all := trail.Query(nil, 0)
	require.Len(t, all, 3)
	assert.Equal(t, "k2", all[0].KeyID)
	assert.Equal(t, "create_key", all[2].Action)

	// AND-комбинация фильтров
	got := trail.Query(map[string]string{"action": "rotate_key", "success": "true"}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].User)

	got = trail.Query(map[string]string{"success": "false"}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "key not found", got[0].Error)

	got = trail.Query(map[string]string{"user": "alice"}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "k2", got[0].KeyID)
}

func TestTrail_MirrorDrainsOnStop(t *testing.T) {
	store := &mockBatchWriter{}
	trail := audit.NewTrail(store, zap.NewNop())
	trail.Start()

	for i := 0; i < 250; i++ {
		trail.Record(domain.NewAuditEntry("create_key", "alice", "", "bulk"))
	}

	// Stop обязан дописать весь буфер до возврата
	trail.Stop()
	assert.Equal(t, 250, store.count())
	assert.Equal(t, uint64(0), trail.Dropped())

	// Запись после остановки не паникует и остается в памяти
	trail.Record(domain.NewAuditEntry("create_key", "alice", "", "late"))
	assert.Equal(t, 251, trail.Len())
	assert.Equal(t, 250, store.count())
}

// Остановка посреди потока записей: ни одна Record не должна попасть
// в уже закрытый канал. Все, что зеркало не приняло, остается в памяти.
func TestTrail_RecordDuringStop(t *testing.T) {
	store := &mockBatchWriter{}
	trail := audit.NewTrail(store, zap.NewNop())
	trail.Start()

	const writers = 8
	const perWriter = 200

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for j := 0; j < perWriter; j++ {
				trail.Record(domain.NewAuditEntry("create_key", "alice", "", "racy"))
			}
		}()
	}

	close(start)
	trail.Stop() // конкурентно с писателями
	wg.Wait()

	// Память авторитативна и полна; зеркало — best-effort подмножество
	assert.Equal(t, writers*perWriter, trail.Len())
	assert.LessOrEqual(t, store.count(), writers*perWriter)
}

func TestTrail_StopIdempotent(t *testing.T) {
	trail := audit.NewTrail(&mockBatchWriter{}, zap.NewNop())
	trail.Start()
	trail.Stop()
	trail.Stop()
}
