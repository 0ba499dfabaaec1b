package audit

/*
Файл trail.go реализует журнал аудита движка управления ключами.

Журнал двухслойный:
  - In-memory слой — авторитативный append-only список, по нему отвечает
    команда list_audit. Запись в него синхронная и никогда не падает.
  - Слой персистентности — асинхронное зеркало в PersistenceStore.
    События уходят через неблокирующий канал и пишутся пачками (Bulk),
    чтобы задержки хранилища не влияли на время ответа команд.

При остановке выполняется Drain: вход запирается атомарным флагом,
канал закрывается, воркер вычитывает остатки и делает финальный flush.
*/

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/acproject/password-manager/internal/domain"
)

const (
	bufferSize    = 10000
	batchSize     = 100
	flushInterval = 500 * time.Millisecond
)

// BatchWriter — куда физически зеркалируются записи аудита.
type BatchWriter interface {
	SaveAuditLogs(ctx context.Context, entries []domain.AuditLogEntry) error
}

type Trail struct {
	mu      sync.RWMutex
	entries []domain.AuditLogEntry

	ch     chan domain.AuditLogEntry
	store  BatchWriter // nil — работаем только в памяти
	logger *zap.Logger
	wg     sync.WaitGroup

	isClosed int32        // Атомарный флаг (0 - открыт, 1 - закрыт)
	closeMu  sync.RWMutex // Упорядочивает отправку в канал и его закрытие
	dropped  uint64       // Сколько событий не влезло в буфер зеркала
	onDrop   func()       // необязательный хук для метрики сброшенных событий
}

// NewTrail создает журнал. store может быть nil — тогда зеркалирование
// отключено и воркер не запускается.
func NewTrail(store BatchWriter, logger *zap.Logger) *Trail {
	return &Trail{
		entries: make([]domain.AuditLogEntry, 0, 256),
		ch:      make(chan domain.AuditLogEntry, bufferSize),
		store:   store,
		logger:  logger.With(zap.String("mod", "audit")),
	}
}

// SetDropHook регистрирует колбэк на каждое сброшенное событие.
// Вызывается до Start.
func (t *Trail) SetDropHook(fn func()) {
	t.onDrop = fn
}

// Start запускает воркер зеркалирования.
func (t *Trail) Start() {
	if t.store == nil {
		return
	}
	t.wg.Add(1)
	go t.worker()
}

// Stop «запирает» вход и ждет, пока воркер допишет остатки буфера.
// Повторный вызов безопасен.
func (t *Trail) Stop() {
	if !atomic.CompareAndSwapInt32(&t.isClosed, 0, 1) {
		return
	}
	if t.store == nil {
		return
	}
	t.logger.Info("stopping audit trail: closing channel and flushing buffer...")

	// Под write-lock: записи, успевшие пройти проверку флага, держат
	// read-lock до завершения отправки, поэтому close их не застанет
	t.closeMu.Lock()
	close(t.ch)
	t.closeMu.Unlock()
	t.wg.Wait()
	t.logger.Info("audit trail stopped gracefully")
}

// Record добавляет запись в журнал. In-memory слой пополняется всегда,
// зеркало — по стратегии Load Shedding: при переполнении буфера событие
// в хранилище не попадает, но из памяти не теряется.
func (t *Trail) Record(entry domain.AuditLogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.mu.Unlock()

	if t.store == nil {
		return
	}

	t.closeMu.RLock()
	defer t.closeMu.RUnlock()
	if atomic.LoadInt32(&t.isClosed) == 1 {
		t.logger.Warn("audit mirror skipped: trail is stopping", zap.String("id", entry.ID))
		return
	}

	select {
	case t.ch <- entry:
	default:
		atomic.AddUint64(&t.dropped, 1)
		if t.onDrop != nil {
			t.onDrop()
		}
		t.logger.Error("audit_buffer_overflow",
			zap.String("action", entry.Action),
			zap.String("key_id", entry.KeyID),
		)
	}
}

// Query возвращает записи по AND-комбинации фильтров, новые первыми.
// limit <= 0 — без ограничения.
func (t *Trail) Query(filters map[string]string, limit int) []domain.AuditLogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []domain.AuditLogEntry
	for i := len(t.entries) - 1; i >= 0; i-- {
		e := t.entries[i]
		if !e.MatchesFilters(filters) {
			continue
		}
		result = append(result, e)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}

// Len — размер in-memory журнала.
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Dropped — счетчик событий, сброшенных при переполнении буфера зеркала.
func (t *Trail) Dropped() uint64 {
	return atomic.LoadUint64(&t.dropped)
}

func (t *Trail) worker() {
	defer t.wg.Done()

	batch := make([]domain.AuditLogEntry, 0, batchSize)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		// Background: основной контекст к моменту финального flush может быть закрыт
		if err := t.store.SaveAuditLogs(context.Background(), batch); err != nil {
			t.logger.Error("audit flush failed", zap.Error(err), zap.Int("batch", len(batch)))
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-t.ch:
			if !ok {
				// Канал закрыт в Stop(): дочитали остатки, финальный сброс — и выходим
				flush()
				t.logger.Info("audit worker finished")
				return
			}
			batch = append(batch, entry)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
