package engine

/*
Файл engine.go реализует ядро управления ключами: in-memory реестр
паспортов, таблицу отложенных подтверждений и запись в журнал аудита.

Память — система записи на время жизни процесса. PersistenceStore —
асинхронное best-effort зеркало: его сбои логируются и никогда не
возвращаются вызывающему. Каждая мутирующая операция оставляет ровно
одну запись аудита (успех или отказ); сбой SecurityModule прерывает
операцию до любой мутации и до аудита.
*/

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acproject/password-manager/internal/audit"
	"github.com/acproject/password-manager/internal/domain"
	"github.com/acproject/password-manager/internal/persistence"
	"github.com/acproject/password-manager/internal/security"
)

const mirrorTimeout = 5 * time.Second

type KeyManagementEngine struct {
	security security.Module
	store    persistence.Store // nil — без зеркалирования
	trail    *audit.Trail
	logger   *zap.Logger

	mu        sync.RWMutex
	keys      map[string]*domain.KeyMetadata
	approvals map[string]domain.PendingApproval

	// Зеркальные записи — отвязанные горутины; Close дожидается их
	mirrorWG sync.WaitGroup
}

// CreateKeyRequest — параметры create_key после валидации командного слоя.
type CreateKeyRequest struct {
	Name             string
	Description      string
	KeyType          domain.KeyType
	Algorithm        domain.KeyAlgorithm
	Owner            string
	RequiresApproval bool
	Tags             map[string]string
	ExpirationDate   *time.Time
}

func NewKeyManagementEngine(sec security.Module, store persistence.Store, trail *audit.Trail, logger *zap.Logger) *KeyManagementEngine {
	return &KeyManagementEngine{
		security:  sec,
		store:     store,
		trail:     trail,
		logger:    logger.With(zap.String("mod", "engine")),
		keys:      make(map[string]*domain.KeyMetadata),
		approvals: make(map[string]domain.PendingApproval),
	}
}

// CreateKey создает паспорт, генерирует и сохраняет материал в HSM,
// после чего коммитит паспорт в память. Любой сбой HSM прерывает
// операцию до мутаций и до записи аудита.
func (e *KeyManagementEngine) CreateKey(ctx context.Context, req CreateKeyRequest) (*domain.KeyMetadata, error) {
	if req.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	m := domain.NewKeyMetadata(req.Name, req.Description, req.KeyType, req.Algorithm, req.Owner, req.RequiresApproval)
	for k, v := range req.Tags {
		m.Tags[k] = v
	}
	m.ExpirationDate = req.ExpirationDate

	material, err := e.security.GenerateKey(ctx, req.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("generate key material: %w", err)
	}
	if err := e.security.StoreKey(ctx, m.ID, material); err != nil {
		return nil, fmt.Errorf("store key material: %w", err)
	}

	// После публикации в реестре живой указатель читается только под
	// блокировкой; наружу и в зеркало уходит снимок
	e.mu.Lock()
	e.keys[m.ID] = m
	snapshot := cloneMetadata(m)
	e.mu.Unlock()

	e.mirrorSave(snapshot)
	e.trail.Record(domain.NewAuditEntry("create_key", req.Owner, snapshot.ID,
		fmt.Sprintf("created %s key %q (%s)", snapshot.KeyType, snapshot.Name, snapshot.Algorithm)))

	e.logger.Info("key created",
		zap.String("key_id", snapshot.ID),
		zap.String("algorithm", string(snapshot.Algorithm)),
		zap.String("owner", snapshot.Owner),
	)
	return snapshot, nil
}

// RotateKey перегенерирует материал и бампает версию. Ключ под
// requires_approval не ротируется: фиксируется отложенная операция,
// а вызывающему возвращается ApprovalRequiredError со свежим operation id.
func (e *KeyManagementEngine) RotateKey(ctx context.Context, keyID, user string) (*domain.KeyMetadata, error) {
	e.mu.Lock()
	m, ok := e.keys[keyID]
	if !ok {
		e.mu.Unlock()
		e.trail.Record(domain.NewAuditError("rotate_key", user, keyID, "rotation rejected", "key not found"))
		return nil, fmt.Errorf("rotate key %s: %w", keyID, domain.ErrNotFound)
	}
	if m.Status != domain.KeyStatusActive {
		status := m.Status
		e.mu.Unlock()
		e.trail.Record(domain.NewAuditError("rotate_key", user, keyID, "rotation rejected",
			fmt.Sprintf("key status is %s", status)))
		return nil, fmt.Errorf("rotate key %s in status %s: %w", keyID, status, domain.ErrInvalidState)
	}
	if m.RequiresApproval {
		approval := domain.PendingApproval{
			OperationID: uuid.New().String(),
			KeyID:       keyID,
			Operation:   "ROTATE",
			RequestedBy: user,
			RequestedAt: time.Now().UTC(),
		}
		e.approvals[approval.OperationID] = approval
		e.mu.Unlock()

		e.trail.Record(domain.NewAuditEntry("rotate_key", user, keyID,
			fmt.Sprintf("rotation requires approval, operation %s recorded", approval.OperationID)))
		return nil, &domain.ApprovalRequiredError{
			OperationID: approval.OperationID,
			KeyID:       keyID,
			Operation:   "ROTATE",
		}
	}
	alg := m.Algorithm
	e.mu.Unlock()

	// Криптография — вне блокировки: HSM может быть сетевым
	material, err := e.security.GenerateKey(ctx, alg)
	if err != nil {
		return nil, fmt.Errorf("generate key material: %w", err)
	}
	if err := e.security.StoreKey(ctx, keyID, material); err != nil {
		return nil, fmt.Errorf("store key material: %w", err)
	}

	e.mu.Lock()
	m, ok = e.keys[keyID]
	if !ok {
		// Ключ удалили, пока мы ходили в HSM
		e.mu.Unlock()
		e.trail.Record(domain.NewAuditError("rotate_key", user, keyID, "rotation rejected", "key not found"))
		return nil, fmt.Errorf("rotate key %s: %w", keyID, domain.ErrNotFound)
	}
	m.Version++
	m.UpdatedAt = time.Now().UTC()
	snapshot := cloneMetadata(m)
	e.mu.Unlock()

	e.mirrorSave(snapshot)
	e.trail.Record(domain.NewAuditEntry("rotate_key", user, keyID,
		fmt.Sprintf("rotated to version %d", snapshot.Version)))

	e.logger.Info("key rotated", zap.String("key_id", keyID), zap.Int("version", snapshot.Version))
	return snapshot, nil
}

// GetKey возвращает копию паспорта.
func (e *KeyManagementEngine) GetKey(keyID string) (*domain.KeyMetadata, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, ok := e.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("get key %s: %w", keyID, domain.ErrNotFound)
	}
	return cloneMetadata(m), nil
}

// DeleteKey уничтожает материал в HSM и убирает паспорт из реестра.
func (e *KeyManagementEngine) DeleteKey(ctx context.Context, keyID, user string) error {
	e.mu.RLock()
	_, ok := e.keys[keyID]
	e.mu.RUnlock()
	if !ok {
		e.trail.Record(domain.NewAuditError("delete_key", user, keyID, "deletion rejected", "key not found"))
		return fmt.Errorf("delete key %s: %w", keyID, domain.ErrNotFound)
	}

	// Сначала материал: если HSM отказал, паспорт не трогаем
	if err := e.security.DeleteKey(ctx, keyID); err != nil {
		return fmt.Errorf("delete key material: %w", err)
	}

	e.mu.Lock()
	m, ok := e.keys[keyID]
	if ok {
		m.Status = domain.KeyStatusDestroyed
		m.UpdatedAt = time.Now().UTC()
		delete(e.keys, keyID)
	}
	e.mu.Unlock()

	e.mirrorDelete(keyID)
	e.trail.Record(domain.NewAuditEntry("delete_key", user, keyID, "key destroyed"))
	e.logger.Info("key destroyed", zap.String("key_id", keyID))
	return nil
}

// ListKeys возвращает копии паспортов по AND-комбинации фильтров,
// стабильно упорядоченные по времени создания.
func (e *KeyManagementEngine) ListKeys(filters map[string]string) []*domain.KeyMetadata {
	e.mu.RLock()
	result := make([]*domain.KeyMetadata, 0, len(e.keys))
	for _, m := range e.keys {
		if m.MatchesFilters(filters) {
			result = append(result, cloneMetadata(m))
		}
	}
	e.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// ListAudit — выборка из журнала аудита, новые записи первыми.
func (e *KeyManagementEngine) ListAudit(filters map[string]string, limit int) []domain.AuditLogEntry {
	return e.trail.Query(filters, limit)
}

// ListApprovals возвращает отложенные операции в порядке запроса.
func (e *KeyManagementEngine) ListApprovals() []domain.PendingApproval {
	e.mu.RLock()
	result := make([]domain.PendingApproval, 0, len(e.approvals))
	for _, a := range e.approvals {
		result = append(result, a)
	}
	e.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].RequestedAt.Equal(result[j].RequestedAt) {
			return result[i].OperationID < result[j].OperationID
		}
		return result[i].RequestedAt.Before(result[j].RequestedAt)
	})
	return result
}

// Sign подписывает данные материалом указанного ключа.
func (e *KeyManagementEngine) Sign(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	if err := e.ensureKnown(keyID); err != nil {
		return nil, err
	}
	return e.security.Sign(ctx, keyID, data)
}

func (e *KeyManagementEngine) Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error) {
	if err := e.ensureKnown(keyID); err != nil {
		return false, err
	}
	return e.security.Verify(ctx, keyID, data, signature)
}

func (e *KeyManagementEngine) Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error) {
	if err := e.ensureKnown(keyID); err != nil {
		return nil, err
	}
	return e.security.Encrypt(ctx, keyID, plaintext)
}

func (e *KeyManagementEngine) Decrypt(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error) {
	if err := e.ensureKnown(keyID); err != nil {
		return nil, err
	}
	return e.security.Decrypt(ctx, keyID, ciphertext)
}

// Close дожидается отвязанных зеркальных записей (сам журнал аудита
// останавливается отдельно, владельцем trail).
func (e *KeyManagementEngine) Close() {
	e.mirrorWG.Wait()
}

func (e *KeyManagementEngine) ensureKnown(keyID string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if _, ok := e.keys[keyID]; !ok {
		return fmt.Errorf("key %s: %w", keyID, domain.ErrNotFound)
	}
	return nil
}

// mirrorSave — fire-and-forget запись паспорта в хранилище.
func (e *KeyManagementEngine) mirrorSave(m *domain.KeyMetadata) {
	if e.store == nil {
		return
	}
	snapshot := cloneMetadata(m)
	e.mirrorWG.Add(1)
	go func() {
		defer e.mirrorWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := e.store.SaveKeyMetadata(ctx, snapshot); err != nil {
			e.logger.Error("metadata mirror failed", zap.String("key_id", snapshot.ID), zap.Error(err))
		}
	}()
}

func (e *KeyManagementEngine) mirrorDelete(keyID string) {
	if e.store == nil {
		return
	}
	e.mirrorWG.Add(1)
	go func() {
		defer e.mirrorWG.Done()
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := e.store.DeleteKeyMetadata(ctx, keyID); err != nil {
			e.logger.Error("metadata mirror delete failed", zap.String("key_id", keyID), zap.Error(err))
		}
	}()
}

func cloneMetadata(m *domain.KeyMetadata) *domain.KeyMetadata {
	c := *m
	c.Tags = make(map[string]string, len(m.Tags))
	for k, v := range m.Tags {
		c.Tags[k] = v
	}
	if m.ExpirationDate != nil {
		t := *m.ExpirationDate
		c.ExpirationDate = &t
	}
	return &c
}
