// Package persistence определяет контракт долговременного хранилища
// метаданных ключей и журнала аудита. Хранилище — зеркало durability:
// авторитетным на время жизни процесса остается состояние в памяти движка,
// записи выполняются асинхронно и best-effort.
package persistence

import (
	"context"

	"github.com/acproject/password-manager/internal/domain"
)

// Store — взаимозаменяемые бэкенды: реляционный (postgres), файловый
// и redis. Выбор делается при сборке (dependency injection), реализация
// не инспектируется в рантайме.
type Store interface {
	// SaveKeyMetadata создает или перезаписывает паспорт ключа вместе с тегами.
	SaveKeyMetadata(ctx context.Context, metadata *domain.KeyMetadata) error
	// LoadKeyMetadata возвращает паспорт по id, domain.ErrNotFound если его нет.
	LoadKeyMetadata(ctx context.Context, keyID string) (*domain.KeyMetadata, error)
	// DeleteKeyMetadata удаляет паспорт и его теги (cascade).
	DeleteKeyMetadata(ctx context.Context, keyID string) error
	// ListKeyMetadata — AND-фильтры: status, type, algorithm, owner, tag.<k>.
	// Неизвестные ключи фильтра игнорируются.
	ListKeyMetadata(ctx context.Context, filters map[string]string) ([]*domain.KeyMetadata, error)

	// SaveAuditLogs сохраняет пачку записей аудита за один вызов.
	SaveAuditLogs(ctx context.Context, entries []domain.AuditLogEntry) error
	// LoadAuditLogs — фильтры action, user, key_id, success; новые записи
	// первыми; limit <= 0 означает «без ограничения».
	LoadAuditLogs(ctx context.Context, filters map[string]string, limit int) ([]domain.AuditLogEntry, error)
}
