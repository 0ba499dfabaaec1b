package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/acproject/password-manager/internal/domain"
)

// Ключи в Redis. Индекс нужен, чтобы листинг не ходил по KEYS/SCAN.
const (
	keyPrefix   = "kms:key:"  // kms:key:<id> -> JSON паспорта
	keyIndexSet = "kms:keys"  // SET всех id
	auditList   = "kms:audit" // LIST записей аудита, новые — слева
)

// Store — Redis-бэкенд. Фильтрация листинга выполняется на клиенте:
// объемы метаданных небольшие, вторичные индексы не окупаются.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) SaveKeyMetadata(ctx context.Context, m *domain.KeyMetadata) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("redisstore: marshal metadata: %w", err)
	}
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, keyPrefix+m.ID, data, 0)
	pipe.SAdd(ctx, keyIndexSet, m.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redisstore: save metadata: %w", err)
	}
	return nil
}

func (s *Store) LoadKeyMetadata(ctx context.Context, keyID string) (*domain.KeyMetadata, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+keyID).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("redisstore: key %s: %w", keyID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: load metadata: %w", err)
	}
	var m domain.KeyMetadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("redisstore: parse metadata: %w", err)
	}
	return &m, nil
}

func (s *Store) DeleteKeyMetadata(ctx context.Context, keyID string) error {
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, keyPrefix+keyID)
	pipe.SRem(ctx, keyIndexSet, keyID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redisstore: delete metadata: %w", err)
	}
	return nil
}

func (s *Store) ListKeyMetadata(ctx context.Context, filters map[string]string) ([]*domain.KeyMetadata, error) {
	ids, err := s.rdb.SMembers(ctx, keyIndexSet).Result()
	if err != nil {
		return nil, fmt.Errorf("redisstore: read key index: %w", err)
	}

	var result []*domain.KeyMetadata
	for _, id := range ids {
		m, err := s.LoadKeyMetadata(ctx, id)
		if err != nil {
			// Индекс может опережать удаление паспорта, такую дыру пропускаем
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if m.MatchesFilters(filters) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (s *Store) SaveAuditLogs(ctx context.Context, entries []domain.AuditLogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("redisstore: marshal audit entry: %w", err)
		}
		values = append(values, data)
	}
	// LPUSH кладет в порядке аргументов, поэтому новые записи оказываются слева
	if err := s.rdb.LPush(ctx, auditList, values...).Err(); err != nil {
		return fmt.Errorf("redisstore: push audit entries: %w", err)
	}
	return nil
}

func (s *Store) LoadAuditLogs(ctx context.Context, filters map[string]string, limit int) ([]domain.AuditLogEntry, error) {
	lines, err := s.rdb.LRange(ctx, auditList, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redisstore: read audit list: %w", err)
	}

	var matched []domain.AuditLogEntry
	for _, line := range lines {
		var e domain.AuditLogEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			return nil, fmt.Errorf("redisstore: parse audit entry: %w", err)
		}
		if e.MatchesFilters(filters) {
			matched = append(matched, e)
			if limit > 0 && len(matched) == limit {
				break
			}
		}
	}
	return matched, nil
}
