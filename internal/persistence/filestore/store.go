package filestore

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/acproject/password-manager/internal/domain"
)

// Store — файловый бэкенд: паспорт ключа лежит отдельным JSON-файлом
// в <base>/metadata/, журнал аудита — append-only JSONL в <base>/audit.log.
// Годится для одиночного процесса без внешних зависимостей.
type Store struct {
	metadataDir  string
	auditLogFile string

	// Защищает append в audit.log от параллельных пачек
	auditMu sync.Mutex
}

// New создает каталоги хранилища при необходимости.
func New(baseDir string) (*Store, error) {
	metadataDir := filepath.Join(baseDir, "metadata")
	if err := os.MkdirAll(metadataDir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create metadata dir: %w", err)
	}
	return &Store{
		metadataDir:  metadataDir,
		auditLogFile: filepath.Join(baseDir, "audit.log"),
	}, nil
}

func (s *Store) metadataPath(keyID string) string {
	return filepath.Join(s.metadataDir, keyID+".json")
}

func (s *Store) SaveKeyMetadata(_ context.Context, m *domain.KeyMetadata) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: marshal metadata: %w", err)
	}
	if err := os.WriteFile(s.metadataPath(m.ID), data, 0o644); err != nil {
		return fmt.Errorf("filestore: write metadata: %w", err)
	}
	return nil
}

func (s *Store) LoadKeyMetadata(_ context.Context, keyID string) (*domain.KeyMetadata, error) {
	data, err := os.ReadFile(s.metadataPath(keyID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("filestore: key %s: %w", keyID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("filestore: read metadata: %w", err)
	}

	var m domain.KeyMetadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("filestore: parse metadata: %w", err)
	}
	return &m, nil
}

func (s *Store) DeleteKeyMetadata(_ context.Context, keyID string) error {
	err := os.Remove(s.metadataPath(keyID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: delete metadata: %w", err)
	}
	return nil
}

func (s *Store) ListKeyMetadata(_ context.Context, filters map[string]string) ([]*domain.KeyMetadata, error) {
	entries, err := os.ReadDir(s.metadataDir)
	if err != nil {
		return nil, fmt.Errorf("filestore: read metadata dir: %w", err)
	}

	var result []*domain.KeyMetadata
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.metadataDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("filestore: read metadata: %w", err)
		}
		var m domain.KeyMetadata
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("filestore: parse %s: %w", entry.Name(), err)
		}
		if m.MatchesFilters(filters) {
			result = append(result, &m)
		}
	}
	return result, nil
}

func (s *Store) SaveAuditLogs(_ context.Context, entries []domain.AuditLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	s.auditMu.Lock()
	defer s.auditMu.Unlock()

	f, err := os.OpenFile(s.auditLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("filestore: open audit log: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		line, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("filestore: marshal audit entry: %w", err)
		}
		w.Write(line)
		w.WriteByte('\n')
	}
	return w.Flush()
}

func (s *Store) LoadAuditLogs(_ context.Context, filters map[string]string, limit int) ([]domain.AuditLogEntry, error) {
	f, err := os.Open(s.auditLogFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("filestore: open audit log: %w", err)
	}
	defer f.Close()

	var matched []domain.AuditLogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e domain.AuditLogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("filestore: parse audit line: %w", err)
		}
		if e.MatchesFilters(filters) {
			matched = append(matched, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("filestore: read audit log: %w", err)
	}

	// Файл пишется в хронологическом порядке, контракт — новые первыми
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
