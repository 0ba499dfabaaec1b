package postgres

/*
Реляционный бэкенд хранилища. Работает через database/sql поверх pgx
stdlib драйвера: пула pgx здесь не нужно, нагрузка — редкие зеркальные
записи и выборки для листинга.

Схема: key_metadata (паспорта), key_tags (теги, каскадное удаление),
audit_logs (append-only журнал).
*/

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Драйвер Postgres

	"github.com/acproject/password-manager/internal/domain"
)

type Store struct {
	db *sql.DB
}

// New оборачивает готовое соединение (используется и в тестах со sqlmock).
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open подключается к базе и настраивает пул соединений.
func Open(connString string) (*Store, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("postgres: open failed: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	return &Store{db: db}, nil
}

// Ping проверяет доступность базы при старте.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close возвращает соединения пулу.
func (s *Store) Close() error {
	return s.db.Close()
}

// InitSchema создает таблицы, если их еще нет.
func (s *Store) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS key_metadata (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			key_type TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			status TEXT NOT NULL,
			owner TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			expiration_date TIMESTAMPTZ,
			version INTEGER NOT NULL,
			requires_approval BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS key_tags (
			key_id TEXT NOT NULL REFERENCES key_metadata(id) ON DELETE CASCADE,
			tag_key TEXT NOT NULL,
			tag_value TEXT NOT NULL,
			PRIMARY KEY (key_id, tag_key)
		)`,
		`CREATE TABLE IF NOT EXISTS audit_logs (
			id TEXT PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			user_name TEXT NOT NULL,
			action TEXT NOT NULL,
			key_id TEXT,
			details TEXT,
			success BOOLEAN NOT NULL,
			error TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: schema init failed: %w", err)
		}
	}
	return nil
}

// SaveKeyMetadata — upsert паспорта и полная перезапись тегов в одной
// транзакции: ротация бампает version/updated_at под тем же id.
func (s *Store) SaveKeyMetadata(ctx context.Context, m *domain.KeyMetadata) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO key_metadata
			(id, name, description, key_type, algorithm, status, owner,
			 created_at, updated_at, expiration_date, version, requires_approval)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at,
			expiration_date = EXCLUDED.expiration_date,
			version = EXCLUDED.version,
			requires_approval = EXCLUDED.requires_approval`,
		m.ID, m.Name, m.Description, string(m.KeyType), string(m.Algorithm),
		string(m.Status), m.Owner, m.CreatedAt, m.UpdatedAt, m.ExpirationDate,
		m.Version, m.RequiresApproval,
	)
	if err != nil {
		return fmt.Errorf("postgres: upsert key metadata: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM key_tags WHERE key_id = $1`, m.ID); err != nil {
		return fmt.Errorf("postgres: clear tags: %w", err)
	}
	for k, v := range m.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO key_tags (key_id, tag_key, tag_value) VALUES ($1, $2, $3)`,
			m.ID, k, v,
		); err != nil {
			return fmt.Errorf("postgres: insert tag: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) LoadKeyMetadata(ctx context.Context, keyID string) (*domain.KeyMetadata, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, key_type, algorithm, status, owner,
		       created_at, updated_at, expiration_date, version, requires_approval
		FROM key_metadata WHERE id = $1`, keyID)

	m, err := scanKeyMetadata(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("postgres: key %s: %w", keyID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("postgres: load key metadata: %w", err)
	}

	if err := s.loadTags(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) DeleteKeyMetadata(ctx context.Context, keyID string) error {
	// Теги удаляются каскадно
	_, err := s.db.ExecContext(ctx, `DELETE FROM key_metadata WHERE id = $1`, keyID)
	if err != nil {
		return fmt.Errorf("postgres: delete key metadata: %w", err)
	}
	return nil
}

func (s *Store) ListKeyMetadata(ctx context.Context, filters map[string]string) ([]*domain.KeyMetadata, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT id, name, description, key_type, algorithm, status, owner,
		       created_at, updated_at, expiration_date, version, requires_approval
		FROM key_metadata WHERE 1=1`)

	args := make([]interface{}, 0, len(filters)*2)
	for key, value := range filters {
		switch key {
		case "status":
			args = append(args, value)
			fmt.Fprintf(&query, " AND status = $%d", len(args))
		case "type":
			args = append(args, value)
			fmt.Fprintf(&query, " AND key_type = $%d", len(args))
		case "algorithm":
			args = append(args, value)
			fmt.Fprintf(&query, " AND algorithm = $%d", len(args))
		case "owner":
			args = append(args, value)
			fmt.Fprintf(&query, " AND owner = $%d", len(args))
		default:
			if tagKey, ok := strings.CutPrefix(key, "tag."); ok {
				args = append(args, tagKey, value)
				fmt.Fprintf(&query,
					" AND EXISTS (SELECT 1 FROM key_tags t WHERE t.key_id = key_metadata.id AND t.tag_key = $%d AND t.tag_value = $%d)",
					len(args)-1, len(args))
			}
			// Неизвестные фильтры игнорируем
		}
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list key metadata: %w", err)
	}
	defer rows.Close()

	var result []*domain.KeyMetadata
	for rows.Next() {
		m, err := scanKeyMetadata(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan key metadata: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterate key metadata: %w", err)
	}

	for _, m := range result {
		if err := s.loadTags(ctx, m); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SaveAuditLogs — пакетная вставка. Запрос строится динамически под
// размер пачки (как у всех наших bulk insert'ов).
func (s *Store) SaveAuditLogs(ctx context.Context, entries []domain.AuditLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	const numFields = 8
	placeholders := make([]string, 0, len(entries))
	vals := make([]interface{}, 0, len(entries)*numFields)

	for i, e := range entries {
		p := i * numFields
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			p+1, p+2, p+3, p+4, p+5, p+6, p+7, p+8))
		vals = append(vals, e.ID, e.Timestamp, e.User, e.Action, nullable(e.KeyID), e.Details, e.Success, nullable(e.Error))
	}

	query := fmt.Sprintf(
		"INSERT INTO audit_logs (id, timestamp, user_name, action, key_id, details, success, error) VALUES %s",
		strings.Join(placeholders, ","),
	)

	if _, err := s.db.ExecContext(ctx, query, vals...); err != nil {
		return fmt.Errorf("postgres: insert audit batch: %w", err)
	}
	return nil
}

func (s *Store) LoadAuditLogs(ctx context.Context, filters map[string]string, limit int) ([]domain.AuditLogEntry, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT id, timestamp, user_name, action, key_id, details, success, error FROM audit_logs WHERE 1=1`)

	args := make([]interface{}, 0, len(filters)+1)
	for key, value := range filters {
		switch key {
		case "action":
			args = append(args, value)
			fmt.Fprintf(&query, " AND action = $%d", len(args))
		case "user":
			args = append(args, value)
			fmt.Fprintf(&query, " AND user_name = $%d", len(args))
		case "key_id":
			args = append(args, value)
			fmt.Fprintf(&query, " AND key_id = $%d", len(args))
		case "success":
			args = append(args, value == "true")
			fmt.Fprintf(&query, " AND success = $%d", len(args))
		}
	}

	query.WriteString(" ORDER BY timestamp DESC")
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&query, " LIMIT $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: load audit logs: %w", err)
	}
	defer rows.Close()

	var result []domain.AuditLogEntry
	for rows.Next() {
		var e domain.AuditLogEntry
		var keyID, errMsg sql.NullString
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.User, &e.Action, &keyID, &e.Details, &e.Success, &errMsg); err != nil {
			return nil, fmt.Errorf("postgres: scan audit log: %w", err)
		}
		e.KeyID = keyID.String
		e.Error = errMsg.String
		result = append(result, e)
	}
	return result, rows.Err()
}

func (s *Store) loadTags(ctx context.Context, m *domain.KeyMetadata) error {
	rows, err := s.db.QueryContext(ctx, `SELECT tag_key, tag_value FROM key_tags WHERE key_id = $1`, m.ID)
	if err != nil {
		return fmt.Errorf("postgres: load tags: %w", err)
	}
	defer rows.Close()

	m.Tags = make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return fmt.Errorf("postgres: scan tag: %w", err)
		}
		m.Tags[k] = v
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanKeyMetadata(row rowScanner) (*domain.KeyMetadata, error) {
	var m domain.KeyMetadata
	var keyType, algorithm, status string
	var description sql.NullString
	var expiration sql.NullTime

	err := row.Scan(
		&m.ID, &m.Name, &description, &keyType, &algorithm, &status, &m.Owner,
		&m.CreatedAt, &m.UpdatedAt, &expiration, &m.Version, &m.RequiresApproval,
	)
	if err != nil {
		return nil, err
	}

	m.Description = description.String
	m.KeyType = domain.KeyType(keyType)
	m.Algorithm = domain.KeyAlgorithm(algorithm)
	m.Status = domain.KeyStatus(status)
	if expiration.Valid {
		t := expiration.Time
		m.ExpirationDate = &t
	}
	return &m, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
