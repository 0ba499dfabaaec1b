package domain

import (
	"time"

	"github.com/google/uuid"
)

// KeyStatus — состояние ключа в жизненном цикле.
type KeyStatus string

const (
	KeyStatusActive             KeyStatus = "ACTIVE"
	KeyStatusSuspended          KeyStatus = "SUSPENDED"
	KeyStatusExpired            KeyStatus = "EXPIRED"
	KeyStatusCompromised        KeyStatus = "COMPROMISED"
	KeyStatusDestroyed          KeyStatus = "DESTROYED"
	KeyStatusPendingDestruction KeyStatus = "PENDING_DESTRUCTION"
)

// KeyType — назначение ключевого материала.
type KeyType string

const (
	KeyTypeSymmetric         KeyType = "SYMMETRIC"
	KeyTypeAsymmetricPrivate KeyType = "ASYMMETRIC_PRIVATE"
	KeyTypeAsymmetricPublic  KeyType = "ASYMMETRIC_PUBLIC"
	KeyTypeHMAC              KeyType = "HMAC"
	KeyTypePassword          KeyType = "PASSWORD"
)

// KeyAlgorithm — поддерживаемые алгоритмы. Строковые метки совпадают
// с тем, что хранится в БД и передается в командах.
type KeyAlgorithm string

const (
	AlgorithmAES256  KeyAlgorithm = "AES-256"
	AlgorithmRSA2048 KeyAlgorithm = "RSA-2048"
	AlgorithmRSA4096 KeyAlgorithm = "RSA-4096"
	AlgorithmECDSA   KeyAlgorithm = "ECDSA"
	AlgorithmED25519 KeyAlgorithm = "ED25519"
)

// ParseKeyType валидирует строковую метку типа ключа.
func ParseKeyType(s string) (KeyType, error) {
	switch KeyType(s) {
	case KeyTypeSymmetric, KeyTypeAsymmetricPrivate, KeyTypeAsymmetricPublic, KeyTypeHMAC, KeyTypePassword:
		return KeyType(s), nil
	}
	return "", &ValidationError{Field: "key_type", Value: s, Reason: "unknown key type"}
}

// ParseKeyAlgorithm валидирует строковую метку алгоритма.
func ParseKeyAlgorithm(s string) (KeyAlgorithm, error) {
	switch KeyAlgorithm(s) {
	case AlgorithmAES256, AlgorithmRSA2048, AlgorithmRSA4096, AlgorithmECDSA, AlgorithmED25519:
		return KeyAlgorithm(s), nil
	}
	return "", &ValidationError{Field: "algorithm", Value: s, Reason: "unknown algorithm"}
}

// KeyMetadata — паспорт ключа. Сам ключевой материал здесь не хранится,
// он живет только внутри SecurityModule.
type KeyMetadata struct {
	ID               string            `json:"id"` // UUID, неизменяемый
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	KeyType          KeyType           `json:"key_type"`
	Algorithm        KeyAlgorithm      `json:"algorithm"`
	Status           KeyStatus         `json:"status"`
	Owner            string            `json:"owner"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	ExpirationDate   *time.Time        `json:"expiration_date,omitempty"`
	Version          int               `json:"version"` // >=1, растет при ротации
	RequiresApproval bool              `json:"requires_approval"`
	Tags             map[string]string `json:"tags"`
}

// NewKeyMetadata создает паспорт нового активного ключа первой версии.
func NewKeyMetadata(name, description string, keyType KeyType, algorithm KeyAlgorithm, owner string, requiresApproval bool) *KeyMetadata {
	now := time.Now().UTC()
	return &KeyMetadata{
		ID:               uuid.New().String(),
		Name:             name,
		Description:      description,
		KeyType:          keyType,
		Algorithm:        algorithm,
		Status:           KeyStatusActive,
		Owner:            owner,
		CreatedAt:        now,
		UpdatedAt:        now,
		Version:          1,
		RequiresApproval: requiresApproval,
		Tags:             make(map[string]string),
	}
}

// MatchesFilters проверяет AND-комбинацию фильтров листинга.
// Неизвестные ключи фильтра игнорируются — контракт должен оставаться
// forward-compatible для новых полей.
func (m *KeyMetadata) MatchesFilters(filters map[string]string) bool {
	for key, want := range filters {
		switch key {
		case "status":
			if string(m.Status) != want {
				return false
			}
		case "type":
			if string(m.KeyType) != want {
				return false
			}
		case "algorithm":
			if string(m.Algorithm) != want {
				return false
			}
		case "owner":
			if m.Owner != want {
				return false
			}
		default:
			if tagKey, ok := cutTagPrefix(key); ok {
				if got, exists := m.Tags[tagKey]; !exists || got != want {
					return false
				}
			}
		}
	}
	return true
}

const tagFilterPrefix = "tag."

func cutTagPrefix(key string) (string, bool) {
	if len(key) > len(tagFilterPrefix) && key[:len(tagFilterPrefix)] == tagFilterPrefix {
		return key[len(tagFilterPrefix):], true
	}
	return "", false
}

// AuditLogEntry — запись аудита. Append-only: однажды записанная,
// никогда не изменяется и не удаляется.
type AuditLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	KeyID     string    `json:"key_id,omitempty"`
	Details   string    `json:"details"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewAuditEntry создает успешную запись аудита.
func NewAuditEntry(action, user, keyID, details string) AuditLogEntry {
	return AuditLogEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		User:      user,
		Action:    action,
		KeyID:     keyID,
		Details:   details,
		Success:   true,
	}
}

// NewAuditError создает запись аудита для отклоненной операции.
func NewAuditError(action, user, keyID, details, errMsg string) AuditLogEntry {
	e := NewAuditEntry(action, user, keyID, details)
	e.Success = false
	e.Error = errMsg
	return e
}

// MatchesFilters — AND-фильтр по полям записи аудита.
func (e *AuditLogEntry) MatchesFilters(filters map[string]string) bool {
	for key, want := range filters {
		switch key {
		case "action":
			if e.Action != want {
				return false
			}
		case "user":
			if e.User != want {
				return false
			}
		case "key_id":
			if e.KeyID != want {
				return false
			}
		case "success":
			if (want == "true") != e.Success {
				return false
			}
		}
	}
	return true
}

// PendingApproval — отложенная операция, ожидающая подтверждения.
// Сама операция не выполняется: фиксируется только факт запроса.
type PendingApproval struct {
	OperationID string    `json:"operation_id"` // UUID
	KeyID       string    `json:"key_id"`
	Operation   string    `json:"operation"` // например, "ROTATE"
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"`
}

// CommandResult — унифицированный ответ командного слоя.
type CommandResult struct {
	Success      bool   `json:"success"`
	Result       string `json:"result"`        // сериализованный payload при успехе
	ErrorMessage string `json:"error_message"` // текст ошибки при отказе
}
