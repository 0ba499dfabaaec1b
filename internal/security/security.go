package security

import (
	"context"

	"github.com/acproject/password-manager/internal/domain"
)

// Module — граница работы с ключевым материалом. За этим интерфейсом
// может стоять настоящий HSM (в том числе сетевой), поэтому все операции
// принимают контекст.
type Module interface {
	// GenerateKey создает ключевой материал для алгоритма.
	GenerateKey(ctx context.Context, algorithm domain.KeyAlgorithm) ([]byte, error)
	// StoreKey сохраняет материал под идентификатором ключа; повторное
	// сохранение под тем же id перезаписывает материал (ротация).
	StoreKey(ctx context.Context, keyID string, keyData []byte) error
	// RetrieveKey возвращает материал по идентификатору.
	RetrieveKey(ctx context.Context, keyID string) ([]byte, error)
	// DeleteKey удаляет материал; удаление несуществующего ключа — не ошибка.
	DeleteKey(ctx context.Context, keyID string) error

	Sign(ctx context.Context, keyID string, data []byte) ([]byte, error)
	Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error)
	Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error)
}
