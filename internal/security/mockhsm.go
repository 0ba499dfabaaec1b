package security

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"

	"github.com/acproject/password-manager/internal/domain"
)

// MockHSM — детерминированная заглушка вместо настоящего модуля
// безопасности. Материал выводится через HKDF из фиксированного сида,
// так что тесты воспроизводимы; криптографической ценности у заглушки нет.
type MockHSM struct {
	mu   sync.Mutex
	keys map[string][]byte
	seed []byte
	ctr  int
}

// NewMockHSM создает заглушку с in-memory хранилищем материала.
func NewMockHSM() *MockHSM {
	return &MockHSM{
		keys: make(map[string][]byte),
		seed: []byte("mock-hsm-deterministic-seed"),
	}
}

// keySize возвращает размер материала в байтах для алгоритма.
func keySize(algorithm domain.KeyAlgorithm) int {
	switch algorithm {
	case domain.AlgorithmRSA2048:
		return 256
	case domain.AlgorithmRSA4096:
		return 512
	default:
		// AES-256, ECDSA, ED25519 — 32 байта
		return 32
	}
}

func (h *MockHSM) GenerateKey(_ context.Context, algorithm domain.KeyAlgorithm) ([]byte, error) {
	size := keySize(algorithm)

	h.mu.Lock()
	h.ctr++
	info := fmt.Sprintf("%s/%d", algorithm, h.ctr)
	h.mu.Unlock()

	out := make([]byte, size)
	r := hkdf.New(sha256.New, h.seed, nil, []byte(info))
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("hsm: key derivation failed: %w", err)
	}
	return out, nil
}

func (h *MockHSM) StoreKey(_ context.Context, keyID string, keyData []byte) error {
	cp := make([]byte, len(keyData))
	copy(cp, keyData)

	h.mu.Lock()
	h.keys[keyID] = cp
	h.mu.Unlock()
	return nil
}

func (h *MockHSM) RetrieveKey(_ context.Context, keyID string) ([]byte, error) {
	h.mu.Lock()
	data, ok := h.keys[keyID]
	h.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("hsm: no key material for %s: %w", keyID, domain.ErrNotFound)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (h *MockHSM) DeleteKey(_ context.Context, keyID string) error {
	h.mu.Lock()
	delete(h.keys, keyID)
	h.mu.Unlock()
	return nil
}

// Sign — HMAC-SHA256 поверх материала ключа. Детерминированно, проверяемо
// через Verify, не имеет отношения к реальным подписям.
func (h *MockHSM) Sign(ctx context.Context, keyID string, data []byte) ([]byte, error) {
	key, err := h.RetrieveKey(ctx, keyID)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil), nil
}

func (h *MockHSM) Verify(ctx context.Context, keyID string, data, signature []byte) (bool, error) {
	expected, err := h.Sign(ctx, keyID, data)
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected, signature), nil
}

// Encrypt — XOR с HKDF-потоком от материала ключа. Decrypt симметричен.
func (h *MockHSM) Encrypt(ctx context.Context, keyID string, plaintext []byte) ([]byte, error) {
	return h.xorStream(ctx, keyID, plaintext)
}

func (h *MockHSM) Decrypt(ctx context.Context, keyID string, ciphertext []byte) ([]byte, error) {
	return h.xorStream(ctx, keyID, ciphertext)
}

func (h *MockHSM) xorStream(ctx context.Context, keyID string, in []byte) ([]byte, error) {
	key, err := h.RetrieveKey(ctx, keyID)
	if err != nil {
		return nil, err
	}

	stream := make([]byte, len(in))
	r := hkdf.New(sha256.New, key, nil, []byte("mock-hsm-stream"))
	if _, err := io.ReadFull(r, stream); err != nil {
		return nil, fmt.Errorf("hsm: stream derivation failed: %w", err)
	}

	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[i] ^ stream[i]
	}
	return out, nil
}
