package security_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acproject/password-manager/internal/domain"
	"github.com/acproject/password-manager/internal/security"
)

func TestGenerateKey_SizesAndUniqueness(t *testing.T) {
	ctx := context.Background()
	hsm := security.NewMockHSM()

	cases := []struct {
		algorithm domain.KeyAlgorithm
		size      int
	}{
		{domain.AlgorithmAES256, 32},
		{domain.AlgorithmRSA2048, 256},
		{domain.AlgorithmRSA4096, 512},
		{domain.AlgorithmECDSA, 32},
		{domain.AlgorithmED25519, 32},
	}
	for _, tc := range cases {
		t.Run(string(tc.algorithm), func(t *testing.T) {
			key, err := hsm.GenerateKey(ctx, tc.algorithm)
			require.NoError(t, err)
			assert.Len(t, key, tc.size)
		})
	}

	// Повторная генерация под тем же алгоритмом дает другой материал
	a, err := hsm.GenerateKey(ctx, domain.AlgorithmAES256)
	require.NoError(t, err)
	b, err := hsm.GenerateKey(ctx, domain.AlgorithmAES256)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStoreRetrieveDelete(t *testing.T) {
	ctx := context.Background()
	hsm := security.NewMockHSM()

	key, err := hsm.GenerateKey(ctx, domain.AlgorithmAES256)
	require.NoError(t, err)
	require.NoError(t, hsm.StoreKey(ctx, "k1", key))

	got, err := hsm.RetrieveKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, key, got)

	// Возвращаемый материал — копия, мутация не влияет на хранилище
	got[0] ^= 0xFF
	again, err := hsm.RetrieveKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, key, again)

	// Перезапись под тем же id (ротация)
	rotated, err := hsm.GenerateKey(ctx, domain.AlgorithmAES256)
	require.NoError(t, err)
	require.NoError(t, hsm.StoreKey(ctx, "k1", rotated))
	got, err = hsm.RetrieveKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, rotated, got)

	require.NoError(t, hsm.DeleteKey(ctx, "k1"))
	_, err = hsm.RetrieveKey(ctx, "k1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Удаление несуществующего — не ошибка
	assert.NoError(t, hsm.DeleteKey(ctx, "k1"))
}

func TestSignVerify(t *testing.T) {
	ctx := context.Background()
	hsm := security.NewMockHSM()
	key, _ := hsm.GenerateKey(ctx, domain.AlgorithmED25519)
	require.NoError(t, hsm.StoreKey(ctx, "k1", key))

	data := []byte("payload")
	sig, err := hsm.Sign(ctx, "k1", data)
	require.NoError(t, err)

	ok, err := hsm.Verify(ctx, "k1", data, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hsm.Verify(ctx, "k1", []byte("tampered"), sig)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = hsm.Sign(ctx, "missing", data)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEncryptDecrypt(t *testing.T) {
	ctx := context.Background()
	hsm := security.NewMockHSM()
	key, _ := hsm.GenerateKey(ctx, domain.AlgorithmAES256)
	require.NoError(t, hsm.StoreKey(ctx, "k1", key))

	plaintext := []byte("top secret value")
	ciphertext, err := hsm.Encrypt(ctx, "k1", plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := hsm.Decrypt(ctx, "k1", ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}
