package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/qrbadge/internal/badge/domain"
)

func newTestKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewAESCBCEngine(t *testing.T) {
	t.Run("valid 256-bit key", func(t *testing.T) {
		engine, err := NewAESCBCEngine(newTestKey(t))
		assert.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("invalid key size - too small", func(t *testing.T) {
		engine, err := NewAESCBCEngine(make([]byte, 16))
		assert.ErrorIs(t, err, domain.ErrInvalidKeySize)
		assert.Nil(t, engine)
	})

	t.Run("invalid key size - too large", func(t *testing.T) {
		engine, err := NewAESCBCEngine(make([]byte, 64))
		assert.ErrorIs(t, err, domain.ErrInvalidKeySize)
		assert.Nil(t, engine)
	})
}

func TestAESCBCEngine_Encrypt(t *testing.T) {
	engine, err := NewAESCBCEngine(newTestKey(t))
	require.NoError(t, err)

	t.Run("produces 16-byte iv and block-aligned ciphertext", func(t *testing.T) {
		envelope, err := engine.Encrypt("hello")
		assert.NoError(t, err)
		assert.Len(t, envelope.IV, domain.IVSize)
		assert.NotEmpty(t, envelope.Ciphertext)
		assert.Zero(t, len(envelope.Ciphertext)%16)
	})

	t.Run("empty plaintext still produces one padding block", func(t *testing.T) {
		envelope, err := engine.Encrypt("")
		assert.NoError(t, err)
		assert.Len(t, envelope.Ciphertext, 16)
	})

	t.Run("no envelope collision across repeated encryptions", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			envelope, err := engine.Encrypt("same plaintext every time")
			require.NoError(t, err)

			text := envelope.String()
			assert.False(t, seen[text], "envelope repeated on trial %d", i)
			seen[text] = true
		}
	})
}

func TestAESCBCEngine_Decrypt(t *testing.T) {
	key := newTestKey(t)
	engine, err := NewAESCBCEngine(key)
	require.NoError(t, err)

	t.Run("round-trips plaintext exactly", func(t *testing.T) {
		plaintexts := []string{
			"hello",
			"",
			"الاسم: محمد علي\nالرقم الوظيفي: 12345\nالقسم: تقنية المعلومات",
			"exactly sixteen.",  // block-aligned input forces a full padding block
			"multi\nline\ntext with unicode: ✓",
		}

		for _, plaintext := range plaintexts {
			envelope, err := engine.Encrypt(plaintext)
			require.NoError(t, err)

			decrypted, err := engine.Decrypt(envelope)
			assert.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		}
	})

	t.Run("round-trips through the wire representation", func(t *testing.T) {
		envelope, err := engine.Encrypt("wire trip")
		require.NoError(t, err)

		parsed, err := domain.NewCiphertextEnvelope(envelope.String())
		require.NoError(t, err)

		decrypted, err := engine.Decrypt(parsed)
		assert.NoError(t, err)
		assert.Equal(t, "wire trip", decrypted)
	})

	t.Run("wrong key fails", func(t *testing.T) {
		envelope, err := engine.Encrypt("secret")
		require.NoError(t, err)

		other, err := NewAESCBCEngine(newTestKey(t))
		require.NoError(t, err)

		decrypted, err := other.Decrypt(envelope)
		// CBC has no authentication: a wrong key surfaces as a padding error
		// or as garbage that differs from the plaintext.
		if err == nil {
			assert.NotEqual(t, "secret", decrypted)
		}
	})

	t.Run("invalid iv size fails", func(t *testing.T) {
		envelope, err := engine.Encrypt("secret")
		require.NoError(t, err)
		envelope.IV = envelope.IV[:8]

		_, err = engine.Decrypt(envelope)
		assert.ErrorIs(t, err, domain.ErrInvalidIVSize)
	})

	t.Run("non block-aligned ciphertext fails", func(t *testing.T) {
		envelope, err := engine.Encrypt("secret")
		require.NoError(t, err)
		envelope.Ciphertext = envelope.Ciphertext[:len(envelope.Ciphertext)-1]

		_, err = engine.Decrypt(envelope)
		assert.Error(t, err)
	})
}

func TestPKCS7(t *testing.T) {
	t.Run("pads to block size", func(t *testing.T) {
		padded := pkcs7Pad([]byte("12345"), 16)
		assert.Len(t, padded, 16)
		assert.Equal(t, byte(11), padded[len(padded)-1])
	})

	t.Run("block-aligned input gets a full extra block", func(t *testing.T) {
		padded := pkcs7Pad(make([]byte, 16), 16)
		assert.Len(t, padded, 32)
		assert.Equal(t, byte(16), padded[len(padded)-1])
	})

	t.Run("unpad round-trip", func(t *testing.T) {
		data := []byte("some payload")
		unpadded, err := pkcs7Unpad(pkcs7Pad(data, 16), 16)
		assert.NoError(t, err)
		assert.Equal(t, data, unpadded)
	})

	t.Run("unpad rejects corrupt padding", func(t *testing.T) {
		padded := pkcs7Pad([]byte("data"), 16)
		padded[len(padded)-1] = 0xFF

		_, err := pkcs7Unpad(padded, 16)
		assert.Error(t, err)
	})

	t.Run("unpad rejects zero padding byte", func(t *testing.T) {
		block := make([]byte, 16)
		_, err := pkcs7Unpad(block, 16)
		assert.Error(t, err)
	})
}
