package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/allisson/qrbadge/internal/badge/domain"
)

// AESCBCEngine implements the EncryptionEngine interface using AES-256-CBC
// with PKCS#7 padding.
//
// CBC mode (not an AEAD) is a fixed compatibility requirement of the envelope
// format: external decoders expect exactly "base64(iv):base64(ciphertext)"
// with a 16-byte IV and PKCS#7-padded plaintext under a 256-bit key.
//
// Security properties:
//   - 256-bit key size
//   - 16-byte IV, randomly generated per encryption, never reused
//   - output is never deterministic: identical plaintexts encrypt to
//     different envelopes on every call
//
// Thread safety: the engine is stateless apart from the key and safe for
// concurrent use from multiple goroutines.
type AESCBCEngine struct {
	block cipher.Block
}

// NewAESCBCEngine creates a new AES-256-CBC engine.
//
// The key must be exactly 32 bytes (256 bits). Keys should come from the key
// store, which generates them with crypto/rand.
func NewAESCBCEngine(key []byte) (*AESCBCEngine, error) {
	if len(key) != 32 {
		return nil, domain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	return &AESCBCEngine{block: block}, nil
}

// Encrypt encrypts plaintext under AES-256-CBC and returns the envelope.
//
// The plaintext is encoded as UTF-8, padded with PKCS#7 to the 16-byte block
// size, and encrypted with a fresh random 16-byte IV generated by crypto/rand.
func (e *AESCBCEngine) Encrypt(plaintext string) (domain.CiphertextEnvelope, error) {
	iv := make([]byte, domain.IVSize)
	if _, err := rand.Read(iv); err != nil {
		return domain.CiphertextEnvelope{}, fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(e.block, iv).CryptBlocks(ciphertext, padded)
	domain.Zero(padded)

	return domain.CiphertextEnvelope{
		IV:         iv,
		Ciphertext: ciphertext,
	}, nil
}

// Decrypt recovers the plaintext from an envelope produced by Encrypt or by
// any conforming external encoder.
func (e *AESCBCEngine) Decrypt(envelope domain.CiphertextEnvelope) (string, error) {
	if len(envelope.IV) != domain.IVSize {
		return "", domain.ErrInvalidIVSize
	}
	if len(envelope.Ciphertext) == 0 || len(envelope.Ciphertext)%aes.BlockSize != 0 {
		return "", errors.New("ciphertext is not a multiple of the block size")
	}

	padded := make([]byte, len(envelope.Ciphertext))
	cipher.NewCBCDecrypter(e.block, envelope.IV).CryptBlocks(padded, envelope.Ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// pkcs7Pad appends 1..blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad strips and verifies PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded data length")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("invalid padding")
		}
	}

	return data[:len(data)-padLen], nil
}
