// Package service provides the badge pipeline services: canonical payload
// serialization, AES-256-CBC encryption, and QR image encoding.
package service

import (
	"github.com/allisson/qrbadge/internal/badge/domain"
)

// PayloadCodec defines serialization between employee records and the
// canonical labeled plaintext that gets encrypted.
type PayloadCodec interface {
	// Serialize produces the fixed-order, labeled, newline-joined plaintext.
	Serialize(record domain.EmployeeRecord) string

	// Deserialize parses canonical plaintext back into an employee record.
	Deserialize(payload string) (domain.EmployeeRecord, error)
}

// EncryptionEngine defines symmetric encryption of canonical payload text.
type EncryptionEngine interface {
	// Encrypt encrypts plaintext with a fresh random IV and returns the envelope.
	Encrypt(plaintext string) (domain.CiphertextEnvelope, error)

	// Decrypt recovers the plaintext from an envelope. The generation pipeline
	// never calls it; external decoders and round-trip tests do.
	Decrypt(envelope domain.CiphertextEnvelope) (string, error)
}

// EngineFactory defines the interface for creating encryption engines bound
// to a symmetric key.
type EngineFactory interface {
	// CreateEngine creates an engine for the given 32-byte key.
	CreateEngine(key []byte) (EncryptionEngine, error)
}

// QREncoder defines rasterization of envelope text into a QR PNG image.
type QREncoder interface {
	// Encode builds a QR symbol for envelopeText and renders it as a PNG of
	// the given pixel size with the given hex colors.
	Encode(envelopeText string, size int, fgColor, bgColor string, quality domain.ImageQuality) ([]byte, error)
}
