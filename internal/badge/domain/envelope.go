package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IVSize is the AES block size in bytes; every envelope carries an
// initialization vector of exactly this length.
const IVSize = 16

// EnvelopeSeparator joins the two base64 fields of the wire representation.
// Base64's alphabet never contains it, so a single split is unambiguous.
const EnvelopeSeparator = ":"

// CiphertextEnvelope represents an encrypted badge payload.
//
// The envelope is self-contained: together with the symmetric key it holds
// everything needed to recover the plaintext. It serializes to and from the
// format "base64(iv):base64(ciphertext)", which is the bit-exact text embedded
// in the QR symbol and the compatibility surface for any external decoder.
type CiphertextEnvelope struct {
	// IV is the 16-byte initialization vector, random per encryption.
	IV []byte
	// Ciphertext is the PKCS#7-padded plaintext encrypted under AES-256-CBC.
	Ciphertext []byte
}

// NewCiphertextEnvelope creates a CiphertextEnvelope from its string representation.
//
// The input must be exactly two colon-separated base64 fields where the first
// decodes to 16 bytes. Returns ErrInvalidEnvelopeFormat, ErrInvalidEnvelopeBase64,
// or ErrInvalidIVSize on malformed input.
func NewCiphertextEnvelope(content string) (CiphertextEnvelope, error) {
	parts := strings.Split(content, EnvelopeSeparator)
	if len(parts) != 2 {
		return CiphertextEnvelope{}, fmt.Errorf(
			"%w: expected format 'iv:ciphertext', got %d parts",
			ErrInvalidEnvelopeFormat,
			len(parts),
		)
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return CiphertextEnvelope{}, fmt.Errorf("%w: iv: %v", ErrInvalidEnvelopeBase64, err)
	}
	if len(iv) != IVSize {
		return CiphertextEnvelope{}, fmt.Errorf(
			"%w: got %d bytes, want %d",
			ErrInvalidIVSize,
			len(iv),
			IVSize,
		)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return CiphertextEnvelope{}, fmt.Errorf("%w: ciphertext: %v", ErrInvalidEnvelopeBase64, err)
	}

	return CiphertextEnvelope{
		IV:         iv,
		Ciphertext: ciphertext,
	}, nil
}

// String serializes the envelope to its wire representation
// "base64(iv):base64(ciphertext)".
//
// Round-trips with NewCiphertextEnvelope:
//
//	original := CiphertextEnvelope{IV: iv, Ciphertext: ct}
//	parsed, _ := NewCiphertextEnvelope(original.String())
//	// parsed equals original
func (ce CiphertextEnvelope) String() string {
	return base64.StdEncoding.EncodeToString(ce.IV) +
		EnvelopeSeparator +
		base64.StdEncoding.EncodeToString(ce.Ciphertext)
}
