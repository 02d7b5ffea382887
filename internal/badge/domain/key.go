package domain

// KeySize is the required symmetric key length in bytes (AES-256).
const KeySize = 32

// KeyResult is the outcome of the load-or-generate key lifecycle.
//
// The key is always usable for the current process. PersistErr carries a
// non-fatal write failure: the session keeps working with an in-memory key,
// accepting that artifacts it generates cannot be decrypted by a future run
// that loads a different key. This is an inherited policy decision, surfaced
// as an inspectable value instead of being swallowed.
type KeyResult struct {
	// Key is the 32-byte symmetric key.
	Key []byte
	// Generated reports whether the key was freshly created this session.
	Generated bool
	// PersistErr is the non-fatal error from persisting a generated key, if any.
	PersistErr error
}
