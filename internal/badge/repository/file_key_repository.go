// Package repository provides filesystem-backed persistence for the badge
// pipeline: the symmetric key file, the settings file, and artifact output.
package repository

import (
	"crypto/rand"
	"fmt"
	"os"
	"sync"

	"github.com/allisson/qrbadge/internal/badge/domain"
	apperrors "github.com/allisson/qrbadge/internal/errors"
)

// FileKeyStore owns the symmetric key lifecycle backed by a raw 32-byte file
// with no header or versioning.
//
// The key is loaded (or generated) once and cached for the life of the store;
// after initialization it is read-only. Concurrent first calls are safe: the
// key file is created with create-if-absent semantics, so a race between two
// "file missing" detections resolves to a single winner.
type FileKeyStore struct {
	path string

	mu     sync.Mutex
	result *domain.KeyResult
}

// NewFileKeyStore creates a key store backed by the file at path.
func NewFileKeyStore(path string) *FileKeyStore {
	return &FileKeyStore{path: path}
}

// GetOrCreateKey returns the persistent symmetric key, generating and
// persisting a fresh one if the key file is missing or unreadable.
//
// Failure to read or write the file is never fatal: a freshly generated key
// stays usable in memory for the current process, with the write failure
// reported in KeyResult.PersistErr.
func (s *FileKeyStore) GetOrCreateKey() (domain.KeyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return *s.result, nil
	}

	result := s.loadOrGenerate()
	s.result = &result
	return result, nil
}

// Rotate generates a fresh key and overwrites the key file unconditionally.
// Previously generated artifacts become undecryptable; callers must opt in.
// The superseded key material is zeroed in place.
func (s *FileKeyStore) Rotate() (domain.KeyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := make([]byte, domain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return domain.KeyResult{}, fmt.Errorf("failed to generate key: %w", err)
	}

	if err := os.WriteFile(s.path, key, 0o600); err != nil {
		return domain.KeyResult{}, apperrors.Wrap(apperrors.ErrIO, err.Error())
	}

	if s.result != nil {
		domain.Zero(s.result.Key)
	}
	result := domain.KeyResult{Key: key, Generated: true}
	s.result = &result
	return result, nil
}

func (s *FileKeyStore) loadOrGenerate() domain.KeyResult {
	data, err := os.ReadFile(s.path)
	if err == nil && len(data) == domain.KeySize {
		return domain.KeyResult{Key: data}
	}

	key := make([]byte, domain.KeySize)
	if _, randErr := rand.Read(key); randErr != nil {
		// crypto/rand never fails on supported platforms; treat it like a
		// persist failure so the caller still sees a typed result.
		return domain.KeyResult{Key: key, Generated: true, PersistErr: randErr}
	}

	// Create-if-absent: if another process won the race, use its key.
	f, createErr := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if createErr != nil {
		if os.IsExist(createErr) {
			if winner, readErr := os.ReadFile(s.path); readErr == nil && len(winner) == domain.KeySize {
				return domain.KeyResult{Key: winner}
			}
		}
		return domain.KeyResult{
			Key:        key,
			Generated:  true,
			PersistErr: apperrors.Wrap(apperrors.ErrIO, createErr.Error()),
		}
	}

	_, writeErr := f.Write(key)
	closeErr := f.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return domain.KeyResult{
			Key:        key,
			Generated:  true,
			PersistErr: apperrors.Wrap(apperrors.ErrIO, writeErr.Error()),
		}
	}

	return domain.KeyResult{Key: key, Generated: true}
}
