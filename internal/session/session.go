// Package session holds the active identity. The portal models a single
// browser session: exactly one user is logged in at a time, persisted so the
// session survives a restart.
package session

import (
	"fmt"
	"log/slog"
	"sync"

	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/storage/localstore"
)

const recordKey = "session"

type Store struct {
	log *slog.Logger
	db  *localstore.Storage

	mu   sync.RWMutex
	user *models.User
}

// New restores any persisted session. A corrupt session record degrades to
// "not logged in" instead of failing startup.
func New(log *slog.Logger, db *localstore.Storage) *Store {
	s := &Store{log: log, db: db}

	var user models.User
	found, err := db.Load(recordKey, &user)
	if err != nil {
		log.Warn("discarding unreadable session record", sl.Err(err))
		return s
	}
	if found && user.Role != "" {
		s.user = &user
	}

	return s
}

// Login makes user the active identity, replacing any prior session.
func (s *Store) Login(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user

	if err := s.db.Save(recordKey, user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// Logout clears the active identity and its persisted record.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil

	if err := s.db.Delete(recordKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// Current returns the active identity, or false when nobody is logged in.
func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}

	return *s.user, true
}
