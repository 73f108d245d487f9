// Package store owns the portal's three collections (events, halls,
// registrations). Every mutation takes the acting identity and is checked
// against its role, and persists the affected collection in full. A failed
// save is logged as a warning; in-memory state stays authoritative for the
// rest of the session.
package store

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
	"eventPortal/internal/storage/localstore"
)

var (
	// ErrUnauthorized marks a mutation attempted by a role that lacks the
	// required capability.
	ErrUnauthorized = errors.New("operation not permitted for this role")
	// ErrEventNotFound marks a reference to an event id that does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrNotApproved marks a registration against an event that is not open
	// to students.
	ErrNotApproved = errors.New("event is not approved for registration")
	// ErrAlreadyRegistered marks a second registration by the same student.
	ErrAlreadyRegistered = errors.New("student already registered for this event")
	// ErrEventFull marks a registration against an event at capacity.
	ErrEventFull = errors.New("event is at full capacity")
)

const (
	keyEvents        = "events"
	keyHalls         = "halls"
	keyRegistrations = "registrations"
)

type Store struct {
	log *slog.Logger
	db  *localstore.Storage

	mu            sync.RWMutex
	events        []models.Event
	halls         []models.Hall
	registrations []models.Registration
}

// New loads the persisted collections, falling back to the seed dataset for
// any collection that is absent or unreadable.
func New(log *slog.Logger, db *localstore.Storage) *Store {
	s := &Store{log: log, db: db}

	s.events = loadOr(log, db, keyEvents, seedEvents)
	s.halls = loadOr(log, db, keyHalls, seedHalls)
	s.registrations = loadOr(log, db, keyRegistrations, func() []models.Registration { return nil })

	return s
}

func loadOr[T any](log *slog.Logger, db *localstore.Storage, key string, seed func() []T) []T {
	var items []T

	found, err := db.Load(key, &items)
	if err != nil {
		log.Warn("discarding unreadable collection", slog.String("collection", key), sl.Err(err))
		return seed()
	}
	if !found {
		return seed()
	}

	return items
}

// persist must be called with the write lock held.
func (s *Store) persist(key string, v any) {
	if err := s.db.Save(key, v); err != nil {
		s.log.Warn("failed to persist collection, in-memory state kept",
			slog.String("collection", key), sl.Err(err))
	}
}

// AddEvent stores a club's event submission. The submission always enters
// the approval queue as Pending with no registrations, newest first.
func (s *Store) AddEvent(actor models.User, event models.Event) (models.Event, error) {
	if actor.Role != models.RoleClub {
		return models.Event{}, ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.ClubID = actor.ID
	event.ClubName = actor.Name
	event.Status = models.StatusPending
	event.RegisteredCount = 0

	s.events = append([]models.Event{event}, s.events...)
	s.persist(keyEvents, s.events)

	return event, nil
}

// UpdateEventStatus sets the approval status of an event. Admin only.
func (s *Store) UpdateEventStatus(actor models.User, id string, status models.EventStatus) error {
	if actor.Role != models.RoleAdmin {
		return ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Status = status
			s.persist(keyEvents, s.events)

			return nil
		}
	}

	return ErrEventNotFound
}

// DeleteEvent removes an event. Admins may delete any event; a club may
// delete only its own.
func (s *Store) DeleteEvent(actor models.User, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}

		if actor.Role != models.RoleAdmin && !(actor.Role == models.RoleClub && actor.ID == s.events[i].ClubID) {
			return ErrUnauthorized
		}

		s.events = append(s.events[:i], s.events[i+1:]...)
		s.persist(keyEvents, s.events)

		return nil
	}

	return ErrEventNotFound
}

// RegisterForEvent enrolls a student in an approved event. Duplicate
// registrations and over-capacity registrations are rejected here, at the
// store boundary, rather than left to the caller.
func (s *Store) RegisterForEvent(actor models.User, eventID string) (models.Registration, error) {
	if actor.Role != models.RoleStudent {
		return models.Registration{}, ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var event *models.Event
	for i := range s.events {
		if s.events[i].ID == eventID {
			event = &s.events[i]
			break
		}
	}
	if event == nil {
		return models.Registration{}, ErrEventNotFound
	}
	if event.Status != models.StatusApproved {
		return models.Registration{}, ErrNotApproved
	}
	if event.IsFull() {
		return models.Registration{}, ErrEventFull
	}

	for _, r := range s.registrations {
		if r.EventID == eventID && r.StudentID == actor.ID {
			return models.Registration{}, ErrAlreadyRegistered
		}
	}

	reg := models.Registration{
		ID:          uuid.NewString(),
		EventID:     eventID,
		StudentID:   actor.ID,
		StudentName: actor.Name,
		Timestamp:   time.Now().UTC(),
	}

	s.registrations = append(s.registrations, reg)
	event.RegisteredCount++

	s.persist(keyRegistrations, s.registrations)
	s.persist(keyEvents, s.events)

	return reg, nil
}

// EventsByClub returns the club's own submissions in every status.
func (s *Store) EventsByClub(clubID string) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Event
	for _, e := range s.events {
		if e.ClubID == clubID {
			out = append(out, e)
		}
	}

	return out
}

// EventsForStudent returns approved events only; pending and rejected
// submissions are invisible to students.
func (s *Store) EventsForStudent() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Event
	for _, e := range s.events {
		if e.Status == models.StatusApproved {
			out = append(out, e)
		}
	}

	return out
}

// Events returns the full events collection, newest first.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)

	return out
}

// EventByID returns a single event.
func (s *Store) EventByID(id string) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}

	return models.Event{}, ErrEventNotFound
}

// IsRegistered reports whether the student holds a registration for the
// event.
func (s *Store) IsRegistered(eventID, studentID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.registrations {
		if r.EventID == eventID && r.StudentID == studentID {
			return true
		}
	}

	return false
}

// Halls returns the hall reference data.
func (s *Store) Halls() []models.Hall {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Hall, len(s.halls))
	copy(out, s.halls)

	return out
}

// Registrations returns all registrations for an event.
func (s *Store) Registrations(eventID string) []models.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Registration
	for _, r := range s.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}

	return out
}

// Reset discards every collection and restores the seed dataset. Admin only;
// this is a full, destructive reset.
func (s *Store) Reset(actor models.User) error {
	if actor.Role != models.RoleAdmin {
		return ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = seedEvents()
	s.halls = seedHalls()
	s.registrations = nil

	s.persist(keyEvents, s.events)
	s.persist(keyHalls, s.halls)
	s.persist(keyRegistrations, s.registrations)

	return nil
}
