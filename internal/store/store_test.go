package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPortal/internal/config"
	"eventPortal/internal/identity"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"
	"eventPortal/internal/storage/localstore"
)

func newTestStore(t *testing.T) (*Store, *localstore.Storage) {
	t.Helper()

	db, err := localstore.New(&config.Storage{Path: t.TempDir()})
	require.NoError(t, err)

	return New(slogdiscard.NewDiscardLogger(), db), db
}

func student(t *testing.T, usn string) models.User {
	t.Helper()

	u, err := identity.ResolveStudent(usn)
	require.NoError(t, err)

	return u
}

func TestSeedDataset(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	assert.Len(t, s.Events(), 6)
	assert.Len(t, s.Halls(), 5)

	event, err := s.EventByID("1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, event.Status)
	assert.Equal(t, 500, event.Capacity)
	assert.Equal(t, 350, event.RegisteredCount)
}

func TestAddEvent(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	club := identity.ResolveClub("club_glug")

	created, err := s.AddEvent(club, models.Event{
		Title:    "Go Meetup",
		Category: "Technology",
		Date:     "2024-09-01",
		Time:     "16:00",
		Location: "CS Seminar Hall",
		Capacity: 80,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, 0, created.RegisteredCount)
	assert.Equal(t, "club_glug", created.ClubID)
	assert.Equal(t, "GLUG PACE", created.ClubName)

	// Newest first.
	events := s.Events()
	require.Len(t, events, 7)
	assert.Equal(t, created.ID, events[0].ID)
}

func TestAddEventAuthorization(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, err := s.AddEvent(identity.ResolveAdmin(), models.Event{Title: "Nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = s.AddEvent(student(t, "4PA21CS001"), models.Event{Title: "Nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateEventStatus(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	admin := identity.ResolveAdmin()

	// Approving a pending event makes it visible to students.
	require.NoError(t, s.UpdateEventStatus(admin, "3", models.StatusApproved))
	assert.Contains(t, eventIDs(s.EventsForStudent()), "3")

	// Rejecting removes it again.
	require.NoError(t, s.UpdateEventStatus(admin, "3", models.StatusRejected))
	assert.NotContains(t, eventIDs(s.EventsForStudent()), "3")

	err := s.UpdateEventStatus(admin, "missing", models.StatusApproved)
	assert.ErrorIs(t, err, ErrEventNotFound)

	err = s.UpdateEventStatus(identity.ResolveClub("club_glug"), "1", models.StatusRejected)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	t.Run("Admin deletes any event", func(t *testing.T) {
		require.NoError(t, s.DeleteEvent(identity.ResolveAdmin(), "6"))

		_, err := s.EventByID("6")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("Club deletes its own event", func(t *testing.T) {
		require.NoError(t, s.DeleteEvent(identity.ResolveClub("club_glug"), "2"))
	})

	t.Run("Club cannot delete another club's event", func(t *testing.T) {
		err := s.DeleteEvent(identity.ResolveClub("club_glug"), "1")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("Student cannot delete", func(t *testing.T) {
		err := s.DeleteEvent(student(t, "4PA21CS001"), "1")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestRegisterForEvent(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	stu := student(t, "4PA21CS001")

	before, err := s.EventByID("1")
	require.NoError(t, err)

	reg, err := s.RegisterForEvent(stu, "1")
	require.NoError(t, err)

	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "1", reg.EventID)
	assert.Equal(t, stu.ID, reg.StudentID)
	assert.Equal(t, "Aditya Rao", reg.StudentName)

	after, err := s.EventByID("1")
	require.NoError(t, err)
	assert.Equal(t, before.RegisteredCount+1, after.RegisteredCount)
	assert.Equal(t, 351, after.RegisteredCount)

	assert.True(t, s.IsRegistered("1", stu.ID))
	assert.False(t, s.IsRegistered("1", "student_4PA21CS045"))
}

func TestRegisterForEventRejections(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	stu := student(t, "4PA21CS045")

	t.Run("Unknown event", func(t *testing.T) {
		_, err := s.RegisterForEvent(stu, "missing")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("Pending event", func(t *testing.T) {
		_, err := s.RegisterForEvent(stu, "3")
		assert.ErrorIs(t, err, ErrNotApproved)
	})

	t.Run("Duplicate registration", func(t *testing.T) {
		_, err := s.RegisterForEvent(stu, "2")
		require.NoError(t, err)

		_, err = s.RegisterForEvent(stu, "2")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)

		// The failed attempt must not bump the count.
		event, err := s.EventByID("2")
		require.NoError(t, err)
		assert.Equal(t, 73, event.RegisteredCount)
	})

	t.Run("Full event", func(t *testing.T) {
		admin := identity.ResolveAdmin()
		club := identity.ResolveClub("club_embed")

		created, err := s.AddEvent(club, models.Event{Title: "Tiny Workshop", Capacity: 1})
		require.NoError(t, err)
		require.NoError(t, s.UpdateEventStatus(admin, created.ID, models.StatusApproved))

		_, err = s.RegisterForEvent(stu, created.ID)
		require.NoError(t, err)

		_, err = s.RegisterForEvent(student(t, "4PA21EC012"), created.ID)
		assert.ErrorIs(t, err, ErrEventFull)
	})

	t.Run("Non-student actor", func(t *testing.T) {
		_, err := s.RegisterForEvent(identity.ResolveAdmin(), "1")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestEventsForStudentIsApprovedSubset(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	visible := s.EventsForStudent()
	assert.Len(t, visible, 5)

	for _, e := range visible {
		assert.Equal(t, models.StatusApproved, e.Status)
	}
	assert.NotContains(t, eventIDs(visible), "3")
}

func TestEventsByClub(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	glug := s.EventsByClub("club_glug")
	require.Len(t, glug, 1)
	assert.Equal(t, "2", glug[0].ID)

	assert.Empty(t, s.EventsByClub("club_edc"))
}

func TestReset(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	admin := identity.ResolveAdmin()
	club := identity.ResolveClub("club_aces")
	stu := student(t, "4PA21ME033")

	_, err := s.AddEvent(club, models.Event{Title: "Doomed", Capacity: 10})
	require.NoError(t, err)
	_, err = s.RegisterForEvent(stu, "1")
	require.NoError(t, err)
	require.NoError(t, s.UpdateEventStatus(admin, "3", models.StatusApproved))

	require.NoError(t, s.Reset(admin))

	assert.Equal(t, seedEvents(), s.Events())
	assert.Equal(t, seedHalls(), s.Halls())
	assert.False(t, s.IsRegistered("1", stu.ID))

	err = s.Reset(club)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPersistenceRoundTrip(t *testing.T) {
	t.Parallel()

	s, db := newTestStore(t)
	admin := identity.ResolveAdmin()
	club := identity.ResolveClub("club_force")
	stu := student(t, "4PA21CV008")

	created, err := s.AddEvent(club, models.Event{Title: "Bridge Design Contest", Capacity: 40})
	require.NoError(t, err)
	require.NoError(t, s.UpdateEventStatus(admin, created.ID, models.StatusApproved))
	_, err = s.RegisterForEvent(stu, created.ID)
	require.NoError(t, err)

	// A fresh store over the same storage must see identical collections.
	reloaded := New(slogdiscard.NewDiscardLogger(), db)

	assert.Equal(t, s.Events(), reloaded.Events())
	assert.Equal(t, s.Halls(), reloaded.Halls())
	assert.True(t, reloaded.IsRegistered(created.ID, stu.ID))
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	return ids
}
