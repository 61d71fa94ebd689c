package event_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventman/internal/event"
	"eventman/internal/schedule"
)

// memStore is an in-memory event.Store with injectable failures.
type memStore struct {
	events  []event.Event
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load() ([]event.Event, error) {
	return m.events, m.loadErr
}

func (m *memStore) Save(events []event.Event) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.events = append([]event.Event(nil), events...)
	return nil
}

func date(t *testing.T, s string) event.Date {
	t.Helper()
	d, err := event.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newRepo(t *testing.T, st event.Store) *event.Repository {
	t.Helper()
	repo, err := event.NewRepository(st, schedule.Conflicts)
	require.NoError(t, err)
	return repo
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	st := &memStore{}
	repo := newRepo(t, st)
	day := date(t, "10-05-2026")

	first, err := repo.Add("Team Meeting", day, event.NewClock(9, 0), "Meeting", "Room 1")
	require.NoError(t, err)
	second, err := repo.Add("Review", day, event.NewClock(14, 0), "Meeting", "")
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, st.saves, "every successful add persists the whole set")
	assert.Len(t, st.events, 2)
}

func TestAddConflictWithinWindow(t *testing.T) {
	repo := newRepo(t, &memStore{})
	day := date(t, "10-05-2026")

	_, err := repo.Add("First", day, event.NewClock(10, 0), "Meeting", "")
	require.NoError(t, err)

	_, err = repo.Add("Second", day, event.NewClock(10, 30), "Meeting", "")
	var conflict *event.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, day, conflict.Date)
	assert.Equal(t, 1, repo.Len(), "conflicting add must not mutate")
}

func TestAddTwoHoursApartSucceeds(t *testing.T) {
	repo := newRepo(t, &memStore{})
	day := date(t, "10-05-2026")

	_, err := repo.Add("First", day, event.NewClock(10, 0), "Meeting", "")
	require.NoError(t, err)
	_, err = repo.Add("Second", day, event.NewClock(12, 0), "Meeting", "")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.Len())
}

func TestEditOwnSlotNeverConflicts(t *testing.T) {
	repo := newRepo(t, &memStore{})
	day := date(t, "10-05-2026")
	created, err := repo.Add("Standup", day, event.NewClock(9, 0), "Sync", "")
	require.NoError(t, err)

	name := "Daily Standup"
	updated, err := repo.Edit(created.ID, event.Update{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Daily Standup", updated.Name)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, created.Time, updated.Time)
}

func TestEditIsAllOrNothingOnConflict(t *testing.T) {
	repo := newRepo(t, &memStore{})
	day := date(t, "10-05-2026")
	_, err := repo.Add("Blocker", day, event.NewClock(10, 0), "Meeting", "")
	require.NoError(t, err)
	target, err := repo.Add("Victim", day, event.NewClock(14, 0), "Meeting", "")
	require.NoError(t, err)

	name := "Renamed"
	at := event.NewClock(10, 30)
	_, err = repo.Edit(target.ID, event.Update{Name: &name, Time: &at})
	var conflict *event.ConflictError
	require.ErrorAs(t, err, &conflict)

	// The name change bundled with the conflicting time change must
	// not have been applied either.
	got, found := repo.FindByID(target.ID)
	require.True(t, found)
	assert.Equal(t, "Victim", got.Name)
	assert.Equal(t, event.NewClock(14, 0), got.Time)
}

func TestEditNotFound(t *testing.T) {
	repo := newRepo(t, &memStore{})
	_, err := repo.Edit(42, event.Update{})
	assert.ErrorIs(t, err, event.ErrNotFound)
}

func TestDeleteNotFoundLeavesCollectionUnchanged(t *testing.T) {
	st := &memStore{}
	repo := newRepo(t, st)
	_, err := repo.Add("Keep", date(t, "10-05-2026"), event.NewClock(9, 0), "Meeting", "")
	require.NoError(t, err)

	err = repo.Delete(99)
	assert.ErrorIs(t, err, event.ErrNotFound)
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, 1, st.saves, "failed delete must not persist")
}

func TestDeleteRemovesAndPersists(t *testing.T) {
	st := &memStore{}
	repo := newRepo(t, st)
	created, err := repo.Add("Gone", date(t, "10-05-2026"), event.NewClock(9, 0), "Meeting", "")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))
	assert.Equal(t, 0, repo.Len())
	assert.Empty(t, st.events)

	_, found := repo.FindByID(created.ID)
	assert.False(t, found)
}

func TestNextIDNeverReusedWithinSession(t *testing.T) {
	repo := newRepo(t, &memStore{})
	day := date(t, "10-05-2026")
	created, err := repo.Add("First", day, event.NewClock(9, 0), "Meeting", "")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(created.ID))

	next, err := repo.Add("Second", day, event.NewClock(11, 0), "Meeting", "")
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID, "a deleted id is not handed out again in the same session")
}

func TestNextIDDerivedFromLoadedEvents(t *testing.T) {
	day := date(t, "10-05-2026")
	st := &memStore{events: []event.Event{
		{ID: 3, Name: "Loaded", Date: day, Time: event.NewClock(9, 0), Type: "Meeting"},
		{ID: 7, Name: "Highest", Date: day, Time: event.NewClock(13, 0), Type: "Meeting"},
	}}
	repo := newRepo(t, st)

	created, err := repo.Add("New", day, event.NewClock(16, 0), "Meeting", "")
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
}

func TestLoadErrorDegradesToEmpty(t *testing.T) {
	st := &memStore{loadErr: errors.New("disk unreadable")}
	repo, err := event.NewRepository(st, schedule.Conflicts)
	require.Error(t, err)
	require.NotNil(t, repo)
	assert.Equal(t, 0, repo.Len())

	// The degraded repository still works and ids start at 1.
	st.loadErr = nil
	created, err := repo.Add("Fresh", date(t, "10-05-2026"), event.NewClock(9, 0), "Meeting", "")
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestSaveFailureKeepsInMemoryMutation(t *testing.T) {
	st := &memStore{saveErr: errors.New("disk full")}
	repo := newRepo(t, st)

	created, err := repo.Add("Unsaved", date(t, "10-05-2026"), event.NewClock(9, 0), "Meeting", "")
	require.NoError(t, err, "a failed save does not roll back the add")
	assert.Equal(t, 1, repo.Len())
	assert.Empty(t, st.events, "nothing reached the store")

	_, found := repo.FindByID(created.ID)
	assert.True(t, found)
}

func TestEventsReturnsCopy(t *testing.T) {
	repo := newRepo(t, &memStore{})
	_, err := repo.Add("Original", date(t, "10-05-2026"), event.NewClock(9, 0), "Meeting", "")
	require.NoError(t, err)

	view := repo.Events()
	view[0].Name = "Tampered"

	got, _ := repo.FindByID(1)
	assert.Equal(t, "Original", got.Name)
}
