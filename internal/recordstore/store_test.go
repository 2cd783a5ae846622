package recordstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
	"github.com/AnshRaj112/neurosphere-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newStore(t *testing.T) (*Store, *storage.Memory, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	mem := storage.NewMemory()
	return New(mem, zap.New(core)).ForUser("u1"), mem, logs
}

func entry(id, title string) models.JournalEntry {
	return models.JournalEntry{
		ID:        id,
		Title:     title,
		Content:   "one two three",
		Mood:      mood.Calm,
		Tags:      []string{"growth"},
		Date:      time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		WordCount: 3,
	}
}

func entries(s *Store) *Collection[models.JournalEntry] {
	return NewCollection(s, KeyJournalEntries, models.EntryID)
}

func TestCollection_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newStore(t)
	c := entries(s)

	e := entry("e1", "First")
	require.NoError(t, c.Save(ctx, []models.JournalEntry{e}))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
}

func TestCollection_AppendFrontIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newStore(t)
	c := entries(s)

	require.NoError(t, c.AppendFront(ctx, entry("e1", "First")))
	require.NoError(t, c.AppendFront(ctx, entry("e2", "Second")))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, "e1", got[1].ID)
}

func TestCollection_RemoveByID(t *testing.T) {
	ctx := context.Background()
	s, mem, _ := newStore(t)
	c := entries(s)

	require.NoError(t, c.AppendFront(ctx, entry("e1", "First")))
	require.NoError(t, c.AppendFront(ctx, entry("e2", "Second")))

	before, _, _ := mem.Get(ctx, c.Key())
	require.NoError(t, c.RemoveByID(ctx, "missing"))
	after, _, _ := mem.Get(ctx, c.Key())
	assert.Equal(t, before, after)

	require.NoError(t, c.RemoveByID(ctx, "e1"))
	got, err := c.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e2", got[0].ID)

	_, ok, err := c.Find(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, ok)
	found, ok, err := c.Find(ctx, "e2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Second", found.Title)
}

func TestCollection_MalformedIsEmptyAndLogged(t *testing.T) {
	ctx := context.Background()
	s, mem, logs := newStore(t)
	c := entries(s)

	require.NoError(t, mem.Set(ctx, c.Key(), "{not json"))

	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	warn := logs.FilterMessage("malformed stored value").All()
	require.Len(t, warn, 1)
	assert.Equal(t, zapcore.WarnLevel, warn[0].Level)
	assert.Equal(t, "user:u1:journal_entries", warn[0].ContextMap()["key"])

	// a fresh write replaces the corrupt value
	require.NoError(t, c.AppendFront(ctx, entry("e1", "First")))
	got, err = c.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCollection_MissingKeyIsNotLogged(t *testing.T) {
	s, _, logs := newStore(t)

	got, err := entries(s).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, logs.Len())
}

func TestCollection_ConcurrentAppendsKeepEveryRecord(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newStore(t)
	c := entries(s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, c.AppendFront(ctx, entry(fmt.Sprintf("e%d", i), "t")))
		}(i)
	}
	wg.Wait()

	got, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}

func TestForUser_IsolatesNamespaces(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	root := New(mem, zap.NewNop())

	a := entries(root.ForUser("a"))
	b := entries(root.ForUser("b"))
	require.NoError(t, a.AppendFront(ctx, entry("e1", "A")))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "user:a:journal_entries", a.Key())
	assert.Equal(t, "session:x", root.Key("session:x"))
}

func TestSlot(t *testing.T) {
	ctx := context.Background()
	s, mem, logs := newStore(t)
	slot := NewSlot[models.Draft](s, KeyDraft)

	_, ok, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	d := models.Draft{Title: "t", Tags: []string{}, LastSaved: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, slot.Put(ctx, d))
	got, ok, err := slot.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, d, got)

	require.NoError(t, slot.Delete(ctx))
	require.NoError(t, slot.Delete(ctx))
	_, ok, _ = slot.Get(ctx)
	assert.False(t, ok)

	require.NoError(t, mem.Set(ctx, slot.Key(), "[]x"))
	_, ok, err = slot.Take(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, mem.Len())
	assert.Equal(t, 1, logs.FilterMessage("malformed stored value").Len())
}

func TestTextSlot_TakeConsumesOnce(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newStore(t)
	slot := NewTextSlot(s, KeySelectedPrompt)

	require.NoError(t, slot.Put(ctx, "What made you smile today?"))

	v, ok, err := slot.Take(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "What made you smile today?", v)

	_, ok, err = slot.Take(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

type brokenPort struct {
	storage.Port
	sets int
}

var errDown = errors.New("connection refused")

func (b *brokenPort) Get(context.Context, string) (string, bool, error) { return "", false, errDown }
func (b *brokenPort) Set(context.Context, string, string) error {
	b.sets++
	return nil
}

func TestCollection_TransportErrorDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	port := &brokenPort{}
	c := entries(New(port, zap.NewNop()))

	err := c.AppendFront(ctx, entry("e1", "x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errDown)
	assert.Zero(t, port.sets)

	require.ErrorIs(t, c.RemoveByID(ctx, "e1"), errDown)
	assert.Zero(t, port.sets)
}
